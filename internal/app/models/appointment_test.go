package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatusTransitions(t *testing.T) {
	cases := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{"pending to confirmed", AppointmentPending, AppointmentConfirmed, true},
		{"pending to cancelled", AppointmentPending, AppointmentCancelled, true},
		{"pending to completed skips confirmation", AppointmentPending, AppointmentCompleted, false},
		{"confirmed to completed", AppointmentConfirmed, AppointmentCompleted, true},
		{"confirmed to cancelled", AppointmentConfirmed, AppointmentCancelled, true},
		{"confirmed back to pending", AppointmentConfirmed, AppointmentPending, false},
		{"completed is terminal", AppointmentCompleted, AppointmentCancelled, false},
		{"cancelled is terminal", AppointmentCancelled, AppointmentConfirmed, false},
		{"cancelled cannot complete", AppointmentCancelled, AppointmentCompleted, false},
		{"no self transition", AppointmentConfirmed, AppointmentConfirmed, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestAppointmentStatusIsTerminal(t *testing.T) {
	assert.False(t, AppointmentPending.IsTerminal())
	assert.False(t, AppointmentConfirmed.IsTerminal())
	assert.True(t, AppointmentCompleted.IsTerminal())
	assert.True(t, AppointmentCancelled.IsTerminal())
}
