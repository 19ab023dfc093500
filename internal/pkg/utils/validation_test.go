package utils

import (
	"medibook-service/internal/pkg/dto/requests"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct_RegisterPassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		valid    bool
	}{
		{"strong password", "Sup3rSecret!", true},
		{"too short", "Ab1!", false},
		{"no special char", "Sup3rSecret", false},
		{"no uppercase", "sup3rsecret!", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStruct(&requests.Register{
				Name:     "Jane Roe",
				Email:    "jane@example.com",
				Password: tc.password,
			})
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateStruct_CreateAppointmentDateAndTime(t *testing.T) {
	tomorrow := time.Now().Add(24 * time.Hour).Format("2006-01-02")

	valid := &requests.CreateAppointment{
		Speciality: "cardiology",
		DoctorID:   "doc-1",
		Date:       tomorrow,
		Time:       "10:30",
	}
	assert.NoError(t, ValidateStruct(valid))

	pastDate := *valid
	pastDate.Date = "2020-01-01"
	assert.Error(t, ValidateStruct(&pastDate))

	badFormat := *valid
	badFormat.Date = "01-10-2026"
	assert.Error(t, ValidateStruct(&badFormat))

	badTime := *valid
	badTime.Time = "25:99"
	assert.Error(t, ValidateStruct(&badTime))
}

func TestValidateStruct_UpdateAppointmentStatus(t *testing.T) {
	assert.NoError(t, ValidateStruct(&requests.UpdateAppointmentStatus{Status: "cancelled", Reason: "patient unavailable"}))
	assert.NoError(t, ValidateStruct(&requests.UpdateAppointmentStatus{Status: "completed"}))

	// confirmation only ever comes from the payment flow
	assert.Error(t, ValidateStruct(&requests.UpdateAppointmentStatus{Status: "confirmed"}))
	assert.Error(t, ValidateStruct(&requests.UpdateAppointmentStatus{Status: "unknown"}))
}

func TestValidateEmailFormat(t *testing.T) {
	assert.True(t, ValidateEmailFormat("jane@example.com"))
	assert.False(t, ValidateEmailFormat("jane@"))
	assert.False(t, ValidateEmailFormat("not-an-email"))
}
