package contracts

import (
	"context"
	"medibook-service/internal/pkg/dto/responses"
)

// MeetingService provisions a video-consultation resource from the
// third-party conferencing provider.
type MeetingService interface {
	CreateMeeting(ctx context.Context, email string) (*responses.Meeting, error)
}
