package meetings

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	meetingServiceInstance contracts.MeetingService
	onceMeetingService     sync.Once
)

type meetingService struct {
	BaseUrl    string
	ApiKey     string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewMeetingService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.MeetingService {
	onceMeetingService.Do(func() {
		meetingServiceInstance = &meetingService{
			BaseUrl: internalConfig.Meeting.BaseUrl,
			ApiKey:  internalConfig.Meeting.ApiKey,
			HTTPClient: &http.Client{
				Timeout: time.Duration(internalConfig.Meeting.RequestTimeoutInSeconds) * time.Second,
			},
			Log: logger,
		}
	})
	return meetingServiceInstance
}

type createMeetingRequest struct {
	HostEmail string `json:"host_email"`
}

func (s *meetingService) CreateMeeting(ctx context.Context, email string) (*responses.Meeting, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("meetingService.CreateMeeting called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	body, err := json.Marshal(&createMeetingRequest{HostEmail: email})
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	url := fmt.Sprintf("%s/v1/meetings", s.BaseUrl)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		s.Log.Error("meetingService.CreateMeeting error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+s.ApiKey)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		s.Log.Error("meetingService.CreateMeeting error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		s.Log.Error("meetingService.CreateMeeting provider returned error status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrSendHTTPRequest(fmt.Errorf("meeting provider status %d: %s", resp.StatusCode, string(bodyBytes)))
	}

	response := new(responses.Meeting)
	err = json.NewDecoder(resp.Body).Decode(response)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	s.Log.Info("meetingService.CreateMeeting succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return response, nil
}
