package payment_gateway

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	gatewayServiceInstance contracts.PaymentGatewayService
	onceGatewayService     sync.Once
)

type gatewayService struct {
	BaseUrl    string
	ApiKey     string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewGatewayService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PaymentGatewayService {
	onceGatewayService.Do(func() {
		gatewayServiceInstance = &gatewayService{
			BaseUrl: internalConfig.PaymentGateway.BaseUrl,
			ApiKey:  internalConfig.PaymentGateway.ApiKey,
			HTTPClient: &http.Client{
				Timeout: time.Duration(internalConfig.PaymentGateway.RequestTimeoutInSeconds) * time.Second,
			},
			Log: logger,
		}
	})
	return gatewayServiceInstance
}

func (s *gatewayService) CreateCheckoutSession(ctx context.Context, request *requests.CheckoutSession) (*responses.CheckoutSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("gatewayService.CreateCheckoutSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.CustomerEmail),
	)

	body, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	url := fmt.Sprintf("%s/v1/checkout/sessions", s.BaseUrl)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		s.Log.Error("gatewayService.CreateCheckoutSession error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+s.ApiKey)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		s.Log.Error("gatewayService.CreateCheckoutSession error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		s.Log.Error("gatewayService.CreateCheckoutSession gateway returned error status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrPaymentGatewayUnavailable(fmt.Errorf("gateway status %d: %s", resp.StatusCode, string(bodyBytes)))
	}

	response := new(responses.CheckoutSession)
	err = json.NewDecoder(resp.Body).Decode(response)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	s.Log.Info("gatewayService.CreateCheckoutSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGatewaySessionKey, response.SessionID),
	)
	return response, nil
}

func (s *gatewayService) GetSessionStatus(ctx context.Context, sessionID string) (*responses.SessionStatus, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("gatewayService.GetSessionStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGatewaySessionKey, sessionID),
	)

	url := fmt.Sprintf("%s/v1/checkout/sessions/%s", s.BaseUrl, sessionID)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, url, nil)
	if err != nil {
		s.Log.Error("gatewayService.GetSessionStatus error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+s.ApiKey)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		s.Log.Error("gatewayService.GetSessionStatus error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotFound {
		return nil, exceptions.ErrTransactionNotExist(fmt.Errorf("gateway session %s not found", sessionID))
	}
	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		s.Log.Error("gatewayService.GetSessionStatus gateway returned error status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrPaymentGatewayUnavailable(fmt.Errorf("gateway status %d: %s", resp.StatusCode, string(bodyBytes)))
	}

	response := new(responses.SessionStatus)
	err = json.NewDecoder(resp.Body).Decode(response)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	s.Log.Info("gatewayService.GetSessionStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGatewaySessionKey, sessionID),
		zap.String(constvars.LoggingPaymentStatusKey, response.Status),
	)
	return response, nil
}

// classifyTransportError keeps a slow gateway distinguishable from a dead
// one. Timeouts map to 504 so the caller knows the verification is safe to
// retry; everything else maps to 502.
func classifyTransportError(err error) error {
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return exceptions.ErrPaymentGatewayTimeout(err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return exceptions.ErrPaymentGatewayTimeout(err)
	}
	return exceptions.ErrPaymentGatewayUnavailable(err)
}
