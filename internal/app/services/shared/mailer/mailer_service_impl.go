package mailer

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"

	"medibook-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

var (
	mailerServiceInstance contracts.MailerService
	onceMailerService     sync.Once
)

type mailerService struct {
	Channel *amqp.Channel
	Queue   string
	Log     *zap.Logger
	mu      sync.Mutex
}

// NewMailerService opens a channel on the RabbitMQ connection and declares
// the durable mailer queue. Emails are published here and delivered by the
// consumer worker, so a slow SMTP host never stalls a request.
func NewMailerService(rabbitMQConnection *amqp.Connection, queue string, logger *zap.Logger) (contracts.MailerService, error) {
	var initErr error
	onceMailerService.Do(func() {
		channel, err := rabbitMQConnection.Channel()
		if err != nil {
			initErr = err
			return
		}

		_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
		if err != nil {
			initErr = err
			return
		}

		mailerServiceInstance = &mailerService{
			Channel: channel,
			Queue:   queue,
			Log:     logger,
		}
	})
	return mailerServiceInstance, initErr
}

func (s *mailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("mailerService.SendEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, s.Queue),
	)

	body, err := json.Marshal(request)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
	}

	message := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Priority:     0,
		Headers:      headers,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		s.Log.Error("mailerService.SendEmail error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueKey, s.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	return nil
}
