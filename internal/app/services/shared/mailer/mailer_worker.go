package mailer

import (
	"context"
	"fmt"
	"medibook-service/internal/app/drivers/mailer"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"net/smtp"
	"strings"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// MailerWorker drains the mailer queue and delivers each payload over SMTP.
type MailerWorker struct {
	Channel *amqp.Channel
	Client  *mailer.SMTPClient
	Queue   string
	Log     *zap.Logger
}

func NewMailerWorker(rabbitMQConnection *amqp.Connection, client *mailer.SMTPClient, queue string, logger *zap.Logger) (*MailerWorker, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	err = channel.Qos(1, 0, false)
	if err != nil {
		return nil, err
	}

	return &MailerWorker{
		Channel: channel,
		Client:  client,
		Queue:   queue,
		Log:     logger,
	}, nil
}

// Start consumes the queue until the returned stop function is called.
func (w *MailerWorker) Start() (func(), error) {
	deliveries, err := w.Channel.Consume(w.Queue, "", false, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				w.handleDelivery(delivery)
			}
		}
	}()

	stop := func() {
		cancel()
		w.Channel.Close()
		<-done
	}
	return stop, nil
}

func (w *MailerWorker) handleDelivery(delivery amqp.Delivery) {
	var payload requests.EmailPayload
	err := json.Unmarshal(delivery.Body, &payload)
	if err != nil {
		w.Log.Error("MailerWorker.handleDelivery cannot decode payload",
			zap.String(constvars.LoggingQueueKey, w.Queue),
			zap.Error(err),
		)
		delivery.Nack(false, false)
		return
	}

	err = w.deliver(&payload)
	if err != nil {
		w.Log.Error("MailerWorker.handleDelivery SMTP delivery failed",
			zap.String(constvars.LoggingQueueKey, w.Queue),
			zap.Error(err),
		)
		// drop rather than requeue, a poisoned payload would loop forever
		delivery.Nack(false, false)
		return
	}

	w.Log.Info("MailerWorker.handleDelivery email delivered",
		zap.String(constvars.LoggingQueueKey, w.Queue),
	)
	delivery.Ack(false)
}

func (w *MailerWorker) deliver(payload *requests.EmailPayload) error {
	from := payload.From
	if from == "" {
		from = w.Client.Sender
	}

	recipients := append([]string{}, payload.To...)
	recipients = append(recipients, payload.Cc...)
	recipients = append(recipients, payload.Bcc...)

	msg := []byte(fmt.Sprintf(
		constvars.EmailSendHTMLSubjectFormat,
		strings.Join(payload.To, ","),
		payload.Subject,
		payload.HTMLCode,
	))
	addr := fmt.Sprintf("%s:%d", w.Client.Host, w.Client.Port)
	return smtp.SendMail(addr, w.Client.Auth, from, recipients, msg)
}
