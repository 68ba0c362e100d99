package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"fmt"

	"reserve/config"
	"reserve/infras/kafka"
	"reserve/infras/otel"
	"reserve/shared"
	"reserve/shared/constant"
)

const TemplateBookingDetail = "booking_detail"

const (
	headerTenant   = "tenant"
	headerTemplate = "template"
)

// Message is consumed by the mail worker, which renders TemplateName with Contents.
type Message struct {
	TargetEmail   string         `json:"targetEmail"`
	TemplateName  string         `json:"templateName"`
	Status        string         `json:"status"`
	HeaderMessage string         `json:"headerMessage"`
	Contents      map[string]any `json:"contents"`
}

type Mailer interface {
	Send(ctx context.Context, tenant, key string, message Message) error
}

type kafkaMailer struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(client kafka.Client, cfg *config.Config, otel otel.Otel) Mailer {
	return &kafkaMailer{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

// Send publishes the message on the tenant's email topic. Delivery is owned by the consumer.
func (m *kafkaMailer) Send(ctx context.Context, tenant, key string, message Message) (err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".mailer.Send")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if message.TargetEmail == constant.Empty {
		return ErrNoRecipient
	}

	if message.TemplateName == constant.Empty {
		message.TemplateName = TemplateBookingDetail
	}

	topic := shared.TenantCollection(tenant, m.cfg.Booking.Email.Topic)

	scope.SetAttributes(map[string]any{
		"topic":  topic,
		"status": message.Status,
	})

	envelope := kafka.Message{
		Key:     key,
		Value:   message,
		Headers: map[string]string{headerTenant: tenant, headerTemplate: message.TemplateName},
	}

	if err = m.client.Publish(ctx, topic, envelope); err != nil {
		return fmt.Errorf("failed to publish email: %w", err)
	}

	return nil
}
