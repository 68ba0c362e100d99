package mailer_test

import (
	"context"
	"errors"
	"testing"

	"reserve/config"
	"reserve/infras/kafka"
	kafkaMocks "reserve/infras/kafka/mocks"
	"reserve/infras/mailer"
	"reserve/infras/otel/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSend(t *testing.T) {
	cfg := &config.Config{}
	cfg.Booking.Email.Topic = "booking-emails"

	msg := mailer.Message{
		TargetEmail:   "abc123@nyu.edu",
		Status:        "APPROVED",
		HeaderMessage: "Your reservation request has been approved.",
		Contents:      map[string]any{"requestNumber": 42},
	}

	tests := []struct {
		name    string
		message mailer.Message
		mock    func(client *kafkaMocks.MockClient)
		wantErr error
	}{
		{
			name:    "publishes on the tenant topic",
			message: msg,
			mock: func(client *kafkaMocks.MockClient) {
				want := msg
				want.TemplateName = mailer.TemplateBookingDetail

				client.EXPECT().
					Publish(gomock.Any(), "mc-booking-emails", kafka.Message{
						Key:     "evt-1",
						Value:   want,
						Headers: map[string]string{"tenant": "mc", "template": mailer.TemplateBookingDetail},
					}).
					Return(nil)
			},
		},
		{
			name:    "missing recipient",
			message: mailer.Message{Status: "APPROVED"},
			mock:    func(_ *kafkaMocks.MockClient) {},
			wantErr: mailer.ErrNoRecipient,
		},
		{
			name:    "broker failure",
			message: msg,
			mock: func(client *kafkaMocks.MockClient) {
				client.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
			},
			wantErr: errors.New("failed to publish email: broker down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := kafkaMocks.NewMockClient(ctrl)
			tt.mock(client)

			m := mailer.New(client, cfg, mocks.NewOtel())

			err := m.Send(context.Background(), "mc", "evt-1", tt.message)

			switch {
			case tt.wantErr == nil:
				assert.NoError(t, err)
			case errors.Is(tt.wantErr, mailer.ErrNoRecipient):
				assert.ErrorIs(t, err, mailer.ErrNoRecipient)
			default:
				assert.EqualError(t, err, tt.wantErr.Error())
			}
		})
	}
}
