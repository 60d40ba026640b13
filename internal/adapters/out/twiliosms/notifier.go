// Package twiliosms implements the outbound SMS port on top of the Twilio
// messaging API.
package twiliosms

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Notifier sends text messages through Twilio from a fixed sender number.
type Notifier struct {
	client *twilio.RestClient
	from   string
}

// NewNotifier creates a Twilio-backed SMS notifier.
func NewNotifier(accountSID string, authToken string, from string) *Notifier {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &Notifier{client: client, from: from}
}

// SendSMS delivers a text message to the given phone number.
func (n *Notifier) SendSMS(_ context.Context, phone string, message string) error {
	params := &twilioapi.CreateMessageParams{}
	params.SetTo(phone)
	params.SetFrom(n.from)
	params.SetBody(message)

	if _, err := n.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio send to %s: %w", phone, err)
	}

	return nil
}
