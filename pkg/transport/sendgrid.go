package transport

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGrid delivers mail through the SendGrid HTTP API. It addresses only
// the first recipient of the ledger field; unlike the SMTP variant it does
// not fan out (a known asymmetry, see the package doc).
type SendGrid struct {
	client *sendgrid.Client
	log    *slog.Logger
}

// NewSendGrid creates the API-based transport with a static key.
func NewSendGrid(apiKey string, log *slog.Logger) *SendGrid {
	return &SendGrid{
		client: sendgrid.NewSendClient(apiKey),
		log:    log,
	}
}

var _ Transport = (*SendGrid)(nil)

// Send implements Transport. Success is the API reporting 202 Accepted; any
// other status fails the row with the status code and the first error
// detail from the response body.
func (s *SendGrid) Send(ctx context.Context, msg *Message) error {
	addrs := Recipients(msg.To)
	if len(addrs) == 0 {
		return fmt.Errorf("%w: no recipient address", ErrDeliveryFailed)
	}

	from := sgmail.NewEmail(msg.FromName, msg.From)
	to := sgmail.NewEmail(msg.ToName, addrs[0])
	mail := sgmail.NewSingleEmail(from, msg.Subject, to, msg.Body, "")

	if len(msg.Attachment.Content) > 0 {
		attachment := sgmail.NewAttachment()
		attachment.SetFilename(msg.Attachment.Filename)
		attachment.SetType("application/pdf")
		attachment.SetDisposition("attachment")
		attachment.SetContent(base64.StdEncoding.EncodeToString(msg.Attachment.Content))
		mail.AddAttachment(attachment)
	}

	response, err := s.client.SendWithContext(ctx, mail)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	if response.StatusCode != http.StatusAccepted {
		return fmt.Errorf("%w: status %d: %s",
			ErrDeliveryFailed, response.StatusCode, firstErrorDetail(response.Body))
	}

	s.log.Info("mail sent",
		slog.String("transport", "sendgrid"),
		slog.String("to", addrs[0]),
		slog.String("name", msg.ToName))
	return nil
}

// firstErrorDetail extracts the first error message from a SendGrid error
// response body, falling back to the raw body when it does not decode.
func firstErrorDetail(body string) string {
	var payload struct {
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err == nil && len(payload.Errors) > 0 {
		return payload.Errors[0].Message
	}
	return body
}
