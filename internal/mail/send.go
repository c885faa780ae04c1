package mail

import (
	"context"
	"fmt"
	"net/http"
	"net/mail"

	"github.com/ilydev-openproject/salesaice/internal/entity"
	gerr "github.com/ilydev-openproject/salesaice/internal/errors"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const (
	DailyDigest = "daily_digest.gohtml"
)

var templateSubjects = map[string]string{
	DailyDigest: "Ringkasan penjualan harian",
}

type sendClient interface {
	SendWithContext(ctx context.Context, email *sgmail.SGMailV3) (*rest.Response, error)
}

// sendgridSender delivers queued emails through the sendgrid v3 API.
type sendgridSender struct {
	cli sendClient
}

func newSendgridSender(apiKey string) *sendgridSender {
	return &sendgridSender{cli: sendgrid.NewSendClient(apiKey)}
}

func parseAddress(s string) (*sgmail.Email, error) {
	a, err := mail.ParseAddress(s)
	if err != nil {
		return nil, err
	}
	return sgmail.NewEmail(a.Name, a.Address), nil
}

func (s *sendgridSender) Send(ctx context.Context, ser *entity.SendEmailRequest) error {
	from, err := parseAddress(ser.From)
	if err != nil {
		return gerr.BadMailRequest
	}
	to, err := parseAddress(ser.To)
	if err != nil {
		return gerr.BadMailRequest
	}

	msg := sgmail.NewSingleEmail(from, ser.Subject, to, "", ser.Html)
	if ser.ReplyTo != "" {
		if rt, err := parseAddress(ser.ReplyTo); err == nil {
			msg.SetReplyTo(rt)
		}
	}

	resp, err := s.cli.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return gerr.MailApiLimitReached
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("error sending email bad status code: %s, status code: %d", resp.Body, resp.StatusCode)
	}
	return nil
}
