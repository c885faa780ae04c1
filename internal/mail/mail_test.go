package mail

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/ilydev-openproject/salesaice/internal/dependency/mocks"
	"github.com/ilydev-openproject/salesaice/internal/entity"
	gerr "github.com/ilydev-openproject/salesaice/internal/errors"
	"github.com/sendgrid/rest"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		FromEmail:  "laporan@salesaice.id",
		FromName:   "Salesaice",
		DigestTo:   "manager@salesaice.id",
		DigestHour: 20,
	}
}

func testDashboard() *entity.Dashboard {
	change := 12.5
	return &entity.Dashboard{
		Today: entity.Summary{
			Revenue:        1250000,
			Boxes:          42,
			OrderCount:     3,
			VisitCount:     5,
			ConversionRate: decimal.NewFromInt(60),
		},
		Month:         entity.Summary{Revenue: 35000000, Boxes: 900},
		RevenueChange: &change,
		Progress: entity.TargetProgress{
			Target:      entity.MonthlyTarget{BoxGoal: 1000},
			BoxProgress: decimal.NewFromInt(90),
		},
	}
}

func TestNewMailerConfig(t *testing.T) {
	_, err := New(&Config{}, nil)
	assert.Error(t, err)

	_, err = newMailer(&Config{FromEmail: "a@b.c"}, nil, mocks.NewSender(t))
	assert.Error(t, err)

	_, err = newMailer(&Config{FromEmail: "a@b.c", FromName: "A", DigestTo: "d@b.c", Language: "??"}, nil, mocks.NewSender(t))
	assert.Error(t, err)

	m, err := newMailer(testConfig(), nil, mocks.NewSender(t))
	require.NoError(t, err)
	assert.Equal(t, time.Minute, m.c.WorkerInterval)
	assert.Contains(t, m.templates, DailyDigest)
}

func TestQueueDigest(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMail(t)
	m, err := newMailer(testConfig(), repo, mocks.NewSender(t))
	require.NoError(t, err)

	repo.On("DigestQueued", mock.Anything, "2024-05-15").Return(false, nil).Once()
	repo.On("AddMail", mock.Anything, mock.MatchedBy(func(ser *entity.SendEmailRequest) bool {
		return ser.To == "manager@salesaice.id" &&
			ser.From == "Salesaice <laporan@salesaice.id>" &&
			ser.ReplyTo == "laporan@salesaice.id" &&
			ser.DigestDay.Valid && ser.DigestDay.String == "2024-05-15" &&
			strings.Contains(ser.Html, "1.250.000") &&
			strings.Contains(ser.Html, "+12.5%") &&
			strings.Contains(ser.Html, "Target dus")
	})).Return(1, nil).Once()

	require.NoError(t, m.QueueDigest(ctx, "2024-05-15", testDashboard()))

	repo.On("DigestQueued", mock.Anything, "2024-05-15").Return(true, nil).Once()
	require.NoError(t, m.QueueDigest(ctx, "2024-05-15", testDashboard()))
}

func TestDigestDue(t *testing.T) {
	m, err := newMailer(testConfig(), nil, mocks.NewSender(t))
	require.NoError(t, err)

	assert.False(t, m.DigestDue(time.Date(2024, 5, 15, 19, 59, 0, 0, time.UTC)))
	assert.True(t, m.DigestDue(time.Date(2024, 5, 15, 20, 0, 0, 0, time.UTC)))
}

func TestHandleUnsent(t *testing.T) {
	ctx := context.Background()

	t.Run("marks sent and records errors", func(t *testing.T) {
		repo := mocks.NewMail(t)
		sender := mocks.NewSender(t)
		m, err := newMailer(testConfig(), repo, sender)
		require.NoError(t, err)

		repo.On("GetAllUnsent", mock.Anything, false).Return([]entity.SendEmailRequest{
			{Id: 1, To: "a@salesaice.id"},
			{Id: 2, To: "b@salesaice.id"},
		}, nil)
		sender.On("Send", mock.Anything, mock.MatchedBy(func(ser *entity.SendEmailRequest) bool { return ser.Id == 1 })).Return(nil)
		sender.On("Send", mock.Anything, mock.MatchedBy(func(ser *entity.SendEmailRequest) bool { return ser.Id == 2 })).Return(errors.New("boom"))
		repo.On("UpdateSent", mock.Anything, 1).Return(nil).Once()
		repo.On("AddError", mock.Anything, 2, "boom").Return(nil).Once()

		require.NoError(t, m.handleUnsent(ctx))
	})

	t.Run("stops on api limit", func(t *testing.T) {
		repo := mocks.NewMail(t)
		sender := mocks.NewSender(t)
		m, err := newMailer(testConfig(), repo, sender)
		require.NoError(t, err)

		repo.On("GetAllUnsent", mock.Anything, false).Return([]entity.SendEmailRequest{
			{Id: 1, To: "a@salesaice.id"},
			{Id: 2, To: "b@salesaice.id"},
		}, nil)
		sender.On("Send", mock.Anything, mock.Anything).Return(gerr.MailApiLimitReached).Once()

		require.NoError(t, m.handleUnsent(ctx))
	})
}

func TestStartStop(t *testing.T) {
	repo := mocks.NewMail(t)
	c := testConfig()
	c.WorkerInterval = time.Hour
	m, err := newMailer(c, repo, mocks.NewSender(t))
	require.NoError(t, err)

	require.NoError(t, m.Start(context.Background()))
	assert.Error(t, m.Start(context.Background()))
	require.NoError(t, m.Stop())
	assert.Error(t, m.Stop())
}

type fakeClient struct {
	status int
	err    error
	sent   []*sgmail.SGMailV3
}

func (f *fakeClient) SendWithContext(_ context.Context, email *sgmail.SGMailV3) (*rest.Response, error) {
	f.sent = append(f.sent, email)
	if f.err != nil {
		return nil, f.err
	}
	return &rest.Response{StatusCode: f.status}, nil
}

func TestSendgridSender(t *testing.T) {
	ctx := context.Background()
	ser := &entity.SendEmailRequest{
		From:    "Salesaice <laporan@salesaice.id>",
		To:      "manager@salesaice.id",
		ReplyTo: "laporan@salesaice.id",
		Subject: "Ringkasan",
		Html:    "<b>hi</b>",
	}

	fc := &fakeClient{status: http.StatusAccepted}
	s := &sendgridSender{cli: fc}
	require.NoError(t, s.Send(ctx, ser))
	require.Len(t, fc.sent, 1)
	assert.Equal(t, "laporan@salesaice.id", fc.sent[0].From.Address)
	assert.Equal(t, "Salesaice", fc.sent[0].From.Name)
	assert.Equal(t, "laporan@salesaice.id", fc.sent[0].ReplyTo.Address)

	s = &sendgridSender{cli: &fakeClient{status: http.StatusTooManyRequests}}
	assert.ErrorIs(t, s.Send(ctx, ser), gerr.MailApiLimitReached)

	s = &sendgridSender{cli: &fakeClient{status: http.StatusBadRequest}}
	assert.Error(t, s.Send(ctx, ser))

	s = &sendgridSender{cli: &fakeClient{err: errors.New("dial tcp")}}
	assert.Error(t, s.Send(ctx, ser))

	bad := *ser
	bad.To = "not an address"
	s = &sendgridSender{cli: &fakeClient{status: http.StatusAccepted}}
	assert.ErrorIs(t, s.Send(ctx, &bad), gerr.BadMailRequest)
}
