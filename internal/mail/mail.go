package mail

import (
	"context"
	"embed"
	"fmt"
	"path"
	"strings"
	"text/template"
	"time"

	"github.com/ilydev-openproject/salesaice/internal/dependency"
	"github.com/ilydev-openproject/salesaice/internal/dto"
	"github.com/ilydev-openproject/salesaice/internal/entity"
	"golang.org/x/text/language"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

type Config struct {
	APIKey         string        `mapstructure:"sendgrid_api_key"`
	FromEmail      string        `mapstructure:"from_email"`
	FromName       string        `mapstructure:"from_email_name"`
	ReplyTo        string        `mapstructure:"reply_to"`
	DigestTo       string        `mapstructure:"digest_to"`
	DigestHour     int           `mapstructure:"digest_hour"`
	Language       string        `mapstructure:"language"`
	WorkerInterval time.Duration `mapstructure:"worker_interval"`
}

// Enabled reports whether enough is configured to send mail.
func (c *Config) Enabled() bool {
	return c != nil && c.APIKey != "" && c.DigestTo != ""
}

type Mailer struct {
	cli            dependency.Sender
	mailRepository dependency.Mail
	c              *Config
	lang           language.Tag
	ctx            context.Context
	cancel         context.CancelFunc
	templates      map[string]*template.Template
}

func New(c *Config, mailRepository dependency.Mail) (*Mailer, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("incomplete config: sendgrid api key is empty")
	}
	return newMailer(c, mailRepository, newSendgridSender(c.APIKey))
}

func newMailer(c *Config, mailRepository dependency.Mail, cli dependency.Sender) (*Mailer, error) {
	if c.FromEmail == "" || c.FromName == "" || c.DigestTo == "" {
		return nil, fmt.Errorf("incomplete config: from_email, from_email_name and digest_to are required")
	}
	if c.WorkerInterval <= 0 {
		c.WorkerInterval = time.Minute
	}

	lang := language.Indonesian
	if c.Language != "" {
		tag, err := language.Parse(c.Language)
		if err != nil {
			return nil, fmt.Errorf("invalid mail language %q: %w", c.Language, err)
		}
		lang = tag
	}

	m := &Mailer{
		cli:            cli,
		mailRepository: mailRepository,
		c:              c,
		lang:           lang,
		templates:      make(map[string]*template.Template),
	}

	if err := m.parseTemplates(); err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}

	return m, nil
}

func (m *Mailer) parseTemplates() error {
	templateDir := "templates"

	dirEntries, err := templatesFS.ReadDir(templateDir)
	if err != nil {
		return fmt.Errorf("error reading template directory: %w", err)
	}

	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}

		templatePath := path.Join(templateDir, entry.Name())

		tmpl, err := template.ParseFS(templatesFS, templatePath)
		if err != nil {
			return fmt.Errorf("error parsing template '%s': %w", entry.Name(), err)
		}

		m.templates[entry.Name()] = tmpl
	}

	return nil
}

func (m *Mailer) buildSendMailRequest(to, tn string, data any) (*entity.SendEmailRequest, error) {
	tmpl, ok := m.templates[tn]
	if !ok {
		return nil, fmt.Errorf("template not found: %v", tn)
	}

	subject, ok := templateSubjects[tn]
	if !ok {
		return nil, fmt.Errorf("subject not found for template: %v", tn)
	}

	body := &strings.Builder{}
	if err := tmpl.Execute(body, data); err != nil {
		return nil, fmt.Errorf("error executing template: %w", err)
	}

	replyTo := m.c.ReplyTo
	if replyTo == "" {
		replyTo = m.c.FromEmail
	}

	return &entity.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", m.c.FromName, m.c.FromEmail),
		To:      to,
		Html:    body.String(),
		Subject: subject,
		ReplyTo: replyTo,
	}, nil
}

// QueueDigest stores the daily digest for day in the outgoing queue. It is a
// no-op when a digest for that day is already queued.
func (m *Mailer) QueueDigest(ctx context.Context, day string, d *entity.Dashboard) error {
	queued, err := m.mailRepository.DigestQueued(ctx, day)
	if err != nil {
		return fmt.Errorf("can't check queued digest: %w", err)
	}
	if queued {
		return nil
	}

	ser, err := m.buildSendMailRequest(m.c.DigestTo, DailyDigest, dto.ConvertDashboardToDigest(day, d, m.lang))
	if err != nil {
		return err
	}
	ser.DigestDay.String, ser.DigestDay.Valid = day, true

	if _, err := m.mailRepository.AddMail(ctx, ser); err != nil {
		return fmt.Errorf("can't queue digest: %w", err)
	}
	return nil
}

// DigestDue reports whether the digest for the day of now should be queued.
func (m *Mailer) DigestDue(now time.Time) bool {
	return now.Hour() >= m.c.DigestHour
}
