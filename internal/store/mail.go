package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ilydev-openproject/salesaice/internal/dependency"
	"github.com/ilydev-openproject/salesaice/internal/entity"
)

type mailStore struct {
	*MYSQLStore
}

// Mail returns an object implementing mail interface
func (ms *MYSQLStore) Mail() dependency.Mail {
	return &mailStore{
		MYSQLStore: ms,
	}
}

func (ms *mailStore) AddMail(ctx context.Context, ser *entity.SendEmailRequest) (int, error) {
	query := `
	INSERT INTO
	send_email_request
		(from_email, to_email, html, subject, reply_to, digest_day, sent, sent_at)
	VALUES
		(:fromEmail, :toEmail, :html, :subject, :replyTo, :digestDay, :sent, :sentAt)
	`
	params := map[string]any{
		"fromEmail": ser.From,
		"toEmail":   ser.To,
		"html":      ser.Html,
		"subject":   ser.Subject,
		"replyTo":   ser.ReplyTo,
		"digestDay": ser.DigestDay,
		"sent":      ser.Sent,
		"sentAt":    sql.NullTime{Time: time.Now(), Valid: ser.Sent},
	}

	id, err := ExecNamedLastId(ctx, ms.DB(), query, params)
	if err != nil {
		return 0, fmt.Errorf("failed to add mail: %w", err)
	}

	return id, nil
}

func (ms *mailStore) GetAllUnsent(ctx context.Context, withError bool) ([]entity.SendEmailRequest, error) {
	query := `SELECT * FROM send_email_request WHERE sent = false AND error_msg IS NULL ORDER BY id`
	if withError {
		query = `SELECT * FROM send_email_request WHERE sent = false ORDER BY id`
	}

	srs, err := QueryListNamed[entity.SendEmailRequest](ctx, ms.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("failed to get unsent mails: %w", err)
	}

	return srs, nil
}

func (ms *mailStore) UpdateSent(ctx context.Context, id int) error {
	_, err := ExecNamed(ctx, ms.DB(), `UPDATE send_email_request SET sent = true, sent_at = :sentAt WHERE id = :id`, map[string]any{
		"id":     id,
		"sentAt": sql.NullTime{Time: time.Now(), Valid: true},
	})
	if err != nil {
		return fmt.Errorf("failed to update sent: %w", err)
	}
	return nil
}

func (ms *mailStore) AddError(ctx context.Context, id int, errMsg string) error {
	_, err := ExecNamed(ctx, ms.DB(), `UPDATE send_email_request SET error_msg = :err WHERE id = :id`, map[string]any{
		"id":  id,
		"err": errMsg,
	})
	if err != nil {
		return fmt.Errorf("failed to add mail error: %w", err)
	}
	return nil
}

func (ms *mailStore) DigestQueued(ctx context.Context, day string) (bool, error) {
	var n int
	err := ms.DB().GetContext(ctx, &n, `SELECT COUNT(*) FROM send_email_request WHERE digest_day = ?`, day)
	if err != nil {
		return false, fmt.Errorf("failed to check digest: %w", err)
	}
	return n > 0, nil
}
