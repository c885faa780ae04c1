package entity

import (
	"database/sql"
	"time"
)

// SendEmailRequest is a queued outgoing email. DigestDay is set for daily
// digests and unique per day.
type SendEmailRequest struct {
	Id        int            `db:"id"`
	From      string         `db:"from_email"`
	To        string         `db:"to_email"`
	Html      string         `db:"html"`
	Subject   string         `db:"subject"`
	ReplyTo   string         `db:"reply_to"`
	DigestDay sql.NullString `db:"digest_day"`
	Sent      bool           `db:"sent"`
	SentAt    sql.NullTime   `db:"sent_at"`
	CreatedAt time.Time      `db:"created_at"`
	ErrMsg    sql.NullString `db:"error_msg"`
}
