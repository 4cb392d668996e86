package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// ErrDeliveryFailed is returned when the mail provider rejects a message.
var ErrDeliveryFailed = errors.New("mail delivery failed")

type Email struct {
	To      string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// SimulatedMailer stands in for a real provider in development. It
// sleeps for the configured delivery delay and bounces any address
// whose local part carries a "+bounce" tag, which gives the retry and
// DLQ paths something real to chew on.
type SimulatedMailer struct {
	delay time.Duration
}

func NewSimulatedMailer(delay time.Duration) *SimulatedMailer {
	return &SimulatedMailer{delay: delay}
}

func (m *SimulatedMailer) Send(ctx context.Context, email Email) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(m.delay):
	}

	local, _, _ := strings.Cut(email.To, "@")
	if strings.Contains(local, "+bounce") {
		return fmt.Errorf("%w: recipient %s bounced", ErrDeliveryFailed, email.To)
	}

	slog.InfoContext(ctx, "email delivered",
		"to", email.To,
		"subject", email.Subject,
	)
	return nil
}
