// Package notify delivers intake notifications to the brokerage inbox.
package notify

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/charterpoint/transport-leads-api/internal/config"
)

// EmailNotifier sends a plain-text email for each new submission. When
// the SMTP integration is disabled the message is logged instead, which
// is the development default.
type EmailNotifier struct {
	cfg  *config.EmailConfig
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewEmailNotifier creates a notifier bound to the given SMTP settings.
func NewEmailNotifier(cfg *config.EmailConfig) *EmailNotifier {
	return &EmailNotifier{cfg: cfg, send: smtp.SendMail}
}

// NotifyNewLead emails the intake inbox about a new submission. Errors
// are returned for logging only; callers must not fail the submission
// on notification problems.
func (n *EmailNotifier) NotifyNewLead(subject, body string) error {
	if !n.cfg.Enabled {
		log.Printf("[notify] %s (email disabled)", subject)
		return nil
	}

	msg := strings.Join([]string{
		fmt.Sprintf("From: %s", n.cfg.From),
		fmt.Sprintf("To: %s", n.cfg.IntakeInbox),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%s", n.cfg.Host, n.cfg.Port)
	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}

	if err := n.send(addr, auth, n.cfg.From, []string{n.cfg.IntakeInbox}, []byte(msg)); err != nil {
		return fmt.Errorf("send intake notification: %w", err)
	}
	return nil
}
