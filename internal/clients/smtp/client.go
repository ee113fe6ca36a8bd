package smtp

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/careercrafter/backend/internal/config"
	"golang.org/x/time/rate"
)

// Sender is the raw transport seam; tests and relay deployments swap it out.
type Sender interface {
	Send(addr string, from string, to []string, msg []byte) error
}

type smtpSender struct {
	auth smtp.Auth
}

func (s *smtpSender) Send(addr string, from string, to []string, msg []byte) error {
	return smtp.SendMail(addr, s.auth, from, to, msg)
}

type Client struct {
	sender      Sender
	addr        string
	from        string
	rateLimiter *rate.Limiter
}

func NewClient(cfg config.MailConfig) *Client {

	var auth smtp.Auth
	if cfg.User != "" {
		auth = smtp.PlainAuth("", cfg.User, cfg.Password, cfg.Host)
	}

	client := &Client{
		sender: &smtpSender{auth: auth},
		addr:   fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		from:   cfg.From,
	}
	if cfg.MaxRequestsPerSecond > 0 {
		client.SetRateLimit(cfg.MaxRequestsPerSecond)
	}
	return client
}

func (c *Client) SetSender(sender Sender) {
	c.sender = sender
}

func (c *Client) SetRateLimit(maxRequestsPerSecond float32) {
	c.rateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerSecond), 1)
}

func (c *Client) Send(ctx context.Context, to string, subject string, body string) error {

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
	}

	msg := buildMessage(c.from, to, subject, body)

	done := make(chan error, 1)
	go func() {
		done <- c.sender.Send(c.addr, c.from, []string{to}, msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send mail to %s: %w", to, err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
