package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client SMTP-клиент для email-уведомлений
type Client struct {
	host     string
	port     int
	username string
	password string
	from     string
	log      Logger
}

// NewClient создает новый экземпляр SMTP-клиента
func NewClient(host string, port int, username, password, from string, log Logger) *Client {
	return &Client{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		log:      log,
	}
}

// Send отправляет письмо одному получателю.
// Контекст проверяется до обращения к SMTP-серверу; сам smtp.SendMail
// ограничен таймаутами соединения на стороне сервера.
func (c *Client) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	msg := buildMessage(c.from, to, subject, body)
	addr := fmt.Sprintf("%s:%d", c.host, c.port)

	var auth smtp.Auth
	if c.username != "" {
		auth = smtp.PlainAuth("", c.username, c.password, c.host)
	}

	if err := smtp.SendMail(addr, auth, c.from, []string{to}, msg); err != nil {
		c.log.Error("Send: email to %s failed: %v", to, err)
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	c.log.Info("Send: email delivered to %s", to)
	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("From: %s\r\n", from))
	b.WriteString(fmt.Sprintf("To: %s\r\n", to))
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
