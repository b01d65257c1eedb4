package notify

import "context"

// TelegramSender канал доставки через Telegram
type TelegramSender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// MailSender канал доставки через email
type MailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
