package telegram

import (
	"context"
	"fmt"
	"math"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const sendRetries = 3

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для отправки Telegram-уведомлений
type Client struct {
	bot *tgbotapi.BotAPI
	log Logger
}

// NewClient создает новый экземпляр Telegram-клиента
func NewClient(token string, log Logger) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	log.Info("Telegram bot authorized as @%s", bot.Self.UserName)

	return &Client{
		bot: bot,
		log: log,
	}, nil
}

// SendMessage отправляет текстовое сообщение в чат.
// До трёх попыток с экспоненциальной паузой между ними.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)

	var err error
	for i := 0; i < sendRetries; i++ {
		if i != 0 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("%w: %v", ErrSendFailed, ctx.Err())
			case <-time.After(time.Duration(math.Pow(2, float64(i))) * time.Second):
			}
		}

		if _, err = c.bot.Send(msg); err == nil {
			return nil
		}
		c.log.Warn("SendMessage: chat=%d attempt %d failed: %v", chatID, i+1, err)
	}

	c.log.Error("SendMessage: chat=%d permanently failed: %v", chatID, err)
	return fmt.Errorf("%w: %v", ErrSendFailed, err)
}
