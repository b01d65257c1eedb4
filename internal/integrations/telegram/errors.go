package telegram

import "errors"

var (
	// ErrInvalidToken возвращается, когда не удалось авторизовать бота
	ErrInvalidToken = errors.New("telegram client: invalid bot token")

	// ErrSendFailed возвращается, когда сообщение не доставлено после всех попыток
	ErrSendFailed = errors.New("telegram client: failed to send message")
)
