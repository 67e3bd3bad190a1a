package email

import (
	"fleamarket_backend/internal/logger"
)

// Notifier отправляет письма в отдельной горутине.
// Ошибки транспорта логируются и не доходят до вызывающего:
// HTTP-ответ не ждет SMTP и не зависит от его сбоев.
type Notifier struct {
	provider Provider
}

func NewNotifier(provider Provider) *Notifier {
	return &Notifier{provider: provider}
}

// SendAsync ставит отправку письма в фон (fire-and-forget).
func (n *Notifier) SendAsync(to []string, subject, body string) {
	if n == nil || n.provider == nil {
		return
	}

	go func() {
		if err := n.provider.Send(to, subject, body); err != nil {
			logger.Error("failed to send email",
				"error", err.Error(),
				"subject", subject,
			)
		}
	}()
}
