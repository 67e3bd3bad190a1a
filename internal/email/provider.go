package email

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет простое текстовое письмо
	Send(to []string, subject, body string) error

	// Validate проверяет конфигурацию провайдера
	Validate() error
}
