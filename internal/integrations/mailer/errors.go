package mailer

import "errors"

var (
	// ErrDisabled возвращается, если отправка писем выключена в конфигурации
	ErrDisabled = errors.New("mailer client: disabled")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailer client: internal error")

	// ErrInvalidResponse возвращается при неуспешном ответе почтового API
	ErrInvalidResponse = errors.New("mailer client: invalid response")
)
