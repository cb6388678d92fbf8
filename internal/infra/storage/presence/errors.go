package presence

import "errors"

var (
	// ErrPresenceNotFound возвращается, когда присутствие не найдено
	ErrPresenceNotFound = errors.New("presence.repository: presence not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("presence.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("presence.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("presence.repository: failed to scan row")
)
