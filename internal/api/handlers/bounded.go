package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// ErrReadTimeout чтение не уложилось в отведенное время
var ErrReadTimeout = errors.New("handlers: bounded read timed out")

const degradedPage = `<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>Service unavailable</title></head>
<body><p>Хранилище временно недоступно.</p><p><a href="%s">Проверить состояние сервиса</a></p></body></html>
`

// BoundedRead запускает чтения параллельно и ждет их не дольше timeout
// Возвращает первую ошибку чтения или ErrReadTimeout. Чтения получают
// контекст, который отменяется по таймауту или при первой ошибке
func BoundedRead(ctx context.Context, timeout time.Duration, reads ...func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	for _, read := range reads {
		g.Go(func() error {
			return read(gctx)
		})
	}

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
	}()

	select {
	case err := <-done:
		if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w: %v", ErrReadTimeout, err)
		}
		return err
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrReadTimeout, ctx.Err())
	}
}

// RespondDegraded 503 с простой страницей состояния и ссылкой на проверку живости
func RespondDegraded(w http.ResponseWriter, healthPath string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusServiceUnavailable)
	_, _ = fmt.Fprintf(w, degradedPage, healthPath)
}
