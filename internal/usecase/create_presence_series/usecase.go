package create_presence_series

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
	"github.com/m04kA/SMC-PresenceBooking/internal/validation"
)

// UseCase use case создания серии присутствий по правилу повторения
type UseCase struct {
	presenceService PresenceService
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(presenceService PresenceService, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		presenceService: presenceService,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute создает по присутствию на каждое повторение правила
// Все присутствия создаются в одной транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreatePresenceSeries: rule=%q, location=%q, first date=%s", req.Rule, req.Input.Location, req.Input.Date)

	// 1. Валидация полей первого присутствия
	base, err := validation.ValidatePresence(req.Input)
	if err != nil {
		uc.logger.Warn("CreatePresenceSeries: validation failed: %v", err)
		return nil, err
	}

	// 2. Раскрываем правило
	dates, err := expandRule(req.Rule, base.Date, domain.MaxSeriesOccurrences)
	if err != nil {
		uc.logger.Warn("CreatePresenceSeries: rule rejected: %v", err)
		return nil, err
	}

	// 3. Создаем все присутствия со слотами
	created, err := uc.presenceService.CreateSeries(ctx, seriesFields(base, dates))
	if err != nil {
		uc.logger.Error("CreatePresenceSeries: failed to create series: %v", err)
		return nil, fmt.Errorf("%w: failed to create series: %v", ErrInternal, err)
	}

	for range created {
		uc.metrics.RecordPresenceEvent(domain.EventPresenceCreated)
	}
	uc.logger.Info("CreatePresenceSeries: %d presences created", len(created))

	return &Response{Presences: created}, nil
}
