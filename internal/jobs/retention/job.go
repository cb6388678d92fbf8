package retention

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
	"github.com/m04kA/SMC-PresenceBooking/pkg/types"
)

// ErrInvalidSchedule возвращается при некорректном cron выражении
var ErrInvalidSchedule = errors.New("retention: invalid schedule")

const runTimeout = time.Minute

// Job периодически удаляет прошедшие присутствия старше keepDays дней
type Job struct {
	purger       PresencePurger
	metrics      Metrics
	keepDays     int
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
	cron         *cron.Cron
}

// NewJob создает задачу очистки
// location - часовой пояс мероприятия, в нем вычисляется "сегодня" и расписание
func NewJob(purger PresencePurger, metrics Metrics, keepDays int, location *time.Location, logger Logger) *Job {
	if location == nil {
		location = time.UTC
	}
	return &Job{
		purger:       purger,
		metrics:      metrics,
		keepDays:     keepDays,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (j *Job) WithTimeProvider(tp TimeProvider) *Job {
	j.timeProvider = tp
	return j
}

// Cutoff возвращает дату, присутствия раньше которой удаляются
func (j *Job) Cutoff() types.Date {
	today := types.DateOf(j.timeProvider.Now().In(j.location))
	return today.AddDays(-j.keepDays)
}

// RunOnce выполняет одну очистку
func (j *Job) RunOnce(ctx context.Context) (int64, error) {
	cutoff := j.Cutoff()

	removed, err := j.purger.DeleteBefore(ctx, cutoff)
	if err != nil {
		j.logger.Error("Retention: failed to purge presences before %s: %v", cutoff, err)
		return 0, err
	}

	for i := int64(0); i < removed; i++ {
		j.metrics.RecordPresenceEvent(domain.EventPresencePurged)
	}

	j.logger.Info("Retention: purged %d presences before %s", removed, cutoff)
	return removed, nil
}

// Start регистрирует задачу по cron расписанию (5 полей) и запускает планировщик
func (j *Job) Start(schedule string) error {
	c := cron.New(cron.WithLocation(j.location))

	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()
		_, _ = j.RunOnce(ctx)
	})
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidSchedule, schedule, err)
	}

	j.cron = c
	c.Start()
	j.logger.Info("Retention: scheduled %q, keep_days=%d", schedule, j.keepDays)
	return nil
}

// Stop останавливает планировщик и ждет завершения текущего запуска (не дольше ctx)
func (j *Job) Stop(ctx context.Context) {
	if j.cron == nil {
		return
	}

	select {
	case <-j.cron.Stop().Done():
	case <-ctx.Done():
	}
}
