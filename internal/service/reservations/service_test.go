package reservations

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
	reservationRepo "github.com/m04kA/SMC-PresenceBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-PresenceBooking/pkg/logger"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetByToken(ctx context.Context, token string) (*domain.Reservation, error) {
	args := m.Called(ctx, token)
	res, _ := args.Get(0).(*domain.Reservation)
	return res, args.Error(1)
}

func (m *mockRepo) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]*domain.Reservation)
	return list, args.Error(1)
}

func (m *mockRepo) DeleteByID(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type countingMetrics struct {
	events []string
}

func (c *countingMetrics) RecordReservationEvent(event string) {
	c.events = append(c.events, event)
}

func TestService_List_ClampsLimit(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo, &countingMetrics{}, 50, logger.Nop())
	ctx := context.Background()

	repo.On("List", ctx, domain.ReservationFilter{Limit: 50, Offset: 0}).Return([]*domain.Reservation{}, nil).Twice()

	_, err := svc.List(ctx, domain.ReservationFilter{Limit: 1000})
	require.NoError(t, err)
	_, err = svc.List(ctx, domain.ReservationFilter{Offset: -3})
	require.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestService_GetByToken(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo, &countingMetrics{}, 0, logger.Nop())
	ctx := context.Background()

	repo.On("GetByToken", ctx, "missing").Return(nil, reservationRepo.ErrReservationNotFound)
	repo.On("GetByToken", ctx, "broken").Return(nil, errors.New("disk full"))
	repo.On("GetByToken", ctx, "ok").Return(&domain.Reservation{ID: 7, Token: "ok"}, nil)

	_, err := svc.GetByToken(ctx, "")
	assert.ErrorIs(t, err, ErrReservationNotFound)

	_, err = svc.GetByToken(ctx, "missing")
	assert.ErrorIs(t, err, ErrReservationNotFound)

	_, err = svc.GetByToken(ctx, "broken")
	assert.ErrorIs(t, err, ErrInternal)

	res, err := svc.GetByToken(ctx, "ok")
	require.NoError(t, err)
	assert.Equal(t, int64(7), res.ID)
}

func TestService_DeleteByID(t *testing.T) {
	repo := new(mockRepo)
	metrics := &countingMetrics{}
	svc := NewService(repo, metrics, 0, logger.Nop())
	ctx := context.Background()

	repo.On("DeleteByID", ctx, int64(1)).Return(nil)
	repo.On("DeleteByID", ctx, int64(2)).Return(reservationRepo.ErrReservationNotFound)

	require.NoError(t, svc.DeleteByID(ctx, 1))
	assert.ErrorIs(t, svc.DeleteByID(ctx, 2), ErrReservationNotFound)
	assert.Equal(t, []string{domain.EventReservationDeleted}, metrics.events)
}
