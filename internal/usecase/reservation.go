package usecase

import (
	"context"
	"errors"

	"room-reserve/internal/domain/reservation"
	"room-reserve/internal/infra/memstore"
	"room-reserve/internal/pkg/clock"
	"room-reserve/internal/pkg/errs"
	"room-reserve/internal/usecase/queries"
)

var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReservationConflict = errors.New("time slot conflict")
)

// ReservationStore is the persistence port. Add must run conflict
// detection and the append atomically; List must return reservations
// sorted by ascending start.
type ReservationStore interface {
	Add(roomID int, iv reservation.Interval) (*reservation.Reservation, error)
	List(roomID int) ([]*reservation.Reservation, error)
	Remove(roomID int, reservationID int64) (*reservation.Reservation, error)
	Rooms() []queries.RoomView
	Reset()
}

type ReservationUseCase interface {
	CreateReservation(ctx context.Context, roomID int, startRaw, endRaw string) (*queries.ReservationView, error)
	ListReservations(ctx context.Context, roomID int) ([]*queries.ReservationView, error)
	DeleteReservation(ctx context.Context, roomID int, reservationID int64) (*queries.ReservationView, error)
	ListRooms(ctx context.Context) ([]queries.RoomView, error)
	Reset(ctx context.Context) error
}

type reservationUseCaseImpl struct {
	store  ReservationStore
	clock  clock.Clock
	policy reservation.Policy
}

func NewReservationUseCase(store ReservationStore, clk clock.Clock, policy reservation.Policy) ReservationUseCase {
	return &reservationUseCaseImpl{
		store:  store,
		clock:  clk,
		policy: policy,
	}
}

// CreateReservation validates the candidate interval, then hands it to
// the store, which runs conflict detection and the insert as one step.
// The store is never touched before every validation check has passed.
func (u *reservationUseCaseImpl) CreateReservation(
	_ context.Context,
	roomID int,
	startRaw, endRaw string,
) (*queries.ReservationView, error) {
	iv, err := reservation.NewInterval(startRaw, endRaw, u.clock.Now(), u.policy)
	if err != nil {
		return nil, err
	}

	created, err := u.store.Add(roomID, iv)
	if err != nil {
		switch {
		case memstore.IsKind(err, memstore.KindRoomNotFound):
			return nil, ErrRoomNotFound
		case memstore.IsKind(err, memstore.KindConflict):
			return nil, errs.Mark(err, ErrReservationConflict)
		}
		return nil, errs.Wrap(err, "failed to store reservation")
	}

	return toReservationView(roomID, created), nil
}

func (u *reservationUseCaseImpl) ListReservations(_ context.Context, roomID int) ([]*queries.ReservationView, error) {
	stored, err := u.store.List(roomID)
	if err != nil {
		if memstore.IsKind(err, memstore.KindRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Wrap(err, "failed to list reservations")
	}

	views := make([]*queries.ReservationView, len(stored))
	for i, r := range stored {
		views[i] = toReservationView(roomID, r)
	}
	return views, nil
}

func (u *reservationUseCaseImpl) DeleteReservation(
	_ context.Context,
	roomID int,
	reservationID int64,
) (*queries.ReservationView, error) {
	removed, err := u.store.Remove(roomID, reservationID)
	if err != nil {
		switch {
		case memstore.IsKind(err, memstore.KindRoomNotFound):
			return nil, ErrRoomNotFound
		case memstore.IsKind(err, memstore.KindReservationNotFound):
			return nil, ErrReservationNotFound
		}
		return nil, errs.Wrap(err, "failed to remove reservation")
	}

	return toReservationView(roomID, removed), nil
}

func (u *reservationUseCaseImpl) ListRooms(_ context.Context) ([]queries.RoomView, error) {
	return u.store.Rooms(), nil
}

func (u *reservationUseCaseImpl) Reset(_ context.Context) error {
	u.store.Reset()
	return nil
}

func toReservationView(roomID int, r *reservation.Reservation) *queries.ReservationView {
	return &queries.ReservationView{
		ID:        r.ID(),
		RoomID:    roomID,
		Start:     r.StartDisplay(),
		End:       r.EndDisplay(),
		CreatedAt: r.CreatedAt(),
	}
}
