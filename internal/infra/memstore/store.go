package memstore

import (
	"fmt"
	"sort"
	"sync"

	"room-reserve/internal/domain/reservation"
	"room-reserve/internal/pkg/config"
	"room-reserve/internal/usecase/queries"
)

// Store owns the fixed room catalog, each room's reservations and the
// global reservation id allocator. It is the only component that
// mutates reservation collections.
//
// The overlap check and the insert run under one mutex hold, so a
// create is atomic even though the HTTP server handles requests
// concurrently. Nothing else about the contract depends on the lock.
type Store struct {
	mu        sync.Mutex
	rooms     []*room
	nextID    int64
	roomCount int
	factory   *reservation.Factory
}

type room struct {
	id           int
	name         string
	reservations []*reservation.Reservation
}

func New(cfg config.ReservationConfig, factory *reservation.Factory) *Store {
	s := &Store{
		roomCount: cfg.RoomCount,
		factory:   factory,
	}
	s.resetLocked()
	return s
}

// resetLocked restores the initial catalog: sequential room ids from 1,
// empty collections, id counter back to 1.
func (s *Store) resetLocked() {
	rooms := make([]*room, s.roomCount)
	for i := range rooms {
		rooms[i] = &room{
			id:   i + 1,
			name: fmt.Sprintf("Room %d", i+1),
		}
	}
	s.rooms = rooms
	s.nextID = 1
}

// Reset discards all reservations and restores the original empty
// rooms. Exposed for test isolation and development resets.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *Store) findRoomLocked(roomID int) (*room, error) {
	for _, r := range s.rooms {
		if r.id == roomID {
			return r, nil
		}
	}
	return nil, NewStoreErr(KindRoomNotFound, fmt.Sprintf("room %d does not exist", roomID), nil)
}

// Add detects conflicts against the room's reservations, allocates the
// next id and appends the new record. The interval must already have
// passed validation; the store never re-validates it.
func (s *Store) Add(roomID int, iv reservation.Interval) (*reservation.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rm, err := s.findRoomLocked(roomID)
	if err != nil {
		return nil, err
	}

	if conflict := reservation.FindConflict(iv, rm.reservations); conflict != nil {
		return nil, NewStoreErr(KindConflict, "time slot already reserved", conflict)
	}

	id := s.nextID
	s.nextID++

	created := s.factory.CreateReservation(id, iv)
	rm.reservations = append(rm.reservations, created)
	return created, nil
}

// List returns the room's reservations sorted by ascending start.
// Records are held in insertion order, so each read sorts a copy.
func (s *Store) List(roomID int) ([]*reservation.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rm, err := s.findRoomLocked(roomID)
	if err != nil {
		return nil, err
	}

	out := make([]*reservation.Reservation, len(rm.reservations))
	copy(out, rm.reservations)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Start() < out[j].Start()
	})
	return out, nil
}

// Remove deletes the reservation by id from the room and returns it.
// Ids are never reused, so a second remove of the same id reports
// KindReservationNotFound.
func (s *Store) Remove(roomID int, reservationID int64) (*reservation.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rm, err := s.findRoomLocked(roomID)
	if err != nil {
		return nil, err
	}

	for i, r := range rm.reservations {
		if r.ID() == reservationID {
			rm.reservations = append(rm.reservations[:i], rm.reservations[i+1:]...)
			return r, nil
		}
	}
	return nil, NewStoreErr(KindReservationNotFound, fmt.Sprintf("reservation %d not in room %d", reservationID, roomID), nil)
}

// Rooms reports the catalog with current occupancy counts.
func (s *Store) Rooms() []queries.RoomView {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]queries.RoomView, len(s.rooms))
	for i, r := range s.rooms {
		out[i] = queries.RoomView{
			ID:               r.id,
			Name:             r.name,
			ReservationCount: len(r.reservations),
		}
	}
	return out
}
