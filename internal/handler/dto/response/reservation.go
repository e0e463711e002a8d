package response

import (
	"room-reserve/internal/usecase/queries"
)

type ReservationResponse struct {
	ID        int64  `json:"id"`
	RoomID    int    `json:"roomId"`
	Start     string `json:"start"`
	End       string `json:"end"`
	CreatedAt string `json:"createdAt"`
}

type RoomResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Reservations int    `json:"reservations"`
}

// ConflictDetail identifies the existing reservation that blocked a
// create, so clients can show or free the colliding slot.
type ConflictDetail struct {
	ReservationID int64  `json:"reservationId"`
	Start         string `json:"start"`
	End           string `json:"end"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:        v.ID,
		RoomID:    v.RoomID,
		Start:     v.Start,
		End:       v.End,
		CreatedAt: v.CreatedAt,
	}
}

func FromRoomView(v queries.RoomView) *RoomResponse {
	return &RoomResponse{
		ID:           v.ID,
		Name:         v.Name,
		Reservations: v.ReservationCount,
	}
}
