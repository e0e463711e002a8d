package queries

// Read models (DTO for read side)
type ReservationView struct {
	ID        int64  `json:"id"`
	RoomID    int    `json:"room_id"`
	Start     string `json:"start"`
	End       string `json:"end"`
	CreatedAt string `json:"created_at"`
}

type RoomView struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	ReservationCount int    `json:"reservation_count"`
}
