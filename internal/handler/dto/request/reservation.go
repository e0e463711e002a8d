package request

// CreateReservationRequest carries the raw textual bounds of a
// candidate reservation. Pointers distinguish absent fields from empty
// strings; the usecase layer parses and validates the text itself.
type CreateReservationRequest struct {
	Start *string `json:"start" binding:"required"`
	End   *string `json:"end" binding:"required"`
}
