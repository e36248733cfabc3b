package domain

type Reservation struct {
	ID         string `validate:"required,notblank"`
	HotelID    string `validate:"required,notblank"`
	CustomerID string `validate:"required,notblank"`
	Room       int    `validate:"gt=0"`
}
