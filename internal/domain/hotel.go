package domain

type Hotel struct {
	ID       string `validate:"required,notblank"`
	Name     string `validate:"required,notblank"`
	Rooms    int    `validate:"gt=0"`
	Location string `validate:"required,notblank"`
}
