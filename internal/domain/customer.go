package domain

type Customer struct {
	ID    string `validate:"required,notblank"`
	Name  string `validate:"required,notblank"`
	Email string `validate:"required,notblank"`
}
