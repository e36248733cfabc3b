package app_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hotel_reserva/internal/app"
	"hotel_reserva/internal/domain"
	"hotel_reserva/internal/storage/jsonfile"
)

func newService(t *testing.T) (*app.Service, string) {
	t.Helper()
	dir := t.TempDir()
	return app.NewService(jsonfile.New(dir)), dir
}

// seeded returns a service with hotel H1 (5 rooms) and customer C1 created.
func seeded(t *testing.T) *app.Service {
	t.Helper()
	svc, _ := newService(t)
	require.NoError(t, svc.CreateHotel(domain.Hotel{ID: "H1", Name: "Hotel Uno", Rooms: 5, Location: "CDMX"}))
	require.NoError(t, svc.CreateCustomer(domain.Customer{ID: "C1", Name: "Ana", Email: "ana@mail.com"}))
	return svc
}

func ptr[T any](v T) *T { return &v }

/********** hotels **********/

func TestCreateAndDisplayHotel(t *testing.T) {
	svc, _ := newService(t)
	h := domain.Hotel{ID: "H1", Name: "Hotel Uno", Rooms: 5, Location: "CDMX"}
	require.NoError(t, svc.CreateHotel(h))

	got, err := svc.HotelInfo("H1")
	require.NoError(t, err)
	require.Equal(t, h, got)
}

func TestCreateHotelDuplicateID(t *testing.T) {
	svc, _ := newService(t)
	require.NoError(t, svc.CreateHotel(domain.Hotel{ID: "H1", Name: "Hotel Uno", Rooms: 5, Location: "CDMX"}))

	// conflict regardless of the other field values
	err := svc.CreateHotel(domain.Hotel{ID: "H1", Name: "Other", Rooms: 99, Location: "GDL"})
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreateHotelValidation(t *testing.T) {
	svc, _ := newService(t)

	cases := []domain.Hotel{
		{ID: "", Name: "Uno", Rooms: 5, Location: "CDMX"},
		{ID: "H1", Name: "   ", Rooms: 5, Location: "CDMX"},
		{ID: "H1", Name: "Uno", Rooms: 0, Location: "CDMX"},
		{ID: "H1", Name: "Uno", Rooms: -1, Location: "CDMX"},
		{ID: "H1", Name: "Uno", Rooms: 5, Location: ""},
	}
	for _, h := range cases {
		require.ErrorIs(t, svc.CreateHotel(h), domain.ErrValidation, "hotel %+v", h)
	}

	// nothing persisted by the rejected creates
	_, err := svc.HotelInfo("H1")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestValidationMessagesNamePersistedField(t *testing.T) {
	svc, _ := newService(t)

	err := svc.CreateHotel(domain.Hotel{ID: "", Name: "Uno", Rooms: 5, Location: "CDMX"})
	require.ErrorIs(t, err, domain.ErrValidation)
	require.ErrorContains(t, err, "hotel_id cannot be empty")

	err = svc.CreateReservation(domain.Reservation{ID: "  ", HotelID: "H1", CustomerID: "C1", Room: 1})
	require.ErrorIs(t, err, domain.ErrValidation)
	require.ErrorContains(t, err, "reservation_id cannot be empty")

	err = svc.CreateCustomer(domain.Customer{ID: "C1", Name: "Ana", Email: ""})
	require.ErrorIs(t, err, domain.ErrValidation)
	require.ErrorContains(t, err, "email cannot be empty")

	err = svc.CreateHotel(domain.Hotel{ID: "H1", Name: "Uno", Rooms: 0, Location: "CDMX"})
	require.ErrorIs(t, err, domain.ErrValidation)
	require.ErrorContains(t, err, "rooms must be > 0")
}

func TestModifyHotelPartialUpdate(t *testing.T) {
	svc := seeded(t)

	require.NoError(t, svc.ModifyHotel("H1", app.HotelUpdate{Rooms: ptr(8)}))

	got, err := svc.HotelInfo("H1")
	require.NoError(t, err)
	require.Equal(t, 8, got.Rooms)
	require.Equal(t, "Hotel Uno", got.Name) // untouched
	require.Equal(t, "CDMX", got.Location)  // untouched
}

func TestModifyHotelValidatesSuppliedFields(t *testing.T) {
	svc := seeded(t)

	require.ErrorIs(t, svc.ModifyHotel("H1", app.HotelUpdate{Name: ptr("  ")}), domain.ErrValidation)
	require.ErrorIs(t, svc.ModifyHotel("H1", app.HotelUpdate{Rooms: ptr(0)}), domain.ErrValidation)
	require.ErrorIs(t, svc.ModifyHotel("H404", app.HotelUpdate{Name: ptr("X")}), domain.ErrNotFound)
}

func TestDeleteHotelCascadesReservations(t *testing.T) {
	svc, dir := newService(t)
	require.NoError(t, svc.CreateHotel(domain.Hotel{ID: "H1", Name: "Hotel Uno", Rooms: 5, Location: "CDMX"}))
	require.NoError(t, svc.CreateCustomer(domain.Customer{ID: "C1", Name: "Ana", Email: "ana@mail.com"}))
	require.NoError(t, svc.CreateReservation(domain.Reservation{ID: "R1", HotelID: "H1", CustomerID: "C1", Room: 1}))

	require.NoError(t, svc.DeleteHotel("H1"))

	_, err := svc.HotelInfo("H1")
	require.ErrorIs(t, err, domain.ErrNotFound)

	// the cascade persisted: the reservations slot is empty on disk
	recs, err := jsonfile.New(dir).Load(domain.SlotReservations)
	require.NoError(t, err)
	require.Empty(t, recs)

	// and the orphaned reservation is no longer retrievable
	require.ErrorIs(t, svc.CancelReservation("R1"), domain.ErrNotFound)
}

func TestDeleteHotelNotFound(t *testing.T) {
	svc, _ := newService(t)
	require.ErrorIs(t, svc.DeleteHotel("H404"), domain.ErrNotFound)
}

/********** customers **********/

func TestCreateAndDisplayCustomer(t *testing.T) {
	svc, _ := newService(t)
	c := domain.Customer{ID: "C1", Name: "Ana", Email: "ana@mail.com"}
	require.NoError(t, svc.CreateCustomer(c))

	got, err := svc.CustomerInfo("C1")
	require.NoError(t, err)
	require.Equal(t, c, got)
}

func TestCreateCustomerDuplicateID(t *testing.T) {
	svc := seeded(t)
	err := svc.CreateCustomer(domain.Customer{ID: "C1", Name: "Otra", Email: "otra@mail.com"})
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestModifyCustomerNameOnly(t *testing.T) {
	svc := seeded(t)

	require.NoError(t, svc.ModifyCustomer("C1", app.CustomerUpdate{Name: ptr("Ana Maria")}))

	got, err := svc.CustomerInfo("C1")
	require.NoError(t, err)
	require.Equal(t, "Ana Maria", got.Name)
	require.Equal(t, "ana@mail.com", got.Email) // unchanged
}

func TestDeleteCustomerCascadesReservations(t *testing.T) {
	svc, dir := newService(t)
	require.NoError(t, svc.CreateHotel(domain.Hotel{ID: "H1", Name: "Hotel Uno", Rooms: 5, Location: "CDMX"}))
	require.NoError(t, svc.CreateCustomer(domain.Customer{ID: "C1", Name: "Ana", Email: "ana@mail.com"}))
	require.NoError(t, svc.CreateReservation(domain.Reservation{ID: "R1", HotelID: "H1", CustomerID: "C1", Room: 2}))

	require.NoError(t, svc.DeleteCustomer("C1"))

	_, err := svc.CustomerInfo("C1")
	require.ErrorIs(t, err, domain.ErrNotFound)

	recs, err := jsonfile.New(dir).Load(domain.SlotReservations)
	require.NoError(t, err)
	require.Empty(t, recs)

	require.ErrorIs(t, svc.CancelReservation("R1"), domain.ErrNotFound)
}

/********** reservations **********/

func TestCreateReservationAndDoubleBooking(t *testing.T) {
	svc := seeded(t)

	require.NoError(t, svc.CreateReservation(domain.Reservation{ID: "R1", HotelID: "H1", CustomerID: "C1", Room: 1}))

	err := svc.CreateReservation(domain.Reservation{ID: "R2", HotelID: "H1", CustomerID: "C1", Room: 1})
	require.ErrorIs(t, err, domain.ErrConflict)
	require.ErrorContains(t, err, "already reserved")
}

func TestCreateReservationHotelNotFound(t *testing.T) {
	svc, _ := newService(t)
	require.NoError(t, svc.CreateCustomer(domain.Customer{ID: "C1", Name: "Ana", Email: "ana@mail.com"}))

	err := svc.CreateReservation(domain.Reservation{ID: "R1", HotelID: "H999", CustomerID: "C1", Room: 1})
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.ErrorContains(t, err, "hotel not found")
}

func TestCreateReservationCustomerNotFound(t *testing.T) {
	svc := seeded(t)

	err := svc.CreateReservation(domain.Reservation{ID: "R1", HotelID: "H1", CustomerID: "C999", Room: 1})
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.ErrorContains(t, err, "customer not found")
}

func TestCreateReservationExceedsCapacity(t *testing.T) {
	svc := seeded(t) // H1 has 5 rooms

	err := svc.CreateReservation(domain.Reservation{ID: "R1", HotelID: "H1", CustomerID: "C1", Room: 6})
	require.ErrorIs(t, err, domain.ErrCapacity)
}

func TestCreateReservationDuplicateID(t *testing.T) {
	svc := seeded(t)
	require.NoError(t, svc.CreateReservation(domain.Reservation{ID: "R1", HotelID: "H1", CustomerID: "C1", Room: 1}))

	err := svc.CreateReservation(domain.Reservation{ID: "R1", HotelID: "H1", CustomerID: "C1", Room: 2})
	require.ErrorIs(t, err, domain.ErrConflict)
	require.ErrorContains(t, err, "already exists")
}

func TestCreateReservationCheckOrder(t *testing.T) {
	svc, _ := newService(t)

	// shape errors before existence errors
	err := svc.CreateReservation(domain.Reservation{ID: "R1", HotelID: "H999", CustomerID: "C999", Room: 0})
	require.ErrorIs(t, err, domain.ErrValidation)

	// hotel existence before customer existence
	err = svc.CreateReservation(domain.Reservation{ID: "R1", HotelID: "H999", CustomerID: "C999", Room: 1})
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.ErrorContains(t, err, "hotel not found")
}

func TestSameRoomDifferentHotels(t *testing.T) {
	svc := seeded(t)
	require.NoError(t, svc.CreateHotel(domain.Hotel{ID: "H2", Name: "Hotel Dos", Rooms: 3, Location: "GDL"}))

	require.NoError(t, svc.CreateReservation(domain.Reservation{ID: "R1", HotelID: "H1", CustomerID: "C1", Room: 1}))
	require.NoError(t, svc.CreateReservation(domain.Reservation{ID: "R2", HotelID: "H2", CustomerID: "C1", Room: 1}))
}

func TestCancelReservationTwice(t *testing.T) {
	svc := seeded(t)
	require.NoError(t, svc.CreateReservation(domain.Reservation{ID: "R1", HotelID: "H1", CustomerID: "C1", Room: 1}))

	require.NoError(t, svc.CancelReservation("R1"))
	require.ErrorIs(t, svc.CancelReservation("R1"), domain.ErrNotFound)
}

func TestCancelUnknownReservation(t *testing.T) {
	svc, _ := newService(t)
	require.ErrorIs(t, svc.CancelReservation("R404"), domain.ErrNotFound)
}

func TestRoomFreedAfterCancel(t *testing.T) {
	svc := seeded(t)
	require.NoError(t, svc.CreateReservation(domain.Reservation{ID: "R1", HotelID: "H1", CustomerID: "C1", Room: 1}))
	require.NoError(t, svc.CancelReservation("R1"))

	require.NoError(t, svc.CreateReservation(domain.Reservation{ID: "R2", HotelID: "H1", CustomerID: "C1", Room: 1}))
}

/********** persistence **********/

func TestStateSurvivesServiceRestart(t *testing.T) {
	svc, dir := newService(t)
	require.NoError(t, svc.CreateHotel(domain.Hotel{ID: "H1", Name: "Hotel Uno", Rooms: 5, Location: "CDMX"}))
	require.NoError(t, svc.CreateCustomer(domain.Customer{ID: "C1", Name: "Ana", Email: "ana@mail.com"}))
	require.NoError(t, svc.CreateReservation(domain.Reservation{ID: "R1", HotelID: "H1", CustomerID: "C1", Room: 1}))

	// a fresh service over the same data directory sees everything
	svc2 := app.NewService(jsonfile.New(dir))

	h, err := svc2.HotelInfo("H1")
	require.NoError(t, err)
	require.Equal(t, "Hotel Uno", h.Name)

	err = svc2.CreateReservation(domain.Reservation{ID: "R2", HotelID: "H1", CustomerID: "C1", Room: 1})
	require.ErrorIs(t, err, domain.ErrConflict)
}
