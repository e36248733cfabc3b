package domain

// Record is the flat form a persisted entity takes in a slot: field name to
// scalar value, as decoded from JSON.
type Record = map[string]any

// Slot names for the three persisted collections.
const (
	SlotHotels       = "hotels"
	SlotCustomers    = "customers"
	SlotReservations = "reservations"
)

// RecordStore loads and saves one ordered collection of records per named
// slot. Load tolerates a missing, empty, or malformed slot by returning an
// empty collection; Save rewrites the whole collection.
type RecordStore interface {
	Load(slot string) ([]Record, error)
	Save(slot string, records []Record) error
}
