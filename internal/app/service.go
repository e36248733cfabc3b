package app

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"hotel_reserva/internal/domain"
)

// HotelUpdate carries the fields of a partial hotel update. A nil field is
// left unchanged; clearing a field is not supported.
type HotelUpdate struct {
	Name     *string
	Rooms    *int
	Location *string
}

// CustomerUpdate carries the fields of a partial customer update.
type CustomerUpdate struct {
	Name  *string
	Email *string
}

// Service implements the reservation system on top of a RecordStore. Every
// operation loads the relevant collection(s) in full, mutates in memory and
// saves in full. The mutex serializes the read-modify-write sequence within
// this process; multi-process access is out of contract.
type Service struct {
	store    domain.RecordStore
	validate *validator.Validate
	mu       sync.Mutex
}

func NewService(store domain.RecordStore) *Service {
	return &Service{store: store, validate: newValidator()}
}

/********** collection load/save **********/

func (s *Service) loadHotels() ([]domain.Hotel, error) {
	recs, err := s.store.Load(domain.SlotHotels)
	if err != nil {
		return nil, err
	}
	return decodeAll(domain.SlotHotels, recs, mapHotel), nil
}

func (s *Service) saveHotels(hotels []domain.Hotel) error {
	recs := make([]domain.Record, 0, len(hotels))
	for _, h := range hotels {
		recs = append(recs, hotelRecord(h))
	}
	return s.store.Save(domain.SlotHotels, recs)
}

func (s *Service) loadCustomers() ([]domain.Customer, error) {
	recs, err := s.store.Load(domain.SlotCustomers)
	if err != nil {
		return nil, err
	}
	return decodeAll(domain.SlotCustomers, recs, mapCustomer), nil
}

func (s *Service) saveCustomers(customers []domain.Customer) error {
	recs := make([]domain.Record, 0, len(customers))
	for _, c := range customers {
		recs = append(recs, customerRecord(c))
	}
	return s.store.Save(domain.SlotCustomers, recs)
}

func (s *Service) loadReservations() ([]domain.Reservation, error) {
	recs, err := s.store.Load(domain.SlotReservations)
	if err != nil {
		return nil, err
	}
	return decodeAll(domain.SlotReservations, recs, mapReservation), nil
}

func (s *Service) saveReservations(reservations []domain.Reservation) error {
	recs := make([]domain.Record, 0, len(reservations))
	for _, r := range reservations {
		recs = append(recs, reservationRecord(r))
	}
	return s.store.Save(domain.SlotReservations, recs)
}

/********** hotel operations **********/

func (s *Service) CreateHotel(h domain.Hotel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkStruct(h); err != nil {
		return err
	}

	hotels, err := s.loadHotels()
	if err != nil {
		return err
	}
	for _, existing := range hotels {
		if existing.ID == h.ID {
			return fmt.Errorf("hotel id %q already exists: %w", h.ID, domain.ErrConflict)
		}
	}

	return s.saveHotels(append(hotels, h))
}

// DeleteHotel removes the hotel and every reservation referencing it.
func (s *Service) DeleteHotel(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkBlank("hotel_id", id); err != nil {
		return err
	}

	hotels, err := s.loadHotels()
	if err != nil {
		return err
	}
	kept := hotels[:0]
	for _, h := range hotels {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	if len(kept) == len(hotels) {
		return fmt.Errorf("hotel not found: %w", domain.ErrNotFound)
	}

	reservations, err := s.loadReservations()
	if err != nil {
		return err
	}
	keptRes := reservations[:0]
	for _, r := range reservations {
		if r.HotelID != id {
			keptRes = append(keptRes, r)
		}
	}

	if err := s.saveHotels(kept); err != nil {
		return err
	}
	return s.saveReservations(keptRes)
}

func (s *Service) HotelInfo(id string) (domain.Hotel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkBlank("hotel_id", id); err != nil {
		return domain.Hotel{}, err
	}

	hotels, err := s.loadHotels()
	if err != nil {
		return domain.Hotel{}, err
	}
	for _, h := range hotels {
		if h.ID == id {
			return h, nil
		}
	}
	return domain.Hotel{}, fmt.Errorf("hotel not found: %w", domain.ErrNotFound)
}

func (s *Service) ModifyHotel(id string, upd HotelUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkBlank("hotel_id", id); err != nil {
		return err
	}

	hotels, err := s.loadHotels()
	if err != nil {
		return err
	}
	for i, h := range hotels {
		if h.ID != id {
			continue
		}
		// supplied fields re-validate exactly as in create; nil means keep
		if upd.Name != nil {
			if err := s.checkBlank("name", *upd.Name); err != nil {
				return err
			}
			h.Name = *upd.Name
		}
		if upd.Rooms != nil {
			if err := s.checkPositive("rooms", *upd.Rooms); err != nil {
				return err
			}
			h.Rooms = *upd.Rooms
		}
		if upd.Location != nil {
			if err := s.checkBlank("location", *upd.Location); err != nil {
				return err
			}
			h.Location = *upd.Location
		}
		hotels[i] = h
		return s.saveHotels(hotels)
	}
	return fmt.Errorf("hotel not found: %w", domain.ErrNotFound)
}

/********** customer operations **********/

func (s *Service) CreateCustomer(c domain.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkStruct(c); err != nil {
		return err
	}

	customers, err := s.loadCustomers()
	if err != nil {
		return err
	}
	for _, existing := range customers {
		if existing.ID == c.ID {
			return fmt.Errorf("customer id %q already exists: %w", c.ID, domain.ErrConflict)
		}
	}

	return s.saveCustomers(append(customers, c))
}

// DeleteCustomer removes the customer and every reservation referencing them.
func (s *Service) DeleteCustomer(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkBlank("customer_id", id); err != nil {
		return err
	}

	customers, err := s.loadCustomers()
	if err != nil {
		return err
	}
	kept := customers[:0]
	for _, c := range customers {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(customers) {
		return fmt.Errorf("customer not found: %w", domain.ErrNotFound)
	}

	reservations, err := s.loadReservations()
	if err != nil {
		return err
	}
	keptRes := reservations[:0]
	for _, r := range reservations {
		if r.CustomerID != id {
			keptRes = append(keptRes, r)
		}
	}

	if err := s.saveCustomers(kept); err != nil {
		return err
	}
	return s.saveReservations(keptRes)
}

func (s *Service) CustomerInfo(id string) (domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkBlank("customer_id", id); err != nil {
		return domain.Customer{}, err
	}

	customers, err := s.loadCustomers()
	if err != nil {
		return domain.Customer{}, err
	}
	for _, c := range customers {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Customer{}, fmt.Errorf("customer not found: %w", domain.ErrNotFound)
}

func (s *Service) ModifyCustomer(id string, upd CustomerUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkBlank("customer_id", id); err != nil {
		return err
	}

	customers, err := s.loadCustomers()
	if err != nil {
		return err
	}
	for i, c := range customers {
		if c.ID != id {
			continue
		}
		if upd.Name != nil {
			if err := s.checkBlank("name", *upd.Name); err != nil {
				return err
			}
			c.Name = *upd.Name
		}
		if upd.Email != nil {
			if err := s.checkBlank("email", *upd.Email); err != nil {
				return err
			}
			c.Email = *upd.Email
		}
		customers[i] = c
		return s.saveCustomers(customers)
	}
	return fmt.Errorf("customer not found: %w", domain.ErrNotFound)
}

/********** reservation operations **********/

// CreateReservation checks, in order: field shape, hotel existence, customer
// existence, capacity, reservation id uniqueness, room availability. The
// order keeps failures deterministic and diagnosable.
func (s *Service) CreateReservation(r domain.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkStruct(r); err != nil {
		return err
	}

	hotels, err := s.loadHotels()
	if err != nil {
		return err
	}
	customers, err := s.loadCustomers()
	if err != nil {
		return err
	}
	reservations, err := s.loadReservations()
	if err != nil {
		return err
	}

	var hotel *domain.Hotel
	for i := range hotels {
		if hotels[i].ID == r.HotelID {
			hotel = &hotels[i]
			break
		}
	}
	if hotel == nil {
		return fmt.Errorf("hotel not found: %w", domain.ErrNotFound)
	}

	customerExists := false
	for _, c := range customers {
		if c.ID == r.CustomerID {
			customerExists = true
			break
		}
	}
	if !customerExists {
		return fmt.Errorf("customer not found: %w", domain.ErrNotFound)
	}

	if r.Room > hotel.Rooms {
		return fmt.Errorf("room %d exceeds capacity of hotel %q (%d rooms): %w",
			r.Room, hotel.ID, hotel.Rooms, domain.ErrCapacity)
	}

	for _, existing := range reservations {
		if existing.ID == r.ID {
			return fmt.Errorf("reservation id %q already exists: %w", r.ID, domain.ErrConflict)
		}
	}
	for _, existing := range reservations {
		if existing.HotelID == r.HotelID && existing.Room == r.Room {
			return fmt.Errorf("room %d already reserved at hotel %q: %w",
				r.Room, r.HotelID, domain.ErrConflict)
		}
	}

	return s.saveReservations(append(reservations, r))
}

// CancelReservation hard-deletes the reservation; no status is retained.
func (s *Service) CancelReservation(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkBlank("reservation_id", id); err != nil {
		return err
	}

	reservations, err := s.loadReservations()
	if err != nil {
		return err
	}
	kept := reservations[:0]
	for _, r := range reservations {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(reservations) {
		return fmt.Errorf("reservation not found: %w", domain.ErrNotFound)
	}

	return s.saveReservations(kept)
}
