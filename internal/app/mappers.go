package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"hotel_reserva/internal/domain"
)

/********** coercion helpers **********/

// recStr returns the field as a string. JSON numbers are coerced so that a
// slot hand-edited with e.g. "hotel_id": 5 still loads.
func recStr(rec domain.Record, key string) (string, error) {
	v, ok := rec[key]
	if !ok {
		return "", fmt.Errorf("missing field %q: %w", key, domain.ErrDecode)
	}
	switch t := v.(type) {
	case string:
		return t, nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("field %q has unusable type %T: %w", key, v, domain.ErrDecode)
	}
}

// recInt returns the field as an int. Accepts native ints (records straight
// from an encoder), JSON numbers (whole values only) and numeric strings.
func recInt(rec domain.Record, key string) (int, error) {
	v, ok := rec[key]
	if !ok {
		return 0, fmt.Errorf("missing field %q: %w", key, domain.ErrDecode)
	}
	switch t := v.(type) {
	case int:
		return t, nil
	case float64:
		n := int(t)
		if float64(n) != t {
			return 0, fmt.Errorf("field %q is not a whole number: %w", key, domain.ErrDecode)
		}
		return n, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, fmt.Errorf("field %q is not numeric: %w", key, domain.ErrDecode)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("field %q has unusable type %T: %w", key, v, domain.ErrDecode)
	}
}

// decodeAll maps records to entities, logging and dropping any record that
// fails to decode rather than aborting the whole load.
func decodeAll[T any](slot string, recs []domain.Record, decode func(domain.Record) (T, error)) []T {
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		e, err := decode(rec)
		if err != nil {
			log.Error().Err(err).Str("slot", slot).Msg("dropping undecodable record")
			continue
		}
		out = append(out, e)
	}
	return out
}

/********** hotel codec **********/

func hotelRecord(h domain.Hotel) domain.Record {
	return domain.Record{
		"hotel_id": h.ID,
		"name":     h.Name,
		"rooms":    h.Rooms,
		"location": h.Location,
	}
}

func mapHotel(rec domain.Record) (domain.Hotel, error) {
	var h domain.Hotel
	var err error
	if h.ID, err = recStr(rec, "hotel_id"); err != nil {
		return domain.Hotel{}, err
	}
	if h.Name, err = recStr(rec, "name"); err != nil {
		return domain.Hotel{}, err
	}
	if h.Rooms, err = recInt(rec, "rooms"); err != nil {
		return domain.Hotel{}, err
	}
	if h.Location, err = recStr(rec, "location"); err != nil {
		return domain.Hotel{}, err
	}
	return h, nil
}

/********** customer codec **********/

func customerRecord(c domain.Customer) domain.Record {
	return domain.Record{
		"customer_id": c.ID,
		"name":        c.Name,
		"email":       c.Email,
	}
}

func mapCustomer(rec domain.Record) (domain.Customer, error) {
	var c domain.Customer
	var err error
	if c.ID, err = recStr(rec, "customer_id"); err != nil {
		return domain.Customer{}, err
	}
	if c.Name, err = recStr(rec, "name"); err != nil {
		return domain.Customer{}, err
	}
	if c.Email, err = recStr(rec, "email"); err != nil {
		return domain.Customer{}, err
	}
	return c, nil
}

/********** reservation codec **********/

func reservationRecord(r domain.Reservation) domain.Record {
	return domain.Record{
		"reservation_id": r.ID,
		"hotel_id":       r.HotelID,
		"customer_id":    r.CustomerID,
		"room":           r.Room,
	}
}

func mapReservation(rec domain.Record) (domain.Reservation, error) {
	var r domain.Reservation
	var err error
	if r.ID, err = recStr(rec, "reservation_id"); err != nil {
		return domain.Reservation{}, err
	}
	if r.HotelID, err = recStr(rec, "hotel_id"); err != nil {
		return domain.Reservation{}, err
	}
	if r.CustomerID, err = recStr(rec, "customer_id"); err != nil {
		return domain.Reservation{}, err
	}
	if r.Room, err = recInt(rec, "room"); err != nil {
		return domain.Reservation{}, err
	}
	return r, nil
}
