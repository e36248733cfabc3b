package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"hotel_reserva/internal/app"
	"hotel_reserva/internal/domain"
)

// Menu is the interactive text front end. It owns no business logic: every
// action is a thin prompt-and-forward to the service, and any error comes
// back as a single "ERROR: ..." line before the menu is shown again.
type Menu struct {
	svc *app.Service
	in  *bufio.Scanner
	out io.Writer
}

func New(svc *app.Service, in io.Reader, out io.Writer) *Menu {
	return &Menu{svc: svc, in: bufio.NewScanner(in), out: out}
}

// Run loops until the user picks exit or input is exhausted.
func (m *Menu) Run() error {
	for {
		m.printMenu()
		choice, ok := m.prompt("Choose an option: ")
		if !ok {
			return m.in.Err()
		}

		if choice == "0" {
			fmt.Fprintln(m.out, "Bye!")
			return nil
		}

		action, known := m.actions()[choice]
		if !known {
			fmt.Fprintln(m.out, "Invalid option.")
			continue
		}
		if err := action(); err != nil {
			fmt.Fprintf(m.out, "ERROR: %v\n", err)
		}
	}
}

func (m *Menu) actions() map[string]func() error {
	return map[string]func() error{
		"1": m.createHotel,
		"2": m.createCustomer,
		"3": m.createReservation,
		"4": m.cancelReservation,
		"5": m.displayHotel,
		"6": m.displayCustomer,
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "=== Reservation System ===")
	fmt.Fprintln(m.out, "1) Create hotel")
	fmt.Fprintln(m.out, "2) Create customer")
	fmt.Fprintln(m.out, "3) Create reservation")
	fmt.Fprintln(m.out, "4) Cancel reservation")
	fmt.Fprintln(m.out, "5) Display hotel info")
	fmt.Fprintln(m.out, "6) Display customer info")
	fmt.Fprintln(m.out, "0) Exit")
}

func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) promptInt(label string) (int, error) {
	raw, ok := m.prompt(label)
	if !ok {
		return 0, fmt.Errorf("input closed: %w", io.EOF)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer: %w", raw, domain.ErrValidation)
	}
	return n, nil
}

func (m *Menu) createHotel() error {
	id, _ := m.prompt("Hotel ID: ")
	name, _ := m.prompt("Hotel name: ")
	rooms, err := m.promptInt("Rooms (int): ")
	if err != nil {
		return err
	}
	location, _ := m.prompt("Location: ")

	if err := m.svc.CreateHotel(domain.Hotel{ID: id, Name: name, Rooms: rooms, Location: location}); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Hotel created.")
	return nil
}

func (m *Menu) createCustomer() error {
	id, _ := m.prompt("Customer ID: ")
	name, _ := m.prompt("Customer name: ")
	email, _ := m.prompt("Email: ")

	if err := m.svc.CreateCustomer(domain.Customer{ID: id, Name: name, Email: email}); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Customer created.")
	return nil
}

func (m *Menu) createReservation() error {
	id, _ := m.prompt("Reservation ID (blank to generate): ")
	if id == "" {
		id = uuid.NewString()
		fmt.Fprintf(m.out, "Generated reservation ID: %s\n", id)
	}
	hotelID, _ := m.prompt("Hotel ID: ")
	customerID, _ := m.prompt("Customer ID: ")
	room, err := m.promptInt("Room (int): ")
	if err != nil {
		return err
	}

	if err := m.svc.CreateReservation(domain.Reservation{
		ID: id, HotelID: hotelID, CustomerID: customerID, Room: room,
	}); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Reservation created.")
	return nil
}

func (m *Menu) cancelReservation() error {
	id, _ := m.prompt("Reservation ID to cancel: ")
	if err := m.svc.CancelReservation(id); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Reservation cancelled.")
	return nil
}

func (m *Menu) displayHotel() error {
	id, _ := m.prompt("Hotel ID: ")
	h, err := m.svc.HotelInfo(id)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Hotel %s: %s, %d rooms, %s\n", h.ID, h.Name, h.Rooms, h.Location)
	return nil
}

func (m *Menu) displayCustomer() error {
	id, _ := m.prompt("Customer ID: ")
	c, err := m.svc.CustomerInfo(id)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Customer %s: %s <%s>\n", c.ID, c.Name, c.Email)
	return nil
}
