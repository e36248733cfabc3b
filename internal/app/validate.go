package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"hotel_reserva/internal/domain"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// required alone accepts all-whitespace strings; notblank does not.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// checkStruct runs tag validation on an entity and translates the first
// failure into an ErrValidation wrap naming the offending field.
func (s *Service) checkStruct(v any) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%s %s: %w", fieldName(fe), ruleMessage(fe), domain.ErrValidation)
	}
	return fmt.Errorf("%v: %w", err, domain.ErrValidation)
}

func (s *Service) checkBlank(name, value string) error {
	if err := s.validate.Var(value, "notblank"); err != nil {
		return fmt.Errorf("%s cannot be empty: %w", name, domain.ErrValidation)
	}
	return nil
}

func (s *Service) checkPositive(name string, n int) error {
	if err := s.validate.Var(n, "gt=0"); err != nil {
		return fmt.Errorf("%s must be > 0: %w", name, domain.ErrValidation)
	}
	return nil
}

func fieldName(fe validator.FieldError) string {
	// a bare ID field takes its entity's name: Hotel.ID -> hotel_id
	if fe.Field() == "ID" {
		if entity, _, ok := strings.Cut(fe.StructNamespace(), "."); ok {
			return strings.ToLower(entity) + "_id"
		}
	}
	// other fields snake-case to the persisted spelling (HotelID -> hotel_id)
	var b strings.Builder
	for i, r := range fe.Field() {
		if i > 0 && r >= 'A' && r <= 'Z' {
			if prev := fe.Field()[i-1]; prev < 'A' || prev > 'Z' {
				b.WriteByte('_')
			}
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gt":
		return "must be > 0"
	default:
		return "cannot be empty"
	}
}
