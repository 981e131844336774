package middleware

import (
	"reflect"
	"strings"

	"restaurant-reservations/internal/domain/calendar"
	"restaurant-reservations/internal/domain/reservation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the calendar_date, turn and zone binding tags.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return registerOn(v)
}

func registerOn(v *validator.Validate) error {
	v.RegisterTagNameFunc(fieldName)

	if err := v.RegisterValidation("calendar_date", func(fl validator.FieldLevel) bool {
		_, err := calendar.Parse(fl.Field().String())
		return err == nil
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("turn", func(fl validator.FieldLevel) bool {
		return reservation.Turn(fl.Field().String()).IsValid()
	}); err != nil {
		return err
	}
	return v.RegisterValidation("zone", func(fl validator.FieldLevel) bool {
		return reservation.Zone(fl.Field().String()).IsValid()
	})
}

// fieldName reports json or form names so errors match the request payload.
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}
