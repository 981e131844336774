//go:build unit

package middleware

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slotForm struct {
	Date string `json:"date" binding:"required,calendar_date" validate:"required,calendar_date"`
	Turn string `form:"turn" validate:"required,turn"`
	Zone string `json:"zone,omitempty" validate:"omitempty,zone"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, registerOn(v))
	return v
}

func TestCustomValidators(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name      string
		form      slotForm
		wantField string
	}{
		{name: "valid", form: slotForm{Date: "2025-06-14", Turn: "LUNCH", Zone: "HALL"}},
		{name: "zone optional", form: slotForm{Date: "2025-06-14", Turn: "DINNER"}},
		{name: "impossible date", form: slotForm{Date: "2025-02-29", Turn: "LUNCH"}, wantField: "date"},
		{name: "date with time", form: slotForm{Date: "2025-06-14T20:00:00Z", Turn: "LUNCH"}, wantField: "date"},
		{name: "lowercase turn", form: slotForm{Date: "2025-06-14", Turn: "lunch"}, wantField: "turn"},
		{name: "unknown zone", form: slotForm{Date: "2025-06-14", Turn: "LUNCH", Zone: "BAR"}, wantField: "zone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.form)

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tt.wantField, verrs[0].Field())
		})
	}
}
