package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredicates(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		isFormat   bool
		isRange    bool
		isOverflow bool
		isDivZero  bool
	}{
		{"nil", nil, false, false, false, false},
		{"format", ErrFormat, true, false, false, false},
		{"range", ErrRange, false, true, false, false},
		{"overflow", ErrUnsignedOverflow, false, false, true, false},
		{"divide by zero", ErrDivideByZero, false, false, false, true},
		{"invalid fields", ErrInvalidFields, true, true, false, false},
		{"wrapped range", Rangef("minutes %d", 60), false, true, false, false},
		{"wrapped format", Formatf("%q", "1:2"), true, false, false, false},
		{"double wrapped", fmt.Errorf("parse: %w", Rangef("hours %d", 24)), false, true, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isFormat, IsErrorFormat(tt.err))
			assert.Equal(t, tt.isRange, IsErrorRange(tt.err))
			assert.Equal(t, tt.isOverflow, IsErrorUnsignedOverflow(tt.err))
			assert.Equal(t, tt.isDivZero, IsErrorDivideByZero(tt.err))
		})
	}
}

func TestWrappedMessages(t *testing.T) {
	assert.EqualError(t, Rangef("minutes %d", 60), "value out of range: minutes 60")
	assert.EqualError(t, Formatf("%q", "12;00"), `invalid format: "12;00"`)
	assert.EqualError(t, ErrInvalidFields, "invalid format: value out of range")
}
