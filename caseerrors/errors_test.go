package caseerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvalidInputError(t *testing.T) {
	tests := []struct {
		name         string
		value        any
		wantTypeName string
	}{
		{name: "int", value: 123, wantTypeName: "int"},
		{name: "float", value: 1.5, wantTypeName: "float64"},
		{name: "bool", value: true, wantTypeName: "bool"},
		{name: "slice", value: []string{"a"}, wantTypeName: "[]string"},
		{name: "map", value: map[string]int{}, wantTypeName: "map[string]int"},
		{name: "struct", value: struct{}{}, wantTypeName: "struct {}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewInvalidInputError(tt.value)
			assert.Equal(t, tt.wantTypeName, err.TypeName)
			assert.Equal(t, tt.value, err.Value)
		})
	}
}

func TestInvalidInputErrorMessage(t *testing.T) {
	t.Run("embeds type name and value", func(t *testing.T) {
		err := NewInvalidInputError(123)
		assert.Equal(t, "invalid input type int (value: 123)", err.Error())
	})

	t.Run("appends message when set", func(t *testing.T) {
		err := NewInvalidInputError(true)
		err.Message = "expected a string"
		assert.Equal(t, "invalid input type bool (value: true): expected a string", err.Error())
	})

	t.Run("deterministic", func(t *testing.T) {
		a := NewInvalidInputError([]int{1, 2})
		b := NewInvalidInputError([]int{1, 2})
		assert.Equal(t, a.Error(), b.Error())
	})
}

func TestInvalidInputErrorIs(t *testing.T) {
	err := NewInvalidInputError(42)

	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.False(t, errors.Is(err, errors.New("other")))
}

func TestInvalidInputErrorAs(t *testing.T) {
	var err error = NewInvalidInputError(42)

	// Works through wrapping
	wrapped := fmt.Errorf("converting value: %w", err)

	var inputErr *InvalidInputError
	require.True(t, errors.As(wrapped, &inputErr))
	assert.Equal(t, "int", inputErr.TypeName)
	assert.True(t, errors.Is(wrapped, ErrInvalidInput))
}

func TestInvalidInputErrorUnwrap(t *testing.T) {
	err := NewInvalidInputError(42)
	assert.Nil(t, err.Unwrap())
}
