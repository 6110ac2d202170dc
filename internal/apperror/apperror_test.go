package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsKind(t *testing.T) {
	err := DuplicateSku("ABC-1")

	assert.True(t, IsKind(err, KindDuplicateSku))
	assert.False(t, IsKind(err, KindInvalidSku))
	assert.False(t, IsKind(errors.New("plain"), KindDuplicateSku))
}

func TestIsKind_WrappedError(t *testing.T) {
	err := fmt.Errorf("creating product: %w", DuplicateSku("ABC-1"))

	assert.True(t, IsKind(err, KindDuplicateSku))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("Product")))
	assert.False(t, IsNotFound(InvalidType()))
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(InvalidType()))
	assert.True(t, IsValidation(EmptyLineItems()))
	assert.False(t, IsValidation(NotFound("Product")))
	assert.False(t, IsValidation(errors.New("plain")))
}

func TestInsufficientStockMessage(t *testing.T) {
	err := InsufficientStock("Widget", 60, 50)

	assert.Equal(t, "Cannot remove 60 units of Widget. Only 50 units available in stock.", err.Error())
	assert.Equal(t, "quantity", err.Field)
}
