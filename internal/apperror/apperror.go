// Package apperror defines the error kinds returned by the catalog,
// ledger and reporting services. Handlers map kinds to HTTP statuses;
// the services never wrap or retry them.
package apperror

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindInvalidName                   Kind = "invalid_name"
	KindInvalidSku                    Kind = "invalid_sku"
	KindDuplicateSku                  Kind = "duplicate_sku"
	KindInvalidQuantity               Kind = "invalid_quantity"
	KindEmptyLineItems                Kind = "empty_line_items"
	KindDuplicateProductInTransaction Kind = "duplicate_product_in_transaction"
	KindInsufficientStock             Kind = "insufficient_stock"
	KindInvalidType                   Kind = "invalid_type"
	KindNotFound                      Kind = "not_found"
)

// Error carries the kind plus the offending field so the presentation
// layer can surface field-level validation messages.
type Error struct {
	Kind    Kind   `json:"kind"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

func InvalidName(msg string) *Error {
	return &Error{Kind: KindInvalidName, Field: "name", Message: msg}
}

func InvalidSku(msg string) *Error {
	return &Error{Kind: KindInvalidSku, Field: "sku", Message: msg}
}

func DuplicateSku(sku string) *Error {
	return &Error{
		Kind:    KindDuplicateSku,
		Field:   "sku",
		Message: fmt.Sprintf("A product with SKU '%s' already exists.", sku),
	}
}

func InvalidQuantity(msg string) *Error {
	return &Error{Kind: KindInvalidQuantity, Field: "quantity", Message: msg}
}

func EmptyLineItems() *Error {
	return &Error{
		Kind:    KindEmptyLineItems,
		Field:   "line_items",
		Message: "At least one product must be included in the transaction.",
	}
}

func DuplicateProductInTransaction() *Error {
	return &Error{
		Kind:    KindDuplicateProductInTransaction,
		Field:   "line_items",
		Message: "Each product can only appear once per transaction.",
	}
}

// InsufficientStock reports the current balance so the caller can
// correct the requested quantity.
func InsufficientStock(productName string, requested int, available int64) *Error {
	return &Error{
		Kind:  KindInsufficientStock,
		Field: "quantity",
		Message: fmt.Sprintf("Cannot remove %d units of %s. Only %d units available in stock.",
			requested, productName, available),
	}
}

func InvalidType() *Error {
	return &Error{
		Kind:    KindInvalidType,
		Field:   "type",
		Message: "Transaction type must be either 'IN' or 'OUT'.",
	}
}

func NotFound(what string) *Error {
	return &Error{Kind: KindNotFound, Message: what + " not found"}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// IsNotFound reports whether err is a lookup failure (404-equivalent).
func IsNotFound(err error) bool {
	return IsKind(err, KindNotFound)
}

// IsValidation reports whether err is a caller-input problem (400-equivalent).
func IsValidation(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind != KindNotFound
}
