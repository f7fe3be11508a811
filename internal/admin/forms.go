package admin

import (
	"strconv"
	"strings"

	"github.com/ariefcatur/stockfront/internal/locale"
)

// ValidationError is raised before any remote call.
type ValidationError struct {
	Field string
	Key   locale.Key
}

func (e *ValidationError) Error() string { return "invalid " + e.Field + ": " + string(e.Key) }

func required(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", &ValidationError{Field: field, Key: locale.FieldRequired}
	}
	return v, nil
}

// wholeNumber parses raw and checks it is >= floor (floor is 0 or 1).
func wholeNumber(field, raw string, floor int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &ValidationError{Field: field, Key: locale.FieldRequired}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ValidationError{Field: field, Key: locale.FieldNotInteger}
	}
	if n < floor {
		if floor > 0 {
			return 0, &ValidationError{Field: field, Key: locale.FieldNotPositive}
		}
		return 0, &ValidationError{Field: field, Key: locale.FieldNegative}
	}
	return n, nil
}

type StockInForm struct {
	ProductID string
	Qty       string
	Reason    string
}

type StockAdjustForm struct {
	ProductID string
	NewQty    string
	Reason    string
}

// ProductForm backs both add and update. Stock is only read on add; later
// changes go through stock in/adjust so they are logged.
type ProductForm struct {
	ProductID   string
	Name        string
	Price       string
	Stock       string
	Active      bool
	Image       string
	Description string
}
