package lib

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Database errors
var (
	ErrConflict = errors.New("conflict")
	ErrNotFound = errors.New("not found")
)

// Lookup misses surfaced as 404s
var (
	ErrOrderNotFound   = fmt.Errorf("order %w", ErrNotFound)
	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)
	ErrProductNotFound = fmt.Errorf("product %w", ErrNotFound)
)

// ErrDuplicateReview is returned when a buyer reviews the same product twice
var ErrDuplicateReview = fmt.Errorf("duplicate review %w", ErrConflict)

// Auth errors
var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("expired token")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ProductNotFoundError reports every missing product code of a checkout in one
// error, so the caller gets complete feedback in a single round trip.
type ProductNotFoundError struct {
	Codes []string `json:"missing_products"`
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("products not found: %s", strings.Join(e.Codes, ", "))
}

// CustomizationViolation names one disallowed customization key or value.
type CustomizationViolation struct {
	ProductID string `json:"product_id"`
	Key       string `json:"key"`
	Value     string `json:"value,omitempty"`
	Reason    string `json:"reason"`
}

// InvalidCustomizationError aggregates all customization violations found
// while validating an order.
type InvalidCustomizationError struct {
	Violations []CustomizationViolation `json:"violations"`
}

func (e *InvalidCustomizationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		if v.Value != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s (%s)", v.ProductID, v.Key, v.Value, v.Reason))
		} else {
			parts = append(parts, fmt.Sprintf("%s: %s (%s)", v.ProductID, v.Key, v.Reason))
		}
	}
	return "invalid customization: " + strings.Join(parts, "; ")
}

// MissingCustomizationAssetError is returned when an image/logo customization
// arrives without a payload to upload.
type MissingCustomizationAssetError struct {
	ProductID string `json:"product_id"`
	Kind      string `json:"kind"`
}

func (e *MissingCustomizationAssetError) Error() string {
	return fmt.Sprintf("missing %s payload for product %s", e.Kind, e.ProductID)
}

// InvalidStatusTransitionError is returned when an order may not move from
// its current status to the requested one.
type InvalidStatusTransitionError struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (e *InvalidStatusTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

// IsClientError reports whether err is a validation failure that should map
// to a 400-class response.
func IsClientError(err error) bool {
	var pnf *ProductNotFoundError
	var ic *InvalidCustomizationError
	var mca *MissingCustomizationAssetError
	var ist *InvalidStatusTransitionError
	return errors.As(err, &pnf) || errors.As(err, &ic) || errors.As(err, &mca) || errors.As(err, &ist)
}

func MapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code { // SQLSTATE
		case "23505": // unique_violation
			return ErrConflict
		case "P0002": // no_data_found
			return ErrNotFound
		}
	}
	return err
}
