package data

import (
	"errors"
	"fmt"
)

var ErrRecordNotFound = errors.New("record not found")
var ErrDuplicateEmail = errors.New("duplicate email")

// ModelValidationErr carries every field violation found while validating a
// record. Validation never short-circuits, so Errors is the complete set.
type ModelValidationErr struct {
	Errors map[string]string
}

func (e ModelValidationErr) Error() string {
	return "model validation unsuccessful"
}

func NewModelValidationErr(key string, value string) ModelValidationErr {
	return ModelValidationErr{Errors: map[string]string{
		key: value,
	}}
}

func (e ModelValidationErr) AddError(key string, value string) {
	if _, exists := e.Errors[key]; !exists {
		e.Errors[key] = value
	}
}

func (e ModelValidationErr) Valid() bool {
	return len(e.Errors) == 0
}

// AggregationErr reports that a stat line write succeeded but the career
// recompute that follows it did not. The stored career totals are stale, not
// wrong; the next successful recompute corrects them. Nothing is rolled back.
type AggregationErr struct {
	PlayerID string
	Err      error
}

func (e AggregationErr) Error() string {
	return fmt.Sprintf("career aggregation failed for player %s: %s", e.PlayerID, e.Err)
}

func (e AggregationErr) Unwrap() error {
	return e.Err
}
