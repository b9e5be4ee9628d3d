package finance

import "fmt"

// ValidationError aborts the whole operation. The only required scoping
// identifier is the company id; losing it would break tenant isolation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

// NotFoundError skips the affected record; the batch continues.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// DataQualityWarning flags a defaulted field on a record that was kept
// anyway. It is reported alongside results, never returned as an error.
type DataQualityWarning struct {
	Field  string
	Value  string
	Reason string
}

func (w DataQualityWarning) String() string {
	return fmt.Sprintf("%s=%q: %s", w.Field, w.Value, w.Reason)
}
