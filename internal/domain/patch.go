package domain

import "time"

// fieldState enumerates the three ways an update can mention a field.
type fieldState int

const (
	fieldUnset fieldState = iota // not mentioned in the update
	fieldSet                     // mentioned with a concrete value
	fieldClear                   // mentioned as explicitly absent
)

// Field is a tri-state update value: not mentioned, set to a concrete
// value, or explicitly cleared. The zero value means "not mentioned",
// so leaving a field out of a Patch literal leaves it untouched.
type Field[T any] struct {
	value T
	state fieldState
}

// Set returns a field carrying the concrete value v.
func Set[T any](v T) Field[T] {
	return Field[T]{value: v, state: fieldSet}
}

// Clear returns a field that explicitly clears the target.
func Clear[T any]() Field[T] {
	return Field[T]{state: fieldClear}
}

// IsSet reports whether the field carries a concrete value.
func (f Field[T]) IsSet() bool { return f.state == fieldSet }

// IsClear reports whether the field explicitly clears the target.
func (f Field[T]) IsClear() bool { return f.state == fieldClear }

// Mentioned reports whether the field appears in the update at all.
func (f Field[T]) Mentioned() bool { return f.state != fieldUnset }

// Value returns the concrete value. Only meaningful when IsSet is true.
func (f Field[T]) Value() T { return f.value }

// Patch is a partial update over a task's mutable fields. Each field is
// independently tri-state; Completed is applied via ToggleCompletion by
// the manager, the rest via MergeDetails.
type Patch struct {
	Title       Field[string]
	Description Field[string]
	DueDate     Field[time.Time]
	Completed   Field[bool]
}

// IsZero reports whether the patch mentions no field at all.
func (p Patch) IsZero() bool {
	return !p.Title.Mentioned() &&
		!p.Description.Mentioned() &&
		!p.DueDate.Mentioned() &&
		!p.Completed.Mentioned()
}
