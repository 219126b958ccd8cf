// Package domain contains core business entities and interfaces.
package domain

import "time"

// Task represents a single trackable unit of work.
// Description and DueDate are pointers to distinguish "absent" (nil) from
// "present with a value"; an empty-string description is a present value.
// Tasks are created and mutated through the manager, never constructed
// standalone with an arbitrary ID.
type Task struct {
	DueDate     *time.Time // Due date (nil = no due date); date precision intended
	Description *string    // Description (nil = no description)
	ID          string     // Unique identifier, immutable after creation
	Title       string     // Title (required, validated by the front-end)
	Completed   bool       // Completion flag, false at creation
}

// ToggleCompletion flips the completion flag. It cannot fail.
func (t *Task) ToggleCompletion() {
	t.Completed = !t.Completed
}

// MergeDetails applies the title, description and due-date parts of the
// patch. Only fields the patch mentions are touched, and a mentioned field
// is only written when its new value differs from the current one (due
// dates compare by instant, not string form). ID and Completed are never
// modified here. It reports whether anything changed.
func (t *Task) MergeDetails(p Patch) bool {
	changed := false

	switch {
	case p.Title.IsSet():
		if v := p.Title.Value(); v != t.Title {
			t.Title = v
			changed = true
		}
	case p.Title.IsClear():
		if t.Title != "" {
			t.Title = ""
			changed = true
		}
	}

	switch {
	case p.Description.IsSet():
		if v := p.Description.Value(); t.Description == nil || *t.Description != v {
			t.Description = &v
			changed = true
		}
	case p.Description.IsClear():
		if t.Description != nil {
			t.Description = nil
			changed = true
		}
	}

	switch {
	case p.DueDate.IsSet():
		if v := p.DueDate.Value(); t.DueDate == nil || !t.DueDate.Equal(v) {
			t.DueDate = &v
			changed = true
		}
	case p.DueDate.IsClear():
		if t.DueDate != nil {
			t.DueDate = nil
			changed = true
		}
	}

	return changed
}

// Clone returns a deep copy of the task. The manager hands out clones so
// callers cannot mutate the collection behind the persistence path.
func (t *Task) Clone() *Task {
	c := *t
	if t.Description != nil {
		v := *t.Description
		c.Description = &v
	}
	if t.DueDate != nil {
		v := *t.DueDate
		c.DueDate = &v
	}
	return &c
}
