// Package manager owns the in-memory task collection: identifier minting,
// queries, partial updates and whole-blob persistence.
package manager

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/runoshun/taskdeck/internal/domain"
)

// taskRecord is the wire representation of one task in the persisted blob.
// Fields are ordered to minimize memory padding.
type taskRecord struct {
	Description *string `json:"description,omitempty"`
	ID          string  `json:"id,omitempty"`
	Title       string  `json:"title"`
	DueDate     string  `json:"dueDate,omitempty"`
	Completed   bool    `json:"completed"`
}

// dueDateLayouts are the formats accepted for persisted due dates.
// Writes always use RFC 3339; date-only values are accepted on load.
var dueDateLayouts = []string{time.RFC3339, "2006-01-02"}

// Manager owns the full set of task records for one running process.
// The collection keeps insertion order; the counter advances monotonically
// and deleted identifiers are never reused. The Manager is single-threaded:
// callers must not issue overlapping operations against one instance.
type Manager struct {
	store  domain.BlobStore
	logger domain.Logger
	tasks  []*domain.Task
	nextID int
}

// Options configures a Manager. Store is required; Logger may be nil to
// disable logging.
type Options struct {
	Store  domain.BlobStore
	Logger domain.Logger
}

// New creates a Manager and loads persisted state from the store.
// Load failures are recovered by starting from an empty collection;
// they are logged, never returned.
func New(opts Options) *Manager {
	m := &Manager{
		store:  opts.Store,
		logger: opts.Logger,
		nextID: 1,
	}
	m.load()
	return m
}

// load reads the full blob and reconstructs the collection.
func (m *Manager) load() {
	if !m.store.Exists() {
		m.info("store", "no task file found, starting with an empty collection")
		return
	}

	text, err := m.store.Read()
	if err != nil {
		m.reset()
		m.error("store", fmt.Sprintf("read tasks: %v (starting with an empty collection)", err))
		return
	}

	if strings.TrimSpace(text) == "" {
		m.info("store", "task file is empty, starting with an empty collection")
		return
	}

	var records []taskRecord
	if err := json.Unmarshal([]byte(text), &records); err != nil {
		m.reset()
		m.error("store", fmt.Sprintf("parse tasks: %v (starting with an empty collection)", err))
		return
	}

	if len(records) == 0 {
		m.info("store", "task file contains no tasks")
		return
	}

	for _, rec := range records {
		// A stored identifier is kept verbatim, numeric or not. Only
		// records with no identifier at all get a freshly minted one.
		id := rec.ID
		if id == "" {
			id = strconv.Itoa(m.nextID)
			m.nextID++
		}

		task := &domain.Task{
			ID:          id,
			Title:       rec.Title,
			Description: rec.Description,
			Completed:   rec.Completed,
		}
		if rec.DueDate != "" {
			if due, ok := parseDueDate(rec.DueDate); ok {
				task.DueDate = &due
			} else {
				m.warn("store", fmt.Sprintf("task %s: invalid due date %q, leaving it unset", id, rec.DueDate))
			}
		}
		m.tasks = append(m.tasks, task)
	}

	m.nextID = nextIDAfter(m.tasks)
	m.info("store", fmt.Sprintf("loaded %d tasks", len(m.tasks)))
}

// reset drops the collection and restarts the counter at 1.
func (m *Manager) reset() {
	m.tasks = nil
	m.nextID = 1
}

// nextIDAfter computes the identifier counter for a freshly loaded
// collection: one past the maximum numeric identifier, floored at 1.
// Non-numeric identifiers contribute 0.
func nextIDAfter(tasks []*domain.Task) int {
	maxID := 0
	for _, t := range tasks {
		if n, err := strconv.Atoi(t.ID); err == nil && n > maxID {
			maxID = n
		}
	}
	return maxID + 1
}

// parseDueDate parses a persisted due-date string.
func parseDueDate(s string) (time.Time, bool) {
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// AddTask mints the next identifier, appends a new record to the
// collection and persists it. Validation (e.g. non-empty titles) is the
// caller's responsibility; AddTask always succeeds.
func (m *Manager) AddTask(title string, description *string, dueDate *time.Time) *domain.Task {
	task := &domain.Task{
		ID:          strconv.Itoa(m.nextID),
		Title:       title,
		Description: cloneString(description),
		DueDate:     cloneTime(dueDate),
	}
	m.nextID++
	m.tasks = append(m.tasks, task)
	m.persist()
	return task.Clone()
}

// GetAllTasks returns a snapshot of the collection in insertion order.
// Mutating the returned tasks has no effect on the collection.
func (m *Manager) GetAllTasks() []*domain.Task {
	out := make([]*domain.Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		out = append(out, t.Clone())
	}
	return out
}

// GetTaskByID returns the first task whose identifier equals id, or
// ErrTaskNotFound if none matches.
func (m *Manager) GetTaskByID(id string) (*domain.Task, error) {
	t := m.find(id)
	if t == nil {
		return nil, domain.ErrTaskNotFound
	}
	return t.Clone(), nil
}

// UpdateTask applies a partial update to the task with the given id.
// Fields the patch does not mention stay untouched; the collection is
// persisted exactly once, and only if some field actually changed, so
// no-op updates incur no write. Returns the (possibly unchanged) task,
// or ErrTaskNotFound without persisting when the id is unknown.
func (m *Manager) UpdateTask(id string, patch domain.Patch) (*domain.Task, error) {
	task := m.find(id)
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	changed := task.MergeDetails(patch)
	if patch.Completed.IsSet() && patch.Completed.Value() != task.Completed {
		task.ToggleCompletion()
		changed = true
	}

	if changed {
		m.persist()
	}
	return task.Clone(), nil
}

// DeleteTask removes the first task matching id and reports whether one
// was removed. Nothing is persisted on a miss. The identifier is not
// reused afterwards.
func (m *Manager) DeleteTask(id string) bool {
	for i, t := range m.tasks {
		if t.ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			m.persist()
			return true
		}
	}
	return false
}

// GetTasksByCompletion returns the tasks whose completion flag matches,
// preserving relative order.
func (m *Manager) GetTasksByCompletion(completed bool) []*domain.Task {
	var out []*domain.Task
	for _, t := range m.tasks {
		if t.Completed == completed {
			out = append(out, t.Clone())
		}
	}
	return out
}

// find returns the live record for id, or nil.
func (m *Manager) find(id string) *domain.Task {
	for _, t := range m.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// persist writes the pretty-printed serialization of the entire
// collection to the store. Write failures are logged and swallowed; the
// in-memory state already reflects the change.
func (m *Manager) persist() {
	records := make([]taskRecord, 0, len(m.tasks))
	for _, t := range m.tasks {
		rec := taskRecord{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Completed:   t.Completed,
		}
		if t.DueDate != nil {
			rec.DueDate = t.DueDate.Format(time.RFC3339)
		}
		records = append(records, rec)
	}

	content, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		m.error("store", fmt.Sprintf("marshal tasks: %v", err))
		return
	}
	if err := m.store.Write(string(content)); err != nil {
		m.error("store", fmt.Sprintf("write tasks: %v", err))
	}
}

func (m *Manager) info(category, msg string) {
	if m.logger != nil {
		m.logger.Info(category, msg)
	}
}

func (m *Manager) warn(category, msg string) {
	if m.logger != nil {
		m.logger.Warn(category, msg)
	}
}

func (m *Manager) error(category, msg string) {
	if m.logger != nil {
		m.logger.Error(category, msg)
	}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
