// Package testutil provides shared test utilities and mock implementations.
package testutil

import "github.com/runoshun/taskdeck/internal/domain"

// Ensure mocks implement their ports.
var (
	_ domain.BlobStore = (*MockBlobStore)(nil)
	_ domain.Logger    = (*MockLogger)(nil)
)

// MockBlobStore is a test double for domain.BlobStore.
// Writes are recorded so tests can count persistence calls.
type MockBlobStore struct {
	ReadErr  error
	WriteErr error
	Contents string
	Writes   []string
	Present  bool
}

// Exists reports the configured presence flag.
func (m *MockBlobStore) Exists() bool {
	return m.Present
}

// Read returns the configured contents or error.
func (m *MockBlobStore) Read() (string, error) {
	if m.ReadErr != nil {
		return "", m.ReadErr
	}
	return m.Contents, nil
}

// Write records the blob and makes it the current contents.
func (m *MockBlobStore) Write(contents string) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Writes = append(m.Writes, contents)
	m.Contents = contents
	m.Present = true
	return nil
}

// LogEntry is one record captured by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Message  string
}

// MockLogger is a test double for domain.Logger that captures entries.
type MockLogger struct {
	Entries []LogEntry
}

// Debug captures a debug entry.
func (m *MockLogger) Debug(category, msg string) { m.append("DEBUG", category, msg) }

// Info captures an info entry.
func (m *MockLogger) Info(category, msg string) { m.append("INFO", category, msg) }

// Warn captures a warning entry.
func (m *MockLogger) Warn(category, msg string) { m.append("WARN", category, msg) }

// Error captures an error entry.
func (m *MockLogger) Error(category, msg string) { m.append("ERROR", category, msg) }

func (m *MockLogger) append(level, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Message: msg})
}

// ByLevel returns the captured entries with the given level.
func (m *MockLogger) ByLevel(level string) []LogEntry {
	var out []LogEntry
	for _, e := range m.Entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}
