package domain

// BlobStore is the durable backing store for the task collection.
// It exposes whole-blob semantics only: the manager performs one full
// read at load and one full overwrite per effective mutation. There is
// no incremental or append persistence.
type BlobStore interface {
	// Exists reports whether a persisted blob is present.
	Exists() bool

	// Read returns the full blob contents as text.
	Read() (string, error)

	// Write replaces the blob with the given text.
	Write(contents string) error
}

// Logger is the leveled logging port used by the manager.
type Logger interface {
	// Debug logs a debug message under the given category.
	Debug(category, msg string)

	// Info logs an info message under the given category.
	Info(category, msg string)

	// Warn logs a warning under the given category.
	Warn(category, msg string)

	// Error logs an error under the given category.
	Error(category, msg string)
}
