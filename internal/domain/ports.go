package domain

// SnapshotRepository persists the canonical project document as a
// single snapshot record.
type SnapshotRepository interface {
	// Load reads the persisted snapshot. Returns (nil, nil) when no
	// snapshot exists and ErrMalformedSnapshot (wrapped) when the
	// stored record cannot be parsed.
	Load() (*Project, error)

	// Save replaces the persisted snapshot with the given project.
	Save(p Project) error
}

// IDGenerator produces identifiers for new lists and tasks, unique
// within the lifetime of the store.
type IDGenerator interface {
	// NewID returns a fresh identifier.
	NewID() string
}

// Logger is the minimal leveled logging surface the core depends on.
type Logger interface {
	// Debug logs a debug message.
	Debug(msg string)

	// Info logs an informational message.
	Info(msg string)

	// Warn logs a warning. Persistence failures land here; they are
	// observable but never fatal.
	Warn(msg string)

	// Error logs an error message.
	Error(msg string)
}
