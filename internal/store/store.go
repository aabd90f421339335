package store

// Store is a key-value blob store. Values are read-modify-written whole by
// the repositories; concurrent writers get last-writer-wins semantics.
type Store interface {
	// Get returns the value stored under key, and whether it was present.
	Get(key string) ([]byte, bool, error)

	// Set stores value under key, overwriting any previous value.
	Set(key string, value []byte) error

	Close() error
}
