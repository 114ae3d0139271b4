package localstore

// Store is the local persistence boundary: a flat namespace of JSON-encoded
// values, the demo's stand-in for browser localStorage. Callers treat writes
// as best-effort; in-memory state stays authoritative for the session.
type Store interface {
	// Get unmarshals the value stored under key into v. The boolean is false
	// when the key is absent.
	Get(key string, v any) (bool, error)
	Put(key string, v any) error
	Delete(key string) error
	Close() error
}
