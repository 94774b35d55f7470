package ports

// IDSource generates ids for local-only entities, which never receive a
// server-assigned id. Injected so tests can produce deterministic ids.
type IDSource interface {
	NewID() string
}
