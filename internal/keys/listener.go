package keys

// Listener watches the system keyboard and drives a Gate with the
// press state of the configured keys.
type Listener interface {
	Start() error
	Close() error
}
