package gateway

// EntryPoint is the object exposed through the gateway. Register adds its
// methods to the dispatch table; it is called once when the server is built.
type EntryPoint interface {
	Name() string
	Register(registry *Registry) error
}
