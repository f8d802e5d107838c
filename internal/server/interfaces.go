package server

// Server defines the lifecycle of the transport server managed by this
// package.
//
// Implementations block in [RunServer] until a termination signal arrives
// and release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
