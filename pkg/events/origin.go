package events

// Resolver maps a thread id to the identity of its owning process.
type Resolver interface {
	Resolve(threadID uint32) (Origin, error)
}

// ResolverFunc adapts a function literal to the Resolver interface.
type ResolverFunc func(threadID uint32) (Origin, error)

// Resolve calls the underlying function.
func (f ResolverFunc) Resolve(threadID uint32) (Origin, error) {
	return f(threadID)
}

// Payload is the event data the OS hands to one invocation.
type Payload interface {
	ThreadID() (uint32, error)
}
