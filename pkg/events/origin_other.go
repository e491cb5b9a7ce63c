//go:build !windows

package events

import "errors"

type systemResolver struct{}

// NewSystemResolver returns a resolver that always fails; thread to process
// queries are only wired up for windows.
func NewSystemResolver() Resolver {
	return systemResolver{}
}

func (systemResolver) Resolve(uint32) (Origin, error) {
	return Origin{}, queryErr("resolve origin", errors.New("unsupported platform"))
}
