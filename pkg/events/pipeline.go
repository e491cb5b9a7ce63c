package events

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Pipeline is the per-instance hook procedure body.
type Pipeline struct {
	resolver Resolver
	sink     *Sink
	diag     *zap.Logger

	chainOnce sync.Once
}

// NewPipeline wires a pipeline. diag receives one entry per failed event.
func NewPipeline(resolver Resolver, sink *Sink, diag *zap.Logger) *Pipeline {
	if diag == nil {
		diag = zap.NewNop()
	}
	return &Pipeline{resolver: resolver, sink: sink, diag: diag}
}

// Sink exposes the instance's log sink.
func (p *Pipeline) Sink() *Sink {
	return p.sink
}

// Handle processes one invocation and always returns next's result. kind is
// the hook type from wParam; the payload is only read for loggable kinds.
func (p *Pipeline) Handle(kind uintptr, payload Payload, next func() uintptr) uintptr {
	if category := Classify(kind); category.Loggable() {
		if err := p.record(category, payload); err != nil {
			p.diag.Error(fmt.Sprintf("an error occurred: %v", err))
		}
	}
	return next()
}

func (p *Pipeline) record(category Category, payload Payload) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = queryErr("hook procedure panicked", fmt.Errorf("%v", r))
		}
	}()

	threadID, err := payload.ThreadID()
	if err != nil {
		return err
	}
	origin, err := p.resolver.Resolve(threadID)
	if err != nil {
		return err
	}
	return p.sink.Append(Record{Category: category, Origin: origin})
}

// ChainFailed reports that an invocation could not be passed down the hook
// chain. Only the first report reaches diag; the forwarding path runs for
// every event and must not flood the debug channel.
func (p *Pipeline) ChainFailed(err error) {
	p.chainOnce.Do(func() {
		p.diag.Error(fmt.Sprintf("an error occurred: failed to call next hook: %v", err))
	})
}
