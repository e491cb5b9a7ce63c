package main

import (
	"sync"

	"github.com/offlinefirst/debughook/pkg/events"
	"github.com/offlinefirst/debughook/pkg/logging"
)

// Each process that loads the module gets its own copy of these.
var (
	instanceOnce sync.Once
	instance     *events.Pipeline
)

func pipeline() *events.Pipeline {
	instanceOnce.Do(func() {
		instance = newPipeline()
	})
	return instance
}

func newPipeline() *events.Pipeline {
	return events.NewPipeline(
		events.NewSystemResolver(),
		events.NewSink(events.DefaultLogPath(), nil),
		logging.NewDiagnostic(logging.DebugOutput()),
	)
}
