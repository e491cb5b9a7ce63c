package events

import "fmt"

// Origin identifies the thread an event was raised on and its process.
type Origin struct {
	PID      uint32
	Image    string
	ThreadID uint32
}

// Record is one line of the shared log.
type Record struct {
	Category Category
	Origin   Origin
}

// Line renders the record, newline included.
func (r Record) Line() string {
	return fmt.Sprintf("hook type: %s, process id: %d, process name: %s, thread id: %d\n",
		r.Category, r.Origin.PID, r.Origin.Image, r.Origin.ThreadID)
}
