// Package events implements the callback that runs inside every process the
// debug hook is injected into: classify the hooked event, resolve the thread
// and process it came from, append a line to the shared log and forward the
// event down the hook chain.
package events
