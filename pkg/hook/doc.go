// Package hook owns the controller side of the global debug hook: loading the
// callback module, resolving its exported procedure, registering the hook and
// pumping the thread's message queue until a quit is requested.
//
// A Registration always unhooks before it frees the module it was installed
// from. Windows would otherwise keep calling into an unloaded image.
package hook
