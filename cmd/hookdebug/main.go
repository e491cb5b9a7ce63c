// Command hookdebug is the module the OS injects into every process once the
// debugger installs its WH_DEBUG hook. Build it as a shared library next to
// the debugger executable:
//
//	go build -buildmode=c-shared -o hook_debug.dll ./cmd/hookdebug
//
// The module only reaches processes of the same bitness it was built for.
package main

func main() {}
