//go:build windows

package events

import (
	"errors"

	"golang.org/x/sys/windows"
)

const (
	// THREAD_QUERY_LIMITED_INFORMATION
	threadQueryLimitedInformation = 0x0800
	// long-path aware upper bound for QueryFullProcessImageNameW
	maxImagePath = 32768
)

var procGetProcessIdOfThread = windows.NewLazySystemDLL("kernel32.dll").NewProc("GetProcessIdOfThread")

type systemResolver struct{}

// NewSystemResolver resolves origins with least-privilege thread and process
// queries.
func NewSystemResolver() Resolver {
	return systemResolver{}
}

func (systemResolver) Resolve(threadID uint32) (Origin, error) {
	thread, err := windows.OpenThread(threadQueryLimitedInformation, false, threadID)
	if err != nil {
		return Origin{}, queryErr("failed to open thread", err)
	}
	defer windows.CloseHandle(thread)

	pid, err := processIDOfThread(thread)
	if err != nil {
		return Origin{}, queryErr("failed to get process id of thread", err)
	}

	process, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		return Origin{}, queryErr("failed to open process", err)
	}
	defer windows.CloseHandle(process)

	image, err := imagePath(process)
	if err != nil {
		return Origin{}, queryErr("failed to get process name", err)
	}

	return Origin{PID: pid, Image: image, ThreadID: threadID}, nil
}

func processIDOfThread(thread windows.Handle) (uint32, error) {
	if err := procGetProcessIdOfThread.Find(); err != nil {
		return 0, err
	}
	r, _, err := procGetProcessIdOfThread.Call(uintptr(thread))
	if r == 0 {
		return 0, err
	}
	return uint32(r), nil
}

func imagePath(process windows.Handle) (string, error) {
	buf := make([]uint16, maxImagePath)
	size := uint32(len(buf))
	if err := windows.QueryFullProcessImageName(process, 0, &buf[0], &size); err != nil {
		return "", err
	}
	if size == 0 {
		return "", errors.New("empty image path")
	}
	return windows.UTF16ToString(buf[:size]), nil
}
