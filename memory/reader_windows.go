//go:build windows

package memory

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32              = windows.NewLazySystemDLL("kernel32.dll")
	procReadProcessMemory = kernel32.NewProc("ReadProcessMemory")
)

// ProcessReader reads from an opened process handle.
type ProcessReader struct {
	Handle windows.Handle
}

func (p ProcessReader) ReadAt(addr uint64, buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	var bytesRead uintptr
	ret, _, _ := procReadProcessMemory.Call(
		uintptr(p.Handle),
		uintptr(addr),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
		uintptr(unsafe.Pointer(&bytesRead)),
	)
	if ret == 0 || int(bytesRead) != len(buf) {
		return fmt.Errorf("%#x (+%d): %w", addr, len(buf), ErrReadFailed)
	}
	return nil
}

func (p ProcessReader) Close() error {
	return windows.CloseHandle(p.Handle)
}
