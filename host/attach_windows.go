//go:build windows

package host

import (
	"fmt"
	"io"

	"mappy/config"
	"mappy/memory"
	"mappy/process"
)

// Attach opens the game process read-only. The returned closer releases the
// process handle.
func Attach(processName string, offsets config.Offsets) (*MemorySource, io.Closer, error) {
	pid, err := process.FindProcess(processName)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrNotAttached, err)
	}

	handle, err := process.Open(pid)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrNotAttached, err)
	}
	reader := memory.ProcessReader{Handle: handle}

	base, err := process.GetModuleBase(pid, offsets.Module)
	if err != nil {
		reader.Close()
		return nil, nil, fmt.Errorf("%w: %w", ErrNotAttached, err)
	}

	return NewMemorySource(reader, base, offsets), reader, nil
}
