//go:build !windows

package host

import (
	"fmt"
	"io"

	"mappy/config"
	"mappy/process"
)

func Attach(processName string, offsets config.Offsets) (*MemorySource, io.Closer, error) {
	return nil, nil, fmt.Errorf("%w: %s: %w", ErrNotAttached, processName, process.ErrUnsupported)
}
