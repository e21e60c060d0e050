package memory

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrReadFailed = errors.New("read failed")

// Reader reads raw bytes from another address space.
type Reader interface {
	ReadAt(addr uint64, buf []byte) error
}

func ReadU32(r Reader, addr uint64) (uint32, error) {
	var b [4]byte
	if err := r.ReadAt(addr, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

func ReadU64(r Reader, addr uint64) (uint64, error) {
	var b [8]byte
	if err := r.ReadAt(addr, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// ReadPtr reads a pointer and rejects values outside user space.
func ReadPtr(r Reader, addr uint64) (uint64, error) {
	p, err := ReadU64(r, addr)
	if err != nil {
		return 0, err
	}
	if !IsValidPtr(p) {
		return 0, fmt.Errorf("pointer at %#x: %w (%#x)", addr, ErrReadFailed, p)
	}
	return p, nil
}

func BytesToUint32(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

func BytesToUint64(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b)
}

func BytesToFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

func BytesToInt32(b []byte) int32 {
	return int32(binary.LittleEndian.Uint32(b))
}

// CString decodes a NUL-terminated UTF-8 string from a fixed buffer.
func CString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			b = b[:i]
			break
		}
	}
	return strings.ToValidUTF8(string(b), "")
}

func IsValidPtr(ptr uint64) bool {
	return ptr >= 0x10000 && ptr < 0x7FFFFFFF0000
}

func IsValidCoord(val float32) bool {
	if math.IsNaN(float64(val)) || math.IsInf(float64(val), 0) {
		return false
	}
	return val > -100000 && val < 100000
}
