// Package darwin wraps the low level macOS facilities used to detect, resolve
// and create Finder aliases: the com.apple.FinderInfo extended attribute and
// the CoreFoundation bookmark APIs.
package darwin

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	// ErrNotDarwin is returned by the host bound functions on other platforms.
	ErrNotDarwin = errors.New("only implemented on darwin")

	errShortFinderInfo = errors.New("finder info too short")
)

type Point struct {
	X int16
	Y int16
}

// FileInfo structure (32 bytes) as stored in com.apple.FinderInfo.
// Folders use a different layout but keep FinderFlags at the same offset.
// See https://opensource.apple.com/source/CarbonHeaders/CarbonHeaders-9A581/Finder.h
type FileInfo struct {
	FileType            uint32
	FileCreator         uint32
	FinderFlags         uint16
	Location            Point
	ReservedField       uint16
	Reserved1           [4]int16
	ExtendedFinderFlags uint16
	Reserved2           int16
	PutAwayFolderID     int32
}

// IsAlias reports if the kIsAlias Finder flag is set.
func (fi FileInfo) IsAlias() bool {
	return fi.FinderFlags&FFKIsAlias != 0
}

// Bytes encodes the file info the way the Finder stores it.
// Multi-byte fields are always big endian on disk.
func (fi FileInfo) Bytes() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, FinderInfoSize))
	binary.Write(buf, binary.BigEndian, fi)
	return buf.Bytes()
}

// ParseFinderInfo decodes the content of a com.apple.FinderInfo attribute.
func ParseFinderInfo(data []byte) (FileInfo, error) {
	var fi FileInfo
	if len(data) < FinderInfoSize {
		return fi, fmt.Errorf("%w: %d bytes", errShortFinderInfo, len(data))
	}
	if err := binary.Read(bytes.NewReader(data[:FinderInfoSize]), binary.BigEndian, &fi); err != nil {
		return fi, fmt.Errorf("failed reading finder file information: %w", err)
	}
	return fi, nil
}
