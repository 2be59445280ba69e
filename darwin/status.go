package darwin

import "fmt"

// Status identifies the stage of a host call that failed.
// The values mirror the fnd_ status codes of the CoreFoundation bridge.
type Status int

const (
	StatusOK Status = iota
	// the path could not be turned into a CFURL
	StatusInvalidPath
	// the resource property could not be read
	StatusLookupFailed
	// bookmark data could not be read from, or created for, the file
	StatusBookmarkFailed
	// bookmark data could not be resolved to a URL
	StatusResolveFailed
	// the resolved URL has no file system representation
	StatusEncodeFailed
	// bookmark data could not be written to disk
	StatusWriteFailed
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusInvalidPath:
		return "invalid path"
	case StatusLookupFailed:
		return "property lookup failed"
	case StatusBookmarkFailed:
		return "bookmark data unavailable"
	case StatusResolveFailed:
		return "bookmark resolution failed"
	case StatusEncodeFailed:
		return "path encoding failed"
	case StatusWriteFailed:
		return "bookmark write failed"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// HostError is returned when a CoreFoundation call fails. Description holds
// the host's own explanation when one was provided.
type HostError struct {
	Op          string
	Status      Status
	Description string
}

func (e *HostError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %s - %s", e.Op, e.Status, e.Description)
}
