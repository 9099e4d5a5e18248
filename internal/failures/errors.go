package failures

import (
	"errors"
	"fmt"
)

var (
	ErrUsage          = errors.New("usage error")
	ErrConfig         = errors.New("configuration error")
	ErrDictionaryLoad = errors.New("dictionary load error")
	ErrFileOpen       = errors.New("file open error")
	ErrDirectoryOpen  = errors.New("directory open error")
	ErrStat           = errors.New("stat error")
	ErrWordTooLong    = errors.New("word too long")
)

// Error ties a failure marker to the path it concerns.
type Error struct {
	Marker error
	Path   string
	Err    error
}

func (e *Error) Error() string {
	detail := e.Marker.Error()
	if e.Path != "" {
		detail += ": " + e.Path
	}
	if e.Err != nil {
		detail += ": " + e.Err.Error()
	}
	return detail
}

func (e *Error) Is(target error) bool {
	return target == e.Marker
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap tags err with one of the exported markers and the path being processed.
// The path is kept exactly as given. A nil marker is treated as ErrFileOpen.
func Wrap(marker error, path string, err error) error {
	if marker == nil {
		marker = ErrFileOpen
	}
	return &Error{Marker: marker, Path: path, Err: err}
}

// IsFatal reports whether err should abort the whole run: bad invocation, bad
// configuration, or a dictionary that cannot be loaded. Every other failure
// skips the affected file or subtree.
func IsFatal(err error) bool {
	return errors.Is(err, ErrDictionaryLoad) || errors.Is(err, ErrUsage) || errors.Is(err, ErrConfig)
}

// Message renders the line printed to the error stream for err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var fe *Error
	if !errors.As(err, &fe) {
		return "Error: " + err.Error()
	}
	switch {
	case errors.Is(fe.Marker, ErrDictionaryLoad) && errors.Is(err, ErrWordTooLong):
		return fmt.Sprintf("Error: Dictionary file %s contains a word that is too long", fe.Path)
	case errors.Is(fe.Marker, ErrDictionaryLoad):
		return fmt.Sprintf("Error: Failed to open dictionary file %s", fe.Path)
	case errors.Is(fe.Marker, ErrDirectoryOpen):
		return fmt.Sprintf("Error: Failed to open directory %s", fe.Path)
	case errors.Is(fe.Marker, ErrStat):
		return fmt.Sprintf("Error: Failed to stat %s", fe.Path)
	case errors.Is(fe.Marker, ErrFileOpen):
		return fmt.Sprintf("Error: Failed to open %s", fe.Path)
	case errors.Is(fe.Marker, ErrConfig):
		if fe.Path != "" {
			return fmt.Sprintf("Error: Invalid configuration %s: %v", fe.Path, fe.Err)
		}
		return fmt.Sprintf("Error: Invalid configuration: %v", fe.Err)
	case errors.Is(fe.Marker, ErrUsage):
		if fe.Err != nil {
			return fe.Err.Error()
		}
		return "Error: invalid usage"
	default:
		return "Error: " + err.Error()
	}
}
