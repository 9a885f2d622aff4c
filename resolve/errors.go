package resolve

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/0xalexb/confd/content"
)

// ErrBadRequest is wrapped by every error caused by an unusable request path.
var ErrBadRequest = errors.New("bad request")

// ErrNotFound is wrapped when a directory or file named by the request does not exist.
var ErrNotFound = errors.New("not found")

var (
	// ErrEmptyPath is returned when the request path has no segments.
	ErrEmptyPath = fmt.Errorf("%w: empty path", ErrBadRequest)

	// ErrNoFilename is returned when every segment names a directory.
	ErrNoFilename = fmt.Errorf("%w: path names a directory, not a file", ErrBadRequest)

	// ErrEscapesRoot is returned for segments that could leave the config root.
	ErrEscapesRoot = fmt.Errorf("%w: path escapes config root", ErrBadRequest)
)

// ErrEmptyRoot is returned when a resolver is built without a config root.
var ErrEmptyRoot = errors.New("config root must not be empty")

// ErrRootNotDirectory is returned when the config root is not a directory.
var ErrRootNotDirectory = errors.New("config root is not a directory")

// ErrNilRegistry is returned when a resolver is built without a parser registry.
var ErrNilRegistry = errors.New("parser registry must not be nil")

// Kind classifies the terminal result of one resolution.
type Kind int

// Resolution outcome kinds.
const (
	Found Kind = iota
	NotFound
	BadRequest
	ParseFailure
	InternalFailure
)

func (k Kind) String() string {
	switch k {
	case Found:
		return "found"
	case NotFound:
		return "not_found"
	case BadRequest:
		return "bad_request"
	case ParseFailure:
		return "parse_failure"
	case InternalFailure:
		return "internal_failure"
	default:
		return "unknown"
	}
}

// Classify maps an error returned by this package to its outcome kind.
// A nil error is Found; anything unrecognised is InternalFailure.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return Found
	case errors.Is(err, ErrBadRequest):
		return BadRequest
	case errors.Is(err, ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return NotFound
	case errors.Is(err, content.ErrMalformed):
		return ParseFailure
	default:
		return InternalFailure
	}
}
