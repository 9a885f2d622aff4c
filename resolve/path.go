package resolve

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/0xalexb/confd/logging"
)

// Location is a request path split against the config root.
type Location struct {
	// Folder is the deepest directory named by the request, or the root itself.
	Folder string
	// Filename is a file directly under Folder.
	Filename string
	// Fields is the chain applied to the parsed file. It may be empty.
	Fields []string
}

// PathResolver splits request paths into a Location by walking the filesystem.
// It holds no mutable state and is safe for concurrent use.
type PathResolver struct {
	root       string
	extensions []string
	logger     logging.Logger
}

// NewPathResolver creates a resolver rooted at root. The extensions, without dots,
// are probed in order when a segment names no existing entry.
func NewPathResolver(root string, extensions []string, logger logging.Logger) (*PathResolver, error) {
	if root == "" {
		return nil, ErrEmptyRoot
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("config root %q: %w", root, err)
	}

	absRoot, err = filepath.EvalSymlinks(absRoot)
	if err != nil {
		return nil, fmt.Errorf("config root %q: %w", root, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("config root %q: %w", root, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrRootNotDirectory, absRoot)
	}

	return &PathResolver{
		root:       absRoot,
		extensions: slices.Clone(extensions),
		logger:     logger,
	}, nil
}

// Root returns the absolute config root.
func (r *PathResolver) Root() string {
	return r.root
}

// Segments splits a request path on slashes, dropping empty segments.
func Segments(rawPath string) []string {
	return strings.FieldsFunc(rawPath, func(c rune) bool { return c == '/' })
}

// Resolve walks rawPath from the root. Each segment naming a directory extends the
// folder; the first segment that does not becomes the filename and the rest become
// the field chain. A segment with no entry on disk is retried with every registered
// extension appended; when none exists the error wraps ErrNotFound.
func (r *PathResolver) Resolve(rawPath string) (Location, error) {
	segments := Segments(rawPath)
	if len(segments) == 0 {
		return Location{}, ErrEmptyPath
	}

	folder := r.root
	consumed := ""

	for i, segment := range segments {
		err := checkSegment(segment)
		if err != nil {
			return Location{}, err
		}

		rel := filepath.Join(consumed, segment)

		candidate, err := r.join(rel)
		if err != nil {
			return Location{}, err
		}

		info, err := os.Stat(candidate)

		switch {
		case err == nil && info.IsDir():
			folder = candidate
			consumed = rel

			continue
		case err == nil:
			return r.located(candidate, segments[i+1:]), nil
		case errors.Is(err, fs.ErrNotExist):
			found, probeErr := r.probe(consumed, segment)
			if probeErr != nil {
				return Location{}, probeErr
			}

			return r.located(found, segments[i+1:]), nil
		default:
			return Location{}, fmt.Errorf("stat %q: %w", rel, err)
		}
	}

	r.logger.Debug("no filename in path", "folder", folder)

	return Location{}, ErrNoFilename
}

// probe looks for segment.<ext> under the consumed directory, in registration order.
func (r *PathResolver) probe(consumed, segment string) (string, error) {
	for _, ext := range r.extensions {
		rel := filepath.Join(consumed, segment+"."+ext)

		candidate, err := r.join(rel)
		if err != nil {
			return "", err
		}

		info, err := os.Stat(candidate)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err != nil {
			return "", fmt.Errorf("stat %q: %w", rel, err)
		}

		if info.Mode().IsRegular() {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrNotFound, filepath.Join(consumed, segment))
}

// join resolves rel inside the root. Symlinks are followed but never past the root.
func (r *PathResolver) join(rel string) (string, error) {
	joined, err := securejoin.SecureJoin(r.root, rel)
	if err != nil {
		return "", fmt.Errorf("join %q: %w", rel, err)
	}

	return joined, nil
}

func (r *PathResolver) located(file string, fields []string) Location {
	loc := Location{
		Folder:   filepath.Dir(file),
		Filename: filepath.Base(file),
		Fields:   slices.Clone(fields),
	}

	r.logger.Debug("path resolved",
		"folder", loc.Folder,
		"filename", loc.Filename,
		"fields", strings.Join(loc.Fields, "/"))

	return loc
}

func checkSegment(segment string) error {
	if segment == "." || segment == ".." ||
		strings.ContainsRune(segment, filepath.Separator) ||
		strings.ContainsRune(segment, 0) {
		return fmt.Errorf("%w: %q", ErrEscapesRoot, segment)
	}

	return nil
}
