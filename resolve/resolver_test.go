package resolve

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/0xalexb/confd/content"
	"github.com/0xalexb/confd/logging"
	"github.com/0xalexb/confd/value"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	_, err := New(t.TempDir(), nil, logging.Discard())
	require.ErrorIs(t, err, ErrNilRegistry)

	_, err = New("", defaultRegistry(t), logging.Discard())
	require.ErrorIs(t, err, ErrEmptyRoot)
}

func TestResolver_Resolve_Scenarios(t *testing.T) {
	t.Parallel()

	libraryRoot := newTestRoot(t, map[string]string{
		"movies/library.json": libraryJSON,
		"stats/counts.json":   `{"Year": 2006}`,
	})
	directoryRoot := newTestRoot(t, map[string]string{"movies/library/": ""})
	brokenRoot := newTestRoot(t, map[string]string{"movies/library.json": `{"The Prestige": {"Director": `})

	testCases := []struct {
		name string
		root string
		path string
		kind Kind
		want value.Value
	}{
		{
			name: "nested field",
			root: libraryRoot,
			path: "/movies/library/The Prestige/Director",
			kind: Found,
			want: value.StringValue("Christopher Nolan"),
		},
		{
			name: "directory without file",
			root: directoryRoot,
			path: "/movies/library",
			kind: BadRequest,
		},
		{
			name: "missing field",
			root: libraryRoot,
			path: "/movies/library/The Prestige/Budget",
			kind: NotFound,
		},
		{
			name: "unknown directory",
			root: libraryRoot,
			path: "/unknown/thing",
			kind: NotFound,
		},
		{
			name: "malformed file",
			root: brokenRoot,
			path: "/movies/library/The Prestige",
			kind: ParseFailure,
		},
		{
			name: "malformed file with empty chain",
			root: brokenRoot,
			path: "/movies/library",
			kind: ParseFailure,
		},
		{
			name: "number leaf",
			root: libraryRoot,
			path: "/stats/counts/Year",
			kind: Found,
			want: value.NumberValue(2006),
		},
		{
			name: "falsy leaf",
			root: libraryRoot,
			path: "/movies/library/The Prestige/Watched",
			kind: Found,
			want: value.BoolValue(false),
		},
		{
			name: "empty path",
			root: libraryRoot,
			path: "/",
			kind: BadRequest,
		},
		{
			name: "escaping path",
			root: libraryRoot,
			path: "/movies/../../etc/passwd",
			kind: BadRequest,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			outcome := newTestResolver(t, testCase.root).Resolve(testCase.path)
			require.Equal(t, testCase.kind, outcome.Kind, "err: %v", outcome.Err)

			if testCase.kind == Found {
				assert.True(t, testCase.want.Equal(outcome.Value), "got %v", outcome.Value.Native())
				assert.NoError(t, outcome.Err)
			}
		})
	}
}

func TestResolver_Resolve_WholeDocument(t *testing.T) {
	t.Parallel()

	root := newTestRoot(t, map[string]string{"movies/library.json": libraryJSON})

	outcome := newTestResolver(t, root).Resolve("/movies/library")
	require.Equal(t, Found, outcome.Kind)
	assert.Equal(t, []string{"The Prestige"}, outcome.Value.Keys())
}

func TestResolver_Resolve_MissingFieldHasNoError(t *testing.T) {
	t.Parallel()

	root := newTestRoot(t, map[string]string{"movies/library.json": libraryJSON})

	outcome := newTestResolver(t, root).Resolve("/movies/library/Inception/Director")
	require.Equal(t, NotFound, outcome.Kind)
	assert.NoError(t, outcome.Err)
}

func TestResolver_Resolve_UnsupportedFormatIsInternal(t *testing.T) {
	t.Parallel()

	root := newTestRoot(t, map[string]string{"movies/library.ini": "a=1"})

	outcome := newTestResolver(t, root).Resolve("/movies/library.ini/a")
	require.Equal(t, InternalFailure, outcome.Kind)
	require.ErrorIs(t, outcome.Err, content.ErrUnsupportedFormat)
}

func TestResolver_Resolve_Concurrent(t *testing.T) {
	t.Parallel()

	root := newTestRoot(t, map[string]string{"movies/library.json": libraryJSON})
	resolver := newTestResolver(t, root)

	const workers = 16

	var wg sync.WaitGroup

	errs := make(chan error, workers)

	for i := range workers {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			path := "/movies/library/The Prestige/Director"
			if i%2 == 1 {
				path = "/movies/library/The Prestige/Budget"
			}

			outcome := resolver.Resolve(path)
			if (i%2 == 0 && outcome.Kind != Found) || (i%2 == 1 && outcome.Kind != NotFound) {
				errs <- fmt.Errorf("worker %d: unexpected outcome %s", i, outcome.Kind)
			}
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestResolver_Resolve_Idempotent(t *testing.T) {
	t.Parallel()

	root := newTestRoot(t, map[string]string{
		"movies/library.json": libraryJSON,
		"movies/broken.json":  "{",
	})
	resolver := newTestResolver(t, root)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("identical requests give identical outcomes", prop.ForAll(
		func(path string) bool {
			first := resolver.Resolve(path)
			second := resolver.Resolve(path)

			return first.Kind == second.Kind &&
				first.Value.Equal(second.Value) &&
				fmt.Sprint(first.Err) == fmt.Sprint(second.Err)
		},
		gen.OneConstOf(
			"/movies/library",
			"/movies/library/The Prestige",
			"/movies/library/The Prestige/Director",
			"/movies/library/The Prestige/Budget",
			"/movies/broken/x",
			"/movies",
			"/nothing/here",
			"",
		),
	))

	properties.TestingRun(t)
}

func TestClassify(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, Found},
		{"empty path", ErrEmptyPath, BadRequest},
		{"no filename", fmt.Errorf("wrapped: %w", ErrNoFilename), BadRequest},
		{"escape", ErrEscapesRoot, BadRequest},
		{"not found", ErrNotFound, NotFound},
		{"malformed", fmt.Errorf("parse: %w", content.ErrMalformed), ParseFailure},
		{"unsupported", content.ErrUnsupportedFormat, InternalFailure},
		{"unknown", errors.New("disk on fire"), InternalFailure},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, Classify(testCase.err))
		})
	}
}
