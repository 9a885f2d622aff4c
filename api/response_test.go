package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xalexb/confd/resolve"
	"github.com/0xalexb/confd/value"
)

func TestStatusCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusOK, StatusCode(resolve.Found))
	assert.Equal(t, http.StatusBadRequest, StatusCode(resolve.BadRequest))
	assert.Equal(t, http.StatusNotFound, StatusCode(resolve.NotFound))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(resolve.ParseFailure))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(resolve.InternalFailure))
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		in   value.Value
		want value.Value
	}{
		{"integer", value.NumberValue(2006), value.StringValue("2006")},
		{"fraction", value.NumberValue(8.5), value.StringValue("8.5")},
		{"zero", value.NumberValue(0), value.StringValue("0")},
		{"string", value.StringValue("Christopher Nolan"), value.StringValue("Christopher Nolan")},
		{"false", value.BoolValue(false), value.BoolValue(false)},
		{"null", value.NullValue(), value.NullValue()},
		{
			"sequence keeps numbers",
			value.SequenceValue(value.NumberValue(1)),
			value.SequenceValue(value.NumberValue(1)),
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := Normalize(testCase.in)
			assert.True(t, testCase.want.Equal(got), "got %#v", got.Native())
		})
	}
}

func TestWriteOutcome(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		require.NoError(t, writeOutcome(rec, resolve.Outcome{Kind: resolve.Found, Value: value.NumberValue(2006)}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, contentTypeJSON, rec.Header().Get("Content-Type"))
		assert.Equal(t, `"2006"`, rec.Body.String())
	})

	t.Run("failure has empty body", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		require.NoError(t, writeOutcome(rec, resolve.Outcome{Kind: resolve.ParseFailure, Err: assert.AnError}))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Empty(t, rec.Body.String())
		assert.Empty(t, rec.Header().Get("Content-Type"))
	})
}
