package api

import (
	"encoding/json"
	"net/http"

	"github.com/0xalexb/confd/resolve"
	"github.com/0xalexb/confd/value"
)

const contentTypeJSON = "application/json; charset=utf-8"

// StatusCode maps an outcome kind to the HTTP status sent to the client.
func StatusCode(kind resolve.Kind) int {
	switch kind {
	case resolve.Found:
		return http.StatusOK
	case resolve.BadRequest:
		return http.StatusBadRequest
	case resolve.NotFound:
		return http.StatusNotFound
	case resolve.ParseFailure, resolve.InternalFailure:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Normalize prepares a resolved value for the wire. A Number leaf becomes its
// canonical decimal string; every other value, including numbers nested inside
// sequences and mappings, is returned unchanged.
func Normalize(v value.Value) value.Value {
	n, ok := v.AsNumber()
	if !ok {
		return v
	}

	return value.StringValue(value.FormatNumber(n))
}

// writeOutcome sends the status for outcome and, when a value was found, its JSON body.
// Failure responses carry no body so filesystem details never reach the client.
func writeOutcome(w http.ResponseWriter, outcome resolve.Outcome) error {
	status := StatusCode(outcome.Kind)
	if outcome.Kind != resolve.Found {
		w.WriteHeader(status)

		return nil
	}

	body, err := json.Marshal(Normalize(outcome.Value))
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)

		return err //nolint:wrapcheck
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)

	_, err = w.Write(body)

	return err //nolint:wrapcheck
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)

	_, _ = w.Write(body)
}
