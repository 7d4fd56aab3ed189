package transport

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

type (
	// Envelope is the uniform result of every completed exchange. Data,
	// Message and Errors are extracted from the parsed body only when that
	// body is a JSON object carrying the matching members; any other parsed
	// value lands in Data verbatim. Raw always holds the whole parsed body.
	Envelope struct {
		OK         bool
		StatusCode int
		Header     http.Header
		Data       json.RawMessage
		Message    string
		Errors     map[string]string
		Raw        json.RawMessage
	}

	envelopeFields struct {
		data    json.RawMessage
		message string
		errors  map[string]string
	}
)

// DecodeData unmarshals the data member into v. A missing or null data
// member leaves v untouched.
func (e *Envelope) DecodeData(v any) error {
	if len(e.Data) == 0 || bytes.Equal(e.Data, []byte("null")) {
		return nil
	}
	return json.Unmarshal(e.Data, v)
}

// shouldParseBody decides whether a response is expected to carry a JSON
// body. No-content statuses only count when the server declared a positive
// length; everything else keys on the content type.
func shouldParseBody(status int, header http.Header) bool {
	switch status {
	case http.StatusNoContent, http.StatusResetContent, http.StatusNotModified:
		n, err := strconv.Atoi(header.Get("Content-Length"))
		return err == nil && n > 0
	}
	return strings.Contains(header.Get("Content-Type"), "application/json")
}

// decodeEnvelopeFields splits an already-validated JSON body into the
// envelope members. This is the only place the {data,message,errors}
// convention is interpreted.
func decodeEnvelopeFields(body []byte) envelopeFields {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return envelopeFields{data: body}
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return envelopeFields{data: body}
	}

	f := envelopeFields{data: obj["data"]}

	if raw, ok := obj["message"]; ok {
		// A non-string message is ignored rather than rejected.
		_ = json.Unmarshal(raw, &f.message)
	}
	if raw, ok := obj["errors"]; ok {
		_ = json.Unmarshal(raw, &f.errors)
	}

	return f
}
