package mission

import "encoding/json"

// Caller-facing failure messages.
const (
	MsgEmptyResponse    = "Empty response from AI."
	MsgParseFailure     = "Failed to parse AI response."
	MsgUpstreamFailure  = "Failed to generate mission details."
	MsgUnexpectedFormat = "Unexpected AI response format."
)

// Failure is the error object returned in place of mission details.
type Failure struct {
	Error string `json:"error"`
}

// Result holds either the JSON value produced by the model or a Failure.
// Details is kept verbatim, so key order and number precision survive
// re-encoding. The shape of Details is never checked.
type Result struct {
	Details json.RawMessage
	Failure *Failure
}

// Succeeded wraps a parsed JSON value.
func Succeeded(details json.RawMessage) Result {
	return Result{Details: details}
}

// Failed wraps a failure message.
func Failed(msg string) Result {
	return Result{Failure: &Failure{Error: msg}}
}

// OK reports whether r carries details.
func (r Result) OK() bool {
	return r.Failure == nil
}

// MarshalJSON encodes whichever variant r holds.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Failure != nil {
		return json.Marshal(r.Failure)
	}
	if len(r.Details) == 0 {
		return []byte("null"), nil
	}
	return r.Details, nil
}
