package rest

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Op labels the operation a request belongs to.
type Op string

const (
	OpFetch  Op = "fetch"
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// DefaultMessage returns the message reported when the server gives no
// explanation, e.g. "fetch failed".
func (o Op) DefaultMessage() string {
	return fmt.Sprintf("%s failed", o)
}

// Error is returned for responses with a non-2xx status. Message is meant
// to be shown to the user as is.
type Error struct {
	Op         Op
	StatusCode int
	Message    string
}

// Error - implements error.
func (e *Error) Error() string {
	return e.Message
}

// errorBody is the subset of error payloads we know how to read.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// newError builds an *Error from a failed response body. The message comes
// from the body's "message" field, then its "error" field, then
// Op.DefaultMessage.
func newError(op Op, statusCode int, body []byte) *Error {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		parsed = errorBody{}
	}

	return &Error{
		Op:         op,
		StatusCode: statusCode,
		Message: lo.CoalesceOrEmpty(
			strings.TrimSpace(parsed.Message),
			strings.TrimSpace(parsed.Error),
			op.DefaultMessage(),
		),
	}
}
