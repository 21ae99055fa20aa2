package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
)

var ErrNotFound = fmt.Errorf("not found")
var ErrBadRequest = fmt.Errorf("bad request")
var ErrForbidden = fmt.Errorf("forbidden")
var ErrInternal = fmt.Errorf("internal error")
var ErrRequest = fmt.Errorf("request error")
var ErrBadResponse = fmt.Errorf("bad response")

type myError struct {
	msg    string
	target error
}

func (m myError) Error() string        { return m.msg }
func (m myError) Is(target error) bool { return target == m.target }

func NewNotFoundError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrNotFound,
	}
}

func NewBadRequestError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrBadRequest,
	}
}

func NewForbiddenError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrForbidden,
	}
}

// NewErrorFromResponse converts an error response from the paranuara api into
// an error that can be matched with errors.Is
func NewErrorFromResponse(code int, body []byte) error {
	report := &struct {
		Message string `json:"message"`
	}{}

	err := json.Unmarshal(body, report)
	if err != nil {
		return fmt.Errorf("failed to process error response (%d): %s (%w)", code, err.Error(), ErrBadResponse)
	}

	switch code {
	case http.StatusNotFound:
		return NewNotFoundError(report.Message)
	case http.StatusBadRequest:
		return NewBadRequestError(report.Message)
	case http.StatusForbidden:
		return NewForbiddenError(report.Message)
	}

	return fmt.Errorf("[error: %d] unexpected response with message \"%s\" (%w)", code, report.Message, ErrInternal)
}
