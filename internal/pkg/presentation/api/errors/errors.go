package errors

import (
	"encoding/json"
	"net/http"
)

// ErrorReport is the body returned to clients when a request fails
type ErrorReport struct {
	message string
	code    int
}

const ErrorReportContentType string = "application/json"

//NewNotFound creates an ErrorReport for a person or company that could not be found
func NewNotFound(message string) *ErrorReport {
	return &ErrorReport{message: message, code: http.StatusNotFound}
}

//ReportNotFoundError creates a NotFound report and sends it to the supplied http.ResponseWriter
func ReportNotFoundError(w http.ResponseWriter, message string) {
	NewNotFound(message).WriteResponse(w)
}

func NewBadRequest(message string) *ErrorReport {
	return &ErrorReport{message: message, code: http.StatusBadRequest}
}

func ReportBadRequest(w http.ResponseWriter, message string) {
	NewBadRequest(message).WriteResponse(w)
}

func NewForbidden(message string) *ErrorReport {
	return &ErrorReport{message: message, code: http.StatusForbidden}
}

func ReportForbidden(w http.ResponseWriter, message string) {
	NewForbidden(message).WriteResponse(w)
}

func NewInternalError(message string) *ErrorReport {
	return &ErrorReport{message: message, code: http.StatusInternalServerError}
}

func ReportInternalError(w http.ResponseWriter, message string) {
	NewInternalError(message).WriteResponse(w)
}

func (e *ErrorReport) Message() string {
	return e.message
}

func (e *ErrorReport) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Message string `json:"message"`
	}{
		Message: e.message,
	})
}

func (e *ErrorReport) ResponseCode() int {
	if e.code != 0 {
		return e.code
	}

	return http.StatusBadRequest
}

//WriteResponse writes the contents of this report to a http.ResponseWriter
func (e *ErrorReport) WriteResponse(w http.ResponseWriter) {
	w.Header().Add("Content-Type", ErrorReportContentType)
	w.Header().Add("Content-Language", "en")
	w.WriteHeader(e.ResponseCode())

	body, err := json.Marshal(e)
	if err == nil {
		w.Write(body)
	}
}
