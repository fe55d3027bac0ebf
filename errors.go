package restcore

import "net/http"

// Error is the API error record materialized to JSON on any failure
// path: a handler error, a parameter-parsing failure, or a response
// serialization failure. Field names and the status-in-code shape
// follow spec.md §6/§7.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
}

func (e *Error) Error() string {
	return e.Message
}

// StatusCode implements HandlerError.
func (e *Error) StatusCode() int {
	return e.Code
}

// HandlerError is the capability a handler's error type may provide to
// control its own HTTP status, in place of always falling back to 500.
// Grounded on the HTTPError/ToHTTPError pattern used by
// Abhishek2010dev/zeno for the same purpose.
type HandlerError interface {
	error
	StatusCode() int
}

// ToError converts any error returned by a handler into the wire Error
// record. An error already implementing HandlerError keeps its status;
// anything else becomes a 500 with the error's message as detail.
func ToError(err error) *Error {
	if err == nil {
		return nil
	}
	if apiErr, ok := err.(*Error); ok {
		return apiErr
	}
	if he, ok := err.(HandlerError); ok {
		return &Error{Code: he.StatusCode(), Message: "request failed", Details: he.Error()}
	}
	return InternalError("internal error", err.Error())
}

// NotFoundError builds a 404 Error.
func NotFoundError(details string) *Error {
	return &Error{Code: http.StatusNotFound, Message: "Requested resource was not found.", Details: details}
}

// BadRequestError builds a 400 Error.
func BadRequestError(message, details string) *Error {
	return &Error{Code: http.StatusBadRequest, Message: message, Details: details}
}

// MethodNotAllowedError builds a 405 Error.
func MethodNotAllowedError(message, details string) *Error {
	return &Error{Code: http.StatusMethodNotAllowed, Message: message, Details: details}
}

// InternalError builds a 500 Error.
func InternalError(message, details string) *Error {
	return &Error{Code: http.StatusInternalServerError, Message: message, Details: details}
}

// NotImplementedError builds a 501 Error, used for the unrecognized
// HTTP verbs the dispatcher refuses to coerce to GET; see SPEC_FULL.md.
func NotImplementedError(method string) *Error {
	return &Error{
		Code:    http.StatusNotImplemented,
		Message: "Method not implemented.",
		Details: "Unrecognized HTTP method: " + method,
	}
}

// fromParamsError maps a *params.Error to the wire Error record per
// spec.md §4.2's taxonomy. Defined in endpoint.go alongside the params
// import to keep this file free of the params dependency.
