package response

import "net/http"

// HTTPError is an error carrying an HTTP status code and a machine-readable key.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	return e.Key
}

var (
	ErrBadRequest          = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrNotFound            = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrMethodNotAllowed    = HTTPError{Code: http.StatusMethodNotAllowed, Key: "method_not_allowed"}
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
)

// NewHTTPError creates an HTTPError with a custom key.
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

// Wrap attaches e to err. The result matches both with errors.Is and keeps
// err's message.
func (e HTTPError) Wrap(err error) error {
	if err == nil {
		return e
	}
	return &wrappedError{status: e, err: err}
}

type wrappedError struct {
	status HTTPError
	err    error
}

func (w *wrappedError) Error() string   { return w.err.Error() }
func (w *wrappedError) Unwrap() []error { return []error{w.status, w.err} }
