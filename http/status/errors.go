package status

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	// ErrConnectionClosed means the peer went away before a full request
	// line arrived. No response is attempted for it.
	ErrConnectionClosed = NewError(0, "connection closed")

	ErrBadRequest          = NewError(BadRequest, "invalid request line")
	ErrNotFound            = NewError(NotFound, "not found")
	ErrMethodNotAllowed    = NewError(MethodNotAllowed, "method not allowed")
	ErrUnsupportedProtocol = NewError(HTTPVersionNotSupported, "HTTP version not supported")
	ErrInternalServerError = NewError(InternalServerError, "internal server error")
)
