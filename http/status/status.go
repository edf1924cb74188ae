package status

type (
	Code   uint16
	Status = string
)

const (
	OK                      Code = 200
	BadRequest              Code = 400
	NotFound                Code = 404
	MethodNotAllowed        Code = 405
	InternalServerError     Code = 500
	HTTPVersionNotSupported Code = 505
)

// Text returns the full status-line text for the codes the server
// emits, code included. The "Ok" casing is intentional and matches the
// wire format clients of this server have always observed.
func Text(code Code) Status {
	switch code {
	case OK:
		return "200 Ok"
	case BadRequest:
		return "400 Bad Request"
	case NotFound:
		return "404 Not Found"
	case MethodNotAllowed:
		return "405 Method Not Allowed"
	case InternalServerError:
		return "500 Internal Server Error"
	case HTTPVersionNotSupported:
		return "505 HTTP Version Not Supported"
	default:
		return ""
	}
}
