package graph

const (
	codeInternal   = "INTERNAL_SERVER_ERROR"
	codeBadRequest = "BAD_REQUEST"
)

// Error is a resolver error carrying a GraphQL extensions code.
type Error struct {
	Message string
	Code    string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"code": e.Code,
	}
}

var (
	errInternal = &Error{
		Message: "internal server error",
		Code:    codeInternal,
	}
	errMutationNotAllowed = &Error{
		Message: "mutations can only be sent with POST",
		Code:    codeBadRequest,
	}
)
