package runner

// Method is the closed set of HTTP methods the dispatcher supports.
type Method int

const (
	MethodGet Method = iota
	MethodPost
	MethodPut
	MethodDelete
)

// ParseMethod maps a stored method string onto the supported set. Any
// unrecognized value folds to GET; the second return reports whether the
// input was recognized.
func ParseMethod(s string) (Method, bool) {
	switch s {
	case "GET":
		return MethodGet, true
	case "POST":
		return MethodPost, true
	case "PUT":
		return MethodPut, true
	case "DELETE":
		return MethodDelete, true
	default:
		return MethodGet, false
	}
}

func (m Method) String() string {
	switch m {
	case MethodPost:
		return "POST"
	case MethodPut:
		return "PUT"
	case MethodDelete:
		return "DELETE"
	default:
		return "GET"
	}
}

// HasBody reports whether the stored body is sent for this method.
func (m Method) HasBody() bool {
	return m == MethodPost || m == MethodPut
}
