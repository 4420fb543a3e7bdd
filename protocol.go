package main

// Not map[string][]string, unlike http.Header
type HTTPHeader map[string]string

type Request struct {
	Method  string
	URI     string
	Version string
}

type Response struct {
	Status  int
	Headers HTTPHeader
	Body    []byte
}

// The three codes this server ever emits. The set is closed; asking
// for any other code is a programming error, not a client condition.
var statusPhrases = map[int]string{
	200: "OK",
	404: "Not Found",
	501: "Not Implemented",
}

// Sent with every response unless overridden per response.
// Treated as immutable configuration.
var baseHeaders = HTTPHeader{
	"Server":       "CrudeServer",
	"Content-Type": "text/html",
}

func NewResponse(status int, extra HTTPHeader, body []byte) *Response {
	if _, ok := statusPhrases[status]; !ok {
		panic("unsupported status code")
	}
	return &Response{Status: status, Headers: extra, Body: body}
}

func ResponseNotFound() *Response {
	return NewResponse(404, nil, []byte("<h1>404 Not Found</h1>"))
}

func ResponseNotImplemented() *Response {
	return NewResponse(501, nil, []byte("<h1>501 Not Implemented</h1>"))
}
