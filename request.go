package main

import (
	"bytes"
	"strings"
)

// ParseRequest builds a Request from the raw bytes of a single read.
// Only the first CRLF-terminated line is consumed; anything after it
// stays untouched for callers that want more of the protocol.
//
// The parser never fails: some clients omit the URI or the HTTP
// version on the request line, so a missing URI means the root and a
// missing version defaults to 1.1. A missing method leaves Method
// empty, which matches no handler and ends up as a 501 downstream.
func ParseRequest(raw []byte) *Request {
	req := &Request{Version: "1.1"}

	line := raw
	if i := bytes.Index(raw, []byte("\r\n")); i >= 0 {
		line = raw[:i]
	}

	fields := strings.Split(string(line), " ")
	req.Method = fields[0]
	if len(fields) > 1 {
		req.URI = fields[1]
	}
	if len(fields) > 2 {
		req.Version = fields[2]
	}
	return req
}
