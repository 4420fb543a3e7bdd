package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
)

func statusLine(status int) string {
	phrase, ok := statusPhrases[status]
	if !ok {
		panic("unsupported status code")
	}
	return fmt.Sprintf("HTTP/1.1 %d %s\r\n", status, phrase)
}

// headerBlock merges the base headers with the per-response extras
// (extras win on key collision) and serializes them in sorted key
// order, so the bytes on the wire are deterministic.
func headerBlock(extra HTTPHeader) string {
	merged := make(HTTPHeader, len(baseHeaders)+len(extra))
	for k, v := range baseHeaders {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var block string
	for _, k := range keys {
		block += fmt.Sprintf("%s: %s\r\n", k, merged[k])
	}
	return block
}

// WriteResponse serializes a full response: status line, headers, a
// blank line, then the body. Content-Length is always set from the
// body so clients need not rely on connection close for framing.
func WriteResponse(w io.Writer, res *Response) error {
	extra := make(HTTPHeader, len(res.Headers)+1)
	for k, v := range res.Headers {
		extra[k] = v
	}
	extra["Content-Length"] = strconv.Itoa(len(res.Body))

	if _, err := io.WriteString(w, statusLine(res.Status)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, headerBlock(extra)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\r\n"); err != nil {
		return err
	}
	_, err := w.Write(res.Body)
	return err
}
