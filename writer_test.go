package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteResponse(t *testing.T) {
	res := NewResponse(200, HTTPHeader{"Content-Type": "text/html"}, []byte("FooBar"))
	ss := []string{
		"HTTP/1.1 200 OK\r\n",
		"Content-Length: 6\r\n",
		"Content-Type: text/html\r\n",
		"Server: CrudeServer\r\n",
		"\r\n",
		"FooBar",
	}
	w := new(bytes.Buffer)
	if err := WriteResponse(w, res); err != nil {
		t.Fatal(err)
	}
	ExpectEqual(t, strings.Join(ss, ""), w.String())
}

func TestWriteResponseNotImplemented(t *testing.T) {
	ss := []string{
		"HTTP/1.1 501 Not Implemented\r\n",
		"Content-Length: 28\r\n",
		"Content-Type: text/html\r\n",
		"Server: CrudeServer\r\n",
		"\r\n",
		"<h1>501 Not Implemented</h1>",
	}
	w := new(bytes.Buffer)
	if err := WriteResponse(w, ResponseNotImplemented()); err != nil {
		t.Fatal(err)
	}
	ExpectEqual(t, strings.Join(ss, ""), w.String())
}

func TestHeaderBlockOverride(t *testing.T) {
	block := headerBlock(HTTPHeader{"Server": "Other"})
	ExpectEqual(t, "Content-Type: text/html\r\nServer: Other\r\n", block)
}

func TestStatusLineUnknownCodePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for unknown status code")
		}
	}()
	statusLine(500)
}
