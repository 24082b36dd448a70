package provider

import (
	"net/http"
	"net/url"
	"strings"
)

// Callback is an inbound provider request exactly as received. Every field is
// untrusted until the owning provider has verified it.
type Callback struct {
	Fields   map[string]string
	Header   http.Header
	Body     []byte
	RemoteIP string
}

func NewCallback(fields url.Values, header http.Header, body []byte) *Callback {
	flat := make(map[string]string, len(fields))
	for key, values := range fields {
		if len(values) > 0 {
			flat[key] = values[0]
		}
	}
	if header == nil {
		header = http.Header{}
	}
	return &Callback{Fields: flat, Header: header, Body: body}
}

func (c *Callback) Field(name string) string {
	if c == nil || c.Fields == nil {
		return ""
	}
	return strings.TrimSpace(c.Fields[name])
}
