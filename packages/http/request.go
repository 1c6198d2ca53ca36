package http

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abdul-hamid-achik/httpie/packages/core/parser"
)

const (
	ContentTypeJSON = "application/json"
	acceptJSON      = "application/json, */*;q=0.5"
)

type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    string
	Auth    *Credentials
}

func NewRequest(method, requestURL string) *Request {
	return &Request{
		Method:  method,
		URL:     requestURL,
		Headers: make(map[string]string),
	}
}

func (r *Request) SetHeader(key, value string) *Request {
	r.Headers[key] = value
	return r
}

func (r *Request) SetBody(body string) *Request {
	r.Body = body
	return r
}

func (r *Request) SetAuth(creds *Credentials) *Request {
	r.Auth = creds
	return r
}

// HasHeader reports whether key is set, ignoring case.
func (r *Request) HasHeader(key string) bool {
	for k := range r.Headers {
		if strings.EqualFold(k, key) {
			return true
		}
	}
	return false
}

// BuildJSONBody encodes a body object as JSON. Keys are emitted in sorted order.
func BuildJSONBody(obj map[string]string) (string, error) {
	data, err := json.Marshal(obj)
	if err != nil {
		return "", fmt.Errorf("encoding request body: %w", err)
	}
	return string(data), nil
}

// BuildRequestFromCommand turns a parsed command plus extra header tokens into a Request.
// POST bodies are sent as JSON; an explicit Content-Type header is left alone.
func BuildRequestFromCommand(cmd *parser.Command, headers []parser.Header) (*Request, error) {
	r := NewRequest(string(cmd.Method), cmd.URL.String())

	for _, h := range headers {
		r.SetHeader(h.Key, h.Value)
	}

	if cmd.Method == parser.MethodPost {
		body, err := BuildJSONBody(cmd.BodyObject())
		if err != nil {
			return nil, err
		}
		r.SetBody(body)

		if !r.HasHeader("Content-Type") {
			r.SetHeader("Content-Type", ContentTypeJSON)
		}
		if !r.HasHeader("Accept") {
			r.SetHeader("Accept", acceptJSON)
		}
	}

	return r, nil
}
