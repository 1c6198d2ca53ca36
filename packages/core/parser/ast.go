package parser

import (
	"net/url"
	"strings"
)

type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
)

// Pair is a single key=value body token.
type Pair struct {
	Key   string
	Value string
}

func (p Pair) String() string {
	return p.Key + "=" + p.Value
}

// Header is a single Name:Value header token.
type Header struct {
	Key   string
	Value string
}

// Command is one request to send: a GET with no body or a POST carrying body pairs.
type Command struct {
	Method Method
	URL    *url.URL
	Body   []Pair
}

// BodyObject collapses the body pairs into a single object. Later duplicate keys win.
func (c *Command) BodyObject() map[string]string {
	obj := make(map[string]string, len(c.Body))
	for _, p := range c.Body {
		obj[p.Key] = p.Value
	}
	return obj
}

// Summary renders the one-line description printed before the request is sent.
func (c *Command) Summary() string {
	var sb strings.Builder
	sb.WriteString(string(c.Method))
	sb.WriteByte(' ')
	sb.WriteString(c.URL.String())
	for _, p := range c.Body {
		sb.WriteByte(' ')
		sb.WriteString(p.String())
	}
	return sb.String()
}
