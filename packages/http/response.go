package http

import (
	"mime"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"
)

type Response struct {
	Proto      string
	StatusCode int
	Status     string
	Headers    http.Header
	Body       []byte
	Duration   time.Duration
}

func (r *Response) BodyString() string {
	return string(r.Body)
}

func (r *Response) Header(key string) string {
	return r.Headers.Get(key)
}

// HeaderNames returns the header names in sorted order. Go's header map does not
// keep the order names arrived in, so sorting keeps output stable between runs.
func (r *Response) HeaderNames() []string {
	names := make([]string, 0, len(r.Headers))
	for k := range r.Headers {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// Reason returns the reason phrase, e.g. "Not Found".
func (r *Response) Reason() string {
	reason := strings.TrimPrefix(r.Status, strconv.Itoa(r.StatusCode))
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = http.StatusText(r.StatusCode)
	}
	return reason
}

// StatusLine renders "<proto> <code> <reason>".
func (r *Response) StatusLine() string {
	line := r.Proto + " " + strconv.Itoa(r.StatusCode)
	if reason := r.Reason(); reason != "" {
		line += " " + reason
	}
	return line
}

func (r *Response) ContentType() string {
	return r.Header("Content-Type")
}

// MediaType returns the lower-cased media type of the Content-Type header
// with parameters removed, or "" when the header is absent.
func (r *Response) MediaType() string {
	ct := r.ContentType()
	if ct == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		mediaType, _, _ = strings.Cut(ct, ";")
		mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	}
	return mediaType
}

func (r *Response) IsJSON() bool {
	return r.MediaType() == ContentTypeJSON
}
