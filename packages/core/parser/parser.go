package parser

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	// ErrInvalidURL is returned for URLs that are not absolute http(s) URLs.
	ErrInvalidURL = errors.New("invalid URL")
	// ErrInvalidPair is returned for body tokens that are not key=value.
	ErrInvalidPair = errors.New("invalid key=value pair")
	// ErrInvalidHeader is returned for header tokens that are not Name:Value.
	ErrInvalidHeader = errors.New("invalid header")
)

// ParseURL parses rawURL and requires an http or https scheme and a host.
func ParseURL(rawURL string) (*url.URL, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported scheme %q in %q (only http and https are allowed)", ErrInvalidURL, u.Scheme, rawURL)
	}

	if u.Host == "" {
		return nil, fmt.Errorf("%w: %q must have a host", ErrInvalidURL, rawURL)
	}

	return u, nil
}

// ParsePair splits a key=value token on the first '='. Anything after it,
// including further '=' characters, is the value. The key must not be empty.
func ParsePair(s string) (Pair, error) {
	key, value, found := strings.Cut(s, "=")
	if !found {
		return Pair{}, fmt.Errorf("%w: %q has no '='", ErrInvalidPair, s)
	}
	if key == "" {
		return Pair{}, fmt.Errorf("%w: %q has an empty key", ErrInvalidPair, s)
	}
	return Pair{Key: key, Value: value}, nil
}

// ParsePairs parses every token, stopping at the first malformed one.
func ParsePairs(tokens []string) ([]Pair, error) {
	pairs := make([]Pair, 0, len(tokens))
	for _, tok := range tokens {
		p, err := ParsePair(tok)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

// ParseHeader parses a Name:Value token. Surrounding whitespace is trimmed.
func ParseHeader(s string) (Header, error) {
	key, value, found := strings.Cut(s, ":")
	key = strings.TrimSpace(key)
	if !found || key == "" {
		return Header{}, fmt.Errorf("%w: %q (expected Name:Value)", ErrInvalidHeader, s)
	}
	return Header{Key: key, Value: strings.TrimSpace(value)}, nil
}

// ParseHeaders parses every header token, stopping at the first malformed one.
func ParseHeaders(tokens []string) ([]Header, error) {
	headers := make([]Header, 0, len(tokens))
	for _, tok := range tokens {
		h, err := ParseHeader(tok)
		if err != nil {
			return nil, err
		}
		headers = append(headers, h)
	}
	return headers, nil
}

// NewGet builds a GET command.
func NewGet(rawURL string) (*Command, error) {
	u, err := ParseURL(rawURL)
	if err != nil {
		return nil, err
	}
	return &Command{Method: MethodGet, URL: u}, nil
}

// NewPost builds a POST command from a URL and key=value tokens.
func NewPost(rawURL string, tokens []string) (*Command, error) {
	u, err := ParseURL(rawURL)
	if err != nil {
		return nil, err
	}
	pairs, err := ParsePairs(tokens)
	if err != nil {
		return nil, err
	}
	return &Command{Method: MethodPost, URL: u, Body: pairs}, nil
}
