package http

import (
	"crypto/md5"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

type AuthType string

const (
	AuthBasic  AuthType = "basic"
	AuthDigest AuthType = "digest"
)

// Credentials holds the user and password sent with --auth.
type Credentials struct {
	Type     AuthType
	Username string
	Password string
}

// ParseCredentials parses "user:password". A missing password is empty.
func ParseCredentials(s string, authType AuthType) (*Credentials, error) {
	switch authType {
	case AuthBasic, AuthDigest:
	default:
		return nil, fmt.Errorf("unsupported auth type %q (use basic or digest)", authType)
	}

	user, password, _ := strings.Cut(s, ":")
	if user == "" {
		return nil, fmt.Errorf("invalid credentials %q: missing user", s)
	}
	return &Credentials{Type: authType, Username: user, Password: password}, nil
}

// digestChallenge is the parsed WWW-Authenticate value of a digest 401.
type digestChallenge struct {
	Realm     string
	Nonce     string
	Opaque    string
	Qop       string
	Algorithm string
}

// parseDigestChallenge reads the key=value parameters of a Digest challenge.
// Quoted values may contain commas.
func parseDigestChallenge(header string) (*digestChallenge, bool) {
	scheme, rest, _ := strings.Cut(strings.TrimSpace(header), " ")
	if !strings.EqualFold(scheme, "Digest") {
		return nil, false
	}

	params := make(map[string]string)
	for len(rest) > 0 {
		rest = strings.TrimLeft(rest, " ,")
		key, after, found := strings.Cut(rest, "=")
		if !found {
			break
		}
		key = strings.ToLower(strings.TrimSpace(key))

		var value string
		if strings.HasPrefix(after, `"`) {
			end := strings.Index(after[1:], `"`)
			if end < 0 {
				value, rest = after[1:], ""
			} else {
				value, rest = after[1:end+1], after[end+2:]
			}
		} else {
			value, rest, _ = strings.Cut(after, ",")
			value = strings.TrimSpace(value)
		}
		params[key] = value
	}

	c := &digestChallenge{
		Realm:     params["realm"],
		Nonce:     params["nonce"],
		Opaque:    params["opaque"],
		Algorithm: params["algorithm"],
	}
	if qop, ok := params["qop"]; ok {
		for _, q := range strings.Split(qop, ",") {
			if strings.TrimSpace(q) == "auth" {
				c.Qop = "auth"
			}
		}
	}
	return c, c.Nonce != ""
}

// authorization computes the Authorization header answering the challenge
// for method and uri (RFC 2617, MD5, qop=auth or none).
func (c *digestChallenge) authorization(creds *Credentials, method, uri, cnonce string) string {
	const nc = "00000001"

	ha1 := md5Hex(creds.Username + ":" + c.Realm + ":" + creds.Password)
	ha2 := md5Hex(method + ":" + uri)

	var response string
	if c.Qop == "auth" {
		response = md5Hex(strings.Join([]string{ha1, c.Nonce, nc, cnonce, c.Qop, ha2}, ":"))
	} else {
		response = md5Hex(ha1 + ":" + c.Nonce + ":" + ha2)
	}

	parts := []string{
		fmt.Sprintf(`username="%s"`, creds.Username),
		fmt.Sprintf(`realm="%s"`, c.Realm),
		fmt.Sprintf(`nonce="%s"`, c.Nonce),
		fmt.Sprintf(`uri="%s"`, uri),
		fmt.Sprintf(`response="%s"`, response),
	}
	if c.Algorithm != "" {
		parts = append(parts, "algorithm="+c.Algorithm)
	}
	if c.Qop != "" {
		parts = append(parts, "qop="+c.Qop, "nc="+nc, fmt.Sprintf(`cnonce="%s"`, cnonce))
	}
	if c.Opaque != "" {
		parts = append(parts, fmt.Sprintf(`opaque="%s"`, c.Opaque))
	}
	return "Digest " + strings.Join(parts, ", ")
}

func newCnonce() (string, error) {
	b := make([]byte, 8)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func md5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
