package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid http URL",
			url:  "http://example.test/",
		},
		{
			name: "valid https URL with query",
			url:  "https://example.test/path?q=1",
		},
		{
			name:    "missing scheme",
			url:     "example.test/path",
			wantErr: true,
			errMsg:  "unsupported scheme",
		},
		{
			name:    "ftp scheme",
			url:     "ftp://example.test",
			wantErr: true,
			errMsg:  "unsupported scheme",
		},
		{
			name:    "missing host",
			url:     "http:///path",
			wantErr: true,
			errMsg:  "must have a host",
		},
		{
			name:    "unparsable",
			url:     "http://[::1",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := ParseURL(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidURL)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.url, u.String())
		})
	}
}

func TestParsePair(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    Pair
		wantErr bool
	}{
		{name: "simple", token: "a=1", want: Pair{Key: "a", Value: "1"}},
		{name: "empty value", token: "a=", want: Pair{Key: "a", Value: ""}},
		{name: "value keeps further equals", token: "key=a=b", want: Pair{Key: "key", Value: "a=b"}},
		{name: "value with spaces", token: "name=John Doe", want: Pair{Key: "name", Value: "John Doe"}},
		{name: "no equals", token: "novalue", wantErr: true},
		{name: "empty key", token: "=v", wantErr: true},
		{name: "empty token", token: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePair(tt.token)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidPair)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePairs_StopsAtFirstMalformed(t *testing.T) {
	_, err := ParsePairs([]string{"a=1", "bad", "c=3"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"bad"`)
}

func TestParseHeader(t *testing.T) {
	h, err := ParseHeader("X-Token:  abc ")
	require.NoError(t, err)
	assert.Equal(t, Header{Key: "X-Token", Value: "abc"}, h)

	h, err = ParseHeader("Authorization: Bearer a:b")
	require.NoError(t, err)
	assert.Equal(t, "Bearer a:b", h.Value)

	_, err = ParseHeader("no-colon")
	assert.ErrorIs(t, err, ErrInvalidHeader)

	_, err = ParseHeader(": value")
	assert.ErrorIs(t, err, ErrInvalidHeader)
}

func TestNewGet(t *testing.T) {
	cmd, err := NewGet("http://example.test/")
	require.NoError(t, err)
	assert.Equal(t, MethodGet, cmd.Method)
	assert.Empty(t, cmd.Body)
	assert.Equal(t, "GET http://example.test/", cmd.Summary())

	_, err = NewGet("not a url")
	assert.ErrorIs(t, err, ErrInvalidURL)
}

func TestNewPost(t *testing.T) {
	cmd, err := NewPost("http://example.test/", []string{"a=1", "b=2"})
	require.NoError(t, err)
	assert.Equal(t, MethodPost, cmd.Method)
	assert.Equal(t, []Pair{{"a", "1"}, {"b", "2"}}, cmd.Body)
	assert.Equal(t, "POST http://example.test/ a=1 b=2", cmd.Summary())

	_, err = NewPost("http://example.test/", []string{"novalue"})
	assert.ErrorIs(t, err, ErrInvalidPair)
}

func TestCommand_BodyObject_LastDuplicateWins(t *testing.T) {
	cmd, err := NewPost("http://example.test/", []string{"a=1", "b=2", "a=3"})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"a": "3", "b": "2"}, cmd.BodyObject())
}
