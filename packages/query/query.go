// Package query applies jq expressions to JSON response bodies.
package query

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/itchyny/gojq"
)

// Filter is a compiled jq expression.
type Filter struct {
	expr string
	code *gojq.Code
}

// Compile parses and compiles a jq expression.
func Compile(expression string) (*Filter, error) {
	q, err := gojq.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid jq expression %q: %w", expression, err)
	}
	code, err := gojq.Compile(q)
	if err != nil {
		return nil, fmt.Errorf("failed to compile jq expression %q: %w", expression, err)
	}
	return &Filter{expr: expression, code: code}, nil
}

func (f *Filter) String() string {
	return f.expr
}

// Apply runs the filter over a JSON document and returns every result
// encoded as compact JSON, in the order jq produced them. Numbers keep the
// digits they were sent with.
func (f *Filter) Apply(data []byte) ([][]byte, error) {
	input, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON body: %w", err)
	}

	var out [][]byte
	iter := f.code.Run(input)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			var haltErr *gojq.HaltError
			if errors.As(err, &haltErr) && haltErr.Value() == nil {
				break
			}
			return nil, fmt.Errorf("jq %q: %w", f.expr, err)
		}
		encoded, err := gojq.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encoding jq result: %w", err)
		}
		out = append(out, encoded)
	}
	return out, nil
}

func decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after the JSON value")
	}
	return v, nil
}
