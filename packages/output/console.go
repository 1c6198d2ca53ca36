package output

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/abdul-hamid-achik/httpie/packages/core/parser"
	"github.com/abdul-hamid-achik/httpie/packages/http"
	"github.com/fatih/color"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// jsonLayout indents every object and array, one element per line.
// A zero Width turns off pretty's single-line arrays.
var jsonLayout = &pretty.Options{Indent: "  "}

// BodyFilter narrows a JSON body to the documents worth printing.
type BodyFilter interface {
	Apply(body []byte) ([][]byte, error)
}

type Printer struct {
	writer io.Writer
	filter BodyFilter

	url        *color.Color
	pairs      *color.Color
	status     *color.Color
	headerName *color.Color
	jsonBody   *color.Color
	errLabel   *color.Color
}

type PrinterOption func(*Printer)

func NewPrinter(mode ColorMode, opts ...PrinterOption) *Printer {
	p := &Printer{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(p)
	}

	enabled := mode.Enabled(p.writer)
	p.url = newColor(enabled, color.FgGreen)
	p.pairs = newColor(enabled, color.FgHiBlue)
	p.status = newColor(enabled, color.FgBlue)
	p.headerName = newColor(enabled, color.FgGreen)
	p.jsonBody = newColor(enabled, color.FgCyan)
	p.errLabel = newColor(enabled, color.FgRed, color.Bold)
	return p
}

func WithWriter(w io.Writer) PrinterOption {
	return func(p *Printer) {
		p.writer = w
	}
}

// WithFilter narrows JSON bodies before they are printed.
func WithFilter(f BodyFilter) PrinterOption {
	return func(p *Printer) {
		p.filter = f
	}
}

// newColor builds a color that is switched on or off by itself, leaving the
// package-level color.NoColor alone.
func newColor(enabled bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// PrintRequest writes the one-line summary shown before a request is sent.
func (p *Printer) PrintRequest(cmd *parser.Command) {
	fmt.Fprintf(p.writer, "%s %s", cmd.Method, p.url.Sprint(cmd.URL.String()))
	for _, pair := range cmd.Body {
		fmt.Fprintf(p.writer, " %s", p.pairs.Sprint(pair.String()))
	}
	fmt.Fprintln(p.writer)
}

// PrintResponse writes status line, headers and body.
func (p *Printer) PrintResponse(resp *http.Response) error {
	p.PrintStatus(resp)
	p.PrintHeaders(resp)
	return p.PrintBody(resp)
}

func (p *Printer) PrintStatus(resp *http.Response) {
	fmt.Fprintln(p.writer, p.status.Sprint(resp.StatusLine()))
}

// PrintHeaders writes one line per header value followed by a blank line.
func (p *Printer) PrintHeaders(resp *http.Response) {
	for _, name := range resp.HeaderNames() {
		for _, value := range resp.Headers[name] {
			fmt.Fprintf(p.writer, "%s: %s\n", p.headerName.Sprint(name), value)
		}
	}
	fmt.Fprintln(p.writer)
}

// PrintBody pretty-prints application/json bodies and writes anything else unchanged.
// A body labeled JSON that does not parse is written raw with a warning.
func (p *Printer) PrintBody(resp *http.Response) error {
	if !resp.IsJSON() || len(bytes.TrimSpace(resp.Body)) == 0 {
		if p.filter != nil && len(resp.Body) > 0 {
			slog.Warn("response is not JSON, printing it unfiltered", "content_type", resp.ContentType())
		}
		return p.printRaw(resp.Body)
	}

	if !gjson.ValidBytes(resp.Body) {
		slog.Warn("response declared application/json but is not valid JSON, printing it raw")
		return p.printRaw(resp.Body)
	}

	docs := [][]byte{resp.Body}
	if p.filter != nil {
		filtered, err := p.filter.Apply(resp.Body)
		if err != nil {
			return fmt.Errorf("filtering response body: %w", err)
		}
		docs = filtered
	}

	for _, doc := range docs {
		formatted := bytes.TrimRight(pretty.PrettyOptions(doc, jsonLayout), "\n")
		if _, err := fmt.Fprintln(p.writer, p.jsonBody.Sprint(string(formatted))); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) printRaw(body []byte) error {
	if _, err := p.writer.Write(body); err != nil {
		return err
	}
	_, err := fmt.Fprintln(p.writer)
	return err
}

// PrintError writes "Error: <err>".
func (p *Printer) PrintError(err error) {
	fmt.Fprintf(p.writer, "%s %v\n", p.errLabel.Sprint("Error:"), err)
}
