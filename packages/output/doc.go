// Package output renders the request summary and the response to a terminal.
//
// A Printer writes, in order:
//   - The status line ("HTTP/1.1 200 OK")
//   - Every header value as "Name: value", then a blank line
//   - The body, pretty-printed when the media type is application/json
//
// Colors are decided once per Printer from a ColorMode and the writer it
// prints to; the package never touches color.NoColor.
package output
