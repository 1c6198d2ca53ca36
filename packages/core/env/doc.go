// Package env resolves {{$NAME}} references in header and credential values.
//
// Names are looked up in variables loaded from a .env file first and then in
// the process environment, so secrets can stay out of config files.
package env
