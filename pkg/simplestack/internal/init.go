// Package internal contains the infrastructure for simplestack: logging and
// hardware input. Types and functions in this package are not part of the
// public API.
package internal
