// Package config defines the format-agnostic scenario model and the loader
// and decoder interfaces that concrete configuration formats implement. The
// rest of the application depends on this package, never on a parser.
package config
