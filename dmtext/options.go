// SPDX-License-Identifier: MIT

// Package dmtext: functional configuration shared by reader and writer.
// Defaults are documented constants; WithX constructors panic only on
// nonsensical values (programmer error), never on runtime input.

package dmtext

// DefaultDelimiter separates fields in the text format unless overridden.
const DefaultDelimiter = "\t"

// commentPrefix marks pre-header comment lines in the input.
const commentPrefix = "#"

// Option mutates codec options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options carries the gathered codec configuration.
type options struct {
	delimiter string
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts []Option) options {
	o := options{delimiter: DefaultDelimiter}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithDelimiter sets the field delimiter for both reading and writing. Any
// non-empty single- or multi-character string is accepted; reader and writer
// must agree. Panics on an empty delimiter.
func WithDelimiter(delimiter string) Option {
	if delimiter == "" {
		panic("dmtext: WithDelimiter: delimiter must be non-empty")
	}

	return func(o *options) { o.delimiter = delimiter }
}
