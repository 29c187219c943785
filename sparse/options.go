// SPDX-License-Identifier: MIT

// Package sparse: functional options for loading and multiplication.
//
// Design goals:
//   - No global state: every call resolves its own Options via gatherOptions.
//   - Safe by construction: WithX panics only on nonsensical values (programmer error).
//   - No dead switches: each option changes observable behavior and is covered by tests.
package sparse

import "go.uber.org/zap"

// DefaultHeaderOffset is added to the declared rows=/cols= header values on load.
// The on-disk format stores the maximum index, not the count.
const DefaultHeaderOffset = 1

const (
	panicNilLogger = "sparse: WithLogger: logger must not be nil"
	panicOffset    = "sparse: WithHeaderOffset: offset must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly; last writer wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	logger       *zap.Logger // DefaultLogger: zap.NewNop()
	headerOffset int         // DefaultHeaderOffset
}

// WithLogger routes diagnostics (load dimensions, multiply shape recovery)
// to l. Panics when l is nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithHeaderOffset overrides the value added to header dimensions on load.
// Offset 0 reads headers as plain counts, which makes Write/Read symmetric.
// Panics on negative offsets.
func WithHeaderOffset(offset int) Option {
	if offset < 0 {
		panic(panicOffset)
	}

	return func(o *Options) { o.headerOffset = offset }
}

func defaultOptions() Options {
	return Options{
		logger:       zap.NewNop(),
		headerOffset: DefaultHeaderOffset,
	}
}

// gatherOptions applies opts over the defaults in order.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
