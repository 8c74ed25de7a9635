// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"io"
	"log/slog"
	"math"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilGraph indicates that a nil core.Graph was passed to FindPath.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrInvalidID indicates a source, destination or neighbor outside [0, n).
	// Errors carrying it also match core.ErrInvalidID.
	ErrInvalidID = errors.New("dijkstra: node id out of range")

	// ErrNegativeWeight indicates a link whose length is negative, NaN or +Inf.
	// A NaN or infinite coordinate produces it, as do finite endpoints farther
	// apart than math.MaxFloat64.
	ErrNegativeWeight = errors.New("dijkstra: negative or non-finite edge weight encountered")

	// ErrInternal indicates the priority queue rejected an operation the
	// search relies on (duplicate insert, decrease of an absent node, a
	// neighbor id out of range). The search is aborted.
	ErrInternal = errors.New("dijkstra: search invariant violated")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadMaxEdgeLength indicates that MaxEdgeLength was set to zero or a negative value.
	ErrBadMaxEdgeLength = errors.New("dijkstra: MaxEdgeLength must be positive")
)

// NoPredecessor marks Prev entries of the source and of nodes never reached.
const NoPredecessor = -1

// Options configures a FindPath call.
//
//   - MaxDistance: nodes whose tentative distance would exceed this value are
//     not queued. Must be ≥ 0. Default +Inf (no cap).
//   - MaxEdgeLength: links with length ≥ this value are impassable.
//     Must be > 0. Default +Inf (every link usable).
//   - Logger: receives debug records for search start, finish and aborts.
//     Default discards everything.
type Options struct {
	MaxDistance   float64      // Maximum distance to explore
	MaxEdgeLength float64      // Length threshold above which links are non-traversable
	Logger        *slog.Logger // Debug tracing sink
}

// Option represents a functional option for configuring FindPath.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Must pass a non-negative value; invalid values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithMaxEdgeLength treats links of length ≥ threshold as missing.
// Must pass a positive value; invalid values panic with ErrBadMaxEdgeLength.
func WithMaxEdgeLength(threshold float64) Option {
	if threshold <= 0 || math.IsNaN(threshold) {
		panic(ErrBadMaxEdgeLength.Error())
	}

	return func(o *Options) {
		o.MaxEdgeLength = threshold
	}
}

// WithLogger routes debug tracing to l. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - MaxDistance:   +Inf.
//   - MaxEdgeLength: +Inf.
//   - Logger:        text handler writing to io.Discard.
func DefaultOptions() Options {
	return Options{
		MaxDistance:   math.Inf(1),
		MaxEdgeLength: math.Inf(1),
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
