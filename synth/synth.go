// Package synth generates reproducible synthetic frames for tests and
// benchmarks.
package synth

import (
	"fmt"
	"math/rand/v2"

	"github.com/bjaus/tabfmt"
)

// DefaultSeed is used when no seed is given.
const DefaultSeed uint64 = 42

type config struct {
	seed uint64
}

// Option customizes [MixedFrame].
type Option func(*config)

// WithSeed sets the random seed. Equal seeds yield equal frames.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.seed = seed }
}

// MixedFrame builds a frame of rows x cols cells whose column kinds cycle
// string, int, bool. Column i is named "Column_<i+1>"; string cells read
// "string_<row>_<col>", ints fall in [0, 1000).
func MixedFrame(rows, cols int, opts ...Option) (*tabfmt.Frame, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: negative frame size %dx%d", tabfmt.ErrInvalidArgument, rows, cols)
	}
	cfg := config{seed: DefaultSeed}
	for _, opt := range opts {
		opt(&cfg)
	}
	rng := rand.New(rand.NewPCG(cfg.seed, cfg.seed))

	columns := make([]tabfmt.Column, cols)
	for i := range cols {
		col := tabfmt.Column{Name: fmt.Sprintf("Column_%d", i+1), Values: make([]any, rows)}
		switch i % 3 {
		case 0:
			col.Kind = tabfmt.KindString
			for j := range rows {
				col.Values[j] = fmt.Sprintf("string_%d_%d", j, i)
			}
		case 1:
			col.Kind = tabfmt.KindInt
			for j := range rows {
				col.Values[j] = rng.Int64N(1000)
			}
		default:
			col.Kind = tabfmt.KindBool
			for j := range rows {
				col.Values[j] = rng.IntN(2) == 0
			}
		}
		columns[i] = col
	}
	return tabfmt.NewFrame(columns...)
}
