// Package solver defines options and error definitions for the Sokoban
// satisfiability search.
package solver

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for solver construction.
var (
	// ErrNoPlayer is returned when the level contains no player cell.
	ErrNoPlayer = errors.New("solver: level has no player")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")
)

// Option configures solver behavior via functional arguments. Invalid
// options are recorded internally and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds tunable parameters for the search.
type Options struct {
	// CostLimit, if > 0, prunes branches whose accumulated cost plus the
	// heuristic lower bound exceeds it. A value of 0 disables the bound.
	CostLimit int

	// Logger receives search diagnostics at debug level.
	Logger *logrus.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no cost bound and the standard logger.
func DefaultOptions() Options {
	return Options{
		CostLimit: 0,
		Logger:    logrus.StandardLogger(),
		err:       nil,
	}
}

// WithCostLimit bounds the search cost:
//
//	c > 0:  prune branches once cost + heuristic exceeds c
//	c == 0: explicit no bound
//	c < 0:  invalid option → ErrOptionViolation
func WithCostLimit(c int) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: CostLimit cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.CostLimit = c
	}
}

// WithLogger sets a custom diagnostics logger.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
