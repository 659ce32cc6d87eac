// Package hilbert: sentinel errors, functional options and the validity
// constraint family.

package hilbert

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lowtopo/bitmask"
	"github.com/katalvlaran/lowtopo/progress"
)

var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("hilbert: invalid option supplied")

	// ErrBadConstraint is returned when a validity constraint names a
	// coordinate outside the ambient dimension.
	ErrBadConstraint = errors.New("hilbert: constraint coordinate out of range")

	// ErrCancelled is returned when the progress tracker requests
	// cancellation; no basis vectors are emitted in that case.
	ErrCancelled = errors.New("hilbert: enumeration cancelled")

	// ErrNilInput is returned for a nil subspace or action.
	ErrNilInput = errors.New("hilbert: nil subspace or action")
)

// Option configures Enumerate via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the enumeration parameters.
type Options struct {
	// InitialRows are processed in caller order before the positivity
	// heuristic kicks in for the rest.
	InitialRows int

	// Tracker receives per-hyperplane progress and may cancel the run.
	Tracker progress.Tracker

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the baseline configuration: no pinned initial
// rows and no tracker.
func DefaultOptions() Options {
	return Options{}
}

// WithInitialRows pins the first k subspace rows to be processed in the
// order given by the caller. Negative k is an option violation.
func WithInitialRows(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: InitialRows cannot be negative (%d)",
				ErrOptionViolation, k)
			return
		}
		o.InitialRows = k
	}
}

// WithTracker attaches a progress tracker.
func WithTracker(t progress.Tracker) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracker = t
		}
	}
}

// ValidityConstraints is an immutable family of "at most one of these
// coordinates may be non-zero" groups. The zero value (and None) means
// no constraints.
type ValidityConstraints struct {
	groups [][]int
}

// None returns the empty constraint family.
func None() *ValidityConstraints { return &ValidityConstraints{} }

// NewConstraints builds a family from coordinate groups. Coordinates
// must be non-negative; range checking against the ambient dimension
// happens at enumeration time.
func NewConstraints(groups ...[]int) (*ValidityConstraints, error) {
	out := &ValidityConstraints{groups: make([][]int, 0, len(groups))}
	for _, g := range groups {
		for _, idx := range g {
			if idx < 0 {
				return nil, fmt.Errorf("%w: %d", ErrBadConstraint, idx)
			}
		}
		cp := make([]int, len(g))
		copy(cp, g)
		out.groups = append(out.groups, cp)
	}
	return out, nil
}

// Len returns the number of constraint groups.
func (c *ValidityConstraints) Len() int {
	if c == nil {
		return 0
	}
	return len(c.groups)
}

// Groups returns a deep copy of the coordinate groups.
func (c *ValidityConstraints) Groups() [][]int {
	if c == nil {
		return nil
	}
	out := make([][]int, len(c.groups))
	for i, g := range c.groups {
		out[i] = append([]int(nil), g...)
	}
	return out
}

// constraintMasks materialises the family as bitmasks of the chosen
// flavour for an ambient dimension, rejecting out-of-range coordinates.
func constraintMasks[M bitmask.Mask[M]](c *ValidityConstraints, zero M, dim int) ([]M, error) {
	if c == nil || len(c.groups) == 0 {
		return nil, nil
	}
	out := make([]M, 0, len(c.groups))
	for _, g := range c.groups {
		mask := zero
		for _, idx := range g {
			if idx >= dim {
				return nil, fmt.Errorf("%w: %d in dimension %d",
					ErrBadConstraint, idx, dim)
			}
			mask = mask.Set(idx, true)
		}
		out = append(out, mask)
	}
	return out, nil
}

// constraintsYAML is the on-disk shape of a constraint family.
type constraintsYAML struct {
	Constraints [][]int `yaml:"constraints"`
}

// UnmarshalYAML decodes a document of the form
//
//	constraints:
//	  - [0, 1, 2]
//	  - [3, 4]
func (c *ValidityConstraints) UnmarshalYAML(value *yaml.Node) error {
	var raw constraintsYAML
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := NewConstraints(raw.Constraints...)
	if err != nil {
		return err
	}
	c.groups = parsed.groups
	return nil
}

// MarshalYAML encodes the family in the same shape UnmarshalYAML reads.
func (c *ValidityConstraints) MarshalYAML() (interface{}, error) {
	return constraintsYAML{Constraints: c.Groups()}, nil
}

// ParseConstraints decodes a YAML document describing a constraint
// family.
func ParseConstraints(data []byte) (*ValidityConstraints, error) {
	var c ValidityConstraints
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}
