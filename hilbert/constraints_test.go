package hilbert_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lowtopo/hilbert"
)

// TestParseConstraints decodes the documented YAML shape.
func TestParseConstraints(t *testing.T) {
	doc := []byte(`
constraints:
  - [0, 1, 2]
  - [3, 4]
`)
	c, err := hilbert.ParseConstraints(doc)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	require.Equal(t, [][]int{{0, 1, 2}, {3, 4}}, c.Groups())
}

// TestParseConstraintsRejectsNegatives propagates validation through
// the YAML path.
func TestParseConstraintsRejectsNegatives(t *testing.T) {
	doc := []byte("constraints:\n  - [0, -2]\n")
	_, err := hilbert.ParseConstraints(doc)
	require.ErrorIs(t, err, hilbert.ErrBadConstraint)
}

// TestConstraintsRoundTrip marshals and re-parses a family.
func TestConstraintsRoundTrip(t *testing.T) {
	c, err := hilbert.NewConstraints([]int{1, 2}, []int{4})
	require.NoError(t, err)

	data, err := yaml.Marshal(c)
	require.NoError(t, err)

	back, err := hilbert.ParseConstraints(data)
	require.NoError(t, err)
	require.Equal(t, c.Groups(), back.Groups())
}

// TestGroupsAreCopies guards the immutability contract.
func TestGroupsAreCopies(t *testing.T) {
	src := []int{1, 2}
	c, err := hilbert.NewConstraints(src)
	require.NoError(t, err)
	src[0] = 9
	require.Equal(t, [][]int{{1, 2}}, c.Groups())

	g := c.Groups()
	g[0][0] = 7
	require.Equal(t, [][]int{{1, 2}}, c.Groups())
}

// TestNoneIsEmpty pins the empty family.
func TestNoneIsEmpty(t *testing.T) {
	require.Equal(t, 0, hilbert.None().Len())
	require.Empty(t, hilbert.None().Groups())
}
