package impact_test

import (
	"testing"

	"github.com/feliixx/gomutimpact/impact"
	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-9

func TestComputeDelta(t *testing.T) {

	d := impact.ComputeDelta('E', 'V')

	assert.Len(t, d, 4)
	assert.InDelta(t, 7.7, d[impact.Hydrophobicity], epsilon)
	assert.InDelta(t, 1.0, d[impact.Charge], epsilon)
	assert.InDelta(t, -6.4, d[impact.Polarity], epsilon)
	assert.InDelta(t, -30.0, d[impact.Weight], epsilon)
}

func TestComputeDeltaToStop(t *testing.T) {

	d := impact.ComputeDelta('Y', '*')

	assert.InDelta(t, 1.3, d[impact.Hydrophobicity], epsilon)
	assert.InDelta(t, 0.0, d[impact.Charge], epsilon)
	assert.InDelta(t, -6.2, d[impact.Polarity], epsilon)
	assert.InDelta(t, -181.2, d[impact.Weight], epsilon)
}

func TestComputeDeltaSameAA(t *testing.T) {

	d := impact.ComputeDelta('K', 'K')

	assert.Len(t, d, 4)
	for _, name := range impact.PropertyNames {
		assert.Zero(t, d[name])
	}
}

func TestComputeDeltaIsAntisymmetric(t *testing.T) {

	forward := impact.ComputeDelta('R', 'W')
	backward := impact.ComputeDelta('W', 'R')

	for _, name := range impact.PropertyNames {
		assert.InDeltaf(t, -forward[name], backward[name], epsilon, "property %s", name)
	}
}

func TestComputeDeltaUnknownAA(t *testing.T) {

	for _, pair := range [][2]byte{{'X', 'V'}, {'E', 'X'}, {'X', 'X'}, {'U', 'E'}, {'e', 'v'}} {
		d := impact.ComputeDelta(pair[0], pair[1])
		assert.NotNilf(t, d, "%c -> %c", pair[0], pair[1])
		assert.Emptyf(t, d, "%c -> %c", pair[0], pair[1])
	}
}

func TestComputeDeltaRounding(t *testing.T) {

	// 131.2 - 89.1 is not exactly representable
	d := impact.ComputeDelta('A', 'L')
	assert.Equal(t, 42.1, d[impact.Weight])
	assert.Equal(t, 2.0, d[impact.Hydrophobicity])
}

func TestLookup(t *testing.T) {

	p, ok := impact.Lookup('E')
	assert.True(t, ok)
	assert.Equal(t, impact.Properties{Hydrophobicity: -3.5, Charge: -1, Polarity: 12.3, Weight: 147.1}, p)

	p, ok = impact.Lookup('*')
	assert.True(t, ok)
	assert.Equal(t, impact.Properties{}, p)

	_, ok = impact.Lookup('X')
	assert.False(t, ok)
}

func TestLookupCoversStandardAA(t *testing.T) {

	for _, aa := range []byte("ACDEFGHIKLMNPQRSTVWY*") {
		_, ok := impact.Lookup(aa)
		assert.Truef(t, ok, "missing properties for %c", aa)
	}
}
