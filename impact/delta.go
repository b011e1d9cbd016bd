package impact

import "math"

// Property is the name of a biochemical attribute
type Property string

const (
	Hydrophobicity Property = "hydrophobicity"
	Charge         Property = "charge"
	Polarity       Property = "polarity"
	Weight         Property = "weight"
)

// PropertyNames lists the attributes in display order
var PropertyNames = [4]Property{Hydrophobicity, Charge, Polarity, Weight}

// Delta maps each attribute to its mutated - original difference
type Delta map[Property]float64

// ComputeDelta returns the difference of each attribute between
// mutated and original, rounded to two decimals, half away from
// zero.
//
// The returned Delta is empty if either AA has no properties, which
// is the case for the unknown AA 'X'.
func ComputeDelta(original, mutated byte) Delta {

	d := Delta{}

	orig, ok := Lookup(original)
	if !ok {
		return d
	}
	mut, ok := Lookup(mutated)
	if !ok {
		return d
	}

	for _, name := range PropertyNames {
		d[name] = round2(mut.value(name) - orig.value(name))
	}
	return d
}

func round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		// avoid negative zero
		return 0
	}
	return r
}
