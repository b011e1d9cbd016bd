package impact

// Properties are the static biochemical attributes of an AA.
//
// Hydrophobicity follows the Kyte-Doolittle scale, polarity the
// Grantham scale, and Weight is the molecular weight in g/mol.
type Properties struct {
	Hydrophobicity float64
	Charge         int
	Polarity       float64
	Weight         float64
}

// stop codons map to an all-zero record
var aaProperties = map[byte]Properties{
	'A': {Hydrophobicity: 1.8, Charge: 0, Polarity: 8.1, Weight: 89.1},
	'R': {Hydrophobicity: -4.5, Charge: 1, Polarity: 10.5, Weight: 174.2},
	'N': {Hydrophobicity: -3.5, Charge: 0, Polarity: 11.6, Weight: 132.1},
	'D': {Hydrophobicity: -3.5, Charge: -1, Polarity: 13.0, Weight: 133.1},
	'C': {Hydrophobicity: 2.5, Charge: 0, Polarity: 5.5, Weight: 121.2},
	'Q': {Hydrophobicity: -3.5, Charge: 0, Polarity: 10.5, Weight: 146.2},
	'E': {Hydrophobicity: -3.5, Charge: -1, Polarity: 12.3, Weight: 147.1},
	'G': {Hydrophobicity: -0.4, Charge: 0, Polarity: 9.0, Weight: 75.1},
	'H': {Hydrophobicity: -3.2, Charge: 0, Polarity: 10.4, Weight: 155.2},
	'I': {Hydrophobicity: 4.5, Charge: 0, Polarity: 5.2, Weight: 131.2},
	'L': {Hydrophobicity: 3.8, Charge: 0, Polarity: 4.9, Weight: 131.2},
	'K': {Hydrophobicity: -3.9, Charge: 1, Polarity: 11.3, Weight: 146.2},
	'M': {Hydrophobicity: 1.9, Charge: 0, Polarity: 5.7, Weight: 149.2},
	'F': {Hydrophobicity: 2.8, Charge: 0, Polarity: 5.2, Weight: 165.2},
	'P': {Hydrophobicity: -1.6, Charge: 0, Polarity: 8.0, Weight: 115.1},
	'S': {Hydrophobicity: -0.8, Charge: 0, Polarity: 9.2, Weight: 105.1},
	'T': {Hydrophobicity: -0.7, Charge: 0, Polarity: 8.6, Weight: 119.1},
	'W': {Hydrophobicity: -0.9, Charge: 0, Polarity: 5.4, Weight: 204.2},
	'Y': {Hydrophobicity: -1.3, Charge: 0, Polarity: 6.2, Weight: 181.2},
	'V': {Hydrophobicity: 4.2, Charge: 0, Polarity: 5.9, Weight: 117.1},
	'*': {},
}

// Lookup returns the properties of aa, and false if aa
// has no entry
func Lookup(aa byte) (Properties, bool) {
	p, ok := aaProperties[aa]
	return p, ok
}

func (p Properties) value(name Property) float64 {
	switch name {
	case Hydrophobicity:
		return p.Hydrophobicity
	case Charge:
		return float64(p.Charge)
	case Polarity:
		return p.Polarity
	case Weight:
		return p.Weight
	}
	return 0
}
