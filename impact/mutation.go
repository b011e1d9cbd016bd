package impact

import (
	"github.com/feliixx/gomutimpact/ncbicode"
)

// Type is the category of a single codon mutation
type Type int

const (
	// Silent: both codons encode the same AA
	Silent Type = iota
	// Nonsense: the mutated codon is a stop codon and the protein is truncated
	Nonsense
	// Missense: the mutated codon encodes another, non-stop AA
	Missense
)

func (t Type) String() string {
	switch t {
	case Silent:
		return "Silent Mutation"
	case Nonsense:
		return "Nonsense Mutation (Truncation)"
	case Missense:
		return "Missense Mutation"
	}
	return "Unknown Mutation"
}

// Result holds the AA encoded by the original and mutated
// codons, and the resulting category of the mutation
type Result struct {
	Original byte
	Mutated  byte
	Type     Type
}

// Analysis is the full outcome of a codon substitution
type Analysis struct {
	OriginalCodon string
	MutatedCodon  string
	Result
	Delta Delta
}

// Analyzer classifies mutations with a given genetic code
type Analyzer struct {
	code *ncbicode.Code
}

// NewAnalyzer returns an Analyzer using code. A nil code
// means the standard code.
func NewAnalyzer(code *ncbicode.Code) *Analyzer {
	if code == nil {
		code = ncbicode.Default()
	}
	return &Analyzer{code: code}
}

// Code returns the genetic code used by the analyzer
func (a *Analyzer) Code() *ncbicode.Code {
	return a.code
}

// Classify translates both codons and compares the resulting AA.
//
// Unknown codons translate to 'X' and are compared like any other
// symbol, so two unknown codons make a Silent mutation.
func (a *Analyzer) Classify(original, mutated string) Result {

	r := Result{
		Original: a.code.Translate(original),
		Mutated:  a.code.Translate(mutated),
	}

	switch {
	case r.Original == r.Mutated:
		r.Type = Silent
	case r.Mutated == ncbicode.Stop:
		r.Type = Nonsense
	default:
		r.Type = Missense
	}
	return r
}

// Analyze classifies the mutation and computes the property delta
// between the two AA
func (a *Analyzer) Analyze(original, mutated string) Analysis {
	r := a.Classify(original, mutated)
	return Analysis{
		OriginalCodon: original,
		MutatedCodon:  mutated,
		Result:        r,
		Delta:         ComputeDelta(r.Original, r.Mutated),
	}
}

var standardAnalyzer = NewAnalyzer(ncbicode.Default())

// Classify classifies a mutation with the standard code
func Classify(original, mutated string) Result {
	return standardAnalyzer.Classify(original, mutated)
}

// Analyze analyzes a mutation with the standard code
func Analyze(original, mutated string) Analysis {
	return standardAnalyzer.Analyze(original, mutated)
}
