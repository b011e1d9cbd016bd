// Package ncbicode stores codon <-> AA
// translation for the NCBI genetic codes.
//
// Relevant documentation:
//
//	https://www.ncbi.nlm.nih.gov/Taxonomy/Utils/wprintgc.cgi?chapter=tgencodes#SG1
package ncbicode

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// Stop is the symbol of a stop codon
	Stop = '*'
	// Unknown is returned for any codon absent from a code
	Unknown = 'X'
)

const (
	Standard                                                    = 0
	VertebrateMitochondrial                                     = 2
	YeastMitochondrial                                          = 3
	MoldProtozoanCoelenterateMitochondrialMycoplasmaSpiroplasma = 4
	InvertebrateMitochondrial                                   = 5
	CiliateDasycladaceanHexamita                                = 6
	EchinodermFlatwormMitochondrial                             = 9
	Euplotid                                                    = 10
	BacterialArchaealPlantPlastid                               = 11
	AlternativeYeast                                            = 12
	AscidianMitochondrial                                       = 13
	AlternativeFlatwormMitochondrial                            = 14
	ChlorophyceanMitochondrial                                  = 16
	TrematodeMitochondrial                                      = 21
	ScenedesmusObliquusMitochondrial                            = 22
	ThraustochytriumMitochondrial                               = 23
	PterobranchiaMitochondrial                                  = 24
	CandidateDivisionSR1Gracilibacteria                         = 25
	PachysolenTannophilus                                       = 26
	Mesodinium                                                  = 29
	Peritrich                                                   = 30
)

var standard = map[string]byte{
	"ATA": 'I', "ATC": 'I', "ATT": 'I', "ATG": 'M',
	"ACA": 'T', "ACC": 'T', "ACG": 'T', "ACT": 'T',
	"AAC": 'N', "AAT": 'N', "AAA": 'K', "AAG": 'K',
	"AGC": 'S', "AGT": 'S', "AGA": 'R', "AGG": 'R',
	"CTA": 'L', "CTC": 'L', "CTG": 'L', "CTT": 'L',
	"CCA": 'P', "CCC": 'P', "CCG": 'P', "CCT": 'P',
	"CAC": 'H', "CAT": 'H', "CAA": 'Q', "CAG": 'Q',
	"CGA": 'R', "CGC": 'R', "CGG": 'R', "CGT": 'R',
	"GTA": 'V', "GTC": 'V', "GTG": 'V', "GTT": 'V',
	"GCA": 'A', "GCC": 'A', "GCG": 'A', "GCT": 'A',
	"GAC": 'D', "GAT": 'D', "GAA": 'E', "GAG": 'E',
	"GGA": 'G', "GGC": 'G', "GGG": 'G', "GGT": 'G',
	"TCA": 'S', "TCC": 'S', "TCG": 'S', "TCT": 'S',
	"TTC": 'F', "TTT": 'F', "TTA": 'L', "TTG": 'L',
	"TAC": 'Y', "TAT": 'Y', "TAA": Stop, "TAG": Stop,
	"TGC": 'C', "TGT": 'C', "TGA": Stop, "TGG": 'W',
}

// each alternative code is described by the codons
// it reassigns relative to the standard code
var variants = map[int]struct {
	name string
	diff map[string]byte
}{
	VertebrateMitochondrial: {"The Vertebrate Mitochondrial Code",
		map[string]byte{"AGA": Stop, "AGG": Stop, "ATA": 'M', "TGA": 'W'}},
	YeastMitochondrial: {"The Yeast Mitochondrial Code",
		map[string]byte{"ATA": 'M', "CTT": 'T', "CTC": 'T', "CTA": 'T', "CTG": 'T', "TGA": 'W'}},
	MoldProtozoanCoelenterateMitochondrialMycoplasmaSpiroplasma: {"The Mold, Protozoan, and Coelenterate Mitochondrial Code and the Mycoplasma/Spiroplasma Code",
		map[string]byte{"TGA": 'W'}},
	InvertebrateMitochondrial: {"The Invertebrate Mitochondrial Code",
		map[string]byte{"AGA": 'S', "AGG": 'S', "ATA": 'M', "TGA": 'W'}},
	CiliateDasycladaceanHexamita: {"The Ciliate, Dasycladacean and Hexamita Nuclear Code",
		map[string]byte{"TAA": 'Q', "TAG": 'Q'}},
	EchinodermFlatwormMitochondrial: {"The Echinoderm and Flatworm Mitochondrial Code",
		map[string]byte{"AAA": 'N', "AGA": 'S', "AGG": 'S', "TGA": 'W'}},
	Euplotid: {"The Euplotid Nuclear Code",
		map[string]byte{"TGA": 'C'}},
	// same codon assignments as the standard code, only start codons differ
	BacterialArchaealPlantPlastid: {"The Bacterial, Archaeal and Plant Plastid Code",
		map[string]byte{}},
	AlternativeYeast: {"The Alternative Yeast Nuclear Code",
		map[string]byte{"CTG": 'S'}},
	AscidianMitochondrial: {"The Ascidian Mitochondrial Code",
		map[string]byte{"AGA": 'G', "AGG": 'G', "ATA": 'M', "TGA": 'W'}},
	AlternativeFlatwormMitochondrial: {"The Alternative Flatworm Mitochondrial Code",
		map[string]byte{"AAA": 'N', "AGA": 'S', "AGG": 'S', "TAA": 'Y', "TGA": 'W'}},
	ChlorophyceanMitochondrial: {"Chlorophycean Mitochondrial Code",
		map[string]byte{"TAG": 'L'}},
	TrematodeMitochondrial: {"Trematode Mitochondrial Code",
		map[string]byte{"TGA": 'W', "ATA": 'M', "AGA": 'S', "AGG": 'S', "AAA": 'N'}},
	ScenedesmusObliquusMitochondrial: {"Scenedesmus obliquus Mitochondrial Code",
		map[string]byte{"TCA": Stop, "TAG": 'L'}},
	ThraustochytriumMitochondrial: {"Thraustochytrium Mitochondrial Code",
		map[string]byte{"TTA": Stop}},
	PterobranchiaMitochondrial: {"Pterobranchia Mitochondrial Code",
		map[string]byte{"AGA": 'S', "AGG": 'K', "TGA": 'W'}},
	CandidateDivisionSR1Gracilibacteria: {"Candidate Division SR1 and Gracilibacteria Code",
		map[string]byte{"TGA": 'G'}},
	PachysolenTannophilus: {"Pachysolen tannophilus Nuclear Code",
		map[string]byte{"CTG": 'A'}},
	Mesodinium: {"Mesodinium Nuclear Code",
		map[string]byte{"TAA": 'Y', "TAG": 'Y'}},
	Peritrich: {"Peritrich Nuclear Code",
		map[string]byte{"TAA": 'E', "TAG": 'E'}},
}

// Code is an immutable codon -> AA table
type Code struct {
	id     int
	name   string
	codons map[string]byte
}

var (
	standardCode = &Code{id: Standard, name: "Standard Code", codons: standard}
	loaded       = map[int]*Code{Standard: standardCode}
)

func init() {
	for id, v := range variants {
		codons := make(map[string]byte, len(standard))
		for codon, aaCode := range standard {
			codons[codon] = aaCode
		}
		for codon, aaCode := range v.diff {
			codons[codon] = aaCode
		}
		loaded[id] = &Code{id: id, name: v.name, codons: codons}
	}
}

// Default returns the standard genetic code
func Default() *Code {
	return standardCode
}

// Load returns the code with the given NCBI identifier
func Load(id int) (*Code, error) {
	c, ok := loaded[id]
	if !ok {
		return nil, fmt.Errorf("invalid table code: %v", id)
	}
	return c, nil
}

// IDs returns the identifiers of all available codes, in increasing order
func IDs() []int {
	ids := make([]int, 0, len(loaded))
	for id := range loaded {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// ID returns the NCBI identifier of the code
func (c *Code) ID() int { return c.id }

// Name returns the NCBI name of the code
func (c *Code) Name() string { return c.name }

// Translate returns the AA encoded by codon. The lookup is
// case-insensitive; a codon that is not in the table, whatever
// its length or alphabet, translates to Unknown.
func (c *Code) Translate(codon string) byte {
	aaCode, ok := c.codons[strings.ToUpper(codon)]
	if !ok {
		return Unknown
	}
	return aaCode
}

// Codons returns a copy of the table
func (c *Code) Codons() map[string]byte {
	codons := make(map[string]byte, len(c.codons))
	for codon, aaCode := range c.codons {
		codons[codon] = aaCode
	}
	return codons
}

// Translate translates codon with the standard code
func Translate(codon string) byte {
	return standardCode.Translate(codon)
}
