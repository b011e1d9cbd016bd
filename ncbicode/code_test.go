package ncbicode_test

import (
	"strings"
	"testing"

	"github.com/feliixx/gomutimpact/ncbicode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// one line per AA, as listed in the NCBI standard table
var standardByAA = map[byte][]string{
	'F': {"TTT", "TTC"},
	'L': {"TTA", "TTG", "CTT", "CTC", "CTA", "CTG"},
	'I': {"ATT", "ATC", "ATA"},
	'M': {"ATG"},
	'V': {"GTT", "GTC", "GTA", "GTG"},
	'S': {"TCT", "TCC", "TCA", "TCG", "AGT", "AGC"},
	'P': {"CCT", "CCC", "CCA", "CCG"},
	'T': {"ACT", "ACC", "ACA", "ACG"},
	'A': {"GCT", "GCC", "GCA", "GCG"},
	'Y': {"TAT", "TAC"},
	'H': {"CAT", "CAC"},
	'Q': {"CAA", "CAG"},
	'N': {"AAT", "AAC"},
	'K': {"AAA", "AAG"},
	'D': {"GAT", "GAC"},
	'E': {"GAA", "GAG"},
	'C': {"TGT", "TGC"},
	'W': {"TGG"},
	'R': {"CGT", "CGC", "CGA", "CGG", "AGA", "AGG"},
	'G': {"GGT", "GGC", "GGA", "GGG"},
	'*': {"TAA", "TAG", "TGA"},
}

func TestStandardCode(t *testing.T) {

	total := 0
	for aa, codons := range standardByAA {
		for _, codon := range codons {
			assert.Equalf(t, aa, ncbicode.Translate(codon), "codon %s", codon)
			assert.Equalf(t, aa, ncbicode.Translate(strings.ToLower(codon)), "codon %s", strings.ToLower(codon))
			total++
		}
	}
	assert.Equal(t, 64, total)
	assert.Len(t, ncbicode.Default().Codons(), 64)
}

func TestEveryCodonHasAnEntry(t *testing.T) {

	const nucl = "ACGT"
	codons := ncbicode.Default().Codons()
	for _, n1 := range nucl {
		for _, n2 := range nucl {
			for _, n3 := range nucl {
				codon := string([]rune{n1, n2, n3})
				_, ok := codons[codon]
				assert.Truef(t, ok, "missing codon %s", codon)
			}
		}
	}
}

func TestTranslateUnknown(t *testing.T) {

	for _, codon := range []string{"ZZZ", "", "GA", "GAGA", "NNN", "GAU", "G-G", " GAG"} {
		assert.Equalf(t, byte(ncbicode.Unknown), ncbicode.Translate(codon), "codon %q", codon)
	}
}

func TestTranslateMixedCase(t *testing.T) {

	assert.Equal(t, byte('E'), ncbicode.Translate("gag"))
	assert.Equal(t, byte('E'), ncbicode.Translate("GaG"))
	assert.Equal(t, ncbicode.Translate("GAG"), ncbicode.Translate("gag"))
}

func TestLoad(t *testing.T) {

	tests := []struct {
		id    int
		codon string
		aa    byte
	}{
		{ncbicode.Standard, "TGA", '*'},
		{ncbicode.VertebrateMitochondrial, "TGA", 'W'},
		{ncbicode.VertebrateMitochondrial, "AGA", '*'},
		{ncbicode.YeastMitochondrial, "CTG", 'T'},
		{ncbicode.CiliateDasycladaceanHexamita, "TAA", 'Q'},
		{ncbicode.Euplotid, "TGA", 'C'},
		{ncbicode.BacterialArchaealPlantPlastid, "TGA", '*'},
		{ncbicode.AlternativeYeast, "CTG", 'S'},
		{ncbicode.ScenedesmusObliquusMitochondrial, "TCA", '*'},
		{ncbicode.ThraustochytriumMitochondrial, "TTA", '*'},
		{ncbicode.PterobranchiaMitochondrial, "AGG", 'K'},
		{ncbicode.Peritrich, "TAG", 'E'},
	}

	for _, tt := range tests {
		code, err := ncbicode.Load(tt.id)
		require.NoError(t, err)
		assert.Equal(t, tt.id, code.ID())
		assert.Equalf(t, tt.aa, code.Translate(tt.codon), "table %d codon %s", tt.id, tt.codon)
	}
}

func TestLoadAllCodesAreComplete(t *testing.T) {

	ids := ncbicode.IDs()
	assert.Len(t, ids, 21)
	assert.Equal(t, ncbicode.Standard, ids[0])

	for _, id := range ids {
		code, err := ncbicode.Load(id)
		require.NoError(t, err)
		assert.NotEmpty(t, code.Name())
		assert.Lenf(t, code.Codons(), 64, "table %d", id)
	}
}

func TestLoadInvalidCode(t *testing.T) {

	code, err := ncbicode.Load(7)
	assert.Nil(t, code)
	assert.EqualError(t, err, "invalid table code: 7")
}

func TestCodonsReturnsCopy(t *testing.T) {

	codons := ncbicode.Default().Codons()
	codons["GAG"] = 'V'
	delete(codons, "TAA")

	assert.Equal(t, byte('E'), ncbicode.Translate("GAG"))
	assert.Equal(t, byte('*'), ncbicode.Translate("TAA"))
}

var codons = [8]string{"GAG", "gtg", "TAA", "ZZZ", "ATG", "tgg", "GA", "CGT"}

func BenchmarkTranslate(b *testing.B) {
	index := 0
	unknown := 0
	for n := 0; n < b.N; n++ {
		if ncbicode.Translate(codons[index]) == ncbicode.Unknown {
			unknown++
		}
		index++
		if index == len(codons) {
			index = 0
		}
	}
}
