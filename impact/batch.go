package impact

import (
	"context"
	"io"
	"sync"

	"github.com/feliixx/gomutimpact/ncbicode"
)

// Options struct to store analysis command line args
type Options struct {
	Table     int `short:"t" long:"table" value-name:"<code>" description:"NCBI genetic code to use, see https://www.ncbi.nlm.nih.gov/Taxonomy/Utils/wprintgc.cgi?chapter=tgencodes#SG1 for details. Available codes:\n 0: Standard code\n 2: The Vertebrate Mitochondrial Code\n 3: The Yeast Mitochondrial Code\n 4: The Mold, Protozoan, and Coelenterate Mitochondrial Code and the Mycoplasma/Spiroplasma Code\n 5: The Invertebrate Mitochondrial Code\n 6: The Ciliate, Dasycladacean and Hexamita Nuclear Code\n 9: The Echinoderm and Flatworm Mitochondrial Code\n 10: The Euplotid Nuclear Code\n 11: The Bacterial, Archaeal and Plant Plastid Code\n 12: The Alternative Yeast Nuclear Code\n 13: The Ascidian Mitochondrial Code\n 14: The Alternative Flatworm Mitochondrial Code\n 16: Chlorophycean Mitochondrial Code\n 21: Trematode Mitochondrial Code\n 22: Scenedesmus obliquus Mitochondrial Code\n 23: Thraustochytrium Mitochondrial Code\n 24: Pterobranchia Mitochondrial Code\n 25: Candidate Division SR1 and Gracilibacteria Code\n 26: Pachysolen tannophilus Nuclear Code\n 29: Mesodinium Nuclear Code\n 30: Peritrich Nuclear Code\n" default:"0"`
	NumWorker int `short:"n" long:"numcpu" value-name:"<n>" description:"Number of threads to use in batch mode, default is number of CPU"`
}

type indexedAnalysis struct {
	index    int
	analysis Analysis
}

// Batch reads codon pairs from in, analyzes each of them with the
// specified options and writes one TSV row per pair to out, in
// input order
func Batch(in io.Reader, out io.Writer, options Options) error {

	code, err := ncbicode.Load(options.Table)
	if err != nil {
		return err
	}
	analyzer := NewAnalyzer(code)

	numWorker := options.NumWorker
	if numWorker < 1 {
		numWorker = 1
	}

	pairs := make(chan codonPair, 100)
	analyses := make(chan indexedAnalysis, 100)
	errs := make(chan error, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(numWorker)

	for nWorker := 0; nWorker < numWorker; nWorker++ {

		go func() {

			defer wg.Done()

			for p := range pairs {

				select {
				case <-ctx.Done():
					return
				default:
				}

				analyses <- indexedAnalysis{
					index:    p.index,
					analysis: analyzer.Analyze(p.original, p.mutated),
				}
			}
		}()
	}

	written := make(chan struct{})
	go func() {

		defer close(written)

		w := newWriter()
		w.writeHeader()

		// workers finish out of order, so keep the analyses
		// until all the previous ones are written
		pending := map[int]Analysis{}
		next := 0

		for a := range analyses {
			pending[a.index] = a.analysis
			for {
				analysis, ok := pending[next]
				if !ok {
					break
				}
				w.writeAnalysis(analysis)
				delete(pending, next)
				next++
			}
			if w.buf.Len() > maxBufferSize {
				w.flush(ctx, out, cancel, errs)
			}
		}
		w.flush(ctx, out, cancel, errs)
	}()

	readCodonPairs(ctx, in, pairs, cancel, errs)

	wg.Wait()
	close(analyses)
	<-written

	select {
	case err, ok := <-errs:
		if ok {
			return err
		}
	default:
	}
	return nil
}

// report the first error only, and stop everything
func fail(err error, cancel context.CancelFunc, errs chan<- error) {
	select {
	case errs <- err:
	default:
	}
	cancel()
}
