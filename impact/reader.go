package impact

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

type codonPair struct {
	index    int
	original string
	mutated  string
}

// batch format is one mutation per line:
//
//	# original mutated
//	GAG GTG
//	TAT	TAA   # tab separated works too
//
// blank lines and everything after a '#' are ignored
func readCodonPairs(ctx context.Context, in io.Reader, pairs chan<- codonPair, cancel context.CancelFunc, errs chan<- error) {

	defer close(pairs)

	scanner := bufio.NewScanner(in)
	lineNum, index := 0, 0

Loop:
	for scanner.Scan() {

		lineNum++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i != -1 {
			line = line[:i]
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			fail(fmt.Errorf("line %d: expected 2 codons, got %d", lineNum, len(fields)), cancel, errs)
			return
		}

		select {
		case pairs <- codonPair{index: index, original: fields[0], mutated: fields[1]}:
		case <-ctx.Done():
			break Loop
		}
		index++
	}

	if err := scanner.Err(); err != nil {
		fail(fmt.Errorf("fail to read codon pairs: %v", err), cancel, errs)
	}
}
