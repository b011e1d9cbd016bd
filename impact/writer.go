package impact

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
)

const (
	// size of the buffer for writing to file
	maxBufferSize = 1024 * 1024

	notAvailable = "NA"
)

type writer struct {
	buf *bytes.Buffer
}

func newWriter() *writer {
	return &writer{
		buf: bytes.NewBuffer(make([]byte, 0, 4096)),
	}
}

func (w *writer) writeHeader() {
	w.buf.WriteString("original_codon\tmutated_codon\toriginal_aa\tmutated_aa\ttype")
	for _, name := range PropertyNames {
		w.buf.WriteByte('\t')
		w.buf.WriteString(string(name))
	}
	w.buf.WriteByte('\n')
}

// a row looks like
//
//	GAG	GTG	E	V	Missense Mutation	7.70	1.00	-6.40	-30.00
func (w *writer) writeAnalysis(a Analysis) {

	w.buf.WriteString(a.OriginalCodon)
	w.buf.WriteByte('\t')
	w.buf.WriteString(a.MutatedCodon)
	w.buf.WriteByte('\t')
	w.buf.WriteByte(a.Original)
	w.buf.WriteByte('\t')
	w.buf.WriteByte(a.Mutated)
	w.buf.WriteByte('\t')
	w.buf.WriteString(a.Type.String())

	for _, name := range PropertyNames {
		w.buf.WriteByte('\t')
		v, ok := a.Delta[name]
		if !ok {
			w.buf.WriteString(notAvailable)
			continue
		}
		w.buf.Write(strconv.AppendFloat(w.buf.AvailableBuffer(), v, 'f', 2, 64))
	}
	w.buf.WriteByte('\n')
}

func (w *writer) flush(ctx context.Context, out io.Writer, cancel context.CancelFunc, errs chan<- error) {

	defer w.buf.Reset()

	// something already failed, don't write a partial result
	if ctx.Err() != nil {
		return
	}

	_, err := out.Write(w.buf.Bytes())
	if err != nil {
		fail(fmt.Errorf("fail to write to output file: %v", err), cancel, errs)
	}
}
