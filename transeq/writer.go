package transeq

import (
	"bytes"
	"fmt"
	"io"

	"github.com/feliixx/gocodon/ncbicode"
)

const (
	// size of the buffer for writing to file
	maxBufferSize = 1024 * 1024 * 10

	// default line size for fasta sequences
	defaultLineSize = 60
)

type writer struct {
	buf   *bytes.Buffer
	style Style
	// max number of amino acids per line, 0 means no limit.
	// Only used for one letter codes
	lineSize       int
	currentLineLen int
}

func newWriter(style Style, lineSize int) *writer {
	return &writer{
		buf:      bytes.NewBuffer(make([]byte, 0, 4096)),
		style:    style,
		lineSize: lineSize,
	}
}

// header should look like
// >sequenceID comment
func (w *writer) writeHeader(header string) {
	if header == "" {
		return
	}
	w.buf.WriteByte('>')
	w.buf.WriteString(header)
	w.newLine()
}

func (w *writer) writeProtein(p Protein) {

	if w.style != StyleLetter || w.lineSize <= 0 {
		w.buf.WriteString(p.Render(w.style))
		w.newLine()
		return
	}

	for _, aa := range p {
		w.writeAA(aa)
	}
	if w.currentLineLen != 0 || len(p) == 0 {
		w.newLine()
	}
}

func (w *writer) writeAA(aa ncbicode.AminoAcid) {

	if w.currentLineLen == w.lineSize {
		w.newLine()
	}
	w.buf.WriteRune(aa.Letter())
	w.currentLineLen++
}

func (w *writer) newLine() {
	w.buf.WriteByte('\n')
	w.currentLineLen = 0
}

func (w *writer) flush(out io.Writer) error {
	defer w.buf.Reset()

	_, err := out.Write(w.buf.Bytes())
	if err != nil {
		return fmt.Errorf("fail to write to output file: %w", err)
	}
	return nil
}
