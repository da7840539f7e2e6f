package transeq

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"
)

// a fasta record, as read from the input
type record struct {
	// position of the record in the input, starting at 0
	index int
	// header line without the leading '>'
	header   string
	sequence string
}

// id returns the sequence id, ie the header up to the first space
func (r record) id() string {
	if end := strings.IndexByte(r.header, ' '); end != -1 {
		return r.header[:end]
	}
	return r.header
}

// label identifies the record in error messages
func (r record) label() string {
	if id := r.id(); id != "" {
		return fmt.Sprintf("record %s", id)
	}
	return fmt.Sprintf("record #%d", r.index+1)
}

type fastaChannelFeeder struct {
	headerBuffer   *bytes.Buffer
	sequenceBuffer *bytes.Buffer
	// true once a header or some sequence has been read
	pending   bool
	nbRecord  int
	fastaChan chan<- record
}

func newFastaChannelFeeder(records chan<- record) *fastaChannelFeeder {
	return &fastaChannelFeeder{
		headerBuffer:   bytes.NewBuffer(nil),
		sequenceBuffer: bytes.NewBuffer(nil),
		fastaChan:      records,
	}
}

func (f *fastaChannelFeeder) reset() {
	f.headerBuffer.Reset()
	f.sequenceBuffer.Reset()
	f.pending = false
}

func (f *fastaChannelFeeder) sendFasta(ctx context.Context) error {

	if !f.pending {
		return nil
	}
	r := record{
		index:    f.nbRecord,
		header:   f.headerBuffer.String(),
		sequence: f.sequenceBuffer.String(),
	}
	select {
	case f.fastaChan <- r:
	case <-ctx.Done():
		return ctx.Err()
	}
	f.nbRecord++
	f.reset()
	return nil
}

// fasta format is:
//
//	>sequenceID some comments on sequence
//	ACAGGCAGAGACACGACAGACGACGACACAGGAGCAGACAGCAGCAGACGACCACATATT
//	TTTGCGGTCACATGACGACTTCGGCAGCGA
//
// see https://blast.ncbi.nlm.nih.gov/Blast.cgi?CMD=Web&PAGE_TYPE=BlastDocs&DOC_TYPE=BlastHelp
// section 1 for details.
//
// Sequence lines found before the first header form a record with an
// empty header. records is not closed
func readSequenceFromFasta(ctx context.Context, scanner *bufio.Scanner, records chan<- record) error {

	feeder := newFastaChannelFeeder(records)

	for scanner.Scan() {

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := feeder.sendFasta(ctx); err != nil {
				return err
			}
			feeder.headerBuffer.Write(bytes.TrimSpace(line[1:]))
			feeder.pending = true
			continue
		}
		// if the line doesn't start with '>', then it's a part of the
		// nucleotide sequence, so write it to the buffer
		feeder.sequenceBuffer.Write(line)
		feeder.pending = true
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return feeder.sendFasta(ctx)
}
