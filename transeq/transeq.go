package transeq

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"
)

// Options struct to store translation command line args
type Options struct {
	DNA       bool `short:"d" long:"dna" description:"Read DNA instead of RNA. Each base is transcribed to messenger RNA before translation:\n A -> U, T -> A, C -> G, G -> C"`
	Full      bool `short:"f" long:"full" description:"Show full names of amino acids"`
	Single    bool `short:"s" long:"single" description:"Show single letter codes of amino acids. Ignored with --full"`
	Fasta     bool `short:"F" long:"fasta" description:"Read fasta records, and translate each record on its own"`
	Width     int  `short:"w" long:"width" value-name:"<n>" description:"Max number of amino acids per line for single letter fasta output, 0 for no limit" default:"60"`
	NumWorker int  `short:"n" long:"numcpu" value-name:"<n>" description:"Number of threads to use for fasta input, default is number of physical cores"`
}

// Mode returns the input alphabet selected by the options
func (o Options) Mode() Mode {
	if o.DNA {
		return DNA
	}
	return RNA
}

// Style returns the output style selected by the options. Full names
// take precedence over single letters
func (o Options) Style() Style {
	switch {
	case o.Full:
		return StyleName
	case o.Single:
		return StyleLetter
	}
	return StyleAbbreviation
}

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
)

// IOHandler reads nucleotide sequences from In and writes the
// translation to Out. Sequences that can't be translated are
// reported to Err, and the next sequence is processed
type IOHandler struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
	// Whole makes the entire input a single sequence, newlines
	// included. Ignored for fasta input
	Whole bool
}

// ReadSequenceAndTranslate translates every sequence from h.In.
//
// The returned error is only about reading input or writing output;
// rejected sequences are counted in Stats
func (h IOHandler) ReadSequenceAndTranslate(ctx context.Context, options Options) (Stats, error) {

	switch {
	case options.Fasta:
		return h.translateRecords(ctx, options)
	case h.Whole:
		return h.translateWhole(options)
	}
	return h.translateLines(ctx, options)
}

func (h IOHandler) newScanner() *bufio.Scanner {
	scanner := bufio.NewScanner(h.In)
	scanner.Buffer(make([]byte, 0, 4096), scannerBufferSize())
	return scanner
}

func (h IOHandler) report(unit string, err error) {
	if h.Err == nil {
		return
	}
	errorColor.Fprint(h.Err, "ERROR:")
	fmt.Fprintf(h.Err, " %s: %v\n", unit, err)
}

// Warn writes a non fatal message to h.Err
func (h IOHandler) Warn(format string, a ...interface{}) {
	if h.Err == nil {
		return
	}
	warningColor.Fprint(h.Err, "WARNING:")
	fmt.Fprintf(h.Err, " "+format+"\n", a...)
}

func (h IOHandler) translateWhole(options Options) (Stats, error) {

	stats := Stats{Unit: "input"}

	data, err := io.ReadAll(h.In)
	if err != nil {
		return stats, fmt.Errorf("fail to read input: %w", err)
	}

	p, err := NewProtein(string(data), options.Mode())
	if err != nil {
		stats.reject()
		h.report("input", err)
		return stats, nil
	}
	stats.accept(p)

	w := newWriter(options.Style(), 0)
	w.writeProtein(p)
	return stats, w.flush(h.Out)
}

// each line is translated on its own, and written as soon as it's read, so
// that it can be used interactively
func (h IOHandler) translateLines(ctx context.Context, options Options) (Stats, error) {

	stats := Stats{Unit: "line"}
	w := newWriter(options.Style(), 0)
	scanner := h.newScanner()

	for lineNumber := 1; scanner.Scan(); lineNumber++ {

		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		p, err := NewProtein(scanner.Text(), options.Mode())
		if err != nil {
			stats.reject()
			h.report(fmt.Sprintf("line %d", lineNumber), err)
			continue
		}
		stats.accept(p)

		w.writeProtein(p)
		if err := w.flush(h.Out); err != nil {
			return stats, err
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("fail to read input: %w", err)
	}
	return stats, nil
}

type translatedRecord struct {
	record
	protein Protein
	err     error
}

// records are translated by several workers, and written in the
// same order as in the input
func (h IOHandler) translateRecords(ctx context.Context, options Options) (Stats, error) {

	stats := Stats{Unit: "record"}

	numWorker := options.NumWorker
	if numWorker < 1 {
		numWorker = DefaultNumWorker()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	records := make(chan record, 10*numWorker)
	translated := make(chan translatedRecord, 10*numWorker)

	g.Go(func() error {
		defer close(records)
		err := readSequenceFromFasta(ctx, h.newScanner(), records)
		if err != nil && ctx.Err() == nil {
			return fmt.Errorf("fail to read input: %w", err)
		}
		return err
	})

	var wg sync.WaitGroup
	wg.Add(numWorker)

	for nWorker := 0; nWorker < numWorker; nWorker++ {
		g.Go(func() error {
			defer wg.Done()

			for r := range records {
				p, err := NewProtein(r.sequence, options.Mode())
				select {
				case translated <- translatedRecord{record: r, protein: p, err: err}:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		wg.Wait()
		close(translated)
	}()

	w := newWriter(options.Style(), options.Width)
	pending := map[int]translatedRecord{}
	next := 0
	var writeErr error

	for t := range translated {

		if writeErr != nil {
			// drain until workers are done
			continue
		}
		pending[t.index] = t

		for {
			ready, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++

			if ready.err != nil {
				stats.reject()
				h.report(ready.label(), ready.err)
				continue
			}
			stats.accept(ready.protein)
			w.writeHeader(ready.header)
			w.writeProtein(ready.protein)
		}

		if w.buf.Len() > maxBufferSize {
			if writeErr = w.flush(h.Out); writeErr != nil {
				cancel()
			}
		}
	}

	err := g.Wait()
	if writeErr != nil {
		return stats, writeErr
	}
	if err != nil {
		return stats, err
	}
	return stats, w.flush(h.Out)
}
