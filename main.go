package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/feliixx/gocodon/ncbicode"
	"github.com/feliixx/gocodon/transeq"
	"github.com/jessevdk/go-flags"
	"github.com/klauspost/pgzip"
)

const (
	version  = "0.1.0"
	toolName = "gocodon"
)

// GlobalOptions struct to store command line args
type GlobalOptions struct {
	Output          `group:"output"`
	transeq.Options `group:"translation"`
	General         `group:"general"`

	Args struct {
		File string `positional-arg-name:"file" description:"Nucleotide sequence filename, translated as a single sequence unless --fasta is set. Lines from standard input are translated one by one if missing"`
	} `positional-args:"yes"`
}

// Output struct to store output command line args
type Output struct {
	Outseq string `short:"o" long:"outseq" value-name:"<filename>" description:"Protein sequence filename, default is standard output. Compressed if it ends with .gz"`
}

// General struct to store general command line args
type General struct {
	Table   bool `short:"t" long:"table" description:"Print the genetic code in the selected style and exit"`
	Verbose bool `short:"V" long:"verbose" description:"Print a summary of the translation to standard error"`
	NoColor bool `long:"no-color" description:"Disable colors in error messages"`
	Help    bool `short:"h" long:"help" description:"Show this help message"`
	Version bool `short:"v" long:"version" description:"Print the tool version and exit"`
}

// errRejected is returned when at least one sequence was not translated.
// Each failure has already been reported
var errRejected = errors.New("some sequences could not be translated")

func newParser(options *GlobalOptions) *flags.Parser {
	return flags.NewParser(options, flags.Default&^flags.HelpFlag)
}

func run(ctx context.Context, options GlobalOptions, stdin io.Reader, stdout, stderr io.Writer) (err error) {

	if options.NoColor {
		color.NoColor = true
	}

	out, closeOut, err := openOutput(options.Outseq, stdout)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeOut(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if options.Table {
		return ncbicode.PrintTable(out, options.Style().Render)
	}

	if options.NumWorker == 0 {
		options.NumWorker = transeq.DefaultNumWorker()
	}

	iohandler := transeq.IOHandler{
		In:  stdin,
		Out: out,
		Err: stderr,
	}
	if options.Full && options.Single {
		iohandler.Warn("--single is ignored with --full")
	}

	if file := options.Args.File; file != "" && file != "-" {
		in, closeIn, err := openInput(file)
		if err != nil {
			return err
		}
		defer closeIn()

		iohandler.In = in
		iohandler.Whole = true
	}

	stats, err := iohandler.ReadSequenceAndTranslate(ctx, options.Options)
	if options.Verbose {
		fmt.Fprintln(stderr, stats.Summary())
	}
	if err != nil {
		return err
	}
	if stats.Rejected > 0 {
		return errRejected
	}
	return nil
}

// openInput opens a nucleotide file, and decompresses it
// if it's a gzip file
func openInput(fileName string) (io.Reader, func() error, error) {

	f, err := os.Open(fileName)
	if err != nil {
		return nil, nil, err
	}
	if !strings.HasSuffix(fileName, ".gz") {
		return f, f.Close, nil
	}

	// using parallel pgzip for better performance on large files
	zr, err := pgzip.NewReader(bufio.NewReader(f))
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("unable to create decompressor on '%s': %w", fileName, err)
	}
	return zr, func() error {
		zr.Close()
		return f.Close()
	}, nil
}

func openOutput(fileName string, stdout io.Writer) (io.Writer, func() error, error) {

	if fileName == "" || fileName == "-" {
		return stdout, func() error { return nil }, nil
	}

	f, err := os.Create(fileName)
	if err != nil {
		return nil, nil, err
	}
	if !strings.HasSuffix(fileName, ".gz") {
		return f, f.Close, nil
	}

	zw, err := pgzip.NewWriterLevel(f, pgzip.BestSpeed)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("unable to create compressor on '%s': %w", fileName, err)
	}
	return zw, func() error {
		if err := zw.Close(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}, nil
}

func main() {

	var options GlobalOptions
	p := newParser(&options)
	_, err := p.Parse()
	if err != nil {
		fmt.Printf("wrong arguments: %v, try %s --help for more informations\n", err, toolName)
		os.Exit(1)
	}
	if options.Help {
		fmt.Printf("%s version %s\n\n", toolName, version)
		p.WriteHelp(os.Stdout)
		os.Exit(0)
	}
	if options.Version {
		fmt.Printf("%s version %s\n", toolName, version)
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = run(ctx, options, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		if !errors.Is(err, errRejected) {
			fmt.Fprintf(os.Stderr, "fail to translate:\n%v\n", err)
		}
		stop()
		os.Exit(1)
	}
}
