package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/feliixx/gomutimpact/impact"
	"github.com/feliixx/gomutimpact/ncbicode"
	"github.com/feliixx/gomutimpact/report"
	"github.com/feliixx/gomutimpact/structure"
	"github.com/jessevdk/go-flags"
)

const (
	version  = "0.1.0"
	toolName = "gomutimpact"
)

// GlobalOptions struct to store command line args
type GlobalOptions struct {
	Input     `group:"input"`
	Analysis  impact.Options    `group:"analysis"`
	Structure structure.Options `group:"structure"`
	Report    report.Options    `group:"report"`
	General   `group:"general"`
}

// Input struct to store the mutation(s) to analyze
type Input struct {
	Original string `short:"O" long:"original" value-name:"<codon>" description:"Original codon, for example GAG. Asked on standard input if missing"`
	Mutated  string `short:"M" long:"mutated" value-name:"<codon>" description:"Mutated codon, for example GTG. Asked on standard input if missing"`
	Batch    string `short:"b" long:"batch" value-name:"<filename>" description:"Analyze all the codon pairs of a file, one 'original mutated' pair per line, and write the result as TSV"`
	Outfile  string `short:"o" long:"outfile" value-name:"<filename>" description:"Batch result filename, default is standard output"`
}

// General struct to store general command line args
type General struct {
	Help    bool `short:"h" long:"help" description:"Show this help message"`
	Version bool `short:"v" long:"version" description:"Print the tool version and exit"`
	Verbose bool `short:"V" long:"verbose" description:"Print progress and warnings on standard error"`
}

func newParser(options *GlobalOptions) *flags.Parser {
	return flags.NewParser(options, flags.Default&^flags.HelpFlag)
}

func run(options GlobalOptions, stdin io.Reader, stdout, stderr io.Writer) error {

	logger := log.New(stderr, "", 0)
	if !options.Verbose {
		logger.SetOutput(io.Discard)
	}

	if options.Batch != "" {
		return runBatch(options, stdout, logger)
	}

	original, mutated := options.Original, options.Mutated
	if original == "" || mutated == "" {
		var err error
		original, mutated, err = askCodons(stdin, stdout, original, mutated)
		if err != nil {
			return err
		}
	}
	original, mutated = normalizeCodon(original), normalizeCodon(mutated)

	code, err := ncbicode.Load(options.Analysis.Table)
	if err != nil {
		return err
	}

	r := report.Report{
		Analysis: impact.NewAnalyzer(code).Analyze(original, mutated),
		Code:     code.Name(),
	}
	if err := report.WriteSummary(stdout, r); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "\nGenerating visualization...\n")

	if options.Structure.File != "" {
		logger.Printf("reading structure %s from %s", options.Structure.ID, options.Structure.File)
	} else {
		logger.Printf("downloading structure %s from %s", options.Structure.ID, options.Structure.URL)
	}
	s, err := structure.Load(context.Background(), options.Structure)
	if err != nil {
		return fmt.Errorf("fail to load reference structure: %w", err)
	}
	if s.ParseErr != nil {
		logger.Printf("WARNING: %v, residue %d can't be located", s.ParseErr, s.Residue)
	}
	for _, site := range s.Sites {
		if !site.Matches(r.Analysis.Original) {
			logger.Printf("WARNING: residue %d of chain %c is %c, not %c", s.Residue, site.Chain, site.Residue, r.Analysis.Original)
		}
	}
	r.Structure = s

	fileName, err := report.Save(options.Report.HTML, r)
	if err != nil {
		return fmt.Errorf("fail to write report: %w", err)
	}
	fmt.Fprintf(stdout, "Report written to %s\n", fileName)

	if options.Report.NoOpen {
		return nil
	}
	logger.Printf("opening %s", fileName)
	return report.Open(fileName)
}

func runBatch(options GlobalOptions, stdout io.Writer, logger *log.Logger) error {

	if options.Analysis.NumWorker == 0 {
		options.Analysis.NumWorker = runtime.NumCPU()
	}

	in, err := os.Open(options.Batch)
	if err != nil {
		return err
	}
	defer in.Close()

	out := stdout
	if options.Outfile != "" {
		f, err := os.Create(options.Outfile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	logger.Printf("analyzing %s with %d workers", options.Batch, options.Analysis.NumWorker)
	return impact.Batch(in, out, options.Analysis)
}

// askCodons prompts for the codons not given on the command line
func askCodons(stdin io.Reader, stdout io.Writer, original, mutated string) (string, string, error) {

	fmt.Fprintf(stdout, "=== Protein Mutation Impact Analyzer ===\n")

	r := bufio.NewReader(stdin)
	var err error
	if original == "" {
		original, err = ask(r, stdout, "Enter original codon (e.g., GAG): ")
		if err != nil {
			return "", "", err
		}
	}
	if mutated == "" {
		mutated, err = ask(r, stdout, "Enter mutated codon (e.g., GTG): ")
		if err != nil {
			return "", "", err
		}
	}
	return original, mutated, nil
}

func ask(r *bufio.Reader, w io.Writer, question string) (string, error) {

	fmt.Fprint(w, question)
	line, err := r.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return "", fmt.Errorf("fail to read codon: %v", err)
	}
	return normalizeCodon(line), nil
}

func normalizeCodon(codon string) string {
	return strings.ToUpper(strings.TrimSpace(codon))
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

	err = run(options, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Printf("fail to analyze mutation:\n%v\n", err)
		os.Exit(1)
	}
}
