// Command featural translates featural constraints into segmental constraints.
//
// Usage
//
//    featural [flags] constraint_file feature_file outfile
//
// The constraint file holds one constraint per line; fields after the first
// tab are ignored. The feature file is a tab-delimited table with feature
// names in the first row and one segment per subsequent row. The translated
// constraints are written to outfile, one per line.
//
// If constraint_file is a glob pattern (e.g. "grammars/**/*.txt"), every
// matching file is translated and outfile is taken as a directory, which
// receives one output file per input file, with the input file's base name.
//
// Flags
//
//    -trace D|I|E     trace level (default E)
//    -encoding name   encoding of input files without BOM (default utf-8)
//    -nfc             normalize segments and constraints to Unicode NFC
//    -strict          reject constraints with unbalanced brackets
//    -workers n       translate with n goroutines
//    -watch           re-translate whenever an input file changes
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/npillmayer/featural"
	"github.com/npillmayer/featural/internal/tabfile"
	"github.com/npillmayer/featural/translate"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"golang.org/x/text/encoding"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// job is a single run of the command: input files and output location.
type job struct {
	constraintFiles []string
	featureFile     string
	out             string
	outIsDir        bool
	enc             encoding.Encoding
	opts            []translate.Option
}

func main() {
	tlevel := flag.String("trace", "E", "Trace level [D|I|E]")
	encname := flag.String("encoding", "utf-8", "Encoding of input files without BOM")
	nfc := flag.Bool("nfc", false, "Normalize segments and constraints to NFC")
	strict := flag.Bool("strict", false, "Reject constraints with unbalanced brackets")
	workers := flag.Int("workers", 1, "Number of goroutines for translation")
	watch := flag.Bool("watch", false, "Re-translate when an input file changes")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Featural constraint translator\n\nUsage: %s [flags] constraint_file feature_file outfile\n\n",
			filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(traceLevel(*tlevel))
	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(2)
	}
	enc, err := tabfile.EncodingByName(*encname)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	j, err := makeJob(flag.Arg(0), flag.Arg(1), flag.Arg(2))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	j.enc = enc
	j.opts = []translate.Option{
		translate.Memoize(true),
		translate.Normalize(*nfc),
		translate.Strict(*strict),
		translate.Workers(*workers),
	}
	if err = j.run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if !*watch {
			os.Exit(1)
		}
	} else {
		fmt.Println("Output file created.")
	}
	if *watch {
		if err = j.watch(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func traceLevel(l string) tracing.TraceLevel {
	switch l {
	case "D":
		return tracing.LevelDebug
	case "I":
		return tracing.LevelInfo
	}
	return tracing.LevelError
}

// makeJob expands a constraint file glob pattern, if any.
func makeJob(constraints, features, out string) (*job, error) {
	j := &job{featureFile: features, out: out}
	if !hasMeta(constraints) || exists(constraints) {
		j.constraintFiles = []string{constraints}
		return j, j.checkOutputs()
	}
	matches, err := doublestar.FilepathGlob(constraints)
	if err != nil {
		return nil, fmt.Errorf("constraint file pattern: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no constraint files match %q", constraints)
	}
	tracer().Infof("%d constraint files match %q", len(matches), constraints)
	j.constraintFiles = matches
	j.outIsDir = true
	return j, j.checkOutputs()
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// outfile returns the output path for constraint file cfile.
func (j *job) outfile(cfile string) string {
	if j.outIsDir {
		return filepath.Join(j.out, filepath.Base(cfile))
	}
	return j.out
}

// checkOutputs makes sure no output file of j is one of its input files.
func (j *job) checkOutputs() error {
	inputs := j.inputs()
	for _, cfile := range j.constraintFiles {
		if inputs[absPath(j.outfile(cfile))] {
			return fmt.Errorf("output file %s would overwrite an input file", j.outfile(cfile))
		}
	}
	return nil
}

func hasMeta(path string) bool {
	for _, c := range path {
		switch c {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

// run translates all constraint files of j.
func (j *job) run() error {
	table, err := j.loadTable()
	if err != nil {
		return err
	}
	tr, err := translate.NewTranslator(table, j.opts...)
	if err != nil {
		return err
	}
	if j.outIsDir {
		if err = os.MkdirAll(j.out, 0755); err != nil {
			return err
		}
	}
	if err = j.checkOutputs(); err != nil {
		return err
	}
	for _, cfile := range j.constraintFiles {
		if err = j.translateFile(tr, cfile, j.outfile(cfile)); err != nil {
			return err
		}
	}
	return nil
}

func (j *job) loadTable() (*featural.FeatureTable, error) {
	f, err := os.Open(j.featureFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	table, err := tabfile.LoadFeatureTable(f, tabfile.Encoding(j.enc))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", j.featureFile, err)
	}
	return table, nil
}

func (j *job) translateFile(tr *translate.Translator, cfile, outfile string) error {
	f, err := os.Open(cfile)
	if err != nil {
		return err
	}
	defer f.Close()
	constraints, err := tabfile.ReadConstraints(f, tabfile.Encoding(j.enc))
	if err != nil {
		return fmt.Errorf("%s: %w", cfile, err)
	}
	translated, err := tr.TranslateAll(constraints)
	if err != nil {
		return fmt.Errorf("%s: %w", cfile, err)
	}
	out, err := os.Create(outfile)
	if err != nil {
		return err
	}
	if err = tabfile.WriteLines(out, translated); err != nil {
		out.Close()
		return err
	}
	tracer().Infof("wrote %d constraints to %s", len(translated), outfile)
	return out.Close()
}
