package commands

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mkelsey/caseconv"
	"github.com/mkelsey/caseconv/internal/cliutil"
	"github.com/mkelsey/caseconv/segmenter"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	To             string
	Format         string
	NumberBoundary bool
	ShowWords      bool
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.To, "t", "", "target convention (e.g., \"kebab\", \"camel\", \"dot\") (required)")
	fs.StringVar(&flags.To, "to", "", "target convention (e.g., \"kebab\", \"camel\", \"dot\") (required)")
	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.NumberBoundary, "number-boundary", false, "split words between letters and digits")
	fs.BoolVar(&flags.ShowWords, "words", false, "also print the segmented words (text format only)")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: caseconv convert [flags] <string...|->\n\n")
		cliutil.Writef(fs.Output(), "Convert strings to a casing convention.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nConventions:\n")
		cliutil.Writef(fs.Output(), "  kebab, camel, dot, snake, screaming-snake, pascal, title\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  caseconv convert -t kebab \"helloWorld\"\n")
		cliutil.Writef(fs.Output(), "  caseconv convert -t camel convert-this-string\n")
		cliutil.Writef(fs.Output(), "  caseconv convert -t dot -f json \"HELLO_WORLD\" \"hello world\"\n")
		cliutil.Writef(fs.Output(), "  cat names.txt | caseconv convert -t snake -\n")
		cliutil.Writef(fs.Output(), "\nPipelining:\n")
		cliutil.Writef(fs.Output(), "  - Use '-' as the only argument to read one string per stdin line\n")
	}

	return fs, flags
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	fs, flags := SetupConvertFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("convert command requires at least one string, or '-' for stdin")
	}

	conv, err := ParseTargetConvention(flags.To)
	if err != nil {
		return err
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	inputs := fs.Args()
	if len(inputs) == 1 && inputs[0] == StdinFilePath {
		inputs, err = readLines(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}

	var opts []caseconv.Option
	if flags.NumberBoundary {
		opts = append(opts, caseconv.WithSegmenter(segmenter.New(segmenter.WithNumberBoundary(true))))
	}
	c := caseconv.New(opts...)

	return outputConversions(os.Stdout, c, conv, inputs, flags)
}

// conversionResult is the structured output row for json/yaml formats.
type conversionResult struct {
	Input  string   `json:"input" yaml:"input"`
	Output string   `json:"output" yaml:"output"`
	Words  []string `json:"words,omitempty" yaml:"words,omitempty"`
}

func outputConversions(w io.Writer, c *caseconv.Converter, conv caseconv.Convention, inputs []string, flags *ConvertFlags) error {
	if flags.Format == FormatText {
		for _, input := range inputs {
			out := c.ConvertString(input, conv)
			if flags.ShowWords {
				seg := segmenterFor(flags)
				cliutil.Writef(w, "%s\t%v\n", out, seg.Segment(input))
			} else {
				cliutil.Writef(w, "%s\n", out)
			}
		}
		return nil
	}

	seg := segmenterFor(flags)
	results := make([]conversionResult, 0, len(inputs))
	for _, input := range inputs {
		results = append(results, conversionResult{
			Input:  input,
			Output: c.ConvertString(input, conv),
			Words:  seg.Segment(input),
		})
	}
	return OutputStructured(results, flags.Format)
}

func segmenterFor(flags *ConvertFlags) *segmenter.Segmenter {
	if flags.NumberBoundary {
		return segmenter.New(segmenter.WithNumberBoundary(true))
	}
	return segmenter.New()
}

// readLines reads one input per line, skipping blank lines.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
