// Command gs1128 encodes a digit payload as a GS1-128 (Code Set C) barcode.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	gs1128go "github.com/ericlevine/gs1128go"
	"github.com/ericlevine/gs1128go/render"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		output   string
		format   string
		width    int
		height   int
		gs1      bool
		showHelp bool
	)

	pflag.StringVarP(&output, "output", "o", "", "Write the image to this file instead of stdout")
	pflag.StringVarP(&format, "format", "t", "png", "Output format: png, pbm or text")
	pflag.IntVarP(&width, "width", "w", 0, "Minimum image width in pixels (0 = one pixel per module)")
	pflag.IntVarP(&height, "height", "H", 50, "Image height in pixels")
	pflag.BoolVar(&gs1, "gs1", false, "Prefix the payload with FNC1")
	pflag.BoolVarP(&showHelp, "help", "h", false, "Show help message")
	pflag.Parse()

	if showHelp {
		printHelp()
		return 0
	}

	args := pflag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one payload argument")
		printHelp()
		return 1
	}

	switch format {
	case "png", "pbm", "text":
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", format)
		return 1
	}

	elements, err := parsePayload(args[0], gs1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	symbol, err := gs1128go.Encode(elements)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	out := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer f.Close()
		out = f
	} else if format != "text" && isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "Error: refusing to write a binary image to a terminal; use -o or redirect stdout")
		return 1
	}

	switch format {
	case "png":
		err = render.WritePNG(out, render.New(symbol, width, height))
	case "pbm":
		err = render.WritePBM(out, render.New(symbol, width, height))
	case "text":
		err = writeText(out, symbol)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// parsePayload converts the command-line payload into canonical elements.
// A "{FNC1}" escape inserts a Function Code 1 separator; the other function
// codes parse but are rejected by the encoder.
func parsePayload(s string, gs1 bool) ([]gs1128go.Element, error) {
	var elements []gs1128go.Element
	if gs1 {
		elements = append(elements, gs1128go.FNC1)
	}
	for i := 0; i < len(s); {
		if s[i] != '{' {
			elements = append(elements, gs1128go.Element(s[i]))
			i++
			continue
		}
		end := strings.IndexByte(s[i:], '}')
		if end < 0 {
			return nil, fmt.Errorf("unterminated escape at offset %d", i)
		}
		switch tag := s[i+1 : i+end]; tag {
		case "FNC1":
			elements = append(elements, gs1128go.FNC1)
		case "FNC2":
			elements = append(elements, gs1128go.FNC2)
		case "FNC3":
			elements = append(elements, gs1128go.FNC3)
		case "FNC4":
			elements = append(elements, gs1128go.FNC4)
		default:
			return nil, fmt.Errorf("unknown escape %q", tag)
		}
		i += end + 1
	}
	return elements, nil
}

// writeText prints the module sequence as one line of '#' (dark) and ' '
// (light) characters.
func writeText(w io.Writer, symbol *gs1128go.Symbol) error {
	var sb strings.Builder
	for _, m := range symbol.Modules {
		if m == 1 {
			sb.WriteByte('#')
		} else {
			sb.WriteByte(' ')
		}
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}

func printHelp() {
	fmt.Fprintf(os.Stderr, "Usage: gs1128 [flags] <payload>\n\n")
	fmt.Fprintf(os.Stderr, "Encode a payload of decimal digit pairs as a GS1-128 barcode in Code\n")
	fmt.Fprintf(os.Stderr, "Set C. Use {FNC1} in the payload, or --gs1, to insert FNC1 separators.\n\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	pflag.PrintDefaults()
}
