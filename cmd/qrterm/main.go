package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nlordell/qrterm/internal/qr"
)

func main() {
	levelName := flag.String("level", "medium", "error-correction level: low, medium, high, highest")
	flag.Usage = printUsage
	flag.Parse()

	level, err := qr.Level(*levelName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "qrterm: %v\n", err)
		os.Exit(2)
	}

	data, err := readData(flag.Args(), os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "qrterm: %v\n", err)
		os.Exit(1)
	}

	// TODO(nlordell): Implement terminal colours.
	surface, err := qr.Encode(data, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "qrterm: %v\n", err)
		os.Exit(1)
	}

	if err := surface.Image().Render(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "qrterm: %v\n", err)
		os.Exit(1)
	}
}

// readData joins the positional arguments with spaces, or reads standard
// input to EOF when there are none.
func readData(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	buf, err := io.ReadAll(stdin)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: qrterm [flags] [DATA...]

Displays DATA as a QR code in the terminal. With no arguments, data is read
from standard input.

Flags:
  -level string   error-correction level: low, medium, high, highest (default "medium")`)
}
