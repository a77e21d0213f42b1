// Command pagedump prints the records of a challenge page without starting
// the server. Fault injection is an HTTP concern and never happens here.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/usagechallenge/challenge/internal/challenge"
	"github.com/usagechallenge/challenge/internal/procedural"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pagedump", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		page   = fs.Uint64("page", 0, "Page number")
		level  = fs.Int("level", 0, "Difficulty override (1-8); derived from -page when 0")
		count  = fs.Int("count", 0, "Number of records; the page size when 0")
		format = fs.String("format", "page", "Output format: page or ndjson")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	difficulty := *level
	if difficulty == 0 {
		difficulty = challenge.DifficultyForPage(*page)
	}
	if difficulty >= procedural.Complete {
		fmt.Fprintln(stdout, challenge.CompletionMessage)
		return 0
	}

	n := *count
	if n <= 0 {
		n = challenge.PageSize(difficulty)
	}

	if *format != "page" && *format != "ndjson" {
		fmt.Fprintf(stderr, "unknown format %q\n", *format)
		return 2
	}

	gen, err := procedural.NewGenerator(difficulty, *page)
	if err != nil {
		fmt.Fprintln(stderr, "create generator:", err)
		return 1
	}

	w := bufio.NewWriter(stdout)
	if err := dump(w, gen, n, *format == "ndjson"); err != nil {
		fmt.Fprintln(stderr, "dump page:", err)
		return 1
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintln(stderr, "write output:", err)
		return 1
	}
	return 0
}

func dump(w *bufio.Writer, gen *procedural.Generator, n int, ndjson bool) error {
	buf := make([]byte, 0, 1024)
	if !ndjson {
		buf = fmt.Appendf(buf, `{"level": %d, "usages": [`, gen.Difficulty())
	}

	i := 0
	for record, err := range gen.Take(n) {
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		if i > 0 && !ndjson {
			buf = append(buf, ',')
		}
		buf = record.AppendJSON(buf)
		if ndjson {
			buf = append(buf, '\n')
		}
		if _, err := w.Write(buf); err != nil {
			return err
		}
		buf = buf[:0]
		i++
	}

	if !ndjson {
		if _, err := w.WriteString("]}\n"); err != nil {
			return err
		}
	}
	if i != n {
		return errors.New("generator stopped early")
	}
	return nil
}
