// Command gauss solves a linear system given as an augmented matrix and
// prints the roots and the residual.
//
// Usage:
//
//	gauss [-in path] [-format text|bin] [-precision 32|64] [-legacy]
//
// Without -in, a built-in 3×4 demo system is solved. Text input holds one
// row per line (see package matrixio); binary input is a file written by
// matrixio.Save. With -format omitted, files ending in ".gaus" are read
// as binary and everything else as text.
//
// Exit status is 1 when the input cannot be read, holds NaN or ±Inf, or
// the system cannot be solved.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/katalvlaran/gauss/gauss"
	"github.com/katalvlaran/gauss/matrix"
	"github.com/katalvlaran/gauss/matrixio"
)

// demoSystem is solved when no input file is given.
var demoSystem = [][]float64{
	{0.43, 1.24, -0.58, 2.71},
	{0.74, 0.83, 1.17, 1.26},
	{1.43, -1.58, 0.83, 1.03},
}

type config struct {
	in        string
	format    string
	precision int
	legacy    bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("gauss: ")

	var cfg config
	flag.StringVar(&cfg.in, "in", "", "input file (default: built-in demo system)")
	flag.StringVar(&cfg.format, "format", "", `input format: "text" or "bin" (default: by extension)`)
	flag.IntVar(&cfg.precision, "precision", 32, "element precision in bits: 32 or 64")
	flag.BoolVar(&cfg.legacy, "legacy", false, "print rows without separators between values")
	flag.Parse()

	var err error
	switch cfg.precision {
	case 32:
		err = run[float32](cfg, os.Stdout)
	case 64:
		err = run[float64](cfg, os.Stdout)
	default:
		err = fmt.Errorf("unsupported precision %d", cfg.precision)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// run loads the system, solves it and writes the report to w.
func run[T matrix.Real](cfg config, w io.Writer) error {
	aug, err := load[T](cfg)
	if err != nil {
		return err
	}
	if err = matrix.ValidateFinite(aug); err != nil {
		return err
	}

	res, err := gauss.Solve(aug)
	if err != nil {
		return err
	}

	render := (*matrix.Dense[T]).String
	if cfg.legacy {
		render = (*matrix.Dense[T]).Concat
	}
	fmt.Fprintln(w, "Roots:")
	fmt.Fprint(w, render(res.Roots))
	fmt.Fprintln(w, "Residual:")
	fmt.Fprint(w, render(res.Epsilon))
	fmt.Fprintf(w, "max |eps| = %g\n", res.MaxEpsilon())

	return nil
}

// load resolves the input according to cfg.
func load[T matrix.Real](cfg config) (*matrix.Dense[T], error) {
	if cfg.in == "" {
		values := make([][]T, len(demoSystem))
		for i, row := range demoSystem {
			values[i] = make([]T, len(row))
			for j, v := range row {
				values[i][j] = T(v)
			}
		}
		return matrix.FromRows(values)
	}

	format := cfg.format
	if format == "" {
		format = "text"
		if filepath.Ext(cfg.in) == ".gaus" {
			format = "bin"
		}
	}
	switch format {
	case "bin":
		return matrixio.Open[T](cfg.in)
	case "text":
		f, err := os.Open(cfg.in)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return matrixio.ReadText[T](f)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
