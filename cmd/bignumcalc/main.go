// Command bignumcalc is a small command-line demonstrator for the bignum
// engine: it parses two signed decimal operands and an operator from
// flags, runs the requested operation, and prints the result alongside
// its wall-clock cost.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/bignum/bignum"
	"github.com/agbru/bignum/internal/format"
	"github.com/agbru/bignum/internal/telemetry"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("bignumcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	op := fs.String("op", "+", "operation to perform: + - * / %")
	quiet := fs.Bool("quiet", false, "suppress the progress spinner")
	// A negative operand such as "-5" looks like a flag, so flag parsing
	// stops before the first argument of that form.
	split := len(args)
	for i, arg := range args {
		if len(arg) > 1 && arg[0] == '-' && arg[1] >= '0' && arg[1] <= '9' {
			split = i
			break
		}
	}
	if err := fs.Parse(args[:split]); err != nil {
		return 2
	}
	// Re-parse the operands alone behind "--" so fs.Args holds all of them.
	if err := fs.Parse(append(append([]string{"--"}, fs.Args()...), args[split:]...)); err != nil {
		return 2
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(stderr, "usage: bignumcalc -op=+ <a> <b>")
		return 2
	}

	logger := telemetry.NewLogger(stderr, "bignumcalc")

	a, err := bignum.ParseS(fs.Arg(0))
	if err != nil {
		logger.Error().Err(err).Str("operand", fs.Arg(0)).Msg("failed to parse operand")
		return 1
	}
	b, err := bignum.ParseS(fs.Arg(1))
	if err != nil {
		logger.Error().Err(err).Str("operand", fs.Arg(1)).Msg("failed to parse operand")
		return 1
	}

	var s *spinner.Spinner
	if !*quiet {
		s = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(stderr))
		s.Suffix = " computing..."
		s.Start()
	}

	start := time.Now()
	result, err := compute(*op, a, b)
	elapsed := time.Since(start)

	if s != nil {
		s.Stop()
	}

	if err != nil {
		logger.Error().Err(err).Str("op", *op).Msg("operation failed")
		return 1
	}

	fmt.Fprintln(stdout, result)
	logger.Info().Str("op", *op).Str("duration", format.FormatExecutionDuration(elapsed)).Msg("done")
	return 0
}

func compute(op string, a, b bignum.S) (bignum.S, error) {
	switch op {
	case "+":
		return a.Add(b), nil
	case "-":
		return a.Sub(b), nil
	case "*":
		return a.Mul(b)
	case "/":
		return a.Div(b)
	case "%":
		return a.Mod(b)
	default:
		return bignum.S{}, fmt.Errorf("unsupported operator %q", op)
	}
}
