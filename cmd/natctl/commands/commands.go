// Package commands implements natctl's gcli subcommands, grounded on
// go-musicfox's internal/commands package layout: one exported
// New*Command constructor per subcommand, flags bound through
// gcli.Command.Config, and the operation itself living in the Func
// closure.
package commands

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gookit/gcli/v2"

	"github.com/openarith/natcore/internal/logx"
	"github.com/openarith/natcore/internal/metricsx"
	"github.com/openarith/natcore/nat"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// GlobalOptions mirrors go-musicfox's package-level GlobalOptions
// pattern: flags bound once in the app's GOptsBinder, read by every
// subcommand.
var GlobalOptions struct {
	Verbose     bool
	MetricsAddr string
}

var initOnce sync.Once

// Init wires logging and metrics from GlobalOptions; gcli parses global
// options before dispatching to a subcommand's Func, so calling this as
// the first step of every Func sees the flags the user actually passed.
func Init() {
	initOnce.Do(func() {
		log := logx.New(os.Stderr, GlobalOptions.Verbose)
		logx.ComposeTrace(logx.TraceFunc(log), metricsx.TraceFunc())

		if GlobalOptions.MetricsAddr != "" {
			go func() {
				mux := http.NewServeMux()
				mux.Handle("/metrics", metricsx.Handler())
				if err := http.ListenAndServe(GlobalOptions.MetricsAddr, mux); err != nil {
					log.Error().Err(err).Msg("metrics server")
				}
			}()
		}
	})
}

func parseOperand(s string) (nat.Nat, error) {
	x, err := nat.ParseDecimal(s)
	if err != nil {
		return nil, err
	}
	return x, nil
}

// NewAddCommand adds two decimal operands.
func NewAddCommand() *gcli.Command {
	return &gcli.Command{
		Name:   "add",
		UseFor: "Add two non-negative decimal integers",
		Examples: "{$binName} {$cmd} 123 456",
		Func: func(_ *gcli.Command, args []string) error {
			return binaryOp(args, func(x, y nat.Nat) nat.Nat {
				var z nat.Nat
				return z.Add(x, y)
			})
		},
	}
}

// NewSubCommand subtracts the second operand from the first.
func NewSubCommand() *gcli.Command {
	return &gcli.Command{
		Name:   "sub",
		UseFor: "Subtract the second operand from the first (panics on underflow)",
		Examples: "{$binName} {$cmd} 456 123",
		Func: func(_ *gcli.Command, args []string) error {
			return binaryOp(args, func(x, y nat.Nat) nat.Nat {
				var z nat.Nat
				return z.Sub(x, y)
			})
		},
	}
}

// NewMulCommand multiplies two decimal operands.
func NewMulCommand() *gcli.Command {
	return &gcli.Command{
		Name:   "mul",
		UseFor: "Multiply two non-negative decimal integers",
		Examples: "{$binName} {$cmd} 123 456",
		Func: func(_ *gcli.Command, args []string) error {
			return binaryOp(args, func(x, y nat.Nat) nat.Nat {
				var z nat.Nat
				return z.Mul(x, y)
			})
		},
	}
}

// NewDivCommand computes quotient and remainder.
func NewDivCommand() *gcli.Command {
	return &gcli.Command{
		Name:   "div",
		UseFor: "Divide the first operand by the second, printing quotient and remainder",
		Examples: "{$binName} {$cmd} 100 7",
		Func: func(_ *gcli.Command, args []string) error {
			Init()
			if len(args) != 2 {
				return fmt.Errorf("div: expected exactly 2 operands, got %d", len(args))
			}
			x, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			y, err := parseOperand(args[1])
			if err != nil {
				return err
			}
			q, r := x.DivMod(y)
			fmt.Printf("quotient:  %s\n", q.String())
			fmt.Printf("remainder: %s\n", r.String())
			return nil
		},
	}
}

// NewPowCommand raises the first operand to an unsigned integer exponent.
func NewPowCommand() *gcli.Command {
	return &gcli.Command{
		Name:   "pow",
		UseFor: "Raise the first operand to the power given as the second (a non-negative machine integer)",
		Examples: "{$binName} {$cmd} 2 64",
		Func: func(_ *gcli.Command, args []string) error {
			Init()
			if len(args) != 2 {
				return fmt.Errorf("pow: expected exactly 2 operands, got %d", len(args))
			}
			x, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			y, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("pow: invalid exponent %q: %w", args[1], err)
			}
			var z nat.Nat
			fmt.Println(z.Pow(x, y).String())
			return nil
		},
	}
}

// benchOpts holds the bench subcommand's flags.
var benchOpts struct {
	bits int
	op   string
}

// NewBenchCommand times a single operation over freshly-generated random
// operands of the requested bit width and prints the elapsed time. The
// algorithm the dispatcher picked is logged through AlgoTrace at debug
// level, so it appears only with --verbose.
func NewBenchCommand() *gcli.Command {
	return &gcli.Command{
		Name:   "bench",
		UseFor: "Time one multiplication or division over random operands of a given bit width",
		Examples: "{$binName} {$cmd} --bits 8192 --op mul",
		Config: func(c *gcli.Command) {
			c.Flags.IntOpt(&benchOpts.bits, "bits", "b", 4096, "bit width of the random operands")
			c.Flags.StrOpt(&benchOpts.op, "op", "o", "mul", "operation to time: mul or div")
		},
		Func: func(_ *gcli.Command, _ []string) error {
			Init()
			rnd := newRand()
			x := nat.Random(rnd, uint(benchOpts.bits))
			y := nat.Random(rnd, uint(benchOpts.bits))

			start := time.Now()
			switch benchOpts.op {
			case "mul":
				var z nat.Nat
				z.Mul(x, y)
			case "div":
				if y.IsZero() {
					y = nat.Nat{1}
				}
				x.DivMod(y)
			default:
				return fmt.Errorf("bench: unknown op %q (want mul or div)", benchOpts.op)
			}
			elapsed := time.Since(start)
			fmt.Printf("%s(%d bits): %s\n", benchOpts.op, benchOpts.bits, elapsed)
			return nil
		},
	}
}

func binaryOp(args []string, f func(x, y nat.Nat) nat.Nat) error {
	Init()
	if len(args) != 2 {
		return fmt.Errorf("expected exactly 2 operands, got %d", len(args))
	}
	x, err := parseOperand(args[0])
	if err != nil {
		return err
	}
	y, err := parseOperand(args[1])
	if err != nil {
		return err
	}
	fmt.Println(f(x, y).String())
	return nil
}
