// Package logx sets up the structured logger shared by the ambient
// packages and wires it to the engine's algorithm-selection trace hook.
// zerolog is the retrieval pack's structured-logging dependency
// (cloudflared's go.mod); the core nat package never imports it directly,
// per the house rule that logging stays out of the allocation-disciplined
// hot path.
package logx

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/openarith/natcore/nat"
)

// New returns a console-friendly zerolog.Logger writing to w (os.Stderr
// in production, an *os.File or buffer in tests).
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Default is a package-level info-level logger writing to os.Stderr.
// natctl does not use it: commands.Init builds its own logger with New.
var Default = New(os.Stderr, false)

// TraceFunc returns a nat.AlgoTrace-compatible callback that logs each
// dispatcher algorithm choice at debug level. Callers combine it with
// other callbacks (e.g. metricsx's counter) via ComposeTrace rather than
// assigning nat.AlgoTrace directly, since only one hook can be installed
// at a time.
func TraceFunc(log zerolog.Logger) func(op, algo string) {
	return func(op, algo string) {
		log.Debug().Str("op", op).Str("algorithm", algo).Msg("dispatch")
	}
}

// ComposeTrace installs a nat.AlgoTrace that calls every fn in order.
func ComposeTrace(fns ...func(op, algo string)) {
	nat.AlgoTrace = func(op, algo string) {
		for _, fn := range fns {
			if fn != nil {
				fn(op, algo)
			}
		}
	}
}
