// Command natctl exposes the arithmetic engine's operations as a CLI,
// following go-musicfox's cmd/musicfox/main.go shape: build a
// gcli.App, bind global flags, register one gcli.Command per
// subcommand, run.
package main

import (
	"fmt"
	"os"

	"github.com/gookit/gcli/v2"

	"github.com/openarith/natcore/cmd/natctl/commands"
	"github.com/openarith/natcore/internal/config"
)

const (
	appName        = "natctl"
	appVersion     = "0.1.0"
	appDescription = "Multi-precision natural number arithmetic from the command line"
)

func main() {
	thresholds, err := config.Load(configPath())
	if err != nil {
		fmt.Fprintln(os.Stderr, "natctl: loading threshold config:", err)
		os.Exit(1)
	}
	thresholds.Apply()

	app := gcli.NewApp()
	app.Name = appName
	app.Version = appVersion
	app.Description = appDescription
	app.GOptsBinder = func(gf *gcli.Flags) {
		gf.BoolOpt(&commands.GlobalOptions.Verbose, "verbose", "v", false, "enable debug logging")
		gf.StrOpt(&commands.GlobalOptions.MetricsAddr, "metrics-addr", "m", "", "serve Prometheus metrics on this address (disabled when empty)")
	}

	app.Add(commands.NewAddCommand())
	app.Add(commands.NewSubCommand())
	app.Add(commands.NewMulCommand())
	app.Add(commands.NewDivCommand())
	app.Add(commands.NewPowCommand())
	app.Add(commands.NewBenchCommand())

	app.Run()
}

func configPath() string {
	if p := os.Getenv("NATCTL_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "natctl.toml"
	}
	return dir + "/natctl/natctl.toml"
}
