package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/fission/config"
	"github.com/wippyai/fission/service"
)

const usage = `Usage: fission [-config file] [-spec dir] [-lang id] <command> [flags] <file>

Commands:
  disasm     disassemble a raw or executable file
  decompile  decompile one function
  info       describe an executable
  serve      run the gRPC service
  ping       probe a running service

       fission -i <file>   (interactive mode)
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// env carries the resolved settings into a command.
type env struct {
	cfg    config.Config
	log    *zap.Logger
	lang   string // set only by -lang; detected languages win otherwise
	stdout io.Writer
	stderr io.Writer
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fission", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	var (
		cfgFile     = fs.String("config", "", "YAML configuration file")
		specDir     = fs.String("spec", "", "Specification directory (overrides config)")
		lang        = fs.String("lang", "", "Language id (overrides config)")
		verbose     = fs.Bool("v", false, "Debug logging")
		interactive = fs.Bool("i", false, "Interactive mode with TUI")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if *specDir != "" {
		cfg.SpecDir = *specDir
	}
	if *lang != "" {
		cfg.Language = *lang
	}
	if *verbose {
		cfg.Log.Level = "debug"
		cfg.Log.Development = true
	}
	log, err := cfg.InstallLogger()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer log.Sync()
	service.SetLogger(log.Named("service"))

	e := &env{cfg: cfg, log: log, lang: *lang, stdout: stdout, stderr: stderr}

	if *interactive {
		if fs.NArg() != 1 {
			fs.Usage()
			return 2
		}
		if f, ok := stdout.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
			fmt.Fprintln(stderr, "Error: interactive mode needs a terminal")
			return 1
		}
		if err := runInteractive(e, fs.Arg(0)); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	cmds := map[string]func(*env, []string) error{
		"disasm":    cmdDisasm,
		"decompile": cmdDecompile,
		"info":      cmdInfo,
		"serve":     cmdServe,
		"ping":      cmdPing,
	}
	cmd, ok := cmds[fs.Arg(0)]
	if !ok {
		fmt.Fprintf(stderr, "Error: unknown command %q\n", fs.Arg(0))
		fs.Usage()
		return 2
	}
	if err := cmd(e, fs.Args()[1:]); err != nil {
		if err == flag.ErrHelp {
			return 2
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
