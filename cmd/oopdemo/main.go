// Command oopdemo runs the object-oriented demonstrations.
//
//	oopdemo                      run every demo
//	oopdemo run [flags] [demo…]  run the named demos, in script order
//	oopdemo list                 print demo names and titles
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/marcodamonte/oopconcepts/internal/config"
	"github.com/marcodamonte/oopconcepts/internal/demo"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "oopdemo:", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return runCmd(nil, stdout, stderr)
	}

	switch args[0] {
	case "run":
		return runCmd(args[1:], stdout, stderr)
	case "list":
		return listCmd(stdout)
	case "help", "-h", "-help", "--help":
		printUsage(stdout)
		return nil
	default:
		printUsage(stderr)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func runCmd(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "config file (.toml, .yaml); default: nearest "+config.FileName)
	noHeaders := fs.Bool("no-headers", false, "do not print a title before each demo")
	showFailures := fs.Bool("show-failures", false, "also run the invocations that must fail")
	verbose := fs.Bool("v", false, "log progress to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	// Flags given on the command line win over the file, in both directions.
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	rc := demo.FromFile(cfg)
	rc.Out = stdout
	if set["no-headers"] {
		rc.Headers = !*noHeaders
	}
	if set["show-failures"] {
		rc.ShowFailures = *showFailures
	}
	logProgress := cfg.Output.Verbose
	if set["v"] {
		logProgress = *verbose
	}
	if logProgress {
		rc.Logger = log.New(stderr, "", log.LstdFlags|log.Lmicroseconds)
	}

	names := fs.Args()
	if len(names) == 0 {
		names = cfg.Demos.Only
	}
	return demo.New(rc).Run(names...)
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	cfg, _, err := config.FindAndLoad(wd)
	return cfg, err
}

func listCmd(stdout io.Writer) error {
	for _, d := range demo.All() {
		fmt.Fprintf(stdout, "%-22s %s\n", d.Name, d.Title)
	}
	return nil
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: oopdemo [run [flags] [demo...] | list | help]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "run flags:")
	fmt.Fprintln(w, "  -config file      config file (.toml, .yaml)")
	fmt.Fprintln(w, "  -no-headers       do not print a title before each demo")
	fmt.Fprintln(w, "  -show-failures    also run the invocations that must fail")
	fmt.Fprintln(w, "  -v                log progress to stderr")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "boolean flags override the config file both ways, e.g. -show-failures=false")
}
