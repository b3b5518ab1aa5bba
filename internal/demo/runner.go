// Package demo runs the object-oriented demonstrations in script order.
//
// Each Demo builds one or two small types, calls a few methods on them and
// prints through the console logger. Nothing is shared between demos except
// the static counter, which only ever grows.
package demo

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/marcodamonte/oopconcepts/internal/config"
	"github.com/marcodamonte/oopconcepts/internal/console"
)

// ErrUnknownDemo is returned for a name that is not in the registry.
var ErrUnknownDemo = errors.New("unknown demo")

// Env is what a demo gets to work with.
type Env struct {
	Log    *log.Logger // console; one Println per printed line
	Values config.ValuesConfig
}

// Demo is one self-contained demonstration.
type Demo struct {
	Name  string
	Title string
	Run   func(env *Env) error

	// Failures runs the invocations the demonstration only mentions because
	// they must fail. Nil when there are none.
	Failures func(env *Env) []error
}

// All returns the demonstrations in script order.
func All() []Demo {
	out := make([]Demo, len(registry))
	copy(out, registry)
	return out
}

// Lookup finds a demo by name.
func Lookup(name string) (Demo, bool) {
	for _, d := range registry {
		if d.Name == name {
			return d, true
		}
	}
	return Demo{}, false
}

// Select returns the named demos in script order, or all of them when names
// is empty.
func Select(names ...string) ([]Demo, error) {
	if len(names) == 0 {
		return All(), nil
	}
	want := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := Lookup(name); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDemo, name)
		}
		want[name] = true
	}
	var out []Demo
	for _, d := range registry {
		if want[d.Name] {
			out = append(out, d)
		}
	}
	return out, nil
}

// Config holds Runner construction parameters.
type Config struct {
	// Out receives the console output. Defaults to os.Stdout.
	Out io.Writer

	// Headers prints a title line before each demo.
	Headers bool

	// ShowFailures runs each demo's Failures and prints the errors.
	ShowFailures bool

	Values config.ValuesConfig

	// Logger is used for diagnostics. If nil, diagnostics are discarded.
	Logger *log.Logger
}

func (c *Config) withDefaults() Config {
	out := *c
	if out.Out == nil {
		out.Out = os.Stdout
	}
	if out.Logger == nil {
		out.Logger = log.New(io.Discard, "", 0)
	}
	if out.Values == (config.ValuesConfig{}) {
		out.Values = config.Default().Values
	}
	return out
}

// FromFile builds a runner Config from a loaded configuration file.
func FromFile(f *config.Config) Config {
	return Config{
		Headers:      f.Output.Headers,
		ShowFailures: f.Demos.ShowFailures,
		Values:       f.Values,
	}
}

// Runner executes demos one after the other.
type Runner struct {
	cfg Config
	env *Env
}

func New(cfg Config) *Runner {
	cfg = cfg.withDefaults()
	return &Runner{
		cfg: cfg,
		env: &Env{Log: console.New(cfg.Out), Values: cfg.Values},
	}
}

// Run executes the named demos, or all of them. It stops at the first demo
// that returns an error.
func (r *Runner) Run(names ...string) error {
	demos, err := Select(names...)
	if err != nil {
		return err
	}

	r.cfg.Logger.Printf("[demo] running %d demos (headers=%t, showFailures=%t)",
		len(demos), r.cfg.Headers, r.cfg.ShowFailures)

	for _, d := range demos {
		if r.cfg.Headers {
			fmt.Fprintf(r.cfg.Out, "\n━━━ %s ━━━\n", d.Title)
		}

		r.cfg.Logger.Printf("[demo %s] start", d.Name)
		if err := d.Run(r.env); err != nil {
			r.cfg.Logger.Printf("[demo %s] failed: %v", d.Name, err)
			return fmt.Errorf("demo %s: %w", d.Name, err)
		}

		if r.cfg.ShowFailures && d.Failures != nil {
			for _, ferr := range d.Failures(r.env) {
				r.env.Log.Println("✗", ferr)
			}
		}
		r.cfg.Logger.Printf("[demo %s] done", d.Name)
	}
	return nil
}
