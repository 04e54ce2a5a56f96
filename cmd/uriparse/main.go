// Command uriparse splits URIs into components, optionally rewrites some of them
// and prints the rebuilt strings.
//
// Usage:
//
//	uriparse [flags] URI...
//
// Each URI is printed on its own line after the -set and -remove operations
// were applied in command line order. Parse failures are logged and make the
// command exit with status 1.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/grammar"
	"github.com/ghettovoice/gouri/internal/ioutil"
	"github.com/ghettovoice/gouri/internal/log"
	"github.com/ghettovoice/gouri/uri"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type operation struct {
	comp   uri.Component
	value  string
	remove bool
}

func (op operation) apply(u *uri.URI) {
	if op.remove {
		u.Remove(op.comp)
		return
	}
	u.Set(op.comp, op.value)
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("uriparse", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var ops []operation
	cfgPath := fs.String("config", "", "path to a TOML config file")
	logger := fs.String("logger", "", "logger: default|dev|noop")
	canonical := fs.Bool("canonical", false, "insert '/' between the authority and the rest")
	debug := fs.Bool("debug", false, "print every slot after the URI")
	inspect := fs.Bool("inspect", false, "print the host classification")
	graph := fs.Bool("graph", false, "print the scanner state graph in DOT format and exit")
	fs.Func("set", "set a component, `name=value`", func(s string) error {
		name, val, ok := strings.Cut(s, "=")
		if !ok {
			return errtrace.Wrap(errorutil.NewInvalidArgumentError("expected name=value, got %q", s))
		}
		c, err := parseRealComponent(name)
		if err != nil {
			return errtrace.Wrap(err)
		}
		ops = append(ops, operation{comp: c, value: val})
		return nil
	})
	fs.Func("remove", "remove a component by `name`", func(s string) error {
		c, err := parseRealComponent(s)
		if err != nil {
			return errtrace.Wrap(err)
		}
		ops = append(ops, operation{comp: c, remove: true})
		return nil
	})
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := defaultConfig()
	if *cfgPath != "" {
		var err error
		if cfg, err = loadConfig(*cfgPath, cfg); err != nil {
			fmt.Fprintln(stderr, "uriparse:", err)
			return 2
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "logger":
			cfg.Logger = log.Kind(*logger)
		case "canonical":
			cfg.Canonical = *canonical
		case "debug":
			cfg.Debug = *debug
		case "inspect":
			cfg.Inspect = *inspect
		}
	})

	lg, err := log.New(cfg.Logger, stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, "uriparse:", err)
		return 2
	}

	if *graph {
		fmt.Fprintln(stdout, grammar.NewScanMachine().ToGraph())
		return 0
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	opts := &uri.RenderOptions{Canonical: cfg.Canonical}
	code := 0
	for _, in := range fs.Args() {
		u, err := uri.Parse(in)
		if err != nil {
			lg.Error("failed to parse URI", slog.String("input", in), slog.Any("error", err))
			code = 1
			continue
		}
		lg.Debug("URI parsed", slog.Any("uri", u))

		for _, op := range ops {
			op.apply(u)
		}

		if err := output(stdout, u, opts, cfg); err != nil {
			lg.Error("failed to print URI", slog.String("input", in), slog.Any("error", err))
			if errorutil.IsInvalidArgumentErr(err) {
				code = 1
				continue
			}
			return 1
		}
	}
	return code
}

func output(w io.Writer, u *uri.URI, opts *uri.RenderOptions, cfg config) error {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(u.RenderTo(w, opts)) })
	cw.WriteString("\n")
	if cfg.Inspect {
		if host, ok := u.Get(uri.Host); ok {
			cw.Fprintf("host: %s (%s)\n", host, describeHost(host))
		} else {
			cw.WriteString("host: absent\n")
		}
	}
	if cfg.Debug {
		cw.Call(u.PrintDebug)
	}
	_, err := cw.Result()
	return errtrace.Wrap(err)
}

func parseRealComponent(name string) (uri.Component, error) {
	c, err := uri.ParseComponent(name)
	if err != nil {
		return 0, errtrace.Wrap(err)
	}
	if !c.IsValid() {
		return 0, errtrace.Wrap(errorutil.NewInvalidArgumentError("component %s can not be changed", c))
	}
	return c, nil
}
