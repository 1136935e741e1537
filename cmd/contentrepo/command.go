package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/mitchellh/cli"

	"github.com/jsamuelsen/go-contentrepo/internal/domain"
	"github.com/jsamuelsen/go-contentrepo/internal/jsonvalue"
	"github.com/jsamuelsen/go-contentrepo/internal/platform/config"
)

// globalOptions are the flags every repository command accepts.
type globalOptions struct {
	configDir string
	profile   string
	baseURL   string
	bucket    string
	metrics   bool
}

// apply lets explicit flags override loaded configuration.
func (o *globalOptions) apply(cfg *config.Config) {
	if o.baseURL != "" {
		cfg.Repository.BaseURL = o.baseURL
	}

	if o.bucket != "" {
		cfg.Repository.Bucket = o.bucket
	}
}

// baseCommand holds what every repository command shares.
type baseCommand struct {
	UI cli.Ui

	opts globalOptions
}

// flagSet returns a flag set carrying the global flags.
func (c *baseCommand) flagSet(name string) *flag.FlagSet {
	f := flag.NewFlagSet(name, flag.ContinueOnError)
	f.SetOutput(new(strings.Builder))

	profile := os.Getenv("CONTENTREPO_PROFILE")
	if profile == "" {
		profile = "local"
	}

	f.StringVar(&c.opts.configDir, "config-dir", config.DefaultConfigDir, "Directory holding base.yaml and profile files")
	f.StringVar(&c.opts.profile, "profile", profile, "[CONTENTREPO_PROFILE] Configuration profile")
	f.StringVar(&c.opts.baseURL, "base-url", "", "Repository base URL, overriding configuration")
	f.StringVar(&c.opts.bucket, "bucket", "", "Bucket name, overriding configuration")
	f.BoolVar(&c.opts.metrics, "metrics", false, "Print client failure counters to stderr on exit")

	return f
}

// globalHelp documents the flags added by flagSet.
const globalHelp = `
Global Options:

  -config-dir=<dir>   Directory holding base.yaml and profile files (default "configs")
  -profile=<name>     Configuration profile, CONTENTREPO_PROFILE (default "local")
  -base-url=<url>     Repository base URL, overriding configuration
  -bucket=<name>      Bucket name, overriding configuration
  -metrics            Print client failure counters to stderr on exit`

// parse parses args and reports flag errors through the UI.
func (c *baseCommand) parse(f *flag.FlagSet, args []string) bool {
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return false
	}

	return true
}

// run wires the runtime, runs fn under a signal-aware context and maps the
// result to an exit code.
func (c *baseCommand) run(fn func(ctx context.Context, rt *runtime) error) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := newRuntime(ctx, &c.opts)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	defer rt.Close(context.WithoutCancel(ctx))

	err = fn(ctx, rt)

	if c.opts.metrics {
		c.printMetrics(rt)
	}

	if err != nil {
		c.UI.Error(errorMessage(err))
		return 1
	}

	return 0
}

// output prints v as indented JSON.
func (c *baseCommand) output(v jsonvalue.Value) error {
	data, err := v.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}

	c.UI.Output(indentJSON(data))

	return nil
}

func (c *baseCommand) printMetrics(rt *runtime) {
	families, err := rt.metrics.Gather()
	if err != nil {
		c.UI.Error(fmt.Sprintf("gathering metrics: %v", err))
		return
	}

	var lines []string

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", l.GetName(), l.GetValue()))
			}

			lines = append(lines, fmt.Sprintf("%s{%s} %g", mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue()))
		}
	}

	sort.Strings(lines)

	for _, line := range lines {
		c.UI.Error(line)
	}
}

// errorMessage prefers the repository error message over any wrapping.
func errorMessage(err error) string {
	var ce *domain.ClientError
	if errors.As(err, &ce) {
		return ce.Message()
	}

	return err.Error()
}
