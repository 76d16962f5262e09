package config

import (
	"context"
	stderrors "errors"

	"github.com/kbukum/seqkit/asynciter"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observability"
	"github.com/kbukum/seqkit/validation"
)

// Settings is the configuration of an application built on seqkit. It can be
// embedded in a larger struct:
//
//	type AppConfig struct {
//	    config.Settings `yaml:",inline" mapstructure:",squash"`
//	    Source string `yaml:"source" mapstructure:"source"`
//	}
type Settings struct {
	Name        string `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Version     string `yaml:"version" mapstructure:"version"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`

	Logging logger.Config    `yaml:"logging" mapstructure:"logging"`
	Stream  asynciter.Config `yaml:"stream" mapstructure:"stream"`

	// Tracing and Metrics are optional; nil disables the exporter.
	Tracing *observability.TracerConfig `yaml:"tracing" mapstructure:"tracing"`
	Metrics *observability.MeterConfig  `yaml:"metrics" mapstructure:"metrics"`
}

// ApplyDefaults fills unset fields. Development turns on Debug, and Debug
// lowers the default log level to debug.
func (c *Settings) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	if c.Debug && c.Logging.Level == "" {
		c.Logging.Level = "debug"
	}
	c.Logging.ApplyDefaults()

	if c.Stream.Stage == "" {
		c.Stream.Stage = c.Name
	}
	c.Stream.ApplyDefaults()

	if c.Tracing != nil {
		fillService(&c.Tracing.ServiceName, &c.Tracing.ServiceVersion, &c.Tracing.Environment, c)
	}
	if c.Metrics != nil {
		fillService(&c.Metrics.ServiceName, &c.Metrics.ServiceVersion, &c.Metrics.Environment, c)
	}
}

func fillService(name, version, env *string, c *Settings) {
	if *name == "" {
		*name = c.Name
	}
	if *version == "" {
		*version = c.Version
	}
	if *env == "" {
		*env = c.Environment
	}
}

// Validate checks the settings and every nested section.
func (c *Settings) Validate() error {
	return validation.Struct(c)
}

// Runtime holds the collaborators built from Settings.
type Runtime struct {
	Logger *logger.Logger
	Deps   asynciter.Deps

	shutdown []func(context.Context) error
}

// Build creates the logger and, when configured, the tracer and meter
// providers. Callers must call Shutdown when done.
func (c *Settings) Build(ctx context.Context) (*Runtime, error) {
	log := logger.New(&c.Logging, c.Name)
	logger.Register("iterator", log.WithComponent("iterator"))
	rt := &Runtime{Logger: log, Deps: asynciter.Deps{Logger: log.WithComponent("asynciter")}}

	if c.Tracing != nil {
		tp, err := observability.InitTracer(ctx, c.Tracing)
		if err != nil {
			return nil, err
		}
		rt.shutdown = append(rt.shutdown, tp.Shutdown)
	}

	if c.Metrics != nil {
		mp, err := observability.InitMeter(ctx, c.Metrics)
		if err != nil {
			_ = rt.Shutdown(ctx)
			return nil, err
		}
		rt.shutdown = append(rt.shutdown, mp.Shutdown)

		metrics, err := observability.NewPullMetrics(mp.Meter(c.Name))
		if err != nil {
			_ = rt.Shutdown(ctx)
			return nil, err
		}
		rt.Deps.Metrics = metrics
	}

	log.Debug("runtime ready", logger.Fields(
		"environment", c.Environment,
		"tracing", c.Tracing != nil,
		"metrics", c.Metrics != nil,
	))
	return rt, nil
}

// Shutdown flushes and stops the providers started by Build, most recent
// first.
func (r *Runtime) Shutdown(ctx context.Context) error {
	var errs []error
	for i := len(r.shutdown) - 1; i >= 0; i-- {
		errs = append(errs, r.shutdown[i](ctx))
	}
	r.shutdown = nil
	return stderrors.Join(errs...)
}
