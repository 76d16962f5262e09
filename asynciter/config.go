package asynciter

import (
	"time"

	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observability"
	"github.com/kbukum/seqkit/resilience"
	"github.com/kbukum/seqkit/validation"
)

// Config selects the supporting stages Instrument wires around a source.
type Config struct {
	// Stage names the sequence in logs, spans and metrics.
	Stage string `mapstructure:"stage" yaml:"stage"`
	// BufferSize > 0 adds a prefetch stage of that size.
	BufferSize   int           `mapstructure:"buffer_size" yaml:"buffer_size" validate:"gte=0,lte=65536"`
	BatchSize    int           `mapstructure:"batch_size" yaml:"batch_size" validate:"gte=0"`
	BatchTimeout time.Duration `mapstructure:"batch_timeout" yaml:"batch_timeout" validate:"gte=0"`
	Logging      bool          `mapstructure:"logging" yaml:"logging"`
	Tracing      bool          `mapstructure:"tracing" yaml:"tracing"`
	Metrics      bool          `mapstructure:"metrics" yaml:"metrics"`

	// RateLimit is optional; nil leaves pulls unthrottled.
	RateLimit *resilience.RateLimiterConfig `mapstructure:"rate_limit" yaml:"rate_limit"`
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Stage == "" {
		c.Stage = "stream"
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	return validation.Struct(c)
}

// Deps carries the collaborators instrumentation needs. A nil Logger falls
// back to the registered "asynciter" logger; a nil Metrics disables metrics.
type Deps struct {
	Logger  *logger.Logger
	Metrics *observability.PullMetrics
}

// Instrument wraps src with the middleware and buffering selected by cfg.
// Middleware order, outermost first, is logging, tracing, metrics, rate
// limit, so time spent waiting for a token shows up in pull durations. The
// buffer sits outside all of them so instrumented pulls run on the prefetch
// goroutine.
func Instrument[T any](src Source[T], cfg Config, deps Deps) (*Iterator[T], error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var mws []Middleware[T]
	if cfg.Logging {
		log := deps.Logger
		if log == nil {
			log = logger.Get("asynciter")
		}
		mws = append(mws, WithLogging[T](log, cfg.Stage))
	}
	if cfg.Tracing {
		mws = append(mws, WithTracing[T](cfg.Stage))
	}
	if cfg.Metrics && deps.Metrics != nil {
		mws = append(mws, WithMetrics[T](deps.Metrics, cfg.Stage))
	}
	if cfg.RateLimit != nil {
		mws = append(mws, WithRateLimit[T](resilience.NewRateLimiter(*cfg.RateLimit)))
	}

	it := Use(src, mws...)
	if cfg.BufferSize > 0 {
		it = Buffer[T](it, cfg.BufferSize)
	}
	return it, nil
}

// InstrumentBatches is Instrument followed by Batch using cfg's batch settings.
func InstrumentBatches[T any](src Source[T], cfg Config, deps Deps) (*Iterator[[]T], error) {
	it, err := Instrument(src, cfg, deps)
	if err != nil {
		return nil, err
	}
	return Batch[T](it, cfg.BatchSize, cfg.BatchTimeout), nil
}
