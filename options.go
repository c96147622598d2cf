package capsim

import (
	"go.uber.org/zap"

	"github.com/YouXiangyu/cache-algorithm-simulator/internal/stats"
	"github.com/YouXiangyu/cache-algorithm-simulator/policy"
)

// PolicyOption configures policy construction in New.
type PolicyOption interface {
	applyPolicy(*policyOptions)
}

// policyOptions holds per-algorithm construction knobs.
type policyOptions struct {
	futureTrace []policy.Key
	twoQSizeIn  int
	twoQSizeOut int
}

// policyOptionFunc wraps a function to implement PolicyOption.
type policyOptionFunc func(*policyOptions)

// Compile-time check that policyOptionFunc implements PolicyOption.
var _ PolicyOption = policyOptionFunc(nil)

func (f policyOptionFunc) applyPolicy(o *policyOptions) { f(o) }

// WithFutureTrace supplies the full trace OPT needs for its lookahead.
// Other algorithms ignore it.
func WithFutureTrace(trace []policy.Key) PolicyOption {
	return policyOptionFunc(func(o *policyOptions) {
		o.futureTrace = trace
	})
}

// WithTwoQSizes sets the 2Q partition sizes, as chosen by offline tuning.
// Zero values select the 2Q defaults. Other algorithms ignore it.
func WithTwoQSizes(sizeIn, sizeOut int) PolicyOption {
	return policyOptionFunc(func(o *policyOptions) {
		o.twoQSizeIn = sizeIn
		o.twoQSizeOut = sizeOut
	})
}

// Option configures a Simulator.
type Option interface {
	apply(*options)
}

// options holds the simulator configuration.
type options struct {
	stats  stats.Collector
	logger *zap.Logger
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		stats:  stats.NewNoop(),
		logger: zap.NewNop(),
	}
}

// optionFunc wraps a function to implement Option.
type optionFunc func(*options)

// Compile-time check that optionFunc implements Option.
var _ Option = optionFunc(nil)

func (f optionFunc) apply(o *options) { f(o) }

// WithStats sets the stats collector.
// If not set, a no-op collector is used.
func WithStats(c stats.Collector) Option {
	return optionFunc(func(o *options) {
		o.stats = c
	})
}

// WithLogger sets the logger.
// If not set, a no-op logger is used.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(o *options) {
		o.logger = l
	})
}
