// Package capsimfx provides an fx module for a configured suite runner.
package capsimfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/YouXiangyu/cache-algorithm-simulator/benchmark/suite"
	"github.com/YouXiangyu/cache-algorithm-simulator/internal/stats"
	"github.com/YouXiangyu/cache-algorithm-simulator/internal/stats/logger"
)

// Config holds configuration for the suite runner.
type Config struct {
	// Capacity is the cache size in pages. Default is suite.SuiteCapacity.
	Capacity int
}

// Module provides a suite.Runner with a logger-backed stats collector.
// Requires a *zap.Logger to be provided.
var Module = fx.Module("capsim",
	fx.Provide(
		newStatsCollector,
		newRunner,
	),
)

func newStatsCollector(log *zap.Logger) stats.Collector {
	return logger.New(log.Named("capsim.stats"))
}

// Params holds dependencies for creating the runner.
type Params struct {
	fx.In

	Config    Config
	Logger    *zap.Logger
	Collector stats.Collector
}

// Result holds the provided runner.
type Result struct {
	fx.Out

	Runner *suite.Runner
}

func newRunner(p Params) (Result, error) {
	capacity := p.Config.Capacity
	if capacity <= 0 {
		capacity = suite.SuiteCapacity
	}

	runner, err := suite.NewRunner(capacity,
		suite.WithLogger(p.Logger.Named("capsim")),
		suite.WithStats(p.Collector),
	)
	if err != nil {
		return Result{}, err
	}
	return Result{Runner: runner}, nil
}
