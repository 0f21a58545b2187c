package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/grafana/pyroscope-go"
	"github.com/shopspring/decimal"
	"github.com/yanun0323/logs"
	"github.com/yanun0323/pkg/sys"

	"main/internal/dispatch"
	"main/internal/exchange"
	"main/internal/model"
	"main/internal/obs"
	"main/internal/order"
	"main/internal/strategy"
	"main/internal/venue"
)

func main() {
	if err := run(); err != nil {
		logs.Errorf("bot exited, err: %+v", err)
		os.Exit(1)
	}
}

func run() error {
	strategyName := flag.String("strategy", "momentum", "Trading strategy (momentum, noop)")
	fraction := flag.Float64("fraction", 0.5, "Stack fraction committed per trade")
	pyroscopeAddr := flag.String("pyroscope", "", "Pyroscope server address (empty=disabled)")
	flag.Parse()

	if *pyroscopeAddr != "" {
		profiler, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: "trading/bot",
			ServerAddress:   *pyroscopeAddr,
			Tags: map[string]string{
				"env": "local",
			},
			Logger: emptyLogger{},
			ProfileTypes: []pyroscope.ProfileType{
				pyroscope.ProfileCPU,
				pyroscope.ProfileAllocObjects,
				pyroscope.ProfileAllocSpace,
				pyroscope.ProfileInuseObjects,
				pyroscope.ProfileInuseSpace,
			},
		})
		if err != nil {
			return err
		}
		defer func() {
			_ = profiler.Stop()
		}()
	}

	bot, err := buildStrategy(*strategyName, *fraction)
	if err != nil {
		return err
	}

	store := exchange.NewCandleStore()
	ledger := exchange.NewLedger()
	registry := exchange.NewRegistry()
	engine := order.NewEngine(store, ledger, registry)
	settings := model.NewGameSettings()
	metrics := obs.NewMetrics()
	engine.SetMetrics(metrics)
	v := venue.New(store, ledger, registry, engine, settings)

	d := dispatch.New(bot, v, store, ledger, registry, engine, settings, metrics)

	logs.Infof("bot started, strategy: %s", *strategyName)

	done := make(chan error, 1)
	go func() {
		done <- d.Run(os.Stdin)
	}()

	select {
	case err := <-done:
		if err != nil {
			return err
		}
	case <-sys.Shutdown():
		logs.Info("shutdown signal received")
	}

	snapshot := metrics.Snapshot()
	logs.Infof("session finished, lines: %d, candles: %d, orders: %d accepted / %d rejected",
		snapshot.LinesHandled, snapshot.CandlesIngested, snapshot.OrdersAccepted, snapshot.OrdersRejected)
	return nil
}

func buildStrategy(name string, fraction float64) (strategy.Strategy, error) {
	switch name {
	case "momentum":
		return strategy.NewMomentum(decimal.NewFromFloat(fraction)), nil
	case "noop":
		return strategy.NewNoop(), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}

type emptyLogger struct{}

func (emptyLogger) Infof(_ string, _ ...interface{})  {}
func (emptyLogger) Debugf(_ string, _ ...interface{}) {}
func (emptyLogger) Errorf(_ string, _ ...interface{}) {}
