package rbtreecmd

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"gfx.cafe/gfx/rbtree/lib/config"
	"gfx.cafe/gfx/rbtree/lib/instrumentation/prom"
	"gfx.cafe/gfx/rbtree/lib/instrumentation/zlog"
	"gfx.cafe/gfx/rbtree/lib/rbtree"
)

// loadConfig reads --config if it was given and applies flag overrides.
func loadConfig(flags Flags) (*config.Global, error) {
	g := new(config.Global)
	if path := flags.String("config"); path != "" {
		var err error
		if g, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	if level := flags.String("log-level"); level != "" {
		g.Log.Level = level
	}
	if flags.Bool("debug") {
		g.Log.Development = true
		if g.Log.Level == "" {
			g.Log.Level = "debug"
		}
	}
	if listen := flags.String("metrics-listen"); listen != "" {
		g.Metrics.Listen = listen
	}
	return g, nil
}

func newLogger(c config.Log) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if c.Development {
		cfg = zap.NewDevelopmentConfig()
	}
	if c.Level != "" {
		level, err := zap.ParseAtomicLevel(c.Level)
		if err != nil {
			return nil, err
		}
		cfg.Level = level
	}
	return cfg.Build()
}

// serveMetrics exposes /metrics until the returned function is called.
func serveMetrics(listen string, log *zap.Logger) func() {
	if listen == "" {
		return func() {}
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{
		Addr:              listen,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn("metrics listener failed", zap.String("listen", listen), zap.Error(err))
		}
	}()
	log.Info("serving metrics", zap.String("listen", listen))

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	}
}

// observer reports the events of the named tree to prometheus and, at debug
// level, to the log.
func observer(name string, log *zap.Logger, structural bool) rbtree.Observer {
	o := zlog.NewObserver(log, name)
	o.Structural = structural
	return rbtree.Observers{prom.NewObserver(name), o}
}
