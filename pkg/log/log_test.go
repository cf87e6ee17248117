package log_test

import (
	"context"
	"testing"

	"delete-on-check/pkg/log"
)

func TestTraceID(t *testing.T) {
	t.Run("explicit id", func(t *testing.T) {
		ctx := log.WithTraceID(context.Background(), "abc")
		if got := log.TraceID(ctx); got != "abc" {
			t.Errorf("expected abc, got %q", got)
		}
	})

	t.Run("generated id", func(t *testing.T) {
		ctx := log.WithTraceID(context.Background(), "")
		if got := log.TraceID(ctx); len(got) != 36 {
			t.Errorf("expected uuid, got %q", got)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		if got := log.TraceID(context.Background()); got != "" {
			t.Errorf("expected empty, got %q", got)
		}
	})
}

func TestInit(t *testing.T) {
	cfgs := []log.ZapConfig{
		{Level: "debug", Mode: "development", Encoding: "console", ColorEnabled: true},
		{Level: "info", Mode: "production", Encoding: "json"},
		{Level: "bogus", Mode: "production", Encoding: "console"},
	}
	for _, cfg := range cfgs {
		l := log.Init(cfg)
		if l == nil {
			t.Fatalf("Init(%+v) returned nil", cfg)
		}
		l.Debugf(log.WithTraceID(context.Background(), "t"), "hello %s", "world")
	}

	log.NewNop().Info(context.Background(), "discarded")
}
