package log_test

import (
	"context"
	"testing"

	"user-management-backend/pkg/log"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name string
		cfg  log.ZapConfig
	}{
		{"defaults", log.ZapConfig{}},
		{"production json", log.ZapConfig{Level: "warn", Mode: "production", Encoding: "json"}},
		{"development console color", log.ZapConfig{Level: "debug", Mode: "development", Encoding: "console", ColorEnabled: true}},
		{"bad level falls back", log.ZapConfig{Level: "loud"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := log.Init(tc.cfg)
			if l == nil {
				t.Fatal("Init returned nil logger")
			}
			// Must not panic.
			ctx := context.Background()
			l.Debugf(ctx, "debug %s", "message")
			l.Infof(ctx, "info %s", "message")
			l.Warnf(ctx, "warn %s", "message")
			l.Errorf(ctx, "error %s", "message")
		})
	}
}
