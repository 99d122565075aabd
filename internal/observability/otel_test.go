package observability

import (
	"context"
	"testing"
)

func TestParseHeaders(t *testing.T) {
	cases := []struct {
		raw  string
		want map[string]string
	}{
		{"", nil},
		{"api-key=abc", map[string]string{"api-key": "abc"}},
		{" a = 1 , broken, b=2,c= ", map[string]string{"a": "1", "b": "2"}},
	}
	for _, tc := range cases {
		got := parseHeaders(tc.raw)
		if len(got) != len(tc.want) {
			t.Fatalf("parseHeaders(%q) = %v, want %v", tc.raw, got, tc.want)
		}
		for k, v := range tc.want {
			if got[k] != v {
				t.Fatalf("parseHeaders(%q)[%q] = %q, want %q", tc.raw, k, got[k], v)
			}
		}
	}
}

func TestOtelConfigFromEnv(t *testing.T) {
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4318")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "x-token=abc")
	t.Setenv("OTEL_SAMPLER_RATIO", "4")

	cfg := OtelConfigFromEnv("stainsolver", "test", "v1")
	if !cfg.Enabled || cfg.Endpoint != "collector:4318" || cfg.Headers["x-token"] != "abc" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.SampleRatio != 1 {
		t.Fatalf("expected ratio clamped to 1, got %v", cfg.SampleRatio)
	}

	t.Setenv("OTEL_SAMPLER_RATIO", "-1")
	if got := OtelConfigFromEnv("", "", "").SampleRatio; got != 0 {
		t.Fatalf("expected ratio clamped to 0, got %v", got)
	}
}

func TestInitOTelDisabledIsNoop(t *testing.T) {
	shutdown := InitOTel(context.Background(), nil, OtelConfig{Enabled: false})
	if shutdown == nil {
		t.Fatalf("expected a shutdown func")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("noop shutdown: %v", err)
	}
}
