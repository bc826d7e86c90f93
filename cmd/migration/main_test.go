package main

import (
	"errors"
	"testing"

	"github.com/riskibarqy/football-emissions/internal/config"
	"github.com/riskibarqy/football-emissions/internal/platform/logging"
)

func TestParseSteps(t *testing.T) {
	tests := []struct {
		args    []string
		want    int
		wantErr bool
	}{
		{args: nil, want: 1},
		{args: []string{"3"}, want: 3},
		{args: []string{"0"}, wantErr: true},
		{args: []string{"x"}, wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseSteps(tt.args)
		if (err != nil) != tt.wantErr {
			t.Fatalf("parseSteps(%v) err=%v wantErr=%v", tt.args, err, tt.wantErr)
		}
		if !tt.wantErr && got != tt.want {
			t.Fatalf("parseSteps(%v)=%d want=%d", tt.args, got, tt.want)
		}
	}
}

func TestParseVersionAndTarget(t *testing.T) {
	if v, err := parseVersion("1760862000"); err != nil || v != 1760862000 {
		t.Fatalf("unexpected parseVersion result: %d %v", v, err)
	}
	if _, err := parseVersion("-1"); err == nil {
		t.Fatalf("expected error for negative version")
	}
	if _, err := parseTarget("abc"); err == nil {
		t.Fatalf("expected error for invalid target")
	}
}

func TestRun_RequiresDBURL(t *testing.T) {
	err := run(config.Config{}, logging.NewNop(), []string{"up"})
	var cfgErr *config.ConfigurationError
	if !errors.As(err, &cfgErr) || cfgErr.Missing[0] != "DB_URL" {
		t.Fatalf("expected DB_URL configuration error, got %v", err)
	}
}
