package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestRun_Help(t *testing.T) {
	t.Setenv("LEARNHUB_STATE_BACKEND", "memory")

	var out bytes.Buffer
	if err := run(context.Background(), nil, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(out.String(), "Usage: learnhub") {
		t.Errorf("output = %q, want usage text", out.String())
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	t.Setenv("LEARNHUB_STATE_BACKEND", "memory")

	var out bytes.Buffer
	err := run(context.Background(), []string{"frobnicate"}, &out)
	if err == nil || !strings.Contains(err.Error(), "frobnicate") {
		t.Errorf("run() error = %v, want unknown command", err)
	}
}

func TestRun_RejectsBadBackend(t *testing.T) {
	t.Setenv("LEARNHUB_STATE_BACKEND", "floppy")

	var out bytes.Buffer
	if err := run(context.Background(), []string{"whoami"}, &out); err == nil {
		t.Error("run() accepted an unknown state backend")
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		arg     string
		want    int64
		wantErr bool
	}{
		{"42", 42, false},
		{"1", 1, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := parseID(tt.arg, "course")
		if (err != nil) != tt.wantErr {
			t.Errorf("parseID(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("parseID(%q) = %d, want %d", tt.arg, got, tt.want)
		}
	}
}

func TestStars(t *testing.T) {
	tests := []struct {
		rating int
		want   string
	}{
		{0, "☆☆☆☆☆"},
		{3, "★★★☆☆"},
		{5, "★★★★★"},
		{7, "★★★★★"},
		{-1, "☆☆☆☆☆"},
	}
	for _, tt := range tests {
		if got := stars(tt.rating); got != tt.want {
			t.Errorf("stars(%d) = %q, want %q", tt.rating, got, tt.want)
		}
	}
}
