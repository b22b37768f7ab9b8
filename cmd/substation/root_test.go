package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestVersionCommand(t *testing.T) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}
	if !strings.HasPrefix(out.String(), "substation ") {
		t.Fatalf("unexpected version output: %q", out.String())
	}
}

func TestShouldSkipConfigWalksParents(t *testing.T) {
	root := newRootCommand()
	configCmd, _, err := root.Find([]string{"config", "init"})
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if !shouldSkipConfig(configCmd) {
		t.Fatal("config init should inherit skipConfigLoad from its parent")
	}

	queueCmd, _, err := root.Find([]string{"queue", "list"})
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if shouldSkipConfig(queueCmd) {
		t.Fatal("queue list should load config")
	}
}

func TestRenderTable(t *testing.T) {
	output := renderTable(
		[]string{"ID", "Status"},
		[][]string{{"1", "pending"}, {"2", "completed"}},
		[]columnAlignment{alignRight, alignLeft},
	)
	// StyleRounded renders headers in upper case.
	for _, want := range []string{"ID", "STATUS", "pending", "completed"} {
		if !strings.Contains(output, want) {
			t.Fatalf("table missing %q:\n%s", want, output)
		}
	}
	if renderTable(nil, nil, nil) != "" {
		t.Fatal("expected empty output for empty headers")
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(&bytes.Buffer{}) {
		t.Fatal("buffers should not be colorized")
	}
}
