package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempDump(t *testing.T, lines ...string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "dump.jsonl")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunBadFlagUnrecognizedOption(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-bogus", "dump.jsonl"}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
	if !strings.Contains(stderr.String(), "bad flag") {
		t.Errorf("expected stderr to mention the bad flag sentinel, got: %s", stderr.String())
	}
}

func TestRunBadFlagWrongPositionalCount(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
	if !strings.Contains(stderr.String(), "bad flag") {
		t.Errorf("expected stderr to mention the bad flag sentinel, got: %s", stderr.String())
	}

	stdout.Reset()
	stderr.Reset()
	code = run([]string{"a.jsonl", "b.jsonl"}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("expected exit code 2 for too many positional args, got %d", code)
	}
}

func TestRunBadFlagNegativeTopN(t *testing.T) {
	path := writeTempDump(t, `{"type":"ROOT","root":"vm","references":[]}`)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-n", "-1", path}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("expected exit code 2 for out-of-range -n, got %d", code)
	}
	if !strings.Contains(stderr.String(), "bad flag") {
		t.Errorf("expected stderr to mention the bad flag sentinel, got: %s", stderr.String())
	}
}

func TestRunHelpReturnsZero(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-h"}, &stdout, &stderr)
	if code != 0 {
		t.Errorf("expected -h to exit 0, got %d", code)
	}
}

func TestRunSucceedsWithValidTopN(t *testing.T) {
	path := writeTempDump(t,
		`{"type":"ROOT","root":"vm","references":["0x1"]}`,
		`{"address":"0x1","type":"OBJECT","memsize":10}`,
	)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-n", "5", path}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr: %s)", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Retainers") {
		t.Errorf("expected a text report on stdout, got: %s", stdout.String())
	}
}
