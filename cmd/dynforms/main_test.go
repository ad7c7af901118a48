package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const definitions = `{
  "forms": {
    "settings": {
      "type": "custom_form",
      "title": "Settings",
      "fields": [
        {"type": "toggle", "id": "music", "text": "Music"},
        {"type": "slider", "id": "volume", "text": "Volume", "min": 0, "max": 10}
      ]
    },
    "confirm": {"type": "modal", "title": "Sure?", "button1": "Yes", "button2": "No"}
  }
}`

func writeDefinitions(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "forms.json"), []byte(definitions), 0o600); err != nil {
		t.Fatalf("write definitions: %v", err)
	}
	return dir
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_List(t *testing.T) {
	dir := writeDefinitions(t)
	code, stdout, stderr := runCLI(t, "-dir", dir, "-list")
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}
	if stdout != "confirm\nsettings\n" {
		t.Fatalf("unexpected listing %q", stdout)
	}
}

func TestRun_RenderText(t *testing.T) {
	dir := writeDefinitions(t)
	code, stdout, stderr := runCLI(t, "-dir", dir, "-form", "settings", "-renderer", "text")
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}
	if !strings.Contains(stdout, `[1] slider "Volume" -> volume (0..10)`) {
		t.Fatalf("unexpected preview:\n%s", stdout)
	}
}

func TestRun_DecodeResponse(t *testing.T) {
	dir := writeDefinitions(t)
	code, stdout, stderr := runCLI(t, "-dir", dir, "-form", "settings", "-renderer", "payload", "-response", "[true, 7]")
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}
	if !strings.Contains(stdout, `cli responded: {"music":true,"volume":7}`) {
		t.Fatalf("unexpected output:\n%s", stdout)
	}
}

func TestRun_CloseResponse(t *testing.T) {
	dir := writeDefinitions(t)
	code, stdout, stderr := runCLI(t, "-dir", dir, "-form", "confirm", "-response", "null")
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}
	if !strings.Contains(stdout, "cli closed the dialog") {
		t.Fatalf("unexpected output:\n%s", stdout)
	}
}

func TestRun_RejectedResponse(t *testing.T) {
	dir := writeDefinitions(t)
	code, _, stderr := runCLI(t, "-dir", dir, "-form", "settings", "-response", "[true, 15]")
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr, "! Invalid value (got integer)") {
		t.Fatalf("expected annotated preview, got:\n%s", stderr)
	}
}

func TestRun_Usage(t *testing.T) {
	dir := writeDefinitions(t)
	if code, _, _ := runCLI(t, "-dir", dir); code != 2 {
		t.Fatalf("expected usage exit code, got %d", code)
	}
	if code, _, _ := runCLI(t, "-dir", dir, "-form", "missing"); code != 1 {
		t.Fatalf("expected failure for unknown form, got %d", code)
	}
}

func TestRun_EmptyRendererUsesPayload(t *testing.T) {
	dir := writeDefinitions(t)
	code, stdout, stderr := runCLI(t, "-dir", dir, "-form", "settings", "-renderer", "")
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}
	if !strings.Contains(stdout, `"custom_form"`) {
		t.Fatalf("expected payload output, got:\n%s", stdout)
	}
}

func TestRun_UnknownRenderer(t *testing.T) {
	dir := writeDefinitions(t)
	code, _, stderr := runCLI(t, "-dir", dir, "-form", "settings", "-renderer", "html")
	if code != 1 {
		t.Fatalf("expected failure for unknown renderer, got %d", code)
	}
	if !strings.Contains(stderr, "html") {
		t.Fatalf("expected renderer name in error, got %q", stderr)
	}
}
