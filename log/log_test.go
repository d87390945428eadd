package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestModuleLoggerTagsRecords(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithHandler(slog.NewJSONHandler(&buf, nil)).Module("nodecache")
	l.Info("cache miss", "path_len", 4)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatal(err)
	}
	if rec["module"] != "nodecache" {
		t.Fatalf("module attr = %v, want nodecache", rec["module"])
	}
	if rec["msg"] != "cache miss" {
		t.Fatalf("msg = %v", rec["msg"])
	}
	if rec["path_len"] != float64(4) {
		t.Fatalf("path_len = %v", rec["path_len"])
	}
}

func TestWithAddsContext(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithHandler(slog.NewJSONHandler(&buf, nil)).With("run", 7)
	l.Warn("eviction")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatal(err)
	}
	if rec["run"] != float64(7) {
		t.Fatalf("run attr = %v, want 7", rec["run"])
	}
}

func TestSetDefault(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	var buf bytes.Buffer
	l := NewWithHandler(slog.NewJSONHandler(&buf, nil))
	SetDefault(l)
	if Default() != l {
		t.Fatalf("Default did not return the logger just set")
	}
	SetDefault(nil)
	if Default() != l {
		t.Fatalf("SetDefault(nil) should leave the default unchanged")
	}
}
