package logger

import (
	"bytes"
	"strings"
	"testing"
)

func initBuffer(t *testing.T, cfg Config) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	Init(cfg, &buf)
	t.Cleanup(func() { Init(NewConfig(), nil) })
	buf.Reset() // drop the init line
	return &buf
}

func TestLevelFiltering(t *testing.T) {
	buf := initBuffer(t, Config{LogLevel: "warn"})
	Infof("quiet %d", 1)
	Warnf("loud %d", 2)

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Errorf("info message logged at warn level: %s", out)
	}
	if !strings.Contains(out, "loud 2") {
		t.Errorf("warn message missing: %s", out)
	}
	if !strings.Contains(out, "logger_test.go") {
		t.Errorf("source file missing from record: %s", out)
	}
}

func TestTagFiltering(t *testing.T) {
	buf := initBuffer(t, Config{LogLevel: "debug", DisabledTags: []string{"History"}})
	DebugTagf("history", "dropped")
	DebugTagf("scene", "kept")
	Debugf("untagged")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("disabled tag logged: %s", out)
	}
	if !strings.Contains(out, "kept") || !strings.Contains(out, "untagged") {
		t.Errorf("expected messages missing: %s", out)
	}
}

func TestEnabledTagsDropUntagged(t *testing.T) {
	buf := initBuffer(t, Config{LogLevel: "debug", EnabledTags: []string{"scene"}})
	DebugTagf("scene", "kept")
	Debugf("untagged")

	out := buf.String()
	if !strings.Contains(out, "kept") || strings.Contains(out, "untagged") {
		t.Errorf("enabled tag filter output: %s", out)
	}
}

func TestPackageAndFileFiltering(t *testing.T) {
	buf := initBuffer(t, Config{LogLevel: "debug", DisabledPackages: []string{"logger"}})
	Infof("from logger package")
	if buf.Len() != 0 {
		t.Errorf("disabled package logged: %s", buf.String())
	}

	buf = initBuffer(t, Config{LogLevel: "debug", EnabledFiles: []string{"other.go"}})
	Infof("from test file")
	if buf.Len() != 0 {
		t.Errorf("file outside enabled list logged: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	for _, name := range []string{"debug", "INFO", "warning", "err"} {
		if _, ok := ParseLevel(name); !ok {
			t.Errorf("ParseLevel(%q) not recognized", name)
		}
	}
	if _, ok := ParseLevel("verbose"); ok {
		t.Error("ParseLevel(verbose) recognized")
	}
}

func TestOpenOutput(t *testing.T) {
	cfg := Config{LogFilePath: "-"}
	w, err := cfg.OpenOutput()
	if err != nil {
		t.Fatal(err)
	}
	w.Close()

	cfg.LogFilePath = t.TempDir() + "/sketch.log"
	w, err = cfg.OpenOutput()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("line\n")); err != nil {
		t.Error(err)
	}
	w.Close()
}
