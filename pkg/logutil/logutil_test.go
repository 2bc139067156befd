package logutil

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"src.crotchet.dev/pkg/must"
)

func TestSetOutputFile(t *testing.T) {
	t.Cleanup(func() { SetOutput(io.Discard) })
	logger := GetLogger("[test] ")
	logger.Println("dropped")

	name := filepath.Join(t.TempDir(), "log")
	if err := SetOutputFile(name); err != nil {
		t.Fatal(err)
	}
	logger.Println("kept")
	SetOutputFile("")

	content := must.ReadFileString(name)
	if !strings.Contains(content, "[test] ") || !strings.Contains(content, "kept") {
		t.Errorf("log file has %q, want prefixed message", content)
	}
	if strings.Contains(content, "dropped") {
		t.Errorf("log file has %q, want no message logged before redirection", content)
	}
}

func TestSetOutputFile_BadPath(t *testing.T) {
	if err := SetOutputFile("/a/bad/path/log"); err == nil {
		t.Errorf("SetOutputFile with bad path returned nil error")
	}
}
