package shell

import (
	"path/filepath"
	"testing"

	"src.crotchet.dev/pkg/must"
	"src.crotchet.dev/pkg/testutil"
	"src.crotchet.dev/pkg/tt"
)

func TestLoadConfig(t *testing.T) {
	dir := testutil.TempDir(t)
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		must.WriteFile(path, content)
		return path
	}
	full := write("full.yaml", "prompt: \"> \"\nstrict: true\nhistory: false\nseed: 42\n")
	partial := write("partial.yaml", "strict: true\n")
	empty := write("empty.yaml", "")

	tt.Test(t, tt.Fn("LoadConfig", LoadConfig), tt.Table{
		tt.Args("").Rets(DefaultConfig(), error(nil)),
		tt.Args(filepath.Join(dir, "missing.yaml")).Rets(DefaultConfig(), error(nil)),
		tt.Args(empty).Rets(DefaultConfig(), error(nil)),
		tt.Args(full).Rets(Config{Prompt: "> ", Strict: true, History: false, Seed: 42}, error(nil)),
		tt.Args(partial).Rets(Config{Prompt: "crotchet> ", Strict: true, History: true}, error(nil)),
	})
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := testutil.TempDir(t)
	for name, content := range map[string]string{
		"malformed.yaml": "strict: [\n",
		"unknown.yaml":   "colour: red\n",
		"wrongtype.yaml": "seed: many\n",
	} {
		path := filepath.Join(dir, name)
		must.WriteFile(path, content)
		cfg, err := LoadConfig(path)
		if err == nil {
			t.Errorf("LoadConfig(%s) returns no error", name)
		}
		if cfg != DefaultConfig() {
			t.Errorf("LoadConfig(%s) returns %v, want default", name, cfg)
		}
	}
}

func TestLoadConfig_Unreadable(t *testing.T) {
	// A directory exists but cannot be read as a file.
	dir := testutil.TempDir(t)
	cfg, err := LoadConfig(dir)
	if err == nil {
		t.Errorf("LoadConfig of a directory returns no error")
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig of a directory returns %v, want default", cfg)
	}
}
