package shell

import (
	"path/filepath"
	"testing"

	"src.crotchet.dev/pkg/must"
	. "src.crotchet.dev/pkg/prog/progtest"
	"src.crotchet.dev/pkg/testutil"
)

func TestShell_TooManyArguments(t *testing.T) {
	setupCleanHomePaths(t)
	Test(t, &Program{},
		ThatCrotchet("a.crl", "b.crl").
			ExitsWith(2).
			WritesStderrContaining("too many arguments"),
	)
}

func TestShell_CheckWithoutScript(t *testing.T) {
	setupCleanHomePaths(t)
	Test(t, &Program{},
		ThatCrotchet("-check").
			ExitsWith(2).
			WritesStderrContaining("-check requires a script"),
	)
}

func TestShell_StrictFromFlag(t *testing.T) {
	setupCleanHomePaths(t)
	Test(t, &Program{},
		ThatCrotchet("-strict").
			WithStdin("[set x 1]\n").
			WritesStdout(exitMessage).
			WritesStderr("; error: unbound symbol: x\n"),
	)
}

func TestShell_ConfigFile(t *testing.T) {
	setupCleanHomePaths(t)
	dir := testutil.InTempDir(t)
	must.WriteFile("strict.yaml", "strict: true\n")
	must.WriteFile("bad.yaml", "strict: [\n")

	Test(t, &Program{},
		ThatCrotchet("-config", filepath.Join(dir, "strict.yaml")).
			WithStdin("[set x 1]\n").
			WritesStdout(exitMessage).
			WritesStderr("; error: unbound symbol: x\n"),
		ThatCrotchet("-config", filepath.Join(dir, "bad.yaml")).
			WithStdin("[set x 1]\n").
			WritesStdout("; 1\n"+exitMessage).
			WritesStderrContaining("Warning: cannot parse config file"),
	)
}

func TestShell_ConfigPathFromEnv(t *testing.T) {
	configHome, _ := setupCleanHomePaths(t)
	dir := filepath.Join(configHome, "crotchet")
	must.WriteFile(filepath.Join(dir, "config.yaml"), "strict: true\n")

	Test(t, &Program{},
		ThatCrotchet().
			WithStdin("[set x 1]\n").
			WritesStdout(exitMessage).
			WritesStderr("; error: unbound symbol: x\n"),
	)
}

// Points the config and state directories to fresh temporary directories, and
// returns them.
func setupCleanHomePaths(t *testing.T) (configHome, stateHome string) {
	configHome = testutil.TempDir(t)
	stateHome = testutil.TempDir(t)
	testutil.Setenv(t, "XDG_CONFIG_HOME", configHome)
	testutil.Setenv(t, "XDG_STATE_HOME", stateHome)
	return configHome, stateHome
}
