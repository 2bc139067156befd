// Package shell is the entry point for the REPL and the script runner of
// crotchet.
package shell

import (
	"bufio"
	"fmt"
	"os"

	"src.crotchet.dev/pkg/eval"
	"src.crotchet.dev/pkg/logutil"
	"src.crotchet.dev/pkg/prog"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the shell subprogram. It runs the script given as the only
// argument, or a REPL if there is no argument.
type Program struct{}

func (p Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if len(args) > 1 {
		return prog.BadUsage("too many arguments")
	}

	cfg, err := loadConfigFor(f)
	if err != nil {
		fmt.Fprintln(fds[2], "Warning:", err)
	}
	ev := newEvaler(fds, cfg)

	if len(args) == 1 {
		exit := script(ev, fds, args[0], &scriptCfg{Check: f.Check, JSON: f.JSON})
		return prog.Exit(exit)
	}
	if f.Check {
		return prog.BadUsage("-check requires a script")
	}

	icfg := &InteractConfig{Prompt: cfg.Prompt}
	if cfg.History {
		icfg.DB = f.DB
		if icfg.DB == "" {
			icfg.DB, err = DBPath()
			if err != nil {
				fmt.Fprintln(fds[2], "Warning:", err)
				fmt.Fprintln(fds[2], "History will not be saved.")
			}
		}
	}
	Interact(fds, ev, icfg)
	return nil
}

// Loads the config file named by -config, or the default one. Flags
// override settings from the file.
func loadConfigFor(f *prog.Flags) (Config, error) {
	path := f.Config
	if path == "" {
		var err error
		path, err = ConfigPath()
		if err != nil {
			logger.Println("no config path:", err)
			path = ""
		}
	}
	cfg, err := LoadConfig(path)
	if f.Strict {
		cfg.Strict = true
	}
	return cfg, err
}

func newEvaler(fds [3]*os.File, cfg Config) *eval.Evaler {
	ev := eval.NewEvaler()
	ev.In = bufio.NewReader(fds[0])
	ev.Out = fds[1]
	ev.Strict = cfg.Strict
	if cfg.Seed != 0 {
		ev.Seed(cfg.Seed)
	}
	return ev
}
