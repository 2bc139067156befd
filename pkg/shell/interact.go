package shell

import (
	"fmt"
	"io"
	"os"
	"strings"

	"src.crotchet.dev/pkg/buildinfo"
	"src.crotchet.dev/pkg/eval"
	"src.crotchet.dev/pkg/eval/vals"
	"src.crotchet.dev/pkg/parse"
	"src.crotchet.dev/pkg/store"
	"src.crotchet.dev/pkg/sys"
)

// InteractConfig keeps configuration for the interactive mode.
type InteractConfig struct {
	// Prompt shown before each line when stdin is a terminal.
	Prompt string
	// Path of the history database. History is not kept if empty.
	DB string
}

const continuationPrompt = "... "

// Interact runs an interactive session. Each complete line is evaluated in
// the global frame of ev; a line that ends inside a bracket is continued on
// the next line.
func Interact(fds [3]*os.File, ev *eval.Evaler, cfg *InteractConfig) {
	tty := sys.IsATTY(fds[0])
	logger.Printf("starting REPL session, tty: %v", tty)
	defer logger.Println("REPL session ended")

	var history []string
	st := openStore(cfg.DB, fds[2])
	if st != nil {
		defer st.Close()
		history = loadHistory(st)
	}

	ed := newEditor(fds[0], ev.In, fds[1], ev, history, tty)
	defer ed.Close()

	r := &repl{ev: ev, ed: ed, st: st, out: fds[1], errOut: fds[2]}
	if tty {
		fmt.Fprintf(fds[1], "; Welcome to crotchet %s, type `exit` to exit\n",
			buildinfo.FullVersion())
		r.prompt, r.contPrompt = cfg.Prompt, continuationPrompt
	}
	r.run()
}

// State of one REPL session.
type repl struct {
	ev *eval.Evaler
	ed editor
	// May be nil, in which case no history is saved.
	st     store.DBStore
	out    io.Writer
	errOut io.Writer

	prompt, contPrompt string
}

func (r *repl) run() {
	lineNum := 0
	var pending []string
	for {
		p := r.prompt
		if len(pending) > 0 {
			p = r.contPrompt
		}
		line, err := r.ed.ReadLine(p)
		if err == errLineAborted {
			pending = nil
			continue
		} else if err == io.EOF {
			if len(pending) > 0 {
				showError(r.errOut, evalLines(r.ev, lineNum, pending))
			}
			break
		} else if err != nil {
			fmt.Fprintln(r.errOut, "; error: cannot read line:", err)
			break
		}
		lineNum++

		if len(pending) == 0 && strings.TrimSpace(line) == "exit" {
			break
		}
		pending = append(pending, line)
		code := strings.Join(pending, "\n")
		if isBlank(code) {
			pending = nil
			continue
		}

		v, err := r.ev.Eval(parse.Source{Name: fmt.Sprintf("[repl %d]", lineNum), Code: code})
		if e := parse.UnpackError(err); e != nil && e.Partial {
			continue
		}
		pending = nil
		r.ed.AddHistory(code)
		if r.st != nil {
			if _, err := r.st.AddCmd(code); err != nil {
				logger.Println("failed to add command to history:", err)
			}
		}
		if err != nil {
			showError(r.errOut, err)
		} else if _, void := v.(vals.Void); !void && v != nil {
			fmt.Fprintf(r.out, "; %s\n", vals.Repr(v))
		}
	}
	fmt.Fprintln(r.out, "; crotchet program exited successfully")
}

func evalLines(ev *eval.Evaler, lineNum int, lines []string) error {
	_, err := ev.Eval(parse.Source{
		Name: fmt.Sprintf("[repl %d]", lineNum), Code: strings.Join(lines, "\n")})
	return err
}

func showError(w io.Writer, err error) {
	if err != nil {
		fmt.Fprintf(w, "; error: %s\n", err)
	}
}

// Reports whether code has no tokens: it is empty or only has comments.
func isBlank(code string) bool {
	tokens, err := parse.Tokenize(parse.Source{Code: code})
	return err == nil && len(tokens) == 0
}

func openStore(path string, stderr io.Writer) store.DBStore {
	if path == "" {
		return nil
	}
	st, err := store.NewStore(path)
	if err != nil {
		fmt.Fprintln(stderr, "Warning: cannot open history database:", err)
		fmt.Fprintln(stderr, "History will not be saved.")
		return nil
	}
	return st
}

func loadHistory(st store.DBStore) []string {
	next, err := st.NextCmdSeq()
	if err != nil {
		logger.Println("cannot get next command sequence:", err)
		return nil
	}
	cmds, err := st.CmdsWithSeq(0, next)
	if err != nil {
		logger.Println("cannot load history:", err)
		return nil
	}
	history := make([]string, len(cmds))
	for i, cmd := range cmds {
		history[i] = cmd.Text
	}
	return history
}
