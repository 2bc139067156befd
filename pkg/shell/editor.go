package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/peterh/liner"
	"src.crotchet.dev/pkg/eval"
)

// Returned by ReadLine when the user cancels the line with Ctrl-C. The REPL
// then drops any unfinished form.
var errLineAborted = errors.New("line aborted")

// The interface the line editors satisfy.
type editor interface {
	// ReadLine shows the prompt and reads one line, without the line ending.
	// It returns io.EOF when there is no more input, and errLineAborted when
	// the line is cancelled.
	ReadLine(prompt string) (string, error)
	AddHistory(line string)
	Close() error
}

// A line reader without editing support. The reader is shared with the
// evaler, so that input inside a REPL line reads from the same stream.
type minEditor struct {
	in  *bufio.Reader
	out io.Writer
}

func newMinEditor(in *bufio.Reader, out io.Writer) *minEditor {
	return &minEditor{in, out}
}

func (ed *minEditor) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(ed.out, prompt)
	}
	line, err := ed.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	return chopLineEnding(line), err
}

func (ed *minEditor) AddHistory(string) {}

func (ed *minEditor) Close() error { return nil }

// A line editor for terminals, with history and completion of names.
type linerEditor struct {
	state *liner.State
}

func newLinerEditor(ev *eval.Evaler, history []string) *linerEditor {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	state.SetWordCompleter(func(line string, pos int) (string, []string, string) {
		return completeWord(line, pos, completionNames(ev))
	})
	for _, line := range history {
		state.AppendHistory(line)
	}
	return &linerEditor{state}
}

func (ed *linerEditor) ReadLine(prompt string) (string, error) {
	line, err := ed.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", errLineAborted
	}
	return line, err
}

func (ed *linerEditor) AddHistory(line string) { ed.state.AppendHistory(line) }

func (ed *linerEditor) Close() error { return ed.state.Close() }

// Chooses the line editor. Liner drives the process terminal directly, so it
// can only be used when in is the terminal of the process.
//
// Liner reads os.Stdin through its own buffer, while the input builtin reads
// through r. Text typed ahead of an input prompt may be taken by either
// reader. This is accepted.
func newEditor(in *os.File, r *bufio.Reader, out io.Writer, ev *eval.Evaler, history []string, tty bool) editor {
	if tty && in == os.Stdin {
		return newLinerEditor(ev, history)
	}
	return newMinEditor(r, out)
}

func completionNames(ev *eval.Evaler) []string {
	names := append(eval.BuiltinNames(), ev.Global.Names()...)
	sort.Strings(names)
	return dedup(names)
}

// Completes the word ending at pos. The word starts after the last bracket,
// space or quote before pos.
func completeWord(line string, pos int, names []string) (head string, completions []string, tail string) {
	if pos > len(line) {
		pos = len(line)
	}
	start := strings.LastIndexAny(line[:pos], " \t[]\"") + 1
	head, prefix, tail := line[:start], line[start:pos], line[pos:]
	for _, name := range names {
		if strings.HasPrefix(name, prefix) {
			completions = append(completions, name)
		}
	}
	return head, completions, tail
}

func dedup(sorted []string) []string {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, s := range sorted[1:] {
		if s != out[len(out)-1] {
			out = append(out, s)
		}
	}
	return out
}

func chopLineEnding(s string) string {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	} else if strings.HasSuffix(s, "\n") {
		return s[:len(s)-1]
	}
	return s
}
