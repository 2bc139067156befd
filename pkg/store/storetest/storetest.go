// Package storetest keeps test suites against storedefs.Store.
package storetest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.crotchet.dev/pkg/store/storedefs"
)

var (
	cmds     = []string{"[let x 1]", "[print x]", "[+ x 1]"}
	starting = 1
)

// TestCmd tests the command history functionality of a Store.
func TestCmd(t *testing.T, store storedefs.Store) {
	startSeq, err := store.NextCmdSeq()
	if startSeq != starting || err != nil {
		t.Errorf("store.NextCmdSeq() => (%v, %v), want (%v, nil)",
			startSeq, err, starting)
	}

	// AddCmd
	for i, cmd := range cmds {
		wantSeq := startSeq + i
		seq, err := store.AddCmd(cmd)
		if seq != wantSeq || err != nil {
			t.Errorf("store.AddCmd(%v) => (%v, %v), want (%v, nil)",
				cmd, seq, err, wantSeq)
		}
	}

	// Repeating the latest command does not add an entry.
	last := cmds[len(cmds)-1]
	if seq, err := store.AddCmd(last); seq != startSeq+len(cmds)-1 || err != nil {
		t.Errorf("store.AddCmd(%v) again => (%v, %v), want (%v, nil)",
			last, seq, err, startSeq+len(cmds)-1)
	}

	endSeq, err := store.NextCmdSeq()
	wantedEndSeq := startSeq + len(cmds)
	if endSeq != wantedEndSeq || err != nil {
		t.Errorf("store.NextCmdSeq() => (%v, %v), want (%v, nil)",
			endSeq, err, wantedEndSeq)
	}

	// CmdsWithSeq
	wantCmdWithSeqs := make([]storedefs.Cmd, len(cmds))
	for i, cmd := range cmds {
		wantCmdWithSeqs[i] = storedefs.Cmd{Text: cmd, Seq: i + 1}
	}
	for i := 0; i < len(cmds); i++ {
		for j := i; j <= len(cmds); j++ {
			cmdWithSeqs, err := store.CmdsWithSeq(i+1, j+1)
			if err != nil {
				t.Fatalf("store.CmdsWithSeq(%v, %v) => error %v", i+1, j+1, err)
			}
			if diff := cmp.Diff(wantCmdWithSeqs[i:j], cmdWithSeqs, cmpopts); diff != "" {
				t.Errorf("store.CmdsWithSeq(%v, %v) (-want +got):\n%s", i+1, j+1, diff)
			}
		}
	}

	// Cmd
	for i, wantCmd := range cmds {
		cmd, err := store.Cmd(i + 1)
		if cmd != wantCmd || err != nil {
			t.Errorf("store.Cmd(%v) => (%v, %v), want (%v, nil)",
				i+1, cmd, err, wantCmd)
		}
	}
	if _, err := store.Cmd(len(cmds) + 1); err != storedefs.ErrNoMatchingCmd {
		t.Errorf("store.Cmd of a missing seq => error %v, want ErrNoMatchingCmd", err)
	}

	// DelCmd
	if err := store.DelCmd(1); err != nil {
		t.Error("Failed to remove cmd")
	}
	if seq, err := store.Cmd(1); err != storedefs.ErrNoMatchingCmd {
		t.Errorf("Cmd(1) => (%v, %v), want (%v, %v)",
			seq, err, "", storedefs.ErrNoMatchingCmd)
	}
	if next, _ := store.NextCmdSeq(); next != wantedEndSeq {
		t.Errorf("DelCmd changed the next seq to %v", next)
	}
}

// An empty slice and a nil slice are both "no commands".
var cmpopts = cmp.Comparer(func(a, b []storedefs.Cmd) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
})
