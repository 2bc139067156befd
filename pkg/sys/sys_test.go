package sys

import (
	"os"
	"testing"

	"github.com/creack/pty"
	"src.crotchet.dev/pkg/must"
	"src.crotchet.dev/pkg/testutil"
)

func TestIsATTY_RegularFile(t *testing.T) {
	testutil.InTempDir(t)
	must.WriteFile("file", "")
	f := must.OK1(os.Open("file"))
	defer f.Close()
	if IsATTY(f) {
		t.Errorf("IsATTY(regular file) = true")
	}
	if IsATTY(nil) {
		t.Errorf("IsATTY(nil) = true")
	}
}

func TestIsATTY_Pipe(t *testing.T) {
	r, w := must.Pipe()
	defer r.Close()
	defer w.Close()
	if IsATTY(r) || IsATTY(w) {
		t.Errorf("IsATTY(pipe) = true")
	}
}

func TestIsATTY_Pty(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skip("cannot open pty:", err)
	}
	defer ptmx.Close()
	defer tty.Close()
	if !IsATTY(tty) {
		t.Errorf("IsATTY(pty) = false")
	}
}
