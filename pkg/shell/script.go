package shell

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"src.crotchet.dev/pkg/diag"
	"src.crotchet.dev/pkg/eval"
	"src.crotchet.dev/pkg/parse"
)

// ScriptExt is the extension scripts must have.
const ScriptExt = ".crl"

// Configuration for the script mode.
type scriptCfg struct {
	Check bool
	JSON  bool
}

// Runs a script. The value of the script is discarded; only the output of
// print and input is shown.
func script(ev *eval.Evaler, fds [3]*os.File, fname string, cfg *scriptCfg) int {
	if filepath.Ext(fname) != ScriptExt {
		fmt.Fprintf(fds[2], "script %q must have extension %s\n", fname, ScriptExt)
		return 2
	}
	name, err := filepath.Abs(fname)
	if err != nil {
		fmt.Fprintf(fds[2], "cannot get full path of script %q: %v\n", fname, err)
		return 2
	}
	code, err := readFileUTF8(name)
	if err != nil {
		fmt.Fprintf(fds[2], "cannot read script %q: %v\n", name, err)
		return 2
	}

	src := parse.Source{Name: name, Code: code, IsFile: true}
	if cfg.Check {
		_, err := parse.Parse(src)
		if cfg.JSON {
			fmt.Fprintf(fds[1], "%s\n", errorsToJSON(err))
		} else if err != nil {
			diag.ShowError(fds[2], err)
		}
		if err != nil {
			return 2
		}
		return 0
	}

	logger.Println("running script", name)
	_, err = ev.Eval(src)
	if err != nil {
		diag.ShowError(fds[2], err)
		return 2
	}
	return 0
}

var errSourceNotUTF8 = errors.New("source is not UTF-8")

func readFileUTF8(fname string) (string, error) {
	bytes, err := os.ReadFile(fname)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(bytes) {
		return "", errSourceNotUTF8
	}
	return string(bytes), nil
}

// An auxiliary struct for converting errors with diagnostics information to JSON.
type errorInJSON struct {
	FileName string `json:"fileName"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Message  string `json:"message"`
}

// Converts a syntax error into JSON. Other errors have no position and are
// left out.
func errorsToJSON(err error) []byte {
	converted := []errorInJSON{}
	if e := parse.UnpackError(err); e != nil {
		r := e.Range()
		converted = append(converted,
			errorInJSON{e.Diag.Context.Name, r.From, r.To, e.Message()})
	}

	jsonError, errMarshal := json.Marshal(converted)
	if errMarshal != nil {
		return []byte(`[{"message":"Unable to convert the errors to JSON"}]`)
	}
	return jsonError
}
