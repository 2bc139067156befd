package eval_test

import "src.crotchet.dev/pkg/parse"

func srcOf(code string) parse.Source {
	return parse.Source{Name: "[test]", Code: code}
}
