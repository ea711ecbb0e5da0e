// Package reader loads Lox source text.
package reader

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/ztrue/tracerr"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// ReadSource returns the contents of the file at from, or of in when from
// is Stdin.
func ReadSource(from string, in io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)
	if from == Stdin {
		data, err = ioutil.ReadAll(in)
	} else {
		data, err = ioutil.ReadFile(from)
	}
	if err != nil {
		return "", tracerr.Wrap(err)
	}
	return string(data), nil
}

// Open is ReadSource without the text, for callers that stream the source
// into the lexer themselves.
func Open(from string, in io.Reader) (io.ReadCloser, error) {
	if from == Stdin {
		return ioutil.NopCloser(in), nil
	}
	fi, err := os.Open(from)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	return fi, nil
}
