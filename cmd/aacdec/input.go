package main

import (
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/jfbus/httprs"
	"github.com/pkg/errors"
)

// openInput opens a local file, an HTTP(S) URL or, for "-", standard
// input.
func openInput(arg string) (io.ReadCloser, error) {
	switch {
	case arg == "-":
		return io.NopCloser(os.Stdin), nil
	case strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://"):
		res, err := http.Get(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "get %s", arg)
		}
		if res.StatusCode != http.StatusOK {
			res.Body.Close()
			return nil, errors.Errorf("get %s: %s", arg, res.Status)
		}
		return httprs.NewHttpReadSeeker(res), nil
	}
	f, err := os.Open(arg)
	if err != nil {
		return nil, errors.Wrap(err, "open input")
	}
	return f, nil
}

// outputName derives the WAV file name from the input name.
func outputName(input string) string {
	if i := strings.LastIndexByte(input, '/'); i >= 0 {
		input = input[i+1:]
	}
	if i := strings.IndexByte(input, '?'); i >= 0 {
		input = input[:i]
	}
	if i := strings.LastIndexByte(input, '.'); i > 0 {
		input = input[:i]
	}
	if input == "" || input == "-" {
		input = "out"
	}
	return input + ".wav"
}
