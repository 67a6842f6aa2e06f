package main

import (
	"errors"
	"os"

	"github.com/akrennmair/bluecst/parser"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var perr *parser.Error
		if errors.As(err, &perr) {
			os.Exit(perr.Status)
		}
		os.Exit(1)
	}
}
