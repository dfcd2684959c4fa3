package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/euanchree/mini-square-compiler/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		if !errors.Is(err, cli.ErrFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
