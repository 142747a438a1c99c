// Package main is the entry point for the is binary.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/roach88/is/internal/cli"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			fmt.Fprintf(os.Stderr, "is: panic: %v\n%s\n", r, buf[:n])
			os.Exit(cli.ExitUsage)
		}
	}()

	os.Exit(cli.Main())
}
