// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"os"
)

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v: %v\n", os.Args[0], err)
		os.Exit(1)
	}
}
