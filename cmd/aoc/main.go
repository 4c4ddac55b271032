package main

import (
	"os"

	"github.com/bnema/aoc-2018/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
