// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"log"
	"os"

	"github.com/ezrec/regext/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}
