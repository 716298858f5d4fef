package main

import (
	"github.com/contribsys/binheap/cli"
	"github.com/contribsys/binheap/util"
)

// The REPL pokes at a live heap interactively: insert elements, watch the
// forest reshape, decrease keys through their handles.
func main() {
	opts := cli.ParseArguments()
	util.InitLogger(opts.LogLevel)
	repl()
}
