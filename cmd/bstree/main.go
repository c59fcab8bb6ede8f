package main

import (
	"os"

	"github.com/alecthomas/kong"

	"bstree/cli"
)

func main() {
	var c cli.CLI
	ctx := kong.Parse(&c,
		kong.Name("bstree"),
		kong.Description("Build a binary search tree of integers and inspect it."),
		kong.UsageOnError(),
	)
	log, err := c.Logger(os.Stderr)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(&cli.Context{Out: os.Stdout, Log: log})
	ctx.FatalIfErrorf(err)
}
