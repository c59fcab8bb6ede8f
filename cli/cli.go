// Package cli implements the bstree command line: each command builds a
// search tree of integers from its input and reports on it.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

type CLI struct {
	Globals

	Traverse TraverseCmd `cmd:"" help:"Print the values in the given traversal order."`
	Stats    StatsCmd    `cmd:"" help:"Print size, root, extremes and depths."`
	Split    SplitCmd    `cmd:"" help:"Detach a subtree of the root and print both parts."`
	Swap     SwapCmd     `cmd:"" help:"Swap the root value with one of its children."`
	Drain    DrainCmd    `cmd:"" help:"Consume the tree in ascending order."`
	Find     FindCmd     `cmd:"" help:"Look up a value and print the subtree rooted at it."`
}

type Globals struct {
	LogLevel string `help:"Log level: ${enum}." enum:"debug,info,warn,error" default:"info"`
	LogJSON  bool   `name:"log-json" help:"Write logs as JSON."`
}

// Logger returns a logger writing to w at the configured level.
func (g *Globals) Logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(g.LogLevel)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler = slog.NewTextHandler(w, opts)
	if g.LogJSON {
		h = slog.NewJSONHandler(w, opts)
	}
	return slog.New(h), nil
}

// Context is bound into every command's Run method.
type Context struct {
	Out io.Writer
	Log *slog.Logger
}

func (ctx *Context) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(ctx.Out, format, args...)
	return err
}

func formatValues(values []int) string {
	if len(values) == 0 {
		return "(empty)"
	}
	strs := make([]string, 0, len(values))
	for _, v := range values {
		strs = append(strs, strconv.Itoa(v))
	}
	return strings.Join(strs, " ")
}

func formatOptional(v int, ok bool) string {
	if !ok {
		return "none"
	}
	return strconv.Itoa(v)
}
