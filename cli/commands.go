package cli

import (
	"fmt"
	"slices"
)

type TraverseCmd struct {
	Order string `short:"o" help:"Traversal order: ${enum}." enum:"in,pre,post,level" default:"in"`
	Input
}

func (cmd *TraverseCmd) Run(ctx *Context) error {
	tree, err := cmd.build(ctx)
	if err != nil {
		return err
	}

	var values []int
	switch cmd.Order {
	case "in":
		values = slices.Collect(tree.InOrder().Seq())
	case "pre":
		values = slices.Collect(tree.PreOrder().Seq())
	case "post":
		values = slices.Collect(tree.PostOrder().Seq())
	case "level":
		values = slices.Collect(tree.LevelOrder().Seq())
	default:
		return fmt.Errorf("unknown order %q", cmd.Order)
	}
	ctx.Log.Debug("traversed", "order", cmd.Order, "count", len(values))
	return ctx.printf("%s\n", formatValues(values))
}

type StatsCmd struct {
	Input
}

func (cmd *StatsCmd) Run(ctx *Context) error {
	tree, err := cmd.build(ctx)
	if err != nil {
		return err
	}

	root, hasRoot := tree.Peek()
	lo, _ := tree.Min()
	hi, _ := tree.Max()
	return ctx.printf("size: %d\npeek: %s\nmin: %s\nmax: %s\nmin-depth: %d\nmax-depth: %d\n",
		tree.Size(),
		formatOptional(root, hasRoot),
		formatOptional(lo, hasRoot),
		formatOptional(hi, hasRoot),
		tree.MinDepth(),
		tree.MaxDepth(),
	)
}

type SplitCmd struct {
	Side string `help:"Subtree of the root to detach: ${enum}." enum:"left,right" default:"left"`
	Input
}

func (cmd *SplitCmd) Run(ctx *Context) error {
	tree, err := cmd.build(ctx)
	if err != nil {
		return err
	}

	take := tree.TakeLeft
	if cmd.Side == "right" {
		take = tree.TakeRight
	}
	detached, ok := take()
	if !ok {
		ctx.Log.Info("nothing to detach", "side", cmd.Side)
	}
	return ctx.printf("detached: %s\nremaining: %s\n",
		formatValues(slices.Collect(detached.All())),
		formatValues(slices.Collect(tree.All())),
	)
}

type SwapCmd struct {
	Side string `help:"Child of the root to swap values with: ${enum}." enum:"left,right" default:"left"`
	Input
}

func (cmd *SwapCmd) Run(ctx *Context) error {
	tree, err := cmd.build(ctx)
	if err != nil {
		return err
	}

	swap := tree.SwapLeft
	if cmd.Side == "right" {
		swap = tree.SwapRight
	}
	swapped := swap()
	if swapped {
		ctx.Log.Warn("values swapped, tree is no longer ordered", "side", cmd.Side)
	}
	return ctx.printf("swapped: %t\nin-order: %s\npre-order: %s\n",
		swapped,
		formatValues(slices.Collect(tree.InOrder().Seq())),
		formatValues(slices.Collect(tree.PreOrder().Seq())),
	)
}

type DrainCmd struct {
	Input
}

func (cmd *DrainCmd) Run(ctx *Context) error {
	tree, err := cmd.build(ctx)
	if err != nil {
		return err
	}

	drained := slices.Collect(tree.IntoIter().Seq())
	return ctx.printf("drained: %s\nempty: %t\n", formatValues(drained), tree.IsEmpty())
}

type FindCmd struct {
	Value int `required:"" help:"Value to look up."`
	Input
}

func (cmd *FindCmd) Run(ctx *Context) error {
	tree, err := cmd.build(ctx)
	if err != nil {
		return err
	}

	sub, found := tree.Find(cmd.Value)
	var subtree []int
	var depth uint64
	if found {
		subtree = slices.Collect(sub.All())
		depth = sub.MaxDepth()
	}
	return ctx.printf("found: %t\nsubtree: %s\nsubtree-height: %d\n", found, formatValues(subtree), depth)
}
