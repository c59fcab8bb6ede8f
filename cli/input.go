package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"bstree/searchtree"
)

// Input is embedded in every command. Values from the command line are
// inserted first, then values from the file, each in the order given.
type Input struct {
	Values []int  `arg:"" optional:"" help:"Values to insert, in insertion order. Put negative values after --."`
	File   string `short:"f" type:"existingfile" help:"Read more values from a file: whitespace separated, # starts a comment."`
}

func (in *Input) collect() ([]int, error) {
	values := append([]int{}, in.Values...)
	if in.File == "" {
		return values, nil
	}
	file, err := os.Open(in.File)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	fromFile, err := readValues(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", in.File, err)
	}
	return append(values, fromFile...), nil
}

func (in *Input) build(ctx *Context) (*searchtree.SearchTree[int], error) {
	values, err := in.collect()
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		ctx.Log.Warn("no input values, tree is empty")
	}

	tree := searchtree.New[int]()
	for _, v := range values {
		tree.Insert(v)
	}
	ctx.Log.Debug("built tree", "inserted", len(values), "size", tree.Size())
	return tree, nil
}

// readValues parses integers separated by whitespace. Anything after a # on a
// line is ignored.
func readValues(r io.Reader) ([]int, error) {
	var values []int
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text, _, _ := strings.Cut(scanner.Text(), "#")
		for _, field := range strings.Fields(text) {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			values = append(values, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return values, nil
}
