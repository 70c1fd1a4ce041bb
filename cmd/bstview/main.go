// bstview builds one search tree per input line of integers and prints a
// traversal of each.
//
// Usage:
//
//	bstview [-order in|pre|post] [-r] [-limit n] [file ...]
//
// With no files the trees are read from standard input. Trees that compare
// equal (same shape and values) are reported in groups after the listing.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/metailurini/bst"
)

func main() {
	orderFlag := flag.String("order", "in", "traversal order: in, pre or post")
	reverseFlag := flag.Bool("r", false, "print each traversal from last to first")
	limitFlag := flag.Int("limit", 0, "maximum nodes per tree (0 = unlimited)")
	flag.Parse()
	defer glog.Flush()

	order, err := bst.ParseOrder(*orderFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	v := newViewer(*limitFlag)
	var sources []source
	if flag.NArg() == 0 {
		sources = []source{{name: "stdin", r: os.Stdin}}
	} else {
		for _, name := range flag.Args() {
			f, err := os.Open(name)
			if err != nil {
				glog.Fatalf("failed to open input: %v", err)
			}
			defer f.Close()
			sources = append(sources, source{name: name, r: f})
		}
	}

	entries, err := v.load(context.Background(), sources)
	if err != nil {
		glog.Exitf("failed to build trees: %v", err)
	}

	if len(entries) == 0 {
		glog.Warningf("no trees in %d inputs", len(sources))
	}
	for _, e := range entries {
		fmt.Printf("%s: %s\n", e.label(), format(e.tree, order, *reverseFlag))
	}
	for _, group := range equalGroups(entries) {
		fmt.Print("equal:")
		for _, e := range group {
			fmt.Printf(" %s", e.label())
		}
		fmt.Println()
	}

	m := v.metrics
	glog.Infof("built %d trees from %d nodes", len(entries), m.Allocations())
	release(entries)
	glog.V(1).Infof("%d nodes still live after clear", m.Live())
}
