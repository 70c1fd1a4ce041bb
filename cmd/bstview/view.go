package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/metailurini/bst"
	"golang.org/x/sync/errgroup"
)

type source struct {
	name string
	r    io.Reader
}

type entry struct {
	file string
	line int
	tree *bst.Tree[int]
}

func (e entry) label() string {
	return fmt.Sprintf("%s:%d", e.file, e.line)
}

// viewer builds trees whose nodes all come from one shared pool.
type viewer struct {
	limit   int
	metrics *bst.Metrics
	pool    *bst.PoolAllocator[int]
}

func newViewer(limit int) *viewer {
	m := new(bst.Metrics)
	return &viewer{limit: limit, metrics: m, pool: bst.NewPoolAllocator[int](m)}
}

func (v *viewer) allocator() bst.Allocator[int] {
	if v.limit <= 0 {
		return v.pool
	}
	return bst.NewLimitedAllocator[int](v.pool, v.limit)
}

// load reads every source concurrently. Entries keep source order, then
// line order.
func (v *viewer) load(ctx context.Context, sources []source) ([]entry, error) {
	perSource := make([][]entry, len(sources))
	g, ctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			entries, err := v.read(ctx, src)
			if err != nil {
				return fmt.Errorf("%s: %w", src.name, err)
			}
			perSource[i] = entries
			glog.V(1).Infof("%s: %d trees", src.name, len(entries))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		for _, entries := range perSource {
			release(entries)
		}
		return nil, err
	}

	var all []entry
	for _, entries := range perSource {
		all = append(all, entries...)
	}
	return all, nil
}

func (v *viewer) read(ctx context.Context, src source) ([]entry, error) {
	var entries []entry
	sc := bufio.NewScanner(src.r)
	for line := 1; sc.Scan(); line++ {
		if err := ctx.Err(); err != nil {
			release(entries)
			return nil, err
		}
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		tree, err := v.build(text)
		if err != nil {
			release(entries)
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		entries = append(entries, entry{file: src.name, line: line, tree: tree})
	}
	if err := sc.Err(); err != nil {
		release(entries)
		return nil, err
	}
	return entries, nil
}

// release returns the nodes of every entry's tree to the pool.
func release(entries []entry) {
	for _, e := range entries {
		e.tree.Clear()
	}
}

// build inserts the whitespace or comma separated integers of text in order.
func (v *viewer) build(text string) (*bst.Tree[int], error) {
	tree := bst.New(bst.WithAllocator(v.allocator()))
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			tree.Clear()
			return nil, err
		}
		if _, err := tree.Insert(n); err != nil {
			tree.Clear()
			return nil, err
		}
	}
	return tree, nil
}

func format(tree *bst.Tree[int], order bst.Order, reverse bool) string {
	seq := tree.All(order)
	if reverse {
		seq = tree.Backward(order)
	}
	var sb strings.Builder
	for v := range seq {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}

// equalGroups returns every set of two or more entries whose trees are
// equal, in order of first appearance.
func equalGroups(entries []entry) [][]entry {
	var groups [][]entry
	grouped := make([]bool, len(entries))
	for i := range entries {
		if grouped[i] {
			continue
		}
		group := []entry{entries[i]}
		for j := i + 1; j < len(entries); j++ {
			if !grouped[j] && entries[i].tree.Equal(entries[j].tree) {
				grouped[j] = true
				group = append(group, entries[j])
			}
		}
		if len(group) > 1 {
			groups = append(groups, group)
		}
	}
	return groups
}
