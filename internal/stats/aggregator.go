// Package stats accumulates per-document token counts into a directory tree.
package stats

import (
	"fmt"
	"sort"
	"strings"

	"github.com/promptpack/promptpack/internal/tokenizer"
	"github.com/promptpack/promptpack/internal/types"
)

// Totals captures the aggregate counters across all recorded documents.
type Totals struct {
	Files  int
	Bytes  int64
	Tokens int
}

// node is the mutable build-time shape of one tree entry. Tree freezes the
// accumulated nodes into ordered types.StatsNode values.
type node struct {
	name     string
	isDir    bool
	tokens   int
	children map[string]*node
}

// Aggregator tokenizes included documents and accumulates a token tree
// rooted at the traversal working directory.
type Aggregator struct {
	counter tokenizer.Counter
	root    *node
	totals  Totals
}

// NewAggregator creates an empty aggregator counting with counter.
func NewAggregator(counter tokenizer.Counter) *Aggregator {
	return &Aggregator{
		counter: counter,
		root:    &node{name: ".", isDir: true, children: map[string]*node{}},
	}
}

// Record tokenizes the document payload and inserts the count as a leaf at
// the document's relative path, creating intermediate directory nodes on
// first visit.
func (aggregator *Aggregator) Record(document types.Document) error {
	if aggregator.counter == nil {
		return fmt.Errorf("nil tokenizer counter")
	}
	tokens, countError := aggregator.counter.CountString(document.Content)
	if countError != nil {
		return fmt.Errorf("counting tokens: %w", countError)
	}

	segments := strings.Split(document.Path, "/")
	current := aggregator.root
	for _, segment := range segments[:len(segments)-1] {
		if segment == "" {
			continue
		}
		child, exists := current.children[segment]
		if !exists {
			child = &node{name: segment, isDir: true, children: map[string]*node{}}
			current.children[segment] = child
		}
		current = child
	}
	leafName := segments[len(segments)-1]
	current.children[leafName] = &node{name: leafName, tokens: tokens}

	aggregator.totals.Files++
	aggregator.totals.Bytes += document.SizeBytes
	aggregator.totals.Tokens += tokens
	return nil
}

// Totals returns the aggregate counters for summary rendering.
func (aggregator *Aggregator) Totals() Totals {
	return aggregator.totals
}

// Tree freezes the accumulated counts into an ordered stats tree. Directory
// totals equal the sum of all descendant file counts; children are ordered
// by name.
func (aggregator *Aggregator) Tree() *types.StatsNode {
	return freeze(aggregator.root)
}

func freeze(current *node) *types.StatsNode {
	frozen := &types.StatsNode{
		Name:   current.name,
		IsDir:  current.isDir,
		Tokens: current.tokens,
	}
	if !current.isDir {
		frozen.TotalTokens = current.tokens
		frozen.TotalFiles = 1
		return frozen
	}
	names := make([]string, 0, len(current.children))
	for name := range current.children {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		childNode := freeze(current.children[name])
		frozen.TotalTokens += childNode.TotalTokens
		frozen.TotalFiles += childNode.TotalFiles
		frozen.Children = append(frozen.Children, childNode)
	}
	return frozen
}
