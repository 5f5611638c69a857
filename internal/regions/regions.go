// Package regions turns the HeadHunter area tree into a name to code lookup.
package regions

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"go.uber.org/zap"
)

// Area is one node of the region tree: country, state or city.
type Area struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Areas []Area `json:"areas"`
}

// Table maps a region display name to its numeric area code.
type Table map[string]int

// Flatten walks the tree depth-first, parents before children, and records
// every node. When a name repeats, the node visited last wins.
func Flatten(tree []Area) (Table, error) {
	table := make(Table)

	stack := make([]*Area, 0, len(tree))
	for i := len(tree) - 1; i >= 0; i-- {
		stack = append(stack, &tree[i])
	}

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		code, err := strconv.Atoi(node.ID)
		if err != nil {
			return nil, fmt.Errorf("area %q has non-numeric id %q", node.Name, node.ID)
		}
		table[node.Name] = code

		for i := len(node.Areas) - 1; i >= 0; i-- {
			stack = append(stack, &node.Areas[i])
		}
	}

	return table, nil
}

// TreeSource fetches the full region tree.
type TreeSource interface {
	RegionTree(ctx context.Context) ([]Area, error)
}

// TableCache stores a flattened table between runs.
type TableCache interface {
	GetRegions(ctx context.Context) (Table, error)
	SetRegions(ctx context.Context, table Table) error
}

// Loader builds the region table on first use and hands out the same
// table afterwards. Create one per process and pass it where needed.
type Loader struct {
	source TreeSource
	cache  TableCache
	logger *zap.Logger

	once  sync.Once
	table Table
	err   error
}

// NewLoader creates a loader. cache may be nil.
func NewLoader(source TreeSource, cache TableCache, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		source: source,
		cache:  cache,
		logger: logger,
	}
}

// Table returns the region table, loading it on the first call. A failed
// load is not retried.
func (l *Loader) Table(ctx context.Context) (Table, error) {
	l.once.Do(func() {
		l.table, l.err = l.load(ctx)
	})
	return l.table, l.err
}

func (l *Loader) load(ctx context.Context) (Table, error) {
	if l.cache != nil {
		table, err := l.cache.GetRegions(ctx)
		if err == nil && len(table) > 0 {
			l.logger.Debug("region table loaded from cache", zap.Int("count", len(table)))
			return table, nil
		}
		l.logger.Debug("region table cache miss", zap.Error(err))
	}

	tree, err := l.source.RegionTree(ctx)
	if err != nil {
		l.logger.Error("failed to fetch region tree", zap.Error(err))
		return nil, fmt.Errorf("fetch region tree: %w", err)
	}

	table, err := Flatten(tree)
	if err != nil {
		return nil, fmt.Errorf("flatten region tree: %w", err)
	}

	l.logger.Info("region table built", zap.Int("count", len(table)))

	if l.cache != nil {
		if err := l.cache.SetRegions(ctx, table); err != nil {
			l.logger.Warn("failed to cache region table", zap.Error(err))
		}
	}

	return table, nil
}

// Resolver looks up area codes by region name.
type Resolver struct {
	table Table
}

// NewResolver loads the table through loader, so the first resolver pays
// for the fetch and later ones reuse it.
func NewResolver(ctx context.Context, loader *Loader) (*Resolver, error) {
	table, err := loader.Table(ctx)
	if err != nil {
		return nil, err
	}
	return &Resolver{table: table}, nil
}

// NewStaticResolver wraps an already built table.
func NewStaticResolver(table Table) *Resolver {
	return &Resolver{table: table}
}

// Resolve returns the code for name. Names are case-sensitive.
func (r *Resolver) Resolve(name string) (int, bool) {
	code, ok := r.table[name]
	return code, ok
}

func (r *Resolver) Len() int {
	return len(r.table)
}

// Names returns all known region names in sorted order.
func (r *Resolver) Names() []string {
	names := make([]string, 0, len(r.table))
	for name := range r.table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
