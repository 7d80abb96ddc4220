// internal/motif/catalog.go
package motif

import (
	"fmt"
	"regexp"

	"mutscan/internal/common"
)

// Entry is one row of the motif table. Left is a regular expression (RE2 syntax);
// Right is matched as a plain substring.
type Entry struct {
	Left       string
	Right      string
	Annotation string
}

// Catalog is the immutable, compiled motif table shared by every pair and worker.
type Catalog struct {
	entries []Entry
	lefts   []string         // distinct left patterns, first-seen order
	res     []*regexp.Regexp // parallel to lefts
	byLeft  map[string][]int // left pattern -> entry indices, ascending
	rights  []string
}

// New compiles every distinct left pattern. A pattern that fails to compile is
// an ErrPattern.
func New(entries []Entry) (*Catalog, error) {
	c := &Catalog{
		entries: append([]Entry(nil), entries...),
		byLeft:  make(map[string][]int, len(entries)),
		rights:  make([]string, len(entries)),
	}
	for i, e := range c.entries {
		c.rights[i] = e.Right
		if _, ok := c.byLeft[e.Left]; !ok {
			re, err := regexp.Compile(e.Left)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %w", common.ErrPattern, i+1, err)
			}
			c.lefts = append(c.lefts, e.Left)
			c.res = append(c.res, re)
		}
		c.byLeft[e.Left] = append(c.byLeft[e.Left], i)
	}
	return c, nil
}

// LoadCatalog is Load followed by New.
func LoadCatalog(path string) (*Catalog, error) {
	entries, err := Load(path)
	if err != nil {
		return nil, err
	}
	c, err := New(entries)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (c *Catalog) Len() int { return len(c.entries) }

func (c *Catalog) Entry(i int) Entry { return c.entries[i] }

// Lefts returns the distinct left patterns in first-seen order.
func (c *Catalog) Lefts() []string { return c.lefts }

// Regexp returns the compiled form of Lefts()[i].
func (c *Catalog) Regexp(i int) *regexp.Regexp { return c.res[i] }

// Indices returns every entry index whose left pattern equals left.
func (c *Catalog) Indices(left string) []int { return c.byLeft[left] }

// Rights returns the right pattern of every entry, in table order.
func (c *Catalog) Rights() []string { return c.rights }
