package index

import (
	"sort"

	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/internal/category"
	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/internal/corpus"
)

// CategoryIndex maps each category name to the image keys that carry it,
// one entry per bounding box. It is immutable after Build and safe to share.
type CategoryIndex struct {
	postings map[string]PostingList
	names    []string
}

// Build resolves every label of every record through table and appends the
// record's key to that category's posting list. Labels with no name are
// dropped. Each list ends up in ascending key order with duplicates kept,
// so the result does not depend on the order records are visited in.
func Build(c *corpus.Corpus, table category.Table) *CategoryIndex {
	postings := make(map[string]PostingList)
	c.Each(func(r *corpus.Record) {
		for _, id := range r.CategoryLabels {
			name, ok := table.Name(id)
			if !ok {
				continue
			}
			postings[name] = append(postings[name], r.Key)
		}
	})

	names := make([]string, 0, len(postings))
	for name, list := range postings {
		sort.Strings(list)
		names = append(names, name)
	}
	sort.Strings(names)
	return &CategoryIndex{postings: postings, names: names}
}

// Names returns the distinct category names in ascending order.
func (ix *CategoryIndex) Names() []string {
	out := make([]string, len(ix.names))
	copy(out, ix.names)
	return out
}

func (ix *CategoryIndex) Len() int {
	return len(ix.names)
}

func (ix *CategoryIndex) Has(name string) bool {
	_, ok := ix.postings[name]
	return ok
}

// Images returns a copy of the posting list for name.
func (ix *CategoryIndex) Images(name string) (PostingList, bool) {
	list, ok := ix.postings[name]
	if !ok {
		return nil, false
	}
	out := make(PostingList, len(list))
	copy(out, list)
	return out, true
}

// Occurrences is the number of bounding boxes labelled name.
func (ix *CategoryIndex) Occurrences(name string) int {
	return len(ix.postings[name])
}

// DistinctImages is the number of different images labelled name.
func (ix *CategoryIndex) DistinctImages(name string) int {
	return ix.postings[name].Distinct()
}

// Snapshot returns every category with its posting list, ordered by name.
func (ix *CategoryIndex) Snapshot() []CategoryEntry {
	entries := make([]CategoryEntry, 0, len(ix.names))
	for _, name := range ix.names {
		list, _ := ix.Images(name)
		entries = append(entries, CategoryEntry{Name: name, Images: list})
	}
	return entries
}
