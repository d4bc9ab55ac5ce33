// Package index builds the category → image posting lists used by every
// aggregate query.
package index

// PostingList is an ascending list of image keys. A key appears once per
// bounding box, so duplicates are expected.
type PostingList []string

// Distinct counts the different keys in a sorted list.
func (p PostingList) Distinct() int {
	n := 0
	for i, key := range p {
		if i == 0 || key != p[i-1] {
			n++
		}
	}
	return n
}

// Dedup returns the keys of a sorted list with repeats removed.
func (p PostingList) Dedup() []string {
	out := make([]string, 0, len(p))
	for i, key := range p {
		if i == 0 || key != p[i-1] {
			out = append(out, key)
		}
	}
	return out
}

type CategoryEntry struct {
	Name   string
	Images PostingList
}
