package query

import (
	"fmt"
	"io"
	"strings"

	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/internal/analytics"
)

func FormatCategories(w io.Writer, names []string) {
	fmt.Fprintln(w, "Categories:")
	fmt.Fprintln(w, strings.Join(names, ", "))
}

func FormatImages(w io.Writer, name string, keys []string) {
	fmt.Fprintf(w, "The category %s appears in the following images:\n", name)
	fmt.Fprintln(w, strings.Join(keys, ", "))
}

func FormatMaxOccurrences(w io.Writer, c analytics.CategoryCount) {
	fmt.Fprintf(w, "Max Instances: the category %s appears %d times in images.\n", c.Name, c.Count)
}

func FormatMaxImages(w io.Writer, c analytics.CategoryCount) {
	fmt.Fprintf(w, "Max images: the category %s appears in %d images.\n", c.Name, c.Count)
}

// FormatTopWords prints the ranking as a two-column table. The header echoes
// the requested count even when fewer words exist.
func FormatTopWords(w io.Writer, requested int, words []analytics.WordFrequency) {
	fmt.Fprintf(w, "Top %d words in captions.\n", requested)
	fmt.Fprintf(w, "%-14s%6s\n", "word", "count")
	for _, wf := range words {
		fmt.Fprintf(w, "%-14s%6d\n", wf.Word, wf.Count)
	}
}
