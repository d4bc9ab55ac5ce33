// Package corpus loads the annotation document: a JSON object mapping each
// image key to its bounding-box category labels and captions.
package corpus

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	apperrors "github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/pkg/errors"
)

// JSON attribute names every record must carry.
const (
	FieldCategoryLabels = "bbox_category_label"
	FieldCaptions       = "cap_list"
)

// Record is the annotation of a single image.
type Record struct {
	Key            string
	CategoryLabels []int
	Captions       []string
}

// Corpus is the read-only set of records keyed by image key.
type Corpus struct {
	records map[string]*Record
	keys    []string
}

// New builds a corpus from records. A later record with the same key
// replaces the earlier one.
func New(records ...Record) *Corpus {
	c := &Corpus{records: make(map[string]*Record, len(records))}
	for i := range records {
		r := records[i]
		c.records[r.Key] = &r
	}
	c.keys = make([]string, 0, len(c.records))
	for key := range c.records {
		c.keys = append(c.keys, key)
	}
	sort.Strings(c.keys)
	return c
}

func (c *Corpus) Len() int {
	return len(c.keys)
}

// Keys returns the image keys in ascending string order.
func (c *Corpus) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Record returns the record stored under key.
func (c *Corpus) Record(key string) (Record, bool) {
	r, ok := c.records[key]
	if !ok {
		return Record{}, false
	}
	return *r, true
}

// Each calls fn for every record in key order.
func (c *Corpus) Each(fn func(r *Record)) {
	for _, key := range c.keys {
		fn(c.records[key])
	}
}

// Captions returns every caption of every record, in key order.
func (c *Corpus) Captions() []string {
	var out []string
	c.Each(func(r *Record) {
		out = append(out, r.Captions...)
	})
	return out
}

// Load decodes an annotation document. The root must be a JSON object whose
// values are objects carrying both required attributes; the first record
// that does not aborts the whole load.
func Load(r io.Reader) (*Corpus, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading annotation document: %w", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, apperrors.Newf(apperrors.ErrCorpusParse, apperrors.ExitLoad, "%v", err)
	}
	if raw == nil {
		return nil, apperrors.New(apperrors.ErrCorpusParse, apperrors.ExitLoad, "document root is null")
	}

	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	records := make([]Record, 0, len(raw))
	for _, key := range keys {
		rec, err := decodeRecord(key, raw[key])
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return New(records...), nil
}

func decodeRecord(key string, data json.RawMessage) (Record, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return Record{}, apperrors.Newf(apperrors.ErrRecordShape, apperrors.ExitLoad,
			"record %q is not an object", key)
	}
	rec := Record{Key: key}
	if err := decodeField(key, fields, FieldCategoryLabels, &rec.CategoryLabels); err != nil {
		return Record{}, err
	}
	if err := decodeField(key, fields, FieldCaptions, &rec.Captions); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func decodeField[T any](key string, fields map[string]json.RawMessage, name string, out *[]T) error {
	value, ok := fields[name]
	if !ok || bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
		return apperrors.Newf(apperrors.ErrRecordShape, apperrors.ExitLoad,
			"record %q lacks %s", key, name)
	}
	if err := json.Unmarshal(value, out); err != nil {
		return apperrors.Newf(apperrors.ErrRecordShape, apperrors.ExitLoad,
			"record %q: %s: %v", key, name, err)
	}
	if *out == nil {
		*out = []T{}
	}
	return nil
}

// LoadFile opens path and decodes it with Load.
func LoadFile(path string) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Newf(apperrors.ErrFileNotFound, apperrors.ExitLoad, "annotation file %s", path)
		}
		return nil, fmt.Errorf("opening annotation file %s: %w", path, err)
	}
	defer f.Close()
	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading annotation file %s: %w", path, err)
	}
	return c, nil
}
