// Package category loads the integer-id to category-name table from a
// whitespace-delimited text source.
package category

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	apperrors "github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/pkg/errors"
)

// Table maps category ids to names. It is read-only once loaded.
type Table map[int]string

// Name returns the category name for id.
func (t Table) Name(id int) (string, bool) {
	name, ok := t[id]
	return name, ok
}

func (t Table) Len() int {
	return len(t)
}

// Load parses "<id> <name>" lines. Lines with fewer than two tokens are
// skipped; only the second token is used as the name. A later line with the
// same id replaces the earlier one. A non-integer id aborts the load.
func Load(r io.Reader) (Table, error) {
	table := make(Table)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, apperrors.Newf(apperrors.ErrMalformedCategoryLine, apperrors.ExitLoad,
				"line %d: id %q is not an integer", lineNo, fields[0])
		}
		table[id] = fields[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading category lines: %w", err)
	}
	return table, nil
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Newf(apperrors.ErrFileNotFound, apperrors.ExitLoad, "category file %s", path)
		}
		return nil, fmt.Errorf("opening category file %s: %w", path, err)
	}
	defer f.Close()
	table, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading category file %s: %w", path, err)
	}
	return table, nil
}
