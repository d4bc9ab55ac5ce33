package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorUnwrap(t *testing.T) {
	err := Newf(ErrRecordShape, ExitLoad, "record %q lacks %s", "12", "cap_list")
	assert.True(t, errors.Is(err, ErrRecordShape))
	assert.Equal(t, `annotation record shape error: record "12" lacks cap_list`, err.Error())
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"app error wins", New(ErrCategoryNotFound, 7, "fish"), 7},
		{"wrapped load error", fmt.Errorf("loading: %w", ErrCorpusParse), ExitLoad},
		{"malformed line", ErrMalformedCategoryLine, ExitLoad},
		{"missing file", ErrFileNotFound, ExitLoad},
		{"query error", fmt.Errorf("query: %w", ErrInvalidCount), ExitQuery},
		{"empty", ErrEmptyResult, ExitQuery},
		{"unknown", errors.New("boom"), ExitUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestClassification(t *testing.T) {
	assert.True(t, IsLoadError(ErrRecordShape))
	assert.False(t, IsLoadError(ErrCategoryNotFound))
	assert.True(t, IsQueryError(ErrCategoryNotFound))
	assert.False(t, IsQueryError(ErrCorpusParse))
}
