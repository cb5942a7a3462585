package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bjaus/tabfmt"
)

func TestExitCode(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		err  error
		want int
	}{
		"nil":              {err: nil, want: ExitOK},
		"canceled":         {err: fmt.Errorf("bench: %w", context.Canceled), want: ExitCanceled},
		"usage":            {err: &usageError{err: errors.New("bad flag")}, want: ExitUser},
		"invalid argument": {err: fmt.Errorf("%w: both", tabfmt.ErrInvalidArgument), want: ExitUser},
		"type kind":        {err: tabfmt.ErrTypeKind, want: ExitUser},
		"shape":            {err: tabfmt.ErrShape, want: ExitUser},
		"format":           {err: tabfmt.ErrUnsupportedFormat, want: ExitUser},
		"template":         {err: tabfmt.ErrInvalidTemplate, want: ExitUser},
		"file missing":     {err: os.ErrNotExist, want: ExitSystem},
		"other":            {err: errors.New("disk on fire"), want: ExitSystem},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestInputKind(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"":             "csv",
		"-":            "csv",
		"data.csv":     "csv",
		"data.TSV":     "tsv",
		"data.json":    "json",
		"data.yaml":    "yaml",
		"data.yml":     "yaml",
		"data.parquet": "csv",
	}
	for path, want := range tests {
		t.Run(path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, want, inputKind(path))
		})
	}
}

func TestParseDuration(t *testing.T) {
	t.Parallel()
	v, err := parseDuration("90")
	assert.NoError(t, err)
	assert.Equal(t, int64(90), v)

	v, err = parseDuration("1.5")
	assert.NoError(t, err)
	assert.Equal(t, 1.5, v)

	v, err = parseDuration("250ms")
	assert.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, v)

	_, err = parseDuration("later")
	assert.ErrorIs(t, err, tabfmt.ErrTypeKind)
}
