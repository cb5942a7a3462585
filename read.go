package tabfmt

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type readConfig struct {
	comma rune
}

// ReadOption customizes [ReadCSV].
type ReadOption func(*readConfig)

// WithComma sets the CSV field delimiter. Default: comma.
func WithComma(r rune) ReadOption {
	return func(c *readConfig) { c.comma = r }
}

// ReadCSV loads a Frame from CSV. The first record names the columns. Each
// column takes the narrowest kind its non-empty cells all parse as: int,
// then float, then bool ("true"/"false", any case), then string. Empty cells
// become nil.
func ReadCSV(r io.Reader, opts ...ReadOption) (*Frame, error) {
	cfg := readConfig{comma: ','}
	for _, opt := range opts {
		opt(&cfg)
	}

	cr := csv.NewReader(r)
	cr.Comma = cfg.comma
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: csv: missing header", ErrInvalidArgument)
	}
	if err != nil {
		return nil, fmt.Errorf("csv: read header: %w", err)
	}

	raw := make([][]string, len(header))
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, csv.ErrFieldCount) {
			return nil, fmt.Errorf("%w: %v", ErrShape, err)
		}
		if err != nil {
			return nil, fmt.Errorf("csv: read record: %w", err)
		}
		for c, cell := range rec {
			raw[c] = append(raw[c], cell)
		}
	}

	cols := make([]Column, len(header))
	for c, name := range header {
		cols[c] = parseColumn(name, raw[c])
	}
	return NewFrame(cols...)
}

type cellParser struct {
	kind  Kind
	parse func(string) (any, bool)
}

var cellParsers = []cellParser{
	{KindInt, func(s string) (any, bool) {
		n, err := strconv.ParseInt(s, 10, 64)
		return n, err == nil
	}},
	{KindFloat, func(s string) (any, bool) {
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	}},
	{KindBool, func(s string) (any, bool) {
		switch strings.ToLower(s) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
		return nil, false
	}},
}

func parseColumn(name string, cells []string) Column {
	for _, p := range cellParsers {
		if values, ok := parseAll(cells, p.parse); ok {
			return Column{Name: name, Kind: p.kind, Values: values}
		}
	}
	values := make([]any, len(cells))
	for i, cell := range cells {
		if cell != "" {
			values[i] = cell
		}
	}
	return Column{Name: name, Kind: KindString, Values: values}
}

// parseAll parses every non-empty cell. It fails when a column has no
// non-empty cells so such columns fall through to strings.
func parseAll(cells []string, parse func(string) (any, bool)) ([]any, bool) {
	values := make([]any, len(cells))
	parsed := 0
	for i, cell := range cells {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		v, ok := parse(cell)
		if !ok {
			return nil, false
		}
		values[i] = v
		parsed++
	}
	return values, parsed > 0
}

// ReadRecords loads a Frame from a JSON or YAML sequence of objects. Columns
// appear in the order their keys are first seen; cells missing from a record
// are nil. Column kinds are inferred.
func ReadRecords(r io.Reader) (*Frame, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: records: empty input", ErrInvalidArgument)
		}
		return nil, fmt.Errorf("records: decode: %w", err)
	}
	seq := &doc
	if seq.Kind == yaml.DocumentNode && len(seq.Content) > 0 {
		seq = seq.Content[0]
	}
	if seq.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: records: want a sequence of objects", ErrInvalidArgument)
	}

	var names []string
	index := map[string]int{}
	var rows []map[int]any
	for i, item := range seq.Content {
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: records: item %d is not an object", ErrInvalidArgument, i)
		}
		row := make(map[int]any, len(item.Content)/2)
		for k := 0; k+1 < len(item.Content); k += 2 {
			key := item.Content[k].Value
			c, ok := index[key]
			if !ok {
				c = len(names)
				index[key] = c
				names = append(names, key)
			}
			var v any
			if err := item.Content[k+1].Decode(&v); err != nil {
				return nil, fmt.Errorf("records: item %d key %q: %w", i, key, err)
			}
			row[c] = v
		}
		rows = append(rows, row)
	}

	cols := make([]Column, len(names))
	for c, name := range names {
		values := make([]any, len(rows))
		for r, row := range rows {
			values[r] = row[c]
		}
		cols[c] = Column{Name: name, Values: values}
	}
	return NewFrame(cols...)
}
