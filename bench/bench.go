// Package bench times function calls with their standard output suppressed.
//
// Quiet swaps the process-wide os.Stdout, so calls must not overlap with
// other goroutines that write to or replace it.
package bench

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bjaus/tabfmt"
)

// Quiet runs fn with os.Stdout pointed at the null device. The original
// os.Stdout is restored on every exit path, including a panic in fn, which
// is propagated after restoration.
func Quiet(fn func() error) error {
	sink, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("bench: open null device: %w", err)
	}
	original := os.Stdout
	os.Stdout = sink
	defer func() {
		os.Stdout = original
		_ = sink.Close()
	}()
	return fn()
}

// Time reports how long fn takes with its standard output suppressed.
func Time(fn func()) (time.Duration, error) {
	var elapsed time.Duration
	err := Quiet(func() error {
		start := time.Now()
		fn()
		elapsed = time.Since(start)
		return nil
	})
	return elapsed, err
}

// Result summarizes repeated timings of one function.
type Result struct {
	Name  string
	Runs  int
	Total time.Duration
	Min   time.Duration
	Max   time.Duration
	Mean  time.Duration
}

// Run times fn runs times. Cancellation is checked between runs.
func Run(ctx context.Context, name string, runs int, fn func()) (Result, error) {
	if runs < 1 {
		return Result{}, fmt.Errorf("%w: runs must be positive, got %d", tabfmt.ErrInvalidArgument, runs)
	}
	res := Result{Name: name}
	for range runs {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		d, err := Time(fn)
		if err != nil {
			return res, err
		}
		if res.Runs == 0 || d < res.Min {
			res.Min = d
		}
		res.Max = max(res.Max, d)
		res.Total += d
		res.Runs++
	}
	res.Mean = res.Total / time.Duration(res.Runs)
	return res, nil
}

var columns = []string{"Benchmark", "Runs", "Total", "Mean", "Min", "Max"}

// Table lays results out one per row. Durations are stored as float seconds.
func Table(results []Result) (tabfmt.DisplayTable, error) {
	values := make([][]any, len(columns))
	for _, r := range results {
		row := []any{r.Name, r.Runs, r.Total.Seconds(), r.Mean.Seconds(), r.Min.Seconds(), r.Max.Seconds()}
		for c, v := range row {
			values[c] = append(values[c], v)
		}
	}
	cols := make([]tabfmt.Column, len(columns))
	for c, name := range columns {
		cols[c] = tabfmt.Column{Name: name, Values: values[c]}
	}
	cols[0].Kind, cols[1].Kind = tabfmt.KindString, tabfmt.KindInt
	for c := 2; c < len(cols); c++ {
		cols[c].Kind = tabfmt.KindFloat
	}
	f, err := tabfmt.NewFrame(cols...)
	if err != nil {
		return tabfmt.DisplayTable{}, err
	}
	return tabfmt.Tabulate(f)
}

// Render writes results in format f with durations humanized. Extra options
// are applied after the defaults.
func Render(w io.Writer, results []Result, f tabfmt.Format, opts ...tabfmt.RenderOption) error {
	t, err := Table(results)
	if err != nil {
		return err
	}
	defaults := []tabfmt.RenderOption{
		tabfmt.WithCellFormatter(tabfmt.HumanizeDurations(tabfmt.DefaultPrecision, 2, 3, 4, 5)),
	}
	return t.Write(w, f, append(defaults, opts...)...)
}
