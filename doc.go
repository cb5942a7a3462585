// Package tabfmt turns tabular data into console-printable tables and formats
// numbers and durations as compact human-readable strings.
//
// # Tabular input
//
// Any value implementing [Tabular] (ordered named columns over ordered rows)
// can be formatted. [Frame] is the built-in column-oriented implementation;
// [NewFrame] validates that columns have equal length and consistent kinds.
// Frames can be loaded with [ReadCSV], [ReadRecords] (JSON or YAML) and
// [ReadSQL].
//
// # Display tables
//
// [Tabulate] copies rows into a [DisplayTable], optionally keeping only the
// first or last n rows:
//
//	t, err := tabfmt.Tabulate(frame, tabfmt.Top(10))
//	fmt.Print(t)
//
// Supplying both [Top] and [Bottom] fails with [ErrInvalidArgument].
//
// # Rendering
//
// [DisplayTable.Write] renders Table, Markdown, CSV, TSV, HTML, JSON, JSONL,
// YAML and [GoTemplate] output. Render options control the table layout:
//
//   - [WithBorder]: border style (default [BorderRounded])
//   - [WithTitle] and [WithCaption]: lines above and below the table
//   - [WithAlignments]: per-column alignment (numeric columns default right)
//   - [WithFooter] and [WithRowNumbers]
//   - [WithMaxWidths] and [WithWrapWidths]: truncation and wrapping
//   - [WithPageSize] and [WithGroupBy]: repeated headers and group separators
//   - [WithStyles] and [WithHeaderStyle]: ANSI styling after layout
//   - [WithCellFormatter]: cell text, e.g. [HumanizeNumbers]
//
// [WriteSeq] streams rows from an iterator for formats that allow it.
//
// # Value formatting
//
// [FormatMagnitude] and [FormatDuration] scale a number against a descending
// threshold table:
//
//	tabfmt.FormatMagnitude(1500, 1)      // "1.5 K"
//	tabfmt.FormatDuration(90, 1)         // "1.5 min"
//
// [MagnitudeTicks] and [DurationTicks] adapt them to chart tick callbacks.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidArgument]: conflicting or out-of-range options
//   - [ErrTypeKind]: a value of the wrong type reached a formatter or column
//   - [ErrShape]: columns or records of unequal length
//   - [ErrUnsupportedFormat]: unknown format string
//   - [ErrInvalidTemplate]: invalid go-template syntax
package tabfmt
