// Package chapters turns a YouTube-style chapter list into contiguous,
// fully bounded chapter ranges.
//
// Stages:
//   - ParseTimestamp: "[H:]MM:SS" → milliseconds (timestamp.go)
//   - Parse / ParseFile: one "<timestamp> [sep] <title>" record per line,
//     optional "start - end title" convention, BOM-aware decoding (parser.go)
//   - Normalize: sort, anchor the first chapter at zero, reject duplicates
//     and starts past the end, build ranges (normalize.go)
//
// Every failure is a distinct error type or sentinel (errors.go) so callers
// can match with errors.Is / errors.As.
package chapters
