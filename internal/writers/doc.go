// Package writers turns raw matches and count rows into delimited tables.
//
// Design:
//   • Writers own all presentation knowledge (headers, delimiters, extensions).
//   • Aggregation stays domain-only; the pipeline stays orchestration-only.
//   • Formats are looked up in a registry so callers never switch on names.
package writers
