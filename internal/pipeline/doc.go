// Package pipeline runs one file pair end to end: load and deduplicate reads,
// fan the left patterns out over a bounded worker pool, aggregate, and write
// the raw and count tables.
//
// Workers share the read set and the catalog read-only; each pattern task owns
// its result slot, and results are concatenated in catalog order so output is
// independent of scheduling.
package pipeline
