// Package frame defines the canonical long-format time-series representation
// and the boundary between it and external tabular shapes.
//
// A Frame is an ordered sequence of (id, time, value) records: the id is an
// ordered tuple of identifier values, the timestamp carries but never
// interprets timezone metadata, and the value may be missing. Every core
// operation (frequency detection, bucketing, shifting, binding) consumes and
// produces Frames, so the algorithms stay representation-agnostic.
//
// # Adoption and rendering
//
// External representations cross the boundary through the Boxer registry.
// Adopt resolves which columns play the time, value and identifier roles and
// produces a Frame; Render rebuilds a representation from a Frame by tag:
//
//	f, err := frame.Adopt(table)                 // role inference
//	f, err = frame.Adopt(table,
//	    frame.WithTimeColumn("period"))          // pin an ambiguous role
//	out, err := frame.Render(f, "wide")          // pivot to wide format
//
// Built-in boxers cover the long Table form ("table"), row maps
// ("records"), and a wide pivot with one column per series ("wide").
// Additional representations can be added with Register.
//
// # Grouping
//
// Groups partitions a Frame into an ordered mapping from id tuple to row
// indices. Per-group algorithms operate on these partitions; within a group
// records are expected time-ascending, and EnsureSorted restores the
// invariant when an input violates it.
package frame
