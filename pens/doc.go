// Package pens parses the textual form of geoPensMap (spec.md §6,
// SPEC_FULL §4.L): one override per line, `<edgeID> <direction 0-7>
// <penalty>`. Malformed input is rejected with a line/column-accurate
// error from a small participle grammar rather than a hand-rolled
// line splitter.
package pens
