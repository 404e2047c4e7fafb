// Package calibration holds the label placement tables for visual analogue
// scales.
//
// A [Table] maps a label count N to an [Entry]: two strictly increasing
// position vectors, in percent of track width, chosen empirically for that N.
// High is the layout at alignment 100 (labels spread toward the track edges)
// and Mid the layout at alignment 50 (labels pulled toward the center).
//
// Tables are validated when constructed and never change afterwards, so one
// table can be shared by any number of goroutines without locking. The
// built-in table is returned by [Default]; alternate tables can be read from
// TOML with [Load] or [Parse]:
//
//	[[scale]]
//	count = 3
//	high  = [5, 50, 87]
//	mid   = [20, 50, 70]
//
// Counts missing from a table have no calibration. [Uniform] produces the
// evenly spaced vectors callers can opt into for those counts.
package calibration
