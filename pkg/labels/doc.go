// Package labels computes where the labels of a visual analogue scale sit
// along the track.
//
// Placement is driven by an alignment factor. At 50 the labels follow the
// compressed calibration vector and at 100 the spread one; anywhere else
// the position moves along the straight line through those two anchors:
//
//	t   = (alignment - 50) / (100 - 50)
//	pos = mid[i] + t * (high[i] - mid[i])
//
// Values below 50 or above 100 extrapolate along the same line. Pass
// [WithClampAlignment] to restrict the factor to [0,100] first.
//
// Label counts without a calibration entry fail with
// UNSUPPORTED_LABEL_COUNT unless the calculator opts into
// [FallbackUniform], which substitutes [calibration.Uniform] vectors for
// counts up to [calibration.MaxUniformCount].
//
// A [Calculator] holds no mutable state and is safe for concurrent use.
package labels
