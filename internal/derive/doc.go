// Package derive computes filtered and personalized views over catalog
// collections. Every function is pure: inputs are never mutated and results
// are fresh slices. Sport comparisons are exact; text queries are
// case-insensitive substring matches.
package derive
