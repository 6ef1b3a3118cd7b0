// Package textutil provides text processing utilities for title similarity
// and filename sanitization.
//
// The primary use cases are:
//   - Computing edit-distance similarity ratios between normalized titles
//   - Computing word-overlap (Jaccard) ratios between raw titles
//   - Sanitizing directory and file names for safe filesystem use
//
// Similarity ratios are symmetric and range from 0 (disjoint) to 1 (equal).
package textutil
