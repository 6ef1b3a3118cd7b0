// Package consolidate merges scattered TV show directories into one
// canonical tree per show.
//
// A run moves through four stages: discover candidate show directories under
// a root, group the ones that name the same show, enhance each group with an
// online identity lookup, and merge every multi-directory group into a
// unified "{Title} (Year) [id-X]" tree organized by season. Failures at the
// level of one file or one member directory become recorded outcomes instead
// of aborting the run.
package consolidate
