// Package quality classifies media files into technical quality profiles.
//
// Classification runs ordered pattern tables against the file name and falls
// back to a container probe when the name alone is too sparse. A deterministic
// formatter renders a profile back into the bracketed quality string used by
// the renamer.
package quality
