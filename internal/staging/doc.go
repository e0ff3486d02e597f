// Package staging resolves locally built source packages and mirrors their
// published shape, manifest plus artifact tree, into a consumer's dependency
// directory. The destination emulates an installed dependency without a
// registry round-trip.
package staging
