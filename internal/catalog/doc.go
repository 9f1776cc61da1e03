// Package catalog builds and queries the in-memory media directory.
//
// A material is an audio file paired with a subtitle or transcript file that
// shares its directory and base name. Materials are addressed by a derived
// key of the form "<namespace>/<relative-path-without-extension>" using
// forward slashes on every platform. The directory is rebuilt from disk on
// demand and replaced as a whole; it is never mutated in place.
package catalog
