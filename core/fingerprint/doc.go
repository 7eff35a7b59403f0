// Package fingerprint computes the content hash used for change detection.
//
// A URL set is sorted, encoded as a JSON array with fixed separators and
// hashed with MD5. The encoding is byte-for-byte the one produced by the
// service that first populated the KV namespace, so hashes already stored
// there stay comparable:
//
//	["/a/", "/b/", "/c/"]
//
// Elements are separated by ", ", every non-ASCII rune is written as a
// lowercase \uXXXX escape and no HTML escaping is applied.
package fingerprint
