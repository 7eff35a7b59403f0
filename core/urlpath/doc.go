// Package urlpath turns absolute URLs and raw paths into the canonical path
// form stored in the KV namespace: the path component exactly as written,
// always starting and ending with a slash. Escapes are neither decoded nor
// added, so paths hash the same as the records already stored.
//
// # Usage
//
//	urlpath.Normalize("https://example.com/blog?page=2") // "/blog/"
//	urlpath.Normalize("/blog/")                         // "/blog/"
//	urlpath.Normalize("https://example.com/café")       // "/café/"
package urlpath
