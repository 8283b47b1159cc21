// Package dom provides the document-tree boundary the extractors work
// against: a small typed node abstraction (name, attributes with defaults,
// descendant search, subtree removal, normalized text) plus a concrete
// implementation backed by golang.org/x/net/html. Any parsing library that
// can satisfy Element can feed the extractors.
package dom
