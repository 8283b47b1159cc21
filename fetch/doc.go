// Package fetch retrieves the source document over HTTP and locates the
// two table shapes the extractors understand: the road-type definition
// table and the per-country speed tables. The extraction core never
// fetches anything itself; this package is the retrieval collaborator the
// CLI composes with it.
package fetch
