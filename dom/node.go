package dom

// Element is the capability set the extractors need from a parsed HTML
// element. Implementations wrap whatever tree the parsing library produces.
type Element interface {
	// Name returns the element's tag name, lower-cased ("td", "tr", "sup").
	Name() string

	// IntAttr returns the named attribute parsed as an integer, or def when
	// the attribute is absent or non-numeric.
	IntAttr(name string, def int) int

	// Descendants returns every descendant element with the given tag name,
	// in document order. The receiver itself is never included.
	Descendants(name string) []Element

	// Text returns the element's text content with internal whitespace runs
	// collapsed to single spaces and leading/trailing whitespace trimmed.
	Text() string

	// Detach removes the element's subtree from its parent. Detaching an
	// element with no parent is a no-op.
	Detach()

	// Clone returns a deep copy of the element's subtree, detached from any
	// parent, so callers can mutate it without touching the original.
	Clone() Element
}
