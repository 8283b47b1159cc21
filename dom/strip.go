package dom

// decorationNames are element names that carry no table data: footnote
// markers and images pollute cell text when serialized.
var decorationNames = []string{"sup", "img"}

// StripDecorations returns a copy of the element with every decoration
// descendant removed. The caller's original tree is left untouched.
func StripDecorations(el Element) Element {
	working := el.Clone()
	for _, name := range decorationNames {
		for _, junk := range working.Descendants(name) {
			junk.Detach()
		}
	}
	return working
}
