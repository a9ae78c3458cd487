package content

// Block is one node of a section's rich text body, in the portable-text
// shape CMS exports use: a style plus a run of spans. The carousel treats
// blocks as opaque; only the first text run is ever extracted (Excerpt).
type Block struct {
	Style string `yaml:"style,omitempty"` // "normal", "h3", "blockquote", ...
	Spans []Span `yaml:"spans,omitempty"`
}

// Span is a contiguous text run within a block, with optional marks
// ("strong", "em", ...). Marks are preserved but never interpreted here.
type Span struct {
	Text  string   `yaml:"text"`
	Marks []string `yaml:"marks,omitempty"`
}

// Excerpt returns the first non-empty text run of the section body, or ""
// if the body has none. Used for non-visual purposes (alt fallbacks,
// debug readouts); rendering does not depend on it.
func (s Section) Excerpt() string {
	for _, b := range s.Body {
		for _, sp := range b.Spans {
			if sp.Text != "" {
				return sp.Text
			}
		}
	}
	return ""
}
