package tui

// Banner cycles through promotional quotes.
type Banner struct {
	quotes []string
	index  int
}

// NewBanner creates a banner showing the first quote.
func NewBanner(quotes []string) Banner {
	return Banner{quotes: append([]string(nil), quotes...)}
}

// Current returns the quote on display, or "" if there are none.
func (b Banner) Current() string {
	if len(b.quotes) == 0 {
		return ""
	}
	return b.quotes[b.index]
}

// Next advances to the following quote, wrapping at the end.
func (b Banner) Next() Banner {
	if len(b.quotes) > 0 {
		b.index = (b.index + 1) % len(b.quotes)
	}
	return b
}

// Rotates reports whether there is more than one quote to cycle through.
func (b Banner) Rotates() bool {
	return len(b.quotes) > 1
}
