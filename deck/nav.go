package deck

// Navigator holds the current page index, always within [0, count-1].
type Navigator struct {
	index int
	count int
}

// NewNavigator starts at the first of count pages.
func NewNavigator(count int) *Navigator {
	return &Navigator{count: count}
}

// Index is the 0-based current page.
func (n *Navigator) Index() int { return n.index }

// Count is the number of pages.
func (n *Navigator) Count() int { return n.count }

// Next advances one page and reports whether the index changed.
func (n *Navigator) Next() bool {
	if n.index >= n.count-1 {
		return false
	}
	n.index++
	return true
}

// Prev goes back one page and reports whether the index changed.
func (n *Navigator) Prev() bool {
	if n.index <= 0 {
		return false
	}
	n.index--
	return true
}
