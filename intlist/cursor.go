package intlist

// cursor walks the present elements of a list front to back without
// modifying it.
type cursor struct {
	l   *IntList
	pos int
}

func (l *IntList) cursor() *cursor {
	return &cursor{l: l}
}

// next returns the next element, or Nil and false when the list is exhausted.
func (c *cursor) next() (int, bool) {
	if c.pos >= c.l.size {
		return Nil, false
	}
	v := c.l.list[c.pos]
	c.pos++
	return v, true
}
