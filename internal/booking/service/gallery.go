package service

// Gallery tracks the visible image index of a property's image set with
// circular navigation.
type Gallery struct {
	index int
	count int
}

func NewGallery(count int) *Gallery {
	if count < 0 {
		count = 0
	}
	return &Gallery{count: count}
}

func (g *Gallery) Index() int {
	return g.index
}

// CanNavigate reports whether navigation does anything: zero or one image
// disables it.
func (g *Gallery) CanNavigate() bool {
	return g.count > 1
}

func (g *Gallery) Next() int {
	if !g.CanNavigate() {
		return g.index
	}
	g.index = (g.index + 1) % g.count
	return g.index
}

func (g *Gallery) Prev() int {
	if !g.CanNavigate() {
		return g.index
	}
	g.index = (g.index - 1 + g.count) % g.count
	return g.index
}
