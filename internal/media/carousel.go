package media

// Variant selects how a carousel renders its playable media.
type Variant string

const (
	// Preview is the compact card rendition: silent looping autoplay.
	Preview Variant = "preview"
	// Detail is the full detail page rendition with player controls.
	Detail Variant = "detail"
)

// ParseVariant falls back to Detail for anything unrecognised.
func ParseVariant(s string) Variant {
	if Variant(s) == Preview {
		return Preview
	}
	return Detail
}

// Carousel is the index state over an ordered, immutable list of items.
// The zero value is an empty carousel.
type Carousel[T any] struct {
	items  []T
	active int
}

// NewCarousel starts at index start, normalised into range.
func NewCarousel[T any](items []T, start int) *Carousel[T] {
	c := &Carousel[T]{items: items}
	c.GoTo(start)
	return c
}

// Len is the number of items.
func (c *Carousel[T]) Len() int { return len(c.items) }

// Index is the active index; 0 for an empty carousel.
func (c *Carousel[T]) Index() int { return c.active }

// Position is the 1-based active index for "current / total" counters.
func (c *Carousel[T]) Position() int { return c.active + 1 }

// HasMultiple reports whether navigation controls apply.
func (c *Carousel[T]) HasMultiple() bool { return len(c.items) > 1 }

// Items returns the underlying list.
func (c *Carousel[T]) Items() []T { return c.items }

// Current returns the active item, false when empty.
func (c *Carousel[T]) Current() (T, bool) {
	if len(c.items) == 0 {
		var zero T
		return zero, false
	}
	return c.items[c.active], true
}

// GoTo moves delta steps, wrapping in both directions, and returns the new
// index. It is a no-op on an empty carousel.
func (c *Carousel[T]) GoTo(delta int) int {
	c.active = c.Peek(delta)
	return c.active
}

// Peek returns the index GoTo(delta) would move to without moving.
func (c *Carousel[T]) Peek(delta int) int {
	n := len(c.items)
	if n == 0 {
		return 0
	}
	// delta may exceed n, so reduce before adding n.
	return ((c.active+delta)%n + n) % n
}

// Next advances one item.
func (c *Carousel[T]) Next() int { return c.GoTo(1) }

// Prev steps back one item.
func (c *Carousel[T]) Prev() int { return c.GoTo(-1) }
