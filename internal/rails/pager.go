package rails

// Pager slices a list into fixed-size pages. Page numbers start at 1 and
// are clamped to the available range.
type Pager struct {
	Total int
	Size  int
	Page  int
}

func NewPager(total, size, page int) Pager {
	if size <= 0 {
		size = 1
	}
	p := Pager{Total: max(total, 0), Size: size}
	p.Page = min(max(page, 1), p.Pages())
	return p
}

// Pages is the number of pages, never less than one.
func (p Pager) Pages() int {
	if p.Total == 0 {
		return 1
	}
	return (p.Total + p.Size - 1) / p.Size
}

// Bounds returns the half-open index range of the current page.
func (p Pager) Bounds() (int, int) {
	start := (p.Page - 1) * p.Size
	end := min(start+p.Size, p.Total)
	return min(start, p.Total), end
}

func (p Pager) HasPrev() bool {
	return p.Page > 1
}

func (p Pager) HasNext() bool {
	return p.Page < p.Pages()
}

func (p Pager) Prev() int {
	return max(p.Page-1, 1)
}

func (p Pager) Next() int {
	return min(p.Page+1, p.Pages())
}

// Multi reports whether there is more than one page to move between.
func (p Pager) Multi() bool {
	return p.Pages() > 1
}

// Page returns the items of the current page of list.
func Page[T any](list []T, p Pager) []T {
	start, end := p.Bounds()
	if start >= end {
		return nil
	}
	return list[start:end]
}
