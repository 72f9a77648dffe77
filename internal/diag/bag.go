package diag

import (
	"cmp"
	"math"
	"slices"
)

// Bag collects the diagnostics of one file or one run, up to a limit.
type Bag struct {
	items []Diagnostic
	limit int
}

// NewBag creates a bag holding at most limit diagnostics.
// Values outside 1..65535 select the largest capacity.
func NewBag(limit int) *Bag {
	if limit <= 0 || limit > math.MaxUint16 {
		limit = math.MaxUint16
	}
	return &Bag{items: make([]Diagnostic, 0, min(limit, 64)), limit: limit}
}

// Add appends d and reports false once the bag is full.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) == b.limit {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) HasErrors() bool { return b.Count(SevError) > 0 }

// Count returns the number of diagnostics at or above sev.
func (b *Bag) Count(sev Severity) (n int) {
	for _, d := range b.items {
		if d.Severity >= sev {
			n++
		}
	}
	return n
}

func (b *Bag) Len() int { return len(b.items) }

// Items exposes the backing slice; callers must not modify it.
func (b *Bag) Items() []Diagnostic { return b.items }

// Merge appends every diagnostic of other, raising the limit when needed
// (never past 65535).
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	b.limit = max(b.limit, min(len(b.items)+len(other.items), math.MaxUint16))
	room := b.limit - len(b.items)
	b.items = append(b.items, other.items[:min(room, len(other.items))]...)
}

// Sort orders by position, then severity (most severe first), then code.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		return cmp.Or(
			x.Primary.Compare(y.Primary),
			cmp.Compare(y.Severity, x.Severity),
			cmp.Compare(x.Code, y.Code),
		)
	})
}
