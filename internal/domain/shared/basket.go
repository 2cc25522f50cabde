package shared

import "fmt"

// KindCount is the number of resource kinds tracked by a basket.
// The vocabulary (display names) for the kinds is configurable, the
// count itself is fixed.
const KindCount = 5

// Basket is an inventory snapshot: one counter per resource kind.
// It is a comparable value type with no identity beyond its contents,
// so it can be used directly as a map key for state deduplication.
//
// A basket stored as a reachable state always has all counters >= 0.
// Intermediate arithmetic during a trade attempt may combine to a
// negative counter; such results are rejected, never stored.
type Basket struct {
	counts [KindCount]int
}

// NewBasket creates a basket from per-kind counts (kind 0 first) with validation.
// Fewer than KindCount values leave the remaining kinds at zero.
func NewBasket(counts ...int) (Basket, error) {
	if len(counts) > KindCount {
		return Basket{}, NewValidationError("counts", fmt.Sprintf("expected at most %d kinds, got %d", KindCount, len(counts)))
	}

	var b Basket
	for i, count := range counts {
		if count < 0 {
			return Basket{}, NewValidationError("counts", fmt.Sprintf("kind %d count cannot be negative", i))
		}
		b.counts[i] = count
	}
	return b, nil
}

// ZeroBasket returns the all-zero basket, the identity for combination.
func ZeroBasket() Basket {
	return Basket{}
}

// Count returns the counter for one kind. Out-of-range indices yield 0.
func (b Basket) Count(index int) int {
	if index < 0 || index >= KindCount {
		return 0
	}
	return b.counts[index]
}

// Counts returns all counters in kind order.
func (b Basket) Counts() [KindCount]int {
	return b.counts
}

// Total returns the sum of all counters.
func (b Basket) Total() int {
	total := 0
	for _, count := range b.counts {
		total += count
	}
	return total
}

// Contains reports whether the basket covers other: every counter of b
// is >= the corresponding counter of other.
func (b Basket) Contains(other Basket) bool {
	for i := 0; i < KindCount; i++ {
		if b.counts[i] < other.counts[i] {
			return false
		}
	}
	return true
}

// AddByIndex adjusts one counter by delta. An out-of-range index is a
// no-op, not an error. The result may be negative; callers that store
// baskets check IsValid first.
func (b *Basket) AddByIndex(index, delta int) {
	if index < 0 || index >= KindCount {
		return
	}
	b.counts[index] += delta
}

// IsValid reports whether all counters are non-negative.
func (b Basket) IsValid() bool {
	for _, count := range b.counts {
		if count < 0 {
			return false
		}
	}
	return true
}

// IsEmpty reports whether all counters are zero.
func (b Basket) IsEmpty() bool {
	return b == Basket{}
}

func (b Basket) String() string {
	return fmt.Sprintf("Basket%v", b.counts)
}
