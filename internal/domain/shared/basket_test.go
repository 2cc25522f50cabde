package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradeworks/tradeworks-go/internal/domain/shared"
)

func TestNewBasket_Valid(t *testing.T) {
	b, err := shared.NewBasket(3, 0, 2, 0, 1)

	require.NoError(t, err)
	assert.Equal(t, 3, b.Count(0))
	assert.Equal(t, 2, b.Count(2))
	assert.Equal(t, 1, b.Count(4))
	assert.Equal(t, 6, b.Total())
}

func TestNewBasket_FewerCountsLeaveZeros(t *testing.T) {
	b, err := shared.NewBasket(2)

	require.NoError(t, err)
	assert.Equal(t, 2, b.Count(0))
	assert.Equal(t, 0, b.Count(1))
	assert.Equal(t, 2, b.Total())
}

func TestNewBasket_NegativeCountRejected(t *testing.T) {
	_, err := shared.NewBasket(1, -1)

	require.Error(t, err)
	assert.IsType(t, &shared.ValidationError{}, err)
}

func TestNewBasket_TooManyKindsRejected(t *testing.T) {
	_, err := shared.NewBasket(1, 1, 1, 1, 1, 1)

	require.Error(t, err)
}

func TestBasket_Contains(t *testing.T) {
	b, _ := shared.NewBasket(3, 1, 0, 0, 2)

	covered, _ := shared.NewBasket(1, 1)
	uncovered, _ := shared.NewBasket(0, 2)

	assert.True(t, b.Contains(covered))
	assert.True(t, b.Contains(shared.ZeroBasket()))
	assert.True(t, b.Contains(b))
	assert.False(t, b.Contains(uncovered))
}

func TestBasket_AddByIndex(t *testing.T) {
	b := shared.ZeroBasket()

	b.AddByIndex(2, 4)
	b.AddByIndex(2, -1)

	assert.Equal(t, 3, b.Count(2))
	assert.True(t, b.IsValid())
}

func TestBasket_AddByIndexOutOfRangeIsNoOp(t *testing.T) {
	b, _ := shared.NewBasket(1, 2, 3, 4, 5)
	before := b

	b.AddByIndex(-1, 10)
	b.AddByIndex(shared.KindCount, 10)

	assert.Equal(t, before, b)
}

func TestBasket_CountOutOfRangeIsZero(t *testing.T) {
	b, _ := shared.NewBasket(1, 2, 3, 4, 5)

	assert.Equal(t, 0, b.Count(-1))
	assert.Equal(t, 0, b.Count(shared.KindCount))
}

func TestBasket_IsValidAfterNegativeAdjustment(t *testing.T) {
	b := shared.ZeroBasket()

	b.AddByIndex(0, -1)

	assert.False(t, b.IsValid())
}

func TestBasket_EqualityByValue(t *testing.T) {
	a, _ := shared.NewBasket(1, 2, 0, 0, 0)
	b, _ := shared.NewBasket(1, 2)

	// Comparable by full field tuple - usable as a map key.
	assert.Equal(t, a, b)
	seen := map[shared.Basket]struct{}{a: {}}
	_, ok := seen[b]
	assert.True(t, ok)
}

func TestBasket_IsEmpty(t *testing.T) {
	assert.True(t, shared.ZeroBasket().IsEmpty())

	b, _ := shared.NewBasket(0, 0, 1)
	assert.False(t, b.IsEmpty())
}
