package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradeworks/tradeworks-go/internal/domain/shared"
)

func TestNewVocabulary_PluralDefaultsToSingularPlusS(t *testing.T) {
	v, err := shared.NewVocabulary([shared.KindCount]shared.KindName{
		{Singular: "gem"},
		{Singular: "ore"},
		{Singular: "log"},
		{Singular: "hide"},
		{Singular: "berry", Plural: "berries"},
	})

	require.NoError(t, err)
	assert.Equal(t, "gems", v.Name(0, 2))
	assert.Equal(t, "berries", v.Name(4, 3))
}

func TestNewVocabulary_MissingSingularRejected(t *testing.T) {
	_, err := shared.NewVocabulary([shared.KindCount]shared.KindName{
		{Singular: "gem"},
	})

	require.Error(t, err)
	assert.IsType(t, &shared.ValidationError{}, err)
}

func TestVocabulary_SingularIffCountOne(t *testing.T) {
	v := shared.DefaultVocabulary()

	assert.Equal(t, "egg", v.Name(0, 1))
	assert.Equal(t, "eggs", v.Name(0, 0))
	assert.Equal(t, "eggs", v.Name(0, 2))
	assert.Equal(t, "", v.Name(shared.KindCount, 1))
}

func TestVocabulary_FormatBasketSkipsZeros(t *testing.T) {
	v := shared.DefaultVocabulary()
	b, _ := shared.NewBasket(1, 0, 2, 0, 0)

	assert.Equal(t, "1 egg, 2 cakes", v.FormatBasket(b, false))
}

func TestVocabulary_FormatBasketIncludeZeros(t *testing.T) {
	v := shared.DefaultVocabulary()
	b, _ := shared.NewBasket(1)

	assert.Equal(t, "1 egg, 0 worms, 0 cakes, 0 fishes, 0 meats", v.FormatBasket(b, true))
}

func TestVocabulary_KindByInitial(t *testing.T) {
	v := shared.DefaultVocabulary()

	kind, ok := v.KindByInitial('W')
	require.True(t, ok)
	assert.Equal(t, 1, kind)

	_, ok = v.KindByInitial('x')
	assert.False(t, ok)
}
