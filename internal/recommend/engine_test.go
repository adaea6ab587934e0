package recommend

import (
	"math/rand/v2"
	"testing"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dish(key string, spicy, veg, salt, sweet float64) domain.MenuItem {
	return domain.MenuItem{
		Key: key, Name: key, NameLower: key, Price: 100,
		Taste: domain.Taste{Spiciness: spicy, Vegetarian: veg, Saltiness: salt, Sweetness: sweet},
	}
}

func testCatalog(t *testing.T, items ...domain.MenuItem) *domain.Catalog {
	t.Helper()
	c, err := domain.NewCatalog(items)
	require.NoError(t, err)
	return c
}

func TestScore_DessertAfterSavory(t *testing.T) {
	cart := []domain.MenuItem{dish("карри", 0.8, 0, 0.6, 0.1)}
	cake := dish("торт", 0, 1, 0, 0.9)

	profile, ok := Profile(cart)
	require.True(t, ok)
	s := Score(cake, profile)

	want := (1 - 0.8) + (1 - 0.6) + (1 - 0.8) - 0.15 + 0.2
	assert.InDelta(t, want, s.Score, 1e-9)

	var codes []ReasonCode
	for _, r := range s.Reasons {
		codes = append(codes, r.Code)
	}
	assert.Contains(t, codes, ReasonDessertFollowUp)
	assert.Contains(t, codes, ReasonVegForMeat)
	assert.NotContains(t, codes, ReasonMeatForVeg)
}

func TestScore_MeatForVegetarianOrder(t *testing.T) {
	profile := domain.Taste{Vegetarian: 1, Sweetness: 0.5}
	s := Score(dish("стейк", 0, 0, 0, 0.5), profile)
	assert.InDelta(t, 3-0.5, s.Score, 1e-9)
}

func TestScore_VegetarianBoundaryIsNeutral(t *testing.T) {
	profile := domain.Taste{Vegetarian: 0.5, Sweetness: 0.5}
	s := Score(dish("x", 0, 0, 0, 0.5), profile)
	assert.InDelta(t, 3.0, s.Score, 1e-9)
}

func TestProfile_Mean(t *testing.T) {
	p, ok := Profile([]domain.MenuItem{dish("a", 1, 0, 0.2, 0), dish("b", 0, 1, 0.4, 1)})
	require.True(t, ok)
	assert.InDelta(t, 0.5, p.Spiciness, 1e-9)
	assert.InDelta(t, 0.5, p.Vegetarian, 1e-9)
	assert.InDelta(t, 0.3, p.Saltiness, 1e-9)
	assert.InDelta(t, 0.5, p.Sweetness, 1e-9)

	_, ok = Profile(nil)
	assert.False(t, ok)
}

func TestEngine_EmptyCartRecommendsNothing(t *testing.T) {
	e := NewEngine(testCatalog(t, dish("a", 0, 0, 0, 0)))
	_, ok := e.Recommend(nil)
	assert.False(t, ok)
}

func TestEngine_NeverRecommendsCartItem(t *testing.T) {
	soup := dish("суп", 0.2, 0, 0.5, 0.1)
	cake := dish("торт", 0, 1, 0.1, 0.9)
	e := NewEngine(testCatalog(t, soup, cake))

	got, ok := e.Recommend([]domain.MenuItem{soup, soup})
	require.True(t, ok)
	assert.Equal(t, "торт", got.Key)

	_, ok = e.Recommend([]domain.MenuItem{soup, cake})
	assert.False(t, ok, "every catalog item is already in the cart")
}

func TestEngine_TieKeepsCatalogOrder(t *testing.T) {
	first := dish("первый", 0.5, 0, 0.5, 0.5)
	second := dish("второй", 0.5, 0, 0.5, 0.5)
	cart := []domain.MenuItem{dish("заказ", 0.5, 0, 0.5, 0.5)}

	got, ok := NewEngine(testCatalog(t, first, second)).Recommend(cart)
	require.True(t, ok)
	assert.Equal(t, "первый", got.Key)

	got, _ = NewEngine(testCatalog(t, second, first)).Recommend(cart)
	assert.Equal(t, "второй", got.Key)
}

func TestEngine_PermutationInvariant(t *testing.T) {
	menu := []domain.MenuItem{
		dish("борщ", 0.2, 0, 0.6, 0.2),
		dish("том ям", 0.9, 0, 0.6, 0.2),
		dish("салат", 0.1, 1, 0.3, 0.2),
		dish("блины", 0, 1, 0.1, 0.8),
		dish("чизкейк", 0, 1, 0.1, 0.9),
		dish("морс", 0, 1, 0, 0.7),
	}
	e := NewEngine(testCatalog(t, menu...))
	cart := []domain.MenuItem{menu[0], menu[1], menu[2], menu[0]}

	want, ok := e.Recommend(cart)
	require.True(t, ok)

	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 20; i++ {
		shuffled := append([]domain.MenuItem(nil), cart...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		got, ok := e.Recommend(shuffled)
		require.True(t, ok)
		assert.Equal(t, want.Key, got.Key)
	}
}

func TestEngine_RankSkipsCartByLowercaseName(t *testing.T) {
	soup := dish("суп", 0.2, 0, 0.5, 0.1)
	renamed := soup
	renamed.Key = "суп дня"
	e := NewEngine(testCatalog(t, soup, renamed, dish("чай", 0, 1, 0, 0.3)))

	ranked := e.Rank([]domain.MenuItem{soup})
	require.Len(t, ranked, 1)
	assert.Equal(t, "чай", ranked[0].Item.Key)
}
