package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog_PreservesOrder(t *testing.T) {
	c, err := NewCatalog([]MenuItem{
		{Key: "борщ", Name: "Борщ"},
		{Key: "блины", Name: "Блины"},
		{Key: "пельмени", Name: "Пельмени"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"борщ", "блины", "пельмени"}, c.Keys())
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, "Блины", c.Items()[1].Name)
}

func TestNewCatalog_RejectsDuplicateKeys(t *testing.T) {
	_, err := NewCatalog([]MenuItem{{Key: "a"}, {Key: "a"}})
	assert.Error(t, err)
}

func TestCatalog_ItemsIsACopy(t *testing.T) {
	c, err := NewCatalog([]MenuItem{{Key: "a", Price: 10}})
	require.NoError(t, err)

	items := c.Items()
	items[0].Price = 999

	assert.Equal(t, 10, c.Items()[0].Price)
}

func TestCatalog_FindByNormalizedName_FirstInCatalogOrder(t *testing.T) {
	c, err := NewCatalog([]MenuItem{
		{Key: "a", NormalizedName: "суп"},
		{Key: "b", NormalizedName: "чай"},
		{Key: "c", NormalizedName: "суп"},
	})
	require.NoError(t, err)

	it, ok := c.FindByNormalizedName([]string{"чай", "суп"})
	require.True(t, ok)
	assert.Equal(t, "a", it.Key)

	_, ok = c.FindByNormalizedName(nil)
	assert.False(t, ok)
	_, ok = c.FindByNormalizedName([]string{"кофе"})
	assert.False(t, ok)
}

func TestTaste_Validate(t *testing.T) {
	assert.NoError(t, Taste{Spiciness: 0, Vegetarian: 1, Saltiness: 0.5, Sweetness: 0.9}.Validate())
	assert.Error(t, Taste{Spiciness: 1.2}.Validate())
	assert.Error(t, Taste{Sweetness: -0.1}.Validate())
	assert.Error(t, Taste{Saltiness: math.NaN()}.Validate())
	assert.Error(t, Taste{Vegetarian: math.Inf(1)}.Validate())
}

func TestIntent_IsValid(t *testing.T) {
	for _, i := range AllIntents() {
		assert.True(t, i.IsValid(), "expected %s to be valid", i)
	}
	assert.False(t, IntentNone.IsValid())
	assert.False(t, Intent("weather").IsValid())
}

func TestClampSentiment(t *testing.T) {
	assert.Equal(t, 1.0, ClampSentiment(1.5))
	assert.Equal(t, -1.0, ClampSentiment(-3))
	assert.Equal(t, 0.25, ClampSentiment(0.25))
	assert.Equal(t, 0.0, ClampSentiment(math.NaN()))
}

func TestNormalizedOfType(t *testing.T) {
	entities := []Entity{
		{Type: EntityMenuItem, Normalized: "борщ"},
		{Type: EntityNumber, Normalized: "2"},
		{Type: EntityMenuItem, Normalized: "чай"},
	}
	assert.Equal(t, []string{"борщ", "чай"}, NormalizedOfType(entities, EntityMenuItem))
	assert.Nil(t, NormalizedOfType(entities, "PER"))
}
