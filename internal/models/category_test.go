package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalCategory(t *testing.T) {
	assert.Equal(t, CategoryShopping, CanonicalCategory("shopping"))
	assert.Equal(t, CategoryFood, CanonicalCategory("  FOOD "))
	assert.Equal(t, CategoryUncategorized, CanonicalCategory("uncategorized"))
	assert.Equal(t, "", CanonicalCategory("Groceries"))
}

func TestIsLearnableCategory(t *testing.T) {
	assert.True(t, IsLearnableCategory(CategoryShopping))
	assert.False(t, IsLearnableCategory(CategoryOther))
	assert.False(t, IsLearnableCategory(CategoryUncategorized))
	assert.False(t, IsLearnableCategory("shopping"))
}

func TestAICategories_ExcludeUncategorized(t *testing.T) {
	assert.NotContains(t, AICategories(), CategoryUncategorized)
	assert.Contains(t, AllCategories(), CategoryUncategorized)
	assert.Len(t, AICategories(), 11)
}

func TestNormalizeKeyword(t *testing.T) {
	assert.Equal(t, "unknown merchant xyz", NormalizeKeyword("  Unknown Merchant XYZ "))
}
