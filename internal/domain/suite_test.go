package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog_SuitesOf(t *testing.T) {
	catalog := NewCatalog()

	assert.Equal(t, []string{"201", "202", "203", "204"}, catalog.SuitesOf(SuiteCategoryBalcony))
	assert.Equal(t, []string{"303", "304"}, catalog.SuitesOf(SuiteCategoryFamily))
	assert.Equal(t, []string{"301", "205"}, catalog.SuitesOf(SuiteCategoryCouple))
	assert.Equal(t, []string{"101"}, catalog.SuitesOf(SuiteCategoryAccessible))
}

func TestCatalog_SuitesOf_UnknownCategory(t *testing.T) {
	catalog := NewCatalog()

	suites := catalog.SuitesOf(SuiteCategory("PENTHOUSE"))

	assert.Empty(t, suites)
}

func TestCatalog_InfoOf(t *testing.T) {
	catalog := NewCatalog()

	suite, err := catalog.InfoOf("201")
	assert.NoError(t, err)
	assert.Equal(t, SuiteCategoryBalcony, suite.Category)
	assert.Equal(t, int64(120000), suite.PriceCents)
	assert.True(t, suite.HasBalcony)
	assert.False(t, suite.Accessible)

	suite, err = catalog.InfoOf("101")
	assert.NoError(t, err)
	assert.Equal(t, SuiteCategoryAccessible, suite.Category)
	assert.Equal(t, int64(80000), suite.PriceCents)
	assert.True(t, suite.Accessible)
}

func TestCatalog_InfoOf_Unknown(t *testing.T) {
	catalog := NewCatalog()

	suite, err := catalog.InfoOf("999")

	assert.Nil(t, suite)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalog_EverySuiteBelongsToItsCategory(t *testing.T) {
	catalog := NewCatalog()

	total := 0
	for _, category := range catalog.Categories() {
		for _, suiteID := range catalog.SuitesOf(category) {
			suite, err := catalog.InfoOf(suiteID)
			assert.NoError(t, err)
			assert.Equal(t, category, suite.Category)
			total++
		}
	}
	assert.Equal(t, 9, total)
}
