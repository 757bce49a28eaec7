package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawplate/domain"
)

func TestDailyPortionGrams(t *testing.T) {
	grams, err := DailyPortionGrams(1000, 100)
	require.NoError(t, err)
	assert.Equal(t, 1000, grams)

	grams, err = DailyPortionGrams(900, 350)
	require.NoError(t, err)
	assert.Equal(t, 257, grams) // 900/350*100 = 257.14

	_, err = DailyPortionGrams(1000, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidDensity)

	_, err = DailyPortionGrams(1000, -5)
	assert.ErrorIs(t, err, domain.ErrInvalidDensity)

	_, err = DailyPortionGrams(0, 100)
	assert.ErrorIs(t, err, domain.ErrInvalidCalorieTarget)
}

func TestMealPortionGrams(t *testing.T) {
	grams, err := MealPortionGrams(1000, 100, 3)
	require.NoError(t, err)
	assert.Equal(t, 333, grams)

	grams, err = MealPortionGrams(1200, 400, DefaultMealCount)
	require.NoError(t, err)
	assert.Equal(t, 100, grams)

	_, err = MealPortionGrams(1000, 0, 3)
	assert.ErrorIs(t, err, domain.ErrInvalidDensity)

	_, err = MealPortionGrams(1000, 100, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidMealCount)
}
