package spots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_ListKeepsInsertionOrder(t *testing.T) {
	repo := NewMemoryRepository(SeedSpots())

	spots, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, spots, 6)

	ids := make([]string, 0, len(spots))
	for _, spot := range spots {
		ids = append(ids, spot.ID)
	}
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, ids)
}

func TestMemoryRepository_Search(t *testing.T) {
	repo := NewMemoryRepository(SeedSpots())
	ctx := context.Background()

	// Без учета регистра, по name/address/city
	spots, err := repo.Search(ctx, "gang")
	require.NoError(t, err)
	require.Len(t, spots, 3)
	for _, spot := range spots {
		assert.Equal(t, "Gangtok", spot.City)
	}

	spots, err = repo.Search(ctx, "MONASTERY")
	require.NoError(t, err)
	require.Len(t, spots, 1)
	assert.Equal(t, "3", spots[0].ID)

	// Пустой запрос эквивалентен List
	spots, err = repo.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, spots, 6)

	spots, err = repo.Search(ctx, "no such place")
	require.NoError(t, err)
	assert.Empty(t, spots)
}

func TestMemoryRepository_GetByID_ReturnsCopy(t *testing.T) {
	repo := NewMemoryRepository(SeedSpots())
	ctx := context.Background()

	spot, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)

	// Мутация полученного значения не должна протекать в хранилище
	spot.AvailableSpots = 0

	again, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 12, again.AvailableSpots)
}

func TestMemoryRepository_GetByID_NotFound(t *testing.T) {
	repo := NewMemoryRepository(nil)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSpotNotFound)
}

func TestMemoryRepository_UpdateAvailability(t *testing.T) {
	repo := NewMemoryRepository(SeedSpots())
	ctx := context.Background()

	// Выход за нижнюю границу гасится в 0, статус становится full
	spot, err := repo.UpdateAvailability(ctx, "1", -5)
	require.NoError(t, err)
	assert.Equal(t, 0, spot.AvailableSpots)
	assert.Equal(t, "full", string(spot.Status))

	// Выход за верхнюю границу гасится в totalSpots
	spot, err = repo.UpdateAvailability(ctx, "1", 100)
	require.NoError(t, err)
	assert.Equal(t, 20, spot.AvailableSpots)
	assert.Equal(t, "available", string(spot.Status))

	// Порог almost_full: ниже 30% вместимости
	spot, err = repo.UpdateAvailability(ctx, "1", 5)
	require.NoError(t, err)
	assert.Equal(t, "almost_full", string(spot.Status))
}
