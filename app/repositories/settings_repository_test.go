package repositories

import (
	"sync"
	"testing"

	"inkwell/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsGetOrCreateAppliesDefaults(t *testing.T) {
	repo := NewBadgerSettingsRepository(openTestDB(t))

	settings, err := repo.GetOrCreate()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultWebsiteTitle, settings.WebsiteTitle)
	assert.Equal(t, models.DefaultThemeColor, settings.ThemeColor)
	assert.Empty(t, settings.Logo)
	assert.False(t, settings.CreatedAt.IsZero())
}

func TestSettingsGetOrCreateIsStable(t *testing.T) {
	repo := NewBadgerSettingsRepository(openTestDB(t))

	first, err := repo.GetOrCreate()
	require.NoError(t, err)

	first.WebsiteTitle = "Renamed"
	require.NoError(t, repo.Update(first))

	second, err := repo.GetOrCreate()
	require.NoError(t, err)
	assert.Equal(t, "Renamed", second.WebsiteTitle)
	assert.Equal(t, first.CreatedAt.Unix(), second.CreatedAt.Unix())
}

func TestSettingsConcurrentFirstReadCreatesOneRecord(t *testing.T) {
	repo := NewBadgerSettingsRepository(openTestDB(t))

	const readers = 8
	results := make([]*models.Settings, readers)

	var wg sync.WaitGroup
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			settings, err := repo.GetOrCreate()
			require.NoError(t, err)
			results[i] = settings
		}(i)
	}
	wg.Wait()

	// Every reader must observe the same singleton.
	for _, settings := range results {
		assert.Equal(t, results[0].CreatedAt, settings.CreatedAt)
	}
}
