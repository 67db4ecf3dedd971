package profilerepo

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/astro-profile/internal/domain/astro"
)

func TestMemoryRepository(t *testing.T) {
	exerciseRepository(t, NewMemoryRepository())
}

func TestSQLiteRepositoryInMemory(t *testing.T) {
	repo, err := NewSQLiteRepository(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	exerciseRepository(t, repo)
}

func TestSQLiteRepositoryPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "astro.db")
	repo, err := NewSQLiteRepository(path)
	require.NoError(t, err)
	require.Equal(t, path, repo.Path())

	saved, err := repo.Save(context.Background(), sampleRecord(5, "Oslo"))
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	reopened, err := NewSQLiteRepository(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	latest, found, err := reopened.Latest(context.Background(), 5)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, saved.ID, latest.ID)
	require.Equal(t, "Oslo", latest.BirthPlace)
	require.Equal(t, astro.Leo, latest.Result.ZodiacSign)
}

func exerciseRepository(t *testing.T, repo astro.Repository) {
	t.Helper()
	ctx := context.Background()

	_, found, err := repo.Latest(ctx, 1)
	require.NoError(t, err)
	require.False(t, found)

	first, err := repo.Save(ctx, sampleRecord(1, "Paris"))
	require.NoError(t, err)
	require.NotZero(t, first.ID)
	require.False(t, first.CreatedAt.IsZero())

	_, err = repo.Save(ctx, sampleRecord(2, "Lima"))
	require.NoError(t, err)
	second, err := repo.Save(ctx, sampleRecord(1, "Tokyo"))
	require.NoError(t, err)
	require.Greater(t, second.ID, first.ID)

	latest, found, err := repo.Latest(ctx, 1)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "Tokyo", latest.BirthPlace)
	require.Equal(t, 48.85, latest.Latitude)
	require.Equal(t, "Europe/Paris", latest.Timezone)
	require.Equal(t, astro.Leo, latest.Result.ZodiacSign)
	require.Equal(t, astro.Aquarius, latest.Result.MoonSign)
	require.Equal(t, 2451545.0, latest.Result.AdditionalInfo.JulianDate)
	require.Equal(t, 123.45, latest.Result.SunPosition.Azimuth)

	list, err := repo.List(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Tokyo", list[0].BirthPlace)
	require.Equal(t, "Paris", list[1].BirthPlace)

	limited, err := repo.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)

	other, err := repo.List(ctx, 3, 0)
	require.NoError(t, err)
	require.Empty(t, other)
}

func sampleRecord(userID int64, place string) astro.ProfileRecord {
	return astro.ProfileRecord{
		UserID:     userID,
		BirthDate:  "1990-08-01",
		BirthTime:  "09:30",
		BirthPlace: place,
		Latitude:   48.85,
		Longitude:  2.35,
		Timezone:   "Europe/Paris",
		Result: astro.Response{
			SunPosition: astro.HorizontalPosition{Azimuth: 123.45, Altitude: 12.3},
			ZodiacSign:  astro.Leo,
			Ascendant:   astro.Virgo,
			MoonSign:    astro.Aquarius,
			BirthPlace:  place,
			AdditionalInfo: astro.AdditionalInfo{
				Timezone:   "Europe/Paris",
				UTC:        time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
				JulianDate: 2451545.0,
			},
		},
	}
}
