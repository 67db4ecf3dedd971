package signstats

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/astro-profile/internal/domain/astro"
)

func TestMemoryStoreTopOrdersByCount(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Increment(ctx, astro.KindZodiac, astro.Leo))
	}
	require.NoError(t, store.Increment(ctx, astro.KindZodiac, astro.Virgo))
	require.NoError(t, store.Increment(ctx, astro.KindZodiac, astro.Aries))
	require.NoError(t, store.Increment(ctx, astro.KindMoon, astro.Pisces))

	top, err := store.Top(ctx, astro.KindZodiac, 2)
	require.NoError(t, err)
	require.Equal(t, []astro.SignCount{
		{Sign: astro.Leo, Count: 3},
		{Sign: astro.Aries, Count: 1},
	}, top)

	moon, err := store.Top(ctx, astro.KindMoon, 0)
	require.NoError(t, err)
	require.Equal(t, []astro.SignCount{{Sign: astro.Pisces, Count: 1}}, moon)

	empty, err := store.Top(ctx, astro.KindAscendant, 5)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestMemoryStoreIgnoresInvalidSign(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Increment(context.Background(), astro.KindZodiac, astro.ZodiacSign(42)))

	top, err := store.Top(context.Background(), astro.KindZodiac, 0)
	require.NoError(t, err)
	require.Empty(t, top)
}

func TestMemoryStoreConcurrentIncrements(t *testing.T) {
	store := NewMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Increment(context.Background(), astro.KindZodiac, astro.Gemini)
		}()
	}
	wg.Wait()

	top, err := store.Top(context.Background(), astro.KindZodiac, 1)
	require.NoError(t, err)
	require.Equal(t, int64(50), top[0].Count)
}
