package cached_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/luminary"
	"github.com/fwojciec/luminary/cached"
	"github.com/fwojciec/luminary/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBiographyService_FindSummary(t *testing.T) {
	t.Parallel()

	t.Run("miss calls service and stores the result", func(t *testing.T) {
		t.Parallel()
		var stored []byte
		cache := &mock.Cache{
			GetFn: func(ctx context.Context, namespace, key string) ([]byte, bool, error) {
				assert.Equal(t, "summary", namespace)
				assert.Equal(t, "Ada Lovelace", key)
				return nil, false, nil
			},
			SetFn: func(ctx context.Context, namespace, key string, value []byte, ttl time.Duration) error {
				assert.Equal(t, luminary.BiographyTTL, ttl)
				stored = value
				return nil
			},
		}
		var calls int
		svc := &mock.BiographyService{
			FindSummaryFn: func(ctx context.Context, name string) (*luminary.Summary, error) {
				calls++
				return &luminary.Summary{Title: "Ada Lovelace", Extract: "Mathematician."}, nil
			},
		}

		res, err := cached.NewBiographyService(svc, cache).FindSummary(context.Background(), "Ada Lovelace")

		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", res.Title)
		assert.Equal(t, 1, calls)
		require.NotNil(t, stored)
		var cachedSummary luminary.Summary
		require.NoError(t, json.Unmarshal(stored, &cachedSummary))
		assert.Equal(t, *res, cachedSummary)
	})

	t.Run("hit skips the service", func(t *testing.T) {
		t.Parallel()
		data, err := json.Marshal(&luminary.Summary{Title: "Ada Lovelace"})
		require.NoError(t, err)
		cache := &mock.Cache{
			GetFn: func(ctx context.Context, namespace, key string) ([]byte, bool, error) {
				return data, true, nil
			},
		}
		svc := &mock.BiographyService{
			FindSummaryFn: func(ctx context.Context, name string) (*luminary.Summary, error) {
				t.Fatal("service should not be called on a cache hit")
				return nil, nil
			},
		}

		res, err := cached.NewBiographyService(svc, cache).FindSummary(context.Background(), "Ada Lovelace")

		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", res.Title)
	})

	t.Run("cache error falls through to the service", func(t *testing.T) {
		t.Parallel()
		cache := &mock.Cache{
			GetFn: func(ctx context.Context, namespace, key string) ([]byte, bool, error) {
				return nil, false, errors.New("cache down")
			},
			SetFn: func(ctx context.Context, namespace, key string, value []byte, ttl time.Duration) error {
				return errors.New("cache down")
			},
		}
		svc := &mock.BiographyService{
			FindSummaryFn: func(ctx context.Context, name string) (*luminary.Summary, error) {
				return &luminary.Summary{Title: "Ada Lovelace"}, nil
			},
		}

		res, err := cached.NewBiographyService(svc, cache).FindSummary(context.Background(), "Ada Lovelace")

		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", res.Title)
	})

	t.Run("service error is not cached", func(t *testing.T) {
		t.Parallel()
		cache := &mock.Cache{
			GetFn: func(ctx context.Context, namespace, key string) ([]byte, bool, error) {
				return nil, false, nil
			},
			SetFn: func(ctx context.Context, namespace, key string, value []byte, ttl time.Duration) error {
				t.Fatal("errors should not be stored")
				return nil
			},
		}
		svc := &mock.BiographyService{
			FindSummaryFn: func(ctx context.Context, name string) (*luminary.Summary, error) {
				return nil, luminary.Errorf(luminary.ENOTFOUND, "no page for %q", name)
			},
		}

		_, err := cached.NewBiographyService(svc, cache).FindSummary(context.Background(), "Nobody")

		assert.Equal(t, luminary.ENOTFOUND, luminary.ErrorCode(err))
	})
}

func TestBiographyService_FindBiography(t *testing.T) {
	t.Parallel()

	t.Run("miss then hit", func(t *testing.T) {
		t.Parallel()
		entries := map[string][]byte{}
		cache := &mock.Cache{
			GetFn: func(ctx context.Context, namespace, key string) ([]byte, bool, error) {
				data, ok := entries[namespace+"/"+key]
				return data, ok, nil
			},
			SetFn: func(ctx context.Context, namespace, key string, value []byte, ttl time.Duration) error {
				entries[namespace+"/"+key] = value
				return nil
			},
		}
		var calls int
		svc := &mock.BiographyService{
			FindBiographyFn: func(ctx context.Context, name string) (*luminary.Biography, error) {
				calls++
				return &luminary.Biography{Title: name, Content: "Born in 1815."}, nil
			},
		}
		s := cached.NewBiographyService(svc, cache)

		first, err := s.FindBiography(context.Background(), "Ada Lovelace")
		require.NoError(t, err)
		second, err := s.FindBiography(context.Background(), "Ada Lovelace")
		require.NoError(t, err)

		assert.Equal(t, 1, calls)
		assert.Equal(t, first.Content, second.Content)
	})
}
