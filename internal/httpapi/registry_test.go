package httpapi

import (
	"sync"
	"testing"

	"github.com/huangsam/scorecard/core"
	"github.com/huangsam/scorecard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry(testCatalogs(), []string{"Brief"})

	id, entry := r.Create(nil)
	assert.Equal(t, 1, r.Len())
	_ = entry.with(func(s *core.Session) error {
		assert.Equal(t, []string{"Brief"}, s.Catalog(schema.PrePhase).Names())
		return nil
	})

	got, err := r.Get(id)
	require.NoError(t, err)
	assert.Same(t, entry, got)

	_, custom := r.Create([]string{"Audience"})
	_ = custom.with(func(s *core.Session) error {
		assert.Equal(t, []string{"Audience"}, s.Catalog(schema.PrePhase).Names())
		return nil
	})

	require.NoError(t, r.Delete(id))
	_, err = r.Get(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, r.Delete(id), ErrSessionNotFound)
}

func TestRegistryConcurrentUse(t *testing.T) {
	r := NewRegistry(testCatalogs(), nil)
	_, entry := r.Create(nil)
	key := schema.NewMetricKey(schema.PrePhase, "Brief", "Objectives")

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Create(nil)
			_ = entry.with(func(s *core.Session) error {
				return s.SetScore(key, []int{0, 3, 5}[i%3])
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 21, r.Len())
	_ = entry.with(func(s *core.Session) error {
		_, ok := s.Score(key)
		assert.True(t, ok)
		return nil
	})
}
