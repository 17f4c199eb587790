package backend

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segurosmx/cotizador/internal/domain"
)

type fakeStore struct {
	data     map[string]string
	ttls     map[string]time.Duration
	getErr   error
	setErr   error
	setCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeStore) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeStore) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.setCalls++
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.data[key] = fmt.Sprint(value)
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

type countingSource struct {
	ajustes map[string]*domain.AjusteCP
	err     error
	calls   int
}

func (s *countingSource) GetAjusteCP(_ context.Context, cp string) (*domain.AjusteCP, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.ajustes[cp], nil
}

type warnCounter struct {
	warnings []string
}

func (w *warnCounter) Debugf(string, ...any) {}
func (w *warnCounter) Infof(string, ...any)  {}
func (w *warnCounter) Warnf(format string, args ...any) {
	w.warnings = append(w.warnings, fmt.Sprintf(format, args...))
}
func (w *warnCounter) Errorf(string, ...any) {}

func TestCachedAjusteCP_ReadThrough(t *testing.T) {
	store := newFakeStore()
	src := &countingSource{ajustes: map[string]*domain.AjusteCP{
		"44100": {CodigoPostal: "44100", AjustePrima: "7.5"},
	}}
	cache := NewCachedAjusteCP(src, store, 30*time.Minute, nil)

	first, err := cache.GetAjusteCP(context.Background(), "44100")
	require.NoError(t, err)
	second, err := cache.GetAjusteCP(context.Background(), "44100")
	require.NoError(t, err)

	assert.Equal(t, 1, src.calls)
	assert.Equal(t, first.CodigoPostal, second.CodigoPostal)
	assert.Equal(t, "7.5", second.AjustePrima)
	assert.Equal(t, 30*time.Minute, store.ttls["cotizador:ajuste-cp:44100"])
}

func TestCachedAjusteCP_CachesAbsence(t *testing.T) {
	store := newFakeStore()
	src := &countingSource{}
	cache := NewCachedAjusteCP(src, store, time.Minute, nil)

	for i := 0; i < 3; i++ {
		a, err := cache.GetAjusteCP(context.Background(), "01000")
		require.NoError(t, err)
		assert.Nil(t, a)
	}
	assert.Equal(t, 1, src.calls)
	assert.Equal(t, absentMarker, store.data["cotizador:ajuste-cp:01000"])
}

func TestCachedAjusteCP_StoreDownFallsBack(t *testing.T) {
	store := newFakeStore()
	store.getErr = errors.New("dial tcp: connection refused")
	store.setErr = errors.New("dial tcp: connection refused")
	src := &countingSource{ajustes: map[string]*domain.AjusteCP{"44100": {CodigoPostal: "44100", AjustePrima: "-10"}}}
	logger := &warnCounter{}
	cache := NewCachedAjusteCP(src, store, time.Minute, logger)

	a, err := cache.GetAjusteCP(context.Background(), "44100")
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "-10", a.AjustePrima)
	assert.Len(t, logger.warnings, 2)
}

func TestCachedAjusteCP_CorruptEntry(t *testing.T) {
	store := newFakeStore()
	store.data["cotizador:ajuste-cp:44100"] = "{not json"
	src := &countingSource{ajustes: map[string]*domain.AjusteCP{"44100": {CodigoPostal: "44100", AjustePrima: "5"}}}
	logger := &warnCounter{}
	cache := NewCachedAjusteCP(src, store, time.Minute, logger)

	a, err := cache.GetAjusteCP(context.Background(), "44100")
	require.NoError(t, err)
	assert.Equal(t, "5", a.AjustePrima)
	assert.Equal(t, 1, src.calls)
	require.Len(t, logger.warnings, 1)
	assert.Contains(t, logger.warnings[0], "corrupt")
}

func TestCachedAjusteCP_SourceErrorNotCached(t *testing.T) {
	store := newFakeStore()
	src := &countingSource{err: errors.New("backend down")}
	cache := NewCachedAjusteCP(src, store, time.Minute, nil)

	_, err := cache.GetAjusteCP(context.Background(), "44100")
	require.Error(t, err)
	assert.Equal(t, 0, store.setCalls)
}
