package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type poolConfig struct {
	workers  int
	name     string
	lastCall string
}

func (c *poolConfig) setWorkers(n int) error {
	if n < 1 {
		return errors.New("workers must be positive")
	}
	c.workers = n
	c.lastCall = "setWorkers"

	return nil
}

func (c *poolConfig) setName(name string) {
	c.name = name
	c.lastCall = "setName"
}

func withWorkers(n int) Option[*poolConfig] {
	return New(func(c *poolConfig) error { return c.setWorkers(n) })
}

func withName(name string) Option[*poolConfig] {
	return NoError(func(c *poolConfig) { c.setName(name) })
}

func TestOption_New(t *testing.T) {
	t.Run("applies setter", func(t *testing.T) {
		cfg := &poolConfig{}
		require.NoError(t, withWorkers(4).apply(cfg))
		require.Equal(t, 4, cfg.workers)
		require.Equal(t, "setWorkers", cfg.lastCall)
	})

	t.Run("propagates setter error", func(t *testing.T) {
		cfg := &poolConfig{}
		err := withWorkers(0).apply(cfg)
		require.Error(t, err)
		require.Contains(t, err.Error(), "workers must be positive")
		require.Equal(t, 0, cfg.workers)
	})
}

func TestOption_NoError(t *testing.T) {
	cfg := &poolConfig{}
	require.NoError(t, withName("zip").apply(cfg))
	require.Equal(t, "zip", cfg.name)
	require.Equal(t, "setName", cfg.lastCall)
}

func TestOption_Apply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		cfg := &poolConfig{}
		err := Apply(cfg, withWorkers(2), withName("a"), withWorkers(8))
		require.NoError(t, err)
		require.Equal(t, 8, cfg.workers)
		require.Equal(t, "a", cfg.name)
		require.Equal(t, "setWorkers", cfg.lastCall)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &poolConfig{}
		err := Apply(cfg, withWorkers(3), withWorkers(-1), withName("skipped"))
		require.Error(t, err)
		require.Equal(t, 3, cfg.workers)
		require.Empty(t, cfg.name)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &poolConfig{}
		require.NoError(t, Apply(cfg, nil, withName("b")))
		require.Equal(t, "b", cfg.name)
	})

	t.Run("empty options", func(t *testing.T) {
		cfg := &poolConfig{}
		require.NoError(t, Apply(cfg))
		require.Equal(t, poolConfig{}, *cfg)
	})
}

func TestOption_GenericsWithPrimitive(t *testing.T) {
	var n int
	require.NoError(t, NoError(func(p *int) { *p = 42 }).apply(&n))
	require.Equal(t, 42, n)
}
