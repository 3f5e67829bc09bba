package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOr(t *testing.T) {
	t.Setenv("VOYAGE_TEST_KEY", "from-env")
	assert.Equal(t, "from-env", envOr("VOYAGE_TEST_KEY", "fallback"))

	t.Setenv("VOYAGE_TEST_KEY", "")
	assert.Equal(t, "fallback", envOr("VOYAGE_TEST_KEY", "fallback"))
}

func TestMemoryKV(t *testing.T) {
	t.Parallel()

	kv := memoryKV{}

	_, ok, err := kv.Get("session_id")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set("session_id", "s-1"))
	v, ok, err := kv.Get("session_id")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "s-1", v)

	require.NoError(t, kv.Delete("session_id"))
	_, ok, _ = kv.Get("session_id")
	assert.False(t, ok)
}
