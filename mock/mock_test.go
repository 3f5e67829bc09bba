package mock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voyagecli/voyage"
	"github.com/voyagecli/voyage/mock"
)

func TestAPI_Delegates(t *testing.T) {
	t.Parallel()

	api := &mock.API{
		ChatFn: func(ctx context.Context, req voyage.ChatRequest) (voyage.ChatResponse, error) {
			return voyage.ChatResponse{Message: "echo: " + req.Message}, nil
		},
	}

	resp, err := api.Chat(context.Background(), voyage.ChatRequest{Message: "hi", SessionID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, "echo: hi", resp.Message)
}

func TestIDGenerator_Sequential(t *testing.T) {
	t.Parallel()

	gen := &mock.IDGenerator{}
	assert.Equal(t, "id-1", gen.NewID())
	assert.Equal(t, "id-2", gen.NewID())
}

func TestKV_InMemory(t *testing.T) {
	t.Parallel()

	kv := &mock.KV{}
	_, ok, err := kv.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set("k", "v"))
	v, ok, err := kv.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	require.NoError(t, kv.Delete("k"))
	_, ok, err = kv.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKV_Err(t *testing.T) {
	t.Parallel()

	kv := &mock.KV{Err: errors.New("disk gone")}
	_, _, err := kv.Get("k")
	assert.Error(t, err)
	assert.Error(t, kv.Set("k", "v"))
}
