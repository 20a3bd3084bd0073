package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   string   `json:"id"`
	Tags []string `json:"tags"`
}

func TestJSONHelpers_RoundTrip(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	want := []item{{ID: "1", Tags: []string{"a"}}, {ID: "2"}}
	require.NoError(t, SetJSON(ctx, r, "items", want))

	got, ok, err := GetJSON[[]item](ctx, r, "items")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestGetJSON_Absent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	got, ok, err := GetJSON[[]item](context.Background(), r, "items")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestGetJSON_CorruptValue(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	require.NoError(t, r.Set(ctx, "items", []byte("{not json")))

	_, ok, err := GetJSON[[]item](ctx, r, "items")
	require.ErrorContains(t, err, "failed to decode kv[items]")
	assert.False(t, ok)
}
