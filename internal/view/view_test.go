package view

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wolfeidau/orgctl/internal/query"
)

func TestLoader_Load(t *testing.T) {
	var l Loader[int]

	state, ok := l.Load(context.Background(), func(context.Context) (int, error) { return 5, nil })
	require.True(t, ok)
	assert.Equal(t, 5, state.Value)
	assert.NoError(t, state.Err)
	assert.False(t, state.Loading)
	assert.Equal(t, uint64(1), state.Generation)

	// a failure keeps the last value
	boom := errors.New("boom")
	state, ok = l.Load(context.Background(), func(context.Context) (int, error) { return 0, boom })
	require.True(t, ok)
	assert.Equal(t, 5, state.Value)
	assert.ErrorIs(t, state.Err, boom)
	assert.Equal(t, l.State(), state)
}

func TestLoader_Load_latestWins(t *testing.T) {
	var l Loader[string]

	firstStarted := make(chan struct{})
	firstDone := make(chan struct{})
	var firstCommitted bool
	var firstCtxErr error

	go func() {
		defer close(firstDone)
		_, firstCommitted = l.Load(context.Background(), func(ctx context.Context) (string, error) {
			close(firstStarted)
			<-ctx.Done()
			firstCtxErr = ctx.Err()
			// a fetch that ignores cancellation still cannot commit
			return "stale", nil
		})
	}()

	<-firstStarted
	state, ok := l.Load(context.Background(), func(context.Context) (string, error) { return "fresh", nil })
	require.True(t, ok)
	assert.Equal(t, "fresh", state.Value)

	<-firstDone
	assert.False(t, firstCommitted)
	assert.ErrorIs(t, firstCtxErr, context.Canceled)
	assert.Equal(t, "fresh", l.State().Value)
	assert.Equal(t, uint64(1), l.State().Generation)
}

func TestLoader_Load_canceledIsSuppressed(t *testing.T) {
	var l Loader[int]
	_, ok := l.Load(context.Background(), func(context.Context) (int, error) { return 1, nil })
	require.True(t, ok)

	state, ok := l.Load(context.Background(), func(context.Context) (int, error) {
		return 0, fmt.Errorf("failed to list organizations: %w", context.Canceled)
	})
	assert.False(t, ok)
	assert.NoError(t, state.Err)
	assert.Equal(t, 1, state.Value)
	assert.Equal(t, uint64(1), state.Generation)
}

func TestLoader_Cancel(t *testing.T) {
	var l Loader[int]

	started := make(chan struct{})
	done := make(chan bool)
	go func() {
		_, ok := l.Load(context.Background(), func(ctx context.Context) (int, error) {
			close(started)
			<-ctx.Done()
			return 0, ctx.Err()
		})
		done <- ok
	}()

	<-started
	l.Cancel()
	assert.False(t, <-done)
	assert.False(t, l.State().Loading)
	assert.NoError(t, l.State().Err)
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		page, total, expected int
	}{
		{page: 0, total: 5, expected: 1},
		{page: 3, total: 5, expected: 3},
		{page: 9, total: 5, expected: 5},
		{page: 4, total: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d of %d", tt.page, tt.total), func(t *testing.T) {
			require.Equal(t, tt.expected, ClampPage(tt.page, tt.total))
		})
	}
}

func TestPageItems(t *testing.T) {
	tests := []struct {
		current, total int
		expected       string
	}{
		{current: 1, total: 1, expected: "1"},
		{current: 1, total: 2, expected: "1 2"},
		{current: 1, total: 3, expected: "1 2 3"},
		{current: 1, total: 10, expected: "1 2 … 10"},
		{current: 5, total: 10, expected: "1 … 4 5 6 … 10"},
		{current: 10, total: 10, expected: "1 … 9 10"},
		{current: 3, total: 5, expected: "1 2 3 4 5"},
		{current: 42, total: 10, expected: "1 … 9 10"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			items := PageItems(tt.current, tt.total, 1)
			parts := make([]string, 0, len(items))
			for _, it := range items {
				parts = append(parts, it.String())
			}
			require.Equal(t, tt.expected, strings.Join(parts, " "))
		})
	}
}

func TestToggleSort(t *testing.T) {
	s := ToggleSort(nil, query.SortName)
	require.Equal(t, &query.Sort{Field: query.SortName}, s)

	s = ToggleSort(s, query.SortName)
	require.Equal(t, &query.Sort{Field: query.SortName, Desc: true}, s)

	require.Nil(t, ToggleSort(s, query.SortName))

	require.Equal(t, &query.Sort{Field: query.SortID}, ToggleSort(s, query.SortID))
}
