package discovery

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeClient struct {
	closed   int
	closeErr error
}

func (f *fakeClient) Close() error {
	f.closed++
	return f.closeErr
}

func TestWithClient(t *testing.T) {
	ctx := context.Background()

	t.Run("closes after success", func(t *testing.T) {
		client := &fakeClient{}
		err := WithClient(ctx, func(context.Context) (*fakeClient, error) { return client, nil }, func(c *fakeClient) error {
			assert.Same(t, client, c)
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, client.closed)
	})

	t.Run("closes after failure", func(t *testing.T) {
		client := &fakeClient{closeErr: errors.New("already closed")}
		listErr := ListingError(errors.New("page token expired"))

		err := WithClient(ctx, func(context.Context) (*fakeClient, error) { return client, nil }, func(*fakeClient) error {
			return listErr
		})

		assert.ErrorIs(t, err, listErr)
		assert.Equal(t, 1, client.closed)
	})

	t.Run("closes after panic", func(t *testing.T) {
		client := &fakeClient{}

		assert.Panics(t, func() {
			_ = WithClient(ctx, func(context.Context) (*fakeClient, error) { return client, nil }, func(*fakeClient) error {
				panic("boom")
			})
		})

		assert.Equal(t, 1, client.closed)
	})

	t.Run("connection failure", func(t *testing.T) {
		called := false
		err := WithClient(ctx, func(context.Context) (*fakeClient, error) { return nil, errors.New("no credentials") }, func(*fakeClient) error {
			called = true
			return nil
		})

		assert.False(t, called)
		assert.Equal(t, CategoryConnection, CategoryOf(err))
	})

	t.Run("nil client", func(t *testing.T) {
		err := WithClient(ctx, func(context.Context) (*fakeClient, error) { return nil, nil }, func(*fakeClient) error {
			t.Error("should not be called")
			return nil
		})

		assert.Equal(t, CategoryConnection, CategoryOf(err))
	})

	t.Run("nil connector", func(t *testing.T) {
		err := WithClient[*fakeClient](ctx, nil, func(*fakeClient) error {
			t.Error("should not be called")
			return nil
		})

		assert.Equal(t, CategoryConnection, CategoryOf(err))
	})
}
