package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Purvesh8762/user-management/internal/client/models"
	"github.com/Purvesh8762/user-management/internal/common"
)

func TestList_ReturnsUsersInOrder(t *testing.T) {
	want := []models.ManagedUser{
		{ID: 1, Name: "Jane Doe", Email: "jane@example.org"},
		{ID: 2, Name: "John Roe", Email: "john@example.org"},
	}
	svc := NewUserService(&fakeClient{listRet: want}, setupStore(t))

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestList_AuthRejectionClearsStore(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, models.Session{Credential: "Bearer stale", Email: "a@b.co"}))

	f := &fakeClient{listErr: common.ErrUnauthorized, credential: "Bearer stale"}
	svc := NewUserService(f, store)

	_, err := svc.List(ctx)
	require.ErrorIs(t, err, common.ErrUnauthorized)

	left, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, left.IsEmpty())
	require.Empty(t, f.credential)
}

func TestAdd_AuthRejectionClearsStore(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, models.Session{Credential: "Bearer stale", Email: "a@b.co"}))

	svc := NewUserService(&fakeClient{addErr: common.ErrUnauthorized}, store)
	_, err := svc.Add(ctx, "Jane Doe", "jane@example.org")
	require.ErrorIs(t, err, common.ErrUnauthorized)

	left, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, left.IsEmpty())
}

func TestDelete_PassesIDThrough(t *testing.T) {
	f := &fakeClient{}
	svc := NewUserService(f, setupStore(t))

	require.NoError(t, svc.Delete(context.Background(), 5))
	require.Equal(t, int64(5), f.lastDeleteID)
}

func TestDelete_BackendErrorPassesThroughWithoutClearing(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	sess := models.Session{Credential: "Bearer abc", Email: "a@b.co"}
	require.NoError(t, store.Save(ctx, sess))

	svc := NewUserService(&fakeClient{deleteErr: common.ErrUnavailable}, store)
	err := svc.Delete(ctx, 5)
	require.ErrorIs(t, err, common.ErrUnavailable)

	left, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, sess, left)
}
