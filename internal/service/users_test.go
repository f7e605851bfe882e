package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/points-backend/internal/models"
	"github.com/pribylovaa/points-backend/internal/storage"
	"github.com/pribylovaa/points-backend/mocks"
)

func TestProfileByUID_OK(t *testing.T) {
	t.Parallel()

	svc, _, social, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	want := &models.Profile{UID: "uid-1", AccountName: "alice", Email: "a@example.com"}
	social.EXPECT().ProfileByUID(gomock.Any(), "uid-1").Return(want, nil)

	got, err := svc.ProfileByUID(context.Background(), "uid-1")
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestProfileByUID_NotFound(t *testing.T) {
	t.Parallel()

	svc, _, social, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	social.EXPECT().ProfileByUID(gomock.Any(), "ghost").Return(nil, storage.ErrNotFound)

	_, err := svc.ProfileByUID(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestProfileByUID_NoStore(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := New(mocks.NewMockTokenStorage(ctrl), nil, mocks.NewMockProvider(ctrl), testCfg())

	_, err := svc.ProfileByUID(context.Background(), "uid-1")
	require.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestSearchProfiles_EmptyQuery(t *testing.T) {
	t.Parallel()

	svc, _, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	// Пустой запрос не доходит до хранилища.
	got, err := svc.SearchProfiles(context.Background(), "   ")
	require.NoError(t, err)
	require.Empty(t, got)
	require.NotNil(t, got)
}

func TestSearchProfiles_TrimsQuery(t *testing.T) {
	t.Parallel()

	svc, _, social, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	want := []models.Profile{{UID: "uid-1", AccountName: "alice"}}
	social.EXPECT().SearchProfiles(gomock.Any(), "ali", int64(searchLimitPerField)).Return(want, nil)

	got, err := svc.SearchProfiles(context.Background(), "  ali  ")
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestSearchProfiles_StoreFailure(t *testing.T) {
	t.Parallel()

	svc, _, social, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	boom := errors.New("backend down")
	social.EXPECT().SearchProfiles(gomock.Any(), "ali", gomock.Any()).Return(nil, boom)

	_, err := svc.SearchProfiles(context.Background(), "ali")
	require.ErrorIs(t, err, boom)
}
