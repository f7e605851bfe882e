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

func senderClaims() *models.Claims {
	return &models.Claims{UserID: "uid-a", Email: "a@example.com"}
}

func TestCreateFriendRequest_EmptyParticipants(t *testing.T) {
	t.Parallel()

	svc, _, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()

	_, err := svc.CreateFriendRequest(ctx, senderClaims(), "", "uid-b")
	require.ErrorIs(t, err, ErrEmptyParticipant)

	_, err = svc.CreateFriendRequest(ctx, senderClaims(), "uid-a", "   ")
	require.ErrorIs(t, err, ErrEmptyParticipant)
}

func TestCreateFriendRequest_SenderMismatch(t *testing.T) {
	t.Parallel()

	svc, _, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()

	// Подделка senderId в теле не обходит проверку субъекта токена.
	_, err := svc.CreateFriendRequest(ctx, senderClaims(), "uid-other", "uid-b")
	require.ErrorIs(t, err, ErrSenderMismatch)

	_, err = svc.CreateFriendRequest(ctx, nil, "uid-a", "uid-b")
	require.ErrorIs(t, err, ErrSenderMismatch)
}

func TestCreateFriendRequest_SelfRequest(t *testing.T) {
	t.Parallel()

	svc, _, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, err := svc.CreateFriendRequest(context.Background(), senderClaims(), "uid-a", "uid-a")
	require.ErrorIs(t, err, ErrSelfRequest)
}

func TestCreateFriendRequest_NoStore(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := New(mocks.NewMockTokenStorage(ctrl), nil, mocks.NewMockProvider(ctrl), testCfg())

	_, err := svc.CreateFriendRequest(context.Background(), senderClaims(), "uid-a", "uid-b")
	require.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestCreateFriendRequest_OK(t *testing.T) {
	t.Parallel()

	svc, _, social, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	social.EXPECT().PendingFriendRequest(gomock.Any(), "uid-a", "uid-b").Return(nil, storage.ErrNotFound)
	social.EXPECT().ProfileByUID(gomock.Any(), "uid-a").
		Return(&models.Profile{UID: "uid-a", AccountName: "alice", Email: "a@example.com"}, nil)
	social.EXPECT().ProfileByUID(gomock.Any(), "uid-b").
		Return(&models.Profile{UID: "uid-b", AccountName: "bob", Email: "b@example.com"}, nil)

	var saved *models.FriendRequest
	social.EXPECT().SaveFriendRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.FriendRequest) error {
			saved = req
			return nil
		})

	req, err := svc.CreateFriendRequest(context.Background(), senderClaims(), "uid-a", "uid-b")
	require.NoError(t, err)
	require.Equal(t, saved, req)
	require.NotEmpty(t, req.ID)
	require.Equal(t, models.FriendRequestPending, req.Status)
	require.Equal(t, "uid-a", req.SenderID)
	require.Equal(t, "uid-b", req.ReceiverID)
	require.Equal(t, "alice", req.SenderName)
	require.Equal(t, "b@example.com", req.ReceiverEmail)
	require.False(t, req.CreatedAt.IsZero())
}

func TestCreateFriendRequest_MissingProfilesIsFine(t *testing.T) {
	t.Parallel()

	svc, _, social, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	social.EXPECT().PendingFriendRequest(gomock.Any(), "uid-a", "uid-b").Return(nil, storage.ErrNotFound)
	social.EXPECT().ProfileByUID(gomock.Any(), "uid-a").Return(nil, storage.ErrNotFound)
	social.EXPECT().ProfileByUID(gomock.Any(), "uid-b").Return(nil, storage.ErrNotFound)
	social.EXPECT().SaveFriendRequest(gomock.Any(), gomock.Any()).Return(nil)

	req, err := svc.CreateFriendRequest(context.Background(), senderClaims(), "uid-a", "uid-b")
	require.NoError(t, err)
	require.Empty(t, req.SenderName)
	require.Empty(t, req.ReceiverName)
}

func TestCreateFriendRequest_DuplicatePending(t *testing.T) {
	t.Parallel()

	svc, _, social, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	social.EXPECT().PendingFriendRequest(gomock.Any(), "uid-a", "uid-b").
		Return(&models.FriendRequest{ID: "existing", SenderID: "uid-a", ReceiverID: "uid-b"}, nil)

	_, err := svc.CreateFriendRequest(context.Background(), senderClaims(), "uid-a", "uid-b")
	require.ErrorIs(t, err, ErrDuplicateRequest)
}

func TestCreateFriendRequest_CounterDirectionAllowed(t *testing.T) {
	t.Parallel()

	svc, _, social, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	// Pending-заявка uid-a→uid-b не блокирует встречную uid-b→uid-a.
	social.EXPECT().PendingFriendRequest(gomock.Any(), "uid-b", "uid-a").Return(nil, storage.ErrNotFound)
	social.EXPECT().ProfileByUID(gomock.Any(), "uid-b").Return(nil, storage.ErrNotFound)
	social.EXPECT().ProfileByUID(gomock.Any(), "uid-a").Return(nil, storage.ErrNotFound)
	social.EXPECT().SaveFriendRequest(gomock.Any(), gomock.Any()).Return(nil)

	claims := &models.Claims{UserID: "uid-b", Email: "b@example.com"}

	req, err := svc.CreateFriendRequest(context.Background(), claims, "uid-b", "uid-a")
	require.NoError(t, err)
	require.Equal(t, "uid-b", req.SenderID)
	require.Equal(t, "uid-a", req.ReceiverID)
}

func TestCreateFriendRequest_RaceClosedByIndex(t *testing.T) {
	t.Parallel()

	svc, _, social, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	// Конкурирующая заявка успела вставиться между проверкой и записью.
	social.EXPECT().PendingFriendRequest(gomock.Any(), "uid-a", "uid-b").Return(nil, storage.ErrNotFound)
	social.EXPECT().ProfileByUID(gomock.Any(), "uid-a").Return(nil, storage.ErrNotFound)
	social.EXPECT().ProfileByUID(gomock.Any(), "uid-b").Return(nil, storage.ErrNotFound)
	social.EXPECT().SaveFriendRequest(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)

	_, err := svc.CreateFriendRequest(context.Background(), senderClaims(), "uid-a", "uid-b")
	require.ErrorIs(t, err, ErrDuplicateRequest)
}

func TestCreateFriendRequest_LookupFailure(t *testing.T) {
	t.Parallel()

	svc, _, social, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	boom := errors.New("backend down")
	social.EXPECT().PendingFriendRequest(gomock.Any(), "uid-a", "uid-b").Return(nil, boom)

	_, err := svc.CreateFriendRequest(context.Background(), senderClaims(), "uid-a", "uid-b")
	require.ErrorIs(t, err, boom)
}
