package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/notepad-sync/internal/adapter"
	"github.com/MKhiriev/notepad-sync/internal/logger"
	"github.com/MKhiriev/notepad-sync/internal/mock"
	"github.com/MKhiriev/notepad-sync/internal/store"
	"github.com/MKhiriev/notepad-sync/models"
)

func newTestAccountService(t *testing.T) (ClientAccountService, *mock.MockServerAdapter, *mock.MockCredentialStore) {
	ctrl := gomock.NewController(t)
	server := mock.NewMockServerAdapter(ctrl)
	credentials := mock.NewMockCredentialStore(ctrl)

	return NewClientAccountService(credentials, server, logger.Nop()), server, credentials
}

func TestClientAccountService_Login(t *testing.T) {
	creds := models.Credentials{Username: "ada", Password: "secret"}

	t.Run("remembers token and password", func(t *testing.T) {
		svc, server, credentials := newTestAccountService(t)
		server.EXPECT().Login(gomock.Any(), creds).Return(identity, nil)
		credentials.EXPECT().WriteCredential(gomock.Any(), models.StoredCredential{
			Username: "ada",
			Password: "secret",
			Token:    "tok-1",
		}).Return(nil)

		got, err := svc.Login(context.Background(), creds)
		require.NoError(t, err)
		assert.Equal(t, identity, got)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, server, _ := newTestAccountService(t)
		server.EXPECT().Login(gomock.Any(), creds).Return(models.SyncIdentity{}, &adapter.ServerError{Status: 401})

		_, err := svc.Login(context.Background(), creds)

		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, "ada", authErr.Username)
	})

	t.Run("server down", func(t *testing.T) {
		svc, server, _ := newTestAccountService(t)
		netErr := &adapter.NetworkError{Op: "account.login", Err: errors.New("refused")}
		server.EXPECT().Login(gomock.Any(), creds).Return(models.SyncIdentity{}, netErr)

		_, err := svc.Login(context.Background(), creds)

		var authErr *AuthError
		assert.False(t, errors.As(err, &authErr))
		assert.ErrorIs(t, err, netErr)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, server, credentials := newTestAccountService(t)
		server.EXPECT().Login(gomock.Any(), creds).Return(identity, nil)
		credentials.EXPECT().WriteCredential(gomock.Any(), gomock.Any()).Return(store.ErrExecutingStatement)

		_, err := svc.Login(context.Background(), creds)
		assert.ErrorIs(t, err, store.ErrExecutingStatement)
	})
}

func TestClientAccountService_Identity(t *testing.T) {
	svc, _, credentials := newTestAccountService(t)

	credentials.EXPECT().ReadCredential(gomock.Any()).
		Return(models.StoredCredential{Username: "ada", Password: "secret", Token: "tok-1"}, nil)
	got, err := svc.Identity(context.Background())
	require.NoError(t, err)
	assert.Equal(t, identity, got)

	credentials.EXPECT().ReadCredential(gomock.Any()).Return(models.StoredCredential{}, store.ErrCredentialNotFound)
	_, err = svc.Identity(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestClientAccountService_Logout(t *testing.T) {
	svc, _, credentials := newTestAccountService(t)
	credentials.EXPECT().DeleteCredential(gomock.Any()).Return(nil)

	assert.NoError(t, svc.Logout(context.Background()))
}

func TestClientAccountService_IsPro(t *testing.T) {
	svc, server, _ := newTestAccountService(t)

	server.EXPECT().IsPro(gomock.Any(), identity).Return(true, nil)
	pro, err := svc.IsPro(context.Background(), identity)
	require.NoError(t, err)
	assert.True(t, pro)

	server.EXPECT().IsPro(gomock.Any(), identity).Return(false, &adapter.ServerError{Status: 403})
	_, err = svc.IsPro(context.Background(), identity)

	var authErr *AuthError
	assert.ErrorAs(t, err, &authErr)
}
