package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/notepad-sync/internal/adapter"
	"github.com/MKhiriev/notepad-sync/internal/logger"
	"github.com/MKhiriev/notepad-sync/internal/store"
	"github.com/MKhiriev/notepad-sync/models"
)

type clientAccountService struct {
	server      adapter.ServerAdapter
	credentials store.CredentialStore
	logger      *logger.Logger
}

func NewClientAccountService(credentials store.CredentialStore, server adapter.ServerAdapter, logger *logger.Logger) ClientAccountService {
	return &clientAccountService{
		server:      server,
		credentials: credentials,
		logger:      logger,
	}
}

func (s *clientAccountService) Login(ctx context.Context, credentials models.Credentials) (models.SyncIdentity, error) {
	identity, err := s.server.Login(ctx, credentials)
	if err != nil {
		if adapter.IsUnauthorized(err) {
			return models.SyncIdentity{}, &AuthError{Username: credentials.Username, Err: err}
		}
		return models.SyncIdentity{}, fmt.Errorf("login: %w", err)
	}

	err = s.credentials.WriteCredential(ctx, models.StoredCredential{
		Username: identity.Username,
		Password: credentials.Password,
		Token:    identity.Token,
	})
	if err != nil {
		return models.SyncIdentity{}, fmt.Errorf("remember credential: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "clientAccountService.Login").
		Str("username", identity.Username).
		Msg("logged in")

	return identity, nil
}

func (s *clientAccountService) Logout(ctx context.Context) error {
	return s.credentials.DeleteCredential(ctx)
}

func (s *clientAccountService) Identity(ctx context.Context) (models.SyncIdentity, error) {
	cred, err := s.credentials.ReadCredential(ctx)
	if errors.Is(err, store.ErrCredentialNotFound) {
		return models.SyncIdentity{}, ErrNotLoggedIn
	}
	if err != nil {
		return models.SyncIdentity{}, err
	}
	return cred.Identity(), nil
}

func (s *clientAccountService) IsPro(ctx context.Context, identity models.SyncIdentity) (bool, error) {
	pro, err := s.server.IsPro(ctx, identity)
	if adapter.IsUnauthorized(err) {
		return false, &AuthError{Username: identity.Username, Err: err}
	}
	return pro, err
}
