package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/notepad-sync/internal/logger"
	"github.com/MKhiriev/notepad-sync/models"
)

const (
	credentialsTable = "credentials"
	passphrasesTable = "passphrases"

	// activeCredentialID is the id of the only row of the credentials table.
	activeCredentialID = 1
)

type credentialRepository struct {
	*DB
	logger *logger.Logger
}

func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialStore {
	return &credentialRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *credentialRepository) ReadCredential(ctx context.Context) (models.StoredCredential, error) {
	query, args, err := stmt.
		Select("username", "password", "token").
		From(credentialsTable).
		Where(sq.Eq{"id": activeCredentialID}).
		ToSql()
	if err != nil {
		return models.StoredCredential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var c models.StoredCredential
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&c.Username, &c.Password, &c.Token)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredCredential{}, ErrCredentialNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "credentialRepository.ReadCredential").
			Msg("failed to read credential row")
		return models.StoredCredential{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return c, nil
}

func (r *credentialRepository) WriteCredential(ctx context.Context, credential models.StoredCredential) error {
	query, args, err := stmt.
		Insert(credentialsTable).
		Columns("id", "username", "password", "token").
		Values(activeCredentialID, credential.Username, credential.Password, credential.Token).
		Suffix("ON CONFLICT (id) DO UPDATE SET " +
			"username = excluded.username, " +
			"password = excluded.password, " +
			"token = excluded.token, " +
			"updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "credentialRepository.WriteCredential").
			Str("username", credential.Username).
			Msg("failed to upsert credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *credentialRepository) DeleteCredential(ctx context.Context) error {
	query, args, err := stmt.
		Delete(credentialsTable).
		Where(sq.Eq{"id": activeCredentialID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "credentialRepository.DeleteCredential").
			Msg("failed to delete credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

type passphraseRepository struct {
	*DB
	logger *logger.Logger
}

func NewPassphraseRepository(db *DB, logger *logger.Logger) PassphraseStore {
	return &passphraseRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *passphraseRepository) ReadPassphrase(ctx context.Context, notepadID string) (string, error) {
	query, args, err := stmt.
		Select("passphrase").
		From(passphrasesTable).
		Where(sq.Eq{"notepad_id": notepadID}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var passphrase string
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&passphrase)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "passphraseRepository.ReadPassphrase").
			Str("notepad_id", notepadID).
			Msg("failed to read passphrase")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return passphrase, nil
}

// WritePassphrase stores passphrase for the notepad. An empty passphrase
// removes the stored one.
func (r *passphraseRepository) WritePassphrase(ctx context.Context, notepadID, passphrase string) error {
	var (
		query string
		args  []any
		err   error
	)

	if passphrase == "" {
		query, args, err = stmt.
			Delete(passphrasesTable).
			Where(sq.Eq{"notepad_id": notepadID}).
			ToSql()
	} else {
		query, args, err = stmt.
			Insert(passphrasesTable).
			Columns("notepad_id", "passphrase").
			Values(notepadID, passphrase).
			Suffix("ON CONFLICT (notepad_id) DO UPDATE SET passphrase = excluded.passphrase").
			ToSql()
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "passphraseRepository.WritePassphrase").
			Str("notepad_id", notepadID).
			Msg("failed to store passphrase")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
