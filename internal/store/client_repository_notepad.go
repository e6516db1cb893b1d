package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/notepad-sync/internal/logger"
	"github.com/MKhiriev/notepad-sync/models"
)

const notepadsTable = "notepads"

type notepadRepository struct {
	*DB
	logger *logger.Logger
}

func NewNotepadRepository(db *DB, logger *logger.Logger) DocumentStore {
	return &notepadRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *notepadRepository) ReadDocument(ctx context.Context, notepadID string) (*models.Notepad, error) {
	log := logger.FromContext(ctx)

	query, args, err := stmt.
		Select("last_modified", "document").
		From(notepadsTable).
		Where(sq.Eq{"id": notepadID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var lastModified, document string
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&lastModified, &document)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotepadNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "notepadRepository.ReadDocument").
			Str("notepad_id", notepadID).
			Msg("failed to read notepad row")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	var notepad models.Notepad
	if err = json.Unmarshal([]byte(document), &notepad); err != nil {
		log.Err(err).
			Str("func", "notepadRepository.ReadDocument").
			Str("notepad_id", notepadID).
			Msg("stored notepad is not valid json")
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	if notepad.LastModified, err = models.ParseLastModified(lastModified); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}
	notepad.RestoreParents()

	return &notepad, nil
}

func (r *notepadRepository) WriteDocument(ctx context.Context, notepadID string, notepad *models.Notepad) error {
	log := logger.FromContext(ctx)

	document, err := json.Marshal(notepad)
	if err != nil {
		return fmt.Errorf("encode notepad: %w", err)
	}

	query, args, err := stmt.
		Insert(notepadsTable).
		Columns("id", "title", "last_modified", "document").
		Values(notepadID, notepad.Title, models.FormatLastModified(notepad.LastModified), string(document)).
		Suffix("ON CONFLICT (id) DO UPDATE SET " +
			"title = excluded.title, " +
			"last_modified = excluded.last_modified, " +
			"document = excluded.document, " +
			"updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "notepadRepository.WriteDocument").
			Str("notepad_id", notepadID).
			Msg("failed to upsert notepad")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *notepadRepository) ListDocuments(ctx context.Context) ([]models.LocalNotepad, error) {
	log := logger.FromContext(ctx)

	query, args, err := stmt.
		Select("id", "title", "sync_id", "last_modified").
		From(notepadsTable).
		OrderBy("title", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "notepadRepository.ListDocuments").
			Msg("failed to execute query for listing notepads")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var notepads []models.LocalNotepad
	for rows.Next() {
		var (
			item         models.LocalNotepad
			lastModified string
		)

		if err = rows.Scan(&item.ID, &item.Title, &item.SyncID, &lastModified); err != nil {
			log.Err(err).
				Str("func", "notepadRepository.ListDocuments").
				Msg("failed to scan notepad row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		// a malformed timestamp only hides the value from the listing
		item.LastModified, _ = models.ParseLastModified(lastModified)
		notepads = append(notepads, item)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "notepadRepository.ListDocuments").
			Msg("error iterating notepad rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notepads, nil
}

func (r *notepadRepository) SyncID(ctx context.Context, notepadID string) (string, error) {
	query, args, err := stmt.
		Select("sync_id").
		From(notepadsTable).
		Where(sq.Eq{"id": notepadID}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var syncID string
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&syncID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotepadNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "notepadRepository.SyncID").
			Str("notepad_id", notepadID).
			Msg("failed to read sync id")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return syncID, nil
}

func (r *notepadRepository) SetSyncID(ctx context.Context, notepadID, syncID string) error {
	query, args, err := stmt.
		Update(notepadsTable).
		Set("sync_id", syncID).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": notepadID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "notepadRepository.SetSyncID").
			Str("notepad_id", notepadID).
			Msg("failed to update sync id")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotepadNotFound
	}

	return nil
}
