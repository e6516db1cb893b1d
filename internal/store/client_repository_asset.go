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

const assetsTable = "assets"

type assetRepository struct {
	*DB
	logger *logger.Logger
}

func NewAssetRepository(db *DB, logger *logger.Logger) AssetStore {
	return &assetRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *assetRepository) ReadAsset(ctx context.Context, uuid string) (models.Asset, error) {
	query, args, err := stmt.
		Select("mime_type", "data").
		From(assetsTable).
		Where(sq.Eq{"uuid": uuid}).
		ToSql()
	if err != nil {
		return models.Asset{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	asset := models.Asset{UUID: uuid}
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&asset.MimeType, &asset.Data)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Asset{}, ErrAssetNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "assetRepository.ReadAsset").
			Str("uuid", uuid).
			Msg("failed to read asset row")
		return models.Asset{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return asset, nil
}

func (r *assetRepository) HasAsset(ctx context.Context, uuid string) (bool, error) {
	query, args, err := stmt.
		Select("COUNT(1)").
		From(assetsTable).
		Where(sq.Eq{"uuid": uuid}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "assetRepository.HasAsset").
			Str("uuid", uuid).
			Msg("failed to count asset rows")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

func (r *assetRepository) WriteAsset(ctx context.Context, asset models.Asset) error {
	data := asset.Data
	if data == nil {
		data = []byte{}
	}

	query, args, err := stmt.
		Insert(assetsTable).
		Columns("uuid", "mime_type", "data").
		Values(asset.UUID, asset.MimeType, data).
		Suffix("ON CONFLICT (uuid) DO UPDATE SET mime_type = excluded.mime_type, data = excluded.data").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "assetRepository.WriteAsset").
			Str("uuid", asset.UUID).
			Int64("size", asset.Size()).
			Msg("failed to upsert asset")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
