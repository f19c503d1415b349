package sqlstore

import (
	"context"
	"log/slog"

	"counterhub/internal/errors"
	"counterhub/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Schema modes, matching database.schema.
const (
	SchemaSync  = "sync"
	SchemaReset = "reset"
	SchemaNone  = "none"
)

// SyncSchema brings the tables in line with the models.
// sync (the default) only creates missing tables, columns and indexes. reset drops every table
// first and runs only when configured explicitly.
func SyncSchema(ctx context.Context, db *gorm.DB, mode string, logger *slog.Logger) error {
	if mode == "" {
		mode = SchemaSync
	}

	migrator := db.WithContext(ctx).Migrator()

	switch mode {
	case SchemaNone:
		logger.Info("Relational schema synchronisation disabled")

		return nil
	case SchemaReset:
		logger.Warn("Resetting relational schema, existing data will be dropped")
		// Children first so foreign keys never block the drop.
		if err := migrator.DropTable(&model.DailySummaryModel{}, &model.ActivityModel{}, &model.UserModel{}); err != nil {
			return errors.Wrap(err, "failed to drop tables")
		}
	case SchemaSync:
	default:
		return errors.Errorf("unsupported schema mode: %s", mode)
	}

	if err := migrator.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to synchronise schema")
	}

	logger.Info("Relational schema synchronised", slog.String("mode", mode))

	return nil
}
