package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"exposure/pkg/domain"
	"exposure/pkg/storage"
	"exposure/pkg/storage/postgres"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg := setupTestDB(t)
	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = txStorage.Rollback() }()

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)
}

func TestPgSQL_CommitAndRollback_NotInTx(t *testing.T) {
	pg := setupTestDB(t)

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
}

func TestPgSQL_WithTx_CompletionIsAtomic(t *testing.T) {
	pg := setupTestDB(t)
	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	t.Run("commit persists status and findings together", func(t *testing.T) {
		scan := storeRunning(t, pg, userID, "example.com")

		err := pg.WithTx(ctx, func(tx storage.AllStorage) error {
			if _, err := tx.UpdateScanStatus(ctx, scan.ID, domain.ScanStatusRunning, domain.ScanStatusCompleted); err != nil {
				return err
			}

			return tx.StoreFindings(ctx, domain.Finding{
				URL: "https://example.com/.env", Path: "/.env", Description: "Environment file",
				Severity: domain.SeverityCritical, StatusCode: 200, ScanID: scan.ID, UserID: userID,
			})
		})
		require.NoError(t, err)

		got, err := pg.ScanByID(ctx, userID, scan.ID)
		require.NoError(t, err)
		require.Equal(t, domain.ScanStatusCompleted, got.Status)

		findings, err := pg.FindingsByScanIDs(ctx, scan.ID)
		require.NoError(t, err)
		require.Len(t, findings[scan.ID], 1)
	})

	t.Run("rollback discards status and findings", func(t *testing.T) {
		scan := storeRunning(t, pg, userID, "example.org")

		err := pg.WithTx(ctx, func(tx storage.AllStorage) error {
			if _, err := tx.UpdateScanStatus(ctx, scan.ID, domain.ScanStatusRunning, domain.ScanStatusCompleted); err != nil {
				return err
			}
			if err := tx.StoreFindings(ctx, domain.Finding{
				URL: "https://example.org/.env", Path: "/.env", Description: "Environment file",
				Severity: domain.SeverityCritical, StatusCode: 200, ScanID: scan.ID, UserID: userID,
			}); err != nil {
				return err
			}

			return errors.New("boom")
		})
		require.Error(t, err)

		got, err := pg.ScanByID(ctx, userID, scan.ID)
		require.NoError(t, err)
		require.Equal(t, domain.ScanStatusRunning, got.Status)

		findings, err := pg.FindingsByScanIDs(ctx, scan.ID)
		require.NoError(t, err)
		require.Empty(t, findings[scan.ID])
	})
}
