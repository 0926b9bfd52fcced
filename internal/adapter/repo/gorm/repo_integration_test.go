package gormrepo

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"worldseed/internal/app/ports"
	"worldseed/internal/domain/terrain"
	"worldseed/migrations"

	"gorm.io/gorm"
)

func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("WORLDSEED_DB_DSN")
	if dsn == "" {
		t.Skip("WORLDSEED_DB_DSN is required for integration test")
	}
	return dsn
}

func openMigratedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := OpenPostgres(requireDSN(t))
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	if err := ApplyMigrations(context.Background(), db, migrations.Files); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return db
}

func generatedRecord(t *testing.T, id string, seed int64, createdAt time.Time) ports.WorldRecord {
	t.Helper()
	opts := terrain.DefaultOptions()
	opts.Seed = seed
	grid, err := terrain.Generate(6, 4, true, opts)
	if err != nil {
		t.Fatalf("generate grid: %v", err)
	}
	return ports.WorldRecord{
		ID:        id,
		Name:      "world-" + id,
		Width:     6,
		Height:    4,
		Wrap:      true,
		Seed:      seed,
		Options:   opts,
		Cells:     grid.Cells(),
		Stats:     ports.WorldStats{WaterCells: 3},
		CreatedAt: createdAt,
	}
}

func TestWorldRepo_SaveGetRoundTrip(t *testing.T) {
	db := openMigratedDB(t)
	ctx := context.Background()
	id := "it-world-roundtrip"
	_ = db.Exec("DELETE FROM worlds WHERE id = ?", id).Error

	repo := NewWorldRepo(db)
	want := generatedRecord(t, id, 21, time.Unix(1700000000, 0).UTC())
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != want.Name || got.Width != 6 || got.Height != 4 || !got.Wrap {
		t.Fatalf("metadata mismatch: %+v", got)
	}
	if got.Seed != 21 || got.Options.Seed != 21 {
		t.Fatalf("seed mismatch: record=%d options=%d", got.Seed, got.Options.Seed)
	}
	if len(got.Cells) != len(want.Cells) {
		t.Fatalf("cell count mismatch: got=%d want=%d", len(got.Cells), len(want.Cells))
	}
	for i := range want.Cells {
		if got.Cells[i] != want.Cells[i] {
			t.Fatalf("cell %d did not survive the jsonb round trip: got=%+v want=%+v", i, got.Cells[i], want.Cells[i])
		}
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Fatalf("created_at mismatch: got=%v want=%v", got.CreatedAt, want.CreatedAt)
	}
}

func TestWorldRepo_SaveUpserts(t *testing.T) {
	db := openMigratedDB(t)
	ctx := context.Background()
	id := "it-world-upsert"
	_ = db.Exec("DELETE FROM worlds WHERE id = ?", id).Error

	repo := NewWorldRepo(db)
	record := generatedRecord(t, id, 5, time.Unix(1700000000, 0).UTC())
	if err := repo.Save(ctx, record); err != nil {
		t.Fatalf("save: %v", err)
	}
	record.Name = "renamed"
	if err := repo.Save(ctx, record); err != nil {
		t.Fatalf("second save: %v", err)
	}

	var count int64
	if err := db.Table("worlds").Where("id = ?", id).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single row after upsert, got %d", count)
	}
	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "renamed" {
		t.Fatalf("expected updated name, got %q", got.Name)
	}
}

func TestWorldRepo_ListOrderedWithStats(t *testing.T) {
	db := openMigratedDB(t)
	ctx := context.Background()
	ids := []string{"it-world-list-b", "it-world-list-a"}
	for _, id := range ids {
		_ = db.Exec("DELETE FROM worlds WHERE id = ?", id).Error
	}

	repo := NewWorldRepo(db)
	base := time.Unix(1700000000, 0).UTC()
	newer := generatedRecord(t, ids[0], 2, base.Add(time.Hour))
	older := generatedRecord(t, ids[1], 1, base)
	older.Stats = ports.WorldStats{WaterCells: 9, SettlementCells: 2}
	for _, rec := range []ports.WorldRecord{newer, older} {
		if err := repo.Save(ctx, rec); err != nil {
			t.Fatalf("save %s: %v", rec.ID, err)
		}
	}

	summaries, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	posOlder, posNewer := -1, -1
	for i, s := range summaries {
		switch s.ID {
		case ids[1]:
			posOlder = i
			if s.Stats.WaterCells != 9 || s.Stats.SettlementCells != 2 {
				t.Fatalf("stats not decoded: %+v", s.Stats)
			}
		case ids[0]:
			posNewer = i
		}
	}
	if posOlder == -1 || posNewer == -1 {
		t.Fatalf("saved worlds missing from list: %+v", summaries)
	}
	if posOlder > posNewer {
		t.Fatalf("expected creation order, got older=%d newer=%d", posOlder, posNewer)
	}
}

func TestWorldRepo_Delete(t *testing.T) {
	db := openMigratedDB(t)
	ctx := context.Background()
	id := "it-world-delete"
	_ = db.Exec("DELETE FROM worlds WHERE id = ?", id).Error

	repo := NewWorldRepo(db)
	if err := repo.Save(ctx, generatedRecord(t, id, 3, time.Now().UTC())); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, id); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, id); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on missing delete, got %v", err)
	}
}

func TestTxManager_RunInTxCommitAndRollback(t *testing.T) {
	db := openMigratedDB(t)
	ctx := context.Background()
	id := "it-world-tx"
	_ = db.Exec("DELETE FROM worlds WHERE id = ?", id).Error
	_ = db.Exec("DELETE FROM worlds WHERE id = ?", id+"-rb").Error

	txManager := NewTxManager(db)
	repo := NewWorldRepo(db)

	commitErr := txManager.RunInTx(ctx, func(txCtx context.Context) error {
		return repo.Save(txCtx, generatedRecord(t, id, 4, time.Now().UTC()))
	})
	if commitErr != nil {
		t.Fatalf("commit tx failed: %v", commitErr)
	}
	if _, err := repo.GetByID(ctx, id); err != nil {
		t.Fatalf("expected committed world, got err=%v", err)
	}

	rollbackErr := txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := repo.Save(txCtx, generatedRecord(t, id+"-rb", 4, time.Now().UTC())); err != nil {
			return err
		}
		return errors.New("force rollback")
	})
	if rollbackErr == nil {
		t.Fatalf("expected rollback error")
	}
	if _, err := repo.GetByID(ctx, id+"-rb"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected rollback to remove world, got err=%v", err)
	}
}
