package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"worldseed/internal/adapter/repo/gorm/model"
	"worldseed/internal/app/ports"
	"worldseed/internal/domain/terrain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WorldRepo struct {
	db *gorm.DB
}

func NewWorldRepo(db *gorm.DB) WorldRepo {
	return WorldRepo{db: db}
}

func (r WorldRepo) Save(ctx context.Context, record ports.WorldRecord) error {
	row, err := encodeWorld(record)
	if err != nil {
		return err
	}
	return getDBFromCtx(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "width", "height", "wrap", "seed", "options", "cells", "stats"}),
	}).Create(&row).Error
}

func (r WorldRepo) GetByID(ctx context.Context, id string) (ports.WorldRecord, error) {
	var row model.World
	if err := getDBFromCtx(ctx, r.db).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.WorldRecord{}, ports.ErrNotFound
		}
		return ports.WorldRecord{}, err
	}
	return decodeWorld(row)
}

func (r WorldRepo) List(ctx context.Context) ([]ports.WorldSummary, error) {
	rows := []model.World{}
	err := getDBFromCtx(ctx, r.db).
		Select("id", "name", "width", "height", "wrap", "seed", "stats", "created_at").
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{
				{Column: clause.Column{Name: "created_at"}},
				{Column: clause.Column{Name: "id"}},
			},
		}).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]ports.WorldSummary, 0, len(rows))
	for _, row := range rows {
		var stats ports.WorldStats
		if len(row.Stats) > 0 {
			if err := json.Unmarshal(row.Stats, &stats); err != nil {
				return nil, fmt.Errorf("decode stats for world %s: %w", row.ID, err)
			}
		}
		out = append(out, ports.WorldSummary{
			ID:        row.ID,
			Name:      row.Name,
			Width:     int(row.Width),
			Height:    int(row.Height),
			Wrap:      row.Wrap,
			Seed:      row.Seed,
			Stats:     stats,
			CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}

func (r WorldRepo) Delete(ctx context.Context, id string) error {
	res := getDBFromCtx(ctx, r.db).Where("id = ?", id).Delete(&model.World{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func encodeWorld(record ports.WorldRecord) (model.World, error) {
	options, err := json.Marshal(record.Options)
	if err != nil {
		return model.World{}, fmt.Errorf("encode options: %w", err)
	}
	cells, err := json.Marshal(record.Cells)
	if err != nil {
		return model.World{}, fmt.Errorf("encode cells: %w", err)
	}
	stats, err := json.Marshal(record.Stats)
	if err != nil {
		return model.World{}, fmt.Errorf("encode stats: %w", err)
	}
	return model.World{
		ID:        record.ID,
		Name:      record.Name,
		Width:     int32(record.Width),
		Height:    int32(record.Height),
		Wrap:      record.Wrap,
		Seed:      record.Seed,
		Options:   options,
		Cells:     cells,
		Stats:     stats,
		CreatedAt: record.CreatedAt,
	}, nil
}

func decodeWorld(row model.World) (ports.WorldRecord, error) {
	record := ports.WorldRecord{
		ID:        row.ID,
		Name:      row.Name,
		Width:     int(row.Width),
		Height:    int(row.Height),
		Wrap:      row.Wrap,
		Seed:      row.Seed,
		CreatedAt: row.CreatedAt,
	}
	if len(row.Options) > 0 {
		if err := json.Unmarshal(row.Options, &record.Options); err != nil {
			return ports.WorldRecord{}, fmt.Errorf("decode options for world %s: %w", row.ID, err)
		}
	}
	record.Cells = []terrain.Cell{}
	if len(row.Cells) > 0 {
		if err := json.Unmarshal(row.Cells, &record.Cells); err != nil {
			return ports.WorldRecord{}, fmt.Errorf("decode cells for world %s: %w", row.ID, err)
		}
	}
	if len(row.Stats) > 0 {
		if err := json.Unmarshal(row.Stats, &record.Stats); err != nil {
			return ports.WorldRecord{}, fmt.Errorf("decode stats for world %s: %w", row.ID, err)
		}
	}
	return record, nil
}
