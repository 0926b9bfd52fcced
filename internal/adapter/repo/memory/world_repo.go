package memory

import (
	"context"
	"slices"
	"sort"

	"worldseed/internal/app/ports"
)

type WorldRepo struct {
	store *Store
}

func NewWorldRepo(store *Store) WorldRepo {
	return WorldRepo{store: store}
}

func (r WorldRepo) Save(_ context.Context, record ports.WorldRecord) error {
	record.Cells = slices.Clone(record.Cells)
	r.store.worlds[record.ID] = record
	return nil
}

func (r WorldRepo) GetByID(_ context.Context, id string) (ports.WorldRecord, error) {
	record, ok := r.store.worlds[id]
	if !ok {
		return ports.WorldRecord{}, ports.ErrNotFound
	}
	record.Cells = slices.Clone(record.Cells)
	return record, nil
}

func (r WorldRepo) List(_ context.Context) ([]ports.WorldSummary, error) {
	summaries := make([]ports.WorldSummary, 0, len(r.store.worlds))
	for _, record := range r.store.worlds {
		summaries = append(summaries, ports.WorldSummary{
			ID:        record.ID,
			Name:      record.Name,
			Width:     record.Width,
			Height:    record.Height,
			Wrap:      record.Wrap,
			Seed:      record.Seed,
			Stats:     record.Stats,
			CreatedAt: record.CreatedAt,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].CreatedAt.Equal(summaries[j].CreatedAt) {
			return summaries[i].ID < summaries[j].ID
		}
		return summaries[i].CreatedAt.Before(summaries[j].CreatedAt)
	})
	return summaries, nil
}

func (r WorldRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.store.worlds[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.store.worlds, id)
	return nil
}
