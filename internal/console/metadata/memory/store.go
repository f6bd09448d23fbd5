// Package memory provides an in-memory registry snapshot gateway. The
// snapshot is fixed at construction, matching the console's read-only view
// of a published registry.
package memory

import (
	"context"
	"sort"
	"time"

	"github.com/featstore/console/internal/console/metadata"
)

// Store serves a fixed registry snapshot.
type Store struct {
	snapshot metadata.Snapshot
}

// NewStore copies the snapshot and returns a gateway over it. Lists are
// served in name order regardless of input order.
func NewStore(snapshot metadata.Snapshot) *Store {
	store := &Store{snapshot: metadata.Snapshot{
		Project:         snapshot.Project,
		Entities:        append([]metadata.Entity(nil), snapshot.Entities...),
		FeatureViews:    append([]metadata.FeatureView(nil), snapshot.FeatureViews...),
		FeatureServices: append([]metadata.FeatureService(nil), snapshot.FeatureServices...),
		SavedDatasets:   append([]metadata.SavedDataset(nil), snapshot.SavedDatasets...),
		DataSources:     append([]metadata.DataSource(nil), snapshot.DataSources...),
	}}
	sort.Slice(store.snapshot.Entities, func(i, j int) bool {
		return store.snapshot.Entities[i].Name < store.snapshot.Entities[j].Name
	})
	sort.Slice(store.snapshot.FeatureViews, func(i, j int) bool {
		return store.snapshot.FeatureViews[i].Name < store.snapshot.FeatureViews[j].Name
	})
	sort.Slice(store.snapshot.FeatureServices, func(i, j int) bool {
		return store.snapshot.FeatureServices[i].Name < store.snapshot.FeatureServices[j].Name
	})
	sort.Slice(store.snapshot.SavedDatasets, func(i, j int) bool {
		return store.snapshot.SavedDatasets[i].Name < store.snapshot.SavedDatasets[j].Name
	})
	sort.Slice(store.snapshot.DataSources, func(i, j int) bool {
		return store.snapshot.DataSources[i].Name < store.snapshot.DataSources[j].Name
	})
	return store
}

// Project returns the snapshot project.
func (s *Store) Project(ctx context.Context) (metadata.Project, error) {
	if err := ctx.Err(); err != nil {
		return metadata.Project{}, err
	}
	return s.snapshot.Project, nil
}

// ListEntities returns all entities in name order.
func (s *Store) ListEntities(ctx context.Context) ([]metadata.Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]metadata.Entity(nil), s.snapshot.Entities...), nil
}

// GetEntity returns one entity by name.
func (s *Store) GetEntity(ctx context.Context, name string) (metadata.Entity, error) {
	if err := ctx.Err(); err != nil {
		return metadata.Entity{}, err
	}
	for _, entity := range s.snapshot.Entities {
		if entity.Name == name {
			return entity, nil
		}
	}
	return metadata.Entity{}, metadata.ErrNotFound
}

// ListFeatureViews returns all feature views in name order.
func (s *Store) ListFeatureViews(ctx context.Context) ([]metadata.FeatureView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]metadata.FeatureView(nil), s.snapshot.FeatureViews...), nil
}

// GetFeatureView returns one feature view by name.
func (s *Store) GetFeatureView(ctx context.Context, name string) (metadata.FeatureView, error) {
	if err := ctx.Err(); err != nil {
		return metadata.FeatureView{}, err
	}
	for _, view := range s.snapshot.FeatureViews {
		if view.Name == name {
			return view, nil
		}
	}
	return metadata.FeatureView{}, metadata.ErrNotFound
}

// ListFeatureServices returns all feature services in name order.
func (s *Store) ListFeatureServices(ctx context.Context) ([]metadata.FeatureService, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]metadata.FeatureService(nil), s.snapshot.FeatureServices...), nil
}

// GetFeatureService returns one feature service by name.
func (s *Store) GetFeatureService(ctx context.Context, name string) (metadata.FeatureService, error) {
	if err := ctx.Err(); err != nil {
		return metadata.FeatureService{}, err
	}
	for _, service := range s.snapshot.FeatureServices {
		if service.Name == name {
			return service, nil
		}
	}
	return metadata.FeatureService{}, metadata.ErrNotFound
}

// ListSavedDatasets returns all saved datasets in name order.
func (s *Store) ListSavedDatasets(ctx context.Context) ([]metadata.SavedDataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]metadata.SavedDataset(nil), s.snapshot.SavedDatasets...), nil
}

// GetSavedDataset returns one saved dataset by name.
func (s *Store) GetSavedDataset(ctx context.Context, name string) (metadata.SavedDataset, error) {
	if err := ctx.Err(); err != nil {
		return metadata.SavedDataset{}, err
	}
	for _, dataset := range s.snapshot.SavedDatasets {
		if dataset.Name == name {
			return dataset, nil
		}
	}
	return metadata.SavedDataset{}, metadata.ErrNotFound
}

// ListDataSources returns all data sources in name order.
func (s *Store) ListDataSources(ctx context.Context) ([]metadata.DataSource, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]metadata.DataSource(nil), s.snapshot.DataSources...), nil
}

// GetDataSource returns one data source by name.
func (s *Store) GetDataSource(ctx context.Context, name string) (metadata.DataSource, error) {
	if err := ctx.Err(); err != nil {
		return metadata.DataSource{}, err
	}
	for _, source := range s.snapshot.DataSources {
		if source.Name == name {
			return source, nil
		}
	}
	return metadata.DataSource{}, metadata.ErrNotFound
}

// Demo returns a small sample registry for local runs.
func Demo() *Store {
	created := time.Date(2025, time.March, 4, 12, 0, 0, 0, time.UTC)
	return NewStore(metadata.Snapshot{
		Project: metadata.Project{Name: "rides", Description: "Ride marketplace feature store"},
		Entities: []metadata.Entity{
			{Name: "driver_id", ValueType: metadata.ValueTypeInt64, JoinKey: "driver_id", Description: "Driver identifier", Labels: map[string]string{"team": "rides"}, CreatedTimestamp: created},
			{Name: "rider_id", ValueType: metadata.ValueTypeInt64, JoinKey: "rider_id", Description: "Rider identifier", CreatedTimestamp: created},
		},
		FeatureViews: []metadata.FeatureView{
			{
				Name:     "driver_hourly_stats",
				Entities: []string{"driver_id"},
				Features: []metadata.Feature{
					{Name: "conv_rate", ValueType: metadata.ValueTypeFloat},
					{Name: "acc_rate", ValueType: metadata.ValueTypeFloat},
					{Name: "avg_daily_trips", ValueType: metadata.ValueTypeInt64},
				},
				TTL:              2 * time.Hour,
				Online:           true,
				Source:           "driver_hourly_stats_source",
				CreatedTimestamp: created,
			},
		},
		FeatureServices: []metadata.FeatureService{
			{
				Name:             "driver_ranking",
				Projections:      []metadata.Projection{{FeatureView: "driver_hourly_stats", Features: []string{"conv_rate", "acc_rate"}}},
				CreatedTimestamp: created,
			},
		},
		SavedDatasets: []metadata.SavedDataset{
			{
				Name:             "driver_ranking_training",
				Features:         []string{"driver_hourly_stats:conv_rate"},
				JoinKeys:         []string{"driver_id"},
				StoragePath:      "data/driver_ranking_training.parquet",
				CreatedTimestamp: created,
			},
		},
		DataSources: []metadata.DataSource{
			{
				Name:                 "driver_hourly_stats_source",
				Type:                 metadata.SourceTypeBatchFile,
				Path:                 "data/driver_stats.parquet",
				EventTimestampColumn: "event_timestamp",
			},
		},
	})
}
