// Package sqlitestore reads registry snapshots from a SQLite database.
// Snapshots are published by registry tooling; the console opens them
// read-only.
package sqlitestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/featstore/console/internal/console/metadata"
	_ "modernc.org/sqlite"
)

// Store serves registry objects from a SQLite snapshot file.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	if value == 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite registry snapshot and ensures its schema exists.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("registry path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite registry: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite registry: %w", err)
	}
	if err := ensureSchema(sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ensure registry schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS project (
	   name        TEXT PRIMARY KEY,
	   description TEXT NOT NULL DEFAULT ''
	 )`,
	`CREATE TABLE IF NOT EXISTS entities (
	   name        TEXT PRIMARY KEY,
	   value_type  TEXT NOT NULL,
	   join_key    TEXT NOT NULL,
	   description TEXT NOT NULL DEFAULT '',
	   labels      TEXT NOT NULL DEFAULT '{}',
	   owner       TEXT NOT NULL DEFAULT '',
	   created_at  INTEGER NOT NULL DEFAULT 0,
	   updated_at  INTEGER NOT NULL DEFAULT 0
	 )`,
	`CREATE TABLE IF NOT EXISTS feature_views (
	   name        TEXT PRIMARY KEY,
	   entities    TEXT NOT NULL DEFAULT '[]',
	   features    TEXT NOT NULL DEFAULT '[]',
	   ttl_seconds INTEGER NOT NULL DEFAULT 0,
	   online      INTEGER NOT NULL DEFAULT 0,
	   source      TEXT NOT NULL DEFAULT '',
	   description TEXT NOT NULL DEFAULT '',
	   labels      TEXT NOT NULL DEFAULT '{}',
	   owner       TEXT NOT NULL DEFAULT '',
	   created_at  INTEGER NOT NULL DEFAULT 0,
	   updated_at  INTEGER NOT NULL DEFAULT 0
	 )`,
	`CREATE TABLE IF NOT EXISTS feature_services (
	   name        TEXT PRIMARY KEY,
	   projections TEXT NOT NULL DEFAULT '[]',
	   description TEXT NOT NULL DEFAULT '',
	   labels      TEXT NOT NULL DEFAULT '{}',
	   owner       TEXT NOT NULL DEFAULT '',
	   created_at  INTEGER NOT NULL DEFAULT 0,
	   updated_at  INTEGER NOT NULL DEFAULT 0
	 )`,
	`CREATE TABLE IF NOT EXISTS saved_datasets (
	   name         TEXT PRIMARY KEY,
	   features     TEXT NOT NULL DEFAULT '[]',
	   join_keys    TEXT NOT NULL DEFAULT '[]',
	   storage_path TEXT NOT NULL DEFAULT '',
	   source       TEXT NOT NULL DEFAULT '',
	   labels       TEXT NOT NULL DEFAULT '{}',
	   created_at   INTEGER NOT NULL DEFAULT 0,
	   updated_at   INTEGER NOT NULL DEFAULT 0
	 )`,
	`CREATE TABLE IF NOT EXISTS data_sources (
	   name                     TEXT PRIMARY KEY,
	   source_type              TEXT NOT NULL,
	   path                     TEXT NOT NULL DEFAULT '',
	   event_timestamp_column   TEXT NOT NULL DEFAULT '',
	   created_timestamp_column TEXT NOT NULL DEFAULT '',
	   description              TEXT NOT NULL DEFAULT '',
	   owner                    TEXT NOT NULL DEFAULT ''
	 )`,
}

func ensureSchema(sqlDB *sql.DB) error {
	for _, stmt := range schema {
		if _, err := sqlDB.Exec(stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// Publish replaces the snapshot contents with the supplied registry state.
// Registry tooling and tests use it; the console itself only reads.
func (s *Store) Publish(ctx context.Context, snapshot metadata.Snapshot) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("registry store is not configured")
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin publish: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"project", "entities", "feature_views", "feature_services", "saved_datasets", "data_sources"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	if snapshot.Project.Name != "" {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO project (name, description) VALUES (?, ?)`,
			snapshot.Project.Name, snapshot.Project.Description,
		); err != nil {
			return fmt.Errorf("insert project: %w", err)
		}
	}
	for _, entity := range snapshot.Entities {
		labels, err := encodeJSON(entity.Labels)
		if err != nil {
			return fmt.Errorf("encode entity %q labels: %w", entity.Name, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO entities (name, value_type, join_key, description, labels, owner, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			entity.Name, entity.ValueType.String(), entity.EffectiveJoinKey(), entity.Description,
			labels, entity.Owner, toMillis(entity.CreatedTimestamp), toMillis(entity.LastUpdatedTimestamp),
		); err != nil {
			return fmt.Errorf("insert entity %q: %w", entity.Name, err)
		}
	}
	for _, view := range snapshot.FeatureViews {
		entities, err := encodeJSON(view.Entities)
		if err != nil {
			return fmt.Errorf("encode view %q entities: %w", view.Name, err)
		}
		features, err := encodeJSON(viewFeatures(view.Features))
		if err != nil {
			return fmt.Errorf("encode view %q features: %w", view.Name, err)
		}
		labels, err := encodeJSON(view.Labels)
		if err != nil {
			return fmt.Errorf("encode view %q labels: %w", view.Name, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO feature_views (name, entities, features, ttl_seconds, online, source, description, labels, owner, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			view.Name, entities, features, int64(view.TTL/time.Second), boolToInt(view.Online), view.Source,
			view.Description, labels, view.Owner, toMillis(view.CreatedTimestamp), toMillis(view.LastUpdatedTimestamp),
		); err != nil {
			return fmt.Errorf("insert feature view %q: %w", view.Name, err)
		}
	}
	for _, service := range snapshot.FeatureServices {
		projections, err := encodeJSON(serviceProjections(service.Projections))
		if err != nil {
			return fmt.Errorf("encode service %q projections: %w", service.Name, err)
		}
		labels, err := encodeJSON(service.Labels)
		if err != nil {
			return fmt.Errorf("encode service %q labels: %w", service.Name, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO feature_services (name, projections, description, labels, owner, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			service.Name, projections, service.Description, labels, service.Owner,
			toMillis(service.CreatedTimestamp), toMillis(service.LastUpdatedTimestamp),
		); err != nil {
			return fmt.Errorf("insert feature service %q: %w", service.Name, err)
		}
	}
	for _, dataset := range snapshot.SavedDatasets {
		features, err := encodeJSON(dataset.Features)
		if err != nil {
			return fmt.Errorf("encode dataset %q features: %w", dataset.Name, err)
		}
		joinKeys, err := encodeJSON(dataset.JoinKeys)
		if err != nil {
			return fmt.Errorf("encode dataset %q join keys: %w", dataset.Name, err)
		}
		labels, err := encodeJSON(dataset.Labels)
		if err != nil {
			return fmt.Errorf("encode dataset %q labels: %w", dataset.Name, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO saved_datasets (name, features, join_keys, storage_path, source, labels, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			dataset.Name, features, joinKeys, dataset.StoragePath, dataset.Source, labels,
			toMillis(dataset.CreatedTimestamp), toMillis(dataset.LastUpdatedTimestamp),
		); err != nil {
			return fmt.Errorf("insert saved dataset %q: %w", dataset.Name, err)
		}
	}
	for _, source := range snapshot.DataSources {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO data_sources (name, source_type, path, event_timestamp_column, created_timestamp_column, description, owner)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			source.Name, string(source.Type), source.Path, source.EventTimestampColumn,
			source.CreatedTimestampColumn, source.Description, source.Owner,
		); err != nil {
			return fmt.Errorf("insert data source %q: %w", source.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit publish: %w", err)
	}
	return nil
}

// Project returns the snapshot project.
func (s *Store) Project(ctx context.Context) (metadata.Project, error) {
	row := s.sqlDB.QueryRowContext(ctx, `SELECT name, description FROM project LIMIT 1`)
	var project metadata.Project
	if err := row.Scan(&project.Name, &project.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return metadata.Project{}, metadata.ErrNotFound
		}
		return metadata.Project{}, fmt.Errorf("scan project: %w", err)
	}
	return project, nil
}

// ListEntities returns all entities in name order.
func (s *Store) ListEntities(ctx context.Context) ([]metadata.Entity, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT name, value_type, join_key, description, labels, owner, created_at, updated_at
		 FROM entities ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query entities: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entities []metadata.Entity
	for rows.Next() {
		entity, err := scanEntity(rows)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entities: %w", err)
	}
	return entities, nil
}

// GetEntity returns one entity by name.
func (s *Store) GetEntity(ctx context.Context, name string) (metadata.Entity, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT name, value_type, join_key, description, labels, owner, created_at, updated_at
		 FROM entities WHERE name = ?`, name)
	if err != nil {
		return metadata.Entity{}, fmt.Errorf("query entity: %w", err)
	}
	defer func() { _ = rows.Close() }()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return metadata.Entity{}, fmt.Errorf("iterate entity: %w", err)
		}
		return metadata.Entity{}, metadata.ErrNotFound
	}
	return scanEntity(rows)
}

func scanEntity(rows *sql.Rows) (metadata.Entity, error) {
	var entity metadata.Entity
	var valueType, labels string
	var createdAt, updatedAt int64
	if err := rows.Scan(&entity.Name, &valueType, &entity.JoinKey, &entity.Description, &labels, &entity.Owner, &createdAt, &updatedAt); err != nil {
		return metadata.Entity{}, fmt.Errorf("scan entity: %w", err)
	}
	entity.ValueType = metadata.ParseValueType(valueType)
	if err := decodeJSON(labels, &entity.Labels); err != nil {
		return metadata.Entity{}, fmt.Errorf("decode entity %q labels: %w", entity.Name, err)
	}
	entity.CreatedTimestamp = fromMillis(createdAt)
	entity.LastUpdatedTimestamp = fromMillis(updatedAt)
	return entity, nil
}

// ListFeatureViews returns all feature views in name order.
func (s *Store) ListFeatureViews(ctx context.Context) ([]metadata.FeatureView, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT name, entities, features, ttl_seconds, online, source, description, labels, owner, created_at, updated_at
		 FROM feature_views ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query feature views: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var views []metadata.FeatureView
	for rows.Next() {
		view, err := scanFeatureView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feature views: %w", err)
	}
	return views, nil
}

// GetFeatureView returns one feature view by name.
func (s *Store) GetFeatureView(ctx context.Context, name string) (metadata.FeatureView, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT name, entities, features, ttl_seconds, online, source, description, labels, owner, created_at, updated_at
		 FROM feature_views WHERE name = ?`, name)
	if err != nil {
		return metadata.FeatureView{}, fmt.Errorf("query feature view: %w", err)
	}
	defer func() { _ = rows.Close() }()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return metadata.FeatureView{}, fmt.Errorf("iterate feature view: %w", err)
		}
		return metadata.FeatureView{}, metadata.ErrNotFound
	}
	return scanFeatureView(rows)
}

func scanFeatureView(rows *sql.Rows) (metadata.FeatureView, error) {
	var view metadata.FeatureView
	var entities, features, labels string
	var ttlSeconds, online, createdAt, updatedAt int64
	if err := rows.Scan(&view.Name, &entities, &features, &ttlSeconds, &online, &view.Source, &view.Description, &labels, &view.Owner, &createdAt, &updatedAt); err != nil {
		return metadata.FeatureView{}, fmt.Errorf("scan feature view: %w", err)
	}
	if err := decodeJSON(entities, &view.Entities); err != nil {
		return metadata.FeatureView{}, fmt.Errorf("decode view %q entities: %w", view.Name, err)
	}
	var encoded []encodedFeature
	if err := decodeJSON(features, &encoded); err != nil {
		return metadata.FeatureView{}, fmt.Errorf("decode view %q features: %w", view.Name, err)
	}
	for _, feature := range encoded {
		view.Features = append(view.Features, metadata.Feature{
			Name:      feature.Name,
			ValueType: metadata.ParseValueType(feature.ValueType),
		})
	}
	if err := decodeJSON(labels, &view.Labels); err != nil {
		return metadata.FeatureView{}, fmt.Errorf("decode view %q labels: %w", view.Name, err)
	}
	view.TTL = time.Duration(ttlSeconds) * time.Second
	view.Online = online != 0
	view.CreatedTimestamp = fromMillis(createdAt)
	view.LastUpdatedTimestamp = fromMillis(updatedAt)
	return view, nil
}

// ListFeatureServices returns all feature services in name order.
func (s *Store) ListFeatureServices(ctx context.Context) ([]metadata.FeatureService, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT name, projections, description, labels, owner, created_at, updated_at
		 FROM feature_services ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query feature services: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var services []metadata.FeatureService
	for rows.Next() {
		service, err := scanFeatureService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, service)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feature services: %w", err)
	}
	return services, nil
}

// GetFeatureService returns one feature service by name.
func (s *Store) GetFeatureService(ctx context.Context, name string) (metadata.FeatureService, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT name, projections, description, labels, owner, created_at, updated_at
		 FROM feature_services WHERE name = ?`, name)
	if err != nil {
		return metadata.FeatureService{}, fmt.Errorf("query feature service: %w", err)
	}
	defer func() { _ = rows.Close() }()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return metadata.FeatureService{}, fmt.Errorf("iterate feature service: %w", err)
		}
		return metadata.FeatureService{}, metadata.ErrNotFound
	}
	return scanFeatureService(rows)
}

func scanFeatureService(rows *sql.Rows) (metadata.FeatureService, error) {
	var service metadata.FeatureService
	var projections, labels string
	var createdAt, updatedAt int64
	if err := rows.Scan(&service.Name, &projections, &service.Description, &labels, &service.Owner, &createdAt, &updatedAt); err != nil {
		return metadata.FeatureService{}, fmt.Errorf("scan feature service: %w", err)
	}
	var encoded []encodedProjection
	if err := decodeJSON(projections, &encoded); err != nil {
		return metadata.FeatureService{}, fmt.Errorf("decode service %q projections: %w", service.Name, err)
	}
	for _, projection := range encoded {
		service.Projections = append(service.Projections, metadata.Projection{
			FeatureView: projection.FeatureView,
			Features:    projection.Features,
		})
	}
	if err := decodeJSON(labels, &service.Labels); err != nil {
		return metadata.FeatureService{}, fmt.Errorf("decode service %q labels: %w", service.Name, err)
	}
	service.CreatedTimestamp = fromMillis(createdAt)
	service.LastUpdatedTimestamp = fromMillis(updatedAt)
	return service, nil
}

// ListSavedDatasets returns all saved datasets in name order.
func (s *Store) ListSavedDatasets(ctx context.Context) ([]metadata.SavedDataset, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT name, features, join_keys, storage_path, source, labels, created_at, updated_at
		 FROM saved_datasets ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query saved datasets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var datasets []metadata.SavedDataset
	for rows.Next() {
		dataset, err := scanSavedDataset(rows)
		if err != nil {
			return nil, err
		}
		datasets = append(datasets, dataset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate saved datasets: %w", err)
	}
	return datasets, nil
}

// GetSavedDataset returns one saved dataset by name.
func (s *Store) GetSavedDataset(ctx context.Context, name string) (metadata.SavedDataset, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT name, features, join_keys, storage_path, source, labels, created_at, updated_at
		 FROM saved_datasets WHERE name = ?`, name)
	if err != nil {
		return metadata.SavedDataset{}, fmt.Errorf("query saved dataset: %w", err)
	}
	defer func() { _ = rows.Close() }()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return metadata.SavedDataset{}, fmt.Errorf("iterate saved dataset: %w", err)
		}
		return metadata.SavedDataset{}, metadata.ErrNotFound
	}
	return scanSavedDataset(rows)
}

func scanSavedDataset(rows *sql.Rows) (metadata.SavedDataset, error) {
	var dataset metadata.SavedDataset
	var features, joinKeys, labels string
	var createdAt, updatedAt int64
	if err := rows.Scan(&dataset.Name, &features, &joinKeys, &dataset.StoragePath, &dataset.Source, &labels, &createdAt, &updatedAt); err != nil {
		return metadata.SavedDataset{}, fmt.Errorf("scan saved dataset: %w", err)
	}
	if err := decodeJSON(features, &dataset.Features); err != nil {
		return metadata.SavedDataset{}, fmt.Errorf("decode dataset %q features: %w", dataset.Name, err)
	}
	if err := decodeJSON(joinKeys, &dataset.JoinKeys); err != nil {
		return metadata.SavedDataset{}, fmt.Errorf("decode dataset %q join keys: %w", dataset.Name, err)
	}
	if err := decodeJSON(labels, &dataset.Labels); err != nil {
		return metadata.SavedDataset{}, fmt.Errorf("decode dataset %q labels: %w", dataset.Name, err)
	}
	dataset.CreatedTimestamp = fromMillis(createdAt)
	dataset.LastUpdatedTimestamp = fromMillis(updatedAt)
	return dataset, nil
}

// ListDataSources returns all data sources in name order.
func (s *Store) ListDataSources(ctx context.Context) ([]metadata.DataSource, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT name, source_type, path, event_timestamp_column, created_timestamp_column, description, owner
		 FROM data_sources ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query data sources: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var sources []metadata.DataSource
	for rows.Next() {
		source, err := scanDataSource(rows)
		if err != nil {
			return nil, err
		}
		sources = append(sources, source)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate data sources: %w", err)
	}
	return sources, nil
}

// GetDataSource returns one data source by name.
func (s *Store) GetDataSource(ctx context.Context, name string) (metadata.DataSource, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT name, source_type, path, event_timestamp_column, created_timestamp_column, description, owner
		 FROM data_sources WHERE name = ?`, name)
	if err != nil {
		return metadata.DataSource{}, fmt.Errorf("query data source: %w", err)
	}
	defer func() { _ = rows.Close() }()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return metadata.DataSource{}, fmt.Errorf("iterate data source: %w", err)
		}
		return metadata.DataSource{}, metadata.ErrNotFound
	}
	return scanDataSource(rows)
}

func scanDataSource(rows *sql.Rows) (metadata.DataSource, error) {
	var source metadata.DataSource
	var sourceType string
	if err := rows.Scan(&source.Name, &sourceType, &source.Path, &source.EventTimestampColumn, &source.CreatedTimestampColumn, &source.Description, &source.Owner); err != nil {
		return metadata.DataSource{}, fmt.Errorf("scan data source: %w", err)
	}
	source.Type = metadata.SourceType(sourceType)
	return source, nil
}

type encodedFeature struct {
	Name      string `json:"name"`
	ValueType string `json:"valueType"`
}

type encodedProjection struct {
	FeatureView string   `json:"featureView"`
	Features    []string `json:"features,omitempty"`
}

func viewFeatures(features []metadata.Feature) []encodedFeature {
	encoded := make([]encodedFeature, 0, len(features))
	for _, feature := range features {
		encoded = append(encoded, encodedFeature{Name: feature.Name, ValueType: feature.ValueType.String()})
	}
	return encoded
}

func serviceProjections(projections []metadata.Projection) []encodedProjection {
	encoded := make([]encodedProjection, 0, len(projections))
	for _, projection := range projections {
		encoded = append(encoded, encodedProjection{FeatureView: projection.FeatureView, Features: projection.Features})
	}
	return encoded
}

func encodeJSON(value any) (string, error) {
	out, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func decodeJSON(raw string, target any) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return json.Unmarshal([]byte(raw), target)
}

func boolToInt(value bool) int64 {
	if value {
		return 1
	}
	return 0
}
