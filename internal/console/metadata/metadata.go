// Package metadata defines the feature-store registry objects the console
// renders and the gateway contract used to load them.
package metadata

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound reports that a registry object does not exist.
var ErrNotFound = errors.New("metadata: object not found")

// ValueType describes the type of an entity key or feature value.
type ValueType int

const (
	ValueTypeUnknown ValueType = iota
	ValueTypeBytes
	ValueTypeString
	ValueTypeInt32
	ValueTypeInt64
	ValueTypeDouble
	ValueTypeFloat
	ValueTypeBool
	ValueTypeUnixTimestamp
	ValueTypeBytesList
	ValueTypeStringList
	ValueTypeInt32List
	ValueTypeInt64List
	ValueTypeDoubleList
	ValueTypeFloatList
	ValueTypeBoolList
	ValueTypeUnixTimestampList
)

var valueTypeNames = map[ValueType]string{
	ValueTypeUnknown:           "UNKNOWN",
	ValueTypeBytes:             "BYTES",
	ValueTypeString:            "STRING",
	ValueTypeInt32:             "INT32",
	ValueTypeInt64:             "INT64",
	ValueTypeDouble:            "DOUBLE",
	ValueTypeFloat:             "FLOAT",
	ValueTypeBool:              "BOOL",
	ValueTypeUnixTimestamp:     "UNIX_TIMESTAMP",
	ValueTypeBytesList:         "BYTES_LIST",
	ValueTypeStringList:        "STRING_LIST",
	ValueTypeInt32List:         "INT32_LIST",
	ValueTypeInt64List:         "INT64_LIST",
	ValueTypeDoubleList:        "DOUBLE_LIST",
	ValueTypeFloatList:         "FLOAT_LIST",
	ValueTypeBoolList:          "BOOL_LIST",
	ValueTypeUnixTimestampList: "UNIX_TIMESTAMP_LIST",
}

// String returns the registry wire name for the value type.
func (v ValueType) String() string {
	if name, ok := valueTypeNames[v]; ok {
		return name
	}
	return valueTypeNames[ValueTypeUnknown]
}

// ParseValueType resolves a registry wire name; unrecognized names map to
// ValueTypeUnknown.
func ParseValueType(name string) ValueType {
	for value, candidate := range valueTypeNames {
		if candidate == name {
			return value
		}
	}
	return ValueTypeUnknown
}

// Project identifies the feature-store project the console serves.
type Project struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// Entity is a collection of semantically related keys used to join
// features. JoinKey defaults to the entity name when unset.
type Entity struct {
	Name                 string            `yaml:"name"`
	ValueType            ValueType         `yaml:"valueType"`
	JoinKey              string            `yaml:"joinKey"`
	Description          string            `yaml:"description,omitempty"`
	Labels               map[string]string `yaml:"labels,omitempty"`
	Owner                string            `yaml:"owner,omitempty"`
	CreatedTimestamp     time.Time         `yaml:"createdTimestamp,omitempty"`
	LastUpdatedTimestamp time.Time         `yaml:"lastUpdatedTimestamp,omitempty"`
}

// EffectiveJoinKey returns the join key, falling back to the entity name.
func (e Entity) EffectiveJoinKey() string {
	if e.JoinKey != "" {
		return e.JoinKey
	}
	return e.Name
}

// Feature is one named value served by a feature view.
type Feature struct {
	Name      string    `yaml:"name"`
	ValueType ValueType `yaml:"valueType"`
}

// FeatureView groups features computed from one data source and keyed by
// one or more entities.
type FeatureView struct {
	Name                 string            `yaml:"name"`
	Entities             []string          `yaml:"entities"`
	Features             []Feature         `yaml:"features"`
	TTL                  time.Duration     `yaml:"ttl,omitempty"`
	Online               bool              `yaml:"online"`
	Source               string            `yaml:"source,omitempty"`
	Description          string            `yaml:"description,omitempty"`
	Labels               map[string]string `yaml:"labels,omitempty"`
	Owner                string            `yaml:"owner,omitempty"`
	CreatedTimestamp     time.Time         `yaml:"createdTimestamp,omitempty"`
	LastUpdatedTimestamp time.Time         `yaml:"lastUpdatedTimestamp,omitempty"`
}

// Projection selects features from one view for serving.
type Projection struct {
	FeatureView string   `yaml:"featureView"`
	Features    []string `yaml:"features,omitempty"`
}

// FeatureService is a serving-time grouping of feature projections.
type FeatureService struct {
	Name                 string            `yaml:"name"`
	Projections          []Projection      `yaml:"projections"`
	Description          string            `yaml:"description,omitempty"`
	Labels               map[string]string `yaml:"labels,omitempty"`
	Owner                string            `yaml:"owner,omitempty"`
	CreatedTimestamp     time.Time         `yaml:"createdTimestamp,omitempty"`
	LastUpdatedTimestamp time.Time         `yaml:"lastUpdatedTimestamp,omitempty"`
}

// SavedDataset is a persisted training dataset materialized from feature
// views.
type SavedDataset struct {
	Name                 string            `yaml:"name"`
	Features             []string          `yaml:"features"`
	JoinKeys             []string          `yaml:"joinKeys,omitempty"`
	StoragePath          string            `yaml:"storagePath,omitempty"`
	Source               string            `yaml:"source,omitempty"`
	Labels               map[string]string `yaml:"labels,omitempty"`
	CreatedTimestamp     time.Time         `yaml:"createdTimestamp,omitempty"`
	LastUpdatedTimestamp time.Time         `yaml:"lastUpdatedTimestamp,omitempty"`
}

// SourceType classifies where a data source reads from.
type SourceType string

const (
	SourceTypeBatchFile  SourceType = "BATCH_FILE"
	SourceTypeBatchTable SourceType = "BATCH_TABLE"
	SourceTypeStream     SourceType = "STREAM"
	SourceTypeRequest    SourceType = "REQUEST"
)

// DataSource describes one upstream input to feature views.
type DataSource struct {
	Name                   string     `yaml:"name"`
	Type                   SourceType `yaml:"type"`
	Path                   string     `yaml:"path,omitempty"`
	EventTimestampColumn   string     `yaml:"eventTimestampColumn,omitempty"`
	CreatedTimestampColumn string     `yaml:"createdTimestampColumn,omitempty"`
	Description            string     `yaml:"description,omitempty"`
	Owner                  string     `yaml:"owner,omitempty"`
}

// Snapshot is one published registry state: everything the console needs
// to render a project.
type Snapshot struct {
	Project         Project
	Entities        []Entity
	FeatureViews    []FeatureView
	FeatureServices []FeatureService
	SavedDatasets   []SavedDataset
	DataSources     []DataSource
}

// Gateway is the data-access collaborator supplying registry objects.
// Implementations are read-only; the console never writes back.
type Gateway interface {
	Project(ctx context.Context) (Project, error)

	ListEntities(ctx context.Context) ([]Entity, error)
	GetEntity(ctx context.Context, name string) (Entity, error)

	ListFeatureViews(ctx context.Context) ([]FeatureView, error)
	GetFeatureView(ctx context.Context, name string) (FeatureView, error)

	ListFeatureServices(ctx context.Context) ([]FeatureService, error)
	GetFeatureService(ctx context.Context, name string) (FeatureService, error)

	ListSavedDatasets(ctx context.Context) ([]SavedDataset, error)
	GetSavedDataset(ctx context.Context, name string) (SavedDataset, error)

	ListDataSources(ctx context.Context) ([]DataSource, error)
	GetDataSource(ctx context.Context, name string) (DataSource, error)
}
