package seed

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"solar-system-server/internal/planet"
	"solar-system-server/internal/shared/errors"
)

var DataSources = []string{
	"NASA Planetary Fact Sheets",
	"International Astronomical Union (IAU)",
	"JPL HORIZONS System",
	"Space mission data (Voyager, Cassini, New Horizons, etc.)",
	"Peer-reviewed astronomical journals",
}

type SnapshotMetadata struct {
	ExportDate     time.Time `json:"export_date"`
	TotalObjects   int       `json:"total_objects"`
	CommandVersion string    `json:"command_version"`
	DataSources    []string  `json:"data_sources"`
}

// Snapshot is the export file layout. Records carry every persisted field
// except the database ID.
type Snapshot struct {
	Metadata    SnapshotMetadata       `json:"metadata"`
	SolarSystem []planet.CelestialBody `json:"solar_system"`
}

// ExportSnapshot writes every body, ordered by display order, to path
func (s *Service) ExportSnapshot(ctx context.Context, path string) (*Snapshot, error) {
	logger := s.logger.With("component", "seed_service", "operation", "export_snapshot", "path", path)

	bodies, err := s.store.ListAll(ctx)
	if err != nil {
		logger.Error("Failed to list planets", "error", err)
		return nil, errors.WrapExport("failed to read planets for export", err)
	}

	snapshot := &Snapshot{
		Metadata: SnapshotMetadata{
			ExportDate:     s.now(),
			TotalObjects:   len(bodies),
			CommandVersion: s.commandVersion,
			DataSources:    DataSources,
		},
		SolarSystem: bodies,
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, errors.WrapExport("failed to encode snapshot", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		logger.Error("Failed to write snapshot", "error", err)
		return nil, errors.WrapExport("failed to write snapshot to "+path, err)
	}

	logger.Info("Exported planetary data", "count", len(bodies))
	return snapshot, nil
}

// Backup exports the current catalog into dir under a timestamped name.
// An empty catalog is not backed up and yields an empty path.
func (s *Service) Backup(ctx context.Context, dir string) (string, error) {
	logger := s.logger.With("component", "seed_service", "operation", "backup", "dir", dir)

	bodies, err := s.store.ListAll(ctx)
	if err != nil {
		return "", errors.WrapExport("failed to check existing planets", err)
	}
	if len(bodies) == 0 {
		logger.Debug("Nothing to back up")
		return "", nil
	}

	path := filepath.Join(dir, "planet_backup_"+s.now().Format("20060102_150405")+".json")
	if _, err := s.ExportSnapshot(ctx, path); err != nil {
		return "", err
	}

	logger.Info("Backup created", "path", path)
	return path, nil
}

func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapExport("failed to read snapshot "+path, err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, errors.WrapExport("failed to decode snapshot "+path, err)
	}
	return &snapshot, nil
}

// Restore validates the snapshot records and upserts them in one transaction,
// overwriting bodies that already exist. Stored timestamps are reset by the store.
func (s *Service) Restore(ctx context.Context, snapshot *Snapshot) (Tally, error) {
	logger := s.logger.With("component", "seed_service", "operation", "restore", "count", len(snapshot.SolarSystem))

	if violations := ValidateRecords(snapshot.SolarSystem); len(violations) > 0 {
		logger.Warn("Snapshot failed validation", "violations", len(violations))
		return Tally{}, errors.ValidationFailure(violations)
	}

	var tally Tally
	err := s.store.InTx(ctx, func(store planet.Store) error {
		var err error
		tally, err = Upsert(ctx, store, snapshot.SolarSystem, true)
		return err
	})
	if err != nil {
		logger.Error("Restore failed", "error", err)
		return Tally{}, errors.WrapPopulation("failed to restore snapshot", err)
	}

	logger.Info("Snapshot restored", "created", tally.Created, "updated", tally.Updated)
	return tally, nil
}
