package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"solar-system-server/internal/planet"
	"solar-system-server/internal/shared/config"
	"solar-system-server/internal/shared/errors"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionSkipped Action = "skipped"
)

// Outcome records what Upsert did with one record
type Outcome struct {
	Name      string
	Action    Action
	MoonCount int
	HasMoons  bool
	HasRings  bool
}

func (o Outcome) String() string {
	s := fmt.Sprintf("%s: %s", o.Action, o.Name)
	if o.HasMoons {
		s += fmt.Sprintf(" (%d moons)", o.MoonCount)
	}
	if o.HasRings {
		s += " (rings)"
	}
	return s
}

type Tally struct {
	Created  int
	Updated  int
	Skipped  int
	Outcomes []Outcome
}

func (t *Tally) record(body planet.CelestialBody, action Action) {
	switch action {
	case ActionCreated:
		t.Created++
	case ActionUpdated:
		t.Updated++
	case ActionSkipped:
		t.Skipped++
	}
	t.Outcomes = append(t.Outcomes, Outcome{
		Name:      body.Name,
		Action:    action,
		MoonCount: body.MoonCount,
		HasMoons:  body.HasMoons,
		HasRings:  body.HasRings,
	})
}

// Upsert writes records keyed by name. Missing names are created. Existing
// ones are overwritten when updateExisting is set and left alone otherwise.
func Upsert(ctx context.Context, store planet.Store, records []planet.CelestialBody, updateExisting bool) (Tally, error) {
	var tally Tally

	for _, record := range records {
		existing, err := store.FindByName(ctx, record.Name)
		if err != nil {
			return tally, fmt.Errorf("failed to look up %s: %w", record.Name, err)
		}

		body := record
		switch {
		case existing == nil:
			if err := store.Create(ctx, &body); err != nil {
				return tally, fmt.Errorf("failed to create %s: %w", record.Name, err)
			}
			tally.record(body, ActionCreated)
		case updateExisting:
			body.ID = existing.ID
			if err := store.Update(ctx, &body); err != nil {
				return tally, fmt.Errorf("failed to update %s: %w", record.Name, err)
			}
			tally.record(body, ActionUpdated)
		default:
			tally.record(*existing, ActionSkipped)
		}
	}

	return tally, nil
}

type Options struct {
	Clear          bool
	IncludeMoons   bool
	IncludeRings   bool
	UpdateExisting bool
}

type Report struct {
	Tally
	Deleted         int64
	BackupPath      string
	BackupErr       error
	Total           int
	TotalMoons      int
	BodiesWithMoons int
	BodiesWithRings int
}

type Service struct {
	store          planet.Store
	backupDir      string
	commandVersion string
	now            func() time.Time
	logger         *slog.Logger
}

func NewService(store planet.Store, cfg config.SeedConfig, logger *slog.Logger) *Service {
	logger.Debug("Initializing seed service")

	return &Service{
		store:          store,
		backupDir:      cfg.BackupDir,
		commandVersion: cfg.CommandVersion,
		now:            time.Now,
		logger:         logger,
	}
}

// Populate loads the canonical catalog. Clearing and upserting share one
// transaction so a failed run leaves the previous catalog in place. A clear
// is preceded by a backup export whose failure is reported but not fatal.
func (s *Service) Populate(ctx context.Context, opts Options) (*Report, error) {
	logger := s.logger.With("component", "seed_service", "operation", "populate",
		"clear", opts.Clear,
		"include_moons", opts.IncludeMoons,
		"include_rings", opts.IncludeRings,
		"update_existing", opts.UpdateExisting,
	)
	logger.Info("Starting solar system data population")

	report := &Report{}

	if opts.Clear {
		report.BackupPath, report.BackupErr = s.Backup(ctx, s.backupDir)
		if report.BackupErr != nil {
			logger.Warn("Could not create backup", "error", report.BackupErr)
		}
	}

	records := Catalog(ProseOptions{IncludeMoons: opts.IncludeMoons, IncludeRings: opts.IncludeRings})

	err := s.store.InTx(ctx, func(store planet.Store) error {
		if opts.Clear {
			deleted, err := store.DeleteAll(ctx)
			if err != nil {
				return err
			}
			report.Deleted = deleted
		}

		tally, err := Upsert(ctx, store, records, opts.UpdateExisting)
		if err != nil {
			return err
		}
		report.Tally = tally
		return nil
	})
	if err != nil {
		logger.Error("Population failed", "error", err)
		return nil, errors.WrapPopulation("failed to populate planetary data", err)
	}

	all, err := s.store.ListAll(ctx)
	if err != nil {
		logger.Error("Failed to read back catalog", "error", err)
		return nil, errors.WrapPopulation("failed to populate planetary data", err)
	}

	report.Total = len(all)
	for _, b := range all {
		report.TotalMoons += b.MoonCount
		if b.HasMoons {
			report.BodiesWithMoons++
		}
		if b.HasRings {
			report.BodiesWithRings++
		}
	}

	logger.Info("Solar system data population complete",
		"created", report.Created,
		"updated", report.Updated,
		"skipped", report.Skipped,
		"total", report.Total,
	)
	return report, nil
}

// SetActive toggles visibility for the named bodies and reports names that matched nothing
func (s *Service) SetActive(ctx context.Context, names []string, active bool) (int64, []string, error) {
	logger := s.logger.With("component", "seed_service", "operation", "set_active", "active", active)

	var missing []string
	for _, name := range names {
		body, err := s.store.FindByName(ctx, name)
		if err != nil {
			return 0, nil, errors.WrapInternal("failed to look up planet", err)
		}
		if body == nil {
			missing = append(missing, name)
		}
	}

	updated, err := s.store.SetActive(ctx, names, active)
	if err != nil {
		logger.Error("Failed to change visibility", "error", err)
		return 0, nil, errors.WrapInternal("failed to change planet visibility", err)
	}

	logger.Info("Planet visibility changed", "updated", updated, "missing", missing)
	return updated, missing, nil
}
