package planet

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"solar-system-server/internal/shared/database"
	"solar-system-server/internal/shared/errors"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

const planetColumns = `id, name, display_order, planet_type, distance_from_sun, diameter, mass,
	orbital_period, orbital_eccentricity, rotation_period, axial_tilt, composition, atmosphere,
	color_hex, texture_filename, albedo, is_dwarf_planet, has_rings, has_moons, moon_count,
	is_active, created_at, updated_at`

type Repository struct {
	db     *database.DB
	tx     *database.Tx
	logger *slog.Logger
}

func NewRepository(db *database.DB, logger *slog.Logger) *Repository {
	logger.Debug("Initializing planet repository")

	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) getExecutor() database.Executor {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *Repository) InTx(ctx context.Context, fn func(Store) error) error {
	if r.tx != nil {
		return fn(r)
	}

	return r.db.WithTx(ctx, func(tx *database.Tx) error {
		return fn(&Repository{db: r.db, tx: tx, logger: r.logger})
	})
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBody(row rowScanner) (*CelestialBody, error) {
	var body CelestialBody
	var mass sql.NullFloat64

	err := row.Scan(
		&body.ID,
		&body.Name,
		&body.DisplayOrder,
		&body.PlanetType,
		&body.DistanceFromSunAU,
		&body.DiameterKm,
		&mass,
		&body.OrbitalPeriodDays,
		&body.OrbitalEccentricity,
		&body.RotationPeriodHours,
		&body.AxialTiltDegrees,
		&body.Composition,
		&body.Atmosphere,
		&body.ColorHex,
		&body.TextureFilename,
		&body.Albedo,
		&body.IsDwarfPlanet,
		&body.HasRings,
		&body.HasMoons,
		&body.MoonCount,
		&body.IsActive,
		&body.CreatedAt,
		&body.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if mass.Valid {
		body.MassEarthRelative = Mass(mass.Float64)
	}
	return &body, nil
}

func nullableMass(m *float64) sql.NullFloat64 {
	if m == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *m, Valid: true}
}

func (r *Repository) list(ctx context.Context, operation, where string, args ...interface{}) ([]CelestialBody, error) {
	logger := r.logger.With("component", "planet_repository", "operation", operation)
	logger.Debug("Listing planets")

	query := `SELECT ` + planetColumns + ` FROM planets ` + where + ` ORDER BY display_order`

	rows, err := r.getExecutor().QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error("Failed to query planets", "error", err)
		return nil, fmt.Errorf("failed to query planets: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Error("Failed to close rows", "error", err)
		}
	}()

	bodies := []CelestialBody{}
	for rows.Next() {
		body, err := scanBody(rows)
		if err != nil {
			logger.Error("Failed to scan planet row", "error", err)
			return nil, fmt.Errorf("failed to scan planet: %w", err)
		}
		bodies = append(bodies, *body)
	}

	if err := rows.Err(); err != nil {
		logger.Error("Error during rows iteration", "error", err)
		return nil, fmt.Errorf("error iterating planets: %w", err)
	}

	logger.Debug("Planets retrieved", "count", len(bodies))
	return bodies, nil
}

func (r *Repository) ListActive(ctx context.Context) ([]CelestialBody, error) {
	return r.list(ctx, "list_active", `WHERE is_active = TRUE`)
}

func (r *Repository) ListActiveByType(ctx context.Context, planetType PlanetType) ([]CelestialBody, error) {
	return r.list(ctx, "list_active_by_type", `WHERE is_active = TRUE AND planet_type = $1`, planetType)
}

func (r *Repository) ListActiveDwarfPlanets(ctx context.Context) ([]CelestialBody, error) {
	return r.list(ctx, "list_active_dwarf_planets", `WHERE is_active = TRUE AND is_dwarf_planet = TRUE`)
}

func (r *Repository) ListAll(ctx context.Context) ([]CelestialBody, error) {
	return r.list(ctx, "list_all", ``)
}

func (r *Repository) getOne(ctx context.Context, logger *slog.Logger, where string, arg interface{}) (*CelestialBody, error) {
	query := `SELECT ` + planetColumns + ` FROM planets ` + where

	body, err := scanBody(r.getExecutor().QueryRowContext(ctx, query, arg))
	if err != nil {
		if err == sql.ErrNoRows {
			logger.Debug("No planet found")
			return nil, nil
		}
		logger.Error("Database error getting planet", "error", err)
		return nil, fmt.Errorf("failed to get planet: %w", err)
	}

	return body, nil
}

func (r *Repository) GetActiveByID(ctx context.Context, id int) (*CelestialBody, error) {
	logger := r.logger.With("component", "planet_repository", "operation", "get_active_by_id", "planet_id", id)
	return r.getOne(ctx, logger, `WHERE id = $1 AND is_active = TRUE`, id)
}

func (r *Repository) FindByName(ctx context.Context, name string) (*CelestialBody, error) {
	logger := r.logger.With("component", "planet_repository", "operation", "find_by_name", "name", name)
	return r.getOne(ctx, logger, `WHERE name = $1`, name)
}

func (r *Repository) Create(ctx context.Context, body *CelestialBody) error {
	logger := r.logger.With("component", "planet_repository", "operation", "create", "name", body.Name)
	logger.Debug("Creating planet")

	query := `
		INSERT INTO planets (name, display_order, planet_type, distance_from_sun, diameter, mass,
			orbital_period, orbital_eccentricity, rotation_period, axial_tilt, composition, atmosphere,
			color_hex, texture_filename, albedo, is_dwarf_planet, has_rings, has_moons, moon_count, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING id, created_at, updated_at`

	err := r.getExecutor().QueryRowContext(ctx, query, r.writeArgs(body)...).Scan(
		&body.ID,
		&body.CreatedAt,
		&body.UpdatedAt,
	)
	if err != nil {
		logger.Error("Failed to create planet", "error", err)
		return translateWriteError(err, body, "failed to create planet")
	}

	logger.Debug("Planet created successfully", "planet_id", body.ID)
	return nil
}

func (r *Repository) Update(ctx context.Context, body *CelestialBody) error {
	logger := r.logger.With("component", "planet_repository", "operation", "update", "planet_id", body.ID, "name", body.Name)
	logger.Debug("Updating planet")

	query := `
		UPDATE planets SET
			name = $1, display_order = $2, planet_type = $3, distance_from_sun = $4, diameter = $5,
			mass = $6, orbital_period = $7, orbital_eccentricity = $8, rotation_period = $9,
			axial_tilt = $10, composition = $11, atmosphere = $12, color_hex = $13,
			texture_filename = $14, albedo = $15, is_dwarf_planet = $16, has_rings = $17,
			has_moons = $18, moon_count = $19, is_active = $20, updated_at = NOW()
		WHERE id = $21
		RETURNING created_at, updated_at`

	args := append(r.writeArgs(body), body.ID)
	err := r.getExecutor().QueryRowContext(ctx, query, args...).Scan(&body.CreatedAt, &body.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return errors.NotFoundf("planet %d not found", body.ID)
		}
		logger.Error("Failed to update planet", "error", err)
		return translateWriteError(err, body, "failed to update planet")
	}

	logger.Debug("Planet updated successfully")
	return nil
}

func (r *Repository) writeArgs(body *CelestialBody) []interface{} {
	return []interface{}{
		body.Name,
		body.DisplayOrder,
		body.PlanetType,
		body.DistanceFromSunAU,
		body.DiameterKm,
		nullableMass(body.MassEarthRelative),
		body.OrbitalPeriodDays,
		body.OrbitalEccentricity,
		body.RotationPeriodHours,
		body.AxialTiltDegrees,
		body.Composition,
		body.Atmosphere,
		body.ColorHex,
		body.TextureFilename,
		body.Albedo,
		body.IsDwarfPlanet,
		body.HasRings,
		body.HasMoons,
		body.MoonCount,
		body.IsActive,
	}
}

func translateWriteError(err error, body *CelestialBody, message string) error {
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
		return errors.Conflictf("planet %q or display order %d already exists", body.Name, body.DisplayOrder)
	}
	return fmt.Errorf("%s: %w", message, err)
}

func (r *Repository) DeleteAll(ctx context.Context) (int64, error) {
	logger := r.logger.With("component", "planet_repository", "operation", "delete_all")
	logger.Warn("Deleting all planets")

	result, err := r.getExecutor().ExecContext(ctx, `DELETE FROM planets`)
	if err != nil {
		logger.Error("Failed to delete planets", "error", err)
		return 0, fmt.Errorf("failed to delete planets: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted planets: %w", err)
	}

	logger.Info("Planets deleted", "count", deleted)
	return deleted, nil
}

func (r *Repository) SetActive(ctx context.Context, names []string, active bool) (int64, error) {
	logger := r.logger.With("component", "planet_repository", "operation", "set_active", "names", names, "active", active)
	logger.Debug("Changing planet visibility")

	result, err := r.getExecutor().ExecContext(ctx,
		`UPDATE planets SET is_active = $1, updated_at = NOW() WHERE name = ANY($2)`,
		active, pq.Array(names),
	)
	if err != nil {
		logger.Error("Failed to change planet visibility", "error", err)
		return 0, fmt.Errorf("failed to set planet visibility: %w", err)
	}

	updated, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count updated planets: %w", err)
	}

	logger.Info("Planet visibility changed", "count", updated)
	return updated, nil
}
