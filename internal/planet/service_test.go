package planet

import (
	"context"
	stderrors "errors"
	"testing"

	"solar-system-server/internal/shared/errors"
	"solar-system-server/internal/shared/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct {
	MemoryStore
	err error
}

func (f *failingReader) ListActive(context.Context) ([]CelestialBody, error) {
	return nil, f.err
}

func (f *failingReader) GetActiveByID(context.Context, int) (*CelestialBody, error) {
	return nil, f.err
}

func newTestService(t *testing.T, bodies ...CelestialBody) (*Service, *MemoryStore) {
	store := seededStore(t, bodies...)
	return NewService(store, logger.Discard()), store
}

func TestServiceListActive(t *testing.T) {
	svc, _ := newTestService(t, jupiterFixture(), sunFixture(), earthFixture())

	bodies, err := svc.ListActive(context.Background())

	require.NoError(t, err)
	require.Len(t, bodies, 3)
	assert.Equal(t, []string{"Sun", "Earth", "Jupiter"}, []string{bodies[0].Name, bodies[1].Name, bodies[2].Name})
}

func TestServiceListByType(t *testing.T) {
	svc, _ := newTestService(t, jupiterFixture(), earthFixture(), plutoFixture())

	giants, err := svc.ListByType(context.Background(), "gas_giant")
	require.NoError(t, err)
	require.Len(t, giants, 1)
	assert.Equal(t, "Jupiter", giants[0].Name)

	_, err = svc.ListByType(context.Background(), "hot_jupiter")
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))

	dwarfs, err := svc.ListDwarfPlanets(context.Background())
	require.NoError(t, err)
	require.Len(t, dwarfs, 1)
	assert.Equal(t, "Pluto", dwarfs[0].Name)
}

func TestServiceGetByIDNotFound(t *testing.T) {
	inactive := plutoFixture()
	inactive.IsActive = false
	svc, store := newTestService(t, earthFixture(), inactive)

	_, err := svc.GetByID(context.Background(), 999)
	assert.True(t, errors.IsType(err, errors.ErrorTypeNotFound))
	assert.Equal(t, "Planet not found", err.Error())

	pluto, err := store.FindByName(context.Background(), "Pluto")
	require.NoError(t, err)
	_, err = svc.GetByID(context.Background(), pluto.ID)
	assert.True(t, errors.IsType(err, errors.ErrorTypeNotFound))
}

func TestServiceStorageFailureIsInternal(t *testing.T) {
	svc := NewService(&failingReader{err: stderrors.New("connection refused")}, logger.Discard())

	_, err := svc.ListActive(context.Background())
	assert.True(t, errors.IsType(err, errors.ErrorTypeInternal))

	_, err = svc.GetByID(context.Background(), 1)
	assert.True(t, errors.IsType(err, errors.ErrorTypeInternal))
}

func TestServiceGetDetailForEarth(t *testing.T) {
	svc, store := newTestService(t, sunFixture(), earthFixture())
	earth, err := store.FindByName(context.Background(), EarthName)
	require.NoError(t, err)

	detail, err := svc.GetDetail(context.Background(), earth.ID)

	require.NoError(t, err)
	assert.Equal(t, EarthName, detail.Name)
	assert.Len(t, detail.FunFacts, 3)
	assert.Equal(t, "Continuously monitored by numerous satellites and space stations", detail.ExplorationStatus)
	require.Len(t, detail.ComparisonToEarth, 5)
	for key, ratio := range detail.ComparisonToEarth {
		assert.Equal(t, 1.0, ratio, key)
	}
}

func TestServiceGetDetailRetrogradeAndUnknown(t *testing.T) {
	svc, store := newTestService(t, earthFixture(), venusFixture(), sunFixture())

	venus, err := store.FindByName(context.Background(), "Venus")
	require.NoError(t, err)
	detail, err := svc.GetDetail(context.Background(), venus.ID)
	require.NoError(t, err)
	assert.Equal(t, 243.73, detail.ComparisonToEarth["day_length_ratio"])
	assert.Equal(t, 0.95, detail.ComparisonToEarth["size_ratio"])

	sun, err := store.FindByName(context.Background(), SunName)
	require.NoError(t, err)
	detail, err = svc.GetDetail(context.Background(), sun.ID)
	require.NoError(t, err)
	assert.Empty(t, detail.FunFacts)
	assert.NotNil(t, detail.FunFacts)
	assert.Equal(t, "Limited or no direct exploration", detail.ExplorationStatus)
	assert.Equal(t, 0.0, detail.ComparisonToEarth["distance_ratio"])
}

func TestServiceGetDetailWithoutEarth(t *testing.T) {
	svc, store := newTestService(t, jupiterFixture())
	jupiter, err := store.FindByName(context.Background(), "Jupiter")
	require.NoError(t, err)

	detail, err := svc.GetDetail(context.Background(), jupiter.ID)

	require.NoError(t, err)
	assert.NotNil(t, detail.ComparisonToEarth)
	assert.Empty(t, detail.ComparisonToEarth)
}

func TestEarthComparisonSkipsMissingMass(t *testing.T) {
	earth := earthFixture()
	body := jupiterFixture()
	body.MassEarthRelative = nil

	comparison := EarthComparison(body, &earth)

	assert.NotContains(t, comparison, "mass_ratio")
	assert.Equal(t, 11.21, comparison["size_ratio"])
}

func TestServiceSystemInfo(t *testing.T) {
	inactive := venusFixture()
	inactive.IsActive = false
	svc, _ := newTestService(t, sunFixture(), earthFixture(), jupiterFixture(), plutoFixture(), inactive)

	info, err := svc.SystemInfo(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, info.TotalPlanets)
	assert.Equal(t, 101, info.TotalMoons)
	assert.Equal(t, TypeCounts{Terrestrial: 1, GasGiants: 1, DwarfPlanets: 1}, info.PlanetTypes)
	require.NotNil(t, info.CentralStar)
	assert.Equal(t, SunName, info.CentralStar.Name)
	assert.Equal(t, "4.6 billion years", info.SystemAge)
	assert.Equal(t, "~100,000 AU (including Oort Cloud)", info.SystemDiameter)
	assert.Equal(t, "0.95 to 1.37 AU from Sun", info.HabitableZone)
}

func TestServiceSystemInfoWithoutSun(t *testing.T) {
	svc, _ := newTestService(t, earthFixture())

	info, err := svc.SystemInfo(context.Background())

	require.NoError(t, err)
	assert.Nil(t, info.CentralStar)
	assert.Equal(t, 1, info.TotalPlanets)
}
