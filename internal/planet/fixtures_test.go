package planet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func sunFixture() CelestialBody {
	return CelestialBody{
		Name: SunName, DisplayOrder: 0, PlanetType: PlanetTypeTerrestrial,
		DistanceFromSunAU: 0.0, DiameterKm: 1392700, MassEarthRelative: Mass(333000),
		OrbitalPeriodDays: 0, RotationPeriodHours: 609.12, AxialTiltDegrees: 7.25,
		ColorHex: "#FDB813", TextureFilename: "sun.jpg", IsActive: true,
	}
}

func earthFixture() CelestialBody {
	return CelestialBody{
		Name: EarthName, DisplayOrder: 3, PlanetType: PlanetTypeTerrestrial,
		DistanceFromSunAU: 1.0, DiameterKm: 12756, MassEarthRelative: Mass(1.0),
		OrbitalPeriodDays: 365.25, OrbitalEccentricity: 0.017, RotationPeriodHours: 23.93,
		AxialTiltDegrees: 23.44, ColorHex: "#6B93D6", TextureFilename: "earth.jpg",
		Albedo: 0.367, HasMoons: true, MoonCount: 1, IsActive: true,
	}
}

func venusFixture() CelestialBody {
	return CelestialBody{
		Name: "Venus", DisplayOrder: 2, PlanetType: PlanetTypeTerrestrial,
		DistanceFromSunAU: 0.72, DiameterKm: 12104, MassEarthRelative: Mass(0.815),
		OrbitalPeriodDays: 224.7, OrbitalEccentricity: 0.007, RotationPeriodHours: -5832.5,
		AxialTiltDegrees: 177.36, ColorHex: "#FFC649", TextureFilename: "venus.jpg",
		Albedo: 0.689, IsActive: true,
	}
}

func jupiterFixture() CelestialBody {
	return CelestialBody{
		Name: "Jupiter", DisplayOrder: 5, PlanetType: PlanetTypeGasGiant,
		DistanceFromSunAU: 5.2, DiameterKm: 142984, MassEarthRelative: Mass(317.8),
		OrbitalPeriodDays: 4332.59, OrbitalEccentricity: 0.049, RotationPeriodHours: 9.93,
		AxialTiltDegrees: 3.13, ColorHex: "#D8CA9D", TextureFilename: "jupiter.jpg",
		Albedo: 0.538, HasRings: true, HasMoons: true, MoonCount: 95, IsActive: true,
	}
}

func plutoFixture() CelestialBody {
	return CelestialBody{
		Name: "Pluto", DisplayOrder: 9, PlanetType: PlanetTypeDwarf,
		DistanceFromSunAU: 39.48, DiameterKm: 2376, MassEarthRelative: Mass(0.00218),
		OrbitalPeriodDays: 90560, OrbitalEccentricity: 0.244, RotationPeriodHours: -153.3,
		AxialTiltDegrees: 122.53, ColorHex: "#FFF1D5", TextureFilename: "pluto.jpg",
		Albedo: 0.72, IsDwarfPlanet: true, HasMoons: true, MoonCount: 5, IsActive: true,
	}
}

func seededStore(t *testing.T, bodies ...CelestialBody) *MemoryStore {
	t.Helper()
	store := NewMemoryStore()
	for i := range bodies {
		require.NoError(t, store.Create(context.Background(), &bodies[i]))
	}
	return store
}
