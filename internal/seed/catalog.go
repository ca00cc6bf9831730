package seed

import "solar-system-server/internal/planet"

// ProseOptions selects which optional paragraphs are appended to a body's composition
type ProseOptions struct {
	IncludeMoons bool
	IncludeRings bool
}

type prose struct {
	base  string
	moons string
	rings string
}

func (p prose) render(opts ProseOptions) string {
	text := p.base
	if opts.IncludeMoons && p.moons != "" {
		text += " " + p.moons
	}
	if opts.IncludeRings && p.rings != "" {
		text += " " + p.rings
	}
	return text
}

var compositions = map[string]prose{
	"Mercury": {
		base: "Core: Large iron-nickel core (75% of radius, 3,600 km diameter). " +
			"Mantle: Thin silicate mantle (600 km thick). " +
			"Crust: Thin basaltic crust with impact craters and volcanic plains. " +
			"Surface features: Caloris Basin (1,550 km crater), lobate scarps, polar ice deposits in permanently shadowed craters.",
		moons: "Moon system: None (no natural satellites due to proximity to Sun and solar tidal forces).",
	},
	"Venus": {
		base: "Core: Iron-nickel core (~3,200 km radius). " +
			"Mantle: Silicate rock mantle with possible partial melting. " +
			"Crust: Basaltic crust with extensive volcanic features. " +
			"Surface: 90% basaltic volcanic plains, shield volcanoes, impact craters. " +
			"Notable features: Maxwell Montes (11 km high), Ishtar Terra, Aphrodite Terra.",
		moons: "Moon system: None (no natural satellites, possibly due to retrograde rotation and solar tidal effects).",
	},
	"Earth": {
		base: "Core: Inner solid iron-nickel core (1,220 km radius), outer liquid core (2,260 km thick). " +
			"Mantle: Silicate rock mantle (2,900 km thick) with convection currents driving plate tectonics. " +
			"Crust: Continental crust (30-50 km thick) and oceanic crust (5-10 km thick). " +
			"Surface: 71% water oceans, 29% continents. Active geology with 7 major tectonic plates.",
		moons: "Moon system: The Moon (Luna) - diameter 3,474 km, distance 384,400 km. " +
			"Formed ~4.5 billion years ago from giant impact. Synchronously locked, causes tides. " +
			"Composition: Iron core, silicate mantle, anorthosite highland crust, basaltic maria.",
	},
	"Mars": {
		base: "Core: Iron-nickel-sulfur core (~1,700 km radius), partially liquid. " +
			"Mantle: Silicate rock mantle with lower density than Earth. " +
			"Crust: Basaltic crust (50 km thick in south, 35 km in north). " +
			"Surface: Iron oxide (rust) gives red color. Olympus Mons (21 km high), Valles Marineris canyon system, polar ice caps.",
		moons: "Moon system: Phobos (27×22×18 km, orbital period 7.6 hours, distance 9,376 km) - " +
			"irregular shape, possibly captured asteroid, cratered surface, gradually spiraling inward. " +
			"Deimos (15×12×11 km, orbital period 30.3 hours, distance 23,463 km) - " +
			"smaller, more distant, smoother surface, may eventually escape Mars orbit.",
	},
	"Jupiter": {
		base: "Core: Rocky/metallic core (~20,000 km diameter, 7-25 Earth masses). " +
			"Interior: Metallic hydrogen layer, liquid hydrogen layer. " +
			"Atmosphere: Thick gaseous envelope with complex storm systems. " +
			"Great Red Spot: Anticyclonic storm 16,000 km wide, active for 350+ years. " +
			"Zones and belts: Alternating bands of clouds at different altitudes.",
		moons: "Major moons: Io (volcanic, 400+ active volcanoes, sulfur compounds), " +
			"Europa (subsurface ocean beneath ice crust, potential for life), " +
			"Ganymede (largest moon in solar system, own magnetic field, ice/rock), " +
			"Callisto (heavily cratered, ice/rock, possible subsurface ocean). " +
			"95 total moons including irregular captured asteroids in outer orbits.",
		rings: "Ring system: Faint rings discovered 1979 by Voyager 1. " +
			"Main ring (129,000-182,000 km from center), gossamer rings extending to 1,000,000 km. " +
			"Composed of dust particles from moon impacts and volcanic activity on Io.",
	},
	"Saturn": {
		base: "Core: Rock/ice core (~25,000 km diameter, 9-22 Earth masses). " +
			"Interior: Metallic hydrogen, liquid hydrogen layers. " +
			"Atmosphere: Less dense than water (0.687 g/cm³), extensive storm systems. " +
			"Hexagonal storm: Unique hexagonal jet stream at north pole, 30,000 km across. " +
			"Equatorial jet: Winds up to 1,800 km/h.",
		moons: "Major moons: Titan (larger than Mercury, thick nitrogen atmosphere, methane lakes, " +
			"organic chemistry, potential for prebiotic conditions), " +
			"Enceladus (ice geysers from south pole, subsurface ocean, potential for life), " +
			"Mimas (Death Star appearance due to Herschel crater), " +
			"Iapetus (two-tone coloration, equatorial ridge). " +
			"146 total confirmed moons with complex orbital resonances.",
		rings: "Ring system: Most extensive and visible rings in solar system. " +
			"Main rings A, B, C spanning 7,000-80,000 km above cloud tops. " +
			"Composed 99% water ice particles from cm to 10m diameter. " +
			"Gaps: Cassini Division (4,700 km gap), Encke Gap. " +
			"Shepherd moons maintain ring structure through gravitational resonances.",
	},
	"Uranus": {
		base: "Core: Rock/ice core (~17% of planet mass, 0.55 Earth masses). " +
			"Mantle: Water, methane, ammonia ices (83% of planet mass). " +
			"Atmosphere: Hydrogen, helium, methane (gives blue-green color). " +
			"Unique rotation: 97.77° axial tilt causes extreme seasonal variations (42-year seasons). " +
			"Magnetic field: Tilted 59° from rotational axis, suggests unusual interior structure.",
		moons: "Major moons: Miranda (extreme geological features, 20 km cliffs), " +
			"Ariel (youngest surface, extensive rift valleys), " +
			"Umbriel (darkest moon, ancient cratered surface), " +
			"Titania (largest moon, impact craters and canyons), " +
			"Oberon (heavily cratered, possible subsurface ocean). " +
			"28 known moons, mostly named after Shakespeare characters.",
		rings: "Ring system: 13 known rings discovered 1977. " +
			"Inner rings: narrow, dark, composed of larger particles. " +
			"Outer rings: broader, brighter. " +
			"Epsilon ring: densest and brightest, shepherded by Cordelia and Ophelia moons.",
	},
	"Neptune": {
		base: "Core: Rock/ice core (~1 Earth mass). " +
			"Mantle: Water, methane, ammonia ices mixed with rock. " +
			"Atmosphere: Hydrogen, helium, methane, hydrogen sulfide. " +
			"Weather: Most dynamic weather in solar system, winds up to 2,100 km/h. " +
			"Great Dark Spot: Large anticyclonic storm system (observed by Voyager 2, since dissipated). " +
			"Internal heat: Radiates 2.6 times more energy than receives from Sun.",
		moons: "Major moon: Triton (2,707 km diameter, retrograde orbit suggests captured Kuiper Belt object, " +
			"nitrogen geysers, thin atmosphere, surface temperature -235°C, largest moon orbiting backwards). " +
			"Minor moons: Nereid (highly eccentric orbit), Proteus (irregularly shaped), " +
			"plus 13 other small irregular moons discovered by ground-based and Hubble observations.",
		rings: "Ring system: 5 main rings named after astronomers (Galle, Le Verrier, Lassell, Arago, Adams). " +
			"Adams ring: has bright arcs (Liberty, Equality, Fraternity, Courage) maintained by Galatea moon. " +
			"Composed of organic compounds, appear reddish in color.",
	},
	"Pluto": {
		base: "Core: Rocky core (~1,700 km diameter, 50-85% of total mass). " +
			"Mantle: Water ice mantle possibly containing subsurface ocean. " +
			"Surface: Nitrogen, methane, carbon monoxide ices. Complex geology with plains, mountains, possible cryovolcanoes. " +
			"Heart feature: Tombaugh Regio - large bright nitrogen plain. " +
			"Atmosphere: Thin, extends 1,600 km above surface, haze layers.",
		moons: "Moon system: Charon (1,212 km diameter, largest relative to primary planet, " +
			"mutual tidal locking creates double planet system, reddish north pole possibly from captured atmosphere), " +
			"Nix (50×35×33 km, high albedo, chaotic rotation), " +
			"Hydra (65×45×25 km, crystalline water ice surface), " +
			"Styx (16×9×8 km, darkest moon), " +
			"Kerberos (19×10×9 km, double-lobed shape). All moons likely formed from giant impact.",
	},
	planet.SunName: {
		base: "Hydrogen (73.46%), Helium (24.85%), Oxygen (0.77%), Carbon (0.29%), Iron (0.16%), " +
			"Neon (0.12%), Nitrogen (0.09%), Silicon (0.07%), Magnesium (0.05%), Sulfur (0.04%)",
	},
}

// Catalog returns the canonical bodies, planets first and the Sun last.
// Every call returns fresh values.
func Catalog(opts ProseOptions) []planet.CelestialBody {
	bodies := []planet.CelestialBody{
		{
			Name:                "Mercury",
			DisplayOrder:        1,
			PlanetType:          planet.PlanetTypeTerrestrial,
			DistanceFromSunAU:   0.387,
			DiameterKm:          4879,
			MassEarthRelative:   planet.Mass(0.055),
			OrbitalPeriodDays:   87.97,
			OrbitalEccentricity: 0.206,
			RotationPeriodHours: 1407.6,
			AxialTiltDegrees:    0.034,
			Atmosphere:          "Exosphere: Oxygen (42%), Sodium (29%), Hydrogen (22%), Helium (6%), Potassium (0.5%). Extremely thin, produced by solar wind and micrometeorite impacts.",
			ColorHex:            "#8C7853",
			TextureFilename:     "mercury_texture.jpg",
			Albedo:              0.088,
		},
		{
			Name:                "Venus",
			DisplayOrder:        2,
			PlanetType:          planet.PlanetTypeTerrestrial,
			DistanceFromSunAU:   0.723,
			DiameterKm:          12104,
			MassEarthRelative:   planet.Mass(0.815),
			OrbitalPeriodDays:   224.7,
			OrbitalEccentricity: 0.007,
			RotationPeriodHours: -5832.5,
			AxialTiltDegrees:    177.4,
			Atmosphere:          "Dense atmosphere: CO₂ (96.5%), N₂ (3.5%), SO₂ (0.015%), H₂O (0.002%). Surface pressure 92 times Earth. Extreme greenhouse effect with surface temperatures reaching 462°C.",
			ColorHex:            "#FC649F",
			TextureFilename:     "venus_texture.jpg",
			Albedo:              0.689,
		},
		{
			Name:                "Earth",
			DisplayOrder:        3,
			PlanetType:          planet.PlanetTypeTerrestrial,
			DistanceFromSunAU:   1.0,
			DiameterKm:          12756,
			MassEarthRelative:   planet.Mass(1.0),
			OrbitalPeriodDays:   365.25,
			OrbitalEccentricity: 0.017,
			RotationPeriodHours: 23.93,
			AxialTiltDegrees:    23.44,
			Atmosphere:          "N₂ (78.08%), O₂ (20.95%), Ar (0.93%), CO₂ (0.04%), plus water vapor, neon, helium, methane, krypton, hydrogen. Only known planet with life-supporting atmosphere.",
			ColorHex:            "#4F94CD",
			TextureFilename:     "earth_texture.jpg",
			Albedo:              0.367,
			HasMoons:            true,
			MoonCount:           1,
		},
		{
			Name:                "Mars",
			DisplayOrder:        4,
			PlanetType:          planet.PlanetTypeTerrestrial,
			DistanceFromSunAU:   1.524,
			DiameterKm:          6792,
			MassEarthRelative:   planet.Mass(0.107),
			OrbitalPeriodDays:   686.98,
			OrbitalEccentricity: 0.094,
			RotationPeriodHours: 24.62,
			AxialTiltDegrees:    25.19,
			Atmosphere:          "Thin atmosphere: CO₂ (95.32%), N₂ (2.7%), Ar (1.6%), O₂ (0.13%), CO (0.08%), H₂O (0.03%). Surface pressure <1% of Earth. Dust storms can cover entire planet.",
			ColorHex:            "#CD5C5C",
			TextureFilename:     "mars_texture.jpg",
			Albedo:              0.170,
			HasMoons:            true,
			MoonCount:           2,
		},
		{
			Name:                "Jupiter",
			DisplayOrder:        5,
			PlanetType:          planet.PlanetTypeGasGiant,
			DistanceFromSunAU:   5.204,
			DiameterKm:          142984,
			MassEarthRelative:   planet.Mass(317.8),
			OrbitalPeriodDays:   4332.59,
			OrbitalEccentricity: 0.049,
			RotationPeriodHours: 9.93,
			AxialTiltDegrees:    3.13,
			Atmosphere:          "H₂ (89.8%), He (10.2%), CH₄ (0.3%), NH₃ (0.026%), HD (0.003%), C₂H₆ (0.0006%). Dynamic weather systems including Great Red Spot storm lasting 350+ years.",
			ColorHex:            "#D2691E",
			TextureFilename:     "jupiter_texture.jpg",
			Albedo:              0.538,
			HasRings:            true,
			HasMoons:            true,
			MoonCount:           95,
		},
		{
			Name:                "Saturn",
			DisplayOrder:        6,
			PlanetType:          planet.PlanetTypeGasGiant,
			DistanceFromSunAU:   9.537,
			DiameterKm:          120536,
			MassEarthRelative:   planet.Mass(95.2),
			OrbitalPeriodDays:   10759.22,
			OrbitalEccentricity: 0.057,
			RotationPeriodHours: 10.66,
			AxialTiltDegrees:    26.73,
			Atmosphere:          "H₂ (96.3%), He (3.25%), CH₄ (0.45%), NH₃ (0.0125%), HD (0.011%), C₂H₆ (0.0007%). Prominent hexagonal storm at north pole.",
			ColorHex:            "#FAD5A5",
			TextureFilename:     "saturn_texture.jpg",
			Albedo:              0.499,
			HasRings:            true,
			HasMoons:            true,
			MoonCount:           146,
		},
		{
			Name:                "Uranus",
			DisplayOrder:        7,
			PlanetType:          planet.PlanetTypeIceGiant,
			DistanceFromSunAU:   19.191,
			DiameterKm:          51118,
			MassEarthRelative:   planet.Mass(14.5),
			OrbitalPeriodDays:   30688.5,
			OrbitalEccentricity: 0.046,
			RotationPeriodHours: -17.24,
			AxialTiltDegrees:    97.77,
			Atmosphere:          "H₂ (82.5%), He (15.2%), CH₄ (2.3%). Methane gives blue-green color. Coldest planetary atmosphere in solar system.",
			ColorHex:            "#4FD0FF",
			TextureFilename:     "uranus_texture.jpg",
			Albedo:              0.488,
			HasRings:            true,
			HasMoons:            true,
			MoonCount:           28,
		},
		{
			Name:                "Neptune",
			DisplayOrder:        8,
			PlanetType:          planet.PlanetTypeIceGiant,
			DistanceFromSunAU:   30.069,
			DiameterKm:          49528,
			MassEarthRelative:   planet.Mass(17.1),
			OrbitalPeriodDays:   60182,
			OrbitalEccentricity: 0.010,
			RotationPeriodHours: 16.11,
			AxialTiltDegrees:    28.32,
			Atmosphere:          "H₂ (80%), He (19%), CH₄ (1%), H₂S, NH₃ traces. Strongest winds in solar system reaching 2,100 km/h. Deep blue color from methane.",
			ColorHex:            "#4169E1",
			TextureFilename:     "neptune_texture.jpg",
			Albedo:              0.442,
			HasRings:            true,
			HasMoons:            true,
			MoonCount:           16,
		},
		{
			Name:                "Pluto",
			DisplayOrder:        9,
			PlanetType:          planet.PlanetTypeDwarf,
			DistanceFromSunAU:   39.482,
			DiameterKm:          2376,
			MassEarthRelative:   planet.Mass(0.00218),
			OrbitalPeriodDays:   90560,
			OrbitalEccentricity: 0.244,
			RotationPeriodHours: -153.3,
			AxialTiltDegrees:    119.6,
			Atmosphere:          "Thin atmosphere: N₂ (dominant), CH₄, CO. Seasonal variations as Pluto approaches/recedes from Sun. Atmospheric escape rate ~500 tons/hour.",
			ColorHex:            "#EEE8AA",
			TextureFilename:     "pluto_texture.jpg",
			Albedo:              0.49,
			IsDwarfPlanet:       true,
			HasMoons:            true,
			MoonCount:           5,
		},
		{
			// The Sun does not orbit and emits rather than reflects light
			Name:                planet.SunName,
			DisplayOrder:        0,
			PlanetType:          planet.PlanetTypeTerrestrial,
			DistanceFromSunAU:   0.0,
			DiameterKm:          1392700,
			MassEarthRelative:   planet.Mass(333000),
			OrbitalPeriodDays:   0,
			OrbitalEccentricity: 0.0,
			RotationPeriodHours: 609.12,
			AxialTiltDegrees:    7.25,
			Atmosphere:          "Corona: extremely hot ionized gas reaching 2 million°C. Photosphere: visible surface at 5,778K. Chromosphere: lower atmosphere extending 2,000km above photosphere.",
			ColorHex:            "#FDB813",
			TextureFilename:     "sun_texture.jpg",
			Albedo:              0.0,
		},
	}

	for i := range bodies {
		bodies[i].Composition = compositions[bodies[i].Name].render(opts)
		bodies[i].IsActive = true
	}
	return bodies
}
