package planet

import "math"

const defaultExplorationStatus = "Limited or no direct exploration"

var funFacts = map[string][]string{
	"Mercury": {
		"Has the most extreme temperature variations in the solar system",
		"One day on Mercury lasts about 176 Earth days",
		"Has a very large iron core relative to its size",
	},
	"Venus": {
		"Hottest planet in the solar system due to greenhouse effect",
		"Rotates backwards (retrograde rotation)",
		"Surface pressure is 90 times that of Earth",
	},
	"Earth": {
		"The only known planet with life",
		"71% of surface is covered by water",
		"Has a strong magnetic field that protects from solar radiation",
	},
	"Mars": {
		"Home to the largest volcano in the solar system (Olympus Mons)",
		"Has seasons similar to Earth due to axial tilt",
		"Evidence suggests it once had flowing water",
	},
	"Jupiter": {
		"More massive than all other planets combined",
		"Great Red Spot is a storm larger than Earth",
		"Acts as a 'cosmic vacuum cleaner' protecting inner planets",
	},
	"Saturn": {
		"Less dense than water - it would float!",
		"Ring system spans up to 282,000 km but only ~1 km thick",
		"Has hexagonal storm at its north pole",
	},
	"Uranus": {
		"Rotates on its side with 98° axial tilt",
		"Coldest planetary atmosphere in solar system",
		"Was the first planet discovered with a telescope",
	},
	"Neptune": {
		"Has the strongest winds in the solar system (up to 2,100 km/h)",
		"Takes 165 Earth years to complete one orbit",
		"Its largest moon Triton orbits backwards",
	},
	"Pluto": {
		"Reclassified as a dwarf planet in 2006",
		"Has a heart-shaped feature on its surface",
		"Its moon Charon is half the size of Pluto itself",
	},
}

var explorationStatus = map[string]string{
	"Mercury": "Visited by Mariner 10 and MESSENGER, BepiColombo mission ongoing",
	"Venus":   "Multiple Soviet Venera missions, Magellan orbiter, current: Akatsuki",
	"Earth":   "Continuously monitored by numerous satellites and space stations",
	"Mars":    "Multiple rovers including Curiosity and Perseverance, many orbiters",
	"Jupiter": "Visited by Pioneer, Voyager, Galileo, Cassini, current: Juno",
	"Saturn":  "Visited by Pioneer, Voyager, Cassini mission (2004-2017)",
	"Uranus":  "Only visited by Voyager 2 in 1986",
	"Neptune": "Only visited by Voyager 2 in 1989",
	"Pluto":   "Visited by New Horizons flyby mission in 2015",
}

// FunFacts never returns nil
func FunFacts(name string) []string {
	facts, ok := funFacts[name]
	if !ok {
		return []string{}
	}
	out := make([]string, len(facts))
	copy(out, facts)
	return out
}

func ExplorationStatus(name string) string {
	if status, ok := explorationStatus[name]; ok {
		return status
	}
	return defaultExplorationStatus
}

// EarthComparison returns body/earth ratios rounded to 2 decimals. A nil earth
// gives an empty map. Ratios with a missing operand or a zero Earth value are left out.
// Day length compares rotation magnitudes so retrograde bodies stay positive.
func EarthComparison(body CelestialBody, earth *CelestialBody) map[string]float64 {
	comparison := map[string]float64{}
	if earth == nil {
		return comparison
	}

	ratio := func(key string, value, reference float64) {
		if reference == 0 {
			return
		}
		comparison[key] = round2(value / reference)
	}

	ratio("size_ratio", body.DiameterKm, earth.DiameterKm)
	if body.MassEarthRelative != nil && earth.MassEarthRelative != nil {
		ratio("mass_ratio", *body.MassEarthRelative, *earth.MassEarthRelative)
	}
	ratio("distance_ratio", body.DistanceFromSunAU, earth.DistanceFromSunAU)
	ratio("year_length_ratio", body.OrbitalPeriodDays, earth.OrbitalPeriodDays)
	ratio("day_length_ratio", math.Abs(body.RotationPeriodHours), math.Abs(earth.RotationPeriodHours))

	return comparison
}
