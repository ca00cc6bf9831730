package seed

import (
	"context"
	"fmt"
	"io"
	"strings"

	"solar-system-server/internal/planet"
	"solar-system-server/internal/shared/errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type Record struct {
	Name  string
	Value float64
}

// Summary describes the catalog for operators. Everything except MostMoons
// leaves the Sun out.
type Summary struct {
	Counts         planet.TypeCounts
	ByType         map[planet.PlanetType][]planet.CelestialBody
	DwarfPlanets   []planet.CelestialBody
	Distances      []Record
	Largest        Record
	Smallest       Record
	MostMoons      Record
	MeanDiameterKm float64
	TotalMoons     int
	Ringed         []string
}

func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	bodies, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, errors.WrapInternal("failed to load planets for summary", err)
	}
	return Summarize(bodies), nil
}

func Summarize(bodies []planet.CelestialBody) *Summary {
	summary := &Summary{ByType: map[planet.PlanetType][]planet.CelestialBody{}}

	var (
		names     []string
		diameters []float64
		distances []float64
		moons     []float64
	)

	for _, b := range bodies {
		summary.TotalMoons += b.MoonCount
		moons = append(moons, float64(b.MoonCount))
		if b.HasRings {
			summary.Ringed = append(summary.Ringed, b.Name)
		}
		if b.IsSun() {
			continue
		}

		summary.ByType[b.PlanetType] = append(summary.ByType[b.PlanetType], b)
		switch b.PlanetType {
		case planet.PlanetTypeTerrestrial:
			summary.Counts.Terrestrial++
		case planet.PlanetTypeGasGiant:
			summary.Counts.GasGiants++
		case planet.PlanetTypeIceGiant:
			summary.Counts.IceGiants++
		}
		if b.IsDwarfPlanet {
			summary.Counts.DwarfPlanets++
			summary.DwarfPlanets = append(summary.DwarfPlanets, b)
		}

		names = append(names, b.Name)
		diameters = append(diameters, b.DiameterKm)
		distances = append(distances, b.DistanceFromSunAU)
	}

	if len(moons) > 0 {
		i := floats.MaxIdx(moons)
		summary.MostMoons = Record{Name: bodies[i].Name, Value: moons[i]}
	}

	if len(diameters) == 0 {
		return summary
	}

	largest := floats.MaxIdx(diameters)
	smallest := floats.MinIdx(diameters)
	summary.Largest = Record{Name: names[largest], Value: diameters[largest]}
	summary.Smallest = Record{Name: names[smallest], Value: diameters[smallest]}
	summary.MeanDiameterKm = stat.Mean(diameters, nil)

	order := make([]int, len(distances))
	floats.Argsort(distances, order)
	for i, idx := range order {
		summary.Distances = append(summary.Distances, Record{Name: names[idx], Value: distances[i]})
	}

	return summary
}

// Print writes the summary in the operator report layout
func (s *Summary) Print(w io.Writer) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(w, "\nDetailed Solar System Summary:")
	fmt.Fprintln(w, rule)

	fmt.Fprintf(w, "Terrestrial planets: %d\n", s.Counts.Terrestrial)
	for _, b := range s.ByType[planet.PlanetTypeTerrestrial] {
		fmt.Fprintf(w, "   - %s (%.0f km diameter)\n", b.Name, b.DiameterKm)
	}
	fmt.Fprintf(w, "Gas giants: %d\n", s.Counts.GasGiants)
	for _, b := range s.ByType[planet.PlanetTypeGasGiant] {
		fmt.Fprintf(w, "   - %s (%d moons, %s)\n", b.Name, b.MoonCount, ringLabel(b.HasRings))
	}
	fmt.Fprintf(w, "Ice giants: %d\n", s.Counts.IceGiants)
	for _, b := range s.ByType[planet.PlanetTypeIceGiant] {
		fmt.Fprintf(w, "   - %s (%d moons, %s)\n", b.Name, b.MoonCount, ringLabel(b.HasRings))
	}
	fmt.Fprintf(w, "Dwarf planets: %d\n", s.Counts.DwarfPlanets)
	for _, b := range s.DwarfPlanets {
		fmt.Fprintf(w, "   - %s (%d moons)\n", b.Name, b.MoonCount)
	}

	fmt.Fprintln(w, "\nOrbital distances (AU):")
	for _, d := range s.Distances {
		fmt.Fprintf(w, "   - %s: %.3f AU\n", d.Name, d.Value)
	}

	fmt.Fprintln(w, "\nRecords:")
	fmt.Fprintf(w, "   - Largest planet: %s (%.0f km)\n", s.Largest.Name, s.Largest.Value)
	fmt.Fprintf(w, "   - Smallest planet: %s (%.0f km)\n", s.Smallest.Name, s.Smallest.Value)
	fmt.Fprintf(w, "   - Most moons: %s (%.0f moons)\n", s.MostMoons.Name, s.MostMoons.Value)
	fmt.Fprintf(w, "   - Mean planet diameter: %.0f km\n", s.MeanDiameterKm)

	fmt.Fprintf(w, "\nMoon systems: %d total known moons\n", s.TotalMoons)
	fmt.Fprintf(w, "Ring systems: %d planets with rings\n", len(s.Ringed))
	for _, name := range s.Ringed {
		fmt.Fprintf(w, "   - %s\n", name)
	}
}

func ringLabel(hasRings bool) string {
	if hasRings {
		return "rings"
	}
	return "no rings"
}
