package charts

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"penguincli/internal/analysis"
	"penguincli/pkg/contracts/domain"
)

// speciesCountsChart draws one bar per species. Each species gets its
// own bar chart so the bars keep their palette colors.
func (r *Renderer) speciesCountsChart(summary *analysis.Summary) (*plot.Plot, error) {
	p := plot.New()
	p.Y.Label.Text = "Penguins"

	species := domain.AllSpecies()
	names := make([]string, len(species))

	for i, sp := range species {
		names[i] = string(sp)

		values := make(plotter.Values, len(species))
		values[i] = float64(summary.SpeciesCounts[sp])

		bars, err := plotter.NewBarChart(values, vg.Points(40))
		if err != nil {
			return nil, err
		}
		bars.Color = speciesColor(sp)
		bars.LineStyle.Width = 0
		p.Add(bars)
	}

	p.NominalX(names...)
	return p, nil
}

// islandCountsChart draws one bar per island.
func (r *Renderer) islandCountsChart(summary *analysis.Summary) (*plot.Plot, error) {
	p := plot.New()
	p.Y.Label.Text = "Penguins"

	islands := domain.AllIslands()
	names := make([]string, len(islands))
	values := make(plotter.Values, len(islands))
	for i, island := range islands {
		names[i] = string(island)
		values[i] = float64(summary.IslandCounts[island])
	}

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return nil, err
	}
	bars.Color = barBlue
	bars.LineStyle.Width = 0

	p.Add(bars)
	p.NominalX(names...)
	return p, nil
}

// sexSpeciesChart draws paired female and male count bars per species,
// using only rows where sex was recorded.
func (r *Renderer) sexSpeciesChart(observations []domain.Observation) (*plot.Plot, error) {
	p := plot.New()
	p.Y.Label.Text = "Penguins"

	species := domain.AllSpecies()
	names := make([]string, len(species))
	for i, sp := range species {
		names[i] = string(sp)
	}

	counts := make(map[domain.Sex]map[domain.Species]int)
	for _, obs := range observations {
		if obs.Sex == nil {
			continue
		}
		if counts[*obs.Sex] == nil {
			counts[*obs.Sex] = make(map[domain.Species]int)
		}
		counts[*obs.Sex][obs.Species]++
	}

	width := vg.Points(18)
	offsets := map[domain.Sex]vg.Length{
		domain.SexFemale: -width / 2,
		domain.SexMale:   width / 2,
	}

	for _, sex := range []domain.Sex{domain.SexFemale, domain.SexMale} {
		values := make(plotter.Values, len(species))
		for i, sp := range species {
			values[i] = float64(counts[sex][sp])
		}

		bars, err := plotter.NewBarChart(values, width)
		if err != nil {
			return nil, err
		}
		bars.Color = sexColor(sex)
		bars.LineStyle.Width = 0
		bars.Offset = offsets[sex]

		p.Add(bars)
		p.Legend.Add(string(sex), bars)
	}

	p.Legend.Top = true
	p.NominalX(names...)
	return p, nil
}
