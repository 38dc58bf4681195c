package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"penguincli/pkg/contracts/domain"
)

func completeObservation(species domain.Species, mass float64) domain.Observation {
	bill := 40.0
	depth := 18.0
	flipper := 190.0
	sex := domain.SexFemale
	return domain.Observation{
		Species:         species,
		Island:          domain.IslandBiscoe,
		BillLengthMM:    &bill,
		BillDepthMM:     &depth,
		FlipperLengthMM: &flipper,
		BodyMassG:       &mass,
		Sex:             &sex,
		Year:            2008,
	}
}

func TestClean(t *testing.T) {
	missingSex := completeObservation(domain.SpeciesAdelie, 3700)
	missingSex.Sex = nil

	missingMass := completeObservation(domain.SpeciesGentoo, 0)
	missingMass.BodyMassG = nil

	input := []domain.Observation{
		completeObservation(domain.SpeciesAdelie, 3800),
		missingSex,
		completeObservation(domain.SpeciesChinstrap, 3500),
		missingMass,
		completeObservation(domain.SpeciesGentoo, 5100),
	}

	clean, report := Clean(input)

	assert.Equal(t, 5, report.Total)
	assert.Equal(t, 3, report.Kept)
	assert.Equal(t, 2, report.Dropped)
	assert.Equal(t, 1, report.DroppedBySpecies[domain.SpeciesAdelie])
	assert.Equal(t, 1, report.DroppedBySpecies[domain.SpeciesGentoo])
	assert.NotContains(t, report.DroppedBySpecies, domain.SpeciesChinstrap)

	// Row order survives cleaning.
	require.Len(t, clean, 3)
	assert.Equal(t, domain.SpeciesAdelie, clean[0].Species)
	assert.Equal(t, domain.SpeciesChinstrap, clean[1].Species)
	assert.Equal(t, domain.SpeciesGentoo, clean[2].Species)

	// The input slice is left untouched.
	assert.Len(t, input, 5)
	assert.Nil(t, input[1].Sex)
}

func TestCleanIdempotent(t *testing.T) {
	input := []domain.Observation{
		completeObservation(domain.SpeciesAdelie, 3800),
		completeObservation(domain.SpeciesGentoo, 5100),
	}

	clean, report := Clean(input)
	assert.Equal(t, 0, report.Dropped)

	again, report := Clean(clean)
	assert.Equal(t, 0, report.Dropped)
	assert.Equal(t, len(clean), len(again))
	assert.Equal(t, clean, again)
}

func TestCleanEmpty(t *testing.T) {
	clean, report := Clean(nil)

	assert.Empty(t, clean)
	assert.Equal(t, 0, report.Total)
	assert.Equal(t, 0, report.Kept)
	assert.Equal(t, 0, report.Dropped)
}
