package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "penguincli/internal/errors"
	"penguincli/pkg/contracts/domain"
)

const testHeader = "species,island,bill_length_mm,bill_depth_mm,flipper_length_mm,body_mass_g,sex,year"

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		validate func(t *testing.T, observations []domain.Observation)
	}{
		{
			name: "fully observed row",
			input: testHeader + "\n" +
				"Adelie,Torgersen,39.1,18.7,181,3750,male,2007\n",
			validate: func(t *testing.T, observations []domain.Observation) {
				require.Len(t, observations, 1)
				obs := observations[0]
				assert.Equal(t, domain.SpeciesAdelie, obs.Species)
				assert.Equal(t, domain.IslandTorgersen, obs.Island)
				require.NotNil(t, obs.BillLengthMM)
				assert.Equal(t, 39.1, *obs.BillLengthMM)
				require.NotNil(t, obs.BillDepthMM)
				assert.Equal(t, 18.7, *obs.BillDepthMM)
				require.NotNil(t, obs.FlipperLengthMM)
				assert.Equal(t, 181.0, *obs.FlipperLengthMM)
				require.NotNil(t, obs.BodyMassG)
				assert.Equal(t, 3750.0, *obs.BodyMassG)
				require.NotNil(t, obs.Sex)
				assert.Equal(t, domain.SexMale, *obs.Sex)
				assert.Equal(t, 2007, obs.Year)
				assert.True(t, obs.IsComplete())
			},
		},
		{
			name: "NA measurements become nil",
			input: testHeader + "\n" +
				"Adelie,Torgersen,NA,NA,NA,NA,NA,2007\n",
			validate: func(t *testing.T, observations []domain.Observation) {
				require.Len(t, observations, 1)
				obs := observations[0]
				assert.Nil(t, obs.BillLengthMM)
				assert.Nil(t, obs.BillDepthMM)
				assert.Nil(t, obs.FlipperLengthMM)
				assert.Nil(t, obs.BodyMassG)
				assert.Nil(t, obs.Sex)
				assert.False(t, obs.IsComplete())
			},
		},
		{
			name: "empty cells become nil",
			input: testHeader + "\n" +
				"Gentoo,Biscoe,46.1,13.2,211,,,2007\n",
			validate: func(t *testing.T, observations []domain.Observation) {
				require.Len(t, observations, 1)
				obs := observations[0]
				require.NotNil(t, obs.BillLengthMM)
				assert.Nil(t, obs.BodyMassG)
				assert.Nil(t, obs.Sex)
				assert.False(t, obs.IsComplete())
			},
		},
		{
			name: "sex is case insensitive",
			input: testHeader + "\n" +
				"Chinstrap,Dream,46.5,17.9,192,3500,FEMALE,2008\n",
			validate: func(t *testing.T, observations []domain.Observation) {
				require.Len(t, observations, 1)
				require.NotNil(t, observations[0].Sex)
				assert.Equal(t, domain.SexFemale, *observations[0].Sex)
			},
		},
		{
			name: "columns may appear in any order",
			input: "year,sex,body_mass_g,flipper_length_mm,bill_depth_mm,bill_length_mm,island,species\n" +
				"2009,female,5200,222,14.2,47.4,Biscoe,Gentoo\n",
			validate: func(t *testing.T, observations []domain.Observation) {
				require.Len(t, observations, 1)
				obs := observations[0]
				assert.Equal(t, domain.SpeciesGentoo, obs.Species)
				assert.Equal(t, domain.IslandBiscoe, obs.Island)
				require.NotNil(t, obs.BodyMassG)
				assert.Equal(t, 5200.0, *obs.BodyMassG)
				assert.Equal(t, 2009, obs.Year)
			},
		},
		{
			name: "extra columns are ignored",
			input: testHeader + ",study_name\n" +
				"Adelie,Dream,36.4,17.0,195,3325,female,2008,PAL0708\n",
			validate: func(t *testing.T, observations []domain.Observation) {
				require.Len(t, observations, 1)
				assert.Equal(t, domain.IslandDream, observations[0].Island)
				assert.True(t, observations[0].IsComplete())
			},
		},
		{
			name: "surrounding whitespace is trimmed",
			input: testHeader + "\n" +
				"Adelie, Torgersen , 39.1 ,18.7,181,3750, male ,2007\n",
			validate: func(t *testing.T, observations []domain.Observation) {
				require.Len(t, observations, 1)
				obs := observations[0]
				assert.Equal(t, domain.IslandTorgersen, obs.Island)
				require.NotNil(t, obs.BillLengthMM)
				assert.Equal(t, 39.1, *obs.BillLengthMM)
				require.NotNil(t, obs.Sex)
				assert.Equal(t, domain.SexMale, *obs.Sex)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			observations, err := Load(strings.NewReader(tt.input))
			require.NoError(t, err)
			tt.validate(t, observations)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantType    apperrors.ErrorType
		wantMessage string
	}{
		{
			name: "unknown species",
			input: testHeader + "\n" +
				"Emperor,Torgersen,39.1,18.7,181,3750,male,2007\n",
			wantType:    apperrors.ErrTypeParsing,
			wantMessage: `row 2: invalid species value "Emperor"`,
		},
		{
			name: "unknown island",
			input: testHeader + "\n" +
				"Adelie,Atlantis,39.1,18.7,181,3750,male,2007\n",
			wantType:    apperrors.ErrTypeParsing,
			wantMessage: `row 2: invalid island value "Atlantis"`,
		},
		{
			name: "malformed year",
			input: testHeader + "\n" +
				"Adelie,Torgersen,39.1,18.7,181,3750,male,two thousand seven\n",
			wantType:    apperrors.ErrTypeParsing,
			wantMessage: `row 2: invalid year value "two thousand seven"`,
		},
		{
			name: "malformed measurement reports its row",
			input: testHeader + "\n" +
				"Adelie,Torgersen,39.1,18.7,181,3750,male,2007\n" +
				"Adelie,Torgersen,not-a-number,17.4,186,3800,female,2007\n",
			wantType:    apperrors.ErrTypeParsing,
			wantMessage: `row 3: invalid bill_length_mm value "not-a-number"`,
		},
		{
			name: "unknown sex marker",
			input: testHeader + "\n" +
				"Adelie,Torgersen,39.1,18.7,181,3750,unknown,2007\n",
			wantType:    apperrors.ErrTypeParsing,
			wantMessage: `row 2: invalid sex value "unknown"`,
		},
		{
			name: "year outside the study window",
			input: testHeader + "\n" +
				"Adelie,Torgersen,39.1,18.7,181,3750,male,2014\n",
			wantType:    apperrors.ErrTypeParsing,
			wantMessage: "row 2: observation failed validation",
		},
		{
			name: "negative measurement",
			input: testHeader + "\n" +
				"Adelie,Torgersen,-39.1,18.7,181,3750,male,2007\n",
			wantType:    apperrors.ErrTypeParsing,
			wantMessage: "row 2: observation failed validation",
		},
		{
			name:        "missing required column",
			input:       "species,island,bill_length_mm,bill_depth_mm,flipper_length_mm,sex,year\nAdelie,Torgersen,39.1,18.7,181,male,2007\n",
			wantType:    apperrors.ErrTypeValidation,
			wantMessage: "missing required column: body_mass_g",
		},
		{
			name:        "header without data rows",
			input:       testHeader + "\n",
			wantType:    apperrors.ErrTypeValidation,
			wantMessage: "dataset contains no data rows",
		},
		{
			name:        "empty input",
			input:       "",
			wantType:    apperrors.ErrTypeParsing,
			wantMessage: "read header",
		},
		{
			name: "short row",
			input: testHeader + "\n" +
				"Adelie,Torgersen,39.1\n",
			wantType:    apperrors.ErrTypeParsing,
			wantMessage: "read row 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			observations, err := Load(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Nil(t, observations)

			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantType, appErr.Type)
			assert.Contains(t, err.Error(), tt.wantMessage)
		})
	}
}

func TestParseErrorContext(t *testing.T) {
	input := testHeader + "\n" +
		"Adelie,Torgersen,39.1,18.7,181,oops,male,2007\n"

	_, err := Load(strings.NewReader(input))
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 2, appErr.Context["row"])
	assert.Equal(t, "body_mass_g", appErr.Context["column"])
}

func TestLoadFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "survey.csv")

	content := testHeader + "\n" +
		"Adelie,Biscoe,37.8,18.3,174,3400,female,2007\n" +
		"Gentoo,Biscoe,50.0,15.2,218,5700,male,2008\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	observations, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, observations, 2)
	assert.Equal(t, domain.SpeciesGentoo, observations[1].Species)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrTypeStorage, appErr.Type)
}
