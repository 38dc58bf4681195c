package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "penguincli/internal/errors"
	"penguincli/pkg/contracts/domain"
)

// validate enforces the observation struct tags (positive measurements,
// study years) on every parsed row.
var validate = validator.New()

// Column names expected in the survey CSV header.
const (
	colSpecies       = "species"
	colIsland        = "island"
	colBillLength    = "bill_length_mm"
	colBillDepth     = "bill_depth_mm"
	colFlipperLength = "flipper_length_mm"
	colBodyMass      = "body_mass_g"
	colSex           = "sex"
	colYear          = "year"
)

// requiredColumns lists every column the loader must find in the header.
var requiredColumns = []string{
	colSpecies, colIsland,
	colBillLength, colBillDepth, colFlipperLength, colBodyMass,
	colSex, colYear,
}

// LoadFile reads penguin observations from a CSV file on disk.
func LoadFile(path string) ([]domain.Observation, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewStorageError(fmt.Sprintf("open dataset file %s", path), err)
	}
	defer file.Close()

	return Load(file)
}

// Load reads penguin observations from r. The first record must be a
// header containing all survey columns; extra columns are ignored.
// The literal NA and the empty string mark missing values.
func Load(r io.Reader) ([]domain.Observation, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, apperrors.NewParsingError("read header", err)
	}

	indices := make(map[string]int, len(header))
	for i, col := range header {
		indices[strings.TrimSpace(col)] = i
	}

	for _, col := range requiredColumns {
		if _, ok := indices[col]; !ok {
			return nil, apperrors.NewValidationError(fmt.Sprintf("missing required column: %s", col))
		}
	}

	var observations []domain.Observation

	// The header is line 1, so data rows start at line 2.
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.NewParsingError(fmt.Sprintf("read row %d", line), err)
		}

		obs, err := parseRecord(record, indices, line)
		if err != nil {
			return nil, err
		}

		observations = append(observations, obs)
	}

	if len(observations) == 0 {
		return nil, apperrors.NewValidationError("dataset contains no data rows")
	}

	return observations, nil
}

// parseRecord converts one CSV record into an observation
func parseRecord(record []string, indices map[string]int, line int) (domain.Observation, error) {
	var obs domain.Observation

	species := domain.Species(field(record, indices, colSpecies))
	if !species.IsValid() {
		return obs, parseError(line, colSpecies, string(species))
	}

	island := domain.Island(field(record, indices, colIsland))
	if !island.IsValid() {
		return obs, parseError(line, colIsland, string(island))
	}

	year, err := strconv.Atoi(field(record, indices, colYear))
	if err != nil {
		return obs, parseError(line, colYear, field(record, indices, colYear))
	}

	obs = domain.Observation{
		Species: species,
		Island:  island,
		Year:    year,
	}

	for _, col := range []string{colBillLength, colBillDepth, colFlipperLength, colBodyMass} {
		raw := field(record, indices, col)
		value, ok, err := parseOptionalFloat(raw)
		if err != nil {
			return obs, parseError(line, col, raw)
		}
		if !ok {
			continue
		}
		switch col {
		case colBillLength:
			obs.BillLengthMM = &value
		case colBillDepth:
			obs.BillDepthMM = &value
		case colFlipperLength:
			obs.FlipperLengthMM = &value
		case colBodyMass:
			obs.BodyMassG = &value
		}
	}

	if raw := field(record, indices, colSex); !isMissing(raw) {
		sex := domain.Sex(strings.ToLower(raw))
		if !sex.IsValid() {
			return obs, parseError(line, colSex, raw)
		}
		obs.Sex = &sex
	}

	if err := validate.Struct(obs); err != nil {
		return obs, apperrors.NewParsingError(
			fmt.Sprintf("row %d: observation failed validation", line), err).
			WithContext("row", line)
	}

	return obs, nil
}

// field returns the named column of the record, or "" when the row is short
func field(record []string, indices map[string]int, col string) string {
	idx := indices[col]
	if idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// parseOptionalFloat parses a nullable numeric cell.
// The second result reports whether a value was present.
func parseOptionalFloat(raw string) (float64, bool, error) {
	if isMissing(raw) {
		return 0, false, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, err
	}
	return value, true, nil
}

// isMissing reports whether a cell holds the dataset's missing-value marker
func isMissing(raw string) bool {
	return raw == "" || raw == "NA"
}

func parseError(line int, column, value string) *apperrors.AppError {
	return apperrors.NewParsingError(
		fmt.Sprintf("row %d: invalid %s value %q", line, column, value), nil).
		WithContext("row", line).
		WithContext("column", column)
}
