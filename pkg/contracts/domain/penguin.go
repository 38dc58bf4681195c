package domain

// Observation represents a single penguin measurement record from the
// Palmer Archipelago field study. Measurement fields and sex are pointers
// because the source data contains missing values.
type Observation struct {
	Species         Species  `json:"species" csv:"species" validate:"required"`
	Island          Island   `json:"island" csv:"island" validate:"required"`
	BillLengthMM    *float64 `json:"bill_length_mm,omitempty" csv:"bill_length_mm" validate:"omitempty,gt=0"`
	BillDepthMM     *float64 `json:"bill_depth_mm,omitempty" csv:"bill_depth_mm" validate:"omitempty,gt=0"`
	FlipperLengthMM *float64 `json:"flipper_length_mm,omitempty" csv:"flipper_length_mm" validate:"omitempty,gt=0"`
	BodyMassG       *float64 `json:"body_mass_g,omitempty" csv:"body_mass_g" validate:"omitempty,gt=0"`
	Sex             *Sex     `json:"sex,omitempty" csv:"sex"`
	Year            int      `json:"year" csv:"year" validate:"required,min=2007,max=2009"`
}

// IsComplete reports whether all four measurements and sex are present.
// Rows failing this check are omitted during cleaning.
func (o Observation) IsComplete() bool {
	return o.BillLengthMM != nil &&
		o.BillDepthMM != nil &&
		o.FlipperLengthMM != nil &&
		o.BodyMassG != nil &&
		o.Sex != nil
}

// Species represents one of the three studied penguin species
type Species string

const (
	SpeciesAdelie    Species = "Adelie"
	SpeciesChinstrap Species = "Chinstrap"
	SpeciesGentoo    Species = "Gentoo"
)

// AllSpecies returns the species in canonical (alphabetical) order
func AllSpecies() []Species {
	return []Species{SpeciesAdelie, SpeciesChinstrap, SpeciesGentoo}
}

// IsValid checks if the species is one of the known values
func (s Species) IsValid() bool {
	switch s {
	case SpeciesAdelie, SpeciesChinstrap, SpeciesGentoo:
		return true
	}
	return false
}

// Island represents an island in the Palmer Archipelago
type Island string

const (
	IslandBiscoe    Island = "Biscoe"
	IslandDream     Island = "Dream"
	IslandTorgersen Island = "Torgersen"
)

// AllIslands returns the islands in canonical (alphabetical) order
func AllIslands() []Island {
	return []Island{IslandBiscoe, IslandDream, IslandTorgersen}
}

// IsValid checks if the island is one of the known values
func (i Island) IsValid() bool {
	switch i {
	case IslandBiscoe, IslandDream, IslandTorgersen:
		return true
	}
	return false
}

// Sex represents the recorded sex of a penguin
type Sex string

const (
	SexFemale Sex = "female"
	SexMale   Sex = "male"
)

// IsValid checks if the sex is one of the known values
func (s Sex) IsValid() bool {
	return s == SexFemale || s == SexMale
}

// MeasurementField identifies one of the four numeric measurement columns.
// It is used by the analysis and chart layers to iterate over measurements
// without repeating per-field code.
type MeasurementField string

const (
	FieldBillLength    MeasurementField = "bill_length_mm"
	FieldBillDepth     MeasurementField = "bill_depth_mm"
	FieldFlipperLength MeasurementField = "flipper_length_mm"
	FieldBodyMass      MeasurementField = "body_mass_g"
)

// AllMeasurementFields returns the measurement fields in column order
func AllMeasurementFields() []MeasurementField {
	return []MeasurementField{FieldBillLength, FieldBillDepth, FieldFlipperLength, FieldBodyMass}
}

// Value returns the observation's value for this field, or nil when missing
func (f MeasurementField) Value(o Observation) *float64 {
	switch f {
	case FieldBillLength:
		return o.BillLengthMM
	case FieldBillDepth:
		return o.BillDepthMM
	case FieldFlipperLength:
		return o.FlipperLengthMM
	case FieldBodyMass:
		return o.BodyMassG
	}
	return nil
}

// Label returns a human-readable name for the field, including its unit
func (f MeasurementField) Label() string {
	switch f {
	case FieldBillLength:
		return "Bill Length (mm)"
	case FieldBillDepth:
		return "Bill Depth (mm)"
	case FieldFlipperLength:
		return "Flipper Length (mm)"
	case FieldBodyMass:
		return "Body Mass (g)"
	}
	return string(f)
}

// Unit returns the measurement unit for the field
func (f MeasurementField) Unit() string {
	if f == FieldBodyMass {
		return "g"
	}
	return "mm"
}
