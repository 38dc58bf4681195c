package dataset

import (
	"bytes"
	_ "embed"

	"penguincli/pkg/contracts/domain"
)

// embeddedPenguins is the bundled Palmer penguins snapshot.
//
//go:embed penguins.csv
var embeddedPenguins []byte

// LoadEmbedded parses the bundled Palmer penguins snapshot.
func LoadEmbedded() ([]domain.Observation, error) {
	return Load(bytes.NewReader(embeddedPenguins))
}
