// Package dataset loads and cleans penguin survey observations.
//
// The package bundles a snapshot of the Palmer Archipelago penguins data
// (344 rows collected 2007-2009) and can also read an external CSV with
// the same schema. Loading is strict: unknown species, island, or sex
// tokens and malformed numbers are reported as parsing errors naming the
// offending row. Missing measurements are represented as nil pointers
// and removed by Clean, which keeps only fully observed rows.
package dataset
