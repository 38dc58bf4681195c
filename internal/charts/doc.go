// Package charts renders the survey figures with gonum/plot: count bars
// per species, island and sex, measurement histograms, per-species box
// plots and scatter charts with fitted trend lines. Charts are written
// as PNG or SVG files sized by configuration.
package charts
