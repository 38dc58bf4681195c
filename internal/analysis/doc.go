// Package analysis computes the statistics behind the survey report:
// per-species group means, Pearson correlations of body mass against the
// other measurements, five-number summaries per measurement and least
// squares trend fits for the scatter charts.
//
// Group means run over fully observed rows only. Correlations,
// descriptive statistics and trend fits are pairwise complete: each uses
// every row where the values it needs were recorded, so their sample
// sizes can differ from the cleaned row count.
package analysis
