package transform

import "github.com/datakit-labs/seriesops/pkg/funcdoc"

// Structured metadata for each exported operation. Consumed by external
// doc tooling through funcdoc.ExportJSON; no effect on runtime behavior.
func init() {
	funcdoc.Register("Convert", funcdoc.Doc{
		Title:   "Linear unit conversion",
		Summary: "Multiplies every present observation in a series by a fixed conversion factor.",
		Params: []funcdoc.Param{
			{Name: "s", Description: "input series; missing observations pass through unchanged"},
			{Name: "factor", Description: "linear scale factor, e.g. 0.3937 for centimeters to inches"},
		},
		Returns: "a new series of the same length with each present observation scaled",
		Example: `transform.Convert(series.FromFloats([]float64{100, 150, 200}), 0.3937)`,
	})

	funcdoc.Register("Standardize", funcdoc.Doc{
		Title:   "Standard-score normalization",
		Summary: "Rescales each present observation to (x - mean) / stddev using per-call sample statistics.",
		Params: []funcdoc.Param{
			{Name: "s", Description: "input series"},
			{Name: "opts", Description: "missing-value policy; WithExcludeMissing(true) drops missing observations from the statistics (default false)"},
		},
		Returns: "a new series of the same length; all positions are missing when the statistics are undefined",
		Example: `transform.Standardize(s, transform.WithExcludeMissing(true))`,
	})
}
