// Package ears reserves the report slot for EARS pattern analysis.
//
// Linguistic EARS validation lives outside this module; requirements
// reports still carry an analysis section, so Analyze returns the fixed
// shape consumers expect until a real analyzer is plugged in.
package ears

import "github.com/c360studio/speclint/block"

// Report is the EARS analysis section of a requirements report.
type Report struct {
	Pattern    string   `json:"pattern"`
	Total      int      `json:"total"`
	Matched    int      `json:"matched"`
	Rate       float64  `json:"rate"`
	Violations []string `json:"violations"`
}

// Analyze returns the placeholder report: nothing checked, full rate, no
// violations.
func Analyze(_ *block.Document) Report {
	return Report{
		Pattern:    "ubiquitous",
		Total:      0,
		Matched:    0,
		Rate:       1.0,
		Violations: []string{},
	}
}
