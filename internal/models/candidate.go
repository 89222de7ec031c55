package models

// Candidate is one entry of the static, read-only companion pool the
// matching engine filters. Candidates are configuration data, not
// persisted state.
type Candidate struct {
	Name   string  `json:"name"`
	Age    int     `json:"age"`
	Bio    string  `json:"bio"`
	Rating float64 `json:"rating"`
	Icon   string  `json:"icon"`
}
