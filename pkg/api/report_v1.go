// pkg/api/report_v1.go
package api

// MatchV1 is an interval on the subject, forward coordinates, half-open.
type MatchV1 struct {
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Strand string `json:"strand"` // "+" | "-"
	Seq    string `json:"seq,omitempty"`
}

// OverlapResultV1 is the stable JSON schema for one methylase outcome.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type OverlapResultV1 struct {
	Methylase       string `json:"methylase"`
	Site            string `json:"site"`
	MethylatedIndex int    `json:"methylated_index"`

	Region     *MatchV1 `json:"region,omitempty"`
	PlusMatch  *MatchV1 `json:"plus_match,omitempty"`
	MinusMatch *MatchV1 `json:"minus_match,omitempty"`

	MethylatedInPlusSite  bool `json:"methylated_in_plus_site"`
	MethylatedInMinusSite bool `json:"methylated_in_minus_site"`
	Blocked               bool `json:"blocked"`
}

// ReportV1 is the stable JSON schema for a whole analysis.
type ReportV1 struct {
	SequenceID      string            `json:"sequence_id,omitempty"`
	RestrictionSite string            `json:"restriction_site"`
	SiteFound       bool              `json:"site_found"`
	SiteOccurrences []MatchV1         `json:"site_occurrences,omitempty"`
	Results         []OverlapResultV1 `json:"results"`
}
