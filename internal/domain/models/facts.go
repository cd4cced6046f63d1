package models

// CompanyFacts is the XBRL company-facts payload as served by SEC EDGAR.
// Facts are keyed by taxonomy (us-gaap, dei, ...) then by concept name.
type CompanyFacts struct {
	CIK        int64                  `json:"cik"`
	EntityName string                 `json:"entityName"`
	Facts      map[string]ConceptMap  `json:"facts"`
}

// ConceptMap maps a concept name to its reported fact set.
type ConceptMap map[string]ConceptFacts

// ConceptFacts holds every reported value for one concept, grouped by unit.
type ConceptFacts struct {
	Label       string                 `json:"label"`
	Description string                 `json:"description"`
	Units       map[string][]FactEntry `json:"units"`
}

// FactEntry is a single reported value. Val stays optional: EDGAR omits it
// for some historical entries and a missing value must not read as zero.
type FactEntry struct {
	Val   *float64 `json:"val"`
	End   string   `json:"end"`
	Start string   `json:"start,omitempty"`
	Form  string   `json:"form"`
	Filed string   `json:"filed"`
	FY    *int     `json:"fy"`
	FP    string   `json:"fp"`
	Frame string   `json:"frame,omitempty"`
	Accn  string   `json:"accn,omitempty"`
}

// GAAP returns the us-gaap concept map, or nil when the payload has none.
func (f *CompanyFacts) GAAP() ConceptMap {
	if f == nil || f.Facts == nil {
		return nil
	}
	return f.Facts["us-gaap"]
}

// Filing is one row of an EDGAR submissions listing.
type Filing struct {
	Form        string `json:"form"`
	FilingDate  string `json:"filingDate"`
	ReportDate  string `json:"reportDate"`
	Accession   string `json:"accessionNumber"`
	Description string `json:"primaryDocDescription"`
}
