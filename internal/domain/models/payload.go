package models

import "fmt"

// SourcePayload is the tagged result a source handler produces. Each variant
// carries its own typed counts; Count projects the single number the digest
// reports, Label renders it for the summary line.
type SourcePayload interface {
	Tag() Source
	Markdown() string
	Count() int
	Label() string
}

// WebPayload holds gathered news articles and regulatory filings.
type WebPayload struct {
	Report       string
	ArticleCount int
	FilingCount  int
}

func (p *WebPayload) Tag() Source      { return SourceWeb }
func (p *WebPayload) Markdown() string { return p.Report }
func (p *WebPayload) Count() int       { return p.ArticleCount + p.FilingCount }
func (p *WebPayload) Label() string    { return fmt.Sprintf("%d articles/filings", p.Count()) }

// FundamentalsPayload holds the extracted metrics document plus derivations
// and the supplementary snapshot.
type FundamentalsPayload struct {
	Report   string
	CIK      string
	Metrics  *MetricsDocument
	Derived  *DerivedFigures
	Snapshot *CompanySnapshot
}

func (p *FundamentalsPayload) Tag() Source      { return SourceFundamentals }
func (p *FundamentalsPayload) Markdown() string { return p.Report }
func (p *FundamentalsPayload) Count() int       { return p.Metrics.MetricCount() }
func (p *FundamentalsPayload) Label() string    { return fmt.Sprintf("%d financial metrics", p.Count()) }

// SocialPayload holds gathered social media posts.
type SocialPayload struct {
	Report    string
	PostCount int
}

func (p *SocialPayload) Tag() Source      { return SourceSocial }
func (p *SocialPayload) Markdown() string { return p.Report }
func (p *SocialPayload) Count() int       { return p.PostCount }
func (p *SocialPayload) Label() string    { return fmt.Sprintf("%d social posts", p.Count()) }

// TechnicalsPayload holds computed price signals.
type TechnicalsPayload struct {
	Report      string
	SignalCount int
}

func (p *TechnicalsPayload) Tag() Source      { return SourceTechnicals }
func (p *TechnicalsPayload) Markdown() string { return p.Report }
func (p *TechnicalsPayload) Count() int       { return p.SignalCount }
func (p *TechnicalsPayload) Label() string    { return fmt.Sprintf("%d technical signals", p.Count()) }

// GenericLabel is the fallback digest label for sources without a dedicated
// payload variant.
func GenericLabel(source Source, count int) string {
	return fmt.Sprintf("%d items from %s", count, source)
}
