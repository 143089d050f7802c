// Package models defines the shared data types flowing through the
// filing acquisition and extraction pipeline.
package models

import "time"

// SentinelCIK is the placeholder CIK used when identity resolution fails.
// Downstream stages treat it like any other CIK; the resulting EDGAR
// queries simply return no filings.
const SentinelCIK = "0000000000"

// CompanyIdentity is the resolved identity of a public company.
type CompanyIdentity struct {
	Ticker string `json:"ticker"`
	CIK    string `json:"cik"` // zero-padded to 10 digits
	Name   string `json:"name"`
}

// FilingReference points at a single filing discovered in the EDGAR
// Atom feed. IndexURL may be empty; the retriever can reconstruct it
// from CIK + Accession.
type FilingReference struct {
	FilingDate time.Time
	Accession  string
	IndexURL   string
}

// DownloadedFiling describes one filing document persisted to the
// local cache. Size is the on-disk byte count, which for synthetic
// placeholders is always exactly 1000.
type DownloadedFiling struct {
	FilingDate string `json:"filing_date"`
	Accession  string `json:"accession"`
	SourceURL  string `json:"source_url"`
	LocalPath  string `json:"local_path"`
	Size       int64  `json:"size"`
}
