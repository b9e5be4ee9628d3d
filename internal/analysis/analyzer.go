package analysis

import "context"

// Result is the analyzer's verdict on one uploaded document. Amount and
// DocumentDate come back as free text and are parsed downstream; a record is
// kept even when they fail to parse.
type Result struct {
	Description     string   `json:"description"`
	Amount          string   `json:"amount"`
	Category        string   `json:"category"`
	Supplier        string   `json:"supplier"`
	Client          string   `json:"client"`
	DocumentDate    string   `json:"document_date"`
	InvoiceNumber   string   `json:"invoice_number"`
	CUI             string   `json:"cui"`
	Confidence      float64  `json:"confidence"`
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
}

// Analyzer extracts accounting fields from a document. Implementations are a
// black box to callers; any error marks the document as failed, it never
// aborts the batch.
type Analyzer interface {
	AnalyzeDocument(ctx context.Context, mimeType string, data []byte) (*Result, error)
}
