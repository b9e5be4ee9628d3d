package finance

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MatchType records how a reconciliation link was produced.
type MatchType string

const (
	MatchExact  MatchType = "exact"
	MatchFuzzy  MatchType = "fuzzy"
	MatchManual MatchType = "manual"
)

// MatchStatus is the state of a reconciliation link.
type MatchStatus string

const (
	StatusMatched   MatchStatus = "matched"
	StatusUnmatched MatchStatus = "unmatched"
	StatusDisputed  MatchStatus = "disputed"
)

// Reconciliation links a bank transaction to the business record it settles.
// A bank transaction has at most one non-superseded reconciliation.
type Reconciliation struct {
	BankTransactionID string
	MatchedEntityID   string
	MatchType         MatchType
	Confidence        float64
	Status            MatchStatus
}

// CandidateKind distinguishes the two record types a bank line can settle.
type CandidateKind string

const (
	CandidateInvoice     CandidateKind = "invoice"
	CandidateTransaction CandidateKind = "transaction"
)

// Candidate is an open invoice or a document-generated transaction offered
// to the matcher. Reference carries the invoice number when there is one.
type Candidate struct {
	ID           string
	Kind         CandidateKind
	Amount       decimal.Decimal
	Date         time.Time
	Counterparty string
	IBAN         string
	Reference    string
}

// MatchConfig tunes the matching heuristics. Exact matches require the tight
// epsilon plus an identifying overlap: an explicit invoice-number reference
// counts on its own, while counterparty or IBAN overlap also needs the dates
// within the exact window. Fuzzy matches relax both and lower confidence
// proportionally to the distance.
type MatchConfig struct {
	AmountEpsilon       decimal.Decimal
	DateWindowDays      int
	FuzzyAmountEpsilon  decimal.Decimal
	FuzzyDateWindowDays int
	MinConfidence       float64
}

// DefaultMatchConfig mirrors currency rounding (0.01) and a ±3 day window
// for exact matches.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		AmountEpsilon:       decimal.New(1, -2),
		DateWindowDays:      3,
		FuzzyAmountEpsilon:  decimal.New(5, 0),
		FuzzyDateWindowDays: 14,
		MinConfidence:       0.35,
	}
}

// Match pairs each bank transaction against the best open candidate.
//
// Bank transactions are processed oldest first (id as a final key) so reruns
// are deterministic and, when several transactions compete for one candidate,
// the earliest-dated one wins. A candidate is consumed by at most one bank
// transaction per run. Bank transactions already covered by a manual
// reconciliation in existing are left untouched, and the entities those
// manual links point to are withheld from the pool. Everything that finds no
// candidate is reported with status unmatched, never dropped.
func Match(bankTxs []BankTransaction, candidates []Candidate, existing []Reconciliation, cfg MatchConfig) []Reconciliation {
	manualByBankTx := make(map[string]bool)
	consumed := make(map[string]bool)
	for _, r := range existing {
		if r.MatchType == MatchManual {
			manualByBankTx[r.BankTransactionID] = true
			if r.MatchedEntityID != "" {
				consumed[r.MatchedEntityID] = true
			}
		}
	}

	ordered := make([]BankTransaction, len(bankTxs))
	copy(ordered, bankTxs)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].Date.Equal(ordered[j].Date) {
			return ordered[i].Date.Before(ordered[j].Date)
		}
		return ordered[i].ID < ordered[j].ID
	})

	var results []Reconciliation
	for _, tx := range ordered {
		if manualByBankTx[tx.ID] {
			continue
		}

		best, found := bestCandidate(tx, candidates, consumed, cfg)
		if !found {
			results = append(results, Reconciliation{
				BankTransactionID: tx.ID,
				Status:            StatusUnmatched,
			})
			continue
		}

		consumed[best.cand.ID] = true
		results = append(results, Reconciliation{
			BankTransactionID: tx.ID,
			MatchedEntityID:   best.cand.ID,
			MatchType:         best.matchType,
			Confidence:        best.confidence,
			Status:            StatusMatched,
		})
	}
	return results
}

type scored struct {
	cand       Candidate
	matchType  MatchType
	confidence float64
	amountDiff decimal.Decimal
}

// better orders two scored candidates: higher confidence, then earliest
// candidate date (oldest debt first), then smallest amount difference, then
// lexicographic id for determinism.
func (s scored) better(other scored) bool {
	if s.confidence != other.confidence {
		return s.confidence > other.confidence
	}
	if !s.cand.Date.Equal(other.cand.Date) {
		return s.cand.Date.Before(other.cand.Date)
	}
	if cmp := s.amountDiff.Cmp(other.amountDiff); cmp != 0 {
		return cmp < 0
	}
	return s.cand.ID < other.cand.ID
}

func bestCandidate(tx BankTransaction, candidates []Candidate, consumed map[string]bool, cfg MatchConfig) (scored, bool) {
	var best scored
	found := false
	for _, cand := range candidates {
		if consumed[cand.ID] {
			continue
		}
		s, ok := scoreCandidate(tx, cand, cfg)
		if !ok {
			continue
		}
		if !found || s.better(best) {
			best = s
			found = true
		}
	}
	return best, found
}

func scoreCandidate(tx BankTransaction, cand Candidate, cfg MatchConfig) (scored, bool) {
	amountDiff := tx.Amount.Abs().Sub(cand.Amount.Abs()).Abs()
	dateDiff := daysApart(tx.Date, cand.Date)
	refHit := referenceHit(tx, cand)
	overlap := refHit || identityOverlap(tx, cand)

	if amountDiff.Cmp(cfg.AmountEpsilon) <= 0 {
		// An invoice number quoted in the bank description identifies the
		// settled record on its own. A payment can land days before or after
		// the invoice's own date, so the date window does not apply here.
		if refHit {
			return scored{cand: cand, matchType: MatchExact, confidence: 1.0, amountDiff: amountDiff}, true
		}
		if overlap && dateDiff <= cfg.DateWindowDays {
			return scored{cand: cand, matchType: MatchExact, confidence: 1.0, amountDiff: amountDiff}, true
		}
	}

	if amountDiff.Cmp(cfg.FuzzyAmountEpsilon) > 0 || dateDiff > cfg.FuzzyDateWindowDays {
		return scored{}, false
	}

	amountRatio, _ := amountDiff.Div(cfg.FuzzyAmountEpsilon).Float64()
	dateRatio := float64(dateDiff) / float64(cfg.FuzzyDateWindowDays)
	confidence := 0.9 - 0.3*amountRatio - 0.2*dateRatio
	if overlap {
		confidence += 0.1
	}
	if confidence > 0.99 {
		confidence = 0.99
	}
	if confidence < cfg.MinConfidence {
		return scored{}, false
	}
	return scored{cand: cand, matchType: MatchFuzzy, confidence: confidence, amountDiff: amountDiff}, true
}

// referenceHit reports whether the candidate's invoice number appears in the
// bank description.
func referenceHit(tx BankTransaction, cand Candidate) bool {
	if cand.Reference == "" {
		return false
	}
	return strings.Contains(strings.ToLower(tx.Description), strings.ToLower(cand.Reference))
}

// identityOverlap reports whether the bank line and the candidate share a
// weaker identifying detail: overlapping counterparties or equal IBANs.
func identityOverlap(tx BankTransaction, cand Candidate) bool {
	if cand.Counterparty != "" && tx.Counterparty != "" {
		a := strings.ToLower(tx.Counterparty)
		b := strings.ToLower(cand.Counterparty)
		if strings.Contains(a, b) || strings.Contains(b, a) {
			return true
		}
	}
	if cand.IBAN != "" && tx.IBAN != "" && strings.EqualFold(cand.IBAN, tx.IBAN) {
		return true
	}
	return false
}

func daysApart(a, b time.Time) int {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return int(d.Hours() / 24)
}
