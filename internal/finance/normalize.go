package finance

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Income categories used to classify AI-extracted transactions. Anything else
// defaults to expense. Matching is case-insensitive substring, so "Servicii IT"
// and "consultanta fiscala" both count as income.
var incomeCategories = []string{"servicii", "consultanta", "vanzari"}

var amountTokenPattern = regexp.MustCompile(`[\d,.-]+`)

// datePatterns are tried in order; the first one that matches wins.
var datePatterns = []struct {
	re        *regexp.Regexp
	yearFirst bool
}{
	{regexp.MustCompile(`(\d{2})\.(\d{2})\.(\d{4})`), false},
	{regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`), true},
	{regexp.MustCompile(`(\d{2})/(\d{2})/(\d{4})`), false},
}

// ParseAmount extracts the first numeric token from a free-text amount string.
// Both "1.234,56" and "1,234.56" style separators are accepted. A string with
// no usable number yields (0, false); the record is kept and the caller flags
// a data-quality warning instead of failing.
func ParseAmount(s string) (decimal.Decimal, bool) {
	token := amountTokenPattern.FindString(s)
	if token == "" {
		return decimal.Zero, false
	}

	token = normalizeSeparators(token)
	token = strings.TrimRight(token, ".-")
	if token == "" || token == "-" {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(token)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// normalizeSeparators rewrites a numeric token to use '.' as the decimal
// separator. When both separators appear, the one further right is the
// decimal point and the other marks thousands. A repeated separator can only
// be a thousands separator.
func normalizeSeparators(token string) string {
	lastDot := strings.LastIndex(token, ".")
	lastComma := strings.LastIndex(token, ",")

	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			token = strings.ReplaceAll(token, ".", "")
			token = strings.ReplaceAll(token, ",", ".")
		} else {
			token = strings.ReplaceAll(token, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(token, ",") > 1 {
			token = strings.ReplaceAll(token, ",", "")
		} else {
			token = strings.ReplaceAll(token, ",", ".")
		}
	case lastDot >= 0:
		if strings.Count(token, ".") > 1 {
			token = strings.ReplaceAll(token, ".", "")
		}
	}
	return token
}

// ParseDate accepts DD.MM.YYYY, YYYY-MM-DD and DD/MM/YYYY. Unparsable input
// returns nil; the caller decides whether to fall back to another date or to
// exclude the record. That choice affects period aggregation, so it is never
// made silently here.
func ParseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, p := range datePatterns {
		m := p.re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		var year, month, day int
		if p.yearFirst {
			year, month, day = atoi(m[1]), atoi(m[2]), atoi(m[3])
		} else {
			day, month, year = atoi(m[1]), atoi(m[2]), atoi(m[3])
		}
		if month < 1 || month > 12 || day < 1 || day > 31 {
			continue
		}
		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		return &t
	}
	return nil
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}

// TypeForCategory maps a free-text category to income or expense. This is a
// heuristic, not a guarantee; unknown categories default to expense.
func TypeForCategory(category string) TransactionType {
	lower := strings.ToLower(category)
	for _, c := range incomeCategories {
		if strings.Contains(lower, c) {
			return TransactionIncome
		}
	}
	return TransactionExpense
}

// AnalysisFields is the subset of the AI collaborator's output the
// normalizer consumes. Values arrive as free text and are parsed here.
type AnalysisFields struct {
	Description  string
	Amount       string
	Category     string
	DocumentDate string
}

// TransactionFromAnalysis builds a canonical transaction from AI-extracted
// document fields. An unparsable amount becomes 0 and an unparsable date
// falls back to fallbackDate (the document upload time); both are reported
// as data-quality warnings with the record still included.
func TransactionFromAnalysis(f AnalysisFields, sourceID string, fallbackDate time.Time) (Transaction, []DataQualityWarning) {
	var warnings []DataQualityWarning

	amount, ok := ParseAmount(f.Amount)
	if !ok {
		warnings = append(warnings, DataQualityWarning{
			Field:  "amount",
			Value:  f.Amount,
			Reason: "no numeric token, defaulted to 0",
		})
	}

	date := fallbackDate
	if parsed := ParseDate(f.DocumentDate); parsed != nil {
		date = *parsed
	} else {
		warnings = append(warnings, DataQualityWarning{
			Field:  "documentDate",
			Value:  f.DocumentDate,
			Reason: "unparsable date, using document upload time",
		})
	}

	return Transaction{
		Description: f.Description,
		Amount:      amount,
		Type:        TypeForCategory(f.Category),
		Category:    f.Category,
		Date:        date,
		SourceID:    sourceID,
	}, warnings
}

// StatementLine is a raw bank statement line item as received from upstream,
// before types are enforced.
type StatementLine struct {
	Date         string
	Description  string
	Amount       string
	Balance      string
	Type         string
	Counterparty string
	IBAN         string
}

// BankTransactionFromLine normalizes one raw statement line. Records with
// defaulted fields are kept and flagged; only the statement id is required.
func BankTransactionFromLine(line StatementLine, statementID string, fallbackDate time.Time) (BankTransaction, []DataQualityWarning) {
	var warnings []DataQualityWarning

	amount, ok := ParseAmount(line.Amount)
	if !ok {
		warnings = append(warnings, DataQualityWarning{
			Field:  "amount",
			Value:  line.Amount,
			Reason: "no numeric token, defaulted to 0",
		})
	}
	balance, _ := ParseAmount(line.Balance)

	date := fallbackDate
	if parsed := ParseDate(line.Date); parsed != nil {
		date = *parsed
	} else {
		warnings = append(warnings, DataQualityWarning{
			Field:  "date",
			Value:  line.Date,
			Reason: "unparsable date, using statement upload time",
		})
	}

	txType := BankTransactionType(line.Type)
	if txType != BankDebit && txType != BankCredit {
		if amount.IsNegative() {
			txType = BankDebit
		} else {
			txType = BankCredit
		}
		warnings = append(warnings, DataQualityWarning{
			Field:  "type",
			Value:  line.Type,
			Reason: "unknown type, inferred from amount sign",
		})
	}

	return BankTransaction{
		Date:         date,
		Description:  line.Description,
		Amount:       amount,
		Balance:      balance,
		Type:         txType,
		Counterparty: line.Counterparty,
		IBAN:         line.IBAN,
		StatementID:  statementID,
	}, warnings
}
