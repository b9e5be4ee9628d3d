package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// -- ParseAmount tests --

func TestParseAmount_PlainDecimal(t *testing.T) {
	got, ok := ParseAmount("1234.56")
	assert.True(t, ok)
	assert.True(t, got.Equal(decimal.RequireFromString("1234.56")))
}

func TestParseAmount_DecimalComma(t *testing.T) {
	got, ok := ParseAmount("1234,56 RON")
	assert.True(t, ok)
	assert.True(t, got.Equal(decimal.RequireFromString("1234.56")))
}

func TestParseAmount_ThousandsDotDecimalComma(t *testing.T) {
	got, ok := ParseAmount("Total: 1.234,56")
	assert.True(t, ok)
	assert.True(t, got.Equal(decimal.RequireFromString("1234.56")))
}

func TestParseAmount_ThousandsCommaDecimalDot(t *testing.T) {
	got, ok := ParseAmount("1,234.56 EUR")
	assert.True(t, ok)
	assert.True(t, got.Equal(decimal.RequireFromString("1234.56")))
}

func TestParseAmount_FirstTokenWins(t *testing.T) {
	got, ok := ParseAmount("500.00 din 700.00")
	assert.True(t, ok)
	assert.True(t, got.Equal(decimal.RequireFromString("500.00")))
}

func TestParseAmount_Negative(t *testing.T) {
	got, ok := ParseAmount("-99.90")
	assert.True(t, ok)
	assert.True(t, got.Equal(decimal.RequireFromString("-99.90")))
}

func TestParseAmount_NoNumber(t *testing.T) {
	got, ok := ParseAmount("nu exista suma")
	assert.False(t, ok)
	assert.True(t, got.IsZero())
}

func TestParseAmount_Empty(t *testing.T) {
	got, ok := ParseAmount("")
	assert.False(t, ok)
	assert.True(t, got.IsZero())
}

// -- ParseDate tests --

func TestParseDate_DotFormat(t *testing.T) {
	got := ParseDate("15.03.2024")
	assert.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *got)
}

func TestParseDate_ISOFormat(t *testing.T) {
	got := ParseDate("2024-03-15")
	assert.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *got)
}

func TestParseDate_SlashFormat(t *testing.T) {
	got := ParseDate("15/03/2024")
	assert.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *got)
}

func TestParseDate_EmbeddedInText(t *testing.T) {
	got := ParseDate("Data emiterii: 01.12.2023, scadenta 15.12.2023")
	assert.NotNil(t, got)
	// First matching pattern wins.
	assert.Equal(t, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), *got)
}

func TestParseDate_Unparsable(t *testing.T) {
	assert.Nil(t, ParseDate("cândva anul trecut"))
	assert.Nil(t, ParseDate(""))
}

// -- TypeForCategory tests --

func TestTypeForCategory_Income(t *testing.T) {
	assert.Equal(t, TransactionIncome, TypeForCategory("Servicii IT"))
	assert.Equal(t, TransactionIncome, TypeForCategory("consultanta fiscala"))
	assert.Equal(t, TransactionIncome, TypeForCategory("Vanzari produse"))
}

func TestTypeForCategory_DefaultsToExpense(t *testing.T) {
	assert.Equal(t, TransactionExpense, TypeForCategory("utilitati"))
	assert.Equal(t, TransactionExpense, TypeForCategory(""))
}

// -- TransactionFromAnalysis tests --

func TestTransactionFromAnalysis_CleanInput(t *testing.T) {
	fallback := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tx, warnings := TransactionFromAnalysis(AnalysisFields{
		Description:  "Factura servicii",
		Amount:       "1.500,00 RON",
		Category:     "servicii",
		DocumentDate: "10.02.2024",
	}, "doc-1", fallback)

	assert.Empty(t, warnings)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("1500.00")))
	assert.Equal(t, TransactionIncome, tx.Type)
	assert.Equal(t, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), tx.Date)
	assert.Equal(t, "doc-1", tx.SourceID)
}

func TestTransactionFromAnalysis_DegradedInputKeepsRecord(t *testing.T) {
	fallback := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tx, warnings := TransactionFromAnalysis(AnalysisFields{
		Description:  "Bon fara suma",
		Amount:       "n/a",
		Category:     "diverse",
		DocumentDate: "ieri",
	}, "doc-2", fallback)

	assert.Len(t, warnings, 2)
	assert.True(t, tx.Amount.IsZero())
	assert.Equal(t, fallback, tx.Date)
	assert.Equal(t, TransactionExpense, tx.Type)
}

// -- BankTransactionFromLine tests --

func TestBankTransactionFromLine_TypedLine(t *testing.T) {
	fallback := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	tx, warnings := BankTransactionFromLine(StatementLine{
		Date:         "2024-03-05",
		Description:  "INV-0042 payment",
		Amount:       "1200.00",
		Balance:      "5200.00",
		Type:         "credit",
		Counterparty: "ACME SRL",
		IBAN:         "RO49AAAA1B31007593840000",
	}, "stmt-1", fallback)

	assert.Empty(t, warnings)
	assert.Equal(t, BankCredit, tx.Type)
	assert.Equal(t, "stmt-1", tx.StatementID)
	assert.True(t, tx.Balance.Equal(decimal.RequireFromString("5200.00")))
}

func TestBankTransactionFromLine_InferredType(t *testing.T) {
	fallback := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	tx, warnings := BankTransactionFromLine(StatementLine{
		Date:   "05.03.2024",
		Amount: "-250,00",
	}, "stmt-1", fallback)

	assert.Len(t, warnings, 1)
	assert.Equal(t, BankDebit, tx.Type)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("-250.00")))
}
