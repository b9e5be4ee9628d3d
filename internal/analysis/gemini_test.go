package analysis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanModelJSONPlain(t *testing.T) {
	raw := `{"description": "ok"}`
	assert.Equal(t, raw, cleanModelJSON(raw))
}

func TestCleanModelJSONFenced(t *testing.T) {
	raw := "```json\n{\"description\": \"ok\"}\n```"
	assert.Equal(t, `{"description": "ok"}`, cleanModelJSON(raw))
}

func TestCleanModelJSONBareFence(t *testing.T) {
	raw := "```\n{\"description\": \"ok\"}\n```"
	assert.Equal(t, `{"description": "ok"}`, cleanModelJSON(raw))
}

func TestCleanModelJSONSurroundingProse(t *testing.T) {
	raw := "Here is the extraction:\n{\"description\": \"ok\"}\nHope that helps."
	assert.Equal(t, `{"description": "ok"}`, cleanModelJSON(raw))
}

func TestResultUnmarshal(t *testing.T) {
	payload := `{
		"description": "Factura servicii IT",
		"amount": "1.234,56 RON",
		"category": "servicii",
		"supplier": "Tech SRL",
		"client": "Client SA",
		"document_date": "15.03.2024",
		"invoice_number": "INV-0042",
		"cui": "RO12345678",
		"confidence": 0.93,
		"insights": ["recurring supplier"],
		"recommendations": []
	}`

	var result Result
	require.NoError(t, json.Unmarshal([]byte(cleanModelJSON(payload)), &result))
	assert.Equal(t, "1.234,56 RON", result.Amount)
	assert.Equal(t, "INV-0042", result.InvoiceNumber)
	assert.InDelta(t, 0.93, result.Confidence, 1e-9)
}
