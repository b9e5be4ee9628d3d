package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const documentPrompt = "You are an accounting document analyzer for Romanian small businesses.\n\n" +
	"Task:\n" +
	"- Extract the accounting fields from the attached document (invoice, receipt or contract).\n" +
	"- Output STRICT JSON only (no comments, no trailing commas, no extra text).\n" +
	"- Output a single JSON object.\n\n" +
	"The object must have these fields:\n" +
	"- \"description\": string, one line summarizing the document\n" +
	"- \"amount\": string, the total amount as printed (keep separators)\n" +
	"- \"category\": string, e.g. \"servicii\", \"consultanta\", \"vanzari\", \"utilitati\", \"transport\"\n" +
	"- \"supplier\": string or empty\n" +
	"- \"client\": string or empty\n" +
	"- \"document_date\": string, the document date as printed\n" +
	"- \"invoice_number\": string or empty\n" +
	"- \"cui\": string or empty, the fiscal identifier\n" +
	"- \"confidence\": number between 0 and 1\n" +
	"- \"insights\": array of strings\n" +
	"- \"recommendations\": array of strings\n\n" +
	"Return ONLY valid raw JSON.\n" +
	"Do NOT wrap the response in code fences.\n" +
	"Do NOT use ```json or any Markdown.\n" +
	"Output must begin with \"{\" and end with \"}\".\n"

// GeminiAnalyzer implements Analyzer on top of the Gemini API. The API key is
// taken from the environment by the genai client.
type GeminiAnalyzer struct {
	model string
}

var _ Analyzer = (*GeminiAnalyzer)(nil)

func NewGeminiAnalyzer(model string) *GeminiAnalyzer {
	return &GeminiAnalyzer{model: model}
}

func (g *GeminiAnalyzer) AnalyzeDocument(ctx context.Context, mimeType string, data []byte) (*Result, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("AnalyzeDocument: create genai client: %w", err)
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: documentPrompt},
				{
					InlineData: &genai.Blob{
						MIMEType: mimeType,
						Data:     data,
					},
				},
			},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("AnalyzeDocument: generate content: %w", err)
	}

	rawText := resp.Text()
	if rawText == "" {
		return nil, fmt.Errorf("AnalyzeDocument: empty response from model")
	}

	clean := cleanModelJSON(rawText)

	var result Result
	if err := json.Unmarshal([]byte(clean), &result); err != nil {
		return nil, fmt.Errorf("AnalyzeDocument: unmarshal JSON: %w\nraw response: %s", err, rawText)
	}
	return &result, nil
}

// cleanModelJSON strips Markdown fences and surrounding junk when the model
// ignores the raw-JSON instruction.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}

	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	s = strings.TrimSpace(s)

	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}

	return s
}
