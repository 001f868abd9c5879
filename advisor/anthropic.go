package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/gudangkita/coa_service/coa_core"
	"github.com/pkg/errors"
)

const defaultModel = "claude-sonnet-4-5-20250929"

// Anthropic classifies descriptions through the Claude Messages API. Its
// output is advisory; the engine's rules override it.
type Anthropic struct {
	client anthropic.Client
	model  string
}

func NewAnthropic(apiKey string, model string) (*Anthropic, error) {
	if apiKey == "" {
		return nil, errors.New("anthropic api key not set")
	}
	if model == "" {
		model = defaultModel
	}

	return &Anthropic{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}, nil
}

// Advise implements coa_core.Advisor.
func (a *Anthropic) Advise(ctx context.Context, description string, categories []string) (*coa_core.Advice, error) {
	prompt := buildPrompt(description, categories)

	message, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: 1024,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "claude api call failed")
	}

	if len(message.Content) == 0 {
		return nil, errors.New("empty response from claude api")
	}

	var responseText string
	for _, block := range message.Content {
		if block.Type == "text" {
			responseText += block.Text
		}
	}

	advice, err := extractAdvice(responseText)
	if err != nil {
		return nil, err
	}

	return advice, nil
}

func buildPrompt(description string, categories []string) string {
	var b strings.Builder
	b.WriteString(`You are a bookkeeping assistant for an Indonesian back-office ledger. Classify one free-text transaction description.

**Available categories:**
`)
	for _, cat := range categories {
		fmt.Fprintf(&b, "- %s\n", cat)
	}
	b.WriteString(`
**Rules:**
- Pick the single best category from the list, or "" when none fits.
- Propose a specific account name derived from the description, never a generic category name (eg "Beban Gaji Karyawan", not "Gaji").
- "intent_code" is a short snake_case verb phrase (eg "pay_salary", "buy_vehicle").
- "confidence" is 0-1 for how sure you are in the category.
- Keep "reasoning" under 15 words.
- Product identifiers, serial numbers and vehicle plates are never account names.

**Output format:**
Return exactly one JSON object:

{
  "category": "Gaji",
  "proposed_name": "Beban Gaji Karyawan",
  "intent_code": "pay_salary",
  "confidence": 0.85,
  "reasoning": "salary payment keywords"
}

**Description:**

`)
	b.WriteString(description)
	b.WriteString("\n\n**Now return the JSON object:**")
	return b.String()
}

// extractAdvice pulls the JSON object out of the model response. the model
// may wrap it in markdown fences.
func extractAdvice(responseText string) (*coa_core.Advice, error) {
	jsonStart := strings.Index(responseText, "{")
	jsonEnd := strings.LastIndex(responseText, "}")
	if jsonStart == -1 || jsonEnd == -1 || jsonEnd < jsonStart {
		return nil, errors.Errorf("no JSON found in response: %s", responseText)
	}
	jsonText := responseText[jsonStart : jsonEnd+1]

	var advice coa_core.Advice
	if err := json.Unmarshal([]byte(jsonText), &advice); err != nil {
		return nil, errors.Wrapf(err, "failed to parse response %s", jsonText)
	}

	if advice.Confidence < 0 {
		advice.Confidence = 0
	}
	if advice.Confidence > 1 {
		advice.Confidence = 1
	}

	return &advice, nil
}
