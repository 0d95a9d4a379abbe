// Package ai wraps the Gemini API for listing analysis: given a product
// photo it produces a neutral description, a fair price range and a
// confidence score for the campus marketplace.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const (
	// DefaultModel is the Gemini model used for listing analysis
	DefaultModel = "gemini-2.5-flash"
)

// ListingAnalysis is the structured result returned by the model
type ListingAnalysis struct {
	Description     string          `json:"description"`
	PriceSuggestion PriceSuggestion `json:"priceSuggestion"`
	ConfidenceScore int             `json:"confidenceScore"`
	Rationale       string          `json:"rationale"`
	Warnings        []string        `json:"warnings"`
}

// PriceSuggestion is a fair used-price range in INR
type PriceSuggestion struct {
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	SweetSpot float64 `json:"sweetSpot"`
}

// Analyzer generates listing analyses with the Gemini API
type Analyzer struct {
	client *genai.Client
	model  string
}

// NewAnalyzer creates an Analyzer authenticated with an API key
func NewAnalyzer(ctx context.Context, apiKey string) (*Analyzer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Analyzer{client: client, model: DefaultModel}, nil
}

// AnalyzeListing sends the product image and context to Gemini and parses
// the strict-JSON response
func (a *Analyzer) AnalyzeListing(ctx context.Context, image []byte, mimeType, productName, condition string) (*ListingAnalysis, error) {
	prompt := buildPrompt(productName, condition)

	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromBytes(image, mimeType),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := a.client.Models.GenerateContent(ctx, a.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("gemini API request failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("gemini API returned empty response")
	}

	return parseAnalysis(text)
}

// parseAnalysis decodes the model output, tolerating markdown code fences
// the model sometimes wraps JSON in despite instructions
func parseAnalysis(text string) (*ListingAnalysis, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var analysis ListingAnalysis
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse analysis JSON: %w", err)
	}
	return &analysis, nil
}

func buildPrompt(productName, condition string) string {
	return fmt.Sprintf(`Role: Expert College Marketplace Risk Analyst & Copywriter.
Task: Analyze the provided image of a product being sold by a student.

Context:
- Product Name Provided: %q
- Condition Stated: %q
- Target Audience: College Students in India (Currency: INR).

1. VISUAL ANALYSIS:
   - Confirm if the image matches the product name.
   - Detect brand, model, and visible wear or tear.
   - Check for prohibited items (weapons, drugs, academic dishonesty).

2. DESCRIPTION GENERATION (Strictly Honest & Neutral):
   - Write a clear, 2-3 sentence description suitable for a marketplace listing.
   - Mention key features and visible condition.
   - No sales hype, no emojis, no guarantees.

3. PRICING INTELLIGENCE (India/College Context):
   - Estimate a fair used price range in INR.
   - Consider the stated condition and typical student budget.
   - "Sweet Spot" is the price likely to sell within 3 days.

4. TRUST & SAFETY:
   - Assign a Confidence Score (0-100) on how well you can see and identify the item.
   - If the image is blurry, irrelevant, or unsafe, set confidence below 50.

Output strictly in this JSON format (no markdown code blocks):
{
  "description": "string",
  "priceSuggestion": { "min": number, "max": number, "sweetSpot": number },
  "confidenceScore": number,
  "rationale": "Brief explanation of price and condition analysis",
  "warnings": ["Array of any safety concerns or mismatches found"]
}`, productName, condition)
}
