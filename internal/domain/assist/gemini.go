package assist

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is the generation model used when none is configured.
const DefaultModel = "gemini-3-flash-preview"

// persona is the fixed system instruction: a Middle-East contracting
// sector expert helping contractors draft project details.
const persona = "أنت خبير في قطاع المقاولات والإنشاءات في الشرق الأوسط. ساعد المقاولين في صياغة تفاصيل مشاريعهم بشكل احترافي أو تحليل العطاءات."

// samplingTemperature is fixed for every request.
const samplingTemperature float32 = 0.7

// GeminiGenerator generates text using Google's Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a Gemini-backed generator.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerator{client: client, model: model}, nil
}

// GenerateText runs a single generation request with the fixed persona
// and temperature. One attempt, no retry.
func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(persona, genai.RoleUser),
			Temperature:       genai.Ptr(samplingTemperature),
		},
	)
	if err != nil {
		return "", fmt.Errorf("Gemini generate failed: %w", err)
	}

	return result.Text(), nil
}

// Name returns the generator name.
func (g *GeminiGenerator) Name() string {
	return fmt.Sprintf("gemini:%s", g.model)
}
