// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/pulso-finanzas/backend/internal/application/adapter"
)

// GeminiService implements the adapter.InsightService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// GenerateSummary produces a short narrative for the period's metrics.
func (s *GeminiService) GenerateSummary(ctx context.Context, request *adapter.InsightRequest) (*adapter.InsightResult, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)

	// Configure model for JSON output
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	prompt := s.buildPrompt(request)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	result, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return result, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(request *adapter.InsightRequest) string {
	var sb strings.Builder

	sb.WriteString(`Eres un asesor financiero para pequenos negocios de servicios en Mexico. Tu tarea es explicar en lenguaje sencillo la salud financiera del mes, a partir de cifras ya calculadas.

IMPORTANTE - IDIOMA Y TONO:
- Responde siempre en Espanol
- Habla directo al dueno del negocio, en segunda persona
- Nada de jerga contable; explica como a alguien sin formacion financiera
- Se concreto: usa las cifras proporcionadas, no inventes numeros nuevos

CIFRAS DEL PERIODO:
`)

	sb.WriteString(fmt.Sprintf("- Negocio: %s\n", request.WorkspaceName))
	sb.WriteString(fmt.Sprintf("- Periodo: %s\n", request.PeriodKey))
	sb.WriteString(fmt.Sprintf("- Semaforo de salud: %s (completitud de datos: %d/100)\n", request.SemaphoreState, request.Capa1Score))
	sb.WriteString(fmt.Sprintf("- Cobranza del mes: %s\n", request.Collections))
	sb.WriteString(fmt.Sprintf("- Gastos del mes: %s\n", request.Expenses))
	sb.WriteString(fmt.Sprintf("- Utilidad del mes: %s\n", request.Profit))
	sb.WriteString(fmt.Sprintf("- Cuentas por cobrar: %s\n", request.Receivables))
	sb.WriteString(fmt.Sprintf("- Meses de liquidez (runway): %.1f\n", request.RunwayMonths))
	sb.WriteString(fmt.Sprintf("- Punto de equilibrio mensual: %s\n", request.BreakEvenPoint))

	if request.SalesTarget != "" {
		sb.WriteString(fmt.Sprintf("- Meta de ventas del mes: %s\n", request.SalesTarget))
	}

	if len(request.PendingItems) > 0 {
		sb.WriteString("\nDATOS PENDIENTES DE COMPLETAR:\n")
		for _, item := range request.PendingItems {
			sb.WriteString(fmt.Sprintf("- %s\n", item))
		}
	}

	sb.WriteString(`
Responde con un objeto JSON:
{
  "summary": "parrafo de 3 a 5 frases que resuma la salud del negocio este mes",
  "recommendations": ["entre 2 y 4 acciones concretas, cada una en una frase"]
}

FORMATO DE RESPUESTA: Retorna solo el objeto JSON, sin texto adicional.
`)

	return sb.String()
}

// geminiInsight represents the raw response from Gemini.
type geminiInsight struct {
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
}

// parseResponse parses the Gemini response into an InsightResult.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) (*adapter.InsightResult, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var insight geminiInsight
	if err := json.Unmarshal([]byte(textContent), &insight); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	if insight.Summary == "" {
		return nil, fmt.Errorf("response contains no summary")
	}

	return &adapter.InsightResult{
		Summary:         insight.Summary,
		Recommendations: insight.Recommendations,
	}, nil
}

// Ensure the implementation satisfies the interface.
var _ adapter.InsightService = (*GeminiService)(nil)
