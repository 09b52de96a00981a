package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

// The estimator proxies Google's Gemini generateContent REST endpoint so the
// API key stays server-side. Upstream failures are reported generically;
// the raw provider error is only logged.

const geminiDefaultModel = "gemini-1.5-flash"

type geminiClient struct {
	baseURL string
	model   string
	apiKey  string
	http    *http.Client
}

func newGeminiClient() (*geminiClient, error) {
	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY is not configured")
	}
	baseURL := strings.TrimSpace(os.Getenv("GEMINI_API_BASE_URL"))
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}
	model := strings.TrimSpace(os.Getenv("GEMINI_MODEL"))
	if model == "" {
		model = geminiDefaultModel
	}
	return &geminiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 60 * time.Second},
	}, nil
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *geminiClient) generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("gemini api error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini returned no candidates")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// EstimateItem is one line of a generated cost estimate.
type EstimateItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

type estimateRequest struct {
	Description string `json:"description"`
}

// GenerateEstimate asks the model for an itemized construction cost estimate
// and returns the parsed line items.
func GenerateEstimate(w http.ResponseWriter, r *http.Request) {
	var req estimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		http.Error(w, "description is required", http.StatusBadRequest)
		return
	}

	client, err := newGeminiClient()
	if err != nil {
		log.Printf("❌ Estimator unavailable: %v", err)
		http.Error(w, "Estimator is not available", http.StatusServiceUnavailable)
		return
	}

	prompt := fmt.Sprintf(`You are a construction cost estimator for Indian residential and commercial projects. Produce an itemized estimate for the following scope of work. Respond with ONLY a JSON array, no markdown, where each element has the keys "description" (string), "quantity" (number), "unit" (string), "unitPrice" (number, INR) and "total" (number, INR).

Scope of work: %s`, req.Description)

	text, err := client.generate(r.Context(), prompt)
	if err != nil {
		log.Printf("❌ Estimate generation failed: %v", err)
		http.Error(w, "Failed to generate estimate", http.StatusBadGateway)
		return
	}

	items, err := parseEstimateItems(text)
	if err != nil {
		log.Printf("❌ Estimate response unparseable: %v", err)
		http.Error(w, "Failed to generate estimate", http.StatusBadGateway)
		return
	}

	var grandTotal float64
	for _, item := range items {
		grandTotal += item.Total
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"items":      items,
		"grandTotal": grandTotal,
	})
}

// parseEstimateItems tolerates the model wrapping its JSON in a markdown
// fence or leading prose.
func parseEstimateItems(text string) ([]EstimateItem, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return nil, errors.New("no JSON array in response")
	}
	var items []EstimateItem
	if err := json.Unmarshal([]byte(text[start:end+1]), &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.New("empty estimate")
	}
	return items, nil
}

type chatRequest struct {
	Message string `json:"message"`
}

// EstimatorChat is the free-form follow-up channel for the estimator screen.
func EstimatorChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	client, err := newGeminiClient()
	if err != nil {
		log.Printf("❌ Estimator unavailable: %v", err)
		http.Error(w, "Estimator is not available", http.StatusServiceUnavailable)
		return
	}

	prompt := fmt.Sprintf("You are a helpful construction planning assistant for a contracting firm. Answer concisely.\n\nQuestion: %s", req.Message)
	text, err := client.generate(r.Context(), prompt)
	if err != nil {
		log.Printf("❌ Estimator chat failed: %v", err)
		http.Error(w, "Failed to get a response", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"reply": text})
}
