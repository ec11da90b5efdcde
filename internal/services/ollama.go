package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const availabilityTimeout = 5 * time.Second

// OllamaService implements the LLMService interface for the Ollama generate API
type OllamaService struct {
	baseURL    string
	modelName  string
	httpClient *http.Client
	logger     *slog.Logger
}

// Ensure OllamaService implements LLMService interface
var _ LLMService = (*OllamaService)(nil)

// NewOllamaService creates a new Ollama service instance. host may be a bare
// host:port ("localhost:11434") or a full URL.
func NewOllamaService(host string, modelName string, timeout time.Duration, logger *slog.Logger) *OllamaService {
	return &OllamaService{
		baseURL:   normalizeBaseURL(host),
		modelName: modelName,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type ollamaGenerateRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options"`
}

type ollamaOptions struct {
	NumPredict  int     `json:"num_predict,omitempty"`
	Temperature float64 `json:"temperature"`
}

// Generate sends a non-streaming generate request and returns the trimmed
// response text.
func (s *OllamaService) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	jsonBody, err := json.Marshal(ollamaGenerateRequest{
		Model:  s.modelName,
		Prompt: req.Prompt,
		Stream: false,
		Options: ollamaOptions{
			NumPredict:  req.MaxTokens,
			Temperature: req.Temperature,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := s.baseURL + "/api/generate"

	s.logger.Info("Sending request to Ollama",
		"url", url,
		"model", s.modelName,
		"prompt", truncate(req.Prompt, 100))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		s.logger.Warn("Cannot reach Ollama service", "error", err)
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	var responseBody bytes.Buffer
	if _, err := responseBody.ReadFrom(resp.Body); err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		s.logger.Error("Ollama API returned error",
			"status_code", resp.StatusCode,
			"response_body", responseBody.String())
		return "", fmt.Errorf("API request failed with status: %d", resp.StatusCode)
	}

	var ollamaResp struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(responseBody.Bytes(), &ollamaResp); err != nil {
		s.logger.Error("Failed to decode Ollama response",
			"error", err,
			"response_body", responseBody.String())
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	text := strings.TrimSpace(ollamaResp.Response)
	s.logger.Info("Ollama response", "response", truncate(text, 100))
	return text, nil
}

// IsAvailable checks whether Ollama answers on /api/tags.
func (s *OllamaService) IsAvailable(ctx context.Context) bool {
	_, err := s.listModels(ctx)
	return err == nil
}

// IsModelReady checks if the configured model has been pulled.
func (s *OllamaService) IsModelReady(ctx context.Context) (bool, error) {
	models, err := s.listModels(ctx)
	if err != nil {
		return false, err
	}
	for _, name := range models {
		if name == s.modelName || strings.TrimSuffix(name, ":latest") == s.modelName {
			return true, nil
		}
	}
	return false, nil
}

func (s *OllamaService) listModels(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, availabilityTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/api/tags", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status: %d", resp.StatusCode)
	}

	var tagsResp struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tagsResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	names := make([]string, 0, len(tagsResp.Models))
	for _, m := range tagsResp.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

func normalizeBaseURL(host string) string {
	host = strings.TrimRight(strings.TrimSpace(host), "/")
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return host
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
