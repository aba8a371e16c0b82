// Package gemini provides a minimal client for the Generative Language REST API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultAPIBaseURL         = "https://generativelanguage.googleapis.com"
	defaultAPITimeout         = 120 * time.Second
	defaultUserAgent          = "guidegen"
	generateContentPathFormat = "/v1beta/models/%s:generateContent"
	headerAPIKey              = "x-goog-api-key"
	headerContentType         = "Content-Type"
	headerUserAgent           = "User-Agent"
	contentTypeJSON           = "application/json"
	roleUser                  = "user"
	errorBodyReadLimit        = 8 * 1024
)

var (
	errMissingAPIKey = errors.New("api key is required")
	errMissingModel  = errors.New("model name is required")
)

type httpClient interface {
	Do(request *http.Request) (*http.Response, error)
}

// Part is one text fragment of a content payload.
type Part struct {
	Text string `json:"text"`
}

// Content is a role-tagged sequence of parts.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// GenerationConfig carries the sampling parameters sent with every request.
type GenerationConfig struct {
	Temperature float64 `json:"temperature"`
}

type generateContentRequest struct {
	Contents          []Content        `json:"contents"`
	SystemInstruction *Content         `json:"systemInstruction,omitempty"`
	GenerationConfig  GenerationConfig `json:"generationConfig"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content Content `json:"content"`
	} `json:"candidates"`
}

type apiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// GenerateRequest describes a single generation attempt.
type GenerateRequest struct {
	Model             string
	SystemInstruction string
	UserText          string
	Temperature       float64
}

// Client calls the generateContent endpoint. The API key travels only in a
// request header; it never appears in URLs, logs, or error messages.
type Client struct {
	client    httpClient
	apiBase   string
	userAgent string
	timeout   time.Duration
	apiKey    string
}

// NewClient constructs a Client. Passing a nil httpClient installs a default
// client with the standard timeout.
func NewClient(client httpClient) Client {
	if client == nil {
		client = &http.Client{Timeout: defaultAPITimeout}
	}
	return Client{
		client:    client,
		apiBase:   defaultAPIBaseURL,
		userAgent: defaultUserAgent,
		timeout:   defaultAPITimeout,
	}
}

// WithAPIBase overrides the endpoint base URL.
func (geminiClient Client) WithAPIBase(base string) Client {
	if base == "" {
		return geminiClient
	}
	geminiClient.apiBase = strings.TrimRight(base, "/")
	return geminiClient
}

// WithUserAgent overrides the User-Agent header value.
func (geminiClient Client) WithUserAgent(agent string) Client {
	if agent == "" {
		return geminiClient
	}
	geminiClient.userAgent = agent
	return geminiClient
}

// WithTimeout overrides the request timeout.
func (geminiClient Client) WithTimeout(duration time.Duration) Client {
	if duration <= 0 {
		return geminiClient
	}
	geminiClient.timeout = duration
	if clientWithTimeout, ok := geminiClient.client.(*http.Client); ok {
		clientWithTimeout.Timeout = duration
	}
	return geminiClient
}

// WithAPIKey configures the credential attached to every request.
func (geminiClient Client) WithAPIKey(apiKey string) Client {
	geminiClient.apiKey = strings.TrimSpace(apiKey)
	return geminiClient
}

// GenerateContent submits one generation request and returns the concatenated
// text parts of the first candidate. An empty string with a nil error means the
// model produced no text.
func (geminiClient Client) GenerateContent(ctx context.Context, request GenerateRequest) (string, error) {
	if geminiClient.apiKey == "" {
		return "", errMissingAPIKey
	}
	if request.Model == "" {
		return "", errMissingModel
	}

	requestBody := generateContentRequest{
		Contents:         []Content{{Role: roleUser, Parts: []Part{{Text: request.UserText}}}},
		GenerationConfig: GenerationConfig{Temperature: request.Temperature},
	}
	if request.SystemInstruction != "" {
		requestBody.SystemInstruction = &Content{Parts: []Part{{Text: request.SystemInstruction}}}
	}
	payload, marshalError := json.Marshal(requestBody)
	if marshalError != nil {
		return "", fmt.Errorf("encode generation request: %w", marshalError)
	}

	httpRequest, requestError := geminiClient.buildRequest(ctx, request.Model, payload)
	if requestError != nil {
		return "", requestError
	}
	response, responseError := geminiClient.client.Do(httpRequest)
	if responseError != nil {
		return "", responseError
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return "", decodeAPIError(response)
	}

	var decoded generateContentResponse
	if decodeError := json.NewDecoder(response.Body).Decode(&decoded); decodeError != nil {
		return "", fmt.Errorf("decode generation response: %w", decodeError)
	}
	if len(decoded.Candidates) == 0 {
		return "", nil
	}
	var textBuilder strings.Builder
	for _, part := range decoded.Candidates[0].Content.Parts {
		textBuilder.WriteString(part.Text)
	}
	return textBuilder.String(), nil
}

func (geminiClient Client) buildRequest(ctx context.Context, model string, payload []byte) (*http.Request, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	requestURL := geminiClient.apiBase + fmt.Sprintf(generateContentPathFormat, url.PathEscape(model))
	httpRequest, requestError := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewReader(payload))
	if requestError != nil {
		return nil, requestError
	}
	httpRequest.Header.Set(headerContentType, contentTypeJSON)
	httpRequest.Header.Set(headerAPIKey, geminiClient.apiKey)
	if geminiClient.userAgent != "" {
		httpRequest.Header.Set(headerUserAgent, geminiClient.userAgent)
	}
	return httpRequest, nil
}

// decodeAPIError turns a non-200 response into a descriptive error, preferring
// the structured error envelope when the body carries one.
func decodeAPIError(response *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(response.Body, errorBodyReadLimit))
	var envelope apiErrorResponse
	if unmarshalError := json.Unmarshal(body, &envelope); unmarshalError == nil && envelope.Error.Message != "" {
		return fmt.Errorf("generation API returned status %d (%s): %s", response.StatusCode, envelope.Error.Status, envelope.Error.Message)
	}
	return fmt.Errorf("generation API returned unexpected status %d: %s", response.StatusCode, strings.TrimSpace(string(body)))
}
