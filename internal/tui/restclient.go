package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// timeout for assistant requests; model calls can take a while
const requestTimeout = 120 * time.Second

// manages HTTP requests to the assistant REST API
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// creates a client for DOCTOR_API_ENDPOINT, defaulting to a local server
func NewClient() *Client {
	endpoint := os.Getenv("DOCTOR_API_ENDPOINT")
	if endpoint == "" {
		endpoint = "http://localhost:8080"
	}

	return NewClientWithEndpoint(endpoint)
}

func NewClientWithEndpoint(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// REST API request/response types

type GenerateRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Language  string `json:"language"`
	Depth     string `json:"depth"`
	Code      string `json:"code"`
}

type GenerateResponse struct {
	SessionID string     `json:"session_id"`
	Skipped   bool       `json:"skipped"`
	Result    *Output    `json:"result,omitempty"`
	Downloads []Download `json:"downloads,omitempty"`
	Model     string     `json:"model,omitempty"`
}

type Output struct {
	Action       string    `json:"action"`
	Heading      string    `json:"heading,omitempty"`
	Notice       string    `json:"notice,omitempty"`
	Body         string    `json:"body,omitempty"`
	Format       string    `json:"format,omitempty"`
	CodeLanguage string    `json:"code_language,omitempty"`
	Failed       bool      `json:"failed"`
	Download     *Download `json:"download,omitempty"`
}

type Download struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Content     string `json:"content"`
}

type OptionsResponse struct {
	Languages    []string `json:"languages"`
	Depths       []string `json:"depths"`
	DefaultDepth string   `json:"default_depth"`
	Instructions string   `json:"instructions"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// runs one generation action: "docs", "dependencies" or "hardcoding"
func (c *Client) Generate(ctx context.Context, action string, req GenerateRequest) (*GenerateResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	var resp GenerateResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/assistant/"+action, bytes.NewReader(payload), &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// fetches the latest documentation stored for the session
func (c *Client) Documentation(ctx context.Context, sessionID string) (*GenerateResponse, error) {
	path := "/api/v1/assistant/documentation?session_id=" + url.QueryEscape(sessionID)

	var resp GenerateResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) Options(ctx context.Context) (*OptionsResponse, error) {
	var resp OptionsResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/options", nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) Ping(ctx context.Context) error {
	var resp struct {
		Message string `json:"message"`
	}

	return c.do(ctx, http.MethodGet, "/api/v1/ping", nil, &resp)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.Unmarshal(data, &errResp); err == nil && errResp.Error != "" {
			if errResp.Details != "" {
				return fmt.Errorf("%s: %s (%s)", errResp.Error, errResp.Message, errResp.Details)
			}
			return fmt.Errorf("%s: %s", errResp.Error, errResp.Message)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(data))
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}

// returns a tea.Cmd that runs a generation action
func (c *Client) GenerateCmd(action string, req GenerateRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		resp, err := c.Generate(ctx, action, req)
		if err != nil {
			return RequestErrorMsg{action: action, err: err}
		}

		return GenerateMsg{action: action, response: resp}
	}
}

func (c *Client) DocumentationCmd(sessionID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		resp, err := c.Documentation(ctx, sessionID)
		if err != nil {
			return RequestErrorMsg{action: "download", err: err}
		}

		return DocumentationMsg{response: resp}
	}
}

func (c *Client) OptionsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		resp, err := c.Options(ctx)
		if err != nil {
			return RequestErrorMsg{action: "options", err: err}
		}

		return OptionsMsg{options: resp}
	}
}

func (c *Client) PingCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := c.Ping(ctx); err != nil {
			return ErrorMsg{err: fmt.Errorf("server not reachable at %s: %w", c.endpoint, err)}
		}

		return ServerReachableMsg{endpoint: c.endpoint}
	}
}
