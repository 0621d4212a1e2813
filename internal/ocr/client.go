// Package ocr implements port.TextRecognizer against an HTTP OCR service
// exposing a tesseract-style multipart endpoint.
package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/Theijiii/plms-sys-sub005/internal/config"
	"github.com/Theijiii/plms-sys-sub005/internal/domain"
	"github.com/Theijiii/plms-sys-sub005/internal/port"
)

// Client calls an external OCR service over HTTP.
type Client struct {
	endpoint string
	language string
	client   *http.Client
}

// NewClient creates an OCR client from config.
func NewClient(cfg *config.OCRConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		endpoint: cfg.Endpoint,
		language: cfg.Language,
		client:   &http.Client{Timeout: timeout},
	}
}

// NewClientWithEndpoint creates a client pointing at a custom endpoint (for testing).
func NewClientWithEndpoint(endpoint, language string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		language: language,
		client:   &http.Client{Timeout: timeout},
	}
}

// recognizeResponse models the OCR service response body.
type recognizeResponse struct {
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}

// Recognize submits the document image and returns the extracted text.
// All failures are reported as domain.ErrRecognitionFailed so callers can
// record the attempt without guessing at transport details.
func (c *Client) Recognize(ctx context.Context, input port.RecognizeInput) (*port.RecognizeOutput, error) {
	report := input.Progress
	if report == nil {
		report = func(int) {}
	}
	report(0)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", "document")
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", domain.ErrRecognitionFailed, err)
	}
	if _, err := part.Write(input.Bytes); err != nil {
		return nil, fmt.Errorf("%w: writing file part: %v", domain.ErrRecognitionFailed, err)
	}
	if c.language != "" {
		if err := writer.WriteField("language", c.language); err != nil {
			return nil, fmt.Errorf("%w: writing language field: %v", domain.ErrRecognitionFailed, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("%w: closing multipart body: %v", domain.ErrRecognitionFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", domain.ErrRecognitionFailed, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: calling OCR service: %v", domain.ErrRecognitionFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", domain.ErrRecognitionFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: OCR service returned status %d: %s",
			domain.ErrRecognitionFailed, resp.StatusCode, string(respBody))
	}

	var parsed recognizeResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", domain.ErrRecognitionFailed, err)
	}
	if parsed.Error != "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrRecognitionFailed, parsed.Error)
	}

	report(100)
	return &port.RecognizeOutput{Text: parsed.Text}, nil
}
