// Package docuseal sends contract templates out for e-signature through the
// DocuSeal API.
package docuseal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"ispbilling/internal/domain/contract"
)

const (
	DefaultBaseURL = "https://api.docuseal.com"
	authHeader     = "X-Auth-Token"
	maxErrorBody   = 4 << 10
)

var (
	ErrUnavailable = errors.New("docuseal unavailable")
	ErrRejected    = errors.New("docuseal rejected request")
)

type Config struct {
	BaseURL  string
	APIToken string
	Timeout  time.Duration
}

type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

var _ contract.SubmissionSender = (*Client)(nil)

func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiToken:   cfg.APIToken,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type submitter struct {
	Email string `json:"email"`
}

type createSubmissionRequest struct {
	TemplateID int64       `json:"template_id"`
	SendEmail  bool        `json:"send_email"`
	Submitters []submitter `json:"submitters"`
}

type submitterResponse struct {
	ID           int64  `json:"id"`
	SubmissionID int64  `json:"submission_id"`
	Email        string `json:"email"`
	Status       string `json:"status"`
}

// SendSubmission creates a submission for the template with one signer and
// lets DocuSeal email the signing link. It is not retried: a repeated POST
// would send a second email.
func (c *Client) SendSubmission(ctx context.Context, templateID, signerEmail string) (string, error) {
	id, err := strconv.ParseInt(templateID, 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: template id %q", ErrRejected, templateID)
	}

	body, err := json.Marshal(createSubmissionRequest{
		TemplateID: id,
		SendEmail:  true,
		Submitters: []submitter{{Email: signerEmail}},
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/submissions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set(authHeader, c.apiToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return "", fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, readBody(resp))
	default:
		return "", fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, readBody(resp))
	}

	var submitters []submitterResponse
	if err := json.NewDecoder(resp.Body).Decode(&submitters); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(submitters) == 0 || submitters[0].SubmissionID == 0 {
		return "", fmt.Errorf("%w: response carries no submission", ErrRejected)
	}
	return strconv.FormatInt(submitters[0].SubmissionID, 10), nil
}

func readBody(resp *http.Response) string {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return string(b)
}
