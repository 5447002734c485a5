package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	defaultBaseURL = "https://api.notion.com/v1"
	apiVersion     = "2022-06-28"
	clientTimeout  = 30 * time.Second
)

// Client talks to the Notion API on behalf of one integration token.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// ChildrenPage is one page of a block-children listing.
type ChildrenPage struct {
	Results    []Block `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor string  `json:"next_cursor"`
}

// APIError is a non-2xx response from the Notion API.
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("notion API error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("notion API error %d: %s", e.StatusCode, e.Message)
}

// NewClient creates a Notion API client.
func NewClient(token string) *Client {
	return &Client{
		token:   token,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: clientTimeout,
		},
	}
}

// SetBaseURL overrides the API endpoint, for tests.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// RetrievePage fetches the page object for pageID.
func (c *Client) RetrievePage(ctx context.Context, pageID string) (Block, error) {
	var page Block
	if err := c.do(ctx, http.MethodGet, "/pages/"+pageID, nil, &page); err != nil {
		return nil, fmt.Errorf("failed to retrieve page %s: %w", pageID, err)
	}
	return page, nil
}

// ListChildren fetches one page of blockID's direct children. cursor is
// empty for the first page; pageSize is capped at 100 by the API.
func (c *Client) ListChildren(ctx context.Context, blockID, cursor string, pageSize int) (*ChildrenPage, error) {
	params := url.Values{}
	params.Set("page_size", strconv.Itoa(pageSize))
	if cursor != "" {
		params.Set("start_cursor", cursor)
	}

	var page ChildrenPage
	path := "/blocks/" + blockID + "/children?" + params.Encode()
	if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, fmt.Errorf("failed to list children of %s: %w", blockID, err)
	}
	return &page, nil
}

// CreatePage submits page to the page-creation endpoint and returns the
// created page object, which carries a fresh id and url.
func (c *Client) CreatePage(ctx context.Context, page Block) (Block, error) {
	var created Block
	if err := c.do(ctx, http.MethodPost, "/pages", page, &created); err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	return created, nil
}

// AppendChildren appends children to blockID. The API caps one call at
// 100 blocks; callers batch well below that.
func (c *Client) AppendChildren(ctx context.Context, blockID string, children []Block) (*ChildrenPage, error) {
	body := map[string]any{"children": children}
	var appended ChildrenPage
	if err := c.do(ctx, http.MethodPatch, "/blocks/"+blockID+"/children", body, &appended); err != nil {
		return nil, fmt.Errorf("failed to append children to %s: %w", blockID, err)
	}
	return &appended, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", apiVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		raw, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(raw, apiErr); err != nil {
			apiErr.Message = string(raw)
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
