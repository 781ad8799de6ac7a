// Package client is the data-access layer frontends use to talk to the
// catalog API. Read helpers degrade to empty results on transport failure
// so a page can still render; writes surface their errors.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

const defaultBaseURL = "http://localhost:8080"

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

type Option func(*Client)

// WithToken attaches a bearer token to every request. Needed only for the
// admin write endpoints when the server has auth configured.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// New builds a client against baseURL. An empty baseURL falls back to
// TOOLSHUB_API_BASE_URL, then to localhost.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = os.Getenv("TOOLSHUB_API_BASE_URL")
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *string         `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) (int, error) {
	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}

	if !env.Success {
		msg := "request failed"
		if env.Error != nil {
			msg = *env.Error
		}
		return resp.StatusCode, fmt.Errorf("%s: %s", http.StatusText(resp.StatusCode), msg)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode data: %w", err)
		}
	}

	return resp.StatusCode, nil
}

// Tools returns the full catalog, newest first. Failures log and return an
// empty slice.
func (c *Client) Tools(ctx context.Context) []*Tool {
	var tools []*Tool
	if _, err := c.do(ctx, http.MethodGet, "/api/tools", nil, &tools); err != nil {
		log.Printf("client: list tools: %v", err)
		return []*Tool{}
	}
	return tools
}

// FeaturedTools returns the landing-page picks. Failures log and return an
// empty slice.
func (c *Client) FeaturedTools(ctx context.Context) []*Tool {
	var tools []*Tool
	if _, err := c.do(ctx, http.MethodGet, "/api/tools/featured", nil, &tools); err != nil {
		log.Printf("client: featured tools: %v", err)
		return []*Tool{}
	}
	return tools
}

// ToolBySlug returns nil for an unknown slug so callers can render a
// not-found page without unwrapping an error.
func (c *Client) ToolBySlug(ctx context.Context, slug string) *Tool {
	var tool Tool
	status, err := c.do(ctx, http.MethodGet, "/api/tools/"+slug, nil, &tool)
	if err != nil {
		if status != http.StatusNotFound {
			log.Printf("client: tool %q: %v", slug, err)
		}
		return nil
	}
	return &tool
}

func (c *Client) RelatedTools(ctx context.Context, slug string) []*Tool {
	var tools []*Tool
	if _, err := c.do(ctx, http.MethodGet, "/api/tools/"+slug+"/related", nil, &tools); err != nil {
		log.Printf("client: related tools for %q: %v", slug, err)
		return []*Tool{}
	}
	return tools
}

func (c *Client) Categories(ctx context.Context) []*Category {
	var categories []*Category
	if _, err := c.do(ctx, http.MethodGet, "/api/categories", nil, &categories); err != nil {
		log.Printf("client: list categories: %v", err)
		return []*Category{}
	}
	return categories
}

func (c *Client) CategoryBySlug(ctx context.Context, slug string) *Category {
	var category Category
	status, err := c.do(ctx, http.MethodGet, "/api/categories/"+slug, nil, &category)
	if err != nil {
		if status != http.StatusNotFound {
			log.Printf("client: category %q: %v", slug, err)
		}
		return nil
	}
	return &category
}

func (c *Client) CategoryTools(ctx context.Context, slug string) []*Tool {
	var tools []*Tool
	if _, err := c.do(ctx, http.MethodGet, "/api/categories/"+slug+"/tools", nil, &tools); err != nil {
		log.Printf("client: tools for category %q: %v", slug, err)
		return []*Tool{}
	}
	return tools
}

func (c *Client) Comments(ctx context.Context) []*Comment {
	var comments []*Comment
	if _, err := c.do(ctx, http.MethodGet, "/api/comments", nil, &comments); err != nil {
		log.Printf("client: list comments: %v", err)
		return []*Comment{}
	}
	return comments
}

func (c *Client) ToolComments(ctx context.Context, slug string) []*Comment {
	var comments []*Comment
	if _, err := c.do(ctx, http.MethodGet, "/api/tools/"+slug+"/comments", nil, &comments); err != nil {
		log.Printf("client: comments for %q: %v", slug, err)
		return []*Comment{}
	}
	return comments
}

// AddTool submits a new catalog entry. Unlike the read helpers it returns
// the error so forms can show what went wrong.
func (c *Client) AddTool(ctx context.Context, req AddToolRequest) (*Tool, error) {
	var tool Tool
	if _, err := c.do(ctx, http.MethodPost, "/api/tools/add", req, &tool); err != nil {
		return nil, err
	}
	return &tool, nil
}

func (c *Client) AddCategory(ctx context.Context, req AddCategoryRequest) (*Category, error) {
	var category Category
	if _, err := c.do(ctx, http.MethodPost, "/api/categories/add", req, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) AddComment(ctx context.Context, toolSlug string, req AddCommentRequest) (*Comment, error) {
	var comment Comment
	if _, err := c.do(ctx, http.MethodPost, "/api/tools/"+toolSlug+"/comments", req, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// SignIn exchanges admin credentials for a token and stores it on the
// client for subsequent writes.
func (c *Client) SignIn(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}
	var resp struct {
		Token string `json:"token"`
	}
	if _, err := c.do(ctx, http.MethodPost, "/api/auth/signin", body, &resp); err != nil {
		return err
	}
	c.token = resp.Token
	return nil
}
