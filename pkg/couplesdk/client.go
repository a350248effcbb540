package couplesdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"
)

// Client is a minimal HTTP client for the secondate API. It keeps the session
// cookie issued by signup/login in an in-memory jar, like a browser would.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the given base URL (e.g.
// "http://localhost:4000").
func NewClient(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Jar:     jar,
			Timeout: 10 * time.Second,
		},
	}, nil
}

func (c *Client) Signup(ctx context.Context, req SignupRequest) (AuthResponse, error) {
	var resp AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/signup", req, &resp)
	return resp, err
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	var resp AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &resp)
	return resp, err
}

func (c *Client) Logout(ctx context.Context) error {
	var resp OKResponse
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, &resp)
}

func (c *Client) Me(ctx context.Context) (MeResponse, error) {
	var resp MeResponse
	err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &resp)
	return resp, err
}

func (c *Client) SaveAnswers(ctx context.Context, answers map[string]string) error {
	var resp OKResponse
	return c.do(ctx, http.MethodPost, "/api/answers/save-answers",
		SaveAnswersRequest{Answers: answers}, &resp)
}

func (c *Client) GetAnswers(ctx context.Context) (GetAnswersResponse, error) {
	var resp GetAnswersResponse
	err := c.do(ctx, http.MethodGet, "/api/answers/get-answers", nil, &resp)
	return resp, err
}

func (c *Client) CreateInvite(ctx context.Context) (CreateInviteResponse, error) {
	var resp CreateInviteResponse
	err := c.do(ctx, http.MethodPost, "/api/couple/invite", nil, &resp)
	return resp, err
}

func (c *Client) GetInvite(ctx context.Context, inviteKey string) (GetInviteResponse, error) {
	var resp GetInviteResponse
	err := c.do(ctx, http.MethodGet, "/api/couple/"+url.PathEscape(inviteKey), nil, &resp)
	return resp, err
}

func (c *Client) CompleteInvite(ctx context.Context, inviteKey string, req CompleteInviteRequest) (CompleteInviteResponse, error) {
	var resp CompleteInviteResponse
	err := c.do(ctx, http.MethodPost,
		"/api/couple/"+url.PathEscape(inviteKey)+"/complete", req, &resp)
	return resp, err
}

func (c *Client) LinkAccount(ctx context.Context, inviteKey string) (LinkAccountResponse, error) {
	var resp LinkAccountResponse
	err := c.do(ctx, http.MethodPost, "/api/couple/link-account",
		LinkAccountRequest{InviteKey: inviteKey}, &resp)
	return resp, err
}

func (c *Client) GetResult(ctx context.Context, inviteKey string) (ResultResponse, error) {
	var resp ResultResponse
	err := c.do(ctx, http.MethodGet,
		"/api/couple/"+url.PathEscape(inviteKey)+"/result", nil, &resp)
	return resp, err
}

func (c *Client) MyInvites(ctx context.Context) (MyInvitesResponse, error) {
	var resp MyInvitesResponse
	err := c.do(ctx, http.MethodGet, "/api/couple/myInvites", nil, &resp)
	return resp, err
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
