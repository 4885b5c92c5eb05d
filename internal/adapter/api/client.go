package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/edimundos/todo-interface/internal/core/domain"
	"github.com/edimundos/todo-interface/internal/core/ports"
)

// Client talks to the TaskMaster REST API. One method per endpoint, no
// retries, no caching; the controller decides what to do with failures.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ ports.TaskGateway = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	resp, err := c.do(ctx, http.MethodPost, "/login", "", credentialsPayload{
		Username: username,
		Password: password,
	})
	if err != nil {
		return "", err
	}
	defer drainAndClose(resp.Body)

	// The API answers login failures with a body lacking a token rather than
	// a meaningful status code.
	var body loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Token == "" {
		return "", domain.ErrInvalidCredentials
	}
	return body.Token, nil
}

func (c *Client) Register(ctx context.Context, username, password string) error {
	resp, err := c.do(ctx, http.MethodPost, "/register", "", credentialsPayload{
		Username: username,
		Password: password,
	})
	if err != nil {
		return err
	}
	defer drainAndClose(resp.Body)

	var body registerResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Message != "user created" {
		return fmt.Errorf("%w: %s", domain.ErrRegistrationRejected, body.Message)
	}
	return nil
}

func (c *Client) ListTasks(ctx context.Context, token string) ([]domain.Task, error) {
	resp, err := c.do(ctx, http.MethodGet, "/tasks", token, nil)
	if err != nil {
		return nil, err
	}
	defer drainAndClose(resp.Body)

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var items []taskItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, &domain.RequestError{Kind: domain.FailureServer, Status: resp.StatusCode, Err: err}
	}
	return mapTaskItemsToDomainTasks(items), nil
}

func (c *Client) CreateTask(ctx context.Context, token string, task domain.NewTask) error {
	resp, err := c.do(ctx, http.MethodPost, "/task", token, toNewTaskPayload(task))
	if err != nil {
		return err
	}
	defer drainAndClose(resp.Body)
	return checkStatus(resp)
}

func (c *Client) UpdateTask(ctx context.Context, token string, task domain.Task) error {
	resp, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/task/%d", task.ID), token, toTaskItem(task))
	if err != nil {
		return err
	}
	defer drainAndClose(resp.Body)
	return checkStatus(resp)
}

func (c *Client) DeleteTask(ctx context.Context, token string, id int64) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/task/%d", id), token, nil)
	if err != nil {
		return err
	}
	defer drainAndClose(resp.Body)
	return checkStatus(resp)
}

// do issues one request. A nil payload sends no body; a non-empty token is
// attached as a bearer credential. Transport failures come back as network
// RequestErrors, never as raw errors.
func (c *Client) do(ctx context.Context, method, path, token string, payload any) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, &domain.RequestError{Kind: domain.FailureNetwork, Err: err}
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, &domain.RequestError{Kind: domain.FailureNetwork, Err: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		zap.L().Debug("request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return nil, &domain.RequestError{Kind: domain.FailureNetwork, Err: err}
	}
	return resp, nil
}

func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	default:
		return &domain.RequestError{
			Kind:   domain.FailureServer,
			Status: resp.StatusCode,
			Err:    errors.New(http.StatusText(resp.StatusCode)),
		}
	}
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
