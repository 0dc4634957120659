// Package client talks to the task API over HTTP. *Client satisfies
// board.Repository.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	log "github.com/sirupsen/logrus"

	"task-tracker.com/task-tracker/internal/constants"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/pkg/models"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL string
	token   string
	http    *http.Client

	timeout    time.Duration
	hasTimeout bool
}

type Option func(*Client)

// WithHTTPClient sends requests through hc. hc itself is never modified.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds each request. It applies regardless of option order.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
		c.hasTimeout = true
	}
}

func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
	}
	for _, opt := range opts {
		opt(c)
	}

	switch {
	case c.http == nil:
		timeout := defaultTimeout
		if c.hasTimeout {
			timeout = c.timeout
		}
		c.http = &http.Client{Timeout: timeout}
	case c.hasTimeout:
		owned := *c.http
		owned.Timeout = c.timeout
		c.http = &owned
	}

	return c
}

// List fetches tasks, optionally narrowed to one status.
func (c *Client) List(ctx context.Context, status *constants.TaskStatus) ([]model.Task, error) {
	path := "/tasks"
	if status != nil {
		path += "?status=" + url.QueryEscape(string(*status))
	}

	var tasks []model.Task
	if err := c.do(ctx, http.MethodGet, path, nil, &tasks, "Failed to fetch tasks"); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

func (c *Client) Get(ctx context.Context, id string) (*model.Task, error) {
	if id == "" {
		return nil, apperrors.ErrTaskIDRequired
	}

	var task model.Task
	if err := c.do(ctx, http.MethodGet, "/tasks/"+url.PathEscape(id), nil, &task, "Failed to fetch task"); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) Create(ctx context.Context, data model.CreateTaskData) (*model.Task, error) {
	if strings.TrimSpace(data.Title) == "" {
		return nil, apperrors.ErrTitleRequired
	}

	var task model.Task
	err := c.do(ctx, http.MethodPost, "/tasks/create", data, &task, "Failed to create task")
	if err != nil {
		if apperrors.StatusCode(err) == http.StatusTooManyRequests {
			return nil, apperrors.ErrTooManyCreations
		}
		return nil, err
	}
	return &task, nil
}

func (c *Client) Update(ctx context.Context, id string, data model.UpdateTaskData) (*model.Task, error) {
	if id == "" {
		return nil, apperrors.ErrTaskIDRequired
	}

	var task model.Task
	if err := c.do(ctx, http.MethodPut, "/tasks/"+url.PathEscape(id), data, &task, "Failed to update task"); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) Delete(ctx context.Context, id string) (model.DeleteResult, error) {
	if id == "" {
		return model.DeleteResult{}, apperrors.ErrTaskIDRequired
	}

	var res model.DeleteResult
	if err := c.do(ctx, http.MethodDelete, "/tasks/"+url.PathEscape(id), nil, &res, "Failed to delete task"); err != nil {
		return model.DeleteResult{}, err
	}
	return res, nil
}

type errorBody struct {
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, in, out any, fallback string) error {
	var body io.Reader
	if in != nil {
		buf, err := sonic.Marshal(in)
		if err != nil {
			return apperrors.New(apperrors.KindUnknown, fallback)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return apperrors.New(apperrors.KindUnknown, fallback)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{"method": method, "path": path}).Warn("task api request failed")
		return apperrors.New(apperrors.KindUnknown, fallback)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.New(apperrors.KindUnknown, fallback)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var eb errorBody
		_ = sonic.Unmarshal(raw, &eb)
		log.WithFields(log.Fields{"method": method, "path": path, "status": resp.StatusCode}).Debug("task api returned error")
		return apperrors.FromStatus(resp.StatusCode, eb.Message, fallback)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := sonic.Unmarshal(raw, out); err != nil {
		return apperrors.New(apperrors.KindUnknown, fmt.Sprintf("%s: unexpected response", fallback))
	}
	return nil
}
