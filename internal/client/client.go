// Package client talks to a running NibbleCheck server over HTTP.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/frankasd12/NibbleCheck/internal/catalog"
	"github.com/frankasd12/NibbleCheck/internal/service"
	"github.com/go-resty/resty/v2"
)

// ErrBadRequest is returned when the server rejects the input.
var ErrBadRequest = errors.New("bad request")

type apiError struct {
	Error string `json:"error"`
}

// Client is a thin wrapper over the JSON API.
type Client struct {
	http *resty.Client
}

// New returns a client for the server at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
	}
}

func (c *Client) Resolve(ctx context.Context, text string) (service.Resolution, error) {
	var out service.Resolution
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"text": text}).
		SetResult(&out).
		SetError(&apiError{}).
		Post("/ingredients/resolve")
	if err := check(resp, err); err != nil {
		return service.Resolution{}, err
	}
	return out, nil
}

func (c *Client) Search(ctx context.Context, query string, limit int) (service.SearchResult, error) {
	var out service.SearchResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("q", query).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&out).
		SetError(&apiError{}).
		Get("/search")
	if err := check(resp, err); err != nil {
		return service.SearchResult{}, err
	}
	return out, nil
}

func (c *Client) Food(ctx context.Context, id int64) (catalog.Food, error) {
	var out catalog.Food
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&out).
		SetError(&apiError{}).
		Get("/foods/{id}")
	if err := check(resp, err); err != nil {
		return catalog.Food{}, err
	}
	return out, nil
}

// check turns transport failures and non-2xx replies into errors that match
// the server-side sentinels.
func check(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %w", catalog.ErrUnavailable, err)
	}
	if !resp.IsError() {
		return nil
	}
	msg := resp.Status()
	if e, ok := resp.Error().(*apiError); ok && e.Error != "" {
		msg = e.Error
	}
	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", catalog.ErrNotFound, msg)
	default:
		return fmt.Errorf("%w: server returned %d: %s", catalog.ErrUnavailable, resp.StatusCode(), msg)
	}
}
