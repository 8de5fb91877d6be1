package bilibili

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/bilihot/bilihot/constant"
	"github.com/bilihot/bilihot/log"
	"github.com/bilihot/bilihot/util"
	"github.com/samber/lo"
	logrus "github.com/sirupsen/logrus"
)

// Param is one query parameter. Feeds keep them ordered so the request line
// matches what the site's own frontend sends.
type Param struct {
	Key   string
	Value string
}

// Fetcher performs a single GET and returns the JSON body.
type Fetcher interface {
	Fetch(ctx context.Context, endpoint string, params []Param) ([]byte, error)
}

// Client is the HTTP Fetcher. It never retries.
type Client struct {
	httpClient *http.Client
	headers    map[string]string
}

// NewClient wraps httpClient, which carries the timeout and cookie jar.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: constant.RequestTimeout}
	}
	return &Client{
		httpClient: httpClient,
		headers: map[string]string{
			"User-Agent": constant.UserAgent,
			"Referer":    constant.Referer,
			"Accept":     "application/json",
		},
	}
}

// Fetch issues exactly one request and classifies failures as
// *NetworkError, *HTTPError or *DecodeError.
func (c *Client) Fetch(ctx context.Context, endpoint string, params []Param) ([]byte, error) {
	reqURL := endpoint
	if len(params) > 0 {
		reqURL += "?" + encodeParams(params)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &NetworkError{URL: reqURL, Err: err}
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	entry := log.WithFields(logrus.Fields{"url": reqURL})
	entry.Debug("fetching")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: reqURL, Err: err}
	}
	defer util.Ignore(resp.Body.Close)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{URL: reqURL, Err: err}
	}

	entry.WithField("status", resp.StatusCode).Debug("fetched")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{URL: reqURL, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var probe json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, &DecodeError{URL: reqURL, Err: err}
	}

	return body, nil
}

func encodeParams(params []Param) string {
	return strings.Join(lo.Map(params, func(p Param, _ int) string {
		return url.QueryEscape(p.Key) + "=" + url.QueryEscape(p.Value)
	}), "&")
}
