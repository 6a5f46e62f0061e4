package strapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"do-coupon-system/internal/pkg/config"
	"do-coupon-system/internal/pkg/errs"
)

const maxPageSize = 100

// Error is the error envelope returned by the CMS.
type Error struct {
	Status  int    `json:"status"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("strapi %d %s: %s", e.Status, e.Name, e.Message)
}

// StatusOf returns the CMS status carried by err, or 0.
func StatusOf(err error) int {
	var e *Error
	if errs.As(err, &e) {
		return e.Status
	}
	return 0
}

type Filter struct {
	Field    string
	Operator string
	Value    string
}

func Eq(field, value string) Filter {
	return Filter{Field: field, Operator: "$eq", Value: value}
}

type Query struct {
	Filters  []Filter
	Populate []string
	Page     int
	PageSize int
}

func (q Query) values() url.Values {
	v := url.Values{}
	for _, f := range q.Filters {
		v.Add(fmt.Sprintf("filters[%s][%s]", f.Field, f.Operator), f.Value)
	}
	for i, p := range q.Populate {
		v.Add(fmt.Sprintf("populate[%d]", i), p)
	}
	if q.Page > 0 {
		v.Set("pagination[page]", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		v.Set("pagination[pageSize]", strconv.Itoa(q.PageSize))
	}
	return v
}

type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

type meta struct {
	Pagination *Pagination `json:"pagination"`
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  meta            `json:"meta"`
	Error *Error          `json:"error"`
}

// Client talks to the Strapi v5 REST API with a bearer token.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(cfg config.StoreConfig) *Client {
	return NewClientWithHTTP(cfg, &http.Client{Timeout: cfg.Timeout})
}

func NewClientWithHTTP(cfg config.StoreConfig, hc *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		http:    hc,
	}
}

// Find decodes one page of matching records into out, which must point to a slice.
func (c *Client) Find(ctx context.Context, collection string, q Query, out any) (*Pagination, error) {
	env, err := c.do(ctx, http.MethodGet, c.url(collection, "", q.values()), nil)
	if err != nil {
		return nil, err
	}
	if err := decodeData(env.Data, out); err != nil {
		return nil, err
	}
	return env.Meta.Pagination, nil
}

// FindAll walks every page of matching records.
func FindAll[T any](ctx context.Context, c *Client, collection string, q Query) ([]T, error) {
	q.PageSize = maxPageSize
	var all []T
	for page := 1; ; page++ {
		q.Page = page
		var batch []T
		p, err := c.Find(ctx, collection, q, &batch)
		if err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if p == nil || page >= p.PageCount || len(batch) == 0 {
			return all, nil
		}
	}
}

func (c *Client) Create(ctx context.Context, collection string, data any, out any) error {
	env, err := c.do(ctx, http.MethodPost, c.url(collection, "", nil), map[string]any{"data": data})
	if err != nil {
		return err
	}
	return decodeData(env.Data, out)
}

func (c *Client) Update(ctx context.Context, collection, documentID string, data any, out any) error {
	env, err := c.do(ctx, http.MethodPut, c.url(collection, documentID, nil), map[string]any{"data": data})
	if err != nil {
		return err
	}
	return decodeData(env.Data, out)
}

func (c *Client) url(collection, documentID string, v url.Values) string {
	u := c.baseURL + "/" + url.PathEscape(collection)
	if documentID != "" {
		u += "/" + url.PathEscape(strings.TrimSpace(documentID))
	}
	if len(v) > 0 {
		u += "?" + v.Encode()
	}
	return u
}

func (c *Client) do(ctx context.Context, method, target string, body any) (*envelope, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, errs.Wrap(err, "encode request body")
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, rd)
	if err != nil {
		return nil, errs.Wrap(err, "create request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Wrapf(err, "%s %s", method, req.URL.Path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Wrap(err, "read response body")
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil && resp.StatusCode < 300 {
			return nil, errs.Wrap(err, "decode response body")
		}
	}

	if resp.StatusCode >= 300 {
		e := env.Error
		if e == nil {
			e = &Error{Name: http.StatusText(resp.StatusCode), Message: strings.TrimSpace(string(raw))}
		}
		e.Status = resp.StatusCode
		return nil, e
	}
	return &env, nil
}

func decodeData(data json.RawMessage, out any) error {
	if out == nil || len(data) == 0 || string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errs.Wrap(err, "decode data")
	}
	return nil
}
