// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/utils"
)

// restPath is the PostgREST mount point of every Supabase project.
const restPath = "/rest/v1"

// restClient is the PostgREST implementation of [TableClient]. It holds a
// single resty client configured with the project URL, API key headers, and
// the outbound call timeout. Safe for concurrent use: all state is read-only
// after construction.
type restClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewRestClient constructs a [TableClient] speaking the PostgREST wire
// protocol of the configured Supabase project.
//
// It normalises and validates the base URL from cfg.SupabaseURL, mounts the
// "/rest/v1" prefix, applies cfg.RequestTimeout to every outbound call, and
// attaches the project API key as both the "apikey" and bearer
// "Authorization" headers, as the Supabase gateway expects.
//
// Returns an error if cfg.SupabaseURL is empty or cannot be parsed as a
// valid URL.
func NewRestClient(cfg config.Store, logger *logger.Logger) (TableClient, error) {
	baseURL, err := normalizeBaseURL(cfg.SupabaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid store url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL + restPath).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("apikey", cfg.SupabaseKey).
		SetHeader("Authorization", "Bearer "+cfg.SupabaseKey)

	return &restClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Select implements [TableClient]. It GETs /{table}?select=* with every
// filter rendered as an equality condition (col=eq.value) and decodes the
// matched rows into dest. An empty result set is not an error for Select:
// the decoded slice is simply empty.
func (c *restClient) Select(ctx context.Context, table string, filters map[string]string, dest any) error {
	req := c.client.R().
		SetContext(ctx).
		SetQueryParam("select", "*")

	// stable order keeps request URLs reproducible in logs and tests
	for _, col := range sortedKeys(filters) {
		req.SetQueryParam(col, "eq."+filters[col])
	}

	resp, err := req.Get("/" + table)
	if err != nil {
		return fmt.Errorf("%w: select %s: %v", ErrStoreUnavailable, table, err)
	}

	return c.decodeRows(resp, table, dest)
}

// Insert implements [TableClient]. It POSTs record to /{table} with
// "Prefer: return=representation" so the store answers with the stored rows
// (including assigned ids), which are decoded into dest.
func (c *restClient) Insert(ctx context.Context, table string, record, dest any) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "return=representation").
		SetBody(record).
		Post("/" + table)
	if err != nil {
		return fmt.Errorf("%w: insert %s: %v", ErrStoreUnavailable, table, err)
	}

	return c.decodeRows(resp, table, dest)
}

// Update implements [TableClient]. It PATCHes the non-nil fields of partial
// to /{table}?id=eq.{id} and decodes the updated rows into dest. The caller
// is responsible for treating zero decoded rows as not-found.
func (c *restClient) Update(ctx context.Context, table, id string, partial, dest any) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "return=representation").
		SetQueryParam("id", "eq."+id).
		SetBody(partial).
		Patch("/" + table)
	if err != nil {
		return fmt.Errorf("%w: update %s: %v", ErrStoreUnavailable, table, err)
	}

	return c.decodeRows(resp, table, dest)
}

// Delete implements [TableClient]. It DELETEs /{table}?id=eq.{id} and
// decodes the deleted rows into dest. The caller is responsible for treating
// zero decoded rows as not-found.
func (c *restClient) Delete(ctx context.Context, table, id string, dest any) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetQueryParam("id", "eq."+id).
		Delete("/" + table)
	if err != nil {
		return fmt.Errorf("%w: delete %s: %v", ErrStoreUnavailable, table, err)
	}

	return c.decodeRows(resp, table, dest)
}

// decodeRows maps the store response onto the sentinel error taxonomy and
// decodes the row payload into dest on success.
func (c *restClient) decodeRows(resp *resty.Response, table string, dest any) error {
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		body := strings.TrimSpace(string(resp.Body()))
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: %s: http %d: %s", ErrStoreRejected, table, resp.StatusCode(), body)
	}

	if len(resp.Body()) == 0 {
		// PostgREST sends an empty body instead of [] on some write paths
		return nil
	}

	if err := json.Unmarshal(resp.Body(), dest); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDecodingResponse, table, err)
	}

	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
