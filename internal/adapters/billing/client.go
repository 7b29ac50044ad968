// Package billing is the HTTP adapter for the billing system API.
package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/SscSPs/cylinder_holdings/internal/apperrors"
	portsbilling "github.com/SscSPs/cylinder_holdings/internal/core/ports/billing"
)

const cylinderCategory = "CYLINDERS"

// Client talks to the billing REST API with a static bearer token.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ portsbilling.Client = (*Client)(nil)

type listResponse[T any] struct {
	Data []T `json:"data"`
}

// NewClient builds a billing client for baseURL. apiKey is sent as a bearer token.
func NewClient(ctx context.Context, baseURL, apiKey string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("billing api url is empty")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("billing api key is empty")
	}
	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: apiKey, TokenType: "Bearer"}))
	httpClient.Timeout = timeout
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}, nil
}

func (c *Client) GetCustomer(ctx context.Context, accountCode string) (*portsbilling.CustomerRecord, error) {
	var record portsbilling.CustomerRecord
	if err := c.get(ctx, "/customers/"+url.PathEscape(accountCode), nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *Client) GetInvoice(ctx context.Context, number string) (*portsbilling.Invoice, error) {
	var invoice portsbilling.Invoice
	if err := c.get(ctx, "/invoices/"+url.PathEscape(number), nil, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (c *Client) GetInvoicesInRange(ctx context.Context, start, end time.Time, accountCode string) ([]portsbilling.Invoice, error) {
	params := url.Values{}
	params.Set("start_date", start.Format(time.DateOnly))
	params.Set("end_date", end.Format(time.DateOnly))
	if accountCode != "" {
		params.Set("account_code", accountCode)
	}
	var resp listResponse[portsbilling.Invoice]
	if err := c.get(ctx, "/invoices", params, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) ListCylinderItems(ctx context.Context) ([]portsbilling.Item, error) {
	params := url.Values{}
	params.Set("category", cylinderCategory)
	var resp listResponse[portsbilling.Item]
	if err := c.get(ctx, "/items", params, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint = endpoint + "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return apperrors.NewAppError(http.StatusBadGateway, "billing request failed", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: billing %s", apperrors.ErrNotFound, path)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return apperrors.NewAppError(http.StatusBadGateway,
			fmt.Sprintf("billing api error %d: %s", resp.StatusCode, strings.TrimSpace(string(body))), nil)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return apperrors.NewAppError(http.StatusBadGateway, "failed to decode billing response", err)
	}
	return nil
}
