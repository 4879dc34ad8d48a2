package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/angelmondragon/salesbridge/pkg/errors"
	"github.com/angelmondragon/salesbridge/pkg/logger"
)

const defaultHTTPTimeout = 10 * time.Second

// ProductID normalizes the upstream identifier, which some deployments emit
// as a JSON number and others as a string.
type ProductID string

func (p *ProductID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = ProductID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("product id must be a string or number: %w", err)
	}
	*p = ProductID(n.String())
	return nil
}

// RawProduct mirrors one object of the products API response. Extra fields
// in the payload are ignored.
type RawProduct struct {
	ID    ProductID       `json:"id"`
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
}

// APIExtractor performs the single GET against the in-store products API.
type APIExtractor struct {
	httpClient *http.Client
	log        *logger.Logger
}

// APIOption configures optional extractor behavior.
type APIOption func(*APIExtractor)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) APIOption {
	return func(e *APIExtractor) {
		if client != nil {
			e.httpClient = client
		}
	}
}

// NewAPIExtractor builds the API-side extractor. The timeout bounds the one
// attempt; there is no retry.
func NewAPIExtractor(logg *logger.Logger, timeout time.Duration, opts ...APIOption) *APIExtractor {
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	e := &APIExtractor{
		httpClient: &http.Client{Timeout: timeout},
		log:        logg,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Extract fetches the product list once. Any transport error or non-success
// status is reported and yields an absent result; the run continues without
// this source.
func (e *APIExtractor) Extract(ctx context.Context, url string) Result[RawProduct] {
	ctx = e.log.WithSource(ctx, "in-store_api")
	ctx = e.log.WithField(ctx, "url", url)
	e.log.Info(ctx, "fetching products from api")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		failure := pkgerrors.Wrap(pkgerrors.CodeSourceUnreachable, err, "building products request")
		e.log.Error(ctx, "failed to build products request", err)
		return Fail[RawProduct](failure)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		failure := pkgerrors.Wrap(pkgerrors.CodeSourceUnreachable, err, fmt.Sprintf("fetching products from %s", url))
		e.log.Warn(e.log.WithField(ctx, "code", failure.Code()), "products api unreachable, continuing without it")
		return Fail[RawProduct](failure)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		failure := pkgerrors.New(pkgerrors.CodeSourceUnreachable, fmt.Sprintf("products api returned status %d", resp.StatusCode))
		e.log.Warn(e.log.WithField(ctx, "status", resp.StatusCode), "products api returned non-success status")
		return Fail[RawProduct](failure)
	}

	var products []RawProduct
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		failure := pkgerrors.Wrap(pkgerrors.CodeBadRecord, err, "decoding products response")
		e.log.Error(ctx, "failed to decode products response", err)
		return Fail[RawProduct](failure)
	}

	e.log.Info(e.log.WithField(ctx, "rows", len(products)), "products extracted")
	return Ok(products)
}
