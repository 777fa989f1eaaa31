// Package viacep provides an AddressLookup implementation backed by the
// public ViaCEP postal code service.
package viacep

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/ports"
	"rental/internal/pkg/errs"

	"golang.org/x/time/rate"
)

const (
	defaultTimeout = 5 * time.Second

	// ViaCEP is a public service; keep our request rate polite.
	defaultRequestsPerSecond = 10
)

// Client resolves Brazilian postal codes to addresses using the ViaCEP API.
// Requests are throttled to avoid hammering the public service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// response mirrors the ViaCEP JSON payload. The service reports an unknown
// postal code with {"erro": true} instead of a non-200 status.
type response struct {
	CEP        string `json:"cep"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	Erro       bool   `json:"erro"`
}

// NewClient creates a ViaCEP client for the given base URL,
// e.g. "https://viacep.com.br".
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(defaultRequestsPerSecond), defaultRequestsPerSecond),
	}, nil
}

// Lookup resolves a postal code to an address.
// Returns ports.ErrAddressNotFound when the service does not know the code.
func (c *Client) Lookup(ctx context.Context, postalCode string) (kernel.Address, error) {
	if postalCode == "" {
		return kernel.Address{}, errs.NewValueIsRequiredError("postalCode")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return kernel.Address{}, err
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, postalCode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return kernel.Address{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return kernel.Address{}, err
	}
	defer resp.Body.Close()

	// ViaCEP answers 400 for malformed codes and 200 for everything else.
	if resp.StatusCode == http.StatusBadRequest {
		return kernel.Address{}, errs.NewValueIsInvalidError("postalCode")
	}
	if resp.StatusCode != http.StatusOK {
		return kernel.Address{}, fmt.Errorf("viacep: unexpected status %d", resp.StatusCode)
	}

	var body response
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return kernel.Address{}, err
	}
	if body.Erro {
		return kernel.Address{}, ports.ErrAddressNotFound
	}

	return kernel.NewAddress(body.CEP, body.Localidade, body.UF)
}
