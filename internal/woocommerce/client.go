package woocommerce

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-faster/errors"
)

// Endpoint paths relative to the project URL.
const (
	StoreAPIPath = "wp-json/wc/v3"
	UsersAPIPath = "wp-json/wp/v2/users"
	TokenAPIPath = "wp-json/jwt-auth/v1/token"
)

// Response headers carrying pagination totals.
const (
	HeaderTotal      = "X-WP-Total"
	HeaderTotalPages = "X-WP-TotalPages"
)

// DefaultTimeout bounds every HTTP call.
const DefaultTimeout = 30 * time.Second

// Options configures a Client.
type Options struct {
	// ProjectURL is the WordPress site root, e.g. https://shop.example.com/
	ProjectURL     string
	ConsumerKey    string
	ConsumerSecret string

	// Registration credentials authorize user creation on /wp/v2/users.
	// When empty, RegisterUser fails with ErrRegistrationDisabled.
	RegistrationUser     string
	RegistrationPassword string

	// HTTPClient overrides the default client; Timeout is ignored when set.
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client calls the shop's REST API.
type Client struct {
	http       *http.Client
	signer     *Signer
	storeURL   string
	usersURL   string
	tokenURL   string
	regUser    string
	regPass    string
	projectURL string
}

// New creates a Client. Missing configuration is tolerated: requests are then
// made against empty URLs and fail at call time.
func New(opts Options) *Client {
	projectURL := strings.TrimSpace(opts.ProjectURL)
	if projectURL != "" && !strings.HasSuffix(projectURL, "/") {
		projectURL += "/"
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		http:       httpClient,
		signer:     NewSigner(opts.ConsumerKey, opts.ConsumerSecret),
		storeURL:   projectURL + StoreAPIPath,
		usersURL:   projectURL + UsersAPIPath,
		tokenURL:   projectURL + TokenAPIPath,
		regUser:    opts.RegistrationUser,
		regPass:    opts.RegistrationPassword,
		projectURL: projectURL,
	}
}

// Signer exposes the request signer, mainly to pin its clock in tests.
func (c *Client) Signer() *Signer {
	return c.signer
}

// ProjectURL returns the normalized project URL.
func (c *Client) ProjectURL() string {
	return c.projectURL
}

// getSigned issues a GET against the store API with OAuth query parameters.
func (c *Client) getSigned(ctx context.Context, path string, query map[string]string, dst any) (http.Header, error) {
	endpoint := c.storeURL + path
	params := c.signer.Sign(endpoint, http.MethodGet, query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Query().Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	return c.do(req, dst)
}

// sendSigned issues a write against the store API with an OAuth Authorization header.
func (c *Client) sendSigned(ctx context.Context, method, path string, body, dst any) error {
	endpoint := c.storeURL + path
	params := c.signer.Sign(endpoint, method, nil)

	req, err := newJSONRequest(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", params.Header())

	_, err = c.do(req, dst)
	return err
}

func newJSONRequest(ctx context.Context, method, endpoint string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// do sends req and decodes a 2xx JSON body into dst when dst is non-nil.
func (c *Client) do(req *http.Request, dst any) (http.Header, error) {
	target := req.Method + " " + req.URL.Path

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[woocommerce] %s FAILED err=%v", target, err)
		return nil, errors.Wrapf(err, "%s", target)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[woocommerce] %s read body FAILED err=%v", target, err)
		return nil, errors.Wrapf(err, "read %s", target)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := newAPIError(resp.StatusCode, body)
		log.Printf("[woocommerce] %s FAILED status=%d code=%s", target, apiErr.StatusCode, apiErr.Code)
		return resp.Header, apiErr
	}

	if dst != nil {
		if err := json.Unmarshal(body, dst); err != nil {
			log.Printf("[woocommerce] %s decode FAILED err=%v", target, err)
			return resp.Header, errors.Wrapf(ErrMalformedResponse, "%s: %v", target, err)
		}
	}
	return resp.Header, nil
}
