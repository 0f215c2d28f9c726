package catalog

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

const DefaultBaseURL = "http://localhost:8000"

type ClientOpts struct {
	BaseURL string
	Auth    string
}

// Client talks to the SP Customs catalog backend.
type Client struct {
	httpClient *resty.Client
	baseURL    string
	auth       string
}

func NewClient(opts ClientOpts) *Client {
	c := Client{baseURL: DefaultBaseURL}
	if opts.BaseURL != "" {
		c.baseURL = opts.BaseURL
	}
	if opts.Auth != "" {
		c.auth = opts.Auth
	}
	c.httpClient = resty.New().
		SetDebug(false).
		SetBaseURL(c.baseURL).
		SetHeader("Accept", "application/json")

	return &c
}

// SetAuth sets the bearer token used on authenticated requests. The token
// travels with the client rather than living in package state.
func (c *Client) SetAuth(token string) {
	c.auth = token
}

func (c *Client) req(ctx context.Context, result any) *resty.Request {
	request := c.httpClient.
		NewRequest().
		SetContext(ctx)

	if c.auth != "" {
		request.SetHeader("Authorization", "Bearer "+c.auth)
	}
	if result != nil {
		request.SetResult(result)
	}

	return request
}

// Login exchanges admin credentials for an access token. The backend expects
// an OAuth2-style form body on /api/auth/login.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	result := &TokenResponse{}

	_, err := handleError(c.httpClient.
		NewRequest().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": username,
			"password": password,
		}).
		SetResult(result).
		Post("/api/auth/login"))
	if err != nil {
		return "", err
	}
	if result.AccessToken == "" {
		return "", fmt.Errorf("login response contained no access_token")
	}

	return result.AccessToken, nil
}

// ListProducts fetches a single page of products. The backend caps page_size
// at 100.
func (c *Client) ListProducts(ctx context.Context, pageSize int) ([]Product, error) {
	result := &ProductListResponse{}

	_, err := handleError(c.req(ctx, result).
		SetQueryParam("page_size", fmt.Sprint(pageSize)).
		Get("/api/products"))

	return result.Items, err
}

// GetProductImages returns the images currently associated with a product.
func (c *Client) GetProductImages(ctx context.Context, productID int) ([]ProductImage, error) {
	var result []ProductImage

	_, err := handleError(c.req(ctx, &result).
		SetPathParams(map[string]string{
			"productId": fmt.Sprint(productID),
		}).
		Get("/api/images/product/{productId}"))

	return result, err
}

// UploadProductImage posts a base64 image payload for a product. The response
// body is returned alongside any error so upload failures can be logged with
// what the server actually said.
func (c *Client) UploadProductImage(ctx context.Context, productID int, upload ImageUpload) (string, error) {
	res, err := handleError(c.req(ctx, nil).
		SetHeader("Content-Type", "application/json").
		SetBody(upload).
		SetPathParams(map[string]string{
			"productId": fmt.Sprint(productID),
		}).
		Post("/api/images/product/{productId}"))
	if res == nil {
		return "", err
	}

	return res.String(), err
}

// handleError is a generic error handler for failing responses (>399 status
// code). Without this, failing responses would have nil error.
func handleError(res *resty.Response, err error) (*resty.Response, error) {
	if err != nil {
		return res, err
	}
	if res.IsError() {
		return res, fmt.Errorf("request failed: %s %s (status: %d)", res.Request.Method, res.Request.URL, res.StatusCode())
	}

	return res, nil
}
