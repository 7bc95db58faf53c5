package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/craftconnect/internal/client/models"
)

func productPath(id string, suffix ...string) string {
	p := "/products/" + url.PathEscape(id)
	for _, s := range suffix {
		p += "/" + s
	}
	return p
}

func (c *HTTPClient) CreateProduct(ctx context.Context, in models.ProductInput) (*models.Product, error) {
	var p models.Product
	if err := c.Do(ctx, Request{Method: http.MethodPost, Path: "/products", Body: in}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	var p models.Product
	if err := c.Do(ctx, Request{Method: http.MethodGet, Path: productPath(productID)}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) UpdateProduct(ctx context.Context, productID string, in models.ProductInput) (*models.Product, error) {
	var p models.Product
	if err := c.Do(ctx, Request{Method: http.MethodPut, Path: productPath(productID), Body: in}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) DeleteProduct(ctx context.Context, productID string) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: productPath(productID)}, nil)
}

func (c *HTTPClient) ListProducts(ctx context.Context, filter models.ProductFilter) (*models.ProductList, error) {
	var list models.ProductList
	if err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/products", Query: filter.Values()}, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// SearchProducts runs a full-text search. Only category and paging from
// filter apply.
func (c *HTTPClient) SearchProducts(ctx context.Context, query string, filter models.ProductFilter) (*models.ProductList, error) {
	q := models.ProductFilter{Category: filter.Category, Page: filter.Page, PageSize: filter.PageSize}.Values()
	q.Set("q", query)

	var list models.ProductList
	if err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/products/search", Query: q}, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *HTTPClient) ToggleProductLike(ctx context.Context, productID string) (*models.LikeResult, error) {
	var res models.LikeResult
	if err := c.Do(ctx, Request{Method: http.MethodPost, Path: productPath(productID, "like")}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) UserProductStats(ctx context.Context, userID string) (*models.ProductStats, error) {
	var stats models.ProductStats
	path := "/products/users/" + url.PathEscape(userID) + "/stats"
	if err := c.Do(ctx, Request{Method: http.MethodGet, Path: path}, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
