package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/craftconnect/internal/client/models"
)

// DefaultSalesTimeframe is used by SalesAnalytics when none is given.
const DefaultSalesTimeframe = "30d"

func (c *HTTPClient) Recommendations(ctx context.Context, userID string, filters url.Values) (map[string]any, error) {
	q := url.Values{}
	for k, v := range filters {
		q[k] = append([]string(nil), v...)
	}
	q.Set("user_id", userID)

	var resp map[string]any
	if err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/recommender/suggestions", Query: q}, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) MarketTrends(ctx context.Context, category string) (map[string]any, error) {
	q := url.Values{}
	q.Set("category", category)

	var resp map[string]any
	if err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/recommender/trends", Query: q}, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) RecordSale(ctx context.Context, in models.SaleInput) (*models.Sale, error) {
	var sale models.Sale
	if err := c.Do(ctx, Request{Method: http.MethodPost, Path: "/sales/record", Body: in}, &sale); err != nil {
		return nil, err
	}
	return &sale, nil
}

func (c *HTTPClient) SalesAnalytics(ctx context.Context, userID, timeframe string) (*models.SalesAnalytics, error) {
	if timeframe == "" {
		timeframe = DefaultSalesTimeframe
	}
	q := url.Values{}
	q.Set("user_id", userID)
	q.Set("timeframe", timeframe)

	var a models.SalesAnalytics
	if err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/sales/analytics", Query: q}, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// GetUserProfile returns the raw user record so it can be stored in the
// session unchanged. Use User.Profile for the typed view.
func (c *HTTPClient) GetUserProfile(ctx context.Context, userID string) (models.User, error) {
	var user models.User
	if err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/users/" + url.PathEscape(userID)}, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (c *HTTPClient) UpdateUserProfile(ctx context.Context, userID string, upd models.ProfileUpdate) (models.User, error) {
	var user models.User
	err := c.Do(ctx, Request{Method: http.MethodPut, Path: "/users/" + url.PathEscape(userID), Body: upd}, &user)
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (c *HTTPClient) DashboardData(ctx context.Context, userID string) (*models.Dashboard, error) {
	var d models.Dashboard
	if err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/dashboard/" + url.PathEscape(userID)}, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
