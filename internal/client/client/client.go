package client

import (
	"context"
	"io"
	"net/url"

	"github.com/dmitrijs2005/craftconnect/internal/client/models"
)

// Client is the CraftConnect backend API.
//
// Loosely shaped payloads (market analysis, recommendations, trends) are
// returned as decoded JSON objects.
type Client interface {
	Do(ctx context.Context, req Request, out any) error

	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Me(ctx context.Context) (models.User, error)

	AnalyzeImage(ctx context.Context, filename string, image io.Reader) (*models.ImageAnalysis, error)
	EnhanceImage(ctx context.Context, gcsURI string) (*models.EnhancedImage, error)
	GenerateStory(ctx context.Context, req models.StoryRequest) (*models.StoryResponse, error)
	SuggestPrice(ctx context.Context, req models.PriceRequest) (*models.PriceSuggestion, error)
	MarketAnalysis(ctx context.Context, category, location string) (map[string]any, error)

	CreateProduct(ctx context.Context, in models.ProductInput) (*models.Product, error)
	GetProduct(ctx context.Context, productID string) (*models.Product, error)
	UpdateProduct(ctx context.Context, productID string, in models.ProductInput) (*models.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
	ListProducts(ctx context.Context, filter models.ProductFilter) (*models.ProductList, error)
	SearchProducts(ctx context.Context, query string, filter models.ProductFilter) (*models.ProductList, error)
	ToggleProductLike(ctx context.Context, productID string) (*models.LikeResult, error)
	UserProductStats(ctx context.Context, userID string) (*models.ProductStats, error)

	Recommendations(ctx context.Context, userID string, filters url.Values) (map[string]any, error)
	MarketTrends(ctx context.Context, category string) (map[string]any, error)

	RecordSale(ctx context.Context, in models.SaleInput) (*models.Sale, error)
	SalesAnalytics(ctx context.Context, userID, timeframe string) (*models.SalesAnalytics, error)

	GetUserProfile(ctx context.Context, userID string) (models.User, error)
	UpdateUserProfile(ctx context.Context, userID string, upd models.ProfileUpdate) (models.User, error)
	DashboardData(ctx context.Context, userID string) (*models.Dashboard, error)
}
