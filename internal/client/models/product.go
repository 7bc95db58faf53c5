package models

import (
	"net/url"
	"strconv"
)

// Product visibility statuses.
const (
	ProductDraft    = "draft"
	ProductPublic   = "public"
	ProductPrivate  = "private"
	ProductArchived = "archived"
)

type ProductImage struct {
	GCSURI      string  `json:"gcs_uri"`
	EnhancedURI *string `json:"enhanced_uri,omitempty"`
	IsPrimary   bool    `json:"is_primary"`
	UploadedAt  string  `json:"uploaded_at,omitempty"`
}

type ProductPricing struct {
	MaterialsCost  float64  `json:"materials_cost"`
	LaborHours     float64  `json:"labor_hours"`
	SuggestedPrice *float64 `json:"suggested_price,omitempty"`
	FinalPrice     *float64 `json:"final_price,omitempty"`
	Currency       string   `json:"currency,omitempty"`
}

type ProductDimensions struct {
	LengthCM *float64 `json:"length_cm,omitempty"`
	WidthCM  *float64 `json:"width_cm,omitempty"`
	HeightCM *float64 `json:"height_cm,omitempty"`
	WeightG  *float64 `json:"weight_g,omitempty"`
}

// Product is a listing as returned by the backend.
type Product struct {
	ProductID   string             `json:"product_id"`
	UserID      string             `json:"user_id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Category    string             `json:"category"`
	Materials   []string           `json:"materials"`
	Colors      []string           `json:"colors"`
	Tags        []string           `json:"tags"`
	Story       *string            `json:"story,omitempty"`
	Images      []ProductImage     `json:"images"`
	Pricing     *ProductPricing    `json:"pricing,omitempty"`
	Dimensions  *ProductDimensions `json:"dimensions,omitempty"`
	Status      string             `json:"status"`
	CreatedAt   string             `json:"created_at,omitempty"`
	UpdatedAt   string             `json:"updated_at,omitempty"`
	ViewsCount  int                `json:"views_count"`
	LikesCount  int                `json:"likes_count"`
}

// OwnedBy reports whether user owns the product.
func (p Product) OwnedBy(user User) bool {
	id := user.ID()
	return id != "" && id == p.UserID
}

// ProductInput is the body of product create and update calls. On update,
// zero-valued optional fields are omitted and left unchanged by the backend.
type ProductInput struct {
	Title       string             `json:"title,omitempty"`
	Description string             `json:"description,omitempty"`
	Category    string             `json:"category,omitempty"`
	Materials   []string           `json:"materials,omitempty"`
	Colors      []string           `json:"colors,omitempty"`
	Tags        []string           `json:"tags,omitempty"`
	Story       *string            `json:"story,omitempty"`
	Images      []ProductImage     `json:"images,omitempty"`
	Pricing     *ProductPricing    `json:"pricing,omitempty"`
	Dimensions  *ProductDimensions `json:"dimensions,omitempty"`
	Status      string             `json:"status,omitempty"`
}

// ProductList is one page of products.
type ProductList struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
	HasMore  bool      `json:"has_more"`
}

// ProductFilter narrows GET /products and GET /products/search.
// Empty fields are not sent.
type ProductFilter struct {
	OwnerID  string
	Status   string
	Category string
	Page     int
	PageSize int
}

// Values renders the filter as query parameters.
func (f ProductFilter) Values() url.Values {
	v := url.Values{}
	if f.OwnerID != "" {
		v.Set("owner_id", f.OwnerID)
	}
	if f.Status != "" {
		v.Set("status", f.Status)
	}
	if f.Category != "" {
		v.Set("category", f.Category)
	}
	if f.Page > 0 {
		v.Set("page", strconv.Itoa(f.Page))
	}
	if f.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(f.PageSize))
	}
	return v
}

// LikeResult is the reply of POST /products/{id}/like.
type LikeResult struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likes_count"`
}

// ProductStats is the reply of GET /products/users/{id}/stats.
type ProductStats struct {
	TotalProducts int            `json:"total_products"`
	ByStatus      map[string]int `json:"by_status"`
	ByCategory    map[string]int `json:"by_category"`
	TotalViews    int            `json:"total_views"`
	TotalLikes    int            `json:"total_likes"`
}
