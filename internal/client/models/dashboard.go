package models

type RecentActivity struct {
	ActivityID   string         `json:"activity_id"`
	ActivityType string         `json:"activity_type"`
	Description  string         `json:"description"`
	Timestamp    string         `json:"timestamp"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// Dashboard is the aggregated view returned by GET /dashboard/{user_id}.
type Dashboard struct {
	TotalProducts      int            `json:"total_products"`
	ProductsByStatus   map[string]int `json:"products_by_status"`
	ProductsByCategory map[string]int `json:"products_by_category"`

	TotalViews      int `json:"total_views"`
	TotalLikes      int `json:"total_likes"`
	ViewsLast30Days int `json:"views_last_30_days"`
	LikesLast30Days int `json:"likes_last_30_days"`
	SalesLast30Days int `json:"sales_last_30_days"`
	TotalSales      int `json:"total_sales"`

	TotalRevenue      float64 `json:"total_revenue"`
	RevenueCurrency   string  `json:"revenue_currency"`
	RevenueLast30Days float64 `json:"revenue_last_30_days"`

	TopViewedProducts  []map[string]any `json:"top_viewed_products"`
	TopLikedProducts   []map[string]any `json:"top_liked_products"`
	TopSellingProducts []map[string]any `json:"top_selling_products"`
	RecentActivities   []RecentActivity `json:"recent_activities"`

	AverageViewsPerProduct float64 `json:"average_views_per_product"`
	AverageLikesPerProduct float64 `json:"average_likes_per_product"`
	ConversionRate         float64 `json:"conversion_rate"`
}
