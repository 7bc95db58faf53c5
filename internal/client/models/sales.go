package models

// SaleInput is the body of POST /sales/record.
type SaleInput struct {
	ProductID     string  `json:"product_id"`
	BuyerName     string  `json:"buyer_name"`
	BuyerEmail    *string `json:"buyer_email,omitempty"`
	BuyerPhone    *string `json:"buyer_phone,omitempty"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency,omitempty"`
	Quantity      int     `json:"quantity,omitempty"`
	PaymentMethod *string `json:"payment_method,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

type Sale struct {
	SaleID        string  `json:"sale_id"`
	SellerID      string  `json:"seller_id"`
	ProductID     string  `json:"product_id"`
	BuyerName     string  `json:"buyer_name"`
	BuyerEmail    *string `json:"buyer_email,omitempty"`
	BuyerPhone    *string `json:"buyer_phone,omitempty"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Quantity      int     `json:"quantity"`
	PaymentMethod *string `json:"payment_method,omitempty"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"created_at,omitempty"`
	UpdatedAt     string  `json:"updated_at,omitempty"`
}

type SalesAnalytics struct {
	TotalSales        int            `json:"total_sales"`
	TotalRevenue      float64        `json:"total_revenue"`
	Currency          string         `json:"currency"`
	AverageOrderValue float64        `json:"average_order_value"`
	TotalItemsSold    int            `json:"total_items_sold"`
	SalesByStatus     map[string]int `json:"sales_by_status"`
	TopProducts       []any          `json:"top_products"`
	RevenueTrend      []any          `json:"revenue_trend"`
	Period            string         `json:"period"`
}
