package client

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/craftconnect/internal/client/models"
)

// AnalyzeImage uploads an image as the "image_file" form field.
func (c *HTTPClient) AnalyzeImage(ctx context.Context, filename string, image io.Reader) (*models.ImageAnalysis, error) {
	var resp models.ImageAnalysis
	err := c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/copilot/analyze",
		File:   &FilePart{FieldName: "image_file", FileName: filename, Content: image},
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) EnhanceImage(ctx context.Context, gcsURI string) (*models.EnhancedImage, error) {
	var resp models.EnhancedImage
	err := c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/copilot/enhance",
		Body:   models.EnhanceRequest{GCSURI: gcsURI},
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) GenerateStory(ctx context.Context, req models.StoryRequest) (*models.StoryResponse, error) {
	var resp models.StoryResponse
	err := c.Do(ctx, Request{Method: http.MethodPost, Path: "/storyteller/generate", Body: req}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) SuggestPrice(ctx context.Context, req models.PriceRequest) (*models.PriceSuggestion, error) {
	var resp models.PriceSuggestion
	err := c.Do(ctx, Request{Method: http.MethodPost, Path: "/pricing/suggest", Body: req}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) MarketAnalysis(ctx context.Context, category, location string) (map[string]any, error) {
	q := url.Values{}
	q.Set("category", category)
	q.Set("location", location)

	var resp map[string]any
	if err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/pricing/market-analysis", Query: q}, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
