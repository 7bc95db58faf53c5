package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/craftconnect/internal/client/models"
)

// Analyze uploads a product photo for AI analysis.
func (a *App) Analyze(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage("analyze <file>")
	}
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	res, err := a.api.AnalyzeImage(ctx, filepath.Base(args[0]), f)
	if err != nil {
		return err
	}

	switch res.Status {
	case models.AnalysisRejected:
		fmt.Fprintln(a.out, "The image was rejected, try a clearer photo of the product")
		return nil
	case models.AnalysisNeedsConfirmation:
		fmt.Fprintln(a.out, "Low confidence, please review the suggestions")
	}

	fmt.Fprintf(a.out, "Image:      %s\n", res.GCSURI)
	if res.SuggestedTitle != nil {
		fmt.Fprintf(a.out, "Title:      %s\n", *res.SuggestedTitle)
	}
	if len(res.SuggestedMaterials) > 0 {
		fmt.Fprintf(a.out, "Materials:  %s\n", strings.Join(res.SuggestedMaterials, ", "))
	}
	if len(res.PrimaryColors) > 0 {
		fmt.Fprintf(a.out, "Colors:     %s\n", strings.Join(res.PrimaryColors, ", "))
	}
	if len(res.SEOTags) > 0 {
		fmt.Fprintf(a.out, "Tags:       %s\n", strings.Join(res.SEOTags, ", "))
	}
	fmt.Fprintf(a.out, "Confidence: %.0f%%\n", res.ConfidenceScore*100)
	return nil
}

// Story generates a product story. The description is read interactively.
func (a *App) Story(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage("story <title>")
	}
	desc, err := getMultiline(a.reader, "Describe the product", a.out)
	if err != nil {
		return err
	}

	req := models.StoryRequest{Title: strings.Join(args, " "), Description: desc}
	if p, err := a.session.Session().User.Profile(); err == nil {
		req.ArtisanName = p.Name
		if p.Location != nil {
			req.Location = *p.Location
		}
	}

	res, err := a.api.GenerateStory(ctx, req)
	if err != nil {
		return err
	}
	text := res.Text()
	if text == "" {
		fmt.Fprintln(a.out, "No story was generated")
		return nil
	}
	fmt.Fprintln(a.out, text)
	return nil
}

// Price asks the backend for a price suggestion.
func (a *App) Price(ctx context.Context, args []string) error {
	const usage = errUsage("price <materials_cost> <labor_hours> <category>")
	if len(args) != 3 {
		return usage
	}
	cost, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return usage
	}
	hours, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return usage
	}

	res, err := a.api.SuggestPrice(ctx, models.PriceRequest{MaterialsCost: cost, LaborHours: hours, Category: args[2]})
	if err != nil {
		return err
	}
	v, ok := res.Value()
	if !ok {
		fmt.Fprintln(a.out, "No price suggestion available")
		return nil
	}
	fmt.Fprintf(a.out, "Suggested price: %.2f\n", v)
	if res.MinPrice != nil && res.MaxPrice != nil {
		fmt.Fprintf(a.out, "Range: %.2f - %.2f\n", *res.MinPrice, *res.MaxPrice)
	}
	if res.Explanation != nil {
		fmt.Fprintln(a.out, *res.Explanation)
	}
	return nil
}
