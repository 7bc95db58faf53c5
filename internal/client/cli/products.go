package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/craftconnect/internal/client/models"
)

// Products lists products, optionally filtered by status and category.
func (a *App) Products(ctx context.Context, args []string) error {
	if len(args) > 2 {
		return errUsage("products [status] [category]")
	}
	var f models.ProductFilter
	if len(args) > 0 {
		f.Status = args[0]
	}
	if len(args) > 1 {
		f.Category = args[1]
	}

	list, err := a.api.ListProducts(ctx, f)
	if err != nil {
		return err
	}
	printProductList(a.out, list)
	return nil
}

func (a *App) Search(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage("search <query>")
	}
	list, err := a.api.SearchProducts(ctx, strings.Join(args, " "), models.ProductFilter{})
	if err != nil {
		return err
	}
	printProductList(a.out, list)
	return nil
}

// Product shows one product in full.
func (a *App) Product(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage("product <id>")
	}
	p, err := a.api.GetProduct(ctx, args[0])
	if err != nil {
		return err
	}

	owner := ""
	if p.OwnedBy(a.session.Session().User) {
		owner = " (yours)"
	}
	fmt.Fprintf(a.out, "%s%s\n", p.Title, owner)
	fmt.Fprintf(a.out, "  id:        %s\n", p.ProductID)
	fmt.Fprintf(a.out, "  category:  %s\n", p.Category)
	fmt.Fprintf(a.out, "  status:    %s\n", p.Status)
	if price, ok := productPrice(*p); ok {
		fmt.Fprintf(a.out, "  price:     %.2f\n", price)
	}
	if len(p.Materials) > 0 {
		fmt.Fprintf(a.out, "  materials: %s\n", strings.Join(p.Materials, ", "))
	}
	fmt.Fprintf(a.out, "  views:     %d  likes: %d\n", p.ViewsCount, p.LikesCount)
	if p.Description != "" {
		fmt.Fprintf(a.out, "\n%s\n", p.Description)
	}
	if p.Story != nil && *p.Story != "" {
		fmt.Fprintf(a.out, "\n%s\n", *p.Story)
	}
	return nil
}

func (a *App) Like(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage("like <id>")
	}
	res, err := a.api.ToggleProductLike(ctx, args[0])
	if err != nil {
		return err
	}
	verb := "Unliked"
	if res.Liked {
		verb = "Liked"
	}
	fmt.Fprintf(a.out, "%s (%d likes)\n", verb, res.LikesCount)
	return nil
}

// Delete removes a product after confirmation.
func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage("delete <id>")
	}
	if _, err := a.requireLogin(); err != nil {
		return err
	}

	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete product %s? (y/N)", args[0]), a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	if err := a.api.DeleteProduct(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Deleted")
	return nil
}

func productPrice(p models.Product) (float64, bool) {
	if p.Pricing == nil {
		return 0, false
	}
	if p.Pricing.FinalPrice != nil {
		return *p.Pricing.FinalPrice, true
	}
	if p.Pricing.SuggestedPrice != nil {
		return *p.Pricing.SuggestedPrice, true
	}
	return 0, false
}

func printProductList(w io.Writer, list *models.ProductList) {
	if len(list.Products) == 0 {
		fmt.Fprintln(w, "No products found")
		return
	}
	for _, p := range list.Products {
		price := "-"
		if v, ok := productPrice(p); ok {
			price = fmt.Sprintf("%.2f", v)
		}
		fmt.Fprintf(w, "%-12s %-32s %-9s %8s  %d likes\n", p.ProductID, p.Title, p.Status, price, p.LikesCount)
	}
	if list.HasMore {
		fmt.Fprintf(w, "... %d of %d shown\n", len(list.Products), list.Total)
	}
}
