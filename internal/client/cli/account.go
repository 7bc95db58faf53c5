package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/craftconnect/internal/client/models"
)

// Profile changes the display name of the signed-in user.
func (a *App) Profile(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage("profile <name>")
	}
	name := strings.Join(args, " ")

	user, err := a.profiles.Save(ctx, models.ProfileUpdate{Name: &name})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Profile updated")
	if p, err := user.Profile(); err == nil {
		printProfile(a.out, p)
	}
	return nil
}

// Dashboard prints the seller dashboard of the signed-in user.
func (a *App) Dashboard(ctx context.Context) error {
	s, err := a.requireLogin()
	if err != nil {
		return err
	}
	d, err := a.api.DashboardData(ctx, s.User.ID())
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Products: %d\n", d.TotalProducts)
	for status, n := range d.ProductsByStatus {
		fmt.Fprintf(a.out, "  %-10s %d\n", status, n)
	}
	fmt.Fprintf(a.out, "Views:    %d (%d in the last 30 days)\n", d.TotalViews, d.ViewsLast30Days)
	fmt.Fprintf(a.out, "Likes:    %d (%d in the last 30 days)\n", d.TotalLikes, d.LikesLast30Days)
	fmt.Fprintf(a.out, "Sales:    %d (%d in the last 30 days)\n", d.TotalSales, d.SalesLast30Days)
	fmt.Fprintf(a.out, "Revenue:  %.2f %s\n", d.TotalRevenue, d.RevenueCurrency)
	if len(d.RecentActivities) > 0 {
		fmt.Fprintln(a.out, "Recent activity:")
		for _, act := range d.RecentActivities {
			fmt.Fprintf(a.out, "  %s  %s\n", act.Timestamp, act.Description)
		}
	}
	return nil
}

func printProfile(w io.Writer, p models.UserProfile) {
	fmt.Fprintf(w, "Name:     %s\n", p.Name)
	fmt.Fprintf(w, "Email:    %s\n", p.Email)
	if p.Location != nil {
		fmt.Fprintf(w, "Location: %s\n", *p.Location)
	}
	if p.Bio != nil {
		fmt.Fprintf(w, "Bio:      %s\n", *p.Bio)
	}
}
