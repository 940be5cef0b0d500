package cli

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"sixcities/internal/offer"
	"sixcities/internal/review"
)

// printJSON marshals v as indented JSON and writes it to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printOfferTable prints a city's offers as a formatted table.
func printOfferTable(city string, offers []offer.Offer) error {
	if len(offers) == 0 {
		fmt.Printf("No places to stay in %s.\n", city)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tTYPE\tPRICE\tRATING\tFAV\tTITLE"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "--\t----\t-----\t------\t---\t-----"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, o := range offers {
		fav := "-"
		if o.IsFavorite {
			fav = "♥"
		}
		title := o.Title
		if o.IsPremium {
			title = "[premium] " + title
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t€%d\t%s\t%s\t%s\n",
			o.ID, o.Type.Label(), o.Price, formatRating(o.Rating), fav, truncate(title, 50)); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\n%d places to stay in %s\n", len(offers), city)
	return nil
}

// printOfferDetail prints a full offer in text format.
func printOfferDetail(o *offer.Offer) {
	if o == nil {
		return
	}
	if o.IsPremium {
		fmt.Println("Premium")
	}
	fmt.Println(o.Title)
	fmt.Printf("  City:     %s\n", o.City.Name)
	fmt.Printf("  Type:     %s\n", o.Type.Label())
	fmt.Printf("  Price:    €%d/night\n", o.Price)
	fmt.Printf("  Rating:   %s (%.1f)\n", formatRating(o.Rating), o.Rating)
	if o.Bedrooms > 0 {
		fmt.Printf("  Bedrooms: %d\n", o.Bedrooms)
	}
	if o.MaxAdults > 0 {
		fmt.Printf("  Guests:   up to %d adults\n", o.MaxAdults)
	}
	if o.IsFavorite {
		fmt.Println("  Saved:    ♥ in favorites")
	}
	if len(o.Goods) > 0 {
		fmt.Printf("  Inside:   %s\n", strings.Join(o.Goods, ", "))
	}
	if o.Host != nil {
		host := o.Host.Name
		if o.Host.IsPro {
			host += " (pro)"
		}
		fmt.Printf("  Host:     %s\n", host)
	}
	if o.Description != "" {
		fmt.Printf("\n  %s\n", o.Description)
	}
}

// printCommentList prints reviews in text format.
func printCommentList(comments []review.Comment) {
	for _, c := range comments {
		author := c.User.Name
		if author == "" {
			author = "anonymous"
		}
		if c.User.IsPro {
			author += " (pro)"
		}
		fmt.Printf("[%s] %s %s\n  %s\n\n",
			c.Date.Format("2006-01-02"), author, formatRating(c.Rating), c.Comment)
	}
}

// formatRating returns a star representation of a 0-5 rating, rounded
// to the nearest whole star.
func formatRating(rating float64) string {
	stars := int(math.Round(rating))
	if stars < 0 {
		stars = 0
	}
	if stars > 5 {
		stars = 5
	}
	return strings.Repeat("★", stars) + strings.Repeat("☆", 5-stars)
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
