package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sixcities/internal/review"
)

func newReviewCmd() *cobra.Command {
	var rating int

	cmd := &cobra.Command{
		Use:   "review <offer-id> <text>",
		Short: "Post a review on an offer",
		Long: fmt.Sprintf(
			"Post a review with a 1-5 rating. The text must be %d-%d characters. Requires login.",
			review.MinLength, review.MaxLength),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReview(cmd, args[0], args[1], rating)
		},
	}

	cmd.Flags().IntVar(&rating, "rating", 0, "rating from 1 to 5 (required)")
	_ = cmd.MarkFlagRequired("rating")

	return cmd
}

func runReview(cmd *cobra.Command, id, text string, rating int) error {
	draft := review.Draft{Comment: text, Rating: rating}
	// Reject locally before anything touches the network, so a failed
	// submission never loses the draft.
	if err := draft.Validate(); err != nil {
		return err
	}

	app := newApp()

	if err := requireAuth(cmd.Context(), app); err != nil {
		return err
	}

	posted, err := app.actions.PostComment(cmd.Context(), id, draft)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(posted)
	}

	fmt.Printf("✓ Review posted (%s).\n  %s\n", formatRating(posted.Rating), posted.Comment)
	return nil
}
