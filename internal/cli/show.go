package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sixcities/internal/api"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <offer-id>",
		Short: "Show offer details",
		Long:  "Show full details for an offer, plus nearby offers and its reviews.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	id := args[0]
	app := newApp()

	if err := app.actions.OpenOffer(cmd.Context(), id); err != nil {
		if api.IsNotFound(err) {
			return fmt.Errorf("offer %s not found", id)
		}
		return err
	}

	detail := app.store.State().Detail

	if isJSON() {
		return printJSON(struct {
			Offer    interface{} `json:"offer"`
			Nearby   interface{} `json:"nearby"`
			Comments interface{} `json:"comments"`
		}{detail.Current, detail.Nearby, detail.Comments})
	}

	printOfferDetail(detail.Current)
	fmt.Println()
	if len(detail.Nearby) > 0 {
		fmt.Printf("Nearby (%d):\n", len(detail.Nearby))
		for _, o := range detail.Nearby {
			fmt.Printf("  %s  %s, €%d/night\n", o.ID, o.Title, o.Price)
		}
		fmt.Println()
	}
	if len(detail.Comments) > 0 {
		fmt.Printf("Reviews (%d):\n", len(detail.Comments))
		printCommentList(detail.Comments)
	} else {
		fmt.Println("No reviews yet.")
	}

	return nil
}
