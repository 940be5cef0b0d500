package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sixcities/internal/offer"
)

func newCitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cities",
		Short: "List the browsable cities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if isJSON() {
				return printJSON(offer.Cities)
			}
			for _, c := range offer.Cities {
				if c == offer.DefaultCity {
					fmt.Printf("%s (default)\n", c)
					continue
				}
				fmt.Println(c)
			}
			return nil
		},
	}
}
