package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"weekenddiaries/app"
	"weekenddiaries/domain/place"
	"weekenddiaries/internal/config"
	"weekenddiaries/internal/container"
	"weekenddiaries/internal/content"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "weekend-cli",
		Short:         "Weekend Diaries CLI for browsing places around Pune",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newPlacesCmd(),
		newTipCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// withService builds the container from the environment and hands its place
// service to run.
func withService(cmd *cobra.Command, run func(ctx context.Context, places *app.PlaceService) error) error {
	config.LoadDotEnv(".env")
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	c, err := container.New(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	ctx := cmd.Context()
	if err := c.Init(ctx); err != nil {
		return err
	}
	return run(ctx, c.PlaceService)
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func newPlacesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "places",
		Short: "Search, sample and summarize places",
	}

	cmd.AddCommand(
		newListCmd(),
		newWeekendCmd(),
		newSurpriseCmd(),
		newShowCmd(),
		newCategoriesCmd(),
		newStatsCmd(),
	)
	return cmd
}

func newListCmd() *cobra.Command {
	var categories, subcategories []string
	var maxDistance float64
	var spooky string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List places matching filters",
		Long: `List places matching category, subcategory, distance and spooky filters.
Without --category every category is searched.

Example: weekend-cli places list --category "Nature & Outdoors" --max-distance 60 --spooky non_spooky`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, func(ctx context.Context, places *app.PlaceService) error {
				criteria := place.Criteria{
					Categories:    place.NewSet(categories...),
					Subcategories: place.NewSet(subcategories...),
					Spooky:        place.ParseSpookyMode(spooky),
				}
				if !cmd.Flags().Changed("category") {
					all, err := places.Categories(ctx)
					if err != nil {
						return err
					}
					criteria.Categories = place.NewSet(all...)
				}
				if cmd.Flags().Changed("max-distance") {
					criteria.MaxDistanceKm = &maxDistance
				}

				result, err := places.Search(ctx, criteria)
				if err != nil {
					return err
				}
				return printJSON(map[string]interface{}{
					"count":  result.Places.Len(),
					"places": result.Places.Places(),
				})
			})
		},
	}

	cmd.Flags().StringSliceVar(&categories, "category", nil, "Categories to include (repeatable)")
	cmd.Flags().StringSliceVar(&subcategories, "subcategory", nil, "Subcategories to include (repeatable)")
	cmd.Flags().Float64Var(&maxDistance, "max-distance", 0, "Maximum distance from Pune in km")
	cmd.Flags().StringVar(&spooky, "spooky", "all", "all, spooky or non_spooky")
	return cmd
}

func newWeekendCmd() *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "weekend",
		Short: "Suggest places for this weekend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, func(ctx context.Context, places *app.PlaceService) error {
				picks, err := places.WeekendPicks(ctx, n)
				if err != nil {
					return err
				}
				return printJSON(map[string]interface{}{
					"count":  picks.Len(),
					"places": picks.Places(),
				})
			})
		},
	}

	cmd.Flags().IntVarP(&n, "count", "n", place.DefaultPickCount, "Number of picks")
	return cmd
}

func newSurpriseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "surprise",
		Short: "Pick one random place",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, func(ctx context.Context, places *app.PlaceService) error {
				p, err := places.Surprise(ctx)
				if err != nil {
					return err
				}
				return printJSON(p)
			})
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show one place by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, func(ctx context.Context, places *app.PlaceService) error {
				p, err := places.Get(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(p)
			})
		},
	}
}

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories with their subcategories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, func(ctx context.Context, places *app.PlaceService) error {
				categories, err := places.Categories(ctx)
				if err != nil {
					return err
				}
				subcategories := make(map[string][]string, len(categories))
				for _, cat := range categories {
					subs, err := places.Subcategories(ctx, place.NewSet(cat))
					if err != nil {
						return err
					}
					subcategories[cat] = subs
				}
				return printJSON(map[string]interface{}{
					"categories":    categories,
					"subcategories": subcategories,
				})
			})
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the whole dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, func(ctx context.Context, places *app.PlaceService) error {
				summary, err := places.Stats(ctx)
				if err != nil {
					return err
				}
				return printJSON(summary)
			})
		},
	}
}

func newTipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tip",
		Short: "Print a secret tip of the week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, func(ctx context.Context, places *app.PlaceService) error {
				return printJSON(map[string]string{"tip": places.Tip(ctx, content.VariantAPI)})
			})
		},
	}
}
