package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/frankasd12/NibbleCheck/internal/service"
	"github.com/spf13/cobra"
)

// NewResolveCommand resolves an ingredient list given as arguments.
func NewResolveCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <ingredients>",
		Short: "Resolve an ingredient list to catalog foods and an overall status",
		Example: `  nibblecheck resolve "sugar, salt, xylitol"
  nibblecheck resolve --format json "chicken meal; brown rice"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBackend(cmd, opts, func(ctx context.Context, b backend) error {
				res, err := b.Resolve(ctx, strings.Join(args, " "))
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), opts.Format, res, printResolution)
			})
		},
	}
}

// NewSearchCommand looks up a single term.
func NewSearchCommand(opts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the catalog for one term",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBackend(cmd, opts, func(ctx context.Context, b backend) error {
				res, err := b.Search(ctx, strings.Join(args, " "), limit)
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), opts.Format, res, printSearch)
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", service.DefaultSearchLimit, "maximum number of results")
	return cmd
}

// NewFoodCommand prints one catalog entry.
func NewFoodCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "food <id>",
		Short: "Show a catalog food with its synonyms and rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			return withBackend(cmd, opts, func(ctx context.Context, b backend) error {
				food, err := b.Food(ctx, id)
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), opts.Format, food, printFood)
			})
		},
	}
}

func withBackend(cmd *cobra.Command, opts *RootOptions, fn func(context.Context, backend) error) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), opts.Timeout)
	defer cancel()

	b, cleanup, err := openBackend(ctx, opts)
	if err != nil {
		return err
	}
	defer cleanup()

	return fn(ctx, b)
}
