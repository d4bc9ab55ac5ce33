package cli

import (
	"github.com/spf13/cobra"

	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/internal/query"
	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/pkg/logger"
)

func (a *app) newCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the categories present in the corpus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(logger.WithCommand(cmd.Context(), cmd.Name()))
			if err != nil {
				return err
			}
			query.FormatCategories(cmd.OutOrStdout(), svc.ListCategories())
			return nil
		},
	}
}

func (a *app) newImagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "images <category>",
		Short: "List the images that show a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(logger.WithCommand(cmd.Context(), cmd.Name()))
			if err != nil {
				return err
			}
			keys, err := svc.ImagesForCategory(args[0])
			if err != nil {
				return err
			}
			query.FormatImages(cmd.OutOrStdout(), args[0], keys)
			return nil
		},
	}
}

func (a *app) newMaxInstancesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "max-instances",
		Short: "Show the category with the most bounding boxes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(logger.WithCommand(cmd.Context(), cmd.Name()))
			if err != nil {
				return err
			}
			result, err := svc.MaxOccurrences()
			if err != nil {
				return err
			}
			query.FormatMaxOccurrences(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func (a *app) newMaxImagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "max-images",
		Short: "Show the category present in the most images",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(logger.WithCommand(cmd.Context(), cmd.Name()))
			if err != nil {
				return err
			}
			result, err := svc.MaxDistinctImages()
			if err != nil {
				return err
			}
			query.FormatMaxImages(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func (a *app) newWordsCommand() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Show the most frequent caption words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("count") {
				n = a.cfg.Analysis.TopWords
			}
			svc, err := a.service(logger.WithCommand(cmd.Context(), cmd.Name()))
			if err != nil {
				return err
			}
			words, err := svc.TopWords(n)
			if err != nil {
				return err
			}
			query.FormatTopWords(cmd.OutOrStdout(), n, words)
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 10, "number of words to show (default from analysis.topWords)")
	return cmd
}
