package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"hh-vacancy-search/internal/cli"
	"hh-vacancy-search/internal/models"
	"hh-vacancy-search/internal/search"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	searchQuery  string
	searchRegion string
	searchMin    int
	searchMax    int
	searchTop    int
	searchWords  string
	searchSave   bool

	savedTop int
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Start the interactive menu (default)",
	Args:  cobra.NoArgs,
	RunE:  runInteractive,
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run one search and print the result",
	Example: `  hhsearch search -q "Python developer" -r Москва --min 100000 --max 250000 -n 10
  hhsearch search -q golang -w "grpc kafka" --save`,
	Args: cobra.NoArgs,
	RunE: runSearch,
}

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "Print saved vacancies",
	Args:  cobra.NoArgs,
	RunE:  runSaved,
}

var deleteCmd = &cobra.Command{
	Use:   "delete [vacancy id]",
	Short: "Remove a saved vacancy",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func runInteractive(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	d, err := newDeps(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer d.close()

	resolver, err := d.resolver(ctx)
	if err != nil {
		return err
	}
	log.Info("region table loaded", zap.Int("regions", resolver.Len()))

	out := cmd.OutOrStdout()
	prompter := cli.NewPrompter(os.Stdin, out)
	app := cli.NewApp(prompter, d.service, resolver, out, cfg.HHAPI.PerPage, log)

	return app.Run(ctx)
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	d, err := newDeps(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer d.close()

	q := search.Query{
		Text:    searchQuery,
		PerPage: cfg.HHAPI.PerPage,
		TopN:    searchTop,
		Words:   strings.Fields(strings.ToLower(searchWords)),
	}

	if searchRegion != "" {
		resolver, err := d.resolver(ctx)
		if err != nil {
			return err
		}

		area, ok := resolver.Resolve(searchRegion)
		if !ok {
			msg := fmt.Sprintf("unknown region: %s", searchRegion)
			if hints := resolver.Suggest(searchRegion, 5); len(hints) > 0 {
				msg += fmt.Sprintf(" (did you mean: %s)", strings.Join(hints, ", "))
			}
			return errors.New(msg)
		}
		q.Area = area
	}

	if cmd.Flags().Changed("min") && cmd.Flags().Changed("max") {
		lo, hi := models.Salary(searchMin), models.Salary(searchMax)
		q.MinSalary, q.MaxSalary = &lo, &hi
	}

	list, err := d.service.Run(ctx, q)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	cli.DisplayVacancies(out, list.Items())

	if searchSave {
		saved, skipped, err := d.service.Save(ctx, list)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Сохранено новых вакансий: %d, уже были сохранены: %d\n", saved, skipped)
	}

	return nil
}

func runSaved(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	d, err := newDeps(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer d.close()

	list, err := d.service.Saved(ctx, savedTop)
	if err != nil {
		return err
	}

	cli.DisplayVacancies(cmd.OutOrStdout(), list.Items())
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	d, err := newDeps(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer d.close()

	ok, err := d.service.Delete(ctx, args[0])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("vacancy %s is not saved", args[0])
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Вакансия %s удалена\n", args[0])
	return nil
}
