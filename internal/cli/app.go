package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"hh-vacancy-search/internal/models"
	"hh-vacancy-search/internal/search"

	"go.uber.org/zap"
)

// Service is the part of search.Service the dialogue drives.
type Service interface {
	Run(ctx context.Context, q search.Query) (*models.VacancyList, error)
	Save(ctx context.Context, list *models.VacancyList) (saved, skipped int, err error)
	Saved(ctx context.Context, topN int) (*models.VacancyList, error)
}

type App struct {
	prompter *Prompter
	service  Service
	regions  RegionLookup
	out      io.Writer
	perPage  int
	logger   *zap.Logger
}

func NewApp(prompter *Prompter, service Service, regions RegionLookup, out io.Writer, perPage int, logger *zap.Logger) *App {
	return &App{
		prompter: prompter,
		service:  service,
		regions:  regions,
		out:      out,
		perPage:  perPage,
		logger:   logger,
	}
}

// Run loops over the menu until the user exits or the input ends.
func (a *App) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		choice, err := a.prompter.ShowMenu()
		if err != nil {
			return a.inputErr(err)
		}

		if choice == MenuExit {
			a.logger.Info("user exited")
			return nil
		}

		if err := a.action(choice)(ctx); err != nil {
			return a.inputErr(err)
		}
	}
}

func (a *App) action(choice MenuChoice) actionFunc {
	name, next := "show_saved", a.showSaved
	if choice == MenuNewSearch {
		name, next = "new_search", a.newSearch
	}
	return withRecovery(a.logger, a.out, name, withLogging(a.logger, name, next))
}

func (a *App) inputErr(err error) error {
	if errors.Is(err, ErrInputClosed) {
		a.logger.Info("input closed, exiting")
		return nil
	}
	return err
}

func (a *App) showSaved(ctx context.Context) error {
	topN, err := a.prompter.AskTopN()
	if err != nil {
		return err
	}

	list, err := a.service.Saved(ctx, topN)
	if err != nil {
		return err
	}

	DisplayVacancies(a.out, list.Items())
	return nil
}

func (a *App) newSearch(ctx context.Context) error {
	area, err := a.prompter.AskRegion(a.regions)
	if err != nil {
		return err
	}

	text, err := a.prompter.AskSearchQuery()
	if err != nil {
		return err
	}

	lo, hi, err := a.prompter.AskFilterRange()
	if err != nil {
		return err
	}

	topN, err := a.prompter.AskTopN()
	if err != nil {
		return err
	}

	words, err := a.prompter.AskFilterWords()
	if err != nil {
		return err
	}

	list, err := a.service.Run(ctx, search.Query{
		Text:      text,
		Area:      area,
		PerPage:   a.perPage,
		MinSalary: lo,
		MaxSalary: hi,
		TopN:      topN,
		Words:     words,
	})
	if err != nil {
		return fmt.Errorf("search vacancies: %w", err)
	}

	saved, _, err := a.service.Save(ctx, list)
	if err != nil {
		return err
	}

	DisplayVacancies(a.out, list.Items())
	fmt.Fprintf(a.out, "Сохранено новых вакансий: %d\n\n", saved)
	return nil
}
