// Package search ties the API client, the in-memory filters and the store
// together.
package search

import (
	"context"
	"fmt"

	"hh-vacancy-search/internal/api/headhunter"
	"hh-vacancy-search/internal/models"
	"hh-vacancy-search/internal/storage"

	"go.uber.org/zap"
)

type Searcher interface {
	FetchVacancies(ctx context.Context, params headhunter.VacancySearchParams) (*models.VacancyList, error)
}

// ResultCache keeps recent search responses. Any error is treated as a miss.
type ResultCache interface {
	GetVacancySearchResults(ctx context.Context, text string, area, perPage int) ([]models.Vacancy, error)
	SetVacancySearchResults(ctx context.Context, text string, area, perPage int, results []models.Vacancy) error
}

// Query describes one search. Nil salary bounds, an empty word list and a
// zero TopN each turn the matching step off.
type Query struct {
	Text      string
	Area      int
	PerPage   int
	MinSalary *models.Salary
	MaxSalary *models.Salary
	TopN      int
	Words     []string
}

type Service struct {
	client Searcher
	cache  ResultCache
	store  storage.Store
	logger *zap.Logger
}

// New creates the service. cache may be nil.
func New(client Searcher, cache ResultCache, store storage.Store, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		cache:  cache,
		store:  store,
		logger: logger,
	}
}

// Run fetches vacancies and applies the keyword filter, the salary filter
// and the top N cut, in that order.
func (s *Service) Run(ctx context.Context, q Query) (*models.VacancyList, error) {
	list, err := s.fetch(ctx, q)
	if err != nil {
		return nil, err
	}

	fetched := list.Len()

	if len(q.Words) > 0 {
		list.FilterByWords(q.Words)
	}

	if q.MinSalary != nil && q.MaxSalary != nil {
		list.FilterBySalaryRange(*q.MinSalary, *q.MaxSalary)
	}

	if q.TopN > 0 {
		list.TopN(q.TopN)
	}

	s.logger.Info("search finished",
		zap.String("text", q.Text),
		zap.Int("area", q.Area),
		zap.Int("fetched", fetched),
		zap.Int("kept", list.Len()),
	)

	return list, nil
}

func (s *Service) fetch(ctx context.Context, q Query) (*models.VacancyList, error) {
	if s.cache != nil {
		cached, err := s.cache.GetVacancySearchResults(ctx, q.Text, q.Area, q.PerPage)
		if err == nil {
			s.logger.Debug("search results served from cache", zap.Int("count", len(cached)))
			return models.NewVacancyList(cached...), nil
		}
		s.logger.Debug("search cache miss", zap.Error(err))
	}

	list, err := s.client.FetchVacancies(ctx, headhunter.VacancySearchParams{
		Text:    q.Text,
		Area:    q.Area,
		PerPage: q.PerPage,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch vacancies: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetVacancySearchResults(ctx, q.Text, q.Area, q.PerPage, list.Items()); err != nil {
			s.logger.Warn("failed to cache search results", zap.Error(err))
		}
	}

	return list, nil
}

// Save stores every vacancy in list. Vacancies already stored are skipped.
func (s *Service) Save(ctx context.Context, list *models.VacancyList) (saved, skipped int, err error) {
	for _, v := range list.Items() {
		ok, err := s.store.Create(ctx, v)
		if err != nil {
			return saved, skipped, fmt.Errorf("save vacancy %s: %w", v.ID, err)
		}
		if ok {
			saved++
		} else {
			skipped++
		}
	}

	s.logger.Info("vacancies saved",
		zap.Int("saved", saved),
		zap.Int("skipped", skipped),
	)

	return saved, skipped, nil
}

// Saved loads the stored vacancies, cut to the top n when n > 0.
func (s *Service) Saved(ctx context.Context, topN int) (*models.VacancyList, error) {
	list, err := storage.ReadList(ctx, s.store)
	if err != nil {
		return nil, fmt.Errorf("read saved vacancies: %w", err)
	}

	if topN > 0 {
		list.TopN(topN)
	}
	return list, nil
}

// Delete removes a saved vacancy by id.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := s.store.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete saved vacancy: %w", err)
	}
	return ok, nil
}
