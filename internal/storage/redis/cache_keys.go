package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hh-vacancy-search/internal/models"
	"hh-vacancy-search/internal/regions"
)

const (
	RegionsCacheTTL       = 24 * time.Hour
	VacancySearchCacheTTL = 5 * time.Minute
)

func RegionsKey() string {
	return "regions:table"
}

func VacancySearchKey(text string, area, perPage int) string {
	text = strings.ToLower(strings.TrimSpace(text))
	return fmt.Sprintf("search:area:%d:per_page:%d:text:%s", area, perPage, text)
}

// GetRegions implements regions.TableCache.
func (c *Cache) GetRegions(ctx context.Context) (regions.Table, error) {
	var table regions.Table
	if err := c.Get(ctx, RegionsKey(), &table); err != nil {
		return nil, err
	}
	return table, nil
}

func (c *Cache) SetRegions(ctx context.Context, table regions.Table) error {
	return c.Set(ctx, RegionsKey(), table, RegionsCacheTTL)
}

func (c *Cache) GetVacancySearchResults(ctx context.Context, text string, area, perPage int) ([]models.Vacancy, error) {
	var results []models.Vacancy
	if err := c.Get(ctx, VacancySearchKey(text, area, perPage), &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *Cache) SetVacancySearchResults(ctx context.Context, text string, area, perPage int, results []models.Vacancy) error {
	return c.Set(ctx, VacancySearchKey(text, area, perPage), results, VacancySearchCacheTTL)
}
