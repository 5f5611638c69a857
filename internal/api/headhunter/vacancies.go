package headhunter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"hh-vacancy-search/internal/models"

	"go.uber.org/zap"
)

const defaultPerPage = 20

type VacancySearchParams struct {
	Text    string
	Area    int // area code, 0 means no area filter
	PerPage int
}

func (c *Client) SearchVacancies(ctx context.Context, params VacancySearchParams) (*VacancySearchResponse, error) {
	queryParams := url.Values{}

	if params.Text != "" {
		queryParams.Set("text", params.Text)
	}

	if params.Area > 0 {
		queryParams.Set("area", strconv.Itoa(params.Area))
	}

	if params.PerPage > 0 {
		queryParams.Set("per_page", strconv.Itoa(params.PerPage))
	} else {
		queryParams.Set("per_page", strconv.Itoa(defaultPerPage))
	}

	data, err := c.get(ctx, "/vacancies", queryParams)
	if err != nil {
		c.logger.Error("failed to search vacancies",
			zap.String("text", params.Text),
			zap.Int("area", params.Area),
			zap.Error(err),
		)
		return nil, fmt.Errorf("search vacancies: %w", err)
	}

	var response VacancySearchResponse
	if err := c.parseResponse(data, &response); err != nil {
		c.logger.Error("failed to parse search response", zap.Error(err))
		return nil, err
	}

	c.logger.Debug("vacancies found",
		zap.Int("found", response.Found),
		zap.Int("returned", len(response.Items)),
		zap.String("text", params.Text),
		zap.Int("area", params.Area),
	)

	return &response, nil
}

// FetchVacancies searches and converts the result into a vacancy list.
func (c *Client) FetchVacancies(ctx context.Context, params VacancySearchParams) (*models.VacancyList, error) {
	response, err := c.SearchVacancies(ctx, params)
	if err != nil {
		return nil, err
	}
	return ParseVacancies(response), nil
}

func ParseVacancies(response *VacancySearchResponse) *models.VacancyList {
	list := models.NewVacancyList()
	for i := range response.Items {
		list.Add(ParseVacancy(&response.Items[i]))
	}
	return list
}

// ParseVacancy converts an API item. The description is the snippet
// responsibility followed by the schedule name.
func ParseVacancy(item *VacancyItem) models.Vacancy {
	var parts []string
	if item.Snippet != nil && item.Snippet.Responsibility != nil {
		if s := strings.TrimSpace(*item.Snippet.Responsibility); s != "" {
			parts = append(parts, s)
		}
	}
	if item.Schedule != nil && item.Schedule.Name != "" {
		parts = append(parts, item.Schedule.Name)
	}

	var from, to *int
	if item.Salary != nil {
		from, to = item.Salary.From, item.Salary.To
	}

	return models.NewVacancy(
		item.ID,
		item.AlternateURL,
		item.Name,
		strings.Join(parts, ". "),
		item.Employer.Name,
		item.Area.Name,
		from,
		to,
	)
}
