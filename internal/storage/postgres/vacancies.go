package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"hh-vacancy-search/internal/models"

	"go.uber.org/zap"
)

const table = "saved_vacancies"

var columns = []string{
	"vacancy_id", "vacancy_url", "title", "description",
	"company_name", "area_name", "salary_from", "salary_to",
}

type vacancyRow struct {
	ID          string          `db:"vacancy_id"`
	URL         string          `db:"vacancy_url"`
	Title       string          `db:"title"`
	Description string          `db:"description"`
	Company     string          `db:"company_name"`
	Area        string          `db:"area_name"`
	SalaryFrom  float64         `db:"salary_from"`
	SalaryTo    sql.NullFloat64 `db:"salary_to"`
}

// toRow stores an unbounded upper salary as NULL.
func toRow(v models.Vacancy) vacancyRow {
	row := vacancyRow{
		ID:          v.ID,
		URL:         v.URL,
		Title:       v.Title,
		Description: v.Description,
		Company:     v.Company,
		Area:        v.Area,
		SalaryFrom:  float64(v.SalaryFrom),
	}
	if !v.SalaryTo.IsUnbounded() {
		row.SalaryTo = sql.NullFloat64{Float64: float64(v.SalaryTo), Valid: true}
	}
	return row
}

func (r vacancyRow) toVacancy() models.Vacancy {
	v := models.Vacancy{
		ID:          r.ID,
		URL:         r.URL,
		Title:       r.Title,
		Description: r.Description,
		Company:     r.Company,
		Area:        r.Area,
		SalaryFrom:  models.Salary(r.SalaryFrom),
		SalaryTo:    models.Unbounded,
	}
	if r.SalaryFrom < 0 {
		v.SalaryFrom = 0
	}
	if r.SalaryTo.Valid && r.SalaryTo.Float64 >= 0 {
		v.SalaryTo = models.Salary(r.SalaryTo.Float64)
	}
	return v
}

func (s *Store) Create(ctx context.Context, v models.Vacancy) (bool, error) {
	row := toRow(v)

	query := `
		INSERT INTO saved_vacancies (
			vacancy_id, vacancy_url, title, description,
			company_name, area_name, salary_from, salary_to
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (vacancy_id) DO NOTHING
	`

	result, err := s.sess.
		InsertBySql(query,
			row.ID,
			row.URL,
			row.Title,
			row.Description,
			row.Company,
			row.Area,
			row.SalaryFrom,
			row.SalaryTo,
		).
		ExecContext(ctx)

	if err != nil {
		s.logger.Error("failed to save vacancy",
			zap.String("vacancy_id", v.ID),
			zap.Error(err),
		)
		return false, fmt.Errorf("create vacancy: %w", err)
	}

	inserted, _ := result.RowsAffected()
	return inserted > 0, nil
}

func (s *Store) Read(ctx context.Context) ([]models.Vacancy, error) {
	var rows []vacancyRow

	_, err := s.sess.
		Select(columns...).
		From(table).
		OrderBy("seq").
		LoadContext(ctx, &rows)

	if err != nil {
		s.logger.Error("failed to read saved vacancies", zap.Error(err))
		return nil, fmt.Errorf("read vacancies: %w", err)
	}

	out := make([]models.Vacancy, len(rows))
	for i := range rows {
		out[i] = rows[i].toVacancy()
	}
	return out, nil
}

func (s *Store) Update(ctx context.Context, v models.Vacancy) (bool, error) {
	row := toRow(v)

	result, err := s.sess.
		Update(table).
		Set("vacancy_url", row.URL).
		Set("title", row.Title).
		Set("description", row.Description).
		Set("company_name", row.Company).
		Set("area_name", row.Area).
		Set("salary_from", row.SalaryFrom).
		Set("salary_to", row.SalaryTo).
		Where("vacancy_id = ?", row.ID).
		ExecContext(ctx)

	if err != nil {
		s.logger.Error("failed to update vacancy",
			zap.String("vacancy_id", v.ID),
			zap.Error(err),
		)
		return false, fmt.Errorf("update vacancy: %w", err)
	}

	updated, _ := result.RowsAffected()
	return updated > 0, nil
}

func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	result, err := s.sess.
		DeleteFrom(table).
		Where("vacancy_id = ?", id).
		ExecContext(ctx)

	if err != nil {
		s.logger.Error("failed to delete vacancy",
			zap.String("vacancy_id", id),
			zap.Error(err),
		)
		return false, fmt.Errorf("delete vacancy: %w", err)
	}

	deleted, _ := result.RowsAffected()

	s.logger.Info("vacancy deleted",
		zap.String("vacancy_id", id),
		zap.Int64("count", deleted),
	)

	return deleted > 0, nil
}
