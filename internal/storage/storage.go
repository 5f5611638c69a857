// Package storage defines the persistence contract for saved vacancies.
package storage

import (
	"context"

	"hh-vacancy-search/internal/models"
)

// Store keeps vacancies keyed by ID. The bool results report whether the
// operation took effect: false for a duplicate Create or for an Update or
// Delete of an unknown ID. Errors are reserved for I/O failures.
type Store interface {
	Create(ctx context.Context, v models.Vacancy) (bool, error)
	Read(ctx context.Context) ([]models.Vacancy, error)
	Update(ctx context.Context, v models.Vacancy) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ReadList loads everything in s as a vacancy list.
func ReadList(ctx context.Context, s Store) (*models.VacancyList, error) {
	vacancies, err := s.Read(ctx)
	if err != nil {
		return nil, err
	}
	return models.NewVacancyList(vacancies...), nil
}
