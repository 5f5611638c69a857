package postgres

import (
	"testing"

	"hh-vacancy-search/internal/models"
	"hh-vacancy-search/internal/storage"

	"github.com/stretchr/testify/assert"
)

var _ storage.Store = (*Store)(nil)

func TestRowMapping_Unbounded(t *testing.T) {
	from := 120000
	v := models.NewVacancy("1", "u", "Dev", "d", "C", "Москва", &from, nil)

	row := toRow(v)
	assert.False(t, row.SalaryTo.Valid)
	assert.Equal(t, 120000.0, row.SalaryFrom)

	assert.Equal(t, v, row.toVacancy())
}

func TestRowMapping_Bounded(t *testing.T) {
	from, to := 100000, 150000
	v := models.NewVacancy("2", "", "QA", "", "", "", &from, &to)

	row := toRow(v)
	assert.True(t, row.SalaryTo.Valid)
	assert.Equal(t, 150000.0, row.SalaryTo.Float64)
	assert.Equal(t, v, row.toVacancy())
}

func TestRowMapping_NormalizesNegatives(t *testing.T) {
	row := vacancyRow{ID: "3", SalaryFrom: -10}
	row.SalaryTo.Valid = true
	row.SalaryTo.Float64 = -1

	v := row.toVacancy()
	assert.Equal(t, models.Salary(0), v.SalaryFrom)
	assert.True(t, v.SalaryTo.IsUnbounded())
}

func TestColumnsMatchExchangeForm(t *testing.T) {
	form := models.Vacancy{}.ExchangeForm()
	assert.Len(t, columns, len(form))
	for _, c := range columns {
		assert.Contains(t, form, c)
	}
}
