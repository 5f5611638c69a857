package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func TestNewVacancy_Normalization(t *testing.T) {
	cases := []struct {
		name     string
		from, to *int
		wantFrom Salary
		wantTo   Salary
	}{
		{"both set", intp(100000), intp(150000), 100000, 150000},
		{"no lower bound", nil, intp(150000), 0, 150000},
		{"no upper bound", intp(120000), nil, 120000, Unbounded},
		{"neither", nil, nil, 0, Unbounded},
		{"negative bounds", intp(-1), intp(-5), 0, Unbounded},
		{"zero is a value", intp(0), intp(0), 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := NewVacancy("1", "", "t", "", "c", "a", tc.from, tc.to)
			from, to := v.SalaryTuple()
			assert.Equal(t, tc.wantFrom, from)
			assert.Equal(t, tc.wantTo, to)
			assert.GreaterOrEqual(t, float64(from), 0.0)
		})
	}
}

func TestCompare_IgnoresIdentity(t *testing.T) {
	a := NewVacancy("1", "u1", "Python Developer", "", "A", "Москва", intp(100), intp(200))
	b := NewVacancy("2", "u2", "Java Developer", "", "B", "Сочи", intp(100), intp(200))

	assert.True(t, a.Equal(b))
	assert.Equal(t, 0, Compare(a, b))
	assert.False(t, a.Less(b))
	assert.False(t, b.Less(a))
}

func TestCompare_Ordering(t *testing.T) {
	low := NewVacancy("1", "", "", "", "", "", intp(100), intp(200))
	mid := NewVacancy("2", "", "", "", "", "", intp(100), nil)
	high := NewVacancy("3", "", "", "", "", "", intp(150), intp(160))

	assert.True(t, low.Less(mid), "upper bound breaks the tie on equal lower bounds")
	assert.True(t, mid.Less(high), "lower bound decides first")
	assert.True(t, low.Less(high), "transitive")
	assert.Equal(t, 1, Compare(high, low))
}

func TestExchangeForm(t *testing.T) {
	v := NewVacancy("12345", "https://test.com/vacancy/12345", "Python Developer",
		"Разработка на Python", "Test Company", "Москва", intp(100000), nil)

	form := v.ExchangeForm()
	assert.Equal(t, "12345", form["vacancy_id"])
	assert.Equal(t, 100000.0, form["salary_from"])
	assert.Equal(t, "inf", form["salary_to"])
	assert.Len(t, form, 8)
}

func TestVacancyJSON_RoundTripsUnbounded(t *testing.T) {
	v := NewVacancy("7", "u", "Dev", "d", "C", "A", intp(120000), nil)

	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"salary_to":"inf"`)
	assert.Contains(t, string(data), `"salary_from":120000`)

	var got Vacancy
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, v, got)
	assert.True(t, got.SalaryTo.IsUnbounded())
}

func TestVacancyJSON_Lenient(t *testing.T) {
	var got Vacancy
	err := json.Unmarshal([]byte(`{"vacancy_id": 999, "title": "x", "salary_from": null, "salary_to": -3}`), &got)
	require.NoError(t, err)

	assert.Equal(t, "999", got.ID)
	assert.Equal(t, Salary(0), got.SalaryFrom)
	assert.Equal(t, Unbounded, got.SalaryTo)
}

func TestVacancyJSON_RejectsUnknownSalaryString(t *testing.T) {
	var got Vacancy
	err := json.Unmarshal([]byte(`{"vacancy_id": "1", "salary_to": "lots"}`), &got)
	assert.Error(t, err)
}
