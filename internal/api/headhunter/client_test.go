package headhunter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hh-vacancy-search/internal/models"
	"hh-vacancy-search/internal/regions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const vacancyJSON = `{
	"id": "123",
	"name": "Python Developer",
	"alternate_url": "https://hh.ru/vacancy/123",
	"employer": {"name": "TechCorp"},
	"area": {"id": "1", "name": "Москва"},
	"salary": {"from": 100000, "to": 200000, "currency": "RUR"},
	"snippet": {"responsibility": "Разработка", "requirement": "Python"},
	"schedule": {"id": "fullDay", "name": "Полный день"}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, zap.NewNop())
}

func TestSearchVacancies(t *testing.T) {
	var gotQuery map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/vacancies", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		gotQuery = map[string]string{
			"text":     r.URL.Query().Get("text"),
			"area":     r.URL.Query().Get("area"),
			"per_page": r.URL.Query().Get("per_page"),
		}
		w.Write([]byte(`{"items": [` + vacancyJSON + `], "found": 1}`))
	})

	list, err := client.FetchVacancies(context.Background(), VacancySearchParams{Text: "Python", Area: 1})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"text": "Python", "area": "1", "per_page": "20"}, gotQuery)
	require.Equal(t, 1, list.Len())
	assert.Equal(t, "Python Developer", list.Items()[0].Title)
}

func TestSearchVacancies_PerPageAndNoArea(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))
		assert.False(t, r.URL.Query().Has("area"))
		w.Write([]byte(`{"items": []}`))
	})

	list, err := client.FetchVacancies(context.Background(), VacancySearchParams{Text: "go", PerPage: 5})
	require.NoError(t, err)
	assert.Equal(t, 0, list.Len())
}

func TestDoRequest_NonOKIsAPIError(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Internal Server Error"))
	})

	_, err := client.SearchVacancies(context.Background(), VacancySearchParams{Text: "x"})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "Internal Server Error", apiErr.Body)
	assert.Contains(t, err.Error(), "API request failed: 500")
	assert.Equal(t, 1, calls, "no retries")
}

func TestDoRequest_BadJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": `))
	})

	_, err := client.SearchVacancies(context.Background(), VacancySearchParams{})
	assert.Error(t, err)
}

func TestParseVacancy(t *testing.T) {
	resp := `{"items": [` + vacancyJSON + `]}`
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(resp))
	})

	list, err := client.FetchVacancies(context.Background(), VacancySearchParams{})
	require.NoError(t, err)
	v := list.Items()[0]

	assert.Equal(t, "123", v.ID)
	assert.Equal(t, "https://hh.ru/vacancy/123", v.URL)
	assert.Equal(t, "Python Developer", v.Title)
	assert.Equal(t, "TechCorp", v.Company)
	assert.Equal(t, "Москва", v.Area)
	assert.Equal(t, models.Salary(100000), v.SalaryFrom)
	assert.Equal(t, models.Salary(200000), v.SalaryTo)
	assert.Equal(t, "Разработка. Полный день", v.Description)
}

func TestParseVacancy_MissingNested(t *testing.T) {
	v := ParseVacancy(&VacancyItem{ID: "9", Name: "Курьер"})

	assert.Equal(t, "", v.Description)
	assert.Equal(t, models.Salary(0), v.SalaryFrom)
	assert.True(t, v.SalaryTo.IsUnbounded())
}

func TestRegionTree(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/areas", r.URL.Path)
		w.Write([]byte(`[{"id": "1", "name": "Россия", "parent_id": null, "areas": [
			{"id": "2", "name": "Москва", "parent_id": "1", "areas": []},
			{"id": "3", "name": "Санкт-Петербург", "parent_id": "1", "areas": []}
		]}]`))
	})

	tree, err := client.RegionTree(context.Background())
	require.NoError(t, err)

	table, err := regions.Flatten(tree)
	require.NoError(t, err)
	assert.Equal(t, regions.Table{"Россия": 1, "Москва": 2, "Санкт-Петербург": 3}, table)
}

func TestRegionTree_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("maintenance"))
	})

	_, err := client.RegionTree(context.Background())

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Equal(t, "maintenance", apiErr.Body)
}
