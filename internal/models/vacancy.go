package models

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Salary is one bound of a salary range. Unbounded marks a missing upper bound.
type Salary float64

var Unbounded = Salary(math.Inf(1))

const unboundedLiteral = "inf"

func (s Salary) IsUnbounded() bool {
	return math.IsInf(float64(s), 1)
}

func (s Salary) String() string {
	if s.IsUnbounded() {
		return unboundedLiteral
	}
	return strconv.FormatFloat(float64(s), 'f', -1, 64)
}

// MarshalJSON writes Unbounded as the string "inf", JSON has no infinity.
func (s Salary) MarshalJSON() ([]byte, error) {
	if s.IsUnbounded() {
		return []byte(`"` + unboundedLiteral + `"`), nil
	}
	return []byte(s.String()), nil
}

// exchangeValue is the value used in the exchange form: float64 or "inf".
func (s Salary) exchangeValue() any {
	if s.IsUnbounded() {
		return unboundedLiteral
	}
	return float64(s)
}

// Vacancy is one normalized vacancy listing.
type Vacancy struct {
	ID          string `json:"vacancy_id"`
	URL         string `json:"vacancy_url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Company     string `json:"company_name"`
	Area        string `json:"area_name"`
	SalaryFrom  Salary `json:"salary_from"`
	SalaryTo    Salary `json:"salary_to"`
}

// NewVacancy builds a Vacancy. A nil or negative lower bound becomes 0,
// a nil or negative upper bound becomes Unbounded.
func NewVacancy(id, url, title, description, company, area string, from, to *int) Vacancy {
	v := Vacancy{
		ID:          id,
		URL:         url,
		Title:       title,
		Description: description,
		Company:     company,
		Area:        area,
		SalaryFrom:  0,
		SalaryTo:    Unbounded,
	}
	if from != nil && *from >= 0 {
		v.SalaryFrom = Salary(*from)
	}
	if to != nil && *to >= 0 {
		v.SalaryTo = Salary(*to)
	}
	return v
}

func (v Vacancy) SalaryTuple() (Salary, Salary) {
	return v.SalaryFrom, v.SalaryTo
}

// Compare orders vacancies by (SalaryFrom, SalaryTo). Identity fields are ignored.
func Compare(a, b Vacancy) int {
	if c := cmp.Compare(a.SalaryFrom, b.SalaryFrom); c != 0 {
		return c
	}
	return cmp.Compare(a.SalaryTo, b.SalaryTo)
}

func (v Vacancy) Less(other Vacancy) bool {
	return Compare(v, other) < 0
}

// Equal reports whether both salary bounds match. Two vacancies with
// different ids and titles but the same bounds are equal.
func (v Vacancy) Equal(other Vacancy) bool {
	return Compare(v, other) == 0
}

// ExchangeForm returns the flat mapping stored on disk.
func (v Vacancy) ExchangeForm() map[string]any {
	return map[string]any{
		"vacancy_id":   v.ID,
		"vacancy_url":  v.URL,
		"title":        v.Title,
		"description":  v.Description,
		"company_name": v.Company,
		"area_name":    v.Area,
		"salary_from":  v.SalaryFrom.exchangeValue(),
		"salary_to":    v.SalaryTo.exchangeValue(),
	}
}

type vacancyJSON struct {
	ID          json.RawMessage `json:"vacancy_id"`
	URL         string          `json:"vacancy_url"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Company     string          `json:"company_name"`
	Area        string          `json:"area_name"`
	SalaryFrom  json.RawMessage `json:"salary_from"`
	SalaryTo    json.RawMessage `json:"salary_to"`
}

// UnmarshalJSON reads the exchange form back and re-applies salary normalization.
func (v *Vacancy) UnmarshalJSON(data []byte) error {
	var raw vacancyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	id, err := decodeID(raw.ID)
	if err != nil {
		return fmt.Errorf("vacancy_id: %w", err)
	}

	from, err := decodeSalary(raw.SalaryFrom, 0)
	if err != nil {
		return fmt.Errorf("salary_from: %w", err)
	}

	to, err := decodeSalary(raw.SalaryTo, Unbounded)
	if err != nil {
		return fmt.Errorf("salary_to: %w", err)
	}

	*v = Vacancy{
		ID:          id,
		URL:         raw.URL,
		Title:       raw.Title,
		Description: raw.Description,
		Company:     raw.Company,
		Area:        raw.Area,
		SalaryFrom:  from,
		SalaryTo:    to,
	}
	return nil
}

func decodeID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}

// decodeSalary accepts a number, "inf" or null. Missing, null and negative
// values fall back to def.
func decodeSalary(raw json.RawMessage, def Salary) (Salary, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return def, nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, err
		}
		if s == unboundedLiteral {
			return Unbounded, nil
		}
		return 0, fmt.Errorf("unexpected string %q", s)
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, err
	}
	if f < 0 {
		return def, nil
	}
	return Salary(f), nil
}
