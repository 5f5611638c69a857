package models

import (
	"slices"
	"strings"
)

// VacancyList is an ordered collection of vacancies. Filters work in place
// and return the list so calls can be chained.
type VacancyList struct {
	vacancies []Vacancy
}

func NewVacancyList(vacancies ...Vacancy) *VacancyList {
	return &VacancyList{vacancies: slices.Clone(vacancies)}
}

func (l *VacancyList) Add(v Vacancy) {
	l.vacancies = append(l.vacancies, v)
}

func (l *VacancyList) Len() int {
	return len(l.vacancies)
}

// Items returns a copy of the vacancies in their current order.
func (l *VacancyList) Items() []Vacancy {
	return slices.Clone(l.vacancies)
}

// FilterBySalaryRange keeps vacancies whose range intersects [lo, hi].
func (l *VacancyList) FilterBySalaryRange(lo, hi Salary) *VacancyList {
	l.keep(func(v Vacancy) bool {
		return v.SalaryFrom <= hi && v.SalaryTo >= lo
	})
	return l
}

// TopN sorts descending by salary and keeps the first n. Ties keep their order.
func (l *VacancyList) TopN(n int) *VacancyList {
	if n <= 0 {
		l.vacancies = l.vacancies[:0]
		return l
	}

	slices.SortStableFunc(l.vacancies, func(a, b Vacancy) int {
		return Compare(b, a)
	})

	if n < len(l.vacancies) {
		l.vacancies = l.vacancies[:n]
	}
	return l
}

// FilterByWords keeps vacancies where any word occurs in the title or
// description, ignoring case. No words means nothing is kept.
func (l *VacancyList) FilterByWords(words []string) *VacancyList {
	lowered := make([]string, len(words))
	for i, w := range words {
		lowered[i] = strings.ToLower(w)
	}

	l.keep(func(v Vacancy) bool {
		text := strings.ToLower(v.Title + " " + v.Description)
		for _, w := range lowered {
			if strings.Contains(text, w) {
				return true
			}
		}
		return false
	})
	return l
}

func (l *VacancyList) keep(pred func(Vacancy) bool) {
	out := l.vacancies[:0]
	for _, v := range l.vacancies {
		if pred(v) {
			out = append(out, v)
		}
	}
	clear(l.vacancies[len(out):])
	l.vacancies = out
}
