package cli

import (
	"fmt"
	"io"
	"strings"

	"hh-vacancy-search/internal/models"
)

const descriptionMaxLen = 300

func FormatVacancy(v models.Vacancy) string {
	var sb strings.Builder

	sb.WriteString(v.Title + "\n")

	if v.Company != "" {
		sb.WriteString(fmt.Sprintf("Компания: %s\n", v.Company))
	}

	sb.WriteString(fmt.Sprintf("Зарплата: %s\n", FormatSalary(v.SalaryFrom, v.SalaryTo)))

	if v.Area != "" {
		sb.WriteString(fmt.Sprintf("Город: %s\n", v.Area))
	}

	if v.Description != "" {
		sb.WriteString(fmt.Sprintf("Описание: %s\n", TruncateString(v.Description, descriptionMaxLen)))
	}

	if v.URL != "" {
		sb.WriteString(fmt.Sprintf("Ссылка: %s\n", v.URL))
	}

	return sb.String()
}

// FormatSalary renders a normalized salary range. 0 and Unbounded mean
// the bound was not given.
func FormatSalary(from, to models.Salary) string {
	hasFrom := from > 0
	hasTo := !to.IsUnbounded()

	switch {
	case hasFrom && hasTo:
		return fmt.Sprintf("%s - %s ₽", from, to)
	case hasFrom:
		return fmt.Sprintf("от %s ₽", from)
	case hasTo:
		return fmt.Sprintf("до %s ₽", to)
	}
	return "не указана"
}

func DisplayVacancies(w io.Writer, vacancies []models.Vacancy) {
	if len(vacancies) == 0 {
		fmt.Fprintln(w, "Вакансии не найдены")
		return
	}

	fmt.Fprintf(w, "Найдено вакансий: %d\n\n", len(vacancies))
	for i, v := range vacancies {
		fmt.Fprintf(w, "%d. %s\n", i+1, FormatVacancy(v))
	}
}

// TruncateString cuts s to maxLen runes, ending with "...".
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
