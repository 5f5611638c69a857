package headhunter

import "time"

type VacancySearchResponse struct {
	Items        []VacancyItem `json:"items"`
	Found        int           `json:"found"`
	Pages        int           `json:"pages"`
	Page         int           `json:"page"`
	PerPage      int           `json:"per_page"`
	AlternateURL string        `json:"alternate_url,omitempty"`
}

type VacancyItem struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Area         Area      `json:"area"`
	Salary       *Salary   `json:"salary"`
	PublishedAt  time.Time `json:"published_at"`
	URL          string    `json:"url"`
	AlternateURL string    `json:"alternate_url"`
	Employer     Employer  `json:"employer"`
	Snippet      *Snippet  `json:"snippet"`
	Schedule     *IDName   `json:"schedule"`
	Experience   *IDName   `json:"experience"`
	Employment   *IDName   `json:"employment"`
}

type Area struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Salary struct {
	From     *int   `json:"from"`
	To       *int   `json:"to"`
	Currency string `json:"currency"`
	Gross    bool   `json:"gross"`
}

type IDName struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Employer struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	URL          string `json:"url"`
	AlternateURL string `json:"alternate_url"`
}

type Snippet struct {
	Requirement    *string `json:"requirement"`
	Responsibility *string `json:"responsibility"`
}

type AreaResponse struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Areas    []AreaResponse `json:"areas"`
	ParentID *string        `json:"parent_id"`
}
