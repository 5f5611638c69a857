// Package cli runs the interactive terminal dialogue.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"hh-vacancy-search/internal/models"
)

// ErrInputClosed is returned once the input stream is exhausted.
var ErrInputClosed = errors.New("input closed")

type MenuChoice int

const (
	MenuShowSaved MenuChoice = iota + 1
	MenuNewSearch
	MenuExit
)

const (
	msgInvalid       = "Введено некорректное значение"
	msgInvalidRetry  = "Введено некорректное значение, попробуйте снова"
	msgChoice        = "Ваш выбор: "
	regionHintsLimit = 5
)

// RegionLookup resolves region names. *regions.Resolver implements it.
type RegionLookup interface {
	Resolve(name string) (int, bool)
	Suggest(query string, limit int) []string
}

type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (p *Prompter) ShowMenu() (MenuChoice, error) {
	fmt.Fprint(p.out, "Доступные действия: [1, 2, 3]\n"+
		"1. Показать сохраненные вакансии\n"+
		"2. Сделать новый поиск вакансий\n"+
		"3. Выход\n")

	for {
		line, err := p.readLine(msgChoice)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(line)
		if err == nil && n >= int(MenuShowSaved) && n <= int(MenuExit) {
			return MenuChoice(n), nil
		}
		p.println(msgInvalid)
	}
}

func (p *Prompter) AskSearchQuery() (string, error) {
	return p.readLine("Введите запрос для поиска: ")
}

// AskTopN returns 0 when the user declines.
func (p *Prompter) AskTopN() (int, error) {
	yes, err := p.askYesNo("Вывести только топ N вакансий? Да/Нет")
	if err != nil || !yes {
		return 0, err
	}
	return p.askInt("Введите количество вакансий для отображения: ")
}

// AskFilterRange returns nil bounds when the user declines.
func (p *Prompter) AskFilterRange() (lo, hi *models.Salary, err error) {
	yes, err := p.askYesNo("Фильтровать вакансии по зарплате? Да/Нет")
	if err != nil || !yes {
		return nil, nil, err
	}

	minVal, err := p.askInt("Введите минимальную зарплату: ")
	if err != nil {
		return nil, nil, err
	}
	maxVal, err := p.askInt("Введите максимальную зарплату: ")
	if err != nil {
		return nil, nil, err
	}

	l, h := models.Salary(minVal), models.Salary(maxVal)
	return &l, &h, nil
}

// AskRegion asks until the answer names a known region.
func (p *Prompter) AskRegion(lookup RegionLookup) (int, error) {
	for {
		name, err := p.readLine("Введите регион для поиска вакансий: ")
		if err != nil {
			return 0, err
		}

		if id, ok := lookup.Resolve(name); ok {
			return id, nil
		}

		p.println(fmt.Sprintf("Введенный регион %s отсутствует в справочнике!", name))
		if hints := lookup.Suggest(name, regionHintsLimit); len(hints) > 0 {
			p.println("Возможно, вы имели в виду: " + strings.Join(hints, ", "))
		}
	}
}

// AskFilterWords returns the lower-cased words, or nil when the user declines.
func (p *Prompter) AskFilterWords() ([]string, error) {
	yes, err := p.askYesNo("Фильтровать вакансии по ключевому слову? Да/Нет")
	if err != nil || !yes {
		return nil, err
	}

	line, err := p.readLine("Введите ключевое слово для фильтрации: ")
	if err != nil {
		return nil, err
	}
	return strings.Fields(strings.ToLower(line)), nil
}

func (p *Prompter) askYesNo(question string) (bool, error) {
	p.println(question + "\n")

	for {
		line, err := p.readLine(msgChoice)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case "да", "yes":
			return true, nil
		case "нет", "no":
			return false, nil
		}
		p.println(msgInvalid)
	}
}

func (p *Prompter) askInt(message string) (int, error) {
	for {
		line, err := p.readLine(message)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		p.println(msgInvalidRetry)
	}
}

// readLine prints message and returns the next trimmed line.
func (p *Prompter) readLine(message string) (string, error) {
	fmt.Fprint(p.out, message)

	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *Prompter) println(s string) {
	fmt.Fprintln(p.out, s)
}
