package cli

import (
	"bytes"
	"strings"
	"testing"

	"hh-vacancy-search/internal/models"
	"hh-vacancy-search/internal/regions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrompter(lines ...string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	input := strings.Join(lines, "\n")
	if len(lines) > 0 {
		input += "\n"
	}
	return NewPrompter(strings.NewReader(input), &out), &out
}

func TestShowMenu(t *testing.T) {
	cases := map[string]MenuChoice{
		"1": MenuShowSaved,
		"2": MenuNewSearch,
		"3": MenuExit,
	}

	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			p, out := newTestPrompter(in)
			got, err := p.ShowMenu()
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.Contains(t, out.String(), "1. Показать сохраненные вакансии")
		})
	}
}

func TestShowMenu_RetriesInvalid(t *testing.T) {
	p, out := newTestPrompter("4", "abc", "2")

	got, err := p.ShowMenu()
	require.NoError(t, err)
	assert.Equal(t, MenuNewSearch, got)
	assert.Equal(t, 2, strings.Count(out.String(), msgInvalid))
}

func TestShowMenu_EOF(t *testing.T) {
	p, _ := newTestPrompter()

	_, err := p.ShowMenu()
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestAskSearchQuery_Trims(t *testing.T) {
	p, _ := newTestPrompter("  Python developer  ")

	got, err := p.AskSearchQuery()
	require.NoError(t, err)
	assert.Equal(t, "Python developer", got)
}

func TestAskTopN(t *testing.T) {
	p, _ := newTestPrompter("Да", "5")
	got, err := p.AskTopN()
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	p, _ = newTestPrompter("нет")
	got, err = p.AskTopN()
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestAskTopN_RetriesInvalid(t *testing.T) {
	p, out := newTestPrompter("maybe", "yes", "abc", "3")

	got, err := p.AskTopN()
	require.NoError(t, err)
	assert.Equal(t, 3, got)
	assert.Contains(t, out.String(), msgInvalid)
	assert.Contains(t, out.String(), msgInvalidRetry)
}

func TestAskFilterRange(t *testing.T) {
	p, _ := newTestPrompter("да", "100000", "200000")
	lo, hi, err := p.AskFilterRange()
	require.NoError(t, err)
	require.NotNil(t, lo)
	require.NotNil(t, hi)
	assert.Equal(t, models.Salary(100000), *lo)
	assert.Equal(t, models.Salary(200000), *hi)

	p, _ = newTestPrompter("нет")
	lo, hi, err = p.AskFilterRange()
	require.NoError(t, err)
	assert.Nil(t, lo)
	assert.Nil(t, hi)
}

func TestAskRegion(t *testing.T) {
	lookup := regions.NewStaticResolver(regions.Table{"Москва": 1, "Сочи": 237})

	p, _ := newTestPrompter("Москва")
	got, err := p.AskRegion(lookup)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestAskRegion_RetriesWithHints(t *testing.T) {
	lookup := regions.NewStaticResolver(regions.Table{"Москва": 1, "Московская область": 2019})

	p, out := newTestPrompter("Моск", "Москва")
	got, err := p.AskRegion(lookup)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
	assert.Contains(t, out.String(), "Введенный регион Моск отсутствует в справочнике!")
	assert.Contains(t, out.String(), "Москва, Московская область")
}

func TestAskRegion_EOF(t *testing.T) {
	lookup := regions.NewStaticResolver(regions.Table{"Москва": 1})

	p, _ := newTestPrompter("Питер")
	_, err := p.AskRegion(lookup)
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestAskFilterWords(t *testing.T) {
	p, _ := newTestPrompter("да", "Python  Developer")
	got, err := p.AskFilterWords()
	require.NoError(t, err)
	assert.Equal(t, []string{"python", "developer"}, got)

	p, _ = newTestPrompter("no")
	got, err = p.AskFilterWords()
	require.NoError(t, err)
	assert.Nil(t, got)
}
