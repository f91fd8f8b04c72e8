package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveDay(t *testing.T) {
	ref := time.Date(2024, time.March, 15, 14, 37, 9, 0, time.UTC)
	r, err := Resolve(ViewDay, ref)
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.March, 15), r.From)
	assert.Equal(t, date(2024, time.March, 16), r.To)
}

func TestResolveWeekStartsSunday(t *testing.T) {
	// Miércoles 13 de marzo de 2024: la semana va del domingo 10 al domingo 17.
	r, err := Resolve(ViewWeek, date(2024, time.March, 13))
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.March, 10), r.From)
	assert.Equal(t, date(2024, time.March, 17), r.To)

	// Un domingo es su propio inicio de semana.
	r, err = Resolve(ViewWeek, date(2024, time.March, 10))
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.March, 10), r.From)
}

func TestResolveWeekCrossesMonthAndYear(t *testing.T) {
	// Miércoles 1 de enero de 2025: la semana arranca el domingo 29/12/2024.
	r, err := Resolve(ViewWeek, date(2025, time.January, 1))
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.December, 29), r.From)
	assert.Equal(t, date(2025, time.January, 5), r.To)
}

func TestResolveMonth(t *testing.T) {
	r, err := Resolve(ViewMonth, date(2024, time.February, 20))
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.February, 1), r.From)
	assert.Equal(t, date(2024, time.March, 1), r.To)

	// Diciembre cruza el año.
	r, err = Resolve(ViewMonth, date(2023, time.December, 31))
	require.NoError(t, err)
	assert.Equal(t, date(2023, time.December, 1), r.From)
	assert.Equal(t, date(2024, time.January, 1), r.To)
}

func TestResolveRespectsLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/Santiago")
	if err != nil {
		t.Skip("zona horaria no disponible en el entorno")
	}
	// El 8 de septiembre de 2024 Chile adelanta el reloj: la medianoche no
	// existe y el día comienza a la 01:00.
	ref := time.Date(2024, time.September, 8, 10, 0, 0, 0, loc)
	r, err := Resolve(ViewDay, ref)
	require.NoError(t, err)
	assert.Equal(t, loc, r.From.Location())
	assert.Equal(t, 8, r.From.Day())
	assert.Equal(t, 1, r.From.Hour())
	assert.Equal(t, 23*time.Hour, r.To.Sub(r.From))
}

func TestResolveWeekAndMonthOnDSTGapDay(t *testing.T) {
	loc, err := time.LoadLocation("America/Santiago")
	if err != nil {
		t.Skip("zona horaria no disponible en el entorno")
	}
	// El 8/9/2024 es domingo: la semana debe arrancar ese mismo día, en su
	// primer instante válido, aunque la referencia caiga un miércoles.
	ref := time.Date(2024, time.September, 11, 10, 0, 0, 0, loc)
	r, err := Resolve(ViewWeek, ref)
	require.NoError(t, err)
	assert.Equal(t, 8, r.From.Day())
	assert.Equal(t, time.September, r.From.Month())
	assert.Equal(t, 1, r.From.Hour())
	assert.Equal(t, 15, r.To.Day())
	assert.Equal(t, 0, r.To.Hour())

	r, err = Resolve(ViewMonth, ref)
	require.NoError(t, err)
	assert.Equal(t, 1, r.From.Day())
	assert.Equal(t, 0, r.From.Hour())
	assert.Equal(t, time.October, r.To.Month())
}

func TestResolveUnknownView(t *testing.T) {
	_, err := Resolve("quarter", date(2024, time.March, 1))
	assert.Error(t, err)
}

func TestRangeContains(t *testing.T) {
	r, _ := Resolve(ViewDay, date(2024, time.March, 15))
	assert.True(t, r.Contains(date(2024, time.March, 15)))
	assert.True(t, r.Contains(time.Date(2024, time.March, 15, 23, 59, 59, 0, time.UTC)))
	assert.False(t, r.Contains(r.To))
}
