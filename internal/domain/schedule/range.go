// Package schedule resuelve rangos de fechas para las vistas del calendario
// de citas (día, semana, mes).
package schedule

import (
	"fmt"
	"time"
)

// Modos de vista del calendario.
const (
	ViewDay   = "day"
	ViewWeek  = "week"
	ViewMonth = "month"
)

// Range rango semiabierto [From, To): To es el inicio del período siguiente.
type Range struct {
	From time.Time
	To   time.Time
}

// Resolve calcula el rango de fechas que cubre la vista indicada alrededor de
// la fecha de referencia, en la zona horaria de ref. La semana comienza el
// domingo; el mes cubre desde el día 1 hasta el 1 del mes siguiente.
func Resolve(view string, ref time.Time) (Range, error) {
	switch view {
	case ViewDay:
		return Range{From: startOfDay(ref), To: startOfDay(ref.AddDate(0, 0, 1))}, nil
	case ViewWeek:
		wd := int(ref.Weekday())
		start := startOfDay(ref.AddDate(0, 0, -wd))
		return Range{From: start, To: startOfDay(ref.AddDate(0, 0, 7-wd))}, nil
	case ViewMonth:
		first := time.Date(ref.Year(), ref.Month(), 1, 12, 0, 0, 0, ref.Location())
		return Range{From: startOfDay(first), To: startOfDay(first.AddDate(0, 1, 0))}, nil
	default:
		return Range{}, fmt.Errorf("vista de calendario desconocida: %q", view)
	}
}

// startOfDay devuelve las 00:00 del día de t en su zona horaria. En días donde
// el cambio de horario elimina la medianoche, time.Date normaliza hacia el día
// anterior; en ese caso se avanza hasta el primer instante válido del día.
func startOfDay(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	for day.Day() != t.Day() {
		day = day.Add(30 * time.Minute)
	}
	return day
}

// Contains indica si t cae dentro del rango semiabierto.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.From) && t.Before(r.To)
}
