package client

import (
	"context"
	"net/url"
	"sync"
	"time"
)

// DefaultDebounce retardo de la búsqueda de texto libre antes de disparar la
// petición.
const DefaultDebounce = 500 * time.Millisecond

// Fetcher obtiene una página del recurso con los filtros y paginación dados.
type Fetcher[T any] func(ctx context.Context, query url.Values, page, size int) (Page[T], error)

// ListState instantánea del estado de un listado paginado.
type ListState[T any] struct {
	Items         []T
	Loading       bool
	Error         string
	Page          int
	Size          int
	TotalElements int64
}

// ListStore mantiene el estado de un listado paginado: ítems, carga, error y
// filtros. El timer del debounce dispara el fetch en su propia goroutine, así
// que todo el estado vive detrás del mutex; los lectores toman una copia con
// Snapshot.
type ListStore[T any] struct {
	fetch    Fetcher[T]
	debounce time.Duration

	mu    sync.Mutex
	state ListState[T]
	query url.Values
	timer *time.Timer
}

// NewListStore construye el store con tamaño de página 12 y debounce de 500ms.
func NewListStore[T any](fetch Fetcher[T]) *ListStore[T] {
	return &ListStore[T]{
		fetch:    fetch,
		debounce: DefaultDebounce,
		state:    ListState[T]{Size: 12},
		query:    url.Values{},
	}
}

// SetDebounce ajusta el retardo del debounce (útil en pruebas).
func (s *ListStore[T]) SetDebounce(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debounce = d
}

// Snapshot devuelve una copia del estado actual. El slice de ítems se comparte
// con el store pero nunca se modifica en el lugar.
func (s *ListStore[T]) Snapshot() ListState[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Fetch carga la página actual. Si la petición falla conserva los ítems
// previos y deja el mensaje de error para mostrar; el indicador de carga se
// enciende y apaga exactamente una vez. El mutex se suelta durante la llamada
// remota.
func (s *ListStore[T]) Fetch(ctx context.Context) {
	s.mu.Lock()
	s.state.Loading = true
	query := cloneValues(s.query)
	page, size := s.state.Page, s.state.Size
	s.mu.Unlock()

	res, err := s.fetch(ctx, query, page, size)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = false
	if err != nil {
		s.state.Error = "no se pudieron cargar los datos: " + err.Error()
		return
	}
	s.state.Items = res.Content
	s.state.TotalElements = res.TotalElements
	s.state.Error = ""
}

// Mutate ejecuta una operación remota (alta, edición o baja). Si falla
// devuelve el error sin tocar el estado; si tiene éxito recarga el listado.
func (s *ListStore[T]) Mutate(ctx context.Context, op func(ctx context.Context) error) error {
	if err := op(ctx); err != nil {
		return err
	}
	s.Fetch(ctx)
	return nil
}

// SetQuery actualiza la búsqueda de texto libre con debounce: resetea la
// página a cero y reprograma el timer, cancelando el fetch pendiente si el
// usuario sigue tipeando.
func (s *ListStore[T]) SetQuery(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if value == "" {
		s.query.Del(key)
	} else {
		s.query.Set(key, value)
	}
	s.state.Page = 0

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		s.Fetch(context.Background())
	})
}

// SetFilter aplica un filtro estructurado de inmediato y vuelve a la primera
// página.
func (s *ListStore[T]) SetFilter(ctx context.Context, key, value string) {
	s.mu.Lock()
	if value == "" {
		s.query.Del(key)
	} else {
		s.query.Set(key, value)
	}
	s.state.Page = 0
	s.mu.Unlock()
	s.Fetch(ctx)
}

// SetPage cambia de página y recarga de inmediato.
func (s *ListStore[T]) SetPage(ctx context.Context, page int) {
	if page < 0 {
		page = 0
	}
	s.mu.Lock()
	s.state.Page = page
	s.mu.Unlock()
	s.Fetch(ctx)
}

// SetSize cambia el tamaño de página, vuelve a la primera y recarga.
func (s *ListStore[T]) SetSize(ctx context.Context, size int) {
	if size <= 0 {
		size = 12
	}
	s.mu.Lock()
	s.state.Size = size
	s.state.Page = 0
	s.mu.Unlock()
	s.Fetch(ctx)
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}
