package client

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListStoreFetchReplacesItems(t *testing.T) {
	store := NewListStore(func(ctx context.Context, q url.Values, page, size int) (Page[testItem], error) {
		return Page[testItem]{
			Content:       []testItem{{ID: 1, Name: "Aceite"}, {ID: 2, Name: "Filtro"}},
			TotalElements: 2,
		}, nil
	})

	store.Fetch(context.Background())

	state := store.Snapshot()
	assert.False(t, state.Loading)
	assert.Empty(t, state.Error)
	require.Len(t, state.Items, 2)
	assert.Equal(t, int64(2), state.TotalElements)
}

func TestListStoreFailedFetchKeepsPriorItems(t *testing.T) {
	var fail atomic.Bool
	store := NewListStore(func(ctx context.Context, q url.Values, page, size int) (Page[testItem], error) {
		if fail.Load() {
			return Page[testItem]{}, errors.New("timeout")
		}
		return Page[testItem]{Content: []testItem{{ID: 1, Name: "Aceite"}}, TotalElements: 1}, nil
	})

	store.Fetch(context.Background())
	require.Len(t, store.Snapshot().Items, 1)

	fail.Store(true)
	store.Fetch(context.Background())

	state := store.Snapshot()
	assert.False(t, state.Loading)
	assert.NotEmpty(t, state.Error)
	assert.Len(t, state.Items, 1, "ante un fallo se conserva lo último cargado")
}

func TestListStoreFailedMutationLeavesStateUntouched(t *testing.T) {
	var fetches int
	store := NewListStore(func(ctx context.Context, q url.Values, page, size int) (Page[testItem], error) {
		fetches++
		return Page[testItem]{Content: []testItem{{ID: 1}}, TotalElements: 1}, nil
	})
	store.Fetch(context.Background())
	require.Equal(t, 1, fetches)

	err := store.Mutate(context.Background(), func(ctx context.Context) error {
		return errors.New("el monto del pago debe ser positivo")
	})
	require.Error(t, err)
	assert.Equal(t, 1, fetches, "una mutación fallida no recarga")

	require.NoError(t, store.Mutate(context.Background(), func(ctx context.Context) error {
		return nil
	}))
	assert.Equal(t, 2, fetches, "una mutación exitosa recarga el listado")
}

func TestListStoreDebouncedQueryFiresOnce(t *testing.T) {
	var fetches atomic.Int32
	var lastQuery atomic.Value
	var lastPage atomic.Int32
	done := make(chan struct{}, 4)
	store := NewListStore(func(ctx context.Context, q url.Values, page, size int) (Page[testItem], error) {
		fetches.Add(1)
		lastQuery.Store(q.Get("search"))
		lastPage.Store(int32(page))
		done <- struct{}{}
		return Page[testItem]{}, nil
	})
	store.SetDebounce(20 * time.Millisecond)

	store.SetQuery("search", "a")
	store.SetQuery("search", "ac")
	store.SetQuery("search", "ace")

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("el fetch con debounce nunca se disparó")
	}
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, int32(1), fetches.Load(), "tipeos sucesivos colapsan en un solo fetch")
	assert.Equal(t, "ace", lastQuery.Load())
	assert.Equal(t, int32(0), lastPage.Load(), "cambiar la búsqueda vuelve a la primera página")
}

func TestListStoreConcurrentTypingAndReads(t *testing.T) {
	store := NewListStore(func(ctx context.Context, q url.Values, page, size int) (Page[testItem], error) {
		return Page[testItem]{Content: []testItem{{ID: 1}}, TotalElements: 1}, nil
	})
	store.SetDebounce(time.Millisecond)

	// El timer del debounce dispara el fetch en otra goroutine mientras la
	// UI sigue tipeando, paginando y leyendo el estado.
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			store.SetQuery("search", "ace")
			time.Sleep(time.Millisecond)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			store.Fetch(context.Background())
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_ = store.Snapshot()
		}
	}()
	wg.Wait()
	time.Sleep(20 * time.Millisecond)

	state := store.Snapshot()
	assert.False(t, state.Loading)
	assert.Equal(t, int64(1), state.TotalElements)
}

func TestListStoreFilterChangeResetsPage(t *testing.T) {
	var lastPage, lastSize atomic.Int32
	store := NewListStore(func(ctx context.Context, q url.Values, page, size int) (Page[testItem], error) {
		lastPage.Store(int32(page))
		lastSize.Store(int32(size))
		return Page[testItem]{}, nil
	})

	store.SetPage(context.Background(), 5)
	assert.Equal(t, int32(5), lastPage.Load())

	store.SetFilter(context.Background(), "status", "REPARACION")
	assert.Equal(t, int32(0), lastPage.Load())
	assert.Equal(t, 0, store.Snapshot().Page)

	store.SetPage(context.Background(), 2)
	assert.Equal(t, int32(2), lastPage.Load())

	store.SetSize(context.Background(), 50)
	assert.Equal(t, int32(0), lastPage.Load())
	assert.Equal(t, int32(50), lastSize.Load())
	assert.Equal(t, 50, store.Snapshot().Size)
}
