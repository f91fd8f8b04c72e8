package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBoardColumns() []BoardColumn[testItem] {
	return []BoardColumn[testItem]{
		{Status: "INGRESO_VEHICULO", Cards: []testItem{{ID: 1}, {ID: 2}}},
		{Status: "REPARACION", Cards: []testItem{{ID: 3}}},
		{Status: "ENTREGADO", Cards: nil},
	}
}

func newTestBoard(moveErr error, loads *int) *Board[testItem] {
	board := NewBoard(
		func(ctx context.Context) ([]BoardColumn[testItem], error) {
			if loads != nil {
				*loads++
			}
			return testBoardColumns(), nil
		},
		func(ctx context.Context, id int64, status string) error {
			return moveErr
		},
		func(it testItem) int64 { return it.ID },
	)
	_ = board.Refresh(context.Background())
	return board
}

func TestBoardMoveOptimistic(t *testing.T) {
	board := newTestBoard(nil, nil)

	require.NoError(t, board.Move(context.Background(), 1, "REPARACION"))

	assert.Len(t, board.Columns[0].Cards, 1)
	require.Len(t, board.Columns[1].Cards, 2)
	assert.Equal(t, int64(1), board.Columns[1].Cards[1].ID)
}

func TestBoardMoveFailureResyncs(t *testing.T) {
	loads := 0
	board := newTestBoard(errors.New("estado inválido"), &loads)
	require.Equal(t, 1, loads)

	err := board.Move(context.Background(), 1, "ENTREGADO")
	require.Error(t, err)

	assert.Equal(t, 2, loads, "un rechazo del servidor recarga el tablero")
	assert.Len(t, board.Columns[0].Cards, 2, "el movimiento optimista quedó deshecho")
	assert.Empty(t, board.Columns[2].Cards)
}

func TestBoardMoveFailureWithFailedResyncReportsBoth(t *testing.T) {
	moveErr := errors.New("estado inválido")
	refreshErr := errors.New("conexión rechazada")
	loaded := false
	board := NewBoard(
		func(ctx context.Context) ([]BoardColumn[testItem], error) {
			if loaded {
				return nil, refreshErr
			}
			loaded = true
			return testBoardColumns(), nil
		},
		func(ctx context.Context, id int64, status string) error {
			return moveErr
		},
		func(it testItem) int64 { return it.ID },
	)
	require.NoError(t, board.Refresh(context.Background()))

	err := board.Move(context.Background(), 1, "ENTREGADO")
	require.Error(t, err)
	assert.ErrorIs(t, err, moveErr, "el rechazo original no se pierde")
	assert.ErrorIs(t, err, refreshErr)
}

func TestBoardMoveUnknownColumn(t *testing.T) {
	board := newTestBoard(nil, nil)

	err := board.Move(context.Background(), 1, "NO_EXISTE")
	require.Error(t, err)
	assert.Len(t, board.Columns[0].Cards, 2, "nada se mueve si la columna no existe")
}
