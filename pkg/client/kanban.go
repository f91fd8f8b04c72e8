package client

import (
	"context"
	"errors"
	"fmt"
)

// BoardColumn columna del tablero con sus tarjetas, en el orden del servidor.
type BoardColumn[T any] struct {
	Status string `json:"status"`
	Cards  []T    `json:"orders"`
}

// Board tablero Kanban con movimiento optimista: la tarjeta se mueve en
// memoria antes de confirmar contra la API, y ante un fallo se recarga el
// tablero completo para volver al estado real.
type Board[T any] struct {
	Columns []BoardColumn[T]

	load func(ctx context.Context) ([]BoardColumn[T], error)
	move func(ctx context.Context, id int64, status string) error
	id   func(T) int64
}

// NewBoard construye el tablero. load trae las columnas, move confirma el
// cambio de estado en el servidor e id extrae el identificador de una tarjeta.
func NewBoard[T any](
	load func(ctx context.Context) ([]BoardColumn[T], error),
	move func(ctx context.Context, id int64, status string) error,
	id func(T) int64,
) *Board[T] {
	return &Board[T]{load: load, move: move, id: id}
}

// Refresh recarga las columnas desde el servidor.
func (b *Board[T]) Refresh(ctx context.Context) error {
	columns, err := b.load(ctx)
	if err != nil {
		return err
	}
	b.Columns = columns
	return nil
}

// Move mueve una tarjeta a la columna destino de forma optimista y confirma
// contra la API. Si el servidor rechaza el cambio, recarga el tablero para
// deshacer el movimiento local y devuelve el error original.
func (b *Board[T]) Move(ctx context.Context, cardID int64, toStatus string) error {
	target := -1
	for i := range b.Columns {
		if b.Columns[i].Status == toStatus {
			target = i
			break
		}
	}
	if target < 0 {
		return fmt.Errorf("columna desconocida: %s", toStatus)
	}

	var card T
	found := false
	for i := range b.Columns {
		for j, c := range b.Columns[i].Cards {
			if b.id(c) == cardID {
				card = c
				b.Columns[i].Cards = append(b.Columns[i].Cards[:j], b.Columns[i].Cards[j+1:]...)
				found = true
				break
			}
		}
		if found {
			break
		}
	}
	if !found {
		return fmt.Errorf("tarjeta %d no está en el tablero", cardID)
	}
	b.Columns[target].Cards = append(b.Columns[target].Cards, card)

	if err := b.move(ctx, cardID, toStatus); err != nil {
		if refreshErr := b.Refresh(ctx); refreshErr != nil {
			return errors.Join(err, fmt.Errorf("no se pudo resincronizar el tablero: %w", refreshErr))
		}
		return err
	}
	return nil
}
