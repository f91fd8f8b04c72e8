package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanSetRepairOrderStatus(t *testing.T) {
	t.Run("rechaza estados iniciales como destino", func(t *testing.T) {
		assert.Error(t, CanSetRepairOrderStatus(StatusIngresoVehiculo))
		assert.Error(t, CanSetRepairOrderStatus(StatusEsperandoAprobacion))
	})

	t.Run("acepta el resto de los estados", func(t *testing.T) {
		for _, s := range []string{
			StatusEsperandoRepuestos,
			StatusReparacion,
			StatusPruebas,
			StatusListoParaEntregar,
			StatusEntregado,
		} {
			assert.NoError(t, CanSetRepairOrderStatus(s), s)
		}
	})

	t.Run("rechaza estados desconocidos", func(t *testing.T) {
		assert.Error(t, CanSetRepairOrderStatus("FACTURADO"))
		assert.Error(t, CanSetRepairOrderStatus(""))
	})
}

func TestAllRepairOrderStatusesOrder(t *testing.T) {
	require.Len(t, AllRepairOrderStatuses, 7)
	assert.Equal(t, StatusIngresoVehiculo, AllRepairOrderStatuses[0])
	assert.Equal(t, StatusEntregado, AllRepairOrderStatuses[6])
}

func TestAutoTitle(t *testing.T) {
	assert.Equal(t, "OT-42 Pérez - ABCD12", AutoTitle(42, "Pérez", "ABCD12"))
}

func TestIsTerminalRepairOrderStatus(t *testing.T) {
	assert.True(t, IsTerminalRepairOrderStatus(StatusEntregado))
	assert.False(t, IsTerminalRepairOrderStatus(StatusPruebas))
}
