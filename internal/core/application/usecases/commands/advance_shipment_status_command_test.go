package commands_test

import (
	"testing"

	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdvanceShipmentStatusCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewAdvanceShipmentStatusCommand(id, shipment.Transporting)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.ShipmentID())
	assert.Equal(t, shipment.Transporting, cmd.Target())
}

func TestNewAdvanceShipmentStatusCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewAdvanceShipmentStatusCommand(kernel.NewUUID(), shipment.Unknown)
	require.Error(t, err)
}

func TestNewAdvanceShipmentStatusCommand_InvalidShipmentID(t *testing.T) {
	_, err := commands.NewAdvanceShipmentStatusCommand(kernel.UUID{}, shipment.Transporting)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
