package commands_test

import (
	"testing"

	"tracker/internal/core/domain/model/associate"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/require"
)

func mustPoint(t *testing.T, lon, lat float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lon, lat)
	require.NoError(t, err)
	return p
}

func serviceArea(t *testing.T) kernel.BoundingBox {
	t.Helper()
	box, err := kernel.NewBoundingBox(
		mustPoint(t, 76.3647, 30.3380),
		mustPoint(t, 76.4000, 30.3562),
	)
	require.NoError(t, err)
	return box
}

func requestedShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(
		kernel.NewUUID(),
		kernel.NewUUID(),
		mustPoint(t, 76.3700, 30.3400),
		mustPoint(t, 76.3900, 30.3500),
		shipment.DefaultTariff(),
	)
	require.NoError(t, err)
	return s
}

func availableAssociate(t *testing.T) *associate.DeliveryAssociate {
	t.Helper()
	a, err := associate.NewDeliveryAssociate(
		kernel.NewUUID(), "kai", "kai@example.com", mustPoint(t, 76.3700, 30.3400))
	require.NoError(t, err)
	return a
}
