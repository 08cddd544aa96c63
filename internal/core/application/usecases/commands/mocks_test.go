package commands_test

import (
	"context"

	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/domain/events"
	"tracker/internal/core/domain/model/associate"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/shipment"
	"tracker/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetAllActive(ctx context.Context) ([]*shipment.Shipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

type MockAssociateRepository struct{ mock.Mock }

func (m *MockAssociateRepository) Add(ctx context.Context, a *associate.DeliveryAssociate) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssociateRepository) Update(ctx context.Context, a *associate.DeliveryAssociate) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssociateRepository) Get(
	ctx context.Context,
	id kernel.UUID,
) (*associate.DeliveryAssociate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*associate.DeliveryAssociate), args.Error(1)
}

func (m *MockAssociateRepository) GetAllActive(
	ctx context.Context,
) ([]*associate.DeliveryAssociate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*associate.DeliveryAssociate), args.Error(1)
}

// MockUoW backs every unit of work flavor used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) AssociateRepository() ports.AssociateRepository {
	args := m.Called()
	return args.Get(0).(ports.AssociateRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockAssociateUoWFactory struct{ mock.Mock }

func (m *MockAssociateUoWFactory) Create() commands.AssociateUoW {
	args := m.Called()
	return args.Get(0).(commands.AssociateUoW)
}

type MockEventHub struct{ mock.Mock }

func (m *MockEventHub) Publish(event events.Event) {
	m.Called(event)
}

func (m *MockEventHub) Subscribe(clientID string, topic events.Topic) {
	m.Called(clientID, topic)
}

func (m *MockEventHub) Unsubscribe(clientID string, topic events.Topic) {
	m.Called(clientID, topic)
}

func (m *MockEventHub) Subscribers(topic events.Topic) []string {
	args := m.Called(topic)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}
