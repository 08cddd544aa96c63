package commands_test

import (
	"testing"

	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/domain/model/associate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMoveAssociatesCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewMoveAssociatesCommand()

	first := availableAssociate(t)
	second := availableAssociate(t)
	couriers := []*associate.DeliveryAssociate{first, second}

	repo := new(MockAssociateRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssociateRepository").Return(repo).Once(),
		repo.On("GetAllActive", mock.Anything).Return(couriers, nil).Once(),
		repo.On("Update", mock.Anything, first).Return(nil).Once(),
		repo.On("Update", mock.Anything, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssociateUoWFactory)
	factory.On("Create").Return(uow).Once()

	hub := new(MockEventHub)
	hub.On("Publish", mock.AnythingOfType("events.AssociateLocationChanged")).Return().Twice()

	area := serviceArea(t)

	h := commands.NewMoveAssociatesCommandHandler(factory, hub, area)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	for _, courier := range couriers {
		location := courier.Location()
		assert.GreaterOrEqual(t, location.Lon(), area.SouthWest().Lon())
		assert.LessOrEqual(t, location.Lon(), area.NorthEast().Lon())
		assert.GreaterOrEqual(t, location.Lat(), area.SouthWest().Lat())
		assert.LessOrEqual(t, location.Lat(), area.NorthEast().Lat())
	}

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	hub.AssertExpectations(t)
}

func TestMoveAssociatesCommandHandler_Handle_NoActiveAssociates(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewMoveAssociatesCommand()

	repo := new(MockAssociateRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssociateRepository").Return(repo).Once(),
		repo.On("GetAllActive", mock.Anything).Return([]*associate.DeliveryAssociate{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssociateUoWFactory)
	factory.On("Create").Return(uow).Once()

	hub := new(MockEventHub)

	h := commands.NewMoveAssociatesCommandHandler(factory, hub, serviceArea(t))
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	hub.AssertNotCalled(t, "Publish", mock.Anything)
}
