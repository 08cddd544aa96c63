package queries_test

import (
	"context"
	"testing"
	"time"

	"tracker/internal/adapters/out/postgres/associaterepo"
	"tracker/internal/adapters/out/postgres/shipmentrepo"
	"tracker/internal/core/application/usecases/queries"
	"tracker/internal/core/domain/model/associate"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repository tracker interface for seeding test data.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

// QueryHandlersTestSuite exercises the read side against a real PostgreSQL
// database seeded through the write-side repositories.
type QueryHandlersTestSuite struct {
	suite.Suite
	container        *postgres.PostgresContainer
	db               *gorm.DB
	shipmentsHandler queries.GetActiveShipmentsQueryHandler
	associateHandler queries.GetAllAssociatesQueryHandler
	statsHandler     queries.GetAdminStatsQueryHandler
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&shipmentrepo.ShipmentDTO{}, &associaterepo.AssociateDTO{})
	suite.Require().NoError(err)

	suite.shipmentsHandler = queries.NewGetActiveShipmentsQueryHandler(db)
	suite.associateHandler = queries.NewGetAllAssociatesQueryHandler(db)
	suite.statsHandler = queries.NewGetAdminStatsQueryHandler(db)
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE shipments, delivery_associates").Error
	suite.Require().NoError(err)
}

func (suite *QueryHandlersTestSuite) TestGetActiveShipments_EmptyDatabase_ReturnsEmptySlice() {
	result, err := suite.shipmentsHandler.Handle(
		context.Background(), queries.NewGetActiveShipmentsQuery())

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *QueryHandlersTestSuite) TestGetActiveShipments_SkipsDeliveredAndCancelled() {
	ctx := context.Background()

	requested := suite.seedShipment(shipment.Requested, nil)
	associateID := kernel.NewUUID()
	transporting := suite.seedShipment(shipment.Transporting, &associateID)
	suite.seedShipment(shipment.Delivered, &associateID)
	suite.seedShipment(shipment.Cancelled, nil)

	result, err := suite.shipmentsHandler.Handle(ctx, queries.NewGetActiveShipmentsQuery())
	suite.Require().NoError(err)

	suite.Require().Len(result, 2)

	byID := make(map[string]queries.GetActiveShipmentsQueryResponse, len(result))
	for _, r := range result {
		byID[r.ID.String()] = r
	}

	suite.Contains(byID, requested.ID().String())
	suite.Equal("requested", byID[requested.ID().String()].Status)
	suite.Nil(byID[requested.ID().String()].AssociateID)

	suite.Contains(byID, transporting.ID().String())
	suite.Equal("transporting", byID[transporting.ID().String()].Status)
	suite.Require().NotNil(byID[transporting.ID().String()].AssociateID)
	suite.True(associateID.IsEqual(*byID[transporting.ID().String()].AssociateID))
}

func (suite *QueryHandlersTestSuite) TestGetActiveShipments_CarriesRouteAndPrice() {
	seeded := suite.seedShipment(shipment.Requested, nil)

	result, err := suite.shipmentsHandler.Handle(
		context.Background(), queries.NewGetActiveShipmentsQuery())
	suite.Require().NoError(err)

	suite.Require().Len(result, 1)
	suite.InDelta(seeded.Price(), result[0].Price, 1e-9)
	suite.InDelta(seeded.Pickup().Lon(), result[0].Pickup.Lon(), 1e-9)
	suite.InDelta(seeded.Pickup().Lat(), result[0].Pickup.Lat(), 1e-9)
	suite.InDelta(seeded.Drop().Lon(), result[0].Drop.Lon(), 1e-9)
	suite.InDelta(seeded.Drop().Lat(), result[0].Drop.Lat(), 1e-9)
}

func (suite *QueryHandlersTestSuite) TestGetAllAssociates_ReturnsAllOrderedByName() {
	suite.seedAssociate("zoe", associate.Available)
	suite.seedAssociate("amir", associate.Assigned)
	suite.seedAssociate("mira", associate.Offline)

	result, err := suite.associateHandler.Handle(
		context.Background(), queries.NewGetAllAssociatesQuery())
	suite.Require().NoError(err)

	suite.Require().Len(result, 3)
	suite.Equal("amir", result[0].Name)
	suite.Equal("assigned", result[0].Status)
	suite.Equal("mira", result[1].Name)
	suite.Equal("offline", result[1].Status)
	suite.Equal("zoe", result[2].Name)
	suite.Equal("available", result[2].Status)
}

func (suite *QueryHandlersTestSuite) TestGetAdminStats_CountsByStatus() {
	associateID := kernel.NewUUID()
	suite.seedShipment(shipment.Requested, nil)
	suite.seedShipment(shipment.Requested, nil)
	delivered := suite.seedShipment(shipment.Delivered, &associateID)
	suite.seedAssociate("amir", associate.Available)
	suite.seedAssociate("mira", associate.Assigned)
	suite.seedAssociate("zoe", associate.Offline)

	result, err := suite.statsHandler.Handle(
		context.Background(), queries.NewGetAdminStatsQuery())
	suite.Require().NoError(err)

	suite.Equal(3, result.TotalShipments)
	suite.Equal(2, result.ShipmentsByStatus["requested"])
	suite.Equal(1, result.ShipmentsByStatus["delivered"])
	suite.InDelta(delivered.Price(), result.TotalDeliveredPrice, 1e-9)
	suite.Equal(3, result.TotalAssociates)
	suite.Equal(1, result.AvailableAssociates)
}

func (suite *QueryHandlersTestSuite) TestGetAdminStats_EmptyDatabase_ReturnsZeroes() {
	result, err := suite.statsHandler.Handle(
		context.Background(), queries.NewGetAdminStatsQuery())
	suite.Require().NoError(err)

	suite.Equal(0, result.TotalShipments)
	suite.Empty(result.ShipmentsByStatus)
	suite.Zero(result.TotalDeliveredPrice)
	suite.Equal(0, result.TotalAssociates)
	suite.Equal(0, result.AvailableAssociates)
}

func (suite *QueryHandlersTestSuite) seedShipment(
	status shipment.Status, associateID *kernel.UUID,
) *shipment.Shipment {
	pickup, err := kernel.NewGeoPoint(76.3700, 30.3400)
	suite.Require().NoError(err)
	drop, err := kernel.NewGeoPoint(76.3900, 30.3500)
	suite.Require().NoError(err)

	s, err := shipment.RestoreShipment(
		kernel.NewUUID(), kernel.NewUUID(), pickup, drop, 120.5, status, associateID)
	suite.Require().NoError(err)

	repo := shipmentrepo.NewGormShipmentRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), s))
	return s
}

func (suite *QueryHandlersTestSuite) seedAssociate(
	name string, status associate.Status,
) *associate.DeliveryAssociate {
	location, err := kernel.NewGeoPoint(76.3800, 30.3450)
	suite.Require().NoError(err)

	a, err := associate.RestoreDeliveryAssociate(
		kernel.NewUUID(), name, name+"@example.com", status, location)
	suite.Require().NoError(err)

	repo := associaterepo.NewGormAssociateRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), a))
	return a
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}
