package postgres_test

import (
	"context"
	"testing"

	postgresadapter "tracker/internal/adapters/out/postgres"
	"tracker/internal/adapters/out/postgres/associaterepo"
	"tracker/internal/adapters/out/postgres/shipmentrepo"
	"tracker/internal/core/domain/model/associate"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/shipment"
	"tracker/internal/core/ports"
	"tracker/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
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

	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE shipments, delivery_associates").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.ShipmentRepository(), "First instance should provide shipment repository")
	suite.NotNil(uow1.AssociateRepository(), "First instance should provide associate repository")
	suite.NotNil(uow2.ShipmentRepository(), "Second instance should provide shipment repository")
	suite.NotNil(uow2.AssociateRepository(), "Second instance should provide associate repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_CommitPersistsAcrossRepositories verifies multiple repository
// operations within a single transaction work atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShipment := suite.createTestShipment()
	testAssociate := suite.createTestAssociate()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	err = uow.AssociateRepository().Add(ctx, testAssociate)
	suite.Require().NoError(err)

	// Assign inside the same transaction
	err = testShipment.Assign(testAssociate.ID())
	suite.Require().NoError(err)
	err = testAssociate.Assign()
	suite.Require().NoError(err)

	err = uow.ShipmentRepository().Update(ctx, testShipment)
	suite.Require().NoError(err)
	err = uow.AssociateRepository().Update(ctx, testAssociate)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify state persists after commit using a fresh unit of work
	newUow := suite.factory.Create()
	retrievedShipment, err := newUow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.AssociateAssigned, retrievedShipment.Status())

	retrievedAssociate, err := newUow.AssociateRepository().Get(ctx, testAssociate.ID())
	suite.Require().NoError(err)
	suite.Equal(associate.Assigned, retrievedAssociate.Status())
}

// TestUnitOfWork_RollbackDiscardsChanges verifies that a rolled back
// transaction leaves no trace in the database.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShipment := suite.createTestShipment()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

// TestUnitOfWork_WithoutTransaction verifies repositories still work directly
// against the database when no transaction is active.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShipment := suite.createTestShipment()

	err := uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	retrieved, err := uow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(testShipment.ID(), retrieved.ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestShipment() *shipment.Shipment {
	pickup, err := kernel.NewGeoPoint(76.3700, 30.3400)
	suite.Require().NoError(err)
	drop, err := kernel.NewGeoPoint(76.3900, 30.3500)
	suite.Require().NoError(err)

	s, err := shipment.NewShipment(
		kernel.NewUUID(), kernel.NewUUID(), pickup, drop, shipment.DefaultTariff())
	suite.Require().NoError(err)
	return s
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestAssociate() *associate.DeliveryAssociate {
	location, err := kernel.NewGeoPoint(76.3800, 30.3450)
	suite.Require().NoError(err)

	a, err := associate.NewDeliveryAssociate(
		kernel.NewUUID(), "Test Associate", "associate@example.com", location)
	suite.Require().NoError(err)
	return a
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
