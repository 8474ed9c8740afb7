package queries_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "parcel/internal/adapters/out/postgres"
	"parcel/internal/adapters/out/postgres/parcelrepo"
	"parcel/internal/adapters/out/postgres/refs"
	"parcel/internal/adapters/out/postgres/statusrepo"
	"parcel/internal/core/application/usecases/queries"
	"parcel/internal/core/domain/model/handler"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/parcel"
	"parcel/internal/core/domain/model/status"
	"parcel/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ParcelQueriesTestSuite exercises the listing, single parcel, and timeline
// query handlers against a real PostgreSQL database populated through the
// write-side repositories.
type ParcelQueriesTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	statuses  map[status.Name]status.Status

	listHandler     queries.ListParcelsQueryHandler
	getHandler      queries.GetParcelQueryHandler
	timelineHandler queries.GetTimelineQueryHandler
}

func (suite *ParcelQueriesTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&parcelrepo.TimelineEntryDTO{},
		&statusrepo.StatusDTO{},
		&refs.UserDTO{},
		&refs.ShopDTO{},
		&refs.PickupAddressDTO{},
		&refs.DeliveryAreaDTO{},
		&refs.CategoryDTO{},
		&refs.PackageHandlerDTO{},
	)
	suite.Require().NoError(err)

	statusRepository := statusrepo.NewGormStatusRepository(db)
	suite.Require().NoError(statusRepository.Seed(ctx))

	suite.statuses = make(map[status.Name]status.Status)
	all, err := statusRepository.GetAll(ctx)
	suite.Require().NoError(err)
	for _, st := range all {
		suite.statuses[st.Name()] = st
	}

	suite.listHandler = queries.NewListParcelsQueryHandler(db)
	suite.getHandler = queries.NewGetParcelQueryHandler(db)
	suite.timelineHandler = queries.NewGetTimelineQueryHandler(db)
}

func (suite *ParcelQueriesTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE parcels, parcel_timeline_entries, users, shops, pickup_addresses, delivery_areas").Error)
}

func (suite *ParcelQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ParcelQueriesTestSuite) TestListParcels_FiltersByRequester() {
	ctx := context.Background()
	merchantID := kernel.NewUUID()
	mine := suite.storeParcel(merchantID)
	suite.storeParcel(kernel.NewUUID())

	requesterID := merchantID
	query, err := queries.NewListParcelsQuery(&requesterID, nil, nil, nil, queries.Hydration{})
	suite.Require().NoError(err)

	parcels, err := suite.listHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(parcels, 1)
	suite.Equal(mine.TrackingNumber().String(), parcels[0].TrackingNumber)
	suite.Equal(status.Pending, parcels[0].Status)
	suite.Nil(parcels[0].HandlerID)
}

func (suite *ParcelQueriesTestSuite) TestListParcels_FiltersByHandlerAndStatus() {
	ctx := context.Background()
	pending := suite.storeParcel(kernel.NewUUID())
	assigned := suite.storeParcel(kernel.NewUUID())

	pickupman, err := handler.NewHandler(kernel.NewUUID(), kernel.NewUUID(), "Rahim Mia", "01711000001", handler.RolePickupman)
	suite.Require().NoError(err)
	suite.Require().NoError(assigned.AssignTo(pickupman, suite.statuses[status.PickedUp]))
	suite.updateParcel(assigned)

	handlerID := pickupman.ID()
	pickedUp := status.PickedUp
	query, err := queries.NewListParcelsQuery(nil, nil, &handlerID, &pickedUp, queries.Hydration{})
	suite.Require().NoError(err)

	parcels, err := suite.listHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(parcels, 1)
	suite.Equal(assigned.TrackingNumber().String(), parcels[0].TrackingNumber)
	suite.Require().NotNil(parcels[0].HandlerID)
	suite.True(parcels[0].HandlerID.IsEqual(pickupman.ID()))

	// the still-pending parcel does not leak into the worklist
	suite.NotEqual(pending.TrackingNumber().String(), parcels[0].TrackingNumber)
}

func (suite *ParcelQueriesTestSuite) TestGetParcel_HydratesRequestedViews() {
	ctx := context.Background()
	merchantID := kernel.NewUUID()
	aggregate := suite.storeParcel(merchantID)

	suite.Require().NoError(suite.db.Create(&refs.UserDTO{
		ID: merchantID.Bytes(), Name: "Mina Begum", Phone: "01811000003",
	}).Error)
	suite.Require().NoError(suite.db.Create(&refs.ShopDTO{
		ID: aggregate.ShopID().Bytes(), UserID: merchantID.Bytes(), Name: "Mina Fashion House",
	}).Error)
	suite.Require().NoError(suite.db.Create(&refs.PickupAddressDTO{
		ID: aggregate.PickupID().Bytes(), UserID: merchantID.Bytes(), Address: "12 Green Road, Dhaka",
	}).Error)
	suite.Require().NoError(suite.db.Create(&refs.DeliveryAreaDTO{
		ID: aggregate.DeliveryAreaID().Bytes(), Name: "Mirpur", District: "Dhaka", Division: "Dhaka",
	}).Error)

	query, err := queries.NewGetParcelQuery(aggregate.TrackingNumber(), queries.Hydration{
		Pickup: true, Shop: true, DeliveryArea: true, Requester: true,
	})
	suite.Require().NoError(err)

	resp, err := suite.getHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().NotNil(resp.Shop)
	suite.Equal("Mina Fashion House", resp.Shop.Name)
	suite.Require().NotNil(resp.Pickup)
	suite.Equal("12 Green Road, Dhaka", resp.Pickup.Address)
	suite.Require().NotNil(resp.DeliveryArea)
	suite.Equal("Mirpur", resp.DeliveryArea.Name)
	suite.Equal("Dhaka", resp.DeliveryArea.District)
	suite.Require().NotNil(resp.Requester)
	suite.Equal("Mina Begum", resp.Requester.Name)
}

func (suite *ParcelQueriesTestSuite) TestGetParcel_SkipsViewsWithoutHydration() {
	ctx := context.Background()
	aggregate := suite.storeParcel(kernel.NewUUID())

	query, err := queries.NewGetParcelQuery(aggregate.TrackingNumber(), queries.Hydration{})
	suite.Require().NoError(err)

	resp, err := suite.getHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Nil(resp.Shop)
	suite.Nil(resp.Pickup)
	suite.Nil(resp.DeliveryArea)
	suite.Nil(resp.Requester)
}

func (suite *ParcelQueriesTestSuite) TestGetParcel_NotFound() {
	ctx := context.Background()
	unknown, err := parcel.TrackingNumberFromString("PCL-UNKNOWN999")
	suite.Require().NoError(err)

	query, err := queries.NewGetParcelQuery(unknown, queries.Hydration{})
	suite.Require().NoError(err)

	_, err = suite.getHandler.Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelQueriesTestSuite) TestGetTimeline_ReturnsHistoryWithStatusNames() {
	ctx := context.Background()
	aggregate := suite.storeParcel(kernel.NewUUID())

	pickupman, err := handler.NewHandler(kernel.NewUUID(), kernel.NewUUID(), "Rahim Mia", "01711000001", handler.RolePickupman)
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.AssignTo(pickupman, suite.statuses[status.PickedUp]))
	suite.updateParcel(aggregate)

	query, err := queries.NewGetTimelineQuery(aggregate.TrackingNumber())
	suite.Require().NoError(err)

	entries, err := suite.timelineHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.Equal("The merchant has requested the parcel to be picked up", entries[0].Message)
	suite.Equal(status.Pending, entries[0].Status)
	suite.Equal("Parcel assigned to a pickupman", entries[1].Message)
	suite.Equal(status.PickedUp, entries[1].Status)
}

func (suite *ParcelQueriesTestSuite) TestGetTimeline_UnknownParcel() {
	ctx := context.Background()
	unknown, err := parcel.TrackingNumberFromString("PCL-UNKNOWN999")
	suite.Require().NoError(err)

	query, err := queries.NewGetTimelineQuery(unknown)
	suite.Require().NoError(err)

	_, err = suite.timelineHandler.Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelQueriesTestSuite) storeParcel(requesterID kernel.UUID) *parcel.Parcel {
	ctx := context.Background()

	trackingNumber, err := parcel.NewTrackingNumber()
	suite.Require().NoError(err)

	aggregate, err := parcel.NewParcel(
		kernel.NewUUID(), trackingNumber, requesterID,
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		suite.statuses[status.Pending],
	)
	suite.Require().NoError(err)

	uow := postgresadapter.NewGormUnitOfWorkFactory(suite.db, statusrepo.NewGormStatusRepository(suite.db)).Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))
	return aggregate
}

func (suite *ParcelQueriesTestSuite) updateParcel(aggregate *parcel.Parcel) {
	ctx := context.Background()

	uow := postgresadapter.NewGormUnitOfWorkFactory(suite.db, statusrepo.NewGormStatusRepository(suite.db)).Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ParcelRepository().Update(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))
}

func TestParcelQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(ParcelQueriesTestSuite))
}
