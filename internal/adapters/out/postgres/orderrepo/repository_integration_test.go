package orderrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	postgres_adapter "proteseflow/internal/adapters/out/postgres"
	"proteseflow/internal/adapters/out/postgres/orderrepo"
	"proteseflow/internal/core/domain/model/kernel"
	"proteseflow/internal/core/domain/model/order"
	"proteseflow/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockFileTracker struct {
	mock.Mock
}

func (m *MockFileTracker) TrackRemovedFiles(refs ...string) {
	m.Called(refs)
}

// OrderRepositoryIntegrationTestSuite runs the order repository against a real
// PostgreSQL.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container       *postgres.PostgresContainer
	db              *gorm.DB
	orderRepository *orderrepo.GormOrderRepository
	tracker         *MockFileTracker
	dentistID       kernel.ID
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(ctx, db))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE attachments, orders, users RESTART IDENTITY CASCADE").Error)
	suite.Require().NoError(suite.db.Exec(`
		INSERT INTO users (username, password_hash, role, state, confirmed, joined_at, version)
		VALUES ('dr.ana', 'hash', 'DENTISTA', 1, true, now(), 1)`).Error)
	suite.dentistID = 1

	suite.tracker = new(MockFileTracker)
	suite.orderRepository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_WithAttachments_Success() {
	ctx := context.Background()

	o := suite.createTestOrder("coroa.stl", "ponte.stl")

	suite.Require().NoError(suite.orderRepository.Add(ctx, o))

	suite.False(o.ID().IsZero())
	for _, a := range o.Attachments() {
		suite.False(a.ID().IsZero())
	}
	suite.assertCount("orders", 1)
	suite.assertCount("attachments", 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnknownDentist_Fails() {
	ctx := context.Background()

	details := suite.details()
	o, err := order.NewOrder(99, details, nil)
	suite.Require().NoError(err)

	suite.Require().Error(suite.orderRepository.Add(ctx, o))
	suite.assertCount("orders", 0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTrip() {
	ctx := context.Background()

	o := suite.createTestOrder("coroa.stl")
	suite.Require().NoError(suite.orderRepository.Add(ctx, o))

	stored, err := suite.orderRepository.Get(ctx, o.ID())

	suite.Require().NoError(err)
	suite.Equal(o.ID(), stored.ID())
	suite.Equal(suite.dentistID, stored.DentistID())
	suite.Equal(order.Pending, stored.Status())
	suite.Equal("Maria Silva", stored.Details().PatientName)
	suite.Equal(order.Female, stored.Details().PatientSex)
	suite.Equal("11, 12, 21", stored.Details().ToothElements.String())
	suite.Equal("A2", stored.Details().Color)
	suite.Require().NotNil(stored.Details().DueDate)
	suite.Equal(time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC), stored.Details().DueDate.UTC())
	suite.Equal(1, stored.Version())
	suite.Require().Len(stored.Attachments(), 1)
	suite.Equal("coroa.stl", stored.Attachments()[0].File().Name)
	suite.Equal(order.DefaultAttachmentDescription, stored.Attachments()[0].Description())
	suite.WithinDuration(o.CreatedAt(), stored.CreatedAt(), time.Second)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	_, err := suite.orderRepository.Get(context.Background(), 404)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusAndDetails() {
	ctx := context.Background()

	o := suite.createTestOrder()
	suite.Require().NoError(suite.orderRepository.Add(ctx, o))

	loaded, err := suite.orderRepository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	_, err = loaded.ChangeStatus(order.InProduction)
	suite.Require().NoError(err)

	details := loaded.Details()
	details.Color = ""
	details.DueDate = nil
	suite.Require().NoError(loaded.EditDetails(details))

	suite.Require().NoError(suite.orderRepository.Update(ctx, loaded))

	stored, err := suite.orderRepository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InProduction, stored.Status())
	suite.Empty(stored.Details().Color, "cleared fields are written too")
	suite.Nil(stored.Details().DueDate)
	suite.Equal(2, stored.Version())
	suite.WithinDuration(o.CreatedAt(), stored.CreatedAt(), time.Second)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	o, err := order.RestoreOrder(order.Snapshot{
		ID:        404,
		DentistID: suite.dentistID,
		Details:   suite.details(),
		Status:    order.Pending,
		CreatedAt: time.Now(),
		Version:   1,
	})
	suite.Require().NoError(err)

	err = suite.orderRepository.Update(context.Background(), o)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// Two staff members load the same order and both try to move it; only the first
// write wins.
func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Concurrency() {
	ctx := context.Background()

	o := suite.createTestOrder()
	suite.Require().NoError(suite.orderRepository.Add(ctx, o))

	first, err := suite.orderRepository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	second, err := suite.orderRepository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	_, err = first.ChangeStatus(order.InProduction)
	suite.Require().NoError(err)
	_, err = second.ChangeStatus(order.Cancelled)
	suite.Require().NoError(err)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i, candidate := range []*order.Order{first, second} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = suite.orderRepository.Update(ctx, candidate)
		}()
	}
	wg.Wait()

	var failures int
	for _, err := range results {
		if err != nil {
			suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)
			failures++
		}
	}
	suite.Equal(1, failures)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_CascadesAndTracksFiles() {
	ctx := context.Background()

	o := suite.createTestOrder("coroa.stl")
	suite.Require().NoError(suite.orderRepository.Add(ctx, o))
	loaded, err := suite.orderRepository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.tracker.On("TrackRemovedFiles", []string{"arquivos_protese/2025/04/x-coroa.stl"}).Once()

	suite.Require().NoError(suite.orderRepository.Delete(ctx, loaded))

	suite.assertCount("orders", 0)
	suite.assertCount("attachments", 0)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDeletingDentistRemovesOrders() {
	ctx := context.Background()

	suite.Require().NoError(suite.orderRepository.Add(ctx, suite.createTestOrder("coroa.stl")))
	suite.Require().NoError(suite.db.Exec("DELETE FROM users WHERE id = ?", suite.dentistID.Int64()).Error)

	suite.assertCount("orders", 0)
	suite.assertCount("attachments", 0)
}

func (suite *OrderRepositoryIntegrationTestSuite) details() order.Details {
	teeth, err := order.ParseToothElements("11,12,21")
	suite.Require().NoError(err)

	due := time.Date(2025, 4, 30, 15, 0, 0, 0, time.UTC)
	details, err := order.NewDetails(order.Details{
		PatientName:   "Maria Silva",
		PatientSex:    order.Female,
		ServiceType:   "Coroa",
		ToothElements: teeth,
		Color:         "A2",
		DueDate:       &due,
	})
	suite.Require().NoError(err)
	return details
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(files ...string) *order.Order {
	attachments := make([]*order.Attachment, 0, len(files))
	for _, name := range files {
		a, err := order.NewAttachment(order.File{
			Ref:         "arquivos_protese/2025/04/x-" + name,
			Name:        name,
			ContentType: "model/stl",
			Size:        1024,
		}, "")
		suite.Require().NoError(err)
		attachments = append(attachments, a)
	}

	o, err := order.NewOrder(suite.dentistID, suite.details(), attachments)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) assertCount(table string, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Table(table).Count(&count).Error)
	suite.Equal(expected, count, table)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
