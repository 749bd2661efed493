package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/excursion-service/internal/domain"
	"github.com/excursion-service/internal/itinerary"
)

// MockRouteRepository is a mock of RouteRepository
type MockRouteRepository struct {
	mock.Mock
}

func (m *MockRouteRepository) List(ctx context.Context, includeUnpublished bool, search string) ([]*domain.Route, error) {
	args := m.Called(ctx, includeUnpublished, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Route), args.Error(1)
}

func (m *MockRouteRepository) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *MockRouteRepository) Create(ctx context.Context, route *domain.Route) (*domain.Route, error) {
	args := m.Called(ctx, route)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *MockRouteRepository) Replace(ctx context.Context, route *domain.Route) (*domain.Route, error) {
	args := m.Called(ctx, route)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *MockRouteRepository) Archive(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRouteRepository) ListDates(ctx context.Context, routeID int64) ([]*domain.RouteDate, error) {
	args := m.Called(ctx, routeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.RouteDate), args.Error(1)
}

func (m *MockRouteRepository) ListAvailableDates(ctx context.Context, routeID int64) ([]*domain.RouteDate, error) {
	args := m.Called(ctx, routeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.RouteDate), args.Error(1)
}

func (m *MockRouteRepository) GetDate(ctx context.Context, dateID int64) (*domain.RouteDate, error) {
	args := m.Called(ctx, dateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RouteDate), args.Error(1)
}

func (m *MockRouteRepository) FindDate(ctx context.Context, routeID int64, date time.Time) (*domain.RouteDate, error) {
	args := m.Called(ctx, routeID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RouteDate), args.Error(1)
}

func (m *MockRouteRepository) CreateDate(ctx context.Context, date *domain.RouteDate) (*domain.RouteDate, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RouteDate), args.Error(1)
}

func (m *MockRouteRepository) UpdateDate(ctx context.Context, dateID int64, isActive bool) (*domain.RouteDate, error) {
	args := m.Called(ctx, dateID, isActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RouteDate), args.Error(1)
}

func (m *MockRouteRepository) DeleteDate(ctx context.Context, dateID int64) error {
	args := m.Called(ctx, dateID)
	return args.Error(0)
}

func (m *MockRouteRepository) CountDateBookings(ctx context.Context, dateID int64) (int, error) {
	args := m.Called(ctx, dateID)
	return args.Int(0), args.Error(1)
}

// MockBookingRepository is a mock of BookingRepository
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByCode(ctx context.Context, code string) (*domain.Booking, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.BookingWithRoute, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BookingWithRoute), args.Error(1)
}

func (m *MockBookingRepository) Update(ctx context.Context, id int64, status *domain.BookingStatus, internalNotes *string) (*domain.Booking, error) {
	args := m.Called(ctx, id, status, internalNotes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) CountByCodePrefix(ctx context.Context, prefix string) (int, error) {
	args := m.Called(ctx, prefix)
	return args.Int(0), args.Error(1)
}

func (m *MockBookingRepository) SumParticipants(ctx context.Context, routeDateID int64) (int, error) {
	args := m.Called(ctx, routeDateID)
	return args.Int(0), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) DeleteByPattern(ctx context.Context, pattern string) error {
	args := m.Called(ctx, pattern)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// MockDirectionsRepository is a mock of DirectionsRepository
type MockDirectionsRepository struct {
	mock.Mock
}

func (m *MockDirectionsRepository) GetRouteLine(ctx context.Context, points []domain.Coordinate) ([]domain.Coordinate, error) {
	args := m.Called(ctx, points)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Coordinate), args.Error(1)
}

// MockDraftRepository is a mock of DraftRepository
type MockDraftRepository struct {
	mock.Mock
}

func (m *MockDraftRepository) Get(ctx context.Context, sessionID string) (*itinerary.Draft, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*itinerary.Draft), args.Error(1)
}

func (m *MockDraftRepository) Save(ctx context.Context, sessionID string, draft *itinerary.Draft) error {
	args := m.Called(ctx, sessionID, draft)
	return args.Error(0)
}

func (m *MockDraftRepository) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

// MockUserRepository is a mock of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockRuleRepository is a mock of RuleRepository
type MockRuleRepository struct {
	mock.Mock
}

func (m *MockRuleRepository) List(ctx context.Context) ([]*domain.Rule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Rule), args.Error(1)
}

func (m *MockRuleRepository) GetByID(ctx context.Context, id int64) (*domain.Rule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rule), args.Error(1)
}

func (m *MockRuleRepository) GetByCode(ctx context.Context, code string) (*domain.Rule, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rule), args.Error(1)
}

func (m *MockRuleRepository) GetByTitle(ctx context.Context, title string) (*domain.Rule, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rule), args.Error(1)
}

func (m *MockRuleRepository) Create(ctx context.Context, rule *domain.Rule) (*domain.Rule, error) {
	args := m.Called(ctx, rule)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rule), args.Error(1)
}

func (m *MockRuleRepository) Update(ctx context.Context, rule *domain.Rule) (*domain.Rule, error) {
	args := m.Called(ctx, rule)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rule), args.Error(1)
}

func (m *MockRuleRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRuleRepository) UserHasRule(ctx context.Context, userID int64, code string) (bool, error) {
	args := m.Called(ctx, userID, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockRuleRepository) ListUserRules(ctx context.Context, userID int64) ([]*domain.Rule, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Rule), args.Error(1)
}

func (m *MockRuleRepository) SyncUserRules(ctx context.Context, userID int64, role domain.UserRole) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

func (m *MockRuleRepository) AttachRuleToRoleUsers(ctx context.Context, ruleID int64, role domain.UserRole) error {
	args := m.Called(ctx, ruleID, role)
	return args.Error(0)
}

func (m *MockRuleRepository) DetachRuleFromUsers(ctx context.Context, ruleID int64) error {
	args := m.Called(ctx, ruleID)
	return args.Error(0)
}

// MockTariffRepository is a mock of TariffRepository
type MockTariffRepository struct {
	mock.Mock
}

func (m *MockTariffRepository) List(ctx context.Context) ([]*domain.Tariff, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Tariff), args.Error(1)
}

func (m *MockTariffRepository) GetByID(ctx context.Context, id int64) (*domain.Tariff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tariff), args.Error(1)
}

func (m *MockTariffRepository) GetByTitle(ctx context.Context, title string) (*domain.Tariff, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tariff), args.Error(1)
}

func (m *MockTariffRepository) Create(ctx context.Context, tariff *domain.Tariff) (*domain.Tariff, error) {
	args := m.Called(ctx, tariff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tariff), args.Error(1)
}

func (m *MockTariffRepository) Update(ctx context.Context, tariff *domain.Tariff) (*domain.Tariff, error) {
	args := m.Called(ctx, tariff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tariff), args.Error(1)
}

func (m *MockTariffRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockReviewRepository is a mock of ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) CreateExcursion(ctx context.Context, excursion *domain.CompletedExcursion) (*domain.CompletedExcursion, error) {
	args := m.Called(ctx, excursion)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompletedExcursion), args.Error(1)
}

func (m *MockReviewRepository) ListExcursions(ctx context.Context, routeID int64) ([]*domain.CompletedExcursion, error) {
	args := m.Called(ctx, routeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CompletedExcursion), args.Error(1)
}

func (m *MockReviewRepository) GetExcursion(ctx context.Context, id int64) (*domain.CompletedExcursion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompletedExcursion), args.Error(1)
}

func (m *MockReviewRepository) CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	args := m.Called(ctx, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) GetReview(ctx context.Context, id int64) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByRoute(ctx context.Context, routeID int64, approvedOnly bool) ([]*domain.ReviewWithExcursion, error) {
	args := m.Called(ctx, routeID, approvedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ReviewWithExcursion), args.Error(1)
}

func (m *MockReviewRepository) ListPending(ctx context.Context) ([]*domain.ReviewWithExcursion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ReviewWithExcursion), args.Error(1)
}

func (m *MockReviewRepository) SetApproval(ctx context.Context, id int64, approved bool) (*domain.Review, error) {
	args := m.Called(ctx, id, approved)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) DeleteReview(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
