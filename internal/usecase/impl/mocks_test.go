package impl

import (
	"context"
	"io"
	"log/slog"

	"hallcms/internal/domain/entity"
	"hallcms/internal/domain/repository"
	"hallcms/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubTxManager runs the transactional function directly against the given
// factory. Rollback semantics are the storage layer's concern, not the
// services'; the tests only care that errors propagate.
type stubTxManager struct {
	factory repository.RepositoryFactory
}

func (m *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

type stubRepoFactory struct {
	admin    repository.AdminRepository
	booking  repository.BookingRepository
	document repository.DocumentRepository
}

func (f *stubRepoFactory) AdminRepo() repository.AdminRepository       { return f.admin }
func (f *stubRepoFactory) BookingRepo() repository.BookingRepository   { return f.booking }
func (f *stubRepoFactory) DocumentRepo() repository.DocumentRepository { return f.document }

type mockAdminRepository struct {
	mock.Mock
}

func (m *mockAdminRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AdminAccount, error) {
	args := m.Called(ctx, id)
	if account := args.Get(0); account != nil {
		return account.(*entity.AdminAccount), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAdminRepository) FindByUsername(ctx context.Context, username string) (*entity.AdminAccount, error) {
	args := m.Called(ctx, username)
	if account := args.Get(0); account != nil {
		return account.(*entity.AdminAccount), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAdminRepository) FindByEmail(ctx context.Context, email string) (*entity.AdminAccount, error) {
	args := m.Called(ctx, email)
	if account := args.Get(0); account != nil {
		return account.(*entity.AdminAccount), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAdminRepository) Create(ctx context.Context, account *entity.AdminAccount) error {
	return m.Called(ctx, account).Error(0)
}

func (m *mockAdminRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

type mockBookingRepository struct {
	mock.Mock
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *entity.BookingEnquiry) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *mockBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BookingEnquiry, error) {
	args := m.Called(ctx, id)
	if booking := args.Get(0); booking != nil {
		return booking.(*entity.BookingEnquiry), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockBookingRepository) FindAll(ctx context.Context) ([]*entity.BookingEnquiry, error) {
	args := m.Called(ctx)
	if bookings := args.Get(0); bookings != nil {
		return bookings.([]*entity.BookingEnquiry), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockBookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

type mockDocumentRepository struct {
	mock.Mock
}

func (m *mockDocumentRepository) Create(ctx context.Context, document *entity.GovernanceDocument) error {
	return m.Called(ctx, document).Error(0)
}

func (m *mockDocumentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.GovernanceDocument, error) {
	args := m.Called(ctx, id)
	if document := args.Get(0); document != nil {
		return document.(*entity.GovernanceDocument), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockDocumentRepository) FindAll(ctx context.Context) ([]*entity.GovernanceDocument, error) {
	args := m.Called(ctx)
	if documents := args.Get(0); documents != nil {
		return documents.([]*entity.GovernanceDocument), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockDocumentRepository) MaxOrder(ctx context.Context) (int, error) {
	args := m.Called(ctx)

	return args.Int(0), args.Error(1)
}

func (m *mockDocumentRepository) Update(ctx context.Context, document *entity.GovernanceDocument) error {
	return m.Called(ctx, document).Error(0)
}

func (m *mockDocumentRepository) UpdateOrder(ctx context.Context, id uuid.UUID, order int) error {
	return m.Called(ctx, id, order).Error(0)
}

func (m *mockDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockActivityRepository struct {
	mock.Mock
}

func (m *mockActivityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	return m.Called(ctx, activity).Error(0)
}

func (m *mockActivityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	args := m.Called(ctx, id)
	if activity := args.Get(0); activity != nil {
		return activity.(*entity.Activity), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockActivityRepository) FindAll(ctx context.Context) ([]*entity.Activity, error) {
	args := m.Called(ctx)
	if activities := args.Get(0); activities != nil {
		return activities.([]*entity.Activity), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockActivityRepository) FindVisible(ctx context.Context) ([]*entity.Activity, error) {
	args := m.Called(ctx)
	if activities := args.Get(0); activities != nil {
		return activities.([]*entity.Activity), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockActivityRepository) Update(ctx context.Context, activity *entity.Activity) error {
	return m.Called(ctx, activity).Error(0)
}

func (m *mockActivityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockNewsRepository struct {
	mock.Mock
}

func (m *mockNewsRepository) Create(ctx context.Context, article *entity.NewsArticle) error {
	return m.Called(ctx, article).Error(0)
}

func (m *mockNewsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.NewsArticle, error) {
	args := m.Called(ctx, id)
	if article := args.Get(0); article != nil {
		return article.(*entity.NewsArticle), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockNewsRepository) FindAll(ctx context.Context) ([]*entity.NewsArticle, error) {
	args := m.Called(ctx)
	if articles := args.Get(0); articles != nil {
		return articles.([]*entity.NewsArticle), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockNewsRepository) FindPublished(ctx context.Context) ([]*entity.NewsArticle, error) {
	args := m.Called(ctx)
	if articles := args.Get(0); articles != nil {
		return articles.([]*entity.NewsArticle), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockNewsRepository) Update(ctx context.Context, article *entity.NewsArticle) error {
	return m.Called(ctx, article).Error(0)
}

func (m *mockNewsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockEventRepository struct {
	mock.Mock
}

func (m *mockEventRepository) Create(ctx context.Context, event *entity.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockEventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	args := m.Called(ctx, id)
	if event := args.Get(0); event != nil {
		return event.(*entity.Event), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockEventRepository) FindAll(ctx context.Context) ([]*entity.Event, error) {
	args := m.Called(ctx)
	if events := args.Get(0); events != nil {
		return events.([]*entity.Event), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockEventRepository) Update(ctx context.Context, event *entity.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockCommitteeRepository struct {
	mock.Mock
}

func (m *mockCommitteeRepository) Create(ctx context.Context, member *entity.CommitteeMember) error {
	return m.Called(ctx, member).Error(0)
}

func (m *mockCommitteeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CommitteeMember, error) {
	args := m.Called(ctx, id)
	if member := args.Get(0); member != nil {
		return member.(*entity.CommitteeMember), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCommitteeRepository) FindAll(ctx context.Context) ([]*entity.CommitteeMember, error) {
	args := m.Called(ctx)
	if members := args.Get(0); members != nil {
		return members.([]*entity.CommitteeMember), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCommitteeRepository) Update(ctx context.Context, member *entity.CommitteeMember) error {
	return m.Called(ctx, member).Error(0)
}

func (m *mockCommitteeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockGroupRepository struct {
	mock.Mock
}

func (m *mockGroupRepository) Create(ctx context.Context, group *entity.AssociatedGroup) error {
	return m.Called(ctx, group).Error(0)
}

func (m *mockGroupRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AssociatedGroup, error) {
	args := m.Called(ctx, id)
	if group := args.Get(0); group != nil {
		return group.(*entity.AssociatedGroup), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockGroupRepository) FindAll(ctx context.Context) ([]*entity.AssociatedGroup, error) {
	args := m.Called(ctx)
	if groups := args.Get(0); groups != nil {
		return groups.([]*entity.AssociatedGroup), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockGroupRepository) Update(ctx context.Context, group *entity.AssociatedGroup) error {
	return m.Called(ctx, group).Error(0)
}

func (m *mockGroupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockSettingsRepository struct {
	mock.Mock
}

func (m *mockSettingsRepository) Find(ctx context.Context) (*entity.SiteSettings, error) {
	args := m.Called(ctx)
	if settings := args.Get(0); settings != nil {
		return settings.(*entity.SiteSettings), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockSettingsRepository) Save(ctx context.Context, settings *entity.SiteSettings) error {
	return m.Called(ctx, settings).Error(0)
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) IssueToken(username string, userID uuid.UUID) (string, error) {
	args := m.Called(username, userID)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if claims := args.Get(0); claims != nil {
		return claims.(*service.Claims), args.Error(1)
	}

	return nil, args.Error(1)
}

type mockFileStore struct {
	mock.Mock
}

func (m *mockFileStore) Save(ctx context.Context, name string, content io.Reader) error {
	return m.Called(ctx, name, content).Error(0)
}

func (m *mockFileStore) Delete(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

func (m *mockFileStore) Exists(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)

	return args.Bool(0), args.Error(1)
}

type mockBookingNotifier struct {
	mock.Mock
}

func (m *mockBookingNotifier) NotifyBookingCreated(ctx context.Context, booking *entity.BookingEnquiry) error {
	return m.Called(ctx, booking).Error(0)
}
