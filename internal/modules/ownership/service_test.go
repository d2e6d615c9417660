package ownership

import (
	"context"
	"errors"
	"testing"

	"wayfarer/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) ResolveExperienceOwner(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockResolver) ResolveBookingOwner(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockResolver) ResolveReviewOwner(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockResolver) ResolveStoryOwner(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockResolver) ResolveStoryCommentOwner(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockHostDirectory struct {
	mock.Mock
}

func (m *MockHostDirectory) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func activeHost(id int64) *domain.User {
	return &domain.User{ID: id, Role: domain.RoleHost, IsActive: true}
}

func TestAuthorize_Success(t *testing.T) {
	resolver := new(MockResolver)
	hosts := new(MockHostDirectory)

	hosts.On("GetByID", mock.Anything, int64(7)).Return(activeHost(7), nil)
	resolver.On("ResolveBookingOwner", mock.Anything, int64(42)).Return(int64(7), nil)

	svc := NewService(resolver, hosts)
	h, err := svc.Authorize(context.Background(), 7, KindBooking, 42)

	assert.NoError(t, err)
	assert.Equal(t, Handle{Kind: KindBooking, ResourceID: 42, HostID: 7}, h)
}

func TestAuthorize_ForeignResourceLooksMissing(t *testing.T) {
	resolver := new(MockResolver)
	hosts := new(MockHostDirectory)

	hosts.On("GetByID", mock.Anything, int64(7)).Return(activeHost(7), nil)
	resolver.On("ResolveBookingOwner", mock.Anything, int64(42)).Return(int64(99), nil)

	svc := NewService(resolver, hosts)
	_, err := svc.Authorize(context.Background(), 7, KindBooking, 42)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAuthorize_MissingResource(t *testing.T) {
	resolver := new(MockResolver)
	hosts := new(MockHostDirectory)

	hosts.On("GetByID", mock.Anything, int64(7)).Return(activeHost(7), nil)
	resolver.On("ResolveReviewOwner", mock.Anything, int64(5)).Return(int64(0), gorm.ErrRecordNotFound)

	svc := NewService(resolver, hosts)
	_, err := svc.Authorize(context.Background(), 7, KindReview, 5)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAuthorize_InactiveHost(t *testing.T) {
	resolver := new(MockResolver)
	hosts := new(MockHostDirectory)

	hosts.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{
		ID: 7, Role: domain.RoleHost, IsActive: false,
	}, nil)

	svc := NewService(resolver, hosts)
	_, err := svc.Authorize(context.Background(), 7, KindExperience, 1)

	assert.ErrorIs(t, err, ErrNotFound)
	resolver.AssertNotCalled(t, "ResolveExperienceOwner", mock.Anything, mock.Anything)
}

func TestAuthorize_TravelerRoleRejected(t *testing.T) {
	resolver := new(MockResolver)
	hosts := new(MockHostDirectory)

	hosts.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{
		ID: 7, Role: domain.RoleTraveler, IsActive: true,
	}, nil)

	svc := NewService(resolver, hosts)
	_, err := svc.Authorize(context.Background(), 7, KindBooking, 42)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAuthorize_StorageErrorPropagates(t *testing.T) {
	resolver := new(MockResolver)
	hosts := new(MockHostDirectory)

	boom := errors.New("connection reset")
	hosts.On("GetByID", mock.Anything, int64(7)).Return(nil, boom)

	svc := NewService(resolver, hosts)
	_, err := svc.Authorize(context.Background(), 7, KindBooking, 42)

	assert.ErrorIs(t, err, boom)
}

func TestAuthorize_UnknownKind(t *testing.T) {
	resolver := new(MockResolver)
	hosts := new(MockHostDirectory)

	hosts.On("GetByID", mock.Anything, int64(7)).Return(activeHost(7), nil)

	svc := NewService(resolver, hosts)
	_, err := svc.Authorize(context.Background(), 7, Kind("gallery"), 1)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAuthorizeHost_Success(t *testing.T) {
	resolver := new(MockResolver)
	hosts := new(MockHostDirectory)

	hosts.On("GetByID", mock.Anything, int64(3)).Return(activeHost(3), nil)

	svc := NewService(resolver, hosts)
	h, err := svc.AuthorizeHost(context.Background(), 3)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), h.HostID)
}

func TestAuthorizeHost_MissingHost(t *testing.T) {
	resolver := new(MockResolver)
	hosts := new(MockHostDirectory)

	hosts.On("GetByID", mock.Anything, int64(3)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(resolver, hosts)
	_, err := svc.AuthorizeHost(context.Background(), 3)

	assert.ErrorIs(t, err, ErrNotFound)
}
