package experience

import (
	"context"
	"testing"

	"wayfarer/internal/domain"
	"wayfarer/internal/modules/ownership"
	"wayfarer/internal/pkg/listquery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockExperienceRepository struct {
	mock.Mock
}

func (m *MockExperienceRepository) ListByHost(ctx context.Context, hostID int64, plan listquery.Plan) ([]domain.Experience, int64, error) {
	args := m.Called(ctx, hostID, plan)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Experience), args.Get(1).(int64), args.Error(2)
}

type MockGate struct {
	mock.Mock
}

func (m *MockGate) AuthorizeHost(ctx context.Context, hostID int64) (ownership.Handle, error) {
	args := m.Called(ctx, hostID)
	return args.Get(0).(ownership.Handle), args.Error(1)
}

func TestList_StatusFilterApplied(t *testing.T) {
	repo := new(MockExperienceRepository)
	gate := new(MockGate)

	gate.On("AuthorizeHost", mock.Anything, int64(7)).Return(ownership.Handle{HostID: 7}, nil)

	var captured listquery.Plan
	repo.On("ListByHost", mock.Anything, int64(7), mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(listquery.Plan)
		}).
		Return([]domain.Experience{{ID: 1}}, int64(1), nil)

	svc := NewService(repo, gate)
	rows, total, err := svc.List(context.Background(), 7, ListParams{Status: "published", Page: 1, Limit: 12})

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, int64(1), total)
	assert.Len(t, captured.Conds, 1)
	assert.Equal(t, "status = ?", captured.Conds[0].Expr)
}

func TestList_UnknownStatusRejected(t *testing.T) {
	repo := new(MockExperienceRepository)
	gate := new(MockGate)

	gate.On("AuthorizeHost", mock.Anything, int64(7)).Return(ownership.Handle{HostID: 7}, nil)

	svc := NewService(repo, gate)
	_, _, err := svc.List(context.Background(), 7, ListParams{Status: "archived", Page: 1, Limit: 12})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestList_DeletedNotFilterable(t *testing.T) {
	repo := new(MockExperienceRepository)
	gate := new(MockGate)

	gate.On("AuthorizeHost", mock.Anything, int64(7)).Return(ownership.Handle{HostID: 7}, nil)

	svc := NewService(repo, gate)
	_, _, err := svc.List(context.Background(), 7, ListParams{Status: "deleted", Page: 1, Limit: 12})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestList_InactiveHostNotFound(t *testing.T) {
	repo := new(MockExperienceRepository)
	gate := new(MockGate)

	gate.On("AuthorizeHost", mock.Anything, int64(7)).Return(ownership.Handle{}, ownership.ErrNotFound)

	svc := NewService(repo, gate)
	_, _, err := svc.List(context.Background(), 7, ListParams{Page: 1, Limit: 12})

	assert.ErrorIs(t, err, ownership.ErrNotFound)
	repo.AssertNotCalled(t, "ListByHost", mock.Anything, mock.Anything, mock.Anything)
}
