package review

import (
	"context"
	"strings"
	"testing"
	"time"

	"wayfarer/internal/domain"
	"wayfarer/internal/modules/ownership"
	"wayfarer/internal/pkg/listquery"
	"wayfarer/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) ListByHost(ctx context.Context, hostID int64, plan listquery.Plan) ([]repository.HostReview, int64, error) {
	args := m.Called(ctx, hostID, plan)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]repository.HostReview), args.Get(1).(int64), args.Error(2)
}

func (m *MockReviewRepository) SetHostResponse(ctx context.Context, id int64, text string) (*domain.Review, error) {
	args := m.Called(ctx, id, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) ClearHostResponse(ctx context.Context, id int64) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

type MockGate struct {
	mock.Mock
}

func (m *MockGate) Authorize(ctx context.Context, hostID int64, kind ownership.Kind, resourceID int64) (ownership.Handle, error) {
	args := m.Called(ctx, hostID, kind, resourceID)
	return args.Get(0).(ownership.Handle), args.Error(1)
}

func (m *MockGate) AuthorizeHost(ctx context.Context, hostID int64) (ownership.Handle, error) {
	args := m.Called(ctx, hostID)
	return args.Get(0).(ownership.Handle), args.Error(1)
}

func grantReview(gate *MockGate, hostID, reviewID int64) {
	gate.On("Authorize", mock.Anything, hostID, ownership.KindReview, reviewID).
		Return(ownership.Handle{Kind: ownership.KindReview, ResourceID: reviewID, HostID: hostID}, nil)
}

func TestRespond_Success(t *testing.T) {
	reviews := new(MockReviewRepository)
	gate := new(MockGate)

	grantReview(gate, 7, 11)

	text := "Thanks for joining us!"
	respondedAt := time.Now()
	reviews.On("SetHostResponse", mock.Anything, int64(11), text).Return(&domain.Review{
		ID: 11, HostResponse: &text, HostResponseAt: &respondedAt,
	}, nil)

	svc := NewService(reviews, gate)
	rv, err := svc.Respond(context.Background(), 7, 11, text)

	assert.NoError(t, err)
	assert.Equal(t, text, *rv.HostResponse)
	assert.NotNil(t, rv.HostResponseAt)
}

func TestRespond_TrimsBeforeStoring(t *testing.T) {
	reviews := new(MockReviewRepository)
	gate := new(MockGate)

	grantReview(gate, 7, 11)

	trimmed := "Appreciated"
	reviews.On("SetHostResponse", mock.Anything, int64(11), trimmed).Return(&domain.Review{
		ID: 11, HostResponse: &trimmed,
	}, nil)

	svc := NewService(reviews, gate)
	_, err := svc.Respond(context.Background(), 7, 11, "  Appreciated  ")

	assert.NoError(t, err)
	reviews.AssertCalled(t, "SetHostResponse", mock.Anything, int64(11), trimmed)
}

func TestRespond_WhitespaceOnlyRejected(t *testing.T) {
	reviews := new(MockReviewRepository)
	gate := new(MockGate)

	grantReview(gate, 7, 11)

	svc := NewService(reviews, gate)
	_, err := svc.Respond(context.Background(), 7, 11, "   ")

	assert.ErrorIs(t, err, ErrEmptyResponse)
	reviews.AssertNotCalled(t, "SetHostResponse", mock.Anything, mock.Anything, mock.Anything)
}

func TestRespond_TooLongRejected(t *testing.T) {
	reviews := new(MockReviewRepository)
	gate := new(MockGate)

	grantReview(gate, 7, 11)

	svc := NewService(reviews, gate)
	_, err := svc.Respond(context.Background(), 7, 11, strings.Repeat("x", maxResponseLen+1))

	assert.ErrorIs(t, err, ErrResponseTooLong)
}

func TestRespond_ForeignReviewNotFound(t *testing.T) {
	reviews := new(MockReviewRepository)
	gate := new(MockGate)

	gate.On("Authorize", mock.Anything, int64(7), ownership.KindReview, int64(11)).
		Return(ownership.Handle{}, ownership.ErrNotFound)

	svc := NewService(reviews, gate)
	_, err := svc.Respond(context.Background(), 7, 11, "Thanks!")

	assert.ErrorIs(t, err, ownership.ErrNotFound)
}

func TestClearResponse_Success(t *testing.T) {
	reviews := new(MockReviewRepository)
	gate := new(MockGate)

	grantReview(gate, 7, 11)
	reviews.On("ClearHostResponse", mock.Anything, int64(11)).Return(&domain.Review{ID: 11}, nil)

	svc := NewService(reviews, gate)
	rv, err := svc.ClearResponse(context.Background(), 7, 11)

	assert.NoError(t, err)
	assert.Nil(t, rv.HostResponse)
	assert.Nil(t, rv.HostResponseAt)
}

func TestList_RatingFilter(t *testing.T) {
	reviews := new(MockReviewRepository)
	gate := new(MockGate)

	gate.On("AuthorizeHost", mock.Anything, int64(7)).Return(ownership.Handle{HostID: 7}, nil)

	var captured listquery.Plan
	reviews.On("ListByHost", mock.Anything, int64(7), mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(listquery.Plan)
		}).
		Return([]repository.HostReview{}, int64(0), nil)

	svc := NewService(reviews, gate)
	_, _, err := svc.List(context.Background(), 7, ListParams{Rating: 5, Page: 1, Limit: 10})

	assert.NoError(t, err)
	assert.Len(t, captured.Conds, 1)
	assert.Equal(t, "reviews.rating = ?", captured.Conds[0].Expr)
}

func TestList_OutOfRangeRating(t *testing.T) {
	reviews := new(MockReviewRepository)
	gate := new(MockGate)

	gate.On("AuthorizeHost", mock.Anything, int64(7)).Return(ownership.Handle{HostID: 7}, nil)

	svc := NewService(reviews, gate)
	_, _, err := svc.List(context.Background(), 7, ListParams{Rating: 9, Page: 1, Limit: 10})

	assert.ErrorIs(t, err, ErrInvalidRating)
}
