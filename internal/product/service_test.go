package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, params SaveParams) (int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) GetAll(ctx context.Context) ([]Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int64, params SaveParams) error {
	args := m.Called(ctx, id, params)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) TopSelling(ctx context.Context) ([]TopSeller, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]TopSeller), args.Error(1)
}

func (m *MockRepository) AdjustStock(ctx context.Context, id int64, delta int64) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		params := SaveParams{Name: "Helmet X", Category: "Helmet", Price: 150}
		mockRepo.On("Create", ctx, params).Return(int64(1), nil)

		id, err := svc.Create(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, int64(1), id)
	})

	t.Run("MissingName", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, err := svc.Create(ctx, SaveParams{Category: "Helmet"})
		assert.ErrorIs(t, err, ErrInvalidInput)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("NegativePrice", func(t *testing.T) {
		svc := NewService(new(MockRepository))
		_, err := svc.Create(ctx, SaveParams{Name: "X", Category: "Helmet", Price: -1})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("NegativeStock", func(t *testing.T) {
		svc := NewService(new(MockRepository))
		_, err := svc.Create(ctx, SaveParams{Name: "X", Category: "Helmet", StockQuantity: -1})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("ValidatesBeforeRepo", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		err := svc.Update(ctx, 1, SaveParams{})
		assert.ErrorIs(t, err, ErrInvalidInput)
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Delegates", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		params := SaveParams{Name: "X", Category: "Helmet"}
		mockRepo.On("Update", ctx, int64(1), params).Return(nil)

		assert.NoError(t, svc.Update(ctx, 1, params))
	})
}

func TestRatingFor(t *testing.T) {
	cases := []struct {
		sold int64
		want int
	}{
		{0, 1}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {6, 3}, {7, 4}, {8, 4}, {9, 5}, {100, 5},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, RatingFor(tc.sold), "sold=%d", tc.sold)
	}
}
