package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ProductRevenues(ctx context.Context) ([]ProductRevenue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ProductRevenue), args.Error(1)
}

func (m *MockRepository) Products(ctx context.Context) ([]FSNItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]FSNItem), args.Error(1)
}

func (m *MockRepository) WeeklySales(ctx context.Context, from, to time.Time) ([]WeeklySalesRow, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]WeeklySalesRow), args.Error(1)
}

func (m *MockRepository) SalesTotals(ctx context.Context, from, to time.Time) ([]SalesTotalRow, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]SalesTotalRow), args.Error(1)
}

func (m *MockRepository) Report(ctx context.Context) ([]ReportRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ReportRow), args.Error(1)
}

// --- Tests ---

func TestService_ABCAnalysis(t *testing.T) {
	ctx := context.Background()

	t.Run("ClassifiesByCumulativeShare", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		// Revenues 80 / 15 / 5: cumulative shares 80%, 95%, 100%.
		mockRepo.On("ProductRevenues", ctx).Return([]ProductRevenue{
			{ProductID: 1, Name: "Helmet", Revenue: 80},
			{ProductID: 2, Name: "Gloves", Revenue: 15},
			{ProductID: 3, Name: "Visor", Revenue: 5},
		}, nil)

		res, err := svc.ABCAnalysis(ctx)
		assert.NoError(t, err)
		assert.Len(t, res.A, 1)
		assert.Len(t, res.B, 1)
		assert.Len(t, res.C, 1)
		assert.Equal(t, "Helmet", res.A[0].Name)
		assert.Equal(t, "Gloves", res.B[0].Name)
		assert.Equal(t, "Visor", res.C[0].Name)
	})

	t.Run("SortsBeforeClassifying", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("ProductRevenues", ctx).Return([]ProductRevenue{
			{ProductID: 1, Name: "Visor", Revenue: 5},
			{ProductID: 2, Name: "Helmet", Revenue: 95},
		}, nil)

		res, err := svc.ABCAnalysis(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "Helmet", res.B[0].Name)
		assert.Equal(t, "Visor", res.C[0].Name)
	})

	t.Run("EmptyCatalog", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("ProductRevenues", ctx).Return([]ProductRevenue{}, nil)

		res, err := svc.ABCAnalysis(ctx)
		assert.NoError(t, err)
		assert.Empty(t, res.A)
		assert.Empty(t, res.B)
		assert.Empty(t, res.C)
	})

	t.Run("RepoError", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("ProductRevenues", ctx).Return(nil, errors.New("db error"))

		_, err := svc.ABCAnalysis(ctx)
		assert.Error(t, err)
	})
}

func TestService_FSNAnalysis(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)
	mockRepo.On("Products", ctx).Return([]FSNItem{
		{ProductID: 1, TotalSold: 11},
		{ProductID: 2, TotalSold: 10},
		{ProductID: 3, TotalSold: 5},
		{ProductID: 4, TotalSold: 4},
		{ProductID: 5, TotalSold: 0},
	}, nil)

	items, err := svc.FSNAnalysis(ctx)
	assert.NoError(t, err)
	assert.Equal(t, FastMoving, items[0].Class)
	assert.Equal(t, SlowMoving, items[1].Class)
	assert.Equal(t, SlowMoving, items[2].Class)
	assert.Equal(t, NonMoving, items[3].Class)
	assert.Equal(t, NonMoving, items[4].Class)
}

func TestForecastWindow(t *testing.T) {
	// Wednesday 2024-06-12: window is Sunday 2024-05-26 through
	// Saturday 2024-06-08.
	now := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)
	from, to := forecastWindow(now)
	assert.Equal(t, time.Date(2024, 5, 26, 10, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 6, 8, 10, 0, 0, 0, time.UTC), to)
}

func TestService_ForecastSMA(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
	from, to := forecastWindow(now)

	t.Run("AveragesWeeklyBuckets", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("WeeklySales", ctx, from, to).Return([]WeeklySalesRow{
			{ProductID: 1, Name: "Helmet", Week: 21, Quantity: 10},
			{ProductID: 1, Name: "Helmet", Week: 22, Quantity: 21},
		}, nil)

		preds, err := svc.ForecastSMA(ctx, now)
		assert.NoError(t, err)
		assert.Equal(t, []Prediction{{ProductName: "Helmet", NextWeek: 16}}, preds)
	})

	t.Run("SkipsSingleWeekProducts", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("WeeklySales", ctx, from, to).Return([]WeeklySalesRow{
			{ProductID: 1, Name: "Helmet", Week: 22, Quantity: 10},
		}, nil)

		preds, err := svc.ForecastSMA(ctx, now)
		assert.NoError(t, err)
		assert.Empty(t, preds)
	})
}

func TestService_ForecastEMA(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
	from, to := forecastWindow(now)

	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)
	mockRepo.On("WeeklySales", ctx, from, to).Return([]WeeklySalesRow{
		{ProductID: 1, Name: "Helmet", Week: 21, Quantity: 10},
		{ProductID: 1, Name: "Helmet", Week: 22, Quantity: 20},
	}, nil)

	// EMA seeded with 10, then 0.3*20 + 0.7*10 = 13.
	preds, err := svc.ForecastEMA(ctx, now)
	assert.NoError(t, err)
	assert.Equal(t, []Prediction{{ProductName: "Helmet", NextWeek: 13}}, preds)
}

func TestService_ForecastRegression(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
	from, to := forecastWindow(now)

	t.Run("InsufficientData", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("SalesTotals", ctx, from, to).Return([]SalesTotalRow{
			{ProductID: 1, Name: "Helmet", Quantity: 10, Price: 100},
		}, nil)

		_, err := svc.ForecastRegression(ctx, now)
		assert.ErrorIs(t, err, ErrInsufficientData)
	})

	t.Run("SkipsNonPositiveRowsFromFit", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("SalesTotals", ctx, from, to).Return([]SalesTotalRow{
			{ProductID: 1, Name: "Helmet", Quantity: 10, Price: 100},
			{ProductID: 2, Name: "Gloves", Quantity: 0, Price: 50},
		}, nil)

		_, err := svc.ForecastRegression(ctx, now)
		assert.ErrorIs(t, err, ErrInsufficientData)
	})

	t.Run("PredictsPerProduct", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("SalesTotals", ctx, from, to).Return([]SalesTotalRow{
			{ProductID: 1, Name: "Helmet", Quantity: 10, Price: 100},
			{ProductID: 2, Name: "Gloves", Quantity: 20, Price: 50},
			{ProductID: 3, Name: "Visor", Quantity: 5, Price: 25},
		}, nil)

		preds, err := svc.ForecastRegression(ctx, now)
		assert.NoError(t, err)
		assert.Len(t, preds, 3)
		for _, p := range preds {
			assert.GreaterOrEqual(t, p.NextWeek, int64(0))
		}
	})
}

func TestMovingAverages(t *testing.T) {
	assert.Equal(t, 15.0, movingAverage([]float64{10, 20}))
	assert.Equal(t, 0.0, movingAverage(nil))
	assert.InDelta(t, 13.0, exponentialMovingAverage([]float64{10, 20}, 0.3), 1e-9)
	assert.Equal(t, 7.0, exponentialMovingAverage([]float64{7}, 0.3))
}
