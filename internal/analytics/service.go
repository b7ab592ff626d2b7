package analytics

import (
	"context"
	"math"
	"sort"
	"time"
)

const emaAlpha = 0.3

type Service interface {
	ABCAnalysis(ctx context.Context) (*ABCResult, error)
	FSNAnalysis(ctx context.Context) ([]FSNItem, error)
	ForecastSMA(ctx context.Context, now time.Time) ([]Prediction, error)
	ForecastEMA(ctx context.Context, now time.Time) ([]Prediction, error)
	ForecastRegression(ctx context.Context, now time.Time) ([]Prediction, error)
	SalesReport(ctx context.Context) ([]ReportRow, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// ABCAnalysis classifies products by cumulative revenue share: the products
// covering the first 80% of revenue are class A, the next 15% class B, and
// the remainder class C.
func (s *service) ABCAnalysis(ctx context.Context) (*ABCResult, error) {
	products, err := s.repo.ProductRevenues(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Revenue > products[j].Revenue
	})

	var total float64
	for _, p := range products {
		total += p.Revenue
	}

	result := &ABCResult{
		A: []ProductRevenue{},
		B: []ProductRevenue{},
		C: []ProductRevenue{},
	}
	var cumulative float64
	for _, p := range products {
		cumulative += p.Revenue
		share := 0.0
		if total > 0 {
			share = cumulative / total * 100
		}
		switch {
		case share <= 80:
			result.A = append(result.A, p)
		case share <= 95:
			result.B = append(result.B, p)
		default:
			result.C = append(result.C, p)
		}
	}
	return result, nil
}

// FSNAnalysis labels each product by sales velocity: more than 10 units sold
// is fast-moving, 5 to 10 slow-moving, fewer than 5 non-moving.
func (s *service) FSNAnalysis(ctx context.Context) ([]FSNItem, error) {
	items, err := s.repo.Products(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		switch {
		case items[i].TotalSold > 10:
			items[i].Class = FastMoving
		case items[i].TotalSold >= 5:
			items[i].Class = SlowMoving
		default:
			items[i].Class = NonMoving
		}
	}
	return items, nil
}

// forecastWindow returns the closed interval covering the two full weeks
// preceding the current one, weeks starting on Sunday.
func forecastWindow(now time.Time) (time.Time, time.Time) {
	weekday := int(now.Weekday())
	from := now.AddDate(0, 0, -weekday-14)
	to := now.AddDate(0, 0, -weekday-1)
	return from, to
}

// weeklySeries groups weekly sales rows per product, preserving week order.
// Products with fewer than two weekly buckets are dropped.
func weeklySeries(rows []WeeklySalesRow) []productSeries {
	order := make([]int64, 0)
	byProduct := make(map[int64]*productSeries)
	for _, row := range rows {
		ps, ok := byProduct[row.ProductID]
		if !ok {
			ps = &productSeries{name: row.Name}
			byProduct[row.ProductID] = ps
			order = append(order, row.ProductID)
		}
		ps.weekly = append(ps.weekly, float64(row.Quantity))
	}

	series := make([]productSeries, 0, len(order))
	for _, id := range order {
		if ps := byProduct[id]; len(ps.weekly) >= 2 {
			series = append(series, *ps)
		}
	}
	return series
}

type productSeries struct {
	name   string
	weekly []float64
}

func (s *service) ForecastSMA(ctx context.Context, now time.Time) ([]Prediction, error) {
	from, to := forecastWindow(now)
	rows, err := s.repo.WeeklySales(ctx, from, to)
	if err != nil {
		return nil, err
	}

	predictions := make([]Prediction, 0)
	for _, ps := range weeklySeries(rows) {
		predictions = append(predictions, Prediction{
			ProductName: ps.name,
			NextWeek:    int64(math.Round(movingAverage(ps.weekly))),
		})
	}
	return predictions, nil
}

func (s *service) ForecastEMA(ctx context.Context, now time.Time) ([]Prediction, error) {
	from, to := forecastWindow(now)
	rows, err := s.repo.WeeklySales(ctx, from, to)
	if err != nil {
		return nil, err
	}

	predictions := make([]Prediction, 0)
	for _, ps := range weeklySeries(rows) {
		predictions = append(predictions, Prediction{
			ProductName: ps.name,
			NextWeek:    int64(math.Round(exponentialMovingAverage(ps.weekly, emaAlpha))),
		})
	}
	return predictions, nil
}

// ForecastRegression fits an order-2 polynomial over quantity and price,
// both normalized to their window maxima, against log sales volume, then
// evaluates it per product and exponentiates back to units.
func (s *service) ForecastRegression(ctx context.Context, now time.Time) ([]Prediction, error) {
	from, to := forecastWindow(now)
	rows, err := s.repo.SalesTotals(ctx, from, to)
	if err != nil {
		return nil, err
	}

	var maxQty, maxPrice float64
	for _, row := range rows {
		if q := float64(row.Quantity); q > maxQty {
			maxQty = q
		}
		if row.Price > maxPrice {
			maxPrice = row.Price
		}
	}

	var design [][]float64
	var target []float64
	for _, row := range rows {
		q := float64(row.Quantity)
		if q <= 0 || row.Price <= 0 {
			continue
		}
		nq := q / maxQty
		np := row.Price / maxPrice
		design = append(design, []float64{nq * nq, nq, np})
		target = append(target, math.Log(q))
	}

	coef, err := solveLeastSquares(design, target)
	if err != nil {
		return nil, err
	}

	predictions := make([]Prediction, 0, len(rows))
	for _, row := range rows {
		nq := float64(row.Quantity) / maxQty
		np := row.Price / maxPrice
		y := coef[0]*nq*nq + coef[1]*nq + coef[2]*np
		predictions = append(predictions, Prediction{
			ProductName: row.Name,
			NextWeek:    int64(math.Round(math.Exp(y))),
		})
	}
	return predictions, nil
}

func (s *service) SalesReport(ctx context.Context) ([]ReportRow, error) {
	return s.repo.Report(ctx)
}
