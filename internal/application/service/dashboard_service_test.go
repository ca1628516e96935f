package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/shopkart/admin-api/internal/domain/entity"
)

type fakeOrderRepo struct {
	orders []entity.Order
	err    error
}

func (r *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	if r.err != nil {
		return r.err
	}
	order.ID = uint(len(r.orders) + 1)
	r.orders = append(r.orders, *order)
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id uint) (*entity.Order, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.orders {
		if r.orders[i].ID == id {
			return &r.orders[i], nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) Update(_ context.Context, order *entity.Order) error {
	if r.err != nil {
		return r.err
	}
	for i := range r.orders {
		if r.orders[i].ID == order.ID {
			r.orders[i] = *order
		}
	}
	return nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id uint) error {
	if r.err != nil {
		return r.err
	}
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeOrderRepo) FindAll(_ context.Context) ([]entity.Order, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.orders, nil
}

func (r *fakeOrderRepo) Count(_ context.Context) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.orders)), nil
}

type fakeCustomerRepo struct {
	count int64
	err   error
}

func (r *fakeCustomerRepo) Create(_ context.Context, _ *entity.Customer) error { return r.err }
func (r *fakeCustomerRepo) GetByID(_ context.Context, _ uint) (*entity.Customer, error) {
	return nil, r.err
}
func (r *fakeCustomerRepo) Update(_ context.Context, _ *entity.Customer) error { return r.err }
func (r *fakeCustomerRepo) Delete(_ context.Context, _ uint) error             { return r.err }
func (r *fakeCustomerRepo) FindAll(_ context.Context) ([]entity.Customer, error) {
	return nil, r.err
}
func (r *fakeCustomerRepo) Count(_ context.Context) (int64, error) {
	return r.count, r.err
}

func ordersWithAmounts(amounts ...string) []entity.Order {
	orders := make([]entity.Order, 0, len(amounts))
	for i, a := range amounts {
		orders = append(orders, entity.Order{ID: uint(i + 1), Amount: a})
	}
	return orders
}

func ordersWithLocations(locations ...string) []entity.Order {
	orders := make([]entity.Order, 0, len(locations))
	for i, l := range locations {
		orders = append(orders, entity.Order{ID: uint(i + 1), Location: l})
	}
	return orders
}

func TestGetStats(t *testing.T) {
	svc := NewDashboardService(
		&fakeOrderRepo{orders: ordersWithAmounts("₹ 1,200", "₹ 850", "abc", "")},
		&fakeCustomerRepo{count: 5},
	)

	stats, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}

	if stats.Revenue != "₹ 2050.00" {
		t.Errorf("expected revenue ₹ 2050.00, got %s", stats.Revenue)
	}
	if stats.Orders != "4" {
		t.Errorf("expected 4 orders, got %s", stats.Orders)
	}
	if stats.Customers != "5" {
		t.Errorf("expected 5 customers, got %s", stats.Customers)
	}
	if stats.RevenueTrend != "+0%" || stats.OrdersTrend != "+0%" || stats.CustomersTrend != "+0%" {
		t.Error("trend fields must be the fixed placeholders")
	}
	if stats.Growth != "0%" || stats.GrowthTrend != "+0%" {
		t.Error("growth fields must be the fixed placeholders")
	}
}

func TestGetStatsMalformedAmounts(t *testing.T) {
	// A record that fails to parse contributes zero but still counts as an
	// order; the aggregation never fails on bad data.
	svc := NewDashboardService(
		&fakeOrderRepo{orders: ordersWithAmounts("₹ 1.2.3", "N/A", "₹ 100.50", "$2,000")},
		&fakeCustomerRepo{},
	)

	stats, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.Revenue != "₹ 2100.50" {
		t.Errorf("expected revenue ₹ 2100.50, got %s", stats.Revenue)
	}
	if stats.Orders != "4" {
		t.Errorf("expected 4 orders, got %s", stats.Orders)
	}
}

func TestGetStatsEmptyStore(t *testing.T) {
	svc := NewDashboardService(&fakeOrderRepo{}, &fakeCustomerRepo{})

	stats, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.Revenue != "₹ 0.00" {
		t.Errorf("expected revenue ₹ 0.00, got %s", stats.Revenue)
	}
	if stats.Orders != "0" || stats.Customers != "0" {
		t.Errorf("expected zero counts, got orders=%s customers=%s", stats.Orders, stats.Customers)
	}
}

func TestGetStatsIdempotent(t *testing.T) {
	svc := NewDashboardService(
		&fakeOrderRepo{orders: ordersWithAmounts("₹ 1,200", "₹ 850")},
		&fakeCustomerRepo{count: 2},
	)

	first, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	second, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated aggregation over unchanged data diverged: %+v vs %+v", first, second)
	}
}

func TestGetStatsStorageFailure(t *testing.T) {
	svc := NewDashboardService(&fakeOrderRepo{err: errors.New("connection refused")}, &fakeCustomerRepo{})

	if _, err := svc.GetStats(context.Background()); err == nil {
		t.Error("storage failure should propagate")
	}
}

func TestGetTopCities(t *testing.T) {
	svc := NewDashboardService(
		&fakeOrderRepo{orders: ordersWithLocations("Paris", "Paris", "London", "Paris", "Tokyo")},
		&fakeCustomerRepo{},
	)

	cities, err := svc.GetTopCities(context.Background())
	if err != nil {
		t.Fatalf("GetTopCities failed: %v", err)
	}
	if len(cities) != 3 {
		t.Fatalf("expected 3 cities, got %d", len(cities))
	}

	if cities[0].City != "Paris" || cities[0].Sales != 3 || cities[0].Percentage != "60%" {
		t.Errorf("expected first entry {Paris 3 60%%}, got %+v", cities[0])
	}
	for i := 1; i < len(cities); i++ {
		if cities[i].Sales > cities[i-1].Sales {
			t.Errorf("cities not sorted by descending count: %+v", cities)
		}
	}
	// London and Tokyo both have one order; alphabetical tie-break
	if cities[1].City != "London" || cities[2].City != "Tokyo" {
		t.Errorf("expected alphabetical tie-break London before Tokyo, got %+v", cities[1:])
	}
}

func TestGetTopCitiesLimit(t *testing.T) {
	svc := NewDashboardService(
		&fakeOrderRepo{orders: ordersWithLocations(
			"Paris", "Paris", "Paris", "Paris", "Paris", "Paris",
			"London", "London", "London", "London", "London",
			"Tokyo", "Tokyo", "Tokyo", "Tokyo",
			"Berlin", "Berlin", "Berlin",
			"Madrid", "Madrid",
			"Mumbai",
		)},
		&fakeCustomerRepo{},
	)

	cities, err := svc.GetTopCities(context.Background())
	if err != nil {
		t.Fatalf("GetTopCities failed: %v", err)
	}
	if len(cities) != 5 {
		t.Fatalf("expected ranking capped at 5, got %d", len(cities))
	}
	for _, c := range cities {
		if c.City == "Mumbai" {
			t.Error("lowest-count city should have been truncated")
		}
	}
}

func TestGetTopCitiesSkipsEmptyLocations(t *testing.T) {
	// Orders without a location are excluded from grouping but still count
	// toward the percentage denominator.
	svc := NewDashboardService(
		&fakeOrderRepo{orders: ordersWithLocations("Paris", "Paris", "", "")},
		&fakeCustomerRepo{},
	)

	cities, err := svc.GetTopCities(context.Background())
	if err != nil {
		t.Fatalf("GetTopCities failed: %v", err)
	}
	if len(cities) != 1 {
		t.Fatalf("expected 1 city, got %d", len(cities))
	}
	if cities[0].Percentage != "50%" {
		t.Errorf("expected 50%% of all 4 orders, got %s", cities[0].Percentage)
	}
}

func TestGetTopCitiesPercentageFloor(t *testing.T) {
	svc := NewDashboardService(
		&fakeOrderRepo{orders: ordersWithLocations("Paris", "London", "Tokyo")},
		&fakeCustomerRepo{},
	)

	cities, err := svc.GetTopCities(context.Background())
	if err != nil {
		t.Fatalf("GetTopCities failed: %v", err)
	}
	// 1/3 of orders -> 33.33..., truncated to 33
	for _, c := range cities {
		if c.Percentage != "33%" {
			t.Errorf("expected truncated 33%% for %s, got %s", c.City, c.Percentage)
		}
	}
}

func TestGetTopCitiesNoOrders(t *testing.T) {
	svc := NewDashboardService(&fakeOrderRepo{}, &fakeCustomerRepo{})

	cities, err := svc.GetTopCities(context.Background())
	if err != nil {
		t.Fatalf("GetTopCities failed on empty store: %v", err)
	}
	if len(cities) != 0 {
		t.Errorf("expected empty ranking, got %+v", cities)
	}
}

func TestGetTopCitiesExactGrouping(t *testing.T) {
	// Grouping is by exact string; differing case makes distinct groups.
	svc := NewDashboardService(
		&fakeOrderRepo{orders: ordersWithLocations("New York", "new york")},
		&fakeCustomerRepo{},
	)

	cities, err := svc.GetTopCities(context.Background())
	if err != nil {
		t.Fatalf("GetTopCities failed: %v", err)
	}
	if len(cities) != 2 {
		t.Errorf("expected 2 distinct groups, got %d", len(cities))
	}
}

func TestGetAnalyticsStatic(t *testing.T) {
	svc := NewDashboardService(&fakeOrderRepo{}, &fakeCustomerRepo{})

	data := svc.GetAnalytics()
	if len(data.SalesData) != 7 {
		t.Fatalf("expected 7 monthly sales points, got %d", len(data.SalesData))
	}
	if data.SalesData[0].Name != "Jan" || data.SalesData[0].Revenue != 4000 || data.SalesData[0].Expenses != 2400 {
		t.Errorf("unexpected first sales point: %+v", data.SalesData[0])
	}
	if len(data.CategoryData) != 4 {
		t.Fatalf("expected 4 category slices, got %d", len(data.CategoryData))
	}
	if data.CategoryData[0].Name != "Electronics" || data.CategoryData[0].Value != 400 {
		t.Errorf("unexpected first category: %+v", data.CategoryData[0])
	}

	// Static output must not vary between calls
	if !reflect.DeepEqual(data, svc.GetAnalytics()) {
		t.Error("analytics data changed between calls")
	}
}
