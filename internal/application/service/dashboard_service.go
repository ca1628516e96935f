package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopkart/admin-api/internal/domain/repository"
)

// topCityLimit bounds the city ranking returned to the dashboard.
const topCityLimit = 5

// DashboardService computes summary statistics over order and customer
// records at request time; nothing here is pre-stored.
type DashboardService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(orderRepo repository.OrderRepository, customerRepo repository.CustomerRepository) *DashboardService {
	return &DashboardService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
	}
}

// DashboardStats represents the dashboard summary card values. The trend
// fields are fixed placeholders: there is no historical snapshot storage to
// compute real deltas from.
type DashboardStats struct {
	Revenue        string `json:"revenue"`
	RevenueTrend   string `json:"revenueTrend"`
	Orders         string `json:"orders"`
	OrdersTrend    string `json:"ordersTrend"`
	Customers      string `json:"customers"`
	CustomersTrend string `json:"customersTrend"`
	Growth         string `json:"growth"`
	GrowthTrend    string `json:"growthTrend"`
}

// TopCity represents one row of the top-cities ranking
type TopCity struct {
	City       string `json:"city"`
	Sales      int    `json:"sales"`
	Percentage string `json:"percentage"`
}

// GetStats returns the dashboard summary computed from all order records and
// the customer count.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	customerCount, err := s.customerRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	var totalRevenue float64
	for _, order := range orders {
		if amount, ok := parseAmount(order.Amount); ok {
			totalRevenue += amount
		}
	}

	return &DashboardStats{
		Revenue:        fmt.Sprintf("₹ %.2f", totalRevenue),
		Orders:         strconv.Itoa(len(orders)),
		Customers:      strconv.FormatInt(customerCount, 10),
		RevenueTrend:   "+0%",
		OrdersTrend:    "+0%",
		CustomersTrend: "+0%",
		Growth:         "0%",
		GrowthTrend:    "+0%",
	}, nil
}

// GetTopCities ranks order locations by order count, highest first, bounded
// to five rows. Percentages are taken against the total order count including
// orders without a location. Ties are broken alphabetically by city name so
// the ranking is deterministic.
func (s *DashboardService) GetTopCities(ctx context.Context) ([]TopCity, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return []TopCity{}, nil
	}

	cityCounts := make(map[string]int)
	for _, order := range orders {
		if order.Location == "" {
			continue
		}
		cityCounts[order.Location]++
	}

	cities := make([]TopCity, 0, len(cityCounts))
	totalOrders := len(orders)
	for city, count := range cityCounts {
		cities = append(cities, TopCity{
			City:       city,
			Sales:      count,
			Percentage: fmt.Sprintf("%d%%", count*100/totalOrders),
		})
	}

	sort.Slice(cities, func(i, j int) bool {
		if cities[i].Sales != cities[j].Sales {
			return cities[i].Sales > cities[j].Sales
		}
		return cities[i].City < cities[j].City
	})

	if len(cities) > topCityLimit {
		cities = cities[:topCityLimit]
	}
	return cities, nil
}

// parseAmount extracts a numeric value from a human-formatted currency string
// such as "₹ 1,200". Every rune except digits and '.' is dropped before
// parsing; anything that still fails to parse contributes nothing.
func parseAmount(amount string) (float64, bool) {
	var b strings.Builder
	for _, r := range amount {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// AnalyticsData holds the monthly sales series and category breakdown for
// the analytics charts.
type AnalyticsData struct {
	SalesData    []SalesPoint    `json:"salesData"`
	CategoryData []CategoryPoint `json:"categoryData"`
}

// SalesPoint represents one month of the revenue/expenses series
type SalesPoint struct {
	Name     string `json:"name"`
	Revenue  int    `json:"revenue"`
	Expenses int    `json:"expenses"`
}

// CategoryPoint represents one slice of the category breakdown
type CategoryPoint struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// GetAnalytics returns the analytics chart data. The series is static mock
// data; real time-series aggregation would need history the store does not
// keep.
func (s *DashboardService) GetAnalytics() *AnalyticsData {
	return &AnalyticsData{
		SalesData: []SalesPoint{
			{Name: "Jan", Revenue: 4000, Expenses: 2400},
			{Name: "Feb", Revenue: 3000, Expenses: 1398},
			{Name: "Mar", Revenue: 2000, Expenses: 9800},
			{Name: "Apr", Revenue: 2780, Expenses: 3908},
			{Name: "May", Revenue: 1890, Expenses: 4800},
			{Name: "Jun", Revenue: 2390, Expenses: 3800},
			{Name: "Jul", Revenue: 3490, Expenses: 4300},
		},
		CategoryData: []CategoryPoint{
			{Name: "Electronics", Value: 400},
			{Name: "Clothing", Value: 300},
			{Name: "Groceries", Value: 300},
			{Name: "Furniture", Value: 200},
		},
	}
}
