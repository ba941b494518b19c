package logic

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Mukunt07/subramaniya-mess/internal/constants"
	"github.com/Mukunt07/subramaniya-mess/internal/dao/repository"
	"github.com/Mukunt07/subramaniya-mess/internal/dto"
	"github.com/Mukunt07/subramaniya-mess/internal/helper"
	"github.com/Mukunt07/subramaniya-mess/internal/models"
)

const revenueTrendDays = 7

// AnalyticsLogic computes dashboard aggregates from committed bills and the
// stock ledger. Everything here is a read-only projection: cancelled bills
// are excluded from revenue, and no query ever mutates state.
type AnalyticsLogic struct {
	billsRepo    repository.BillsRepository
	menuRepo     repository.MenuItemsRepository
	settingsRepo repository.SettingsRepository
	logger       *zap.Logger
}

func NewAnalyticsLogic(
	billsRepo repository.BillsRepository,
	menuRepo repository.MenuItemsRepository,
	settingsRepo repository.SettingsRepository,
	logger *zap.Logger,
) *AnalyticsLogic {
	return &AnalyticsLogic{
		billsRepo:    billsRepo,
		menuRepo:     menuRepo,
		settingsRepo: settingsRepo,
		logger:       logger.Named("AnalyticsLogic"),
	}
}

// GetReport assembles the full dashboard in parallel reads.
func (l *AnalyticsLogic) GetReport(ctx context.Context) (*dto.AnalyticsReport, error) {
	now := time.Now()
	trendStart, _ := helper.DayBounds(now.AddDate(0, 0, -(revenueTrendDays - 1)))
	_, todayEnd := helper.DayBounds(now)

	var (
		bills []*models.Bill
		items []*models.MenuItem
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bills, err = l.billsRepo.ListByDateRange(gctx, trendStart, todayEnd, constants.BillStatusPaid.String())
		return err
	})
	g.Go(func() error {
		var err error
		items, err = l.menuRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		l.logger.Error("GetReport: reads failed", zap.Error(err))
		return nil, err
	}

	lowStockThreshold := int64(10)
	if settings, err := l.settingsRepo.Get(ctx); err == nil {
		lowStockThreshold = settings.LowStockThreshold
	}

	todayStart, _ := helper.DayBounds(now)

	report := &dto.AnalyticsReport{
		Stats:         l.buildStats(bills, items, todayStart, lowStockThreshold),
		DailyRevenue:  l.buildDailyRevenue(bills, now),
		CategorySales: l.buildCategorySales(bills, items),
		TopItems:      l.buildTopItems(bills),
		Wastage:       l.buildWastage(items, now),
	}
	return report, nil
}

// GetDashboardStats returns just the at-a-glance numbers for today.
func (l *AnalyticsLogic) GetDashboardStats(ctx context.Context) (*dto.DashboardStats, error) {
	now := time.Now()
	todayStart, todayEnd := helper.DayBounds(now)

	var (
		bills []*models.Bill
		items []*models.MenuItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bills, err = l.billsRepo.ListByDateRange(gctx, todayStart, todayEnd, constants.BillStatusPaid.String())
		return err
	})
	g.Go(func() error {
		var err error
		items, err = l.menuRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		l.logger.Error("GetDashboardStats: reads failed", zap.Error(err))
		return nil, err
	}

	lowStockThreshold := int64(10)
	if settings, err := l.settingsRepo.Get(ctx); err == nil {
		lowStockThreshold = settings.LowStockThreshold
	}

	return l.buildStats(bills, items, todayStart, lowStockThreshold), nil
}

func (l *AnalyticsLogic) buildStats(bills []*models.Bill, items []*models.MenuItem, todayStart time.Time, lowStockThreshold int64) *dto.DashboardStats {
	split := make(map[string]float64, len(constants.PaymentModes()))
	for _, mode := range constants.PaymentModes() {
		split[mode.String()] = 0
	}
	hours := make([]*dto.HourRevenuePoint, 24)
	for i := range hours {
		hours[i] = &dto.HourRevenuePoint{Hour: fmt.Sprintf("%d:00", i)}
	}

	stats := &dto.DashboardStats{PaymentSplit: split, RevenueByHour: hours}
	for _, bill := range bills {
		if bill.CreatedAt.Before(todayStart) {
			continue
		}
		stats.TodayRevenue += bill.TotalAmount
		stats.TodayBills++
		for _, bi := range bill.Items {
			stats.ItemsSold += bi.Quantity
		}
		if _, ok := split[bill.PaymentMode]; ok {
			split[bill.PaymentMode] = helper.RoundRupees(split[bill.PaymentMode] + bill.TotalAmount)
		}
		hour := hours[bill.CreatedAt.Hour()]
		hour.Amount = helper.RoundRupees(hour.Amount + bill.TotalAmount)
	}
	stats.TodayRevenue = helper.RoundRupees(stats.TodayRevenue)
	if stats.TodayBills > 0 {
		stats.AvgBillValue = math.Round(stats.TodayRevenue / float64(stats.TodayBills))
	}
	for _, item := range items {
		if item.Available && item.Remaining() <= lowStockThreshold {
			stats.LowStockCount++
		}
	}
	return stats
}

func (l *AnalyticsLogic) buildDailyRevenue(bills []*models.Bill, now time.Time) []*dto.DailyRevenuePoint {
	points := make([]*dto.DailyRevenuePoint, revenueTrendDays)
	index := make(map[string]*dto.DailyRevenuePoint, revenueTrendDays)
	for i := 0; i < revenueTrendDays; i++ {
		date := helper.DateString(now.AddDate(0, 0, -(revenueTrendDays - 1 - i)))
		points[i] = &dto.DailyRevenuePoint{Date: date}
		index[date] = points[i]
	}
	for _, bill := range bills {
		if point, ok := index[helper.DateString(bill.CreatedAt)]; ok {
			point.Revenue = helper.RoundRupees(point.Revenue + bill.TotalAmount)
			point.Bills++
		}
	}
	return points
}

func (l *AnalyticsLogic) buildCategorySales(bills []*models.Bill, items []*models.MenuItem) []*dto.CategorySales {
	categoryByItem := make(map[int64]string, len(items))
	for _, item := range items {
		categoryByItem[item.ID] = item.Category
	}

	byCategory := make(map[string]*dto.CategorySales)
	for _, bill := range bills {
		for _, bi := range bill.Items {
			category, ok := categoryByItem[bi.ItemID]
			if !ok {
				// Item was deleted since the sale; its category is gone with it.
				category = "Other"
			}
			entry, ok := byCategory[category]
			if !ok {
				entry = &dto.CategorySales{Category: category}
				byCategory[category] = entry
			}
			entry.Quantity += bi.Quantity
			entry.Revenue = helper.RoundRupees(entry.Revenue + bi.Total)
		}
	}

	result := make([]*dto.CategorySales, 0, len(byCategory))
	for _, entry := range byCategory {
		result = append(result, entry)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Revenue > result[j].Revenue })
	return result
}

func (l *AnalyticsLogic) buildTopItems(bills []*models.Bill) []*dto.ItemSales {
	byItem := make(map[int64]*dto.ItemSales)
	for _, bill := range bills {
		for _, bi := range bill.Items {
			entry, ok := byItem[bi.ItemID]
			if !ok {
				entry = &dto.ItemSales{ItemID: bi.ItemID, Name: bi.Name}
				byItem[bi.ItemID] = entry
			}
			entry.Quantity += bi.Quantity
			entry.Revenue = helper.RoundRupees(entry.Revenue + bi.Total)
		}
	}

	result := make([]*dto.ItemSales, 0, len(byItem))
	for _, entry := range byItem {
		result = append(result, entry)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Quantity > result[j].Quantity })
	if len(result) > 10 {
		result = result[:10]
	}
	return result
}

// buildWastage reports prepared-but-unsold stock for batches prepared before
// today. Today's batch is still on sale and not yet wastage.
func (l *AnalyticsLogic) buildWastage(items []*models.MenuItem, now time.Time) []*dto.WastageEntry {
	today := helper.DateString(now)
	result := make([]*dto.WastageEntry, 0)
	for _, item := range items {
		if item.PreparedDate >= today {
			continue
		}
		wasted := item.Remaining()
		if wasted <= 0 {
			continue
		}
		result = append(result, &dto.WastageEntry{
			ItemID:   item.ID,
			Name:     item.Name,
			Prepared: item.PreparedQuantity,
			Sold:     item.SoldQuantity,
			Wasted:   wasted,
			Loss:     helper.RoundRupees(float64(wasted) * item.Price),
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Loss > result[j].Loss })
	return result
}
