package logic

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Mukunt07/subramaniya-mess/internal/constants"
	"github.com/Mukunt07/subramaniya-mess/internal/dao/mongodb"
	"github.com/Mukunt07/subramaniya-mess/internal/dao/repository"
	"github.com/Mukunt07/subramaniya-mess/internal/db"
	"github.com/Mukunt07/subramaniya-mess/internal/dto"
	"github.com/Mukunt07/subramaniya-mess/internal/helper"
	"github.com/Mukunt07/subramaniya-mess/internal/models"
	"github.com/Mukunt07/subramaniya-mess/pkg/pagination"
)

// BillingLogic defines the interface for the billing workflow.
type BillingLogic interface {
	CreateBill(ctx context.Context, d *dto.CreateBillRequest) (*models.Bill, error)
	CancelOrder(ctx context.Context, d *dto.CancelOrderRequest) (*models.Bill, error)
	GetBill(ctx context.Context, id primitive.ObjectID) (*models.Bill, error)
	GetOrders(ctx context.Context, d *dto.ListBillsRequest) (*pagination.PageResult, error)
}

var _ BillingLogic = (*billingLogic)(nil)

type billingLogic struct {
	menuRepo     repository.MenuItemsRepository
	billsRepo    repository.BillsRepository
	countersRepo repository.CountersRepository
	settingsRepo repository.SettingsRepository
	txManager    db.TransactionManager
	recorder     *ActivityRecorder
	logger       *zap.Logger
}

func NewBillingLogic(
	menuRepo repository.MenuItemsRepository,
	billsRepo repository.BillsRepository,
	countersRepo repository.CountersRepository,
	settingsRepo repository.SettingsRepository,
	txManager db.TransactionManager,
	recorder *ActivityRecorder,
	logger *zap.Logger,
) *billingLogic {
	return &billingLogic{
		menuRepo:     menuRepo,
		billsRepo:    billsRepo,
		countersRepo: countersRepo,
		settingsRepo: settingsRepo,
		txManager:    txManager,
		recorder:     recorder,
		logger:       logger.Named("BillingLogic"),
	}
}

// cartLineTotals is the per-item aggregation of a cart. Two cart lines naming
// the same item collapse into one entry so the guarded stock write for that
// item is issued exactly once.
func aggregateCart(lines []*dto.CartLine) (map[int64]int64, []int64, error) {
	quantities := make(map[int64]int64, len(lines))
	order := make([]int64, 0, len(lines))
	for _, line := range lines {
		if line.GetQuantity() <= 0 {
			return nil, nil, ErrInvalidQuantity
		}
		if _, seen := quantities[line.GetItemID()]; !seen {
			order = append(order, line.GetItemID())
		}
		quantities[line.GetItemID()] += line.GetQuantity()
	}
	return quantities, order, nil
}

// CreateBill runs the whole sale as one transaction: read every referenced
// item, validate stock in memory, reserve a bill number, then batch the
// guarded stock writes and the bill insert. Either everything commits or
// nothing does, so stock counters, the sequence and the bill store never
// drift apart.
func (l *billingLogic) CreateBill(ctx context.Context, d *dto.CreateBillRequest) (*models.Bill, error) {
	if len(d.GetItems()) == 0 {
		return nil, ErrEmptyCart
	}

	quantities, order, err := aggregateCart(d.GetItems())
	if err != nil {
		return nil, err
	}

	settings, err := l.currentSettings(ctx)
	if err != nil {
		return nil, err
	}

	result, err := l.txManager.WithTransaction(ctx, func(sessCtx context.Context) (interface{}, error) {
		// Phase 1: gather all reads.
		items, err := l.menuRepo.GetByIDs(sessCtx, order)
		if err != nil {
			return nil, fmt.Errorf("failed to load cart items: %w", err)
		}
		byID := make(map[int64]*models.MenuItem, len(items))
		for _, item := range items {
			byID[item.ID] = item
		}

		// Phase 2: validate and compute in memory. No writes have happened
		// yet, so any error here aborts cleanly.
		writes := make([]repository.StockWrite, 0, len(order))
		billItems := make([]models.BillItem, 0, len(d.GetItems()))
		subtotal := 0.0
		for _, id := range order {
			item, ok := byID[id]
			if !ok {
				return nil, ErrItemNotFound
			}
			qty := quantities[id]
			newSold := item.SoldQuantity + qty
			if newSold > item.PreparedQuantity {
				return nil, &mongodb.InsufficientStockError{ItemName: item.Name, Available: item.Remaining()}
			}
			writes = append(writes, repository.StockWrite{
				ItemID:       id,
				ExpectedSold: item.SoldQuantity,
				NewSold:      newSold,
				Disable:      settings.AutoDisableStock && item.PreparedQuantity-newSold == 0,
			})
		}
		// Bill lines keep the client's line structure; prices and names come
		// from the server-side reads, never the request.
		for _, line := range d.GetItems() {
			item := byID[line.GetItemID()]
			lineTotal := helper.RoundRupees(item.Price * float64(line.GetQuantity()))
			billItems = append(billItems, models.BillItem{
				ItemID:   item.ID,
				Name:     item.Name,
				Price:    item.Price,
				Quantity: line.GetQuantity(),
				Total:    lineTotal,
			})
			subtotal += lineTotal
		}
		subtotal = helper.RoundRupees(subtotal)

		gstAmount := 0.0
		if d.GetGSTEnabled() {
			gstAmount = helper.RoundRupees(subtotal * settings.GSTPercentage / 100)
		}
		// Subtotal and GST stay at paise precision; the amount actually
		// charged at the counter is a whole rupee.
		totalAmount := math.Round(subtotal + gstAmount)

		// The sequence increment participates in the transaction: if anything
		// below fails, the counter rolls back and no bill number is burned.
		seq, err := l.countersRepo.NextBlock(sessCtx, constants.CounterBills, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to reserve bill number: %w", err)
		}

		// Phase 3: batch guarded writes.
		if err := l.menuRepo.ApplyStockWrites(sessCtx, writes); err != nil {
			return nil, err
		}

		bill := &models.Bill{
			ID:          primitive.NewObjectID(),
			BillNumber:  fmt.Sprintf("%s-%04d", settings.BillPrefix, seq),
			Items:       billItems,
			Subtotal:    subtotal,
			GSTEnabled:  d.GetGSTEnabled(),
			GSTAmount:   gstAmount,
			TotalAmount: totalAmount,
			PaymentMode: d.GetPaymentMode().String(),
			Status:      constants.BillStatusPaid.String(),
			CreatedAt:   time.Now(),
		}
		if _, err := l.billsRepo.Create(sessCtx, bill); err != nil {
			return nil, fmt.Errorf("failed to create bill: %w", err)
		}
		return bill, nil
	})
	if err != nil {
		return nil, l.mapTxError(err, "CreateBill")
	}

	bill := result.(*models.Bill)
	l.recorder.Record(ctx, constants.ActivityBillCreated, bill.BillNumber,
		fmt.Sprintf("Bill %s created for %s%.2f (%s)", bill.BillNumber, settings.Currency, bill.TotalAmount, bill.PaymentMode))
	return bill, nil
}

// CancelOrder reverts a bill's stock inside one transaction and flips its
// status. Items deleted since the sale are skipped: the bill snapshot stays
// intact and there is simply no ledger entry left to credit.
func (l *billingLogic) CancelOrder(ctx context.Context, d *dto.CancelOrderRequest) (*models.Bill, error) {
	result, err := l.txManager.WithTransaction(ctx, func(sessCtx context.Context) (interface{}, error) {
		bill, err := l.billsRepo.GetByID(sessCtx, d.GetBillID())
		if err != nil {
			if errors.Is(err, mongodb.ErrNotFound) {
				return nil, ErrBillNotFound
			}
			return nil, err
		}
		if bill.Status == constants.BillStatusCancelled.String() {
			return nil, ErrAlreadyCancelled
		}

		quantities := make(map[int64]int64, len(bill.Items))
		order := make([]int64, 0, len(bill.Items))
		for _, bi := range bill.Items {
			if _, seen := quantities[bi.ItemID]; !seen {
				order = append(order, bi.ItemID)
			}
			quantities[bi.ItemID] += bi.Quantity
		}

		items, err := l.menuRepo.GetByIDs(sessCtx, order)
		if err != nil {
			return nil, fmt.Errorf("failed to load bill items: %w", err)
		}

		// Deleted items are silently absent from this map.
		writes := make([]repository.StockWrite, 0, len(items))
		for _, item := range items {
			newSold := item.SoldQuantity - quantities[item.ID]
			if newSold < 0 {
				newSold = 0
			}
			writes = append(writes, repository.StockWrite{
				ItemID:       item.ID,
				ExpectedSold: item.SoldQuantity,
				NewSold:      newSold,
			})
		}

		if err := l.menuRepo.ApplyStockWrites(sessCtx, writes); err != nil {
			return nil, err
		}

		now := time.Now()
		if err := l.billsRepo.MarkCancelled(sessCtx, bill.ID, now); err != nil {
			if errors.Is(err, mongodb.ErrNotFound) {
				// The status moved between our read and the guarded update.
				return nil, ErrAlreadyCancelled
			}
			return nil, err
		}

		bill.Status = constants.BillStatusCancelled.String()
		bill.CancelledAt = &now
		return bill, nil
	})
	if err != nil {
		return nil, l.mapTxError(err, "CancelOrder")
	}

	bill := result.(*models.Bill)
	l.recorder.Record(ctx, constants.ActivityBillCancelled, bill.BillNumber,
		fmt.Sprintf("Bill %s cancelled, stock restored", bill.BillNumber))
	return bill, nil
}

func (l *billingLogic) GetBill(ctx context.Context, id primitive.ObjectID) (*models.Bill, error) {
	bill, err := l.billsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, ErrBillNotFound
		}
		return nil, err
	}
	return bill, nil
}

func (l *billingLogic) GetOrders(ctx context.Context, d *dto.ListBillsRequest) (*pagination.PageResult, error) {
	pageReq := pagination.NewPageRequest(d.GetPage(), d.GetPageSize())
	bills, total, err := l.billsRepo.List(ctx, &repository.ListBillsParams{
		Status: d.GetStatus(),
		Offset: pageReq.GetOffset(),
		Limit:  pageReq.GetLimit(),
	})
	if err != nil {
		return nil, err
	}
	return pagination.NewPageResult(bills, total, pageReq), nil
}

// currentSettings returns the settings snapshot the workflow prices against.
// A missing document means first run, which falls back to the defaults.
func (l *billingLogic) currentSettings(ctx context.Context) (*models.Settings, error) {
	settings, err := l.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return models.DefaultSettings(), nil
		}
		return nil, err
	}
	return settings, nil
}

// mapTxError passes business errors through untouched and wraps everything
// else (driver errors, aborted transactions) as ErrTransactionFailed so the
// transport layer can map it to a single failure mode.
func (l *billingLogic) mapTxError(err error, op string) error {
	var insufficient *mongodb.InsufficientStockError
	switch {
	case errors.Is(err, ErrEmptyCart),
		errors.Is(err, ErrInvalidQuantity),
		errors.Is(err, ErrItemNotFound),
		errors.Is(err, ErrBillNotFound),
		errors.Is(err, ErrAlreadyCancelled),
		errors.As(err, &insufficient):
		return err
	default:
		l.logger.Error(op+": transaction failed", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrTransactionFailed, err)
	}
}

var BillingLogicProviderSet = wire.NewSet(NewBillingLogic, wire.Bind(new(BillingLogic), new(*billingLogic)))
