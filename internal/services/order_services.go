package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	mt "github.com/manojgowri/stitchpop-ecommerce-sub000/external/midtrans"
	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/model"
	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/repository"

	"github.com/google/uuid"
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type OrderService struct {
	Repo       *repository.OrderRepository
	CartRepo   *repository.CartRepository
	CouponRepo *repository.CouponRepository
	CouponSvc  *CouponService
	Snap       *snap.Client
}

func NewOrderService(
	r *repository.OrderRepository,
	cr *repository.CartRepository,
	cpr *repository.CouponRepository,
	cs *CouponService,
	snap *snap.Client,
) *OrderService {
	return &OrderService{
		Repo:       r,
		CartRepo:   cr,
		CouponRepo: cpr,
		CouponSvc:  cs,
		Snap:       snap,
	}
}

type CheckoutResult struct {
	OrderID     string  `json:"order_id"`
	Subtotal    float64 `json:"subtotal"`
	Discount    float64 `json:"discount"`
	Total       float64 `json:"total"`
	PaymentURL  string  `json:"payment_url,omitempty"`
	PaymentRef  string  `json:"payment_ref"`
}

// Checkout turns the user's cart into an order. Coupon redemption, order
// creation and cart clearing commit in one transaction; the usage increment
// is conditional so concurrent checkouts cannot over-redeem a coupon.
func (s *OrderService) Checkout(ctx context.Context, userID, couponCode string) (*CheckoutResult, error) {
	items, err := s.CartRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.New("cart is empty")
	}

	var subtotal float64
	orderItems := make([]model.OrderItem, 0, len(items))
	for i := range items {
		it := &items[i]
		subtotal += it.UnitPrice() * float64(it.Quantity)
		orderItems = append(orderItems, model.OrderItem{
			ProductID:       it.ProductID,
			Name:            it.Name,
			Quantity:        it.Quantity,
			Size:            it.Size,
			Color:           it.Color,
			PriceAtPurchase: it.UnitPrice(),
		})
	}

	var discount float64
	var coupon *model.Coupon
	if couponCode != "" {
		discount, coupon, err = s.CouponSvc.Validate(ctx, couponCode, subtotal, time.Now())
		if err != nil {
			return nil, err
		}
	}
	total := subtotal - discount

	paymentRef := fmt.Sprintf("SP-%s", uuid.NewString())
	order := &model.Order{
		UserID:     userID,
		Subtotal:   subtotal,
		Discount:   discount,
		Total:      total,
		Status:     model.OrderPendingPayment,
		PaymentRef: &paymentRef,
	}
	if coupon != nil {
		order.CouponCode = &coupon.Code
	}

	tx, err := s.Repo.DB.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if coupon != nil {
		if err := s.CouponRepo.RedeemTx(ctx, tx, coupon.CouponID); err != nil {
			return nil, err
		}
	}
	orderID, err := s.Repo.CreateTx(ctx, tx, order, orderItems)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	if err := s.CartRepo.ClearTx(ctx, tx, userID); err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	result := &CheckoutResult{
		OrderID:    orderID,
		Subtotal:   subtotal,
		Discount:   discount,
		Total:      total,
		PaymentRef: paymentRef,
	}

	// Payment link creation happens after commit; a failure here leaves the
	// order pending and the payment can be retried from the order page.
	if s.Snap != nil {
		req := &snap.Request{
			TransactionDetails: midtrans.TransactionDetails{
				OrderID:  paymentRef,
				GrossAmt: int64(total),
			},
		}
		resp, snapErr := s.Snap.CreateTransaction(req)
		if snapErr == nil {
			result.PaymentURL = resp.RedirectURL
		}
	}
	return result, nil
}

func (s *OrderService) Get(ctx context.Context, userID, orderID string) (*model.OrderResponse, error) {
	o, err := s.Repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, errors.New("order not found")
	}
	items, err := s.Repo.ListItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &model.OrderResponse{Order: *o, Items: items}, nil
}

func (s *OrderService) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// HandleNotification processes a midtrans payment webhook.
func (s *OrderService) HandleNotification(ctx context.Context, payload map[string]interface{}) error {
	ref, _ := payload["order_id"].(string)
	statusCode, _ := payload["status_code"].(string)
	grossAmount, _ := payload["gross_amount"].(string)
	signature, _ := payload["signature_key"].(string)
	txStatus, _ := payload["transaction_status"].(string)
	if ref == "" || signature == "" {
		return errors.New("missing notification fields")
	}

	if !mt.VerifySignature(ref, statusCode, grossAmount, signature, os.Getenv("MIDTRANS_SERVER_KEY")) {
		return errors.New("invalid signature")
	}

	order, err := s.Repo.GetByPaymentRef(ctx, ref)
	if err != nil {
		return err
	}

	switch txStatus {
	case "capture", "settlement":
		return s.Repo.SetStatus(ctx, order.OrderID, model.OrderPaid)
	case "deny", "cancel", "expire":
		return s.Repo.SetStatus(ctx, order.OrderID, model.OrderCancelled)
	}
	return nil
}
