package order

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
	"marketplace/internal/entities"
	"marketplace/internal/service/catalog"
	"marketplace/internal/service/user"
	"marketplace/pkg/logger"
)

const DefaultCommissionPercent = 10

type Config struct {
	// CommissionPercent доля курьера от суммы доставленного заказа.
	CommissionPercent int64
}

type Service struct {
	log            logger.Logger
	repository     Repository
	catalogService CatalogService
	userService    UserService
	timeFactory    DeliveryTimeFactory
	publisher      EventPublisher
	txManager      TxManager
	cfg            Config
}

func New(
	log logger.Logger,
	repository Repository,
	catalogService CatalogService,
	userService UserService,
	timeFactory DeliveryTimeFactory,
	publisher EventPublisher,
	txManager TxManager,
	cfg Config,
) *Service {
	if cfg.CommissionPercent <= 0 {
		cfg.CommissionPercent = DefaultCommissionPercent
	}

	return &Service{
		log:            log.With(logger.NewField("component", "order-service")),
		repository:     repository,
		catalogService: catalogService,
		userService:    userService,
		timeFactory:    timeFactory,
		publisher:      publisher,
		txManager:      txManager,
		cfg:            cfg,
	}
}

// CreateOrder оформляет заказ. Позиции с неизвестными, недоступными или чужими товарами
// молча отбрасываются; если не осталось ни одной, возвращается ErrNoOrderableItems.
func (s *Service) CreateOrder(ctx context.Context, draft entities.OrderDraft) (*entities.Order, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	var created *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		consumer, err := s.userService.GetUser(ctx, draft.UserID)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return ErrInvalidConsumer
			}
			return fmt.Errorf("get user: %w", err)
		}
		if consumer.Role != entities.RoleConsumer {
			return ErrInvalidConsumer
		}

		store, err := s.catalogService.GetStore(ctx, draft.StoreID)
		if err != nil {
			if errors.Is(err, catalog.ErrStoreNotFound) {
				return ErrStoreNotFound
			}
			return fmt.Errorf("get store: %w", err)
		}
		if !store.IsOpen {
			return ErrStoreClosed
		}

		products, err := s.catalogService.GetProducts(ctx, productIDs(draft.Items))
		if err != nil {
			return fmt.Errorf("resolve products: %w", err)
		}

		lines, total, err := resolveLineItems(draft.Items, store.ID, products)
		if err != nil {
			return err
		}
		if dropped := len(draft.Items) - len(lines); dropped > 0 {
			OrderLineItemsDroppedTotal.Add(float64(dropped))
		}
		if len(lines) == 0 {
			return ErrNoOrderableItems
		}

		now := time.Now().UTC()
		created, err = s.repository.Create(ctx, entities.Order{
			UserID:          draft.UserID,
			StoreID:         store.ID,
			Products:        lines,
			Total:           total,
			DeliveryAddress: draft.DeliveryAddress,
			PaymentMethod:   draft.PaymentMethod,
			Status:          entities.OrderPending,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		s.publish(ctx, created, "", entities.ActorConsumer)
		return nil
	})
	if err != nil {
		return nil, err
	}

	OrdersCreatedTotal.WithLabelValues(strconv.FormatInt(created.StoreID, 10)).Inc()
	return created, nil
}

func (s *Service) ListOrdersForUser(ctx context.Context, userID int64) ([]entities.Order, error) {
	if !isValidID(userID) {
		return nil, ErrInvalidUserID
	}

	orders, err := s.repository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user orders: %w", err)
	}
	return orders, nil
}

func (s *Service) ListOrdersForStore(ctx context.Context, storeID int64) ([]entities.Order, error) {
	if !isValidID(storeID) {
		return nil, ErrInvalidStoreID
	}

	orders, err := s.repository.ListByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("list store orders: %w", err)
	}
	return orders, nil
}

func (s *Service) ListOrdersForCourier(ctx context.Context, courierID int64) ([]entities.Order, error) {
	if !isValidID(courierID) {
		return nil, ErrInvalidCourier
	}

	orders, err := s.repository.ListByCourier(ctx, courierID)
	if err != nil {
		return nil, fmt.Errorf("list courier orders: %w", err)
	}
	return orders, nil
}

// ListPendingForCouriers отдает очередь заказов, которые курьер еще может принять.
func (s *Service) ListPendingForCouriers(ctx context.Context) ([]entities.Order, error) {
	orders, err := s.repository.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending orders: %w", err)
	}

	pending := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == entities.OrderPending {
			pending = append(pending, o)
		}
	}
	return pending, nil
}

func (s *Service) CountByStatus(ctx context.Context) ([]entities.OrderStatusCount, error) {
	counts, err := s.repository.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders by status: %w", err)
	}
	return counts, nil
}

func (s *Service) GetCourierEarnings(ctx context.Context, courierID int64, now time.Time) (*entities.CourierEarnings, error) {
	if err := s.ensureCourier(ctx, courierID); err != nil {
		return nil, err
	}

	orders, err := s.repository.ListByCourier(ctx, courierID)
	if err != nil {
		return nil, fmt.Errorf("list courier orders: %w", err)
	}

	now = now.UTC()
	earnings := entities.CourierEarnings{CourierID: courierID}
	for _, o := range orders {
		if o.Status != entities.OrderDelivered {
			continue
		}

		amount := commission(o.Total, s.cfg.CommissionPercent)
		earnings.TotalAmount += amount
		earnings.TotalCount++

		if o.DeliveredAt != nil && sameDay(o.DeliveredAt.UTC(), now) {
			earnings.TodayAmount += amount
			earnings.TodayCount++
		}
	}
	return &earnings, nil
}

func (s *Service) ensureCourier(ctx context.Context, courierID int64) error {
	if !isValidID(courierID) {
		return ErrInvalidCourier
	}

	courier, err := s.userService.GetUser(ctx, courierID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return ErrInvalidCourier
		}
		return fmt.Errorf("get courier: %w", err)
	}
	if courier.Role != entities.RoleDelivery {
		return ErrInvalidCourier
	}
	return nil
}

func (s *Service) publish(ctx context.Context, order *entities.Order, previous entities.OrderStatusType, actor entities.ActorType) {
	event := entities.OrderEvent{
		EventID:          uuid.NewString(),
		OrderID:          order.ID,
		UserID:           order.UserID,
		StoreID:          order.StoreID,
		DeliveryPersonID: order.DeliveryPersonID,
		PreviousStatus:   previous,
		Status:           order.Status,
		Actor:            actor,
		Total:            order.Total,
		OccurredAt:       order.UpdatedAt,
	}

	err := s.publisher.Publish(ctx, event)
	if err != nil {
		s.log.With(
			logger.NewField("error", err),
			logger.NewField("order", order.ID),
			logger.NewField("status", order.Status.String()),
		).Warn("publish order event")
	}
}

func productIDs(items []entities.OrderLineItem) []int64 {
	seen := make(map[int64]struct{}, len(items))
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}

// resolveLineItems возвращает ErrInvalidQuantity, если сумма заказа не помещается в int64.
func resolveLineItems(items []entities.OrderLineItem, storeID int64, products []entities.Product) ([]entities.OrderProduct, int64, error) {
	byID := make(map[int64]entities.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	var total int64
	lines := make([]entities.OrderProduct, 0, len(items))
	for _, item := range items {
		product, ok := byID[item.ProductID]
		if !ok || product.StoreID != storeID || !product.Available {
			continue
		}

		if product.Price > 0 && item.Quantity > math.MaxInt64/product.Price {
			return nil, 0, ErrInvalidQuantity
		}
		amount := product.Price * item.Quantity
		if total > math.MaxInt64-amount {
			return nil, 0, ErrInvalidQuantity
		}

		lines = append(lines, entities.OrderProduct{
			ProductID: product.ID,
			StoreID:   product.StoreID,
			Name:      product.Name,
			Price:     product.Price,
			Category:  product.Category,
			Quantity:  item.Quantity,
		})
		total += amount
	}
	return lines, total, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
