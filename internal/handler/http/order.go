package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/giftmart/giftadmin/internal/models"
	"github.com/giftmart/giftadmin/internal/transition"
	"github.com/giftmart/giftadmin/internal/view"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// OrderService is interface for the order store
type OrderService interface {
	// Refresh replaces the order collection from the backend
	Refresh(ctx context.Context, filters url.Values) error
	// Orders returns a snapshot of the collection
	Orders() []models.Order
	// Transitions returns legal next statuses and rejectability for an order
	Transitions(orderID string) ([]models.Status, bool, error)
	// UpdateStatus moves an order to the next status through the backend
	UpdateStatus(ctx context.Context, orderID string, next models.Status, payload transition.Payload) (*models.Order, error)
	// Updating reports whether a status update is in flight for the order
	Updating(orderID string) bool
}

// OrderHandler represents HTTP handler for admin order requests
type OrderHandler struct {
	svc             OrderService
	defaultPageSize int
	maxPageSize     int
}

// NewOrderHandler creates new OrderHandler instance
func NewOrderHandler(svc OrderService, defaultPageSize, maxPageSize int) *OrderHandler {
	return &OrderHandler{
		svc:             svc,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

type orderItemResp struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type orderResp struct {
	ID              string          `json:"id"`
	Status          string          `json:"status"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	Date            string          `json:"date,omitempty"`
	Items           []orderItemResp `json:"items,omitempty"`
	ReceiverName    string          `json:"receiver_name,omitempty"`
	ReceiverPhone   string          `json:"receiver_phone,omitempty"`
	CustomerName    string          `json:"customer_name,omitempty"`
	CustomerEmail   string          `json:"customer_email,omitempty"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	IsPremium       bool            `json:"is_premium"`
	Updating        bool            `json:"updating"`
}

func (oh *OrderHandler) toOrderResp(order models.Order) orderResp {
	items := make([]orderItemResp, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemResp{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	date := ""
	if !order.Date.IsZero() {
		date = order.Date.Format(time.RFC3339)
	}

	return orderResp{
		ID:              order.ID,
		Status:          string(order.Status),
		TotalPrice:      order.TotalPrice,
		Date:            date,
		Items:           items,
		ReceiverName:    order.ReceiverName,
		ReceiverPhone:   order.ReceiverPhone,
		CustomerName:    order.CustomerName,
		CustomerEmail:   order.CustomerEmail,
		RejectionReason: order.RejectionReason,
		IsPremium:       order.IsPremium,
		Updating:        oh.svc.Updating(order.ID),
	}
}

type listOrdersResp struct {
	Orders     []orderResp `json:"orders"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
	TotalCount int         `json:"total_count"`
}

// ListOrders renders one page of the order list
// 200 — успешная обработка запроса;
// 400 — неизвестный фильтр статуса;
// 401 — пользователь не авторизован.
func (oh *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		statusFilter := query.Get("status")
		if statusFilter == "" {
			statusFilter = view.StatusFilterAll
		}
		if statusFilter != view.StatusFilterAll {
			status, err := models.ParseStatus(statusFilter)
			if err != nil {
				http.Error(w, "unknown status filter", http.StatusBadRequest)
				return
			}
			statusFilter = string(status)
		}

		page, _ := strconv.Atoi(query.Get("page"))
		pageSize, err := strconv.Atoi(query.Get("page_size"))
		if err != nil || pageSize <= 0 {
			pageSize = oh.defaultPageSize
		}
		if pageSize > oh.maxPageSize {
			pageSize = oh.maxPageSize
		}

		result := view.Build(oh.svc.Orders(), view.Params{
			StatusFilter: statusFilter,
			Page:         page,
			PageSize:     pageSize,
		})

		resp := listOrdersResp{
			Orders:     make([]orderResp, 0, len(result.Orders)),
			Page:       result.Page,
			PageSize:   result.PageSize,
			TotalPages: result.TotalPages,
			TotalCount: result.TotalCount,
		}
		for _, order := range result.Orders {
			resp.Orders = append(resp.Orders, oh.toOrderResp(order))
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// RefreshOrders reloads the order collection from the backend
// 204 — коллекция обновлена;
// 502 — бэкенд недоступен или отклонил учётные данные.
func (oh *OrderHandler) RefreshOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := oh.svc.Refresh(r.Context(), r.URL.Query()); err != nil {
			http.Error(w, "backend unavailable", http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type updateStatusReq struct {
	Status          string `json:"status"`
	RejectionReason string `json:"rejection_reason"`
}

// UpdateOrderStatus moves an order to a new status
// 200 — переход выполнен, возвращён обновлённый заказ;
// 400 — неверный формат запроса или неизвестный статус;
// 404 — заказ не найден;
// 409 — переход запрещён или обновление уже выполняется;
// 422 — отклонение без причины;
// 502 — бэкенд недоступен.
func (oh *OrderHandler) UpdateOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID := chi.URLParam(r, "id")
		if orderID == "" {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		var req updateStatusReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		next, err := models.ParseStatus(req.Status)
		if err != nil {
			http.Error(w, "unknown status", http.StatusBadRequest)
			return
		}

		payload := transition.Payload{RejectionReason: req.RejectionReason}

		updated, err := oh.svc.UpdateStatus(r.Context(), orderID, next, payload)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrOrderNotFound):
				http.Error(w, "order not found", http.StatusNotFound)
			case errors.Is(err, models.ErrIllegalTransition):
				http.Error(w, "illegal transition", http.StatusConflict)
			case errors.Is(err, models.ErrAlreadyUpdating):
				http.Error(w, "update already in progress", http.StatusConflict)
			case errors.Is(err, models.ErrMissingReason):
				http.Error(w, "rejection reason is required", http.StatusUnprocessableEntity)
			case errors.Is(err, models.ErrUnauthorized), errors.Is(err, models.ErrBackend):
				http.Error(w, "backend unavailable", http.StatusBadGateway)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, oh.toOrderResp(*updated))
	}
}

type transitionsResp struct {
	Transitions []string `json:"transitions"`
	CanReject   bool     `json:"can_reject"`
}

// OrderTransitions returns the actions the UI may offer for an order
// 200 — успешная обработка запроса;
// 404 — заказ не найден.
func (oh *OrderHandler) OrderTransitions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID := chi.URLParam(r, "id")

		next, canReject, err := oh.svc.Transitions(orderID)
		if err != nil {
			if errors.Is(err, models.ErrOrderNotFound) {
				http.Error(w, "order not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		resp := transitionsResp{
			Transitions: make([]string, 0, len(next)),
			CanReject:   canReject,
		}
		for _, status := range next {
			resp.Transitions = append(resp.Transitions, string(status))
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

type statsResp struct {
	Total        int             `json:"total"`
	ByStatus     map[string]int  `json:"by_status"`
	Revenue      decimal.Decimal `json:"revenue"`
	PremiumCount int             `json:"premium_count"`
}

// OrderStats summarizes the order set for the statistics screen
func (oh *OrderHandler) OrderStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats := view.Summarize(oh.svc.Orders())

		resp := statsResp{
			Total:        stats.Total,
			ByStatus:     make(map[string]int, len(stats.ByStatus)),
			Revenue:      stats.Revenue,
			PremiumCount: stats.PremiumCount,
		}
		for status, count := range stats.ByStatus {
			resp.ByStatus[string(status)] = count
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return
	}
}
