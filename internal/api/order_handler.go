package api

import (
	"net/http"

	"github.com/phrazzld/food-ordering-api/internal/api/shared"
	"github.com/phrazzld/food-ordering-api/internal/platform/logger"
	"github.com/phrazzld/food-ordering-api/internal/service"
)

// OrderHandler handles the place-order endpoint.
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new OrderHandler with the given dependencies.
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	if orderService == nil {
		panic("order handler requires an order service")
	}
	return &OrderHandler{orderService: orderService}
}

// PlaceOrder handles POST /place-order. The token is checked before the
// body is read, so an unauthenticated caller never learns how its body failed
// to parse. The order owner is taken from the verified token.
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	identity, err := h.orderService.Authenticate(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req PlaceOrderRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	confirmation, err := h.orderService.PlaceOrderFor(r.Context(), identity, service.PlaceOrderInput{
		Address: req.Address,
		Items:   req.Items,
		Contact: req.contact(),
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Debug("place-order request completed", "order_id", confirmation.OrderID)

	shared.RespondWithSuccess(w, r, shared.Response{
		Msg:     MsgOrderPlaced,
		OrderID: confirmation.OrderID,
	})
}
