package api

import (
	"context"
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"huobi/pkg/core"
)

// Order type strings accepted by the exchange.
const (
	OrderTypeBuyMarket  = "buy-market"
	OrderTypeSellMarket = "sell-market"
	OrderTypeBuyLimit   = "buy-limit"
	OrderTypeSellLimit  = "sell-limit"
)

// OrderRequest is the JSON payload for placing an order. Amount and price
// are decimal strings; the exchange rejects float formatting.
type OrderRequest struct {
	AccountID     string `json:"account-id"`
	Symbol        string `json:"symbol"`
	Type          string `json:"type"`
	Amount        string `json:"amount"`
	Price         string `json:"price,omitempty"`
	Source        string `json:"source,omitempty"`
	ClientOrderID string `json:"client-order-id,omitempty"`
}

// Order is an order as reported by the exchange.
type Order struct {
	ID               int64       `json:"id"`
	Symbol           string      `json:"symbol"`
	AccountID        int64       `json:"account-id"`
	Amount           apd.Decimal `json:"amount"`
	Price            apd.Decimal `json:"price"`
	CreatedAt        int64       `json:"created-at"`
	Type             string      `json:"type"`
	FilledAmount     apd.Decimal `json:"filled-amount"`
	FilledCashAmount apd.Decimal `json:"filled-cash-amount"`
	FilledFees       apd.Decimal `json:"filled-fees"`
	Source           string      `json:"source"`
	State            string      `json:"state"`
}

// PlaceOrder submits a new order and returns the exchange-assigned order id.
func (a *API) PlaceOrder(ctx context.Context, req *OrderRequest) (string, error) {
	body, err := a.client.PostSigned(ctx, "/v1/order/orders/place", nil, req)
	if err != nil {
		return "", err
	}

	resp, err := decode[struct {
		Data string `json:"data"`
	}](body, "place order")
	if err != nil {
		return "", err
	}
	return resp.Data, nil
}

// CancelOrder requests cancellation of an order by id. Returns the id of the
// order the cancellation was accepted for.
func (a *API) CancelOrder(ctx context.Context, orderID string) (string, error) {
	endpoint := fmt.Sprintf("/v1/order/orders/%s/submitcancel", orderID)

	body, err := a.client.PostSigned(ctx, endpoint, nil, struct{}{})
	if err != nil {
		return "", err
	}

	resp, err := decode[struct {
		Data string `json:"data"`
	}](body, "cancel order")
	if err != nil {
		return "", err
	}
	return resp.Data, nil
}

// OpenOrders lists currently open orders for an account, optionally filtered
// by symbol.
func (a *API) OpenOrders(ctx context.Context, accountID, symbol string) ([]Order, error) {
	params := core.Params{"account-id": accountID}
	if symbol != "" {
		params.Set("symbol", symbol)
	}

	body, err := a.client.GetSigned(ctx, "/v1/order/openOrders", params)
	if err != nil {
		return nil, err
	}

	resp, err := decode[struct {
		Data []Order `json:"data"`
	}](body, "open orders")
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}
