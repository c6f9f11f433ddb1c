package api

import (
	"context"

	"huobi/pkg/core"
)

// MergedTick is the aggregated 24h ticker for one symbol. Market endpoints
// deliver numeric JSON, unlike the decimal strings on trading endpoints.
type MergedTick struct {
	ID     int64     `json:"id"`
	Amount float64   `json:"amount"`
	Count  int64     `json:"count"`
	Open   float64   `json:"open"`
	Close  float64   `json:"close"`
	Low    float64   `json:"low"`
	High   float64   `json:"high"`
	Vol    float64   `json:"vol"`
	Bid    []float64 `json:"bid"`
	Ask    []float64 `json:"ask"`
}

// Symbol describes one tradeable pair and its precision rules.
type Symbol struct {
	BaseCurrency    string `json:"base-currency"`
	QuoteCurrency   string `json:"quote-currency"`
	PricePrecision  int    `json:"price-precision"`
	AmountPrecision int    `json:"amount-precision"`
	Symbol          string `json:"symbol"`
	State           string `json:"state"`
}

// MergedTicker returns the merged 24h ticker for a symbol. Public endpoint,
// no signature.
func (a *API) MergedTicker(ctx context.Context, symbol string) (*MergedTick, error) {
	body, err := a.client.Get(ctx, "/market/detail/merged", core.Params{"symbol": symbol})
	if err != nil {
		return nil, err
	}

	resp, err := decode[struct {
		Tick MergedTick `json:"tick"`
	}](body, "merged ticker")
	if err != nil {
		return nil, err
	}
	return &resp.Tick, nil
}

// Symbols returns the exchange's tradeable pairs. Public endpoint.
func (a *API) Symbols(ctx context.Context) ([]Symbol, error) {
	body, err := a.client.Get(ctx, "/v1/common/symbols", nil)
	if err != nil {
		return nil, err
	}

	resp, err := decode[struct {
		Data []Symbol `json:"data"`
	}](body, "symbols")
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}
