package api

import (
	"context"
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"huobi/pkg/core"
)

// Account represents a trading account owned by the API key.
type Account struct {
	ID      int64  `json:"id"`
	Type    string `json:"type"`
	Subtype string `json:"subtype"`
	State   string `json:"state"`
}

// Balance is a single currency position inside an account.
type Balance struct {
	Currency string      `json:"currency"`
	Type     string      `json:"type"`
	Balance  apd.Decimal `json:"balance"`
}

// AccountBalance is the full balance sheet of one account.
type AccountBalance struct {
	ID    int64     `json:"id"`
	Type  string    `json:"type"`
	State string    `json:"state"`
	List  []Balance `json:"list"`
}

// Accounts returns all accounts available to the credentials.
func (a *API) Accounts(ctx context.Context) ([]Account, error) {
	body, err := a.client.GetSigned(ctx, "/v1/account/accounts", nil)
	if err != nil {
		return nil, err
	}

	resp, err := decode[struct {
		Data []Account `json:"data"`
	}](body, "accounts")
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Balances returns the balance list of the given account.
func (a *API) Balances(ctx context.Context, accountID int64) (*AccountBalance, error) {
	endpoint := fmt.Sprintf("/v1/account/accounts/%d/balance", accountID)

	body, err := a.client.GetSigned(ctx, endpoint, core.Params{})
	if err != nil {
		return nil, err
	}

	resp, err := decode[struct {
		Data AccountBalance `json:"data"`
	}](body, "account balance")
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
