// Copyright 2025 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package identifier

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

const (
	IntentScheme = "libra"

	intentCurrencyParam = "c"
	intentAmountParam   = "am"
)

var ErrInvalidIntent = errors.New("invalid intent")

// Intent is a request for payment to an account. Currency and Amount are
// optional; a nil Amount leaves the amount to the payer
type Intent struct {
	Account  AccountIdentifier
	Currency string
	Amount   *uint64
}

// Encode returns the intent as a libra:// URI
func (i Intent) Encode() (string, error) {
	account, err := i.Account.Encode()
	if err != nil {
		return "", err
	}
	params := url.Values{}
	if i.Currency != "" {
		params.Set(intentCurrencyParam, i.Currency)
	}
	if i.Amount != nil {
		params.Set(intentAmountParam, strconv.FormatUint(*i.Amount, 10))
	}
	u := url.URL{
		Scheme:   IntentScheme,
		Host:     account,
		RawQuery: params.Encode(),
	}
	return u.String(), nil
}

// DecodeIntent parses a libra:// URI
func DecodeIntent(s string) (Intent, error) {
	u, err := url.Parse(s)
	if err != nil {
		return Intent{}, fmt.Errorf("%w: %w", ErrInvalidIntent, err)
	}
	if u.Scheme != IntentScheme {
		return Intent{}, fmt.Errorf("%w: unknown scheme %q", ErrInvalidIntent, u.Scheme)
	}
	if u.Path != "" && u.Path != "/" {
		return Intent{}, fmt.Errorf("%w: unexpected path %q", ErrInvalidIntent, u.Path)
	}
	account, err := Decode(u.Host)
	if err != nil {
		return Intent{}, fmt.Errorf("%w: %w", ErrInvalidIntent, err)
	}
	ret := Intent{Account: account}
	params := u.Query()
	ret.Currency = params.Get(intentCurrencyParam)
	if am := params.Get(intentAmountParam); am != "" {
		amount, err := strconv.ParseUint(am, 10, 64)
		if err != nil {
			return Intent{}, fmt.Errorf("%w: bad amount %q", ErrInvalidIntent, am)
		}
		ret.Amount = &amount
	}
	return ret, nil
}
