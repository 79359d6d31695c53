package funds

import (
	"errors"
	"math/big"
	"sync"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("invalid amount")
)

// Payment is a single output of a settlement.
type Payment struct {
	To     string
	Amount *big.Int
}

// Ledger is the base-currency account book. Amounts are denominated in the
// smallest indivisible unit.
type Ledger struct {
	mu       sync.Mutex
	balances map[string]*big.Int
}

func NewLedger() *Ledger {
	return &Ledger{balances: make(map[string]*big.Int)}
}

func (l *Ledger) Deposit(addr string, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return ErrInvalidAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.credit(addr, amount)

	return nil
}

func (l *Ledger) BalanceOf(addr string) *big.Int {
	l.mu.Lock()
	defer l.mu.Unlock()

	if balance, ok := l.balances[addr]; ok {
		return new(big.Int).Set(balance)
	}

	return new(big.Int)
}

// Settle debits `from` with the sum of all payments and credits each payee.
// The whole settlement happens under the ledger lock; on failure no balance
// changes.
func (l *Ledger) Settle(from string, payments []Payment) error {
	total := new(big.Int)
	for _, p := range payments {
		if p.Amount == nil || p.Amount.Sign() < 0 {
			return ErrInvalidAmount
		}
		total.Add(total, p.Amount)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	balance, ok := l.balances[from]
	if !ok || balance.Cmp(total) < 0 {
		return ErrInsufficientFunds
	}

	balance.Sub(balance, total)
	for _, p := range payments {
		l.credit(p.To, p.Amount)
	}

	return nil
}

func (l *Ledger) credit(addr string, amount *big.Int) {
	if balance, ok := l.balances[addr]; ok {
		balance.Add(balance, amount)
		return
	}

	l.balances[addr] = new(big.Int).Set(amount)
}
