package funds

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_Deposit(t *testing.T) {
	ledger := NewLedger()

	require.NoError(t, ledger.Deposit("0xalice", big.NewInt(100)))
	require.NoError(t, ledger.Deposit("0xalice", big.NewInt(50)))

	assert.Equal(t, int64(150), ledger.BalanceOf("0xalice").Int64())
	assert.Equal(t, int64(0), ledger.BalanceOf("0xbob").Int64())
}

func TestLedger_Deposit_InvalidAmount(t *testing.T) {
	ledger := NewLedger()

	assert.ErrorIs(t, ledger.Deposit("0xalice", nil), ErrInvalidAmount)
	assert.ErrorIs(t, ledger.Deposit("0xalice", big.NewInt(-1)), ErrInvalidAmount)
	assert.Equal(t, int64(0), ledger.BalanceOf("0xalice").Int64())
}

func TestLedger_BalanceOf_ReturnsCopy(t *testing.T) {
	ledger := NewLedger()

	require.NoError(t, ledger.Deposit("0xalice", big.NewInt(100)))

	balance := ledger.BalanceOf("0xalice")
	balance.SetInt64(0)

	assert.Equal(t, int64(100), ledger.BalanceOf("0xalice").Int64())
}

func TestLedger_Settle(t *testing.T) {
	ledger := NewLedger()

	require.NoError(t, ledger.Deposit("0xbuyer", big.NewInt(300)))

	err := ledger.Settle("0xbuyer", []Payment{
		{To: "0xseller", Amount: big.NewInt(200)},
		{To: "0xfees", Amount: big.NewInt(2)},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(98), ledger.BalanceOf("0xbuyer").Int64())
	assert.Equal(t, int64(200), ledger.BalanceOf("0xseller").Int64())
	assert.Equal(t, int64(2), ledger.BalanceOf("0xfees").Int64())
}

func TestLedger_Settle_InsufficientFunds(t *testing.T) {
	ledger := NewLedger()

	require.NoError(t, ledger.Deposit("0xbuyer", big.NewInt(100)))
	require.NoError(t, ledger.Deposit("0xseller", big.NewInt(5)))

	err := ledger.Settle("0xbuyer", []Payment{
		{To: "0xseller", Amount: big.NewInt(99)},
		{To: "0xfees", Amount: big.NewInt(2)},
	})
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	// Nothing moved
	assert.Equal(t, int64(100), ledger.BalanceOf("0xbuyer").Int64())
	assert.Equal(t, int64(5), ledger.BalanceOf("0xseller").Int64())
	assert.Equal(t, int64(0), ledger.BalanceOf("0xfees").Int64())
}

func TestLedger_Settle_UnknownAccount(t *testing.T) {
	ledger := NewLedger()

	err := ledger.Settle("0xnobody", []Payment{
		{To: "0xseller", Amount: big.NewInt(1)},
	})
	assert.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestLedger_Settle_InvalidPayment(t *testing.T) {
	ledger := NewLedger()

	require.NoError(t, ledger.Deposit("0xbuyer", big.NewInt(100)))

	err := ledger.Settle("0xbuyer", []Payment{
		{To: "0xseller", Amount: big.NewInt(-10)},
	})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	err = ledger.Settle("0xbuyer", []Payment{
		{To: "0xseller", Amount: nil},
	})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	assert.Equal(t, int64(100), ledger.BalanceOf("0xbuyer").Int64())
}

func TestLedger_Settle_SelfPayment(t *testing.T) {
	ledger := NewLedger()

	require.NoError(t, ledger.Deposit("0xalice", big.NewInt(100)))

	err := ledger.Settle("0xalice", []Payment{
		{To: "0xalice", Amount: big.NewInt(40)},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(100), ledger.BalanceOf("0xalice").Int64())
}
