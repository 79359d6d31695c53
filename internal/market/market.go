package market

import (
	"errors"
	"math/big"
	"sync"

	"github.com/mintbay/nft-marketplace/internal/entity"
	"github.com/mintbay/nft-marketplace/internal/event"
	"github.com/mintbay/nft-marketplace/internal/funds"
	"go.uber.org/zap"
)

var (
	ErrListingNotFound     = errors.New("listing doesn't exist")
	ErrInvalidPrice        = errors.New("price must be greater than zero")
	ErrAlreadySold         = errors.New("listing already sold")
	ErrInsufficientPayment = errors.New("insufficient payment")
)

// TokenRegistry is the custody capability the marketplace needs from a token
// contract. The marketplace never touches registry internals; it only moves
// tokens through this interface.
type TokenRegistry interface {
	Address() string
	OwnerOf(tokenId uint64) (string, error)
	TransferFrom(operator, from, to string, tokenId uint64) error
}

// Market is the listing ledger. It takes custody of a token when a listing
// is created and releases it to the buyer on sale, so a purchase is a single
// state transition. The fee account and fee percent are fixed at
// construction.
//
// Every mutating operation runs to completion under the market lock: all
// precondition checks happen before any state change, and a failed
// precondition leaves every entity untouched.
type Market struct {
	mu sync.Mutex

	address    string
	feeAccount string
	feePercent uint64

	listings     map[uint64]*entity.Listing
	listingCount uint64
	registries   map[string]TokenRegistry

	funds  *funds.Ledger
	events *event.Manager
}

func New(address, feeAccount string, feePercent uint64, ledger *funds.Ledger, events *event.Manager) *Market {
	return &Market{
		address:    address,
		feeAccount: feeAccount,
		feePercent: feePercent,
		listings:   make(map[uint64]*entity.Listing),
		registries: make(map[string]TokenRegistry),
		funds:      ledger,
		events:     events,
	}
}

func (m *Market) Address() string {
	return m.address
}

func (m *Market) FeeAccount() string {
	return m.feeAccount
}

func (m *Market) FeePercent() uint64 {
	return m.feePercent
}

// CreateListing takes custody of the token and records it for sale. The
// listing only exists once the custody transfer has succeeded; if the seller
// does not own the token, or has not approved the market as operator, the
// transfer fails and nothing is recorded.
func (m *Market) CreateListing(seller string, tokens TokenRegistry, tokenId uint64, price *big.Int) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if price == nil || price.Sign() <= 0 {
		return 0, ErrInvalidPrice
	}

	if err := tokens.TransferFrom(m.address, seller, m.address, tokenId); err != nil {
		return 0, err
	}

	m.listingCount++
	listingId := m.listingCount

	m.listings[listingId] = &entity.Listing{
		ListingId: listingId,
		Contract:  tokens.Address(),
		TokenId:   tokenId,
		Seller:    seller,
		Price:     new(big.Int).Set(price),
		IsSold:    false,
	}
	m.registries[tokens.Address()] = tokens

	m.events.Emit(event.ListingOfferedEvent, event.ListingOffered{
		ListingId: listingId,
		Contract:  tokens.Address(),
		TokenId:   tokenId,
		Price:     new(big.Int).Set(price),
		Seller:    seller,
	})

	return listingId, nil
}

// GetTotalPrice returns price + floor(price * feePercent / 100), the amount
// a buyer must tender. The fee is computed on the stored price.
func (m *Market) GetTotalPrice(listingId uint64) (*big.Int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	listing, ok := m.listings[listingId]
	if !ok {
		return nil, ErrListingNotFound
	}

	return m.totalPrice(listing), nil
}

// PurchaseListing completes a sale: the price goes to the seller, the fee to
// the fee account and the token to the buyer, and the listing flips to sold.
// The tendered amount is an authorized maximum; exactly the total price is
// debited from the buyer.
func (m *Market) PurchaseListing(buyer string, listingId uint64, tendered *big.Int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	listing, ok := m.listings[listingId]
	if !ok {
		return ErrListingNotFound
	}

	if listing.IsSold {
		return ErrAlreadySold
	}

	total := m.totalPrice(listing)
	if tendered == nil || tendered.Cmp(total) < 0 {
		return ErrInsufficientPayment
	}

	fee := new(big.Int).Sub(total, listing.Price)

	payments := []funds.Payment{
		{To: listing.Seller, Amount: listing.Price},
		{To: m.feeAccount, Amount: fee},
	}
	if err := m.funds.Settle(buyer, payments); err != nil {
		return err
	}

	tokens := m.registries[listing.Contract]
	if err := tokens.TransferFrom(m.address, m.address, buyer, listing.TokenId); err != nil {
		// The market holds custody, so this only fails if the registry has
		// been mutated behind our back. Restore the payments before
		// surfacing the error.
		m.restorePayment(listing.Seller, buyer, listing.Price, listing.ListingId)
		m.restorePayment(m.feeAccount, buyer, fee, listing.ListingId)
		return err
	}

	listing.IsSold = true

	m.events.Emit(event.ListingBoughtEvent, event.ListingBought{
		ListingId: listing.ListingId,
		Contract:  listing.Contract,
		TokenId:   listing.TokenId,
		Price:     new(big.Int).Set(listing.Price),
		Seller:    listing.Seller,
		Buyer:     buyer,
	})

	return nil
}

// Listing returns a copy of the listing record.
func (m *Market) Listing(listingId uint64) (entity.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	listing, ok := m.listings[listingId]
	if !ok {
		return entity.Listing{}, ErrListingNotFound
	}

	copied := *listing
	copied.Price = new(big.Int).Set(listing.Price)

	return copied, nil
}

func (m *Market) ListingCount() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.listingCount
}

func (m *Market) restorePayment(from, to string, amount *big.Int, listingId uint64) {
	if err := m.funds.Settle(from, []funds.Payment{{To: to, Amount: amount}}); err != nil {
		zap.L().With(
			zap.Error(err),
			zap.Uint64("listingId", listingId),
			zap.String("from", from),
			zap.String("to", to),
			zap.String("amount", amount.String()),
		).Error("Failed to restore payment")
	}
}

func (m *Market) totalPrice(listing *entity.Listing) *big.Int {
	total := new(big.Int).SetUint64(100 + m.feePercent)
	total.Mul(total, listing.Price)

	return total.Div(total, big.NewInt(100))
}
