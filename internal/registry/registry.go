package registry

import (
	"errors"
	"sync"

	"github.com/mintbay/nft-marketplace/internal/entity"
	"github.com/mintbay/nft-marketplace/internal/event"
)

var (
	ErrTokenNotFound = errors.New("token not found")
	ErrUnauthorized  = errors.New("unauthorized")
)

// Registry tracks the tokens of a single collection: sequential ids, owners,
// metadata uris and operator approvals. It is the sole mutator of token
// ownership; every operation runs to completion under the registry lock.
type Registry struct {
	mu sync.Mutex

	address string
	name    string
	symbol  string

	tokens     map[uint64]*entity.Token
	balances   map[string]uint64
	operators  map[string]map[string]bool
	tokenCount uint64

	events *event.Manager
}

func New(address, name, symbol string, events *event.Manager) *Registry {
	return &Registry{
		address:   address,
		name:      name,
		symbol:    symbol,
		tokens:    make(map[uint64]*entity.Token),
		balances:  make(map[string]uint64),
		operators: make(map[string]map[string]bool),
		events:    events,
	}
}

func (r *Registry) Address() string {
	return r.address
}

func (r *Registry) Name() string {
	return r.name
}

func (r *Registry) Symbol() string {
	return r.symbol
}

// Mint allocates the next sequential token id (starting at 1), assigns the
// caller as owner and stores the uri verbatim. Listeners are invoked before
// the lock is released so mint notifications observe the same order as id
// allocation; they must not call back into the registry.
func (r *Registry) Mint(caller, uri string) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tokenCount++
	tokenId := r.tokenCount
	r.tokens[tokenId] = &entity.Token{
		Contract: r.address,
		TokenId:  tokenId,
		Owner:    caller,
		Uri:      uri,
	}
	r.balances[caller]++

	r.events.Emit(event.TokenMintedEvent, event.TokenMinted{
		Contract: r.address,
		TokenId:  tokenId,
		Owner:    caller,
		Uri:      uri,
	})

	return tokenId
}

func (r *Registry) OwnerOf(tokenId uint64) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, ok := r.tokens[tokenId]
	if !ok {
		return "", ErrTokenNotFound
	}

	return token.Owner, nil
}

func (r *Registry) TokenURI(tokenId uint64) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, ok := r.tokens[tokenId]
	if !ok {
		return "", ErrTokenNotFound
	}

	return token.Uri, nil
}

func (r *Registry) BalanceOf(addr string) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.balances[addr]
}

func (r *Registry) TokenCount() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.tokenCount
}

// SetApprovalForAll grants or revokes blanket transfer authority over all of
// the caller's tokens.
func (r *Registry) SetApprovalForAll(caller, operator string, approved bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.operators[caller] == nil {
		r.operators[caller] = make(map[string]bool)
	}
	r.operators[caller][operator] = approved
}

func (r *Registry) IsApprovedForAll(owner, operator string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.operators[owner][operator]
}

// TransferFrom reassigns ownership of a token. The operator must be the
// current owner or an operator the owner has approved, and `from` must be
// the current owner.
func (r *Registry) TransferFrom(operator, from, to string, tokenId uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, ok := r.tokens[tokenId]
	if !ok {
		return ErrTokenNotFound
	}

	if token.Owner != from {
		return ErrUnauthorized
	}

	if operator != token.Owner && !r.operators[token.Owner][operator] {
		return ErrUnauthorized
	}

	token.Owner = to
	r.balances[from]--
	r.balances[to]++

	return nil
}
