package client

import (
	"context"
	"errors"
	"sync"

	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/core"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/models"
)

// ErrSuperseded is returned by Load when a newer Load started before this one finished;
// its response is dropped.
var ErrSuperseded = errors.New("listing: superseded by a newer request")

// UsersFetcher is satisfied by *Client.
type UsersFetcher interface {
	FetchUsers(ctx context.Context, q core.QueryState) (*models.UserListResponse, error)
}

// View is a consistent snapshot of the listing for rendering.
type View struct {
	State      core.QueryState
	Users      []models.UserListItem
	Pagination models.PaginationMeta
	Loading    bool
	Err        error // last failure; the records shown are the last good ones
}

// Listing owns the admin listing display state. Each applied response replaces the
// record set; responses of superseded requests are discarded.
type Listing struct {
	mu      sync.Mutex
	fetcher UsersFetcher
	seq     uint64
	view    View
}

func NewListing(f UsersFetcher) *Listing {
	return &Listing{fetcher: f, view: View{State: core.DefaultQueryState()}}
}

// Load fetches q and applies the result if no newer Load was issued meanwhile.
func (l *Listing) Load(ctx context.Context, q core.QueryState) error {
	l.mu.Lock()
	l.seq++
	seq := l.seq
	l.view.Loading = true
	l.mu.Unlock()

	resp, err := l.fetcher.FetchUsers(ctx, q)

	l.mu.Lock()
	defer l.mu.Unlock()
	if seq != l.seq {
		return ErrSuperseded
	}
	l.view.Loading = false
	if err != nil {
		l.view.Err = err
		return err
	}
	l.view = View{State: q, Users: resp.Users, Pagination: resp.Pagination}
	return nil
}

// View returns the current snapshot.
func (l *Listing) View() View {
	l.mu.Lock()
	defer l.mu.Unlock()
	v := l.view
	v.Users = append([]models.UserListItem(nil), l.view.Users...)
	return v
}

// Err reports the last fetch failure, nil after a successful fetch.
func (l *Listing) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.view.Err
}
