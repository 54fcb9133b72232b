package client

import (
	"context"
	"sync"
	"time"
)

// DebounceDelay is how long PagedSearch waits after the last keystroke
// before fetching.
const DebounceDelay = 300 * time.Millisecond

// Query is the list-request state of a paginated table.
type Query struct {
	Search   string
	Page     int
	PageSize int
}

// Page is one fetched page of results.
type Page[T any] struct {
	Total int64
	Items []T
}

// FetchFunc loads one page for a query.
type FetchFunc[T any] func(ctx context.Context, q Query) (*Page[T], error)

// PagedSearch drives a searchable, paginated table: search input is
// debounced, search or page-size changes reset to page 1, and a response that
// was superseded by a newer query never overwrites fresher results.
type PagedSearch[T any] struct {
	fetch    FetchFunc[T]
	debounce time.Duration

	mu      sync.Mutex
	query   Query
	gen     uint64
	timer   *time.Timer
	page    *Page[T]
	err     error
	loading bool

	// OnUpdate, when set, runs after each completed fetch.
	OnUpdate func()
}

func NewPagedSearch[T any](fetch FetchFunc[T], pageSize int) *PagedSearch[T] {
	return &PagedSearch[T]{
		fetch:    fetch,
		debounce: DebounceDelay,
		query:    Query{Page: 1, PageSize: pageSize},
	}
}

// SetSearch updates the search term, resets to page 1 and schedules a
// debounced fetch. Rapid successive calls collapse into one request.
func (p *PagedSearch[T]) SetSearch(search string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.query.Search = search
	p.query.Page = 1
	p.gen++

	if p.timer != nil {
		p.timer.Stop()
	}
	gen := p.gen
	p.timer = time.AfterFunc(p.debounce, func() { p.run(gen) })
}

// SetPage fetches the given page immediately.
func (p *PagedSearch[T]) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	p.mu.Lock()
	p.query.Page = page
	p.gen++
	gen := p.gen
	p.mu.Unlock()
	go p.run(gen)
}

// SetPageSize changes the window size and resets to page 1.
func (p *PagedSearch[T]) SetPageSize(size int) {
	p.mu.Lock()
	p.query.PageSize = size
	p.query.Page = 1
	p.gen++
	gen := p.gen
	p.mu.Unlock()
	go p.run(gen)
}

// Refresh re-fetches the current query.
func (p *PagedSearch[T]) Refresh() {
	p.mu.Lock()
	p.gen++
	gen := p.gen
	p.mu.Unlock()
	go p.run(gen)
}

// Current returns the query and the latest completed page.
func (p *PagedSearch[T]) Current() (Query, *Page[T], error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.query, p.page, p.err
}

func (p *PagedSearch[T]) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

// run executes the fetch for a generation; results from an outdated
// generation are dropped instead of clobbering newer ones.
func (p *PagedSearch[T]) run(gen uint64) {
	p.mu.Lock()
	if gen != p.gen {
		p.mu.Unlock()
		return
	}
	q := p.query
	p.loading = true
	p.mu.Unlock()

	page, err := p.fetch(context.Background(), q)

	p.mu.Lock()
	if gen != p.gen {
		p.mu.Unlock()
		return
	}
	p.page, p.err = page, err
	p.loading = false
	onUpdate := p.OnUpdate
	p.mu.Unlock()

	if onUpdate != nil {
		onUpdate()
	}
}
