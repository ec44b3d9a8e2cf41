package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"mesa-promote/internal/core/domain"
)

// CampaignStore is an in-process port.CampaignStore. Values are copied in and
// out so callers never share state with the store.
type CampaignStore struct {
	mu sync.RWMutex

	nextID         int64
	campaigns      map[int64]domain.Campaign
	weights        []domain.ScheduledWeight
	links          map[int64]domain.Link
	audiences      map[string]domain.Audience
	accounts       map[int64]domain.Account
	transactions   map[[3]int64]domain.Transaction
	underdelivered map[int64]bool
	logs           map[int64][]string
}

// NewCampaignStore returns an empty store.
func NewCampaignStore() *CampaignStore {
	return &CampaignStore{
		campaigns:      make(map[int64]domain.Campaign),
		links:          make(map[int64]domain.Link),
		audiences:      make(map[string]domain.Audience),
		accounts:       make(map[int64]domain.Account),
		transactions:   make(map[[3]int64]domain.Transaction),
		underdelivered: make(map[int64]bool),
		logs:           make(map[int64][]string),
	}
}

func copyCampaign(c domain.Campaign) domain.Campaign {
	if c.RefundAmount != nil {
		refund := *c.RefundAmount
		c.RefundAmount = &refund
	}
	return c
}

// PutCampaign stores a campaign as is, keeping its id.
func (s *CampaignStore) PutCampaign(c domain.Campaign) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.campaigns[c.ID] = copyCampaign(c)
	if c.ID > s.nextID {
		s.nextID = c.ID
	}
}

// PutLink stores a link.
func (s *CampaignStore) PutLink(l domain.Link) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.links[l.ID] = l
}

// PutAudience stores an audience.
func (s *CampaignStore) PutAudience(a domain.Audience) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audiences[a.Name] = a
}

// PutAccount stores an account.
func (s *CampaignStore) PutAccount(a domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[a.ID] = a
}

// PutTransaction stores a gateway transaction record.
func (s *CampaignStore) PutTransaction(t domain.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions[[3]int64{t.LinkID, t.CampaignID, t.ID}] = t
}

// Logs returns the promotion log of a link.
func (s *CampaignStore) Logs(linkID int64) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.logs[linkID]...)
}

// IsUnderdelivered reports whether a campaign is flagged for follow-up.
func (s *CampaignStore) IsUnderdelivered(campaignID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.underdelivered[campaignID]
}

func (s *CampaignStore) Campaign(_ context.Context, id int64) (*domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.campaigns[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c = copyCampaign(c)
	return &c, nil
}

func (s *CampaignStore) CampaignsByLink(_ context.Context, linkID int64) ([]domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Campaign
	for _, c := range s.campaigns {
		if c.LinkID == linkID {
			out = append(out, copyCampaign(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *CampaignStore) CampaignsEndingOn(_ context.Context, day time.Time) ([]domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Campaign
	for _, c := range s.campaigns {
		if c.EndDate.Equal(day) && c.TransactionID > 0 {
			out = append(out, copyCampaign(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *CampaignStore) CreateCampaign(_ context.Context, c *domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	c.ID = s.nextID
	s.campaigns[c.ID] = copyCampaign(*c)
	return nil
}

func (s *CampaignStore) UpdateCampaign(_ context.Context, c *domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.campaigns[c.ID]; !ok {
		return domain.ErrNotFound
	}
	s.campaigns[c.ID] = copyCampaign(*c)
	return nil
}

func (s *CampaignStore) DeleteCampaign(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.campaigns, id)
	return nil
}

func (s *CampaignStore) WeightsOverlapping(_ context.Context, from, to time.Time) ([]domain.ScheduledWeight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.ScheduledWeight
	for _, w := range s.weights {
		if !w.StartDate.After(to) && !w.EndDate.Before(from) {
			out = append(out, w)
		}
	}
	return out, nil
}

func (s *CampaignStore) AddWeight(_ context.Context, w domain.ScheduledWeight) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.weights = append(s.weights, w)
	return nil
}

func (s *CampaignStore) Reschedule(_ context.Context, w domain.ScheduledWeight) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.weights[:0]
	for _, old := range s.weights {
		if old.CampaignID != w.CampaignID {
			kept = append(kept, old)
		}
	}
	s.weights = append(kept, w)
	return nil
}

func (s *CampaignStore) DeleteUnfinishedWeights(_ context.Context, campaignID int64, today time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.weights[:0]
	for _, w := range s.weights {
		if w.CampaignID == campaignID && !w.EndDate.Before(today) {
			continue
		}
		kept = append(kept, w)
	}
	s.weights = kept
	return nil
}

func (s *CampaignStore) Link(_ context.Context, id int64) (*domain.Link, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.links[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &l, nil
}

func (s *CampaignStore) Links(_ context.Context, ids []int64) (map[int64]*domain.Link, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[int64]*domain.Link, len(ids))
	for _, id := range ids {
		if l, ok := s.links[id]; ok {
			out[id] = &l
		}
	}
	return out, nil
}

func (s *CampaignStore) UpdateLink(_ context.Context, l *domain.Link) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.links[l.ID]; !ok {
		return domain.ErrNotFound
	}
	s.links[l.ID] = *l
	return nil
}

func (s *CampaignStore) Audiences(_ context.Context, names []string) (map[string]domain.Audience, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]domain.Audience, len(names))
	for _, name := range names {
		if a, ok := s.audiences[name]; ok {
			out[name] = a
		}
	}
	return out, nil
}

func (s *CampaignStore) Account(_ context.Context, id int64) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &a, nil
}

func (s *CampaignStore) Transaction(_ context.Context, linkID, campaignID, transactionID int64) (*domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.transactions[[3]int64{linkID, campaignID, transactionID}]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (s *CampaignStore) MarkUnderdelivered(_ context.Context, campaignIDs []int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range campaignIDs {
		s.underdelivered[id] = true
	}
	return nil
}

func (s *CampaignStore) UnmarkUnderdelivered(_ context.Context, campaignID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.underdelivered, campaignID)
	return nil
}

func (s *CampaignStore) AddLog(_ context.Context, linkID int64, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs[linkID] = append(s.logs[linkID], text)
	return nil
}
