package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/anyulbade/creator-fee-engine/internal/model"
)

type fakeStore struct {
	mu    sync.Mutex
	snaps []*model.FeeSnapshot
	err   error
}

func (f *fakeStore) Insert(_ context.Context, s *model.FeeSnapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.snaps {
		if existing.PaymentID == s.PaymentID {
			return errors.New("duplicate payment_id")
		}
	}
	s.ID = "snap-" + s.PaymentID
	s.CreatedAt = time.Now()
	cp := *s
	f.snaps = append(f.snaps, &cp)
	return nil
}

func (f *fakeStore) FindByPaymentID(_ context.Context, paymentID string) (*model.FeeSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.snaps {
		if s.PaymentID == paymentID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeStore) List(_ context.Context, limit, offset int) ([]*model.FeeSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if offset >= len(f.snaps) {
		return nil, nil
	}
	end := min(offset+limit, len(f.snaps))
	return f.snaps[offset:end], nil
}

func (f *fakeStore) Count(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.snaps), f.err
}

func (f *fakeStore) TotalsByCurrency(context.Context) ([]model.CurrencyTotals, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	byCur := map[string]*model.CurrencyTotals{}
	for _, s := range f.snaps {
		t, ok := byCur[s.Currency]
		if !ok {
			t = &model.CurrencyTotals{Currency: s.Currency}
			byCur[s.Currency] = t
		}
		t.Count++
		t.BaseCents += s.BaseCents
		t.GrossCents += s.GrossCents
		t.FeeCents += s.FeeCents
	}
	out := make([]model.CurrencyTotals, 0, len(byCur))
	for _, t := range byCur {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Currency < out[j].Currency })
	return out, nil
}
