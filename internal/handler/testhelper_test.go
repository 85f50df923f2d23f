package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/anyulbade/creator-fee-engine/internal/middleware"
	"github.com/anyulbade/creator-fee-engine/internal/model"
	"github.com/anyulbade/creator-fee-engine/internal/pricing"
	"github.com/anyulbade/creator-fee-engine/internal/service"
)

const testAdminSecret = "handler-test-secret"

type memStore struct {
	mu    sync.Mutex
	snaps []*model.FeeSnapshot
}

func (m *memStore) Insert(_ context.Context, s *model.FeeSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.snaps {
		if existing.PaymentID == s.PaymentID {
			return &pgconn.PgError{Code: "23505", Detail: "Key (payment_id)=(" + s.PaymentID + ") already exists."}
		}
	}
	s.ID = "snap-" + s.PaymentID
	s.CreatedAt = time.Now().UTC()
	cp := *s
	m.snaps = append(m.snaps, &cp)
	return nil
}

func (m *memStore) FindByPaymentID(_ context.Context, paymentID string) (*model.FeeSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.snaps {
		if s.PaymentID == paymentID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memStore) List(_ context.Context, limit, offset int) ([]*model.FeeSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if offset >= len(m.snaps) {
		return nil, nil
	}
	return m.snaps[offset:min(offset+limit, len(m.snaps))], nil
}

func (m *memStore) Count(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.snaps), nil
}

func (m *memStore) TotalsByCurrency(context.Context) ([]model.CurrencyTotals, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.CurrencyTotals
	for _, s := range m.snaps {
		found := false
		for i := range out {
			if out[i].Currency == s.Currency {
				out[i].Count++
				out[i].BaseCents += s.BaseCents
				out[i].GrossCents += s.GrossCents
				out[i].FeeCents += s.FeeCents
				found = true
			}
		}
		if !found {
			out = append(out, model.CurrencyTotals{
				Currency: s.Currency, Count: 1,
				BaseCents: s.BaseCents, GrossCents: s.GrossCents, FeeCents: s.FeeCents,
			})
		}
	}
	return out, nil
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

func newTestRouter(t *testing.T, store service.SnapshotStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rt, err := pricing.NewRateTable(pricing.DefaultRateConfig())
	require.NoError(t, err)
	engine := pricing.NewEngine(rt)

	return NewRouter(Handlers{
		Health:      NewHealthHandler(fakePinger{}),
		Config:      NewConfigHandler(rt),
		Quote:       NewQuoteHandler(service.NewQuoteService(engine)),
		Country:     NewCountryHandler(engine),
		FeeSnapshot: NewFeeSnapshotHandler(service.NewSnapshotService(engine, store)),
		Admin: NewAdminHandler(
			service.NewProfitabilityService(engine),
			service.NewReconciliationService(engine, store),
		),
	}, testAdminSecret)
}

func adminToken(t *testing.T, isAdmin bool) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.AdminClaims{
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "ops",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testAdminSecret))
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

var errPingFailed = errors.New("connection refused")
