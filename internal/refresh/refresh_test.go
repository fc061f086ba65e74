package refresh

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"joiefull/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// stubCatalogueService counts reconciliation passes.
type stubCatalogueService struct {
	calls atomic.Int64
	err   error
}

func (s *stubCatalogueService) GetProducts(ctx context.Context) ([]model.Product, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return []model.Product{{ID: 1, Name: "Shirt"}}, nil
}

func (s *stubCatalogueService) GetProduct(ctx context.Context, id int) (*model.Product, error) {
	return nil, model.ErrProductNotFound
}

func (s *stubCatalogueService) ToggleFavorite(ctx context.Context, id int) (*model.ProductLocalInfo, error) {
	return nil, errors.New("not implemented")
}

func TestRun_RefreshesImmediatelyAndOnTick(t *testing.T) {
	logger := zerolog.Nop()
	svc := &stubCatalogueService{}

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		Run(ctx, svc, Config{Interval: 10 * time.Millisecond}, logger)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return svc.calls.Load() >= 3
	}, 2*time.Second, 5*time.Millisecond)

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("refresher did not stop after context cancellation")
	}
}

func TestRun_KeepsTickingAfterFailedPass(t *testing.T) {
	logger := zerolog.Nop()
	svc := &stubCatalogueService{err: errors.New("remote unavailable")}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go Run(ctx, svc, Config{Interval: 10 * time.Millisecond}, logger)

	assert.Eventually(t, func() bool {
		return svc.calls.Load() >= 2
	}, 2*time.Second, 5*time.Millisecond)
}
