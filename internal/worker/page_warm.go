package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/yusuf-wknd/devanshi-culture-shop/internal/domain"
	"github.com/yusuf-wknd/devanshi-culture-shop/internal/queue"
	"github.com/yusuf-wknd/devanshi-culture-shop/internal/service"
)

// PageWarmWorker refills the page cache after a purge: it consumes warm
// messages and re-renders each path. Bursts for the same path (several
// webhook deliveries editing one document) are debounced so each page is
// rendered once per quiet period.
type PageWarmWorker struct {
	pages    *service.PageService
	broker   queue.Broker
	logger   *zap.SugaredLogger
	debounce *Debouncer
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewPageWarmWorker(
	pages *service.PageService,
	broker queue.Broker,
	quietPeriod time.Duration,
	logger *zap.SugaredLogger,
) *PageWarmWorker {
	ctx, cancel := context.WithCancel(context.Background())

	w := &PageWarmWorker{
		pages:  pages,
		broker: broker,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
	w.debounce = NewDebouncer(quietPeriod, w.warm)

	return w
}

func (w *PageWarmWorker) Start() error {
	w.logger.Info("starting page warm worker")

	return w.broker.Subscribe(w.ctx, queue.QueuePageWarm, w.handleMessage)
}

func (w *PageWarmWorker) Stop() {
	w.logger.Info("stopping page warm worker")
	w.debounce.Stop()
	w.cancel()
}

func (w *PageWarmWorker) handleMessage(_ context.Context, message []byte) error {
	var msg domain.PageWarmMessage
	if err := json.Unmarshal(message, &msg); err != nil {
		w.logger.Errorw("failed to unmarshal warm message", "error", err)
		return fmt.Errorf("failed to unmarshal warm message: %w", err)
	}

	w.logger.Infow("queueing page warms", "delivery_id", msg.DeliveryID, "paths", len(msg.Paths))

	for _, path := range msg.Paths {
		w.debounce.Trigger(path)
	}

	return nil
}

func (w *PageWarmWorker) warm(path string) {
	ctx, cancel := context.WithTimeout(w.ctx, 30*time.Second)
	defer cancel()

	if err := w.pages.Warm(ctx, path); err != nil {
		w.logger.Errorw("page warm failed", "path", path, "error", err)
		return
	}

	w.logger.Infow("page warmed", "path", path)
}
