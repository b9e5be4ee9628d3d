package operator

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/operator/actions"
	"github.com/ecks6/ContaAI2/internal/storage"
)

// OperatorDelegator manages the queues, starts/stops Operators (workers), and
// enqueues items. Each worker owns one queue, and an action is routed by a
// hash of its company id, so writes for the same company always land on the
// same worker and execute in submission order.
type OperatorDelegator struct {
	storage  *storage.Storage
	queues   []chan ActionItem
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func NewOperatorDelegator(s *storage.Storage, numWorkers int) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	queues := make([]chan ActionItem, numWorkers)
	for i := range queues {
		queues[i] = make(chan ActionItem, 1000)
	}
	return &OperatorDelegator{
		storage: s,
		queues:  queues,
	}
}

func (d *OperatorDelegator) Start() {
	for _, queue := range d.queues {
		d.wg.Add(1)
		op := NewOperator(d.storage, queue)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		for _, queue := range d.queues {
			close(queue)
		}
		d.wg.Wait()
	})
}

func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	d.queueFor(action.CompanyID()) <- item

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *OperatorDelegator) queueFor(companyID uuid.UUID) chan ActionItem {
	h := fnv.New32a()
	_, _ = h.Write(companyID.Bytes())
	return d.queues[int(h.Sum32())%len(d.queues)]
}
