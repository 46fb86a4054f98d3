package transport

import (
	"context"
	"log"
	"sync"
	"sync/atomic"

	"github.com/vitalslab/vitals-cli/internal/models"
)

// Dispatcher copies snapshots from one source to multiple subscribers.
// When a subscriber's buffer is full, snapshots are dropped to prevent
// blocking the producer. Dropped snapshots are logged and counted.
type Dispatcher struct {
	source       <-chan models.Snapshot
	subscribers  []chan models.Snapshot
	bufferSize   int
	mu           sync.Mutex
	droppedTotal int64 // atomic counter for total dropped snapshots
}

func NewDispatcher(source <-chan models.Snapshot, bufferSize int) *Dispatcher {
	return &Dispatcher{
		source:      source,
		subscribers: make([]chan models.Snapshot, 0),
		bufferSize:  bufferSize,
	}
}

// Subscribe returns a channel that receives copies of all source
// snapshots. Subscribers should be added before calling Run() to ensure
// they receive everything.
func (d *Dispatcher) Subscribe() <-chan models.Snapshot {
	ch := make(chan models.Snapshot, d.bufferSize)
	d.mu.Lock()
	d.subscribers = append(d.subscribers, ch)
	d.mu.Unlock()
	return ch
}

// GetSubscriberCount returns the current number of active subscribers
func (d *Dispatcher) GetSubscriberCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.subscribers)
}

// GetDroppedCount returns the total number of snapshots dropped because a
// subscriber buffer was full. The counter is thread-safe.
func (d *Dispatcher) GetDroppedCount() int64 {
	return atomic.LoadInt64(&d.droppedTotal)
}

// Run blocks until ctx is cancelled or source closes
func (d *Dispatcher) Run(ctx context.Context) {
	defer d.closeSubscribers()

	for {
		select {
		case <-ctx.Done():
			return
		case snapshot, ok := <-d.source:
			if !ok {
				return
			}
			d.dispatch(snapshot, ctx)
		}
	}
}

func (d *Dispatcher) dispatch(snapshot models.Snapshot, ctx context.Context) {
	d.mu.Lock()
	subs := d.subscribers // Copy slice reference to minimize lock time
	d.mu.Unlock()

	dropped := 0
	for _, sub := range subs {
		select {
		case sub <- snapshot:
			// Successfully sent
		case <-ctx.Done():
			return
		default:
			// Buffer full - drop to avoid blocking the producer
			dropped++
			atomic.AddInt64(&d.droppedTotal, 1)
		}
	}

	if dropped > 0 {
		log.Printf("Dispatcher: dropped snapshot %s for %d subscriber(s) (buffer full)", snapshot.SnapshotID, dropped)
	}
}

func (d *Dispatcher) closeSubscribers() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, sub := range d.subscribers {
		close(sub)
	}
}
