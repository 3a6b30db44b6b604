package ingest

import (
	"context"
	"sync"

	"github.com/qx-labs/deepcite/internal/model"
)

// Registrar is the write surface batch ingest needs from the ledger.
type Registrar interface {
	AddSource(model.SourceInput) int
}

// Registration is the outcome of one batch item. Results keep input order;
// Err is set only when the context was cancelled before the item was
// registered (registration itself cannot fail).
type Registration struct {
	Index      int
	URL        string
	CitationID int
	Err        error
}

// Batch registers discovered sources concurrently. The ledger serializes
// writes internally; the pool exists so a large discovery batch overlaps
// scoring work and optional per-host pacing.
type Batch struct {
	registrar Registrar
	workers   int
	limiter   *hostLimiter
}

// NewBatch creates a batch registrar. Zero or negative concurrency falls
// back to a single worker; a zero rate disables pacing.
func NewBatch(registrar Registrar, cfg model.IngestConfig) *Batch {
	workers := cfg.Concurrency
	if workers <= 0 {
		workers = 1
	}
	b := &Batch{
		registrar: registrar,
		workers:   workers,
	}
	if cfg.RequestsPerSecond > 0 {
		b.limiter = newHostLimiter(cfg.RequestsPerSecond, cfg.Burst)
	}
	return b
}

// Register registers every input and returns one Registration per input,
// in input order.
func (b *Batch) Register(ctx context.Context, inputs []model.SourceInput) []Registration {
	results := make([]Registration, len(inputs))
	if len(inputs) == 0 {
		return results
	}

	jobs := make(chan int, len(inputs))
	for i := range inputs {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	for w := 0; w < b.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = b.registerOne(ctx, i, inputs[i])
			}
		}()
	}
	wg.Wait()

	return results
}

func (b *Batch) registerOne(ctx context.Context, index int, in model.SourceInput) Registration {
	reg := Registration{Index: index, URL: in.URL}

	if b.limiter != nil {
		if err := b.limiter.wait(ctx, in.URL); err != nil {
			reg.Err = err
			return reg
		}
	} else if err := ctx.Err(); err != nil {
		reg.Err = err
		return reg
	}

	reg.CitationID = b.registrar.AddSource(in)
	return reg
}
