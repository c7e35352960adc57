package paletteer

import (
	"context"
	"runtime"
	"sync"

	"github.com/bodgit/paletteer/dither"
	"github.com/bodgit/paletteer/frame"
	"github.com/bodgit/paletteer/palette"
)

// Pipeline dithers many independent frames concurrently against one shared
// palette, fanning work out to a bounded worker pool and fanning errors
// back in with the same merge pattern the teacher used for its directory
// walk: one buffered error channel per stage, drained by mergeErrors.
type Pipeline struct {
	// Concurrency caps the number of frames dithered at once. Zero or
	// negative means runtime.NumCPU().
	Concurrency int
}

type frameJob struct {
	frame frame.Frame
	algo  dither.Algorithm
}

// Reduce dithers every frame in frames against s using algo, distributing
// frames across p.Concurrency workers. Each worker owns a cloned Store
// (read-only once built, safe to share by value) and its own Ditherer, so
// error-diffusion row buffers are never shared across goroutines. Scan
// order within any one frame is always left-to-right, top-to-bottom; only
// distinct frames run concurrently with each other. The first worker error
// cancels every frame still waiting to start.
func (p *Pipeline) Reduce(ctx context.Context, s *palette.Store, frames []frame.Frame, algo dither.Algorithm) error {
	n := p.workerCount(len(frames))
	if n < 1 {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs, feedErrc := p.feed(ctx, frames, algo)

	errcList := []<-chan error{feedErrc}
	for i := 0; i < n; i++ {
		errcList = append(errcList, p.worker(ctx, s.Clone(), jobs))
	}

	return waitForPipeline(errcList...)
}

func (p *Pipeline) workerCount(frameCount int) int {
	n := p.Concurrency
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n > frameCount {
		n = frameCount
	}
	return n
}

func (p *Pipeline) feed(ctx context.Context, frames []frame.Frame, algo dither.Algorithm) (<-chan frameJob, <-chan error) {
	out := make(chan frameJob)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		for _, f := range frames {
			select {
			case out <- frameJob{frame: f, algo: algo}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, errc
}

func (p *Pipeline) worker(ctx context.Context, s *palette.Store, in <-chan frameJob) <-chan error {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		d := dither.New()
		for {
			select {
			case job, ok := <-in:
				if !ok {
					return
				}
				d.Dither(s, job.frame, job.algo)
			case <-ctx.Done():
				return
			}
		}
	}()
	return errc
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}
