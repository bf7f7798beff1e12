package ascii

import (
	"image"
	"sync"

	"golang.org/x/image/draw"
)

// Future is the result of a conversion running on another goroutine. It
// settles exactly once, with either a value or an error.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error

	mu        sync.Mutex
	callbacks []func(T, error)
}

func goFuture[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		val, err := fn()
		if err != nil {
			var zero T
			val = zero
		}
		f.settle(val, err)
	}()
	return f
}

func (f *Future[T]) settle(val T, err error) {
	f.mu.Lock()
	f.val, f.err = val, err
	callbacks := f.callbacks
	f.callbacks = nil
	close(f.done)
	f.mu.Unlock()

	for _, cb := range callbacks {
		cb(val, err)
	}
}

// Done is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

// Wait blocks until the conversion finishes. It may be called any number of times.
func (f *Future[T]) Wait() (T, error) {
	<-f.done
	return f.val, f.err
}

// Then registers fn to run once with the result. If the future has already
// settled fn runs immediately on the calling goroutine, otherwise on the
// worker goroutine.
func (f *Future[T]) Then(fn func(T, error)) {
	f.mu.Lock()
	select {
	case <-f.done:
		f.mu.Unlock()
		fn(f.val, f.err)
	default:
		f.callbacks = append(f.callbacks, fn)
		f.mu.Unlock()
	}
}

// TextAsync runs Text on a new goroutine. The converter must not be mutated
// until the future settles.
func (c *Converter) TextAsync(img image.Image) *Future[string] {
	return goFuture(func() (string, error) { return c.Text(img) })
}

// ImageAsync runs Image on a new goroutine. The converter must not be
// mutated until the future settles.
func (c *Converter) ImageAsync(img image.Image) *Future[draw.Image] {
	return goFuture(func() (draw.Image, error) { return c.Image(img) })
}
