package ascii

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextAsyncMatchesText(t *testing.T) {
	img := gradient(40, 30)

	want, err := New(WithColumns(10)).Text(img)
	require.NoError(t, err)

	f := New(WithColumns(10)).TextAsync(img)
	got, err := f.Wait()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Wait is repeatable
	again, err := f.Wait()
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestImageAsync(t *testing.T) {
	f := New(WithFontSize(10)).ImageAsync(solid(50, 40, black))

	select {
	case <-f.Done():
	case <-time.After(10 * time.Second):
		t.Fatal("conversion did not settle")
	}

	out, err := f.Wait()
	require.NoError(t, err)
	assert.Equal(t, 50, out.Bounds().Dx())
}

func TestFutureErrorHasZeroValue(t *testing.T) {
	f := New(WithFontSize(10)).TextAsync(solid(30, 30, white))

	text, err := f.Wait()
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Empty(t, text)

	img, err := New().ImageAsync(nil).Wait()
	assert.ErrorIs(t, err, ErrNilImage)
	assert.Nil(t, img)
}

func TestFutureThen(t *testing.T) {
	release := make(chan struct{})
	f := goFuture(func() (int, error) {
		<-release
		return 42, nil
	})

	var (
		mu    sync.Mutex
		calls []int
		wg    sync.WaitGroup
	)
	wg.Add(1)
	f.Then(func(v int, err error) {
		defer wg.Done()
		assert.NoError(t, err)
		mu.Lock()
		calls = append(calls, v)
		mu.Unlock()
	})

	close(release)
	wg.Wait()

	// registered after settling: runs on this goroutine before Then returns
	ran := false
	f.Then(func(v int, err error) {
		ran = true
		assert.Equal(t, 42, v)
	})
	assert.True(t, ran)

	mu.Lock()
	assert.Equal(t, []int{42}, calls, "callback fires once")
	mu.Unlock()
}
