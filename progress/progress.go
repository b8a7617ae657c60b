// Package progress renders an optional terminal progress bar over the
// bucket pass using vbauerster/mpb/v8.
package progress

import (
	"io"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Bar wraps one mpb bar tracking progress against a known total.
type Bar struct {
	progress *mpb.Progress
	bar      *mpb.Bar
}

// New starts a bar titled name with the given total unit count. Passing a
// nil or io.Discard-backed writer suppresses rendering entirely, matching
// mpb's own idiom for headless runs.
func New(w io.Writer, name string, total int64) *Bar {
	p := mpb.New(mpb.WithWidth(40), mpb.WithOutput(w))
	bar := p.AddBar(total,
		mpb.PrependDecorators(
			decor.Name(name, decor.WC{W: len(name) + 1, C: decor.DindentRight}),
			decor.CountersNoUnit("%d / %d"),
		),
		mpb.AppendDecorators(
			decor.Percentage(),
			decor.AverageETA(decor.ET_STYLE_GO),
		),
	)
	return &Bar{progress: p, bar: bar}
}

// Increment advances the bar by n units.
func (b *Bar) Increment(n int64) {
	b.bar.IncrBy(int(n))
}

// IncrementTimed advances the bar by n units, passing the elapsed duration
// since start as the iteration time for EWMA-based decorators. The bar built
// by New uses AverageETA, which does not read that duration.
func (b *Bar) IncrementTimed(n int64, start time.Time) {
	b.bar.EwmaIncrBy(int(n), time.Since(start))
}

// Done marks the bar complete at its current count and waits for rendering
// to finish.
func (b *Bar) Done() {
	b.bar.SetTotal(-1, true)
	b.progress.Wait()
}
