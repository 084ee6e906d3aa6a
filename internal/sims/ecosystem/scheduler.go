package ecosystem

import "golang.org/x/sync/errgroup"

// minBandRows keeps concurrently swept bands at least one full band apart.
// A rule reads and writes rows r-1..r+1 only, so two bands separated by a
// band of two or more rows never touch the same cell.
const minBandRows = 3

type band struct{ from, to int }

// bands splits h rows into contiguous bands of at least minBandRows rows.
func bands(h int) []band {
	n := h / minBandRows
	if n < 1 {
		return []band{{0, h}}
	}
	out := make([]band, 0, n)
	base, extra := h/n, h%n
	from := 0
	for i := 0; i < n; i++ {
		size := base
		if i < extra {
			size++
		}
		out = append(out, band{from, from + size})
		from += size
	}
	return out
}

// tickBanded sweeps even bands concurrently, then odd bands. Each band draws
// from its own RNG stream split off the world RNG before any goroutine
// starts, so a seeded world stays reproducible.
func (w *World) tickBanded() {
	bs := bands(w.h)
	streams := make([]Source, len(bs))
	for i := range bs {
		streams[i] = w.rng.Split()
	}

	for parity := 0; parity < 2; parity++ {
		var g errgroup.Group
		for i := parity; i < len(bs); i += 2 {
			b, src := bs[i], streams[i]
			g.Go(func() error {
				w.sweep(b.from, b.to, src)
				return nil
			})
		}
		g.Wait()
	}
}
