package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"ecosim/internal/sims/ecosystem"
)

func newTestServer(t *testing.T) (*httptest.Server, *ecosystem.World) {
	t.Helper()
	cfg := ecosystem.DefaultConfig()
	cfg.Seed = 11
	world := ecosystem.NewWithConfig(cfg)
	ts := httptest.NewServer(New(world, nil).Handler())
	t.Cleanup(ts.Close)
	return ts, world
}

func decodeGrid(t *testing.T, r io.Reader) ecosystem.Snapshot {
	t.Helper()
	var snap ecosystem.Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		t.Fatalf("decode grid: %v", err)
	}
	if len(snap) != ecosystem.GridSize {
		t.Fatalf("grid has %d rows", len(snap))
	}
	for i, row := range snap {
		if len(row) != ecosystem.GridSize {
			t.Fatalf("row %d has %d cells", i, len(row))
		}
	}
	return snap
}

func count(snap ecosystem.Snapshot) map[ecosystem.Kind]int {
	out := map[ecosystem.Kind]int{}
	for _, row := range snap {
		for _, c := range row {
			out[c.Type]++
		}
	}
	return out
}

func TestStartSimulation(t *testing.T) {
	ts, _ := newTestServer(t)

	res, err := http.Post(ts.URL+"/start-simulation", "application/json",
		strings.NewReader(`{"plants":10,"herbivores":5,"carnivores":2}`))
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}
	counts := count(decodeGrid(t, res.Body))
	if counts[ecosystem.Plant] != 10 || counts[ecosystem.Herbivore] != 5 || counts[ecosystem.Carnivore] != 2 {
		t.Fatalf("counts = %v", counts)
	}
}

func TestStartSimulationRejects(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"too many", `{"plants":200,"herbivores":20,"carnivores":6}`, "Too many entities"},
		{"wrapping sum", `{"plants":9223372036854775807,"herbivores":9223372036854775807,"carnivores":2}`, "Too many entities"},
		{"negative", `{"plants":-1,"herbivores":0,"carnivores":0}`, "negative"},
		{"malformed", `{"plants":`, "Malformed"},
		{"missing field", `{"plants":1,"herbivores":1}`, "required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ts, world := newTestServer(t)
			if err := world.Seed(3, 2, 1); err != nil {
				t.Fatal(err)
			}
			before := world.Export()

			res, err := http.Post(ts.URL+"/start-simulation", "application/json", strings.NewReader(tc.body))
			if err != nil {
				t.Fatal(err)
			}
			defer res.Body.Close()
			if res.StatusCode != http.StatusBadRequest {
				t.Fatalf("status = %d", res.StatusCode)
			}
			body, _ := io.ReadAll(res.Body)
			if !strings.Contains(string(body), tc.want) {
				t.Fatalf("body %q does not mention %q", body, tc.want)
			}

			after := world.Export()
			for r := range before {
				for c := range before[r] {
					if before[r][c] != after[r][c] {
						t.Fatalf("grid changed at (%d,%d) after rejected start", r, c)
					}
				}
			}
		})
	}
}

func TestNextIterationAdvances(t *testing.T) {
	ts, world := newTestServer(t)
	if err := world.Seed(0, 0, 0); err != nil {
		t.Fatal(err)
	}
	if err := world.SetCell(4, 4, ecosystem.Cell{Kind: ecosystem.Plant}); err != nil {
		t.Fatal(err)
	}

	res, err := http.Get(ts.URL + "/next-iteration")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	snap := decodeGrid(t, res.Body)
	if got := snap[4][4]; got.Type != ecosystem.Plant || got.Age != 1 {
		t.Fatalf("plant after one tick = %+v", got)
	}

	res2, err := http.Get(ts.URL + "/population")
	if err != nil {
		t.Fatal(err)
	}
	defer res2.Body.Close()
	var pop ecosystem.Population
	if err := json.NewDecoder(res2.Body).Decode(&pop); err != nil {
		t.Fatal(err)
	}
	if pop.Tick != 1 || pop.Plants < 1 {
		t.Fatalf("population = %+v", pop)
	}
}

func TestGridDoesNotTick(t *testing.T) {
	ts, world := newTestServer(t)
	if err := world.Seed(8, 4, 2); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		res, err := http.Get(ts.URL + "/grid")
		if err != nil {
			t.Fatal(err)
		}
		decodeGrid(t, res.Body)
		res.Body.Close()
	}
	if world.Ticks() != 0 {
		t.Fatalf("GET /grid advanced the world to tick %d", world.Ticks())
	}
}

func TestStaticAndHealth(t *testing.T) {
	ts, _ := newTestServer(t)

	res, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(res.Body)
	res.Body.Close()
	if res.StatusCode != http.StatusOK || !strings.Contains(string(body), "/next-iteration") {
		t.Fatalf("index: status %d body %.60q", res.StatusCode, body)
	}

	res, err = http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	body, _ = io.ReadAll(res.Body)
	res.Body.Close()
	if string(body) != "ok" {
		t.Fatalf("healthz = %q", body)
	}

	res, err = http.Get(ts.URL + "/parameters")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	var params struct {
		Groups []struct {
			Name string `json:"name"`
		} `json:"groups"`
	}
	if err := json.NewDecoder(res.Body).Decode(&params); err != nil {
		t.Fatal(err)
	}
	if len(params.Groups) == 0 {
		t.Fatal("no parameter groups")
	}
}

func TestMethodNotAllowed(t *testing.T) {
	ts, _ := newTestServer(t)
	res, err := http.Get(ts.URL + "/start-simulation")
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("GET /start-simulation status = %d", res.StatusCode)
	}
}

func TestConcurrentTicksAndReads(t *testing.T) {
	ts, world := newTestServer(t)
	if err := world.Seed(50, 20, 5); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			path := "/grid"
			if i%2 == 0 {
				path = "/next-iteration"
			}
			for j := 0; j < 5; j++ {
				res, err := http.Get(ts.URL + path)
				if err != nil {
					t.Error(err)
					return
				}
				io.Copy(io.Discard, res.Body)
				res.Body.Close()
			}
		}(i)
	}
	wg.Wait()
	if world.Ticks() != 20 {
		t.Fatalf("ticks = %d, want 20", world.Ticks())
	}
}

func TestServeShutsDownOnCancel(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	srv := New(ecosystem.New(), nil)

	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, l) }()

	url := "http://" + l.Addr().String() + "/healthz"
	deadline := time.Now().Add(2 * time.Second)
	for {
		res, err := http.Get(url)
		if err == nil {
			res.Body.Close()
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("server never came up: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
