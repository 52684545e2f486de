package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/aretw0/sortvis/pkg/dataset"
	"github.com/aretw0/sortvis/pkg/domain"
	"github.com/aretw0/sortvis/pkg/pacing"
	"github.com/aretw0/sortvis/pkg/runner"
)

// diffRenderer implements ports.Renderer by turning every frame into per-board
// snapshot diffs. It is only ever called under the runner's lock.
type diffRenderer struct {
	last map[domain.Algorithm]domain.Snapshot
	out  chan<- []byte
}

func newDiffRenderer(out chan<- []byte) *diffRenderer {
	return &diffRenderer{
		last: make(map[domain.Algorithm]domain.Snapshot),
		out:  out,
	}
}

func (d *diffRenderer) Render(ctx context.Context, boards []domain.Snapshot) error {
	for _, b := range boards {
		var prev *domain.Snapshot
		if s, ok := d.last[b.Algorithm]; ok {
			prev = &s
		}
		diff := domain.Diff(prev, b)
		if diff == nil {
			continue
		}
		payload, err := json.Marshal(diff)
		if err != nil {
			return err
		}
		select {
		case d.out <- payload:
		case <-ctx.Done():
			return ctx.Err()
		}
		d.last[b.Algorithm] = b
	}
	return nil
}

// Stream handles the GET /stream request (SSE).
// It plays a fresh pair of boards and emits one "diff" event per board change
// until every board has finished, then a single "done" event.
func (s *Server) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.logger.Error("Stream: Streaming not supported")
		return
	}

	size, err := queryInt(r, "size", dataset.DefaultSize)
	if err != nil {
		http.Error(w, "Invalid size", http.StatusBadRequest)
		return
	}
	speed := pacing.DefaultSpeed
	if raw := r.URL.Query().Get("speed"); raw != "" {
		if speed, err = strconv.ParseFloat(raw, 64); err != nil {
			http.Error(w, "Invalid speed", http.StatusBadRequest)
			return
		}
	}
	gen, err := generatorFor(r)
	if err != nil {
		http.Error(w, "Invalid seed", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	events := make(chan []byte, 16)
	opts := append([]runner.Option{}, s.runnerOpts...)
	opts = append(opts,
		runner.WithLogger(s.logger),
		runner.WithGenerator(gen),
		runner.WithSize(size),
		runner.WithSpeed(speed),
		runner.WithRenderer(newDiffRenderer(events)),
	)
	run := runner.NewRunner(opts...)
	defer run.Pause()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	s.logger.Info("SSE: live replay started", "size", run.Size(), "speed", run.Speed())

	finished := make(chan error, 1)
	go func() {
		finished <- run.Wait(ctx)
	}()

	if err := run.Play(ctx); err != nil {
		s.logger.Error("Stream: play failed", "error", err)
		return
	}

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("SSE Client Disconnected")
			return
		case msg := <-events:
			fmt.Fprintf(w, "event: diff\ndata: %s\n\n", msg)
			flusher.Flush()
		case err := <-finished:
			if err != nil {
				return
			}
			// Every frame is queued before the runner reports completion.
			drain(w, events)
			fmt.Fprintf(w, "event: done\ndata: {}\n\n")
			flusher.Flush()
			return
		}
	}
}

func drain(w http.ResponseWriter, events <-chan []byte) {
	for {
		select {
		case msg := <-events:
			fmt.Fprintf(w, "event: diff\ndata: %s\n\n", msg)
		default:
			return
		}
	}
}
