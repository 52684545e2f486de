package runner

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/aretw0/sortvis/pkg/domain"
)

// Frame is one line of the JSON stream.
type Frame struct {
	Seq    int               `json:"seq"`
	Boards []domain.Snapshot `json:"boards"`
}

// JSONRenderer implements ports.Renderer for structured JSON-Lines output.
type JSONRenderer struct {
	mu      sync.Mutex
	seq     int
	Encoder *json.Encoder
}

// NewJSONRenderer creates a renderer writing to w (Stdout when nil).
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	if w == nil {
		w = os.Stdout
	}
	return &JSONRenderer{Encoder: json.NewEncoder(w)}
}

// Render emits the snapshots as a single JSON line.
func (h *JSONRenderer) Render(ctx context.Context, boards []domain.Snapshot) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.seq++
	return h.Encoder.Encode(Frame{Seq: h.seq, Boards: boards})
}
