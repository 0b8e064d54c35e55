package screen

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"

	"github.com/tbw875/batch-address-screen/internal/chainalysis"
	"github.com/tbw875/batch-address-screen/internal/logging"
	"github.com/tbw875/batch-address-screen/internal/normalize"
)

// Options configure a screening run.
type Options struct {
	BaseURL   string
	Timeout   time.Duration // per-request timeout
	RateLimit int           // API requests per second (0 = unlimited)
	RawPath   string        // raw JSON array destination ("" = skip persistence)
	Progress  io.Writer     // progress bar sink (nil = no bar)
}

// Screener drives the register/fetch loop over a batch of addresses and
// hands the collected documents to the normalization pipeline. Addresses
// whose API calls fail are skipped, never retried; the batch handed to the
// core may therefore be smaller than the input.
type Screener struct {
	prov chainalysis.Provider
	opts Options
}

// New wires the default HTTP provider from Options and the API token.
func New(opts Options, token string) (*Screener, error) {
	p, err := chainalysis.NewProvider(opts.BaseURL, token, opts.RateLimit, opts.Timeout)
	if err != nil {
		return nil, err
	}
	return &Screener{prov: p, opts: opts}, nil
}

// NewWithProvider injects a concrete provider (already wrapped with a rate
// limiter if needed). Prefer this in tests.
func NewWithProvider(opts Options, p chainalysis.Provider) *Screener {
	return &Screener{prov: p, opts: opts}
}

// Summary reports what happened to a run. Skipped counts addresses whose
// API calls failed or whose bodies were undecodable; Dropped counts
// documents the normalizer excluded for missing required keys. Both mean
// data loss and belong in the operator-facing run report.
type Summary struct {
	RunID     string `json:"run_id"`
	Requested int    `json:"requested"`
	Screened  int    `json:"screened"`
	Skipped   int    `json:"skipped"`
	Dropped   int    `json:"dropped"`
	Rows      int    `json:"rows"`
}

// Run screens the addresses sequentially, persists the raw batch, and
// returns the normalized table. Only raw persistence can fail hard; every
// per-address error is logged and skipped.
func (s *Screener) Run(ctx context.Context, addresses []string) (*normalize.Table, Summary, error) {
	logger := logging.Logger()
	sum := Summary{RunID: uuid.NewString(), Requested: len(addresses)}

	var bar *progressbar.ProgressBar
	if s.opts.Progress != nil {
		bar = progressbar.NewOptions(len(addresses),
			progressbar.OptionSetWriter(s.opts.Progress),
			progressbar.OptionSetDescription("screening"),
		)
	}

	raws := make([]json.RawMessage, 0, len(addresses))
	docs := make([]normalize.RiskResponse, 0, len(addresses))
	for _, address := range addresses {
		raw, doc, ok := s.screenOne(ctx, address, sum.RunID)
		if ok {
			raws = append(raws, raw)
			docs = append(docs, doc)
		} else {
			sum.Skipped++
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	// Raw persistence comes before normalization so a parse problem can be
	// replayed from disk instead of re-querying the API.
	if s.opts.RawPath != "" {
		if err := SaveRaw(s.opts.RawPath, raws); err != nil {
			return nil, sum, err
		}
	}

	table, rep := normalize.Normalize(docs)
	sum.Screened = len(docs)
	sum.Dropped = rep.Dropped
	sum.Rows = table.Len()
	logger.Info("screen_complete",
		"component", "screen",
		"run_id", sum.RunID,
		"requested", sum.Requested,
		"screened", sum.Screened,
		"skipped", sum.Skipped,
		"dropped", sum.Dropped,
		"rows", sum.Rows,
	)
	return table, sum, nil
}

func (s *Screener) screenOne(ctx context.Context, address, runID string) (json.RawMessage, normalize.RiskResponse, bool) {
	logger := logging.Logger()
	if err := s.prov.Register(ctx, address); err != nil {
		logger.Warn("register_failed", "run_id", runID, "address", address, "error", err.Error())
		return nil, normalize.RiskResponse{}, false
	}
	raw, err := s.prov.Entity(ctx, address)
	if err != nil {
		logger.Warn("entity_fetch_failed", "run_id", runID, "address", address, "error", err.Error())
		return nil, normalize.RiskResponse{}, false
	}
	var doc normalize.RiskResponse
	if err := json.Unmarshal(raw, &doc); err != nil {
		logger.Warn("entity_decode_failed", "run_id", runID, "address", address, "error", err.Error())
		return nil, normalize.RiskResponse{}, false
	}
	return raw, doc, true
}

// SaveRaw writes the batch exactly as received, as one JSON array, so the
// normalizer can be re-run against it later via normalize.DecodeBatch.
func SaveRaw(path string, raws []json.RawMessage) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("raw dir: %w", err)
		}
	}
	if raws == nil {
		raws = []json.RawMessage{}
	}
	b, err := json.Marshal(raws)
	if err != nil {
		return fmt.Errorf("encode raw batch: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write raw batch: %w", err)
	}
	return nil
}

// LoadRaw reads a previously saved raw batch for replay.
func LoadRaw(path string) ([]normalize.RiskResponse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return normalize.DecodeBatch(f)
}
