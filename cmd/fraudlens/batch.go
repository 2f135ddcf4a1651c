package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/fraudlens/fraudlens/internal/engine"
	"github.com/fraudlens/fraudlens/internal/form"
	"github.com/fraudlens/fraudlens/internal/model"
	"github.com/fraudlens/fraudlens/internal/service"
)

func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file.jsonl>",
		Short: "Score transactions from a JSON-lines file",
		Long: `Score a file of candidate transactions, one JSON object per line.

Each line is a structured draft:
  {"amount": 100.0, "age": 34, "hour": 14, "lat": 12.97, "long": 77.59,
   "merch_lat": 12.90, "merch_long": 77.60, "day_of_week": 2, "month": 6,
   "merchant": "Kuhn_LLC", "category": "shopping_pos", "job": "Engineer",
   "region": "West", "gender": "M"}

Lines are scored sequentially through the same validation and encoding
pipeline as a single prediction. A line that fails is reported and the run
continues.`,
		Args: cobra.ExactArgs(1),
		RunE: runBatch,
	}

	cmd.Flags().Bool("no-history", false, "skip recording submissions locally")

	return cmd
}

// batchDraft is the per-line input shape. Numerics are json.Number so the
// draft keeps the operator-style free-form text.
type batchDraft struct {
	Amount    json.Number `json:"amount"`
	Age       json.Number `json:"age"`
	Hour      json.Number `json:"hour"`
	Lat       *float64    `json:"lat"`
	Long      *float64    `json:"long"`
	MerchLat  *float64    `json:"merch_lat"`
	MerchLong *float64    `json:"merch_long"`
	DayOfWeek int         `json:"day_of_week"`
	Month     int         `json:"month"`
	Merchant  string      `json:"merchant"`
	Category  string      `json:"category"`
	Job       string      `json:"job"`
	Region    string      `json:"region"`
	Gender    string      `json:"gender"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	lines, err := readBatchLines(args[0])
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return fmt.Errorf("no transactions found in %s", args[0])
	}

	client, err := newScoringClient()
	if err != nil {
		return err
	}

	var history service.History
	if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory {
		db, openErr := openHistory(ctx)
		if openErr != nil {
			slog.Warn("Local history unavailable", "error", openErr)
		} else {
			history = db
			defer closeHistory(history)
		}
	}

	store := form.NewStore()
	eng := engine.New(store, client, history)

	bar := progressbar.Default(int64(len(lines)), "scoring")

	var scored, fraud, failed int
	for i, line := range lines {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		var draft batchDraft
		if err := json.Unmarshal([]byte(line), &draft); err != nil {
			slog.Warn("Skipping malformed line", "line", i+1, "error", err)
			failed++
			_ = bar.Add(1)
			continue
		}

		store.Reset()
		applyBatchDraft(store, draft)

		result, err := eng.Submit(ctx)
		if err != nil {
			slog.Warn("Line failed", "line", i+1, "error", engine.DescribeLocalError(err))
			failed++
			_ = bar.Add(1)
			continue
		}

		scored++
		if result.Label == model.LabelFraud {
			fraud++
		}
		_ = bar.Add(1)
	}

	fmt.Printf("\nScored %d/%d transactions: %d flagged as fraud, %d failed\n",
		scored, len(lines), fraud, failed)
	return nil
}

func applyBatchDraft(store *form.Store, draft batchDraft) {
	store.SetAmount(draft.Amount.String())
	store.SetAge(draft.Age.String())
	store.SetHour(draft.Hour.String())

	if draft.Lat != nil && draft.Long != nil {
		store.SetTransactionLocation(*draft.Lat, *draft.Long)
	}
	if draft.MerchLat != nil && draft.MerchLong != nil {
		store.SetMerchantLocation(*draft.MerchLat, *draft.MerchLong)
	}

	store.SetDayOfWeek(draft.DayOfWeek)
	if draft.Month == 0 {
		draft.Month = 1
	}
	store.SetMonth(draft.Month)
	store.SetMerchantGroup(draft.Merchant)
	store.SetCategory(draft.Category)
	store.SetJobGroup(draft.Job)
	store.SetRegion(draft.Region)
	store.SetGender(draft.Gender)
}

func readBatchLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open batch file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	return lines, nil
}
