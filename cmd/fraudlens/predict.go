package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fraudlens/fraudlens/internal/engine"
	"github.com/fraudlens/fraudlens/internal/form"
	"github.com/fraudlens/fraudlens/internal/model"
	"github.com/fraudlens/fraudlens/internal/service"
	"github.com/fraudlens/fraudlens/internal/tui"
)

// structuredFlags are the flags that switch predict into non-interactive
// structured mode.
var structuredFlags = []string{
	"amount", "age", "hour",
	"lat", "long", "merch-lat", "merch-long",
	"day", "month",
	"merchant", "category", "job", "region", "gender",
}

func predictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Score a candidate transaction",
		Long: `Score a candidate transaction against the remote fraud model.

With no flags an interactive form opens. Structured flags score a single
transaction non-interactively; --raw/--raw-file bypass the form entirely
and submit the given JSON object verbatim.

Examples:
  fraudlens predict                                  # interactive form
  fraudlens predict --amount 100 --age 34 --hour 14 \
      --lat 12.97 --long 77.59 --merch-lat 12.90 --merch-long 77.60
  fraudlens predict --raw '{"amt": 100.0, "age": 34, ...}'`,
		RunE: runPredict,
	}

	cmd.Flags().String("amount", "", "transaction amount")
	cmd.Flags().String("age", "", "cardholder age")
	cmd.Flags().String("hour", "", "hour of day (0-23)")
	cmd.Flags().Float64("lat", 0, "transaction latitude")
	cmd.Flags().Float64("long", 0, "transaction longitude")
	cmd.Flags().Float64("merch-lat", 0, "merchant latitude")
	cmd.Flags().Float64("merch-long", 0, "merchant longitude")
	cmd.Flags().Int("day", 0, "day of week (0=Monday .. 6=Sunday)")
	cmd.Flags().Int("month", 1, "month (1-12)")
	cmd.Flags().String("merchant", "", "merchant group")
	cmd.Flags().String("category", "", "transaction category")
	cmd.Flags().String("job", "", "cardholder job group")
	cmd.Flags().String("region", "", "region")
	cmd.Flags().String("gender", "", "gender (M/F)")
	cmd.Flags().String("raw", "", "raw JSON payload override")
	cmd.Flags().String("raw-file", "", "file containing a raw JSON payload override")
	cmd.Flags().Bool("no-history", false, "skip recording the submission locally")

	return cmd
}

func runPredict(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

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
	rawMode, err := applyPredictFlags(cmd, store)
	if err != nil {
		return err
	}

	eng := engine.New(store, client, history)

	if !rawMode && !anyStructuredFlag(cmd) {
		return tui.Run(ctx, tui.Config{Engine: eng})
	}

	result, err := eng.Submit(ctx)
	if err != nil {
		return fmt.Errorf("%s", engine.DescribeLocalError(err))
	}

	printResult(result)
	fmt.Println("\nRecord feedback with: fraudlens feedback --correct | --incorrect")
	return nil
}

// applyPredictFlags copies flag values into the draft store and reports
// whether the submission runs in raw-override mode.
func applyPredictFlags(cmd *cobra.Command, store *form.Store) (bool, error) {
	flags := cmd.Flags()

	if raw, _ := flags.GetString("raw"); raw != "" {
		store.SetMode(model.ModeRaw)
		store.SetRawText(raw)
		return true, nil
	}
	if rawFile, _ := flags.GetString("raw-file"); rawFile != "" {
		data, err := os.ReadFile(rawFile)
		if err != nil {
			return false, fmt.Errorf("failed to read raw payload file: %w", err)
		}
		store.SetMode(model.ModeRaw)
		store.SetRawText(string(data))
		return true, nil
	}

	amount, _ := flags.GetString("amount")
	age, _ := flags.GetString("age")
	hour, _ := flags.GetString("hour")
	store.SetAmount(amount)
	store.SetAge(age)
	store.SetHour(hour)

	if flags.Changed("lat") || flags.Changed("long") {
		lat, _ := flags.GetFloat64("lat")
		long, _ := flags.GetFloat64("long")
		store.SetTransactionLocation(lat, long)
	}
	if flags.Changed("merch-lat") || flags.Changed("merch-long") {
		lat, _ := flags.GetFloat64("merch-lat")
		long, _ := flags.GetFloat64("merch-long")
		store.SetMerchantLocation(lat, long)
	}

	day, _ := flags.GetInt("day")
	month, _ := flags.GetInt("month")
	store.SetDayOfWeek(day)
	store.SetMonth(month)

	merchant, _ := flags.GetString("merchant")
	category, _ := flags.GetString("category")
	job, _ := flags.GetString("job")
	region, _ := flags.GetString("region")
	gender, _ := flags.GetString("gender")
	store.SetMerchantGroup(merchant)
	store.SetCategory(category)
	store.SetJobGroup(job)
	store.SetRegion(region)
	store.SetGender(gender)

	return false, nil
}

func anyStructuredFlag(cmd *cobra.Command) bool {
	for _, name := range structuredFlags {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func printResult(result model.PredictionResult) {
	verdict := "Not Fraud"
	if result.Label == model.LabelFraud {
		verdict = "Fraud"
	}
	fmt.Printf("Fraud probability: %.1f%%\n", result.FraudProbability*100)
	fmt.Printf("Prediction: %s\n", verdict)
}
