package main

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/Bipul-Dubey/loyalty-predictor/config"
	"github.com/Bipul-Dubey/loyalty-predictor/models"
	"github.com/Bipul-Dubey/loyalty-predictor/services"
	"github.com/Bipul-Dubey/loyalty-predictor/tui"
	"github.com/spf13/cobra"
)

// ErrInvalidInput is returned by predict when the flags fail validation.
var ErrInvalidInput = errors.New("invalid input")

// predictFlags maps each flag onto the form field it fills.
var predictFlags = []struct {
	name  string
	field models.Field
	usage string
}{
	{"frequency", models.FieldFrequencyOfCommunication, "frequency of communication (> 0)"},
	{"help-in-crises", models.FieldHelpInCrises, "help provided in crises (> 0)"},
	{"financial-support", models.FieldFinancialSupportProvided, "financial support provided (> 0)"},
	{"attendance", models.FieldAttendanceAtEvents, "attendance at events, percent (0-100)"},
	{"sentiment", models.FieldSentimentScore, "sentiment score (1-10)"},
	{"name", models.FieldRelationshipName, "relationship name"},
}

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Submit one prediction from flags and print the result",
	Example: `  loyalty predict --frequency 5 --help-in-crises 2 --financial-support 100 \
    --attendance 50 --sentiment 8 --name Alice`,
	Args: cobra.NoArgs,
	RunE: runPredict,
}

func init() {
	for _, f := range predictFlags {
		predictCmd.Flags().String(f.name, "", f.usage)
	}
}

func runPredict(cmd *cobra.Command, args []string) error {
	form := models.NewForm()
	for _, f := range predictFlags {
		value, err := cmd.Flags().GetString(f.name)
		if err != nil {
			return err
		}
		if err := form.Set(f.field, value); err != nil {
			return err
		}
	}

	predictor, err := config.NewPredictorClient(cfg)
	if err != nil {
		return err
	}
	defer predictor.Close()

	serviceManager, err := services.NewServiceManager(cfg, predictor, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	styles := tui.DefaultStyles()
	notifier := services.NotifierFunc(func(n services.Notification) {
		fmt.Fprintln(out, styles.ToastStyle(n.Severity).Render(n.Message))
	})

	result, err := serviceManager.SubmissionService.Submit(cmd.Context(), form, notifier)
	if err != nil {
		return err
	}
	if result.Status == services.SubmitBlocked {
		printValidationErrors(cmd.ErrOrStderr(), form.Errors)
		return ErrInvalidInput
	}

	fmt.Fprintf(out, "loyalty score: %g (%s)\n", result.Score, result.Band)
	return nil
}

func printValidationErrors(w io.Writer, errs models.ValidationErrors) {
	flagFor := make(map[models.Field]string, len(predictFlags))
	for _, f := range predictFlags {
		flagFor[f.field] = f.name
	}

	lines := make([]string, 0, len(errs))
	for field, msg := range errs {
		lines = append(lines, fmt.Sprintf("--%s: %s", flagFor[field], msg))
	}
	sort.Strings(lines)
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}
