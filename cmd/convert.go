package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/jobsift/jobsift/internal/csvio"
	"github.com/jobsift/jobsift/internal/logger"
	"github.com/jobsift/jobsift/internal/pipeline"
	"github.com/jobsift/jobsift/internal/vocab"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"

	defaultOutput = "jobs.json"
	isoDate       = "2006-01-02"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input.csv> [output.json]",
	Short: "Convert a job-listing CSV export into canonical JSON",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		convert(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation before overwriting the output file")
	convertCmd.Flags().String("reference-date", "", "date (YYYY-MM-DD) that relative phrases like '2 days ago' resolve against. Default is today.")
	convertCmd.Flags().String("vocabulary-file", "", "yaml file with extra technology terms for description scanning")

	viper.BindPFlag("reference-date", convertCmd.Flags().Lookup("reference-date"))
	viper.BindPFlag("vocabulary-file", convertCmd.Flags().Lookup("vocabulary-file"))
}

// convert is the main command for the cli.
func convert(cmd *cobra.Command, args []string) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	input := args[0]
	output := defaultOutput
	if len(args) > 1 {
		output = args[1]
	}

	refDate, err := resolveReferenceDate(config)
	if err != nil {
		logger.Fatal("resolving reference date", zap.Error(err))
	}

	vocabulary, err := loadVocabulary(config)
	if err != nil {
		logger.Fatal("loading vocabulary", zap.Error(err))
	}

	logger.Info("starting the conversion",
		zap.String("input", input),
		zap.String("output", output),
		zap.String("reference_date", refDate.Format(isoDate)),
		zap.Int("vocabulary_terms", vocabulary.Len()),
	)

	if !confirmOverwrite(cmd, output, logger) {
		logger.Info("exiting", zap.String("reason", "overwrite declined"))
		return
	}

	headers, rows, err := csvio.Read(input)
	if err != nil {
		logger.Fatal("reading input file", zap.Error(err))
	}

	logger.Debug(fmt.Sprintf("resolved headers: %s", strings.Join(headers, ", ")))

	records := pipeline.New(pipeline.Options{
		ReferenceDate:     refDate,
		Vocabulary:        vocabulary,
		ExtraPlaceholders: config.Placeholders,
		Logger:            logger,
	}).Run(headers, rows)

	if err := records.ToFile(output); err != nil {
		logger.Fatal("writing output file", zap.Error(err))
	}

	logger.Info("wrote structured records",
		zap.String("path", output),
		zap.Int("count", records.Len()),
	)
}

// resolveReferenceDate prefers the flag/config value and falls back to
// today. Relative posting dates stay reproducible when it is pinned.
func resolveReferenceDate(config *Config) (time.Time, error) {
	raw := strings.TrimSpace(viper.GetString("reference-date"))
	if raw == "" && config != nil {
		raw = strings.TrimSpace(config.ReferenceDate)
	}
	if raw == "" {
		return time.Now(), nil
	}

	ref, err := time.Parse(isoDate, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("reference date must be YYYY-MM-DD, got %q", raw)
	}
	return ref, nil
}

func loadVocabulary(config *Config) (*vocab.Set, error) {
	inline, err := vocab.FromConfig(viper.Get("vocabulary"))
	if err != nil {
		return nil, err
	}

	path := strings.TrimSpace(viper.GetString("vocabulary-file"))
	if path == "" && config != nil {
		path = strings.TrimSpace(config.VocabularyFile)
	}

	return vocab.Load(path, inline)
}

// confirmOverwrite asks before clobbering an existing output file unless
// the yes flag is set. A missing file needs no confirmation.
func confirmOverwrite(cmd *cobra.Command, output string, logger *zap.Logger) bool {
	if _, err := os.Stat(output); os.IsNotExist(err) {
		return true
	}

	if cmd.Flag("yes").Value.String() == "true" {
		return true
	}

	prompt := promptui.Select{
		Label: fmt.Sprintf("%s already exists, overwrite?", output),
		Items: []string{PromptYes, PromptNo},
	}

	_, action, err := prompt.Run()
	if err != nil {
		logger.Fatal("exiting", zap.Error(err))
	}

	return action == PromptYes
}
