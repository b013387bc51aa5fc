package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hirekit/hirekit/internal/baseline"
	"github.com/hirekit/hirekit/internal/extraction"
	hklog "github.com/hirekit/hirekit/internal/logger"
	"github.com/hirekit/hirekit/internal/pdftext"
	"github.com/hirekit/hirekit/internal/profile"
	"github.com/hirekit/hirekit/internal/report"
	"github.com/hirekit/hirekit/internal/scoring"
	"github.com/hirekit/hirekit/internal/screening"
	"github.com/hirekit/hirekit/internal/secrets"
	"github.com/hirekit/hirekit/internal/similarity"
	"github.com/hirekit/hirekit/internal/similarity/gemini"
)

const (
	PromptExport     = "Export ranking to Excel"
	PromptSummary    = "Show summary statistics"
	PromptDumpToFile = "Dump results to file"
	PromptNo         = "No"
	defaultExcelFile = "evaluations.xlsx"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "Proceed?",
	Items: []string{PromptExport, PromptSummary, PromptDumpToFile, PromptNo},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Evaluate a directory of resumes against the configured role and cohort",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("auto-export", "y", false, "export the ranking without asking and exit")
	runCmd.Flags().StringP("excel-file", "o", "", "path of the Excel report to write")

	viper.BindPFlag("output.excel-file", runCmd.Flags().Lookup("excel-file"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := hklog.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting hirekit", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config == nil {
		logger.Fatal("config is required")
	}

	if config.JobDescriptionFile == "" {
		logger.Fatal("a job description is required under job-description-file")
	}

	if config.CohortFile == "" {
		logger.Fatal("a good-hire cohort is required under cohort-file")
	}

	if config.ResumeDir == "" {
		logger.Fatal("a resume directory is required under resume-dir")
	}

	generator, err := newGenerator(ctx, config.AI, logger)
	if err != nil {
		logger.Fatal("building the model provider", zap.Error(err))
	}

	var extractor *extraction.Extractor
	var judge similarity.Judge
	if generator != nil {
		extractor = extraction.NewExtractor(generator, logger)
		judge = gemini.NewJudge(generator, logger, config.AI.Gemini.MaxLogLength)
	} else {
		logger.Info("semantic provider disabled; structured inputs and exact skill matching only")
	}

	job, err := loadJob(ctx, extractor, config.JobDescriptionFile)
	if err != nil {
		logger.Fatal("loading job requirements", zap.Error(err))
	}

	cohort, err := profile.LoadCohort(config.CohortFile)
	if err != nil {
		logger.Fatal("loading the good-hire cohort", zap.Error(err))
	}

	snapshot, err := baseline.Build(cohort)
	if err != nil {
		logger.Fatal("building baseline statistics", zap.Error(err))
	}

	logger.Info("baseline built",
		zap.Int("cohort_size", snapshot.CohortSize),
		zap.Float64("mean_years_experience", snapshot.MeanYearsExperience),
	)

	candidates, err := collectCandidates(ctx, extractor, config.ResumeDir, logger)
	if err != nil {
		logger.Fatal("collecting candidates", zap.Error(err))
	}

	if len(candidates) == 0 {
		logger.Info("exiting", zap.String("reason", "no candidates found"))
		return
	}

	minConfidence := 0.0
	if config.AI != nil {
		minConfidence = config.AI.MinConfidence
	}
	engine := scoring.NewEngine(similarity.NewResolver(judge, minConfidence, logger), logger)

	results := &scoring.Results{}
	for _, candidate := range candidates {
		result, err := engine.Evaluate(ctx, candidate, job, snapshot)
		if err != nil {
			logger.Fatal("evaluating candidate", zap.String(hklog.FieldCandidate, candidate.Name), zap.Error(err))
		}
		results.Items = append(results.Items, result)
	}

	results, err = screenResults(ctx, config.Screening, results, logger)
	if err != nil {
		logger.Fatal("screening results", zap.Error(err))
	}

	if results.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no candidates left after screening"))
		return
	}

	results.SortByComposite()
	for rank, result := range results.Items {
		logger.Info("ranked candidate",
			zap.Int("rank", rank+1),
			zap.String(hklog.FieldCandidate, result.CandidateName),
			zap.Int("composite", result.CompositeScore),
			zap.String("tier", string(result.Tier)),
			zap.Bool("degraded", result.Degraded),
		)
	}

	if cmd.Flag("auto-export").Value.String() == "true" {
		if err := handleAction(PromptExport, config, results, logger); err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, config, results, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, config *Config, results *scoring.Results, log *zap.Logger) error {
	switch action {
	case PromptExport:
		path := defaultExcelFile
		if config.Output != nil && config.Output.ExcelFile != "" {
			path = config.Output.ExcelFile
		}
		if flagPath := viper.GetString("output.excel-file"); flagPath != "" {
			path = flagPath
		}

		if err := report.ExportToExcel(results, jobTitle(config), path); err != nil {
			return fmt.Errorf("export ranking: %w", err)
		}
		log.Info("exported ranking", zap.String("filename", path))
		return nil
	case PromptSummary:
		pretty, _ := json.MarshalIndent(report.Summarize(results), "", "  ")
		log.Info(string(pretty), zap.Int("candidate count", results.Len()))
		return nil
	case PromptDumpToFile:
		filename, err := results.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		log.Info("dumping results to file", zap.String("filename", filename))
		return nil
	case PromptNo:
		log.Info("exiting", zap.String("reason", "got no from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func jobTitle(config *Config) string {
	if strings.TrimSpace(config.JobTitle) != "" {
		return config.JobTitle
	}
	base := filepath.Base(config.JobDescriptionFile)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// loadJob reads the job requirements: structured JSON directly, anything else
// as raw text through the extraction provider.
func loadJob(ctx context.Context, extractor *extraction.Extractor, path string) (*profile.JobRequirements, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return profile.LoadRequirements(path)
	}

	if extractor == nil {
		return nil, fmt.Errorf("job description %q is unstructured text and requires the ai provider; supply a .json file or enable ai", path)
	}

	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job description: %w", err)
	}

	return extractor.JobRequirements(ctx, string(text))
}

// collectCandidates walks the resume directory in name order and produces
// one candidate record per supported file: .pdf and .txt go through the
// extraction provider, .json is read as an already structured record. A file
// that cannot be processed is skipped with a warning so one bad resume never
// aborts the batch.
func collectCandidates(ctx context.Context, extractor *extraction.Extractor, dir string, log *zap.Logger) ([]*profile.Candidate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading resume directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	candidates := make([]*profile.Candidate, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)

		candidate, err := loadCandidate(ctx, extractor, path)
		if err != nil {
			log.Warn("skipping resume", zap.String("filename", name), zap.Error(err))
			continue
		}
		if candidate == nil {
			log.Debug("ignoring unsupported file", zap.String("filename", name))
			continue
		}

		if candidate.Name == "" {
			candidate.Name = strings.TrimSuffix(name, filepath.Ext(name))
		}

		candidates = append(candidates, candidate)
	}

	log.Info("collected candidates", zap.Int("count", len(candidates)))
	return candidates, nil
}

func loadCandidate(ctx context.Context, extractor *extraction.Extractor, path string) (*profile.Candidate, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return profile.LoadCandidate(path)
	case ".pdf":
		if extractor == nil {
			return nil, fmt.Errorf("pdf resumes require the ai provider")
		}
		text, err := pdftext.FromFile(path)
		if err != nil {
			return nil, err
		}
		return extractor.CandidateProfile(ctx, text)
	case ".txt":
		if extractor == nil {
			return nil, fmt.Errorf("text resumes require the ai provider")
		}
		text, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return extractor.CandidateProfile(ctx, string(text))
	default:
		return nil, nil
	}
}

func screenResults(ctx context.Context, cfg *ScreeningConfig, results *scoring.Results, log *zap.Logger) (*scoring.Results, error) {
	screeningCfg := &screening.Config{}
	if cfg != nil {
		screeningCfg.MinScore = cfg.MinScore
		screeningCfg.MinTier = cfg.MinTier
		screeningCfg.ExcludeDegraded = cfg.ExcludeDegraded
	}

	return screening.Run(ctx, screeningCfg, screening.Deps{Logger: log}, screening.DefaultSteps(), results)
}

// newGenerator builds the shared Gemini client, or nil when the ai section
// is disabled.
func newGenerator(ctx context.Context, cfg *AIConfig, log *zap.Logger) (*gemini.Generator, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		return nil, errors.New("gemini configuration is required when ai is enabled")
	}

	keyFile := strings.TrimSpace(cfg.Gemini.APIKeyFile)
	if keyFile == "" {
		keyFile = strings.TrimSpace(viper.GetString("gemini-api-key-file"))
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: keyFile,
		Env:  "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model)
	if err != nil {
		return nil, err
	}

	log.Info("semantic provider configured",
		zap.String(hklog.FieldProvider, "gemini"),
		zap.String(hklog.FieldModel, generator.Model()),
	)

	return generator, nil
}
