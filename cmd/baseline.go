package cmd

import (
	"encoding/json"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hirekit/hirekit/internal/baseline"
	hklog "github.com/hirekit/hirekit/internal/logger"
	"github.com/hirekit/hirekit/internal/profile"
)

var baselineCmd = &cobra.Command{
	Use:   "baseline",
	Short: "Build and inspect the good-hire baseline statistics",
	Run: func(cmd *cobra.Command, _ []string) {
		runBaseline(cmd)
	},
}

func init() {
	rootCmd.AddCommand(baselineCmd)

	baselineCmd.Flags().IntP("top-skills", "t", 10, "how many of the most common cohort skills to show")
}

func runBaseline(cmd *cobra.Command) {
	logger, err := hklog.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	if config == nil || config.CohortFile == "" {
		logger.Fatal("a good-hire cohort is required under cohort-file")
	}

	cohort, err := profile.LoadCohort(config.CohortFile)
	if err != nil {
		logger.Fatal("loading the good-hire cohort", zap.Error(err))
	}

	snapshot, err := baseline.Build(cohort)
	if err != nil {
		logger.Fatal("building baseline statistics", zap.Error(err))
	}

	topN, _ := cmd.Flags().GetInt("top-skills")

	logger.Info("baseline statistics",
		zap.Int("cohort_size", snapshot.CohortSize),
		zap.Float64("mean_years_experience", snapshot.MeanYearsExperience),
		zap.Float64("advanced_degree_share", snapshot.AdvancedDegreeShare),
		zap.Float64("engineering_share", snapshot.EngineeringShare),
		zap.Float64("tech_background_share", snapshot.TechBackgroundShare),
		zap.Int("progression_sample_size", snapshot.Progression.SampleSize),
	)

	pretty, _ := json.MarshalIndent(snapshot.TopSkills(topN), "", "  ")
	logger.Info("most common cohort skills", zap.String("skills", string(pretty)))
}
