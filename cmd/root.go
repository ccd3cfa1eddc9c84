package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/pawquiz/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "pawquiz",
	Short: "A tiny terminal quiz",
	Long:  "pawquiz runs a short terminal quiz with multi-select answers and an animated score reveal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ./pawquiz.yaml)")
	rootCmd.PersistentFlags().String("questions", "", "Path to a YAML or JSON question bank (overrides PAWQUIZ_QUESTIONS_PATH)")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file (overrides PAWQUIZ_LOG_FILE)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(questionsCmd)
}

// loadConfig reads the config file and env, then applies flag overrides,
// which take the highest priority.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if q, _ := cmd.Flags().GetString("questions"); q != "" {
		cfg.QuestionsPath = q
	}
	if l, _ := cmd.Flags().GetString("log-file"); l != "" {
		cfg.Log.File = l
	}
	return cfg, nil
}
