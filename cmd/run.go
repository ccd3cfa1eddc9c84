package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/pawquiz/internal/app"
	"github.com/abhisek/pawquiz/internal/config"
	"github.com/abhisek/pawquiz/internal/logger"
	"github.com/abhisek/pawquiz/internal/questions"
	"github.com/abhisek/pawquiz/internal/quiz"
)

// runApp loads config and questions, builds the logger and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Log, cfg.Env)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	qs, err := loadQuestions(cfg)
	if err != nil {
		return err
	}
	log.Info("starting pawquiz",
		zap.String("version", version),
		zap.String("questions", questionsSource(cfg)),
		zap.Int("count", len(qs)))

	return app.Run(app.Options{
		Questions:  qs,
		QuizConfig: cfg.QuizConfig(),
		Logger:     log,
	})
}

// loadQuestions returns the configured bank, or the built-in one.
func loadQuestions(cfg *config.Config) ([]quiz.Question, error) {
	if cfg.QuestionsPath == "" {
		return questions.Default(), nil
	}
	qs, err := questions.Load(cfg.QuestionsPath)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	return qs, nil
}

func questionsSource(cfg *config.Config) string {
	if cfg.QuestionsPath == "" {
		return "built-in"
	}
	return cfg.QuestionsPath
}
