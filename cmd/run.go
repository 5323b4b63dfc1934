package cmd

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"strings"

	"github.com/hiringpartner/hiring-partner/internal/ai"
	"github.com/hiringpartner/hiring-partner/internal/ai/gemini"
	"github.com/hiringpartner/hiring-partner/internal/jobs"
	"github.com/hiringpartner/hiring-partner/internal/logger"
	"github.com/hiringpartner/hiring-partner/internal/report"
	"github.com/hiringpartner/hiring-partner/internal/secrets"
	"github.com/hiringpartner/hiring-partner/internal/session"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptEmailReport    = "Email the report"
	PromptShowSummary    = "Show candidate summary"
	PromptShowTranscript = "Show transcript"
	PromptQuit           = "Quit"

	emailBody = "Dear Candidate,\n\nAttached is your summary report from Hiring Partner.\n\n" +
		"Best regards,\nHiring Partner Team"
)

var errExit = errors.New("exit requested")

var completionPrompt = promptui.Select{
	Label: "Interview complete. What next?",
	Items: []string{PromptEmailReport, PromptShowSummary, PromptShowTranscript, PromptQuit},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an interactive candidate intake session",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("send-report", "s", false, "email the report automatically when the interview completes")
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	log, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		stdlog.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		log.Fatal("getting a config", zap.Error(err))
	}

	log.Info("starting the hiring-partner", zap.String("version", version))

	// The generation credential is the one fatal startup condition: without
	// it the interview cannot produce questions at all.
	apiKey, err := resolveGeminiKey(config.AI)
	if err != nil {
		log.Fatal(
			"loading gemini api key",
			zap.Error(err),
			zap.String("hint", "set GEMINI_API_KEY / GEMINI_API_KEY_FILE or the ai.gemini section in the configuration file"),
		)
	}

	provider := providerName(config.AI)
	if provider != "gemini" {
		log.Fatal("unsupported ai provider", zap.String("provider", config.AI.Provider))
	}

	genLogger := logger.WithCommonFields(log, provider, config.AI.Gemini.Model)
	generator, err := gemini.NewGenerator(ctx, apiKey, config.AI.Gemini.Model, config.AI.Gemini.MaxRetries, genLogger)
	if err != nil {
		log.Fatal("building gemini generator", zap.Error(err))
	}

	questions := ai.NewQuestions(generator, genLogger)
	machine := session.NewMachine(questions, jobs.NewBuilder(), log)
	mailer := buildMailer(config.Email, log)

	state := session.New()
	transcript := &session.Transcript{}

	log.Debug("session created", zap.String("session_id", state.ID))

	fmt.Printf("%s intake assistant. Say hi to begin, or type 'exit' at any time.\n\n", config.Assistant.Name)

	input := promptui.Prompt{Label: "You"}

	for !state.Ended {
		text, err := input.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				log.Info("exiting", zap.String("reason", "input closed"))
				return
			}
			log.Fatal("reading input", zap.Error(err))
		}

		transcript.Append(session.SpeakerUser, text)

		var reply string
		state, reply = machine.Advance(ctx, state, text)
		transcript.Append(session.SpeakerAssistant, reply)

		fmt.Printf("\n%s: %s\n\n", config.Assistant.Name, reply)
	}

	log.Info("interview finished",
		zap.String("session_id", state.ID),
		zap.Stringer("stage", state.Stage),
		zap.Int("turns", transcript.Len()),
	)

	if cmd.Flag("send-report").Value.String() == "true" {
		if err := emailReport(state, config.Email, mailer, log); err != nil {
			log.Warn("report delivery failed, it can be retried from the menu", zap.Error(err))
		}
	}

	for {
		_, action, err := completionPrompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) {
				return
			}
			log.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, state, transcript, config.Email, mailer, log); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			log.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, state session.State, transcript *session.Transcript, cfg *EmailConfig, mailer *report.Mailer, log *zap.Logger) error {
	switch action {
	case PromptEmailReport:
		if err := emailReport(state, cfg, mailer, log); err != nil {
			// Delivery failures are retryable; surface and stay in the menu.
			fmt.Printf("Sending the report failed (%v). You can retry.\n", err)
			log.Warn("report delivery failed", zap.Error(err))
		}
		return nil
	case PromptShowSummary:
		printSummary(state)
		return nil
	case PromptShowTranscript:
		for _, turn := range transcript.Turns() {
			fmt.Printf("[%s] %s\n", turn.Speaker, turn.Text)
		}
		return nil
	case PromptQuit:
		log.Info("exiting", zap.String("reason", "got quit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func emailReport(state session.State, cfg *EmailConfig, mailer *report.Mailer, log *zap.Logger) error {
	recipient := state.Profile.Email
	if recipient == "" {
		return errors.New("no email address collected for this candidate")
	}

	data := report.Assemble(state)

	pdf, err := report.RenderPDF(data)
	if err != nil {
		return err
	}

	if err := mailer.Send(recipient, cfg.Subject, emailBody, pdf); err != nil {
		return err
	}

	fmt.Printf("Report sent to %s\n", recipient)
	return nil
}

func printSummary(state session.State) {
	fmt.Println("Candidate Summary")
	for _, field := range state.Profile.Fields() {
		fmt.Printf("  %s: %s\n", field.Name, field.Value)
	}

	data := report.Assemble(state)

	fmt.Println("\nTechnical Questions")
	for _, q := range data.TechnicalQuestions {
		fmt.Printf("  - %s\n", q)
	}

	fmt.Println("\nCoding Questions")
	for _, q := range data.CodingQuestions {
		fmt.Printf("  - %s\n", q)
	}

	fmt.Println("\nJob Recommendations")
	for _, rec := range data.JobRecommendations {
		fmt.Println(rec)
	}
}

func resolveGeminiKey(cfg *AIConfig) (string, error) {
	if cfg == nil || cfg.Gemini == nil {
		return "", errors.New("gemini configuration is required")
	}

	return secrets.Load(secrets.Source{
		Name:  "gemini api key",
		File:  cfg.Gemini.APIKeyFile,
		Env:   "GEMINI_API_KEY",
		Value: cfg.Gemini.APIKey,
	})
}

func providerName(cfg *AIConfig) string {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider == "" {
		provider = "gemini"
	}
	return provider
}

// buildMailer resolves delivery credentials. Missing credentials degrade
// gracefully: the mailer is returned unconfigured and every send reports a
// retryable delivery error.
func buildMailer(cfg *EmailConfig, log *zap.Logger) *report.Mailer {
	password, err := secrets.Load(secrets.Source{
		Name:  "sender password",
		File:  cfg.PasswordFile,
		Env:   "SENDER_PASSWORD",
		Value: cfg.Password,
	})
	if err != nil || cfg.From == "" {
		log.Warn("email delivery is not configured, report sending will fail until it is",
			zap.String("hint", "set SENDER_EMAIL and SENDER_PASSWORD or the email section in the configuration file"),
		)
	}

	return report.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.From, password, log)
}
