// Package main provides the entry point for the speechgen CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/koreanquiz/speechgen/internal/batch"
	"github.com/koreanquiz/speechgen/internal/hangul"
	"github.com/koreanquiz/speechgen/internal/store"
	"github.com/koreanquiz/speechgen/internal/synth/edge"
	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var (
	// Version as provided by goreleaser.
	Version = ""
	// CommitSHA as provided by goreleaser.
	CommitSHA = ""

	configFile        string
	force             bool
	dryRun            bool
	outputDir         string
	voice             string
	requestsPerMinute int

	rootCmd = &cobra.Command{
		Use:   "speechgen",
		Short: "Generate Korean learning audio, with Edge TTS",
		Long: paragraph(fmt.Sprintf(
			"\nGenerate the MP3 files the Korean learning app plays: letters, syllables, phrases and numbers, spoken by a %s voice. Files that already exist are skipped unless %s is given.",
			keyword("neural"), keyword("--force"),
		)),
		SilenceErrors:    false,
		SilenceUsage:     true,
		TraverseChildren: true,
		Args:             cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return validateOptions()
		},
		RunE: execute,
	}
)

func validateOptions() error {
	// grab config values from Viper
	force = viper.GetBool("force")
	outputDir = viper.GetString("output")
	voice = viper.GetString("voice")
	requestsPerMinute = viper.GetInt("requests_per_minute")

	if outputDir == "" {
		return errors.New("output directory cannot be empty")
	}
	if voice == "" {
		return errors.New("voice cannot be empty")
	}
	if requestsPerMinute < 1 || requestsPerMinute > 300 {
		return fmt.Errorf("requests_per_minute must be between 1 and 300, got %d", requestsPerMinute)
	}
	return nil
}

func execute(cmd *cobra.Command, _ []string) error {
	st, err := store.NewDiskStore(outputDir)
	if err != nil {
		return err
	}

	engine, err := edge.New(edge.Config{
		Voice:             voice,
		RequestsPerMinute: requestsPerMinute,
	})
	if err != nil {
		return fmt.Errorf("unable to create Edge TTS engine: %w", err)
	}
	defer engine.Close() //nolint:errcheck

	registry := hangul.Default()
	styled := term.IsTerminal(int(os.Stdout.Fd()))

	fmt.Printf("Korean audio generator (Edge TTS)\n")
	fmt.Printf("output directory: %s\n", st.Dir())
	fmt.Printf("voice: %s\n", engine.VoiceInfo().Voice)
	switch {
	case dryRun:
		fmt.Printf("dry-run mode: no audio will be generated\n")
	case force:
		fmt.Printf("force mode: regenerating ALL files\n")
	default:
		fmt.Printf("smart mode: skipping existing files\n")
	}
	fmt.Printf("\nprocessing %d items...\n", registry.Len())

	runner := batch.NewRunner(registry, engine, st, batch.Config{
		Force:  force,
		DryRun: dryRun,
		Styled: styled,
	}, log.Default(), os.Stdout)

	// Per-item failures are tallied, not returned: the run always
	// completes and exits zero after printing the summary.
	_, err = runner.Run(cmd.Context())
	return err
}

func main() {
	closer, err := setupLog()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		_ = closer()
		os.Exit(1)
	}
	_ = closer()
}

func init() {
	tryLoadConfigFromDefaultPlaces()
	if len(CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + CommitSHA[0:7] + ")\n")
	}
	if Version == "" {
		Version = "unknown (built from source)"
	}
	rootCmd.Version = Version
	rootCmd.InitDefaultCompletionCmd()

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", fmt.Sprintf("config file (default %s)", viper.GetViper().ConfigFileUsed()))
	rootCmd.Flags().BoolVarP(&force, "force", "f", false, "regenerate audio even if the file already exists")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would be generated without calling the service")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "korean_audio_assets", "output directory for generated audio")
	rootCmd.Flags().StringVar(&voice, "voice", edge.DefaultVoice, "Edge TTS neural voice")
	rootCmd.Flags().IntVar(&requestsPerMinute, "requests-per-minute", 50, "rate limit for Edge TTS requests")
	_ = rootCmd.Flags().MarkHidden("requests-per-minute")

	// Config bindings
	_ = viper.BindPFlag("force", rootCmd.Flags().Lookup("force"))
	_ = viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("voice", rootCmd.Flags().Lookup("voice"))
	_ = viper.BindPFlag("requests_per_minute", rootCmd.Flags().Lookup("requests-per-minute"))

	viper.SetDefault("force", false)
	viper.SetDefault("output", "korean_audio_assets")
	viper.SetDefault("voice", edge.DefaultVoice)
	viper.SetDefault("requests_per_minute", 50)

	rootCmd.AddCommand(configCmd, manCmd)
}

func tryLoadConfigFromDefaultPlaces() {
	scope := gap.NewScope(gap.User, "speechgen")
	dirs, err := scope.ConfigDirs()
	if err != nil {
		fmt.Println("Could not find configuration directory.")
		os.Exit(1)
	}

	if c := os.Getenv("XDG_CONFIG_HOME"); c != "" {
		dirs = append([]string{filepath.Join(c, "speechgen")}, dirs...)
	}

	if c := os.Getenv("SPEECHGEN_CONFIG_HOME"); c != "" {
		dirs = append([]string{c}, dirs...)
	}

	for _, v := range dirs {
		viper.AddConfigPath(v)
	}

	viper.SetConfigName("speechgen")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("speechgen")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warn("Could not parse configuration file", "err", err)
		}
	}

	if used := viper.ConfigFileUsed(); used != "" {
		log.Debug("Using configuration file", "path", viper.ConfigFileUsed())
		return
	}

	if viper.ConfigFileUsed() == "" {
		configFile = filepath.Join(dirs[0], "speechgen.yml")
	}
	if err := ensureConfigFile(); err != nil {
		log.Error("Could not create default configuration", "error", err)
	}
}
