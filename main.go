// Package main provides the entry point for the crtcast dashboard.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	gap "github.com/muesli/go-app-paths"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/dgnsrekt/crtcast/ui"
)

var (
	// Version as provided by goreleaser.
	Version = ""
	// CommitSHA as provided by goreleaser.
	CommitSHA = ""

	configFile string
	location   string
	engineName string
	noBoot     bool
	mono       bool
	width      uint

	rootCmd = &cobra.Command{
		Use:   "crtcast [LOCATION]",
		Short: "A retro terminal dashboard that talks back",
		Long: paragraph(
			fmt.Sprintf("\nDate, weather and headlines on a phosphor screen, %s through your machine's speech synthesizer.", keyword("narrated")),
		),
		SilenceErrors:    false,
		SilenceUsage:     true,
		TraverseChildren: true,
		Args:             cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return validateOptions(cmd)
		},
		RunE: execute,
	}
)

// engineNames are the accepted values for the --engine flag.
var engineNames = []string{"auto", "say", "espeak-ng", "espeak", "flite", "off"}

func validateOptions(cmd *cobra.Command) error {
	// grab config values from Viper
	width = viper.GetUint("width")
	mono = viper.GetBool("mono")
	engineName = viper.GetString("engine")
	if location == "" {
		location = viper.GetString("location")
	}

	if engineName != "" {
		valid := false
		for _, name := range engineNames {
			if engineName == name {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("unknown engine %q (supported: %s)", engineName, strings.Join(engineNames, ", "))
		}
	}

	// Detect terminal width
	if !cmd.Flags().Changed("width") { //nolint:nestif
		isTerminal := term.IsTerminal(int(os.Stdout.Fd()))
		if isTerminal && width == 0 {
			w, _, err := term.GetSize(int(os.Stdout.Fd()))
			if err == nil {
				width = uint(w) //nolint:gosec
			}

			if width > 120 {
				width = 120
			}
		}
		if width == 0 {
			width = 80
		}
	}
	return nil
}

func execute(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		location = args[0]
	}
	return runTUI()
}

func runTUI() error {
	// Read environment to get debugging stuff
	cfg, err := env.ParseAs[ui.Config]()
	if err != nil {
		return fmt.Errorf("error parsing config: %v", err)
	}

	cfg.Location = location
	cfg.Engine = engineName
	cfg.SkipBoot = noBoot
	cfg.Mono = mono || termenv.EnvColorProfile() == termenv.Ascii
	cfg.MaxWidth = width

	p, err := ui.NewProgram(cfg)
	if err != nil {
		return err
	}

	// Run Bubble Tea program
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("unable to run tui program: %w", err)
	}

	return nil
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
	rootCmd.Flags().StringVarP(&location, "location", "l", "", "location to commit at startup")
	rootCmd.Flags().StringVarP(&engineName, "engine", "e", "auto", "speech engine ("+strings.Join(engineNames, ", ")+")")
	rootCmd.Flags().BoolVar(&noBoot, "no-boot", false, "skip the boot sequence")
	rootCmd.Flags().BoolVarP(&mono, "mono", "m", false, "disable the phosphor color scheme")
	rootCmd.Flags().UintVarP(&width, "width", "w", 0, "max dashboard width (set to 0 to fill the terminal)")

	// Config bindings
	_ = viper.BindPFlag("location", rootCmd.Flags().Lookup("location"))
	_ = viper.BindPFlag("engine", rootCmd.Flags().Lookup("engine"))
	_ = viper.BindPFlag("mono", rootCmd.Flags().Lookup("mono"))
	_ = viper.BindPFlag("width", rootCmd.Flags().Lookup("width"))

	viper.SetDefault("engine", "auto")
	viper.SetDefault("mono", false)
	viper.SetDefault("width", 0)

	rootCmd.AddCommand(configCmd, manCmd)
}

func tryLoadConfigFromDefaultPlaces() {
	scope := gap.NewScope(gap.User, "crtcast")
	dirs, err := scope.ConfigDirs()
	if err != nil {
		fmt.Println("Could not load find configuration directory.")
		os.Exit(1)
	}

	if c := os.Getenv("XDG_CONFIG_HOME"); c != "" {
		dirs = append([]string{filepath.Join(c, "crtcast")}, dirs...)
	}

	if c := os.Getenv("CRTCAST_CONFIG_HOME"); c != "" {
		dirs = append([]string{c}, dirs...)
	}

	for _, v := range dirs {
		viper.AddConfigPath(v)
	}

	viper.SetConfigName("crtcast")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("crtcast")
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
		configFile = filepath.Join(dirs[0], "crtcast.yml")
	}
	if err := ensureConfigFile(); err != nil {
		log.Error("Could not create default configuration", "error", err)
	}
}
