package main

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jingkaihe/claudelist/pkg/catalog"
	"github.com/jingkaihe/claudelist/pkg/config"
	"github.com/jingkaihe/claudelist/pkg/logger"
	"github.com/jingkaihe/claudelist/pkg/output"
	"github.com/jingkaihe/claudelist/pkg/presenter"
	"github.com/jingkaihe/claudelist/pkg/service"
)

// GlobalConfig holds the settings shared by every subcommand.
type GlobalConfig struct {
	Format  output.Format
	Verbose bool
	Config  config.Config
}

var (
	// appConfig is loaded before any subcommand runs.
	appConfig config.Config

	// maxSuggestions is updated once the configuration is loaded so that errors
	// raised before that still get a sensible hint limit.
	maxSuggestions = config.DefaultMaxSuggestions
)

var rootCmd = &cobra.Command{
	Use:   "claudelist",
	Short: "List and inspect local Claude skills and MCP servers",
	Long: `claudelist discovers the skills installed under ~/.claude/skills and the MCP
servers configured in ~/.claude/settings.json and ~/.claude/mcp.json.

Running claudelist without a subcommand lists everything.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd.Flags())
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runList(cmd, listAll)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolP("json", "j", false, "Output in JSON format (shorthand for --output json)")
	flags.StringP("output", "o", string(output.FormatTable), "Output format: table, json or yaml")
	flags.BoolP("verbose", "v", false, "Show extra columns in table output")
	flags.BoolP("quiet", "q", false, "Suppress hints and warnings on stderr")
	flags.String("claude-dir", "", "Claude configuration directory (default ~/.claude)")
	flags.String("profile", "", "Named configuration profile to apply")
	flags.String("log-level", "", "Log level (panic, fatal, error, warn, info, debug, trace)")
	flags.String("log-format", "", "Log format (text or json)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(skillsCmd)
	rootCmd.AddCommand(mcpsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(versionCmd)
}

// bindFlags binds every flag in fs to its config key.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var bindErr error
	fs.VisitAll(func(f *pflag.Flag) {
		if bindErr != nil {
			return
		}
		if err := v.BindPFlag(config.FlagKey(f.Name), f); err != nil {
			bindErr = errors.Wrapf(err, "failed to bind flag --%s", f.Name)
		}
	})
	return bindErr
}

func loadConfig(flags *pflag.FlagSet) error {
	presenter.SetQuiet(viper.GetBool("quiet"))

	cfg, err := config.Load(viper.GetViper(), flags)
	if err != nil {
		return err
	}
	appConfig = cfg
	maxSuggestions = cfg.MaxSuggestions
	return errors.Wrap(logger.Configure(cfg.LogLevel, cfg.LogFormat), "invalid log configuration")
}

func getGlobalConfig() (*GlobalConfig, error) {
	format := output.FormatJSON
	if !viper.GetBool("json") {
		var err error
		format, err = output.ParseFormat(viper.GetString("output"))
		if err != nil {
			return nil, err
		}
	}

	return &GlobalConfig{
		Format:  format,
		Verbose: viper.GetBool("verbose"),
		Config:  appConfig,
	}, nil
}

func newService(ctx context.Context, cfg config.Config) (*service.Service, error) {
	local, err := catalog.NewLocal(cfg.CatalogOptions()...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize local catalog")
	}

	skillsDir := local.SkillsDir()
	primary, secondary := local.SettingsFiles()
	logger.G(ctx).
		WithField("claude_dir", local.ClaudeDir()).
		WithField("skills_dir", skillsDir).
		WithField("primary_settings", primary).
		WithField("secondary_settings", secondary).
		Debug("using local catalog")

	return service.NewLocal(local), nil
}

func reportError(err error) {
	presenter.Error(err, "claudelist")
	presenter.Suggestions(catalog.SuggestionsOf(err), maxSuggestions)
}

func run() int {
	v := viper.GetViper()
	if err := config.InitViper(v); err != nil {
		reportError(err)
		return 1
	}
	if err := bindFlags(v, rootCmd.PersistentFlags()); err != nil {
		reportError(err)
		return 1
	}

	ctx := logger.WithLogger(context.Background(), logger.L)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		reportError(err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}
