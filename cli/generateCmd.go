package cli

import (
	"github.com/nmaupu/gofluxx/config"
	"github.com/nmaupu/gofluxx/deck"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	ViperConfigKey = "gofluxxConfig"

	generateCmd = &cobra.Command{
		Use:   "generate INPUT_DIR [TABLE]",
		Short: "Render every card of a deck table and tile them onto printable pages",
		Long: `Render every card described in INPUT_DIR/TABLE (default deck.csv) into the deck directory,
then lay the cards out on letter pages written as page_NN.png.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return err
			}
			return generateCmdFunc(args)
		},
	}

	cfgFile  string
	outFile  string
	cutLines bool
)

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&cfgFile, ConfigFlag, "c", "", "Config file to use (defaults are used when not provided)")
	generateCmd.Flags().StringVarP(&outFile, OutputFlag, "o", "", "Also gather all pages into this PDF file")
	generateCmd.Flags().BoolVarP(&cutLines, CutLinesFlag, "k", false, "Draw cut lines around cards")
}

func initConfig() error {
	v := viper.New()
	v.SetEnvPrefix(AppName)
	v.AutomaticEnv()

	readCfgLogger := log.With().Str("config", cfgFile).Logger()
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		readCfgLogger.Error().Err(err).Msg("Unable to load configuration")
		return err
	}

	if cutLines {
		cfg.Page.CutLines = true
	}
	readCfgLogger.Debug().
		Str("resources", cfg.Resources).
		Str("deck", cfg.DeckDir).
		Int("rows", cfg.Page.Rows).
		Int("cols", cfg.Page.Cols).
		Msg("Configuration loaded")

	viper.Set(ViperConfigKey, cfg)
	viper.Set(OutputFlag, outFile)
	return nil
}

func generateCmdFunc(args []string) error {
	cfg := viper.Get(ViperConfigKey).(config.Config)

	opts := deck.Options{
		InputDir: args[0],
		Table:    config.DefaultTable,
		PDF:      viper.GetString(OutputFlag),
	}
	if len(args) > 1 {
		opts.Table = args[1]
	}

	res, err := deck.Build(cfg, opts)
	if err != nil {
		return err
	}

	log.Info().
		Int("cards", len(res.Cards)).
		Int("skipped", res.Skipped).
		Int("pages", len(res.Pages)).
		Msg("Deck generated successfully")
	return nil
}
