package config

import (
	"fmt"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const (
	DefaultResources = "rsrc"
	DefaultDeckDir   = "deck"
	DefaultTable     = "deck.csv"
)

// DefaultTemplates holds the title and description anchors of every known card kind.
var DefaultTemplates = map[string]Template{
	"meta_rule": {Title: 170, Description: 250},
	"new_rule":  {Title: 270, Description: 330},
	"creeper":   {Title: 240, Description: 300},
	"keeper":    {Title: 240, Description: 300},
	"goal":      {Title: 230, Description: 300},
	"action":    {Title: 230, Description: 290},
	"surprise":  {Title: 230, Description: 290},
}

// SetDefaults registers the default value of every setting into v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("resources", DefaultResources)
	v.SetDefault("deckDir", DefaultDeckDir)
	v.SetDefault("pagesDir", ".")
	v.SetDefault("skipInvalidGoals", false)

	v.SetDefault("fonts.title.file", "trebucscbd.ttf")
	v.SetDefault("fonts.title.size", 26)
	v.SetDefault("fonts.body.file", "trebucsc.ttf")
	v.SetDefault("fonts.body.size", 16)

	v.SetDefault("text.color", "black")
	v.SetDefault("text.x", 90)
	v.SetDefault("text.titleWidth", 20)
	v.SetDefault("text.descriptionWidth", 35)
	v.SetDefault("text.titleLineShift", 35)
	v.SetDefault("text.lineSpacing", 4)

	v.SetDefault("card.dpi", 150)
	v.SetDefault("card.iconSize", 200)
	v.SetDefault("card.goalIconSize", 100)

	v.SetDefault("page.rows", 3)
	v.SetDefault("page.cols", 3)
	v.SetDefault("page.width", 8.5)
	v.SetDefault("page.height", 11.0)
	v.SetDefault("page.orientation", string(Portrait))
	v.SetDefault("page.background", "white")
	v.SetDefault("page.cutLines", false)

	templates := make(map[string]interface{}, len(DefaultTemplates))
	for kind, t := range DefaultTemplates {
		templates[kind] = map[string]interface{}{
			"title":       t.Title,
			"description": t.Description,
		}
	}
	v.SetDefault("templates", templates)
}

// Load reads file (if not empty) on top of the defaults and decodes the result.
func Load(v *viper.Viper, file string) (Config, error) {
	SetDefaults(v)
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("unable to read configuration file %s: %w", file, err)
		}
	}

	decodeHook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
		MapstructureStringToFloat64Expr(),
		MapstructureStringToColor(),
		MapstructureStringToOrientation(),
	)

	cfg := Config{}
	if err := v.Unmarshal(&cfg, viper.DecodeHook(decodeHook)); err != nil {
		return Config{}, fmt.Errorf("unable to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() Config {
	cfg, err := Load(viper.New(), "")
	if err != nil {
		panic(err) // defaults are always valid
	}
	return cfg
}

func (c Config) Validate() error {
	if c.Page.Rows <= 0 || c.Page.Cols <= 0 {
		return fmt.Errorf("invalid configuration: page rows and cols have to be > 0")
	}
	if c.Page.Width <= 0 || c.Page.Height <= 0 {
		return fmt.Errorf("invalid configuration: page width and height have to be > 0")
	}
	if c.Card.DPI <= 0 {
		return fmt.Errorf("invalid configuration: card dpi has to be > 0")
	}
	if c.Card.IconSize <= 0 || c.Card.GoalIconSize <= 0 {
		return fmt.Errorf("invalid configuration: icon sizes have to be > 0")
	}
	if c.DeckDir == "" {
		return fmt.Errorf("invalid configuration: deckDir cannot be empty")
	}
	if len(c.Templates) == 0 {
		return fmt.Errorf("invalid configuration: no card template defined")
	}
	return nil
}
