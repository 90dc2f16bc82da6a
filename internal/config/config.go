// Package config loads and validates pipeline configuration via Viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config captures every configuration knob loaded via Viper.
type Config struct {
	Crawler  CrawlerConfig  `mapstructure:"crawler"`
	Output   OutputConfig   `mapstructure:"output"`
	State    StateConfig    `mapstructure:"state"`
	Snapshot SnapshotConfig `mapstructure:"snapshot"`
	Ops      OpsConfig      `mapstructure:"ops"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Leagues  []LeagueConfig `mapstructure:"leagues"`
}

// CrawlerConfig governs fetch politeness and scope.
type CrawlerConfig struct {
	BaseURL          string `mapstructure:"base_url"`
	UserAgent        string `mapstructure:"user_agent"`
	AcceptLanguage   string `mapstructure:"accept_language"`
	TimeoutSeconds   int    `mapstructure:"timeout_seconds"`
	DelayMinMs       int    `mapstructure:"delay_min_ms"`
	DelayMaxMs       int    `mapstructure:"delay_max_ms"`
	CooldownSeconds  int    `mapstructure:"cooldown_seconds"`
	OneTeamPerLeague bool   `mapstructure:"one_team_per_league"`
}

// OutputConfig sets the sink directories.
type OutputConfig struct {
	NodeDir string `mapstructure:"node_dir"`
	RelDir  string `mapstructure:"rel_dir"`
}

// StateConfig selects and parameterizes the processed-id store.
type StateConfig struct {
	// Backend is "file" or "postgres".
	Backend     string `mapstructure:"backend"`
	TeamsFile   string `mapstructure:"teams_file"`
	PlayersFile string `mapstructure:"players_file"`
	DSN         string `mapstructure:"dsn"`
}

// SnapshotConfig controls raw-page archiving.
type SnapshotConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Backend is "local" or "gcs".
	Backend   string `mapstructure:"backend"`
	Dir       string `mapstructure:"dir"`
	GCSBucket string `mapstructure:"gcs_bucket"`
}

// OpsConfig controls the health/metrics HTTP listener.
type OpsConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}

// LoggingConfig toggles zap development features.
type LoggingConfig struct {
	Development bool `mapstructure:"development"`
}

// LeagueConfig is one league to walk. Leagues are a list, not a map:
// Viper case-folds map keys, and the display name is emitted verbatim
// into the sinks.
type LeagueConfig struct {
	Name    string `mapstructure:"name"`
	Path    string `mapstructure:"path"`
	Country string `mapstructure:"country"`
}

// Load builds a Config from disk/environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("KGCRAWL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("crawler.base_url", "https://www.transfermarkt.com")
	v.SetDefault("crawler.user_agent",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	v.SetDefault("crawler.accept_language", "en-US,en;q=0.9")
	v.SetDefault("crawler.timeout_seconds", 15)
	v.SetDefault("crawler.delay_min_ms", 600)
	v.SetDefault("crawler.delay_max_ms", 1200)
	v.SetDefault("crawler.cooldown_seconds", 60)
	v.SetDefault("crawler.one_team_per_league", false)
	v.SetDefault("output.node_dir", "tm_nodes")
	v.SetDefault("output.rel_dir", "tm_relationships")
	v.SetDefault("state.backend", "file")
	v.SetDefault("state.teams_file", "tm_processed_teams.txt")
	v.SetDefault("state.players_file", "tm_processed_players.txt")
	v.SetDefault("snapshot.enabled", false)
	v.SetDefault("snapshot.backend", "local")
	v.SetDefault("snapshot.dir", "tm_snapshots")
	v.SetDefault("ops.enabled", false)
	v.SetDefault("ops.port", 9090)
	v.SetDefault("logging.development", true)
	v.SetDefault("leagues", []map[string]string{
		{"name": "Botola Pro", "path": "/botola-pro-inwi/startseite/wettbewerb/MAR1", "country": "Morocco"},
		{"name": "Premier League", "path": "/premier-league/startseite/wettbewerb/GB1", "country": "England"},
		{"name": "La Liga", "path": "/laliga/startseite/wettbewerb/ES1", "country": "Spain"},
		{"name": "Serie A", "path": "/serie-a/startseite/wettbewerb/IT1", "country": "Italy"},
		{"name": "Bundesliga", "path": "/bundesliga/startseite/wettbewerb/L1", "country": "Germany"},
		{"name": "Ligue 1", "path": "/ligue-1/startseite/wettbewerb/FR1", "country": "France"},
	})
}

// Validate enforces required values and reasonable limits.
func (c Config) Validate() error {
	if c.Crawler.BaseURL == "" {
		return fmt.Errorf("crawler.base_url must be set")
	}
	if c.Crawler.TimeoutSeconds <= 0 {
		return fmt.Errorf("crawler.timeout_seconds must be > 0")
	}
	if c.Crawler.DelayMinMs < 0 || c.Crawler.DelayMaxMs < c.Crawler.DelayMinMs {
		return fmt.Errorf("crawler.delay_min_ms/delay_max_ms must satisfy 0 <= min <= max")
	}
	if len(c.Leagues) == 0 {
		return fmt.Errorf("at least one league must be configured")
	}
	for i, lg := range c.Leagues {
		if lg.Name == "" {
			return fmt.Errorf("league %d: name must be set", i)
		}
		if lg.Path == "" {
			return fmt.Errorf("league %q: path must be set", lg.Name)
		}
	}
	switch c.State.Backend {
	case "file":
		if c.State.TeamsFile == "" || c.State.PlayersFile == "" {
			return fmt.Errorf("state.teams_file and state.players_file must be set for the file backend")
		}
	case "postgres":
		if c.State.DSN == "" {
			return fmt.Errorf("state.dsn must be set for the postgres backend")
		}
	default:
		return fmt.Errorf("state.backend must be file or postgres, got %q", c.State.Backend)
	}
	if c.Snapshot.Enabled {
		switch c.Snapshot.Backend {
		case "local":
			if c.Snapshot.Dir == "" {
				return fmt.Errorf("snapshot.dir must be set for the local backend")
			}
		case "gcs":
			if c.Snapshot.GCSBucket == "" {
				return fmt.Errorf("snapshot.gcs_bucket must be set for the gcs backend")
			}
		default:
			return fmt.Errorf("snapshot.backend must be local or gcs, got %q", c.Snapshot.Backend)
		}
	}
	if c.Ops.Enabled && c.Ops.Port <= 0 {
		return fmt.Errorf("ops.port must be > 0 when ops is enabled")
	}
	return nil
}

// Timeout converts the configured request timeout.
func (c CrawlerConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DelayMin is the lower politeness-delay bound.
func (c CrawlerConfig) DelayMin() time.Duration {
	return time.Duration(c.DelayMinMs) * time.Millisecond
}

// DelayMax is the upper politeness-delay bound.
func (c CrawlerConfig) DelayMax() time.Duration {
	return time.Duration(c.DelayMaxMs) * time.Millisecond
}

// Cooldown is the fixed sleep after a 429 response.
func (c CrawlerConfig) Cooldown() time.Duration {
	return time.Duration(c.CooldownSeconds) * time.Second
}
