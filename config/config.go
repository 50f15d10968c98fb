// Package config はアプリケーション設定を管理します。
package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix は環境変数の接頭辞です。
const EnvPrefix = "EVENTGRAPHER"

// Config はアプリケーション全体の設定を保持します。
type Config struct {
	// 入力ファイルのパス
	InputFile string `mapstructure:"input_file"`

	// 集計対象の年（0なら最初のイベントの年）
	Year int `mapstructure:"year"`

	// タイムスタンプを解釈するタイムゾーン
	Timezone string `mapstructure:"timezone"`

	// HTTPサーバーのポート
	Port string `mapstructure:"port"`

	// renderコマンドの出力先
	Output string `mapstructure:"output"`
}

// 設定キーと環境変数、コマンドラインフラグの対応
var bindings = []struct {
	key  string
	env  string
	flag string
}{
	{"input_file", EnvPrefix + "_INPUT_FILE", "input"},
	{"year", EnvPrefix + "_YEAR", "year"},
	{"timezone", EnvPrefix + "_TIMEZONE", "timezone"},
	{"port", EnvPrefix + "_SERVER_PORT", "port"},
	{"output", EnvPrefix + "_OUTPUT", "output"},
}

// Load は既定値、環境変数、コマンドラインフラグの順に設定を読み込みます。
// flagsがnilの場合は環境変数のみを使用します。
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	for _, b := range bindings {
		if err := v.BindEnv(b.key, b.env); err != nil {
			return nil, fmt.Errorf("failed to bind env %s: %w", b.env, err)
		}
		if flags == nil {
			continue
		}
		// サブコマンドによって存在しないフラグもある
		if f := flags.Lookup(b.flag); f != nil {
			if err := v.BindPFlag(b.key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag --%s: %w", b.flag, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults は既定値を設定します。
func setDefaults(v *viper.Viper) {
	v.SetDefault("input_file", "input/input.txt")
	v.SetDefault("year", 0)
	v.SetDefault("timezone", "Local")
	v.SetDefault("port", "8080")
	v.SetDefault("output", "dashboard.svg")
}

// Validate は設定値を検証します。
func (c *Config) Validate() error {
	if c.InputFile == "" {
		return fmt.Errorf("input_file is required")
	}
	if c.Year < 0 || c.Year > 9999 {
		return fmt.Errorf("year must be between 0 and 9999")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	return nil
}

// Location はTimezoneに対応するtime.Locationを返します。
func (c *Config) Location() (*time.Location, error) {
	switch c.Timezone {
	case "", "Local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
