// Package config はfcompコマンドの設定管理を行います
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-colorable"
	homedir "github.com/mitchellh/go-homedir"
	yaml "gopkg.in/yaml.v2"

	"github.com/shiroemons/go-fcomp/pkg/rle"
)

const Version = "1.0.0"

// DefaultSuffix は圧縮ファイルの既定の拡張子
const DefaultSuffix = ".rle"

// Config はアプリケーションの設定を保持します
type Config struct {
	Overflow string `yaml:"overflow"`
	Suffix   string `yaml:"suffix"`
	Debug    bool   `yaml:"debug"`
	Force    bool   `yaml:"force"`
	Quiet    bool   `yaml:"quiet"`

	// configPath は読み込んだ設定ファイルのパス
	configPath string `yaml:"-"`
}

// Default は既定の設定を返します
func Default() Config {
	return Config{
		Overflow: rle.OverflowSplit.String(),
		Suffix:   DefaultSuffix,
	}
}

// Path は読み込んだ設定ファイルのパスを返します
func (c *Config) Path() string {
	return c.configPath
}

// OverflowPolicy は Overflow を rle.OverflowPolicy に変換します
func (c *Config) OverflowPolicy() (rle.OverflowPolicy, error) {
	return rle.ParseOverflowPolicy(c.Overflow)
}

// Validate は設定値を検証します
func (c *Config) Validate() error {
	if _, err := c.OverflowPolicy(); err != nil {
		return fmt.Errorf("overflow: %w", err)
	}
	if c.Suffix == "" || c.Suffix[0] != '.' {
		return fmt.Errorf("suffix %q must start with '.'", c.Suffix)
	}
	return nil
}

// ReadConfig は設定ファイルを読み込みます。
// cfgPath が空の場合は既定のパスを使い、ファイルがなければ既定値を返します。
func ReadConfig(cfgPath string) (Config, error) {
	resolvedPath, err := resolveConfigPath(cfgPath)
	if err != nil {
		return Config{}, err
	}

	c := Default()
	c.configPath = resolvedPath

	file, err := os.Open(resolvedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return Config{}, fmt.Errorf("open config file: %w", err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&c); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if c.Suffix == "" {
		c.Suffix = DefaultSuffix
	}
	return c, nil
}

func resolveConfigPath(cfgPath string) (string, error) {
	if cfgPath == "" {
		return DefaultConfigPath()
	}
	expanded, err := homedir.Expand(cfgPath)
	if err != nil {
		return "", fmt.Errorf("expand config path: %w", err)
	}
	if _, err := os.Stat(expanded); err != nil {
		return "", fmt.Errorf("config file %q: %w", cfgPath, err)
	}
	return expanded, nil
}

// DefaultConfigPath は既定の設定ファイルのパスを返します
func DefaultConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".fcomp", "config.yaml"), nil
}

// DebugLogger はデバッグ出力を管理します
type DebugLogger struct {
	enabled bool
	w       io.Writer
}

// NewDebugLogger は標準エラー出力に書き込む新しいDebugLoggerを作成します
func NewDebugLogger(enabled bool) *DebugLogger {
	return NewDebugLoggerWithWriter(enabled, colorable.NewColorableStderr())
}

// NewDebugLoggerWithWriter は w に書き込む新しいDebugLoggerを作成します
func NewDebugLoggerWithWriter(enabled bool, w io.Writer) *DebugLogger {
	return &DebugLogger{enabled: enabled, w: w}
}

// Printf はデバッグモードが有効な場合のみメッセージを表示します
func (d *DebugLogger) Printf(format string, a ...any) {
	if d.enabled {
		fmt.Fprintf(d.w, format, a...)
	}
}
