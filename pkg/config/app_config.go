package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// 默认窗口尺寸
const (
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
	DefaultSaveApp      = "galaxy_defender"
)

// AppConfig 应用启动配置
//
// 来源优先级（高到低）：命令行参数 > 环境变量 GALAXY_* > galaxy.yaml > 默认值
type AppConfig struct {
	Profile     string  `mapstructure:"profile"`     // 内置调参档案名
	ProfileFile string  `mapstructure:"profileFile"` // 自定义档案路径，优先于 Profile
	Verbose     bool    `mapstructure:"verbose"`
	Width       int     `mapstructure:"width"`
	Height      int     `mapstructure:"height"`
	Fullscreen  bool    `mapstructure:"fullscreen"`
	Mute        bool    `mapstructure:"mute"`
	Volume      float64 `mapstructure:"volume"`  // 音效音量 0.0 ~ 1.0
	SaveApp     string  `mapstructure:"saveApp"` // gdata 应用名（最高分存储目录）
	Seed        int64   `mapstructure:"seed"`    // 随机种子，0 表示按时间
}

// flagKeys 命令行参数名 -> 配置键
var flagKeys = map[string]string{
	"profile":      "profile",
	"profile-file": "profileFile",
	"verbose":      "verbose",
	"width":        "width",
	"height":       "height",
	"fullscreen":   "fullscreen",
	"mute":         "mute",
	"volume":       "volume",
	"save-app":     "saveApp",
	"seed":         "seed",
}

// NewViper 创建带默认值的 viper 实例
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("profile", DefaultProfile)
	v.SetDefault("profileFile", "")
	v.SetDefault("verbose", false)
	v.SetDefault("width", DefaultWindowWidth)
	v.SetDefault("height", DefaultWindowHeight)
	v.SetDefault("fullscreen", false)
	v.SetDefault("mute", false)
	v.SetDefault("volume", 0.6)
	v.SetDefault("saveApp", DefaultSaveApp)
	v.SetDefault("seed", 0)

	v.SetEnvPrefix("GALAXY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// RegisterFlags 在 FlagSet 上注册所有启动参数
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("profile", DefaultProfile, "tuning profile: "+strings.Join(ProfileNames(), ", "))
	fs.String("profile-file", "", "path to a custom tuning profile (YAML)")
	fs.BoolP("verbose", "v", false, "enable verbose logging")
	fs.Int("width", DefaultWindowWidth, "initial window width")
	fs.Int("height", DefaultWindowHeight, "initial window height")
	fs.Bool("fullscreen", false, "start in fullscreen")
	fs.Bool("mute", false, "disable sound effects")
	fs.Float64("volume", 0.6, "sound effect volume (0.0 - 1.0)")
	fs.String("save-app", DefaultSaveApp, "storage app name for the high score")
	fs.Int64("seed", 0, "random seed (0 = time based)")
}

// BindFlags 将已注册的参数绑定到 viper 键上
// 只有显式设置的参数才会覆盖配置文件和环境变量
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for flagName, key := range flagKeys {
		f := fs.Lookup(flagName)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flagName, err)
		}
	}
	return nil
}

// LoadAppConfig 读取可选的 galaxy.yaml 并生成 AppConfig
//
// 参数：
//   - v: NewViper 创建的实例（可能已 BindFlags）
//   - searchDirs: 额外的配置文件搜索目录；为空时搜索当前目录和用户配置目录
func LoadAppConfig(v *viper.Viper, searchDirs ...string) (*AppConfig, error) {
	v.SetConfigName("galaxy")
	v.SetConfigType("yaml")
	if len(searchDirs) == 0 {
		searchDirs = append(searchDirs, ".")
		if dir, err := os.UserConfigDir(); err == nil {
			searchDirs = append(searchDirs, filepath.Join(dir, "galaxy-defender"))
		}
	}
	for _, dir := range searchDirs {
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *AppConfig) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("volume must be in [0,1], got %v", c.Volume)
	}
	if c.SaveApp == "" {
		return fmt.Errorf("saveApp cannot be empty")
	}
	return nil
}

// LoadSelectedProfile 按配置加载调参档案
func (c *AppConfig) LoadSelectedProfile() (*Profile, error) {
	if c.ProfileFile != "" {
		return LoadProfileFile(c.ProfileFile)
	}
	return LoadProfile(c.Profile)
}
