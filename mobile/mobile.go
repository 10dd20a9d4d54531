//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.galaxy -o build/android/galaxy.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Galaxy.xcframework -v ./mobile
package mobile

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/galaxy-defender/internal/logging"
	"github.com/decker502/galaxy-defender/pkg/app"
	"github.com/decker502/galaxy-defender/pkg/config"
)

func init() {
	logger := logging.New(true, os.Stderr)

	// 移动端没有命令行参数和配置文件，使用默认值和环境变量
	cfg, err := config.LoadAppConfig(config.NewViper(), os.TempDir())
	if err != nil {
		logger.Fatal().Err(err).Msg("配置加载失败")
	}

	gameApp, err := app.NewApp(app.Config{App: cfg, Logger: logger})
	if err != nil {
		logger.Fatal().Err(err).Msg("游戏初始化失败")
	}

	// 注册游戏到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
