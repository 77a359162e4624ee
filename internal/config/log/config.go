// Package log 提供NeoC系统的日志配置
package log

import (
	"go.uber.org/zap/zapcore"
)

// 日志配置默认值
const (
	// defaultLogLevel 默认日志级别设为"info"
	// info级别平衡了信息量和性能，记录重要事件但不过于详细
	defaultLogLevel = "info"

	// defaultToConsole 默认启用控制台输出
	defaultToConsole = true

	// defaultMaxSize 单个日志文件最大大小（MB）
	defaultMaxSize = 100

	// defaultMaxBackups 最大备份文件数
	defaultMaxBackups = 10

	// defaultMaxAge 日志文件最大保留天数
	defaultMaxAge = 30

	// defaultCompress 默认启用历史日志压缩
	defaultCompress = true
)

// 日志级别映射
var levelMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
	"fatal": zapcore.FatalLevel,
}

// Config 日志配置
type Config struct {
	// Level 日志级别：debug/info/warn/error/fatal
	Level string
	// FilePath 日志文件路径；"stdout"/"stderr"或空表示仅控制台输出
	FilePath string
	// Console 是否同时输出到控制台
	Console bool
	// MaxSize 单个日志文件最大大小（MB）
	MaxSize int
	// MaxBackups 最多保留的备份文件数
	MaxBackups int
	// MaxAge 日志文件最大保留天数
	MaxAge int
	// Compress 是否压缩历史日志
	Compress bool
}

// New 创建日志配置，nil覆盖项时全部使用默认值
func New(override *Config) *Config {
	cfg := &Config{
		Level:      defaultLogLevel,
		FilePath:   "",
		Console:    defaultToConsole,
		MaxSize:    defaultMaxSize,
		MaxBackups: defaultMaxBackups,
		MaxAge:     defaultMaxAge,
		Compress:   defaultCompress,
	}
	if override == nil {
		return cfg
	}

	if override.Level != "" {
		cfg.Level = override.Level
	}
	if override.FilePath != "" {
		cfg.FilePath = override.FilePath
	}
	cfg.Console = override.Console
	if override.MaxSize > 0 {
		cfg.MaxSize = override.MaxSize
	}
	if override.MaxBackups > 0 {
		cfg.MaxBackups = override.MaxBackups
	}
	if override.MaxAge > 0 {
		cfg.MaxAge = override.MaxAge
	}
	if override.Compress {
		cfg.Compress = true
	}
	return cfg
}

// GetZapLevel 将配置的级别字符串转换为zap级别，未知级别回退到info
func (c *Config) GetZapLevel() zapcore.Level {
	if level, ok := levelMap[c.Level]; ok {
		return level
	}
	return zapcore.InfoLevel
}

// CreateConsoleEncoder 创建控制台输出编码器
func (c *Config) CreateConsoleEncoder() zapcore.Encoder {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	return zapcore.NewConsoleEncoder(encoderConfig)
}

// CreateFileEncoder 创建文件输出编码器（JSON格式，便于工具化处理）
func (c *Config) CreateFileEncoder() zapcore.Encoder {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	return zapcore.NewJSONEncoder(encoderConfig)
}
