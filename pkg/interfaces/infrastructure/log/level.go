// Package log 提供NeoC系统的日志级别接口定义
//
// 📊 **日志级别管理 (Log Level Management)**
//
// 本文件定义了NeoC系统的日志级别常量，专注于：
// - 日志级别定义：提供标准的日志级别常量
// - 字符串转换：日志级别以字符串表示，便于配置
package log

// LogLevel 日志级别类型
type LogLevel string

// 标准日志级别常量
const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
	FatalLevel LogLevel = "fatal"
)
