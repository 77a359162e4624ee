package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	logconfig "github.com/r3e-network/NeoC-sub001/internal/config/log"
)

func TestNew_Defaults(t *testing.T) {
	logger, err := New(nil)
	if err != nil {
		t.Fatalf("创建默认日志记录器失败: %v", err)
	}
	if logger.GetZapLogger() == nil {
		t.Error("底层zap记录器不应为nil")
	}

	// 带字段的派生记录器
	child := logger.With("module", "test")
	if child == nil {
		t.Error("With 不应返回nil")
	}
}

func TestNew_FileOutput(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "neoc.log")

	logger, err := New(logconfig.New(&logconfig.Config{
		Level:    "debug",
		FilePath: logPath,
	}))
	if err != nil {
		t.Fatalf("创建文件日志记录器失败: %v", err)
	}

	logger.Info("文件输出测试")
	logger.Debugf("携带参数: %d", 42)
	_ = logger.Sync()

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("读取日志文件失败: %v", err)
	}
	if !strings.Contains(string(content), "文件输出测试") {
		t.Errorf("日志文件缺少预期内容: %s", content)
	}
}

func TestGlobalLogger(t *testing.T) {
	if GetLogger() == nil {
		t.Fatal("全局日志记录器应在init时就绪")
	}

	// 全局函数不应panic
	Debug("debug message")
	Infof("info %s", "message")
	Warn("warn message")
	Errorf("error %d", 1)
}

func TestConfigLevels(t *testing.T) {
	testCases := []struct {
		name  string
		level string
	}{
		{"debug级别", "debug"},
		{"info级别", "info"},
		{"warn级别", "warn"},
		{"error级别", "error"},
		{"未知级别回退", "verbose"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := logconfig.New(&logconfig.Config{Level: tc.level})
			logger, err := New(cfg)
			if err != nil {
				t.Fatalf("级别%q创建失败: %v", tc.level, err)
			}
			if logger == nil {
				t.Fatal("记录器不应为nil")
			}
		})
	}
}
