// Package crypto 提供加密相关功能
package crypto

import (
	cryptointf "github.com/r3e-network/NeoC-sub001/pkg/interfaces/infrastructure/crypto"
	log "github.com/r3e-network/NeoC-sub001/pkg/interfaces/infrastructure/log"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// CryptoParams 定义加密模块的依赖参数
type CryptoParams struct {
	fx.In

	Logger  log.Logger                 `optional:"true"` // 日志记录器
	Profile cryptointf.KeyCryptProfile `optional:"true"` // 外层编码模式（零值为ProfileChecked）
}

// CryptoOutput 定义加密模块的输出结构
type CryptoOutput struct {
	fx.Out

	HashManager      cryptointf.HashManager
	KeyManager       cryptointf.KeyManager
	AddressManager   cryptointf.AddressManager
	SignatureManager cryptointf.SignatureManager
	KeyCryptManager  cryptointf.KeyCryptManager
}

// Module 返回加密模块
func Module() fx.Option {
	return fx.Module("crypto",
		fx.Provide(ProvideCryptoServices),
	)
}

// ProvideCryptoServices 提供加密服务
func ProvideCryptoServices(params CryptoParams) (CryptoOutput, error) {
	serviceOutput, err := CreateCryptoServices(ServiceInput{
		Logger:  params.Logger,
		Profile: params.Profile,
	})
	if err != nil {
		return CryptoOutput{}, err
	}

	return CryptoOutput{
		HashManager:      serviceOutput.HashManager,
		KeyManager:       serviceOutput.KeyManager,
		AddressManager:   serviceOutput.AddressManager,
		SignatureManager: serviceOutput.SignatureManager,
		KeyCryptManager:  serviceOutput.KeyCryptManager,
	}, nil
}

// noopLogger 是一个无操作的Logger实现，用于可选Logger为nil时的回退
type noopLogger struct{}

func (l *noopLogger) Debug(msg string)                          {}
func (l *noopLogger) Debugf(format string, args ...interface{}) {}
func (l *noopLogger) Info(msg string)                           {}
func (l *noopLogger) Infof(format string, args ...interface{})  {}
func (l *noopLogger) Warn(msg string)                           {}
func (l *noopLogger) Warnf(format string, args ...interface{})  {}
func (l *noopLogger) Error(msg string)                          {}
func (l *noopLogger) Errorf(format string, args ...interface{}) {}
func (l *noopLogger) Fatal(msg string)                          {}
func (l *noopLogger) Fatalf(format string, args ...interface{}) {}
func (l *noopLogger) With(keyvals ...interface{}) log.Logger    { return l }
func (l *noopLogger) Sync() error                               { return nil }
func (l *noopLogger) GetZapLogger() *zap.Logger                 { return nil }
