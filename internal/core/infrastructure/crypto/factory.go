// Package crypto 提供加密服务工厂实现
package crypto

import (
	"github.com/r3e-network/NeoC-sub001/internal/core/infrastructure/crypto/address"
	"github.com/r3e-network/NeoC-sub001/internal/core/infrastructure/crypto/hash"
	"github.com/r3e-network/NeoC-sub001/internal/core/infrastructure/crypto/key"
	"github.com/r3e-network/NeoC-sub001/internal/core/infrastructure/crypto/keycrypt"
	"github.com/r3e-network/NeoC-sub001/internal/core/infrastructure/crypto/signature"
	cryptointf "github.com/r3e-network/NeoC-sub001/pkg/interfaces/infrastructure/crypto"
	log "github.com/r3e-network/NeoC-sub001/pkg/interfaces/infrastructure/log"
)

// ServiceInput 定义加密服务工厂的输入参数
type ServiceInput struct {
	Logger  log.Logger                 // 可选，nil时回退到noopLogger
	Profile cryptointf.KeyCryptProfile // 加密密钥记录的外层编码模式
}

// ServiceOutput 定义加密服务工厂的输出结果
type ServiceOutput struct {
	HashManager      cryptointf.HashManager
	KeyManager       cryptointf.KeyManager
	AddressManager   cryptointf.AddressManager
	SignatureManager cryptointf.SignatureManager
	KeyCryptManager  cryptointf.KeyCryptManager
}

// CreateCryptoServices 创建加密服务
//
// 🏭 **加密服务工厂**：
// 负责创建加密模块的所有服务并处理服务间依赖关系，
// 将服务创建逻辑从module.go分离出来，保持module.go的薄实现。
//
// 参数：
//   - input: 服务创建所需的输入参数
//
// 返回：
//   - ServiceOutput: 创建的服务实例集合
//   - error: 创建过程中的错误
func CreateCryptoServices(input ServiceInput) (ServiceOutput, error) {
	// 初始化日志（处理可选Logger）
	var logger log.Logger
	if input.Logger != nil {
		logger = input.Logger.With("module", "crypto")
		logger.Info("初始化加密模块")
	} else {
		logger = &noopLogger{}
	}

	hashService := hash.NewHashService()
	keyManager := key.NewKeyManager()
	addressService := address.NewAddressService(keyManager)
	signatureService := signature.NewSignatureService(keyManager)
	keyCryptService := keycrypt.NewKeyCryptServiceWithProfile(keyManager, addressService, input.Profile)

	logger.Debugf("加密模块服务就绪: profile=%d", input.Profile)

	return ServiceOutput{
		HashManager:      hashService,
		KeyManager:       keyManager,
		AddressManager:   addressService,
		SignatureManager: signatureService,
		KeyCryptManager:  keyCryptService,
	}, nil
}
