// Package address 提供NeoC系统的地址推导与校验实现
package address

import (
	"errors"
	"fmt"

	"github.com/r3e-network/NeoC-sub001/internal/core/infrastructure/crypto/base58"
	"github.com/r3e-network/NeoC-sub001/internal/core/infrastructure/crypto/hash"
	"github.com/r3e-network/NeoC-sub001/internal/core/infrastructure/crypto/key"
	cryptointf "github.com/r3e-network/NeoC-sub001/pkg/interfaces/infrastructure/crypto"
)

// 地址系统配置常量
const (
	// AddressVersion 地址版本字节
	AddressVersion = 0x35
	// ScriptHashLength 脚本哈希长度（20字节）
	ScriptHashLength = cryptointf.Digest160Length
)

// 单签验证脚本操作码
const (
	opPushData1 = 0x0C
	opSyscall   = 0x41
)

// checkSigSyscall System.Crypto.CheckSig互操作服务号（小端4字节）
var checkSigSyscall = [4]byte{0x56, 0xE7, 0xB3, 0x27}

// 错误定义
var (
	// ErrInvalidAddress 无效的地址格式
	ErrInvalidAddress = errors.New("invalid address format")
	// ErrInvalidAddressLength 无效的地址长度
	ErrInvalidAddressLength = errors.New("invalid address length")
	// ErrInvalidVersion 无效的版本字节
	ErrInvalidVersion = errors.New("invalid address version")
)

// AddressService 区块链地址管理服务
//
// 推导流程：
// 压缩公钥 → 单签验证脚本 → Hash160 → 版本字节+Base58Check → 标准地址
type AddressService struct {
	keyManager  *key.KeyManager
	hashService *hash.HashService
}

// 确保AddressService实现了AddressManager接口
var _ cryptointf.AddressManager = (*AddressService)(nil)

// NewAddressService 创建新的地址服务实例
//
// 参数：
//   - keyManager: 密钥管理器，用于私钥到公钥的转换
func NewAddressService(keyManager *key.KeyManager) *AddressService {
	return &AddressService{
		keyManager:  keyManager,
		hashService: hash.NewHashService(),
	}
}

// PrivateKeyToAddress 从私钥直接生成标准地址
//
// 参数：
//   - privateKey: 32字节P-256私钥
//
// 返回：
//   - string: 标准地址
//   - error: 私钥无效或推导失败
func (s *AddressService) PrivateKeyToAddress(privateKey []byte) (string, error) {
	publicKey, err := s.keyManager.DerivePublicKey(privateKey)
	if err != nil {
		return "", fmt.Errorf("从私钥导出公钥失败: %w", err)
	}

	return s.PublicKeyToAddress(publicKey)
}

// PublicKeyToAddress 从33字节压缩公钥生成标准地址
func (s *AddressService) PublicKeyToAddress(publicKey []byte) (string, error) {
	if len(publicKey) != cryptointf.CompressedPublicKeyLength {
		return "", fmt.Errorf("%w: expected %d bytes, got %d",
			key.ErrInvalidPublicKey, cryptointf.CompressedPublicKeyLength, len(publicKey))
	}

	script := VerificationScript(publicKey)
	scriptHash := s.hashService.Hash160(script)
	return s.ScriptHashToAddress(scriptHash), nil
}

// VerificationScript 构建单签验证脚本
//
// 布局：PUSHDATA1 0x21 <33字节公钥> SYSCALL System.Crypto.CheckSig
func VerificationScript(publicKey []byte) []byte {
	script := make([]byte, 0, 2+len(publicKey)+1+len(checkSigSyscall))
	script = append(script, opPushData1, byte(len(publicKey)))
	script = append(script, publicKey...)
	script = append(script, opSyscall)
	script = append(script, checkSigSyscall[:]...)
	return script
}

// ScriptHashToAddress 将20字节脚本哈希编码为标准地址
func (s *AddressService) ScriptHashToAddress(scriptHash [ScriptHashLength]byte) string {
	payload := make([]byte, 1+ScriptHashLength)
	payload[0] = AddressVersion
	copy(payload[1:], scriptHash[:])
	return base58.CheckEncode(payload)
}

// AddressToScriptHash 将地址解码为20字节脚本哈希
//
// 校验Base58Check校验和、版本字节与载荷长度。
func (s *AddressService) AddressToScriptHash(address string) ([ScriptHashLength]byte, error) {
	var scriptHash [ScriptHashLength]byte

	if address == "" {
		return scriptHash, ErrInvalidAddress
	}

	payload, err := base58.CheckDecode(address)
	if err != nil {
		return scriptHash, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if len(payload) != 1+ScriptHashLength {
		return scriptHash, fmt.Errorf("%w: got %d bytes", ErrInvalidAddressLength, len(payload))
	}
	if payload[0] != AddressVersion {
		return scriptHash, fmt.Errorf("%w: got 0x%02x", ErrInvalidVersion, payload[0])
	}

	copy(scriptHash[:], payload[1:])
	return scriptHash, nil
}

// ValidateAddress 验证地址格式和校验和
func (s *AddressService) ValidateAddress(address string) error {
	_, err := s.AddressToScriptHash(address)
	return err
}
