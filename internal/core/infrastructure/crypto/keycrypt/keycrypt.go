// Package keycrypt 提供NeoC系统的密码保护私钥编解码实现
//
// 加密流程（NEP2风格）：
//  1. 由私钥推导链上地址文本
//  2. address_hash = DoubleSHA256(地址ASCII)[0:4]，兼作完整性前缀与KDF盐值
//  3. scrypt(password, salt=address_hash) 派生64字节密钥材料，对半切分
//  4. 私钥与derived1异或，再用derived2做AES-256-ECB加密（32字节即两个
//     密码块，无IV、无填充，块密码仅作带密钥置换使用）
//  5. 按固定布局拼装记录并做Base58编码输出
//
// 解密为精确逆运算；解密后重推地址并核对address_hash，不匹配时统一
// 报告认证失败，不区分密码错误与数据损坏，避免预言机行为。
package keycrypt

import (
	"crypto/aes"
	"errors"
	"fmt"

	"golang.org/x/crypto/scrypt"

	"github.com/r3e-network/NeoC-sub001/internal/core/infrastructure/crypto/address"
	"github.com/r3e-network/NeoC-sub001/internal/core/infrastructure/crypto/base58"
	"github.com/r3e-network/NeoC-sub001/internal/core/infrastructure/crypto/hash"
	"github.com/r3e-network/NeoC-sub001/internal/core/infrastructure/crypto/key"
	cryptointf "github.com/r3e-network/NeoC-sub001/pkg/interfaces/infrastructure/crypto"
)

// 错误定义
var (
	// ErrInvalidPassword 密码为空
	ErrInvalidPassword = errors.New("密码不能为空")
	// ErrInvalidRecord 记录布局损坏（长度、版本或标志字节错误）
	ErrInvalidRecord = errors.New("无效的加密密钥记录")
	// ErrAuthenticationFailed 地址哈希核对失败（密码错误或数据损坏）
	ErrAuthenticationFailed = errors.New("认证失败：密码错误或数据损坏")
)

// 加密密钥记录布局常量
//
// [版本/格式: 2][标志: 1][address_hash: 4][密文载荷: 32] = 39字节
const (
	recordPrefix0 = 0x01
	recordPrefix1 = 0x42
	recordFlag    = 0xE0

	addressHashLength = 4
	payloadLength     = 32
	recordLength      = 3 + addressHashLength + payloadLength

	// derivedKeyLength scrypt派生密钥材料总长（对半切分为两个32字节）
	derivedKeyLength = 64
)

// KeyCryptService 密码保护私钥编解码服务
//
// 编排摘要引擎、Base58编解码、地址推导与外部KDF/块密码原语。
type KeyCryptService struct {
	keyManager     *key.KeyManager
	addressService *address.AddressService
	hashService    *hash.HashService
	profile        cryptointf.KeyCryptProfile
}

// 确保KeyCryptService实现了cryptointf.KeyCryptManager接口
var _ cryptointf.KeyCryptManager = (*KeyCryptService)(nil)

// NewKeyCryptService 创建新的密钥加密服务（默认ProfileChecked外层编码）
func NewKeyCryptService(keyManager *key.KeyManager, addressService *address.AddressService) *KeyCryptService {
	return NewKeyCryptServiceWithProfile(keyManager, addressService, cryptointf.ProfileChecked)
}

// NewKeyCryptServiceWithProfile 创建指定外层编码模式的密钥加密服务
//
// ProfileChecked：记录整体再做Base58Check（标准布局，产生6P开头的字符串）。
// ProfilePlain：裸Base58，仅依赖记录内部address_hash自校验。
// 两种模式各自内部一致，不能交叉解码。
func NewKeyCryptServiceWithProfile(keyManager *key.KeyManager, addressService *address.AddressService, profile cryptointf.KeyCryptProfile) *KeyCryptService {
	return &KeyCryptService{
		keyManager:     keyManager,
		addressService: addressService,
		hashService:    hash.NewHashService(),
		profile:        profile,
	}
}

// EncryptKey 使用默认成本参数加密私钥
func (s *KeyCryptService) EncryptKey(password string, privateKey []byte) (string, error) {
	return s.EncryptKeyWithParams(password, privateKey, cryptointf.DefaultScryptParams())
}

// EncryptKeyWithParams 使用指定成本参数加密私钥
//
// 参数:
//   - password: 口令（非空）
//   - privateKey: 32字节私钥
//   - params: scrypt成本三元组
//
// 返回:
//   - string: Base58编码的加密密钥记录
//   - error: 参数无效或KDF失败时的错误
func (s *KeyCryptService) EncryptKeyWithParams(password string, privateKey []byte, params cryptointf.ScryptParams) (string, error) {
	if password == "" {
		return "", ErrInvalidPassword
	}
	if err := s.keyManager.ValidatePrivateKey(privateKey); err != nil {
		return "", err
	}

	// 推导地址并计算4字节完整性前缀
	addr, err := s.addressService.PrivateKeyToAddress(privateKey)
	if err != nil {
		return "", fmt.Errorf("推导地址失败: %w", err)
	}
	addressHash := s.hashService.Checksum([]byte(addr))

	derived1, derived2, err := s.deriveKeyMaterial(password, addressHash[:], params)
	if err != nil {
		return "", err
	}

	// 私钥与derived1异或后用derived2做AES-256-ECB加密
	intermediate := make([]byte, payloadLength)
	for i := 0; i < payloadLength; i++ {
		intermediate[i] = privateKey[i] ^ derived1[i]
	}
	encrypted, err := ecbTransform(derived2, intermediate, true)
	zeroBytes(intermediate)
	zeroBytes(derived1)
	zeroBytes(derived2)
	if err != nil {
		return "", err
	}

	// 拼装固定布局记录
	record := make([]byte, 0, recordLength)
	record = append(record, recordPrefix0, recordPrefix1, recordFlag)
	record = append(record, addressHash[:]...)
	record = append(record, encrypted...)

	if s.profile == cryptointf.ProfilePlain {
		return base58.Encode(record), nil
	}
	return base58.CheckEncode(record), nil
}

// DecryptKey 使用默认成本参数解密私钥
func (s *KeyCryptService) DecryptKey(password string, encrypted string) ([cryptointf.PrivateKeyLength]byte, error) {
	return s.DecryptKeyWithParams(password, encrypted, cryptointf.DefaultScryptParams())
}

// DecryptKeyWithParams 使用指定成本参数解密私钥
//
// 成本参数必须与加密时一致，否则派生密钥不同，统一表现为认证失败。
//
// 返回:
//   - [32]byte: 解密出的私钥
//   - error: ErrInvalidRecord（布局损坏）/ ErrAuthenticationFailed（密码
//     错误或数据损坏，二者不作区分）
func (s *KeyCryptService) DecryptKeyWithParams(password string, encrypted string, params cryptointf.ScryptParams) ([cryptointf.PrivateKeyLength]byte, error) {
	var privateKey [cryptointf.PrivateKeyLength]byte

	if password == "" {
		return privateKey, ErrInvalidPassword
	}

	record, err := s.decodeRecord(encrypted)
	if err != nil {
		return privateKey, err
	}

	addressHash := record[3 : 3+addressHashLength]
	payload := record[3+addressHashLength:]

	derived1, derived2, err := s.deriveKeyMaterial(password, addressHash, params)
	if err != nil {
		return privateKey, err
	}

	decrypted, err := ecbTransform(derived2, payload, false)
	zeroBytes(derived2)
	if err != nil {
		zeroBytes(derived1)
		return privateKey, err
	}
	for i := 0; i < payloadLength; i++ {
		privateKey[i] = decrypted[i] ^ derived1[i]
	}
	zeroBytes(decrypted)
	zeroBytes(derived1)

	// 自校验：重推地址并核对存储的address_hash。
	// 地址推导失败（候选私钥超出曲线范围）与哈希不匹配统一报告，
	// 不向调用方泄露失败的具体环节。
	addr, err := s.addressService.PrivateKeyToAddress(privateKey[:])
	if err != nil {
		zeroArray(&privateKey)
		return [cryptointf.PrivateKeyLength]byte{}, ErrAuthenticationFailed
	}
	expected := s.hashService.Checksum([]byte(addr))
	if !hash.ConstantTimeCompare(addressHash, expected[:]) {
		zeroArray(&privateKey)
		return [cryptointf.PrivateKeyLength]byte{}, ErrAuthenticationFailed
	}

	return privateKey, nil
}

// decodeRecord 按外层编码模式解码并校验记录布局
func (s *KeyCryptService) decodeRecord(encrypted string) ([]byte, error) {
	var record []byte
	var err error
	if s.profile == cryptointf.ProfilePlain {
		record, err = base58.Decode(encrypted)
	} else {
		record, err = base58.CheckDecode(encrypted)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	if len(record) != recordLength {
		return nil, fmt.Errorf("%w: 长度%d, 期望%d字节", ErrInvalidRecord, len(record), recordLength)
	}
	if record[0] != recordPrefix0 || record[1] != recordPrefix1 {
		return nil, fmt.Errorf("%w: 版本字节0x%02x%02x", ErrInvalidRecord, record[0], record[1])
	}
	if record[2] != recordFlag {
		return nil, fmt.Errorf("%w: 标志字节0x%02x", ErrInvalidRecord, record[2])
	}
	return record, nil
}

// deriveKeyMaterial 执行scrypt派生并对半切分密钥材料
//
// KDF是整个工具箱中唯一成本可调的操作，其目的就是拖慢离线口令
// 猜测；需要约束时延的调用方应降低成本参数，而不是并发化。
func (s *KeyCryptService) deriveKeyMaterial(password string, salt []byte, params cryptointf.ScryptParams) ([]byte, []byte, error) {
	derived, err := scrypt.Key([]byte(password), salt, params.N, params.R, params.P, derivedKeyLength)
	if err != nil {
		return nil, nil, fmt.Errorf("scrypt密钥派生失败: %w", err)
	}
	return derived[:payloadLength], derived[payloadLength:], nil
}

// ecbTransform 以原始单块模式执行AES-256变换
//
// 32字节载荷视作两个独立的密码块，无IV、无填充、无模式链接。
func ecbTransform(aesKey []byte, data []byte, encrypt bool) ([]byte, error) {
	block, err := aes.NewCipher(aesKey)
	if err != nil {
		return nil, fmt.Errorf("初始化块密码失败: %w", err)
	}

	out := make([]byte, len(data))
	for off := 0; off < len(data); off += block.BlockSize() {
		if encrypt {
			block.Encrypt(out[off:], data[off:])
		} else {
			block.Decrypt(out[off:], data[off:])
		}
	}
	return out, nil
}

// zeroBytes 清除敏感中间数据
func zeroBytes(data []byte) {
	for i := range data {
		data[i] = 0
	}
}

// zeroArray 清除定长私钥缓冲区
func zeroArray(data *[cryptointf.PrivateKeyLength]byte) {
	for i := range data {
		data[i] = 0
	}
}
