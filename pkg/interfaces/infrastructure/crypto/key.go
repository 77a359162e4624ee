// Package crypto 提供NeoC系统的密钥管理接口定义
//
// 🔑 **密钥管理服务 (Key Management Service)**
//
// 本文件定义了NeoC系统的密钥管理接口，专注于：
// - NIST P-256密钥对：链上唯一支持的椭圆曲线
// - 私钥校验：范围检查（非零且小于曲线阶）
// - 公钥格式：33字节压缩格式为标准，兼容65字节未压缩格式
// - 标准库互转：与crypto/ecdsa类型的双向转换
//
// 🔗 **组件关系**
// - KeyManager：被地址推导、签名服务和密钥加密编解码器使用
package crypto

import "crypto/ecdsa"

// 密钥长度常量
const (
	// PrivateKeyLength 私钥长度（32字节）
	PrivateKeyLength = 32
	// CompressedPublicKeyLength 压缩公钥长度（33字节）
	CompressedPublicKeyLength = 33
	// UncompressedPublicKeyLength 带前缀未压缩公钥长度（65字节）
	UncompressedPublicKeyLength = 65
)

// KeyManager 定义P-256密钥管理相关接口
type KeyManager interface {
	// GenerateKeyPair 生成新的ECDSA密钥对
	//
	// 返回:
	//   - [32]byte: 私钥
	//   - []byte: 33字节压缩公钥
	//   - error: 随机源失败时的错误
	GenerateKeyPair() ([PrivateKeyLength]byte, []byte, error)

	// DerivePublicKey 从私钥导出33字节压缩公钥
	DerivePublicKey(privateKey []byte) ([]byte, error)

	// ValidatePrivateKey 验证私钥有效性（长度、非零、小于曲线阶）
	ValidatePrivateKey(privateKey []byte) error

	// ValidatePublicKey 验证公钥有效性（格式与曲线成员性）
	ValidatePublicKey(publicKey []byte) error

	// CompressPublicKey 将未压缩公钥转换为33字节压缩格式
	CompressPublicKey(uncompressedKey []byte) ([]byte, error)

	// DecompressPublicKey 将33字节压缩公钥转换为65字节未压缩格式
	DecompressPublicKey(compressedKey []byte) ([]byte, error)

	// PrivateKeyToECDSA 将私钥字节转换为ECDSA私钥对象
	PrivateKeyToECDSA(privateKey []byte) (*ecdsa.PrivateKey, error)

	// PublicKeyToECDSA 将公钥字节（33或65字节）转换为ECDSA公钥对象
	PublicKeyToECDSA(publicKey []byte) (*ecdsa.PublicKey, error)
}
