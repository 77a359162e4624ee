// Package key 提供NeoC系统的P-256密钥管理实现
package key

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	cryptointf "github.com/r3e-network/NeoC-sub001/pkg/interfaces/infrastructure/crypto"
)

// 错误定义
var (
	ErrInvalidPrivateKey = errors.New("无效的私钥")
	ErrInvalidPublicKey  = errors.New("无效的公钥")
)

// KeyManager 提供密钥管理功能
//
// 链上唯一支持的曲线为NIST P-256（secp256r1），
// 所有密钥均为值类型，调用方持有缓冲区所有权。
type KeyManager struct {
	curve elliptic.Curve
}

// NewKeyManager 创建新的密钥管理器
func NewKeyManager() *KeyManager {
	return &KeyManager{
		curve: elliptic.P256(),
	}
}

// GenerateKeyPair 生成新的ECDSA密钥对
//
// 返回标准格式：
//   - 私钥：32字节
//   - 公钥：33字节压缩格式
//
// 返回:
//   - [32]byte: 私钥
//   - []byte: 33字节的压缩公钥
//   - error: 随机源失败时的错误
func (km *KeyManager) GenerateKeyPair() ([cryptointf.PrivateKeyLength]byte, []byte, error) {
	var privateKey [cryptointf.PrivateKeyLength]byte

	priv, err := ecdsa.GenerateKey(km.curve, rand.Reader)
	if err != nil {
		return privateKey, nil, fmt.Errorf("生成密钥对失败: %w", err)
	}

	priv.D.FillBytes(privateKey[:])
	publicKey := km.compressPoint(priv.X, priv.Y)

	// 清除临时私钥对象
	priv.D.SetInt64(0)

	return privateKey, publicKey, nil
}

// DerivePublicKey 从私钥导出公钥
//
// 参数:
//   - privateKey: 32字节的私钥数据
//
// 返回:
//   - []byte: 33字节压缩公钥
//   - error: 无效私钥时返回ErrInvalidPrivateKey
func (km *KeyManager) DerivePublicKey(privateKey []byte) ([]byte, error) {
	if err := km.ValidatePrivateKey(privateKey); err != nil {
		return nil, err
	}

	k := new(big.Int).SetBytes(privateKey)
	x, y := km.curve.ScalarBaseMult(k.Bytes())
	if x == nil || y == nil {
		return nil, ErrInvalidPrivateKey
	}
	k.SetInt64(0)

	return km.compressPoint(x, y), nil
}

// ValidatePrivateKey 验证私钥有效性
//
// 检查私钥是否为32字节、非零且小于P-256曲线阶。
func (km *KeyManager) ValidatePrivateKey(privateKey []byte) error {
	if len(privateKey) != cryptointf.PrivateKeyLength {
		return fmt.Errorf("%w: 长度%d, 期望%d字节", ErrInvalidPrivateKey, len(privateKey), cryptointf.PrivateKeyLength)
	}

	k := new(big.Int).SetBytes(privateKey)
	if k.Sign() == 0 {
		return fmt.Errorf("%w: 私钥不能为零", ErrInvalidPrivateKey)
	}
	if k.Cmp(km.curve.Params().N) >= 0 {
		return fmt.Errorf("%w: 私钥超出曲线阶", ErrInvalidPrivateKey)
	}

	return nil
}

// ValidatePublicKey 验证公钥有效性
//
// 支持33字节压缩和65字节未压缩格式，验证点的曲线成员性。
func (km *KeyManager) ValidatePublicKey(publicKey []byte) error {
	switch len(publicKey) {
	case cryptointf.CompressedPublicKeyLength:
		if publicKey[0] != 0x02 && publicKey[0] != 0x03 {
			return fmt.Errorf("%w: 压缩公钥前缀0x%02x", ErrInvalidPublicKey, publicKey[0])
		}
		x := new(big.Int).SetBytes(publicKey[1:])
		if _, err := km.decompressPoint(x, publicKey[0] == 0x03); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
		}
		return nil
	case cryptointf.UncompressedPublicKeyLength:
		if publicKey[0] != 0x04 {
			return fmt.Errorf("%w: 未压缩公钥前缀0x%02x", ErrInvalidPublicKey, publicKey[0])
		}
		x := new(big.Int).SetBytes(publicKey[1:33])
		y := new(big.Int).SetBytes(publicKey[33:65])
		if !km.curve.IsOnCurve(x, y) {
			return fmt.Errorf("%w: 点不在P-256曲线上", ErrInvalidPublicKey)
		}
		return nil
	default:
		return fmt.Errorf("%w: 长度%d, 期望%d或%d字节", ErrInvalidPublicKey,
			len(publicKey), cryptointf.CompressedPublicKeyLength, cryptointf.UncompressedPublicKeyLength)
	}
}

// CompressPublicKey 将未压缩公钥转换为压缩格式
//
// 参数:
//   - uncompressedKey: 65字节未压缩公钥（0x04前缀）
//
// 返回:
//   - []byte: 33字节压缩公钥
//   - error: 格式错误时返回错误
func (km *KeyManager) CompressPublicKey(uncompressedKey []byte) ([]byte, error) {
	if len(uncompressedKey) != cryptointf.UncompressedPublicKeyLength {
		return nil, fmt.Errorf("%w: 长度%d, 期望%d字节", ErrInvalidPublicKey,
			len(uncompressedKey), cryptointf.UncompressedPublicKeyLength)
	}
	if uncompressedKey[0] != 0x04 {
		return nil, fmt.Errorf("%w: 前缀0x%02x, 期望0x04", ErrInvalidPublicKey, uncompressedKey[0])
	}

	x := new(big.Int).SetBytes(uncompressedKey[1:33])
	y := new(big.Int).SetBytes(uncompressedKey[33:65])
	return km.compressPoint(x, y), nil
}

// DecompressPublicKey 将压缩公钥转换为未压缩格式
//
// 参数:
//   - compressedKey: 33字节压缩公钥
//
// 返回:
//   - []byte: 65字节未压缩公钥
//   - error: 格式错误或X坐标无效时返回错误
func (km *KeyManager) DecompressPublicKey(compressedKey []byte) ([]byte, error) {
	if len(compressedKey) != cryptointf.CompressedPublicKeyLength {
		return nil, fmt.Errorf("%w: 长度%d, 期望%d字节", ErrInvalidPublicKey,
			len(compressedKey), cryptointf.CompressedPublicKeyLength)
	}
	prefix := compressedKey[0]
	if prefix != 0x02 && prefix != 0x03 {
		return nil, fmt.Errorf("%w: 前缀0x%02x, 期望0x02或0x03", ErrInvalidPublicKey, prefix)
	}

	x := new(big.Int).SetBytes(compressedKey[1:])
	y, err := km.decompressPoint(x, prefix == 0x03)
	if err != nil {
		return nil, fmt.Errorf("解压缩公钥失败: %w", err)
	}

	uncompressed := make([]byte, cryptointf.UncompressedPublicKeyLength)
	uncompressed[0] = 0x04
	x.FillBytes(uncompressed[1:33])
	y.FillBytes(uncompressed[33:65])
	return uncompressed, nil
}

// PrivateKeyToECDSA 将私钥字节转换为ECDSA私钥对象
func (km *KeyManager) PrivateKeyToECDSA(privateKey []byte) (*ecdsa.PrivateKey, error) {
	if err := km.ValidatePrivateKey(privateKey); err != nil {
		return nil, err
	}

	k := new(big.Int).SetBytes(privateKey)
	priv := new(ecdsa.PrivateKey)
	priv.D = k
	priv.Curve = km.curve
	priv.X, priv.Y = km.curve.ScalarBaseMult(k.Bytes())
	return priv, nil
}

// PublicKeyToECDSA 将字节数组形式的公钥转换为ECDSA公钥
//
// 支持33字节压缩和65字节未压缩两种格式。
func (km *KeyManager) PublicKeyToECDSA(publicKey []byte) (*ecdsa.PublicKey, error) {
	if err := km.ValidatePublicKey(publicKey); err != nil {
		return nil, err
	}

	var x, y *big.Int
	switch len(publicKey) {
	case cryptointf.CompressedPublicKeyLength:
		x = new(big.Int).SetBytes(publicKey[1:])
		var err error
		y, err = km.decompressPoint(x, publicKey[0] == 0x03)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
		}
	case cryptointf.UncompressedPublicKeyLength:
		x = new(big.Int).SetBytes(publicKey[1:33])
		y = new(big.Int).SetBytes(publicKey[33:65])
	}

	return &ecdsa.PublicKey{Curve: km.curve, X: x, Y: y}, nil
}

// compressPoint 压缩公钥坐标点
//
// 前缀按Y坐标奇偶性取0x02或0x03，X坐标补齐到32字节。
func (km *KeyManager) compressPoint(x, y *big.Int) []byte {
	compressed := make([]byte, cryptointf.CompressedPublicKeyLength)
	if y.Bit(0) == 0 {
		compressed[0] = 0x02
	} else {
		compressed[0] = 0x03
	}
	x.FillBytes(compressed[1:])
	return compressed
}

// decompressPoint 由X坐标恢复Y坐标
//
// P-256曲线方程：y² = x³ - 3x + b (mod p)
func (km *KeyManager) decompressPoint(x *big.Int, isOdd bool) (*big.Int, error) {
	params := km.curve.Params()
	if x.Sign() < 0 || x.Cmp(params.P) >= 0 {
		return nil, fmt.Errorf("X坐标超出域范围")
	}

	// x³ - 3x + b
	y2 := new(big.Int).Mul(x, x)
	y2.Mul(y2, x)
	threeX := new(big.Int).Lsh(x, 1)
	threeX.Add(threeX, x)
	y2.Sub(y2, threeX)
	y2.Add(y2, params.B)
	y2.Mod(y2, params.P)

	y := new(big.Int).ModSqrt(y2, params.P)
	if y == nil {
		return nil, fmt.Errorf("无法计算平方根，无效的X坐标")
	}

	// 按奇偶性选择两个平方根之一
	if (y.Bit(0) == 1) != isOdd {
		y.Sub(params.P, y)
	}

	if !km.curve.IsOnCurve(x, y) {
		return nil, fmt.Errorf("点不在P-256曲线上")
	}
	return y, nil
}

// 确保KeyManager实现了cryptointf.KeyManager接口
var _ cryptointf.KeyManager = (*KeyManager)(nil)
