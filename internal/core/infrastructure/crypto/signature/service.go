package signature

import (
	"crypto/ecdsa"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/r3e-network/NeoC-sub001/internal/core/infrastructure/crypto/key"
	cryptointf "github.com/r3e-network/NeoC-sub001/pkg/interfaces/infrastructure/crypto"
)

// 确保SignatureService实现了cryptointf.SignatureManager接口
var _ cryptointf.SignatureManager = (*SignatureService)(nil)

// 错误定义
var (
	ErrInvalidHashLength = errors.New("无效的哈希长度")
)

// HashLength 签名输入哈希长度（32字节）
const HashLength = 32

// SignatureService 提供P-256曲线上的ECDSA签名功能
//
// 产出的签名总是规范形式（低S值）。
type SignatureService struct {
	keyManager *key.KeyManager
}

// NewSignatureService 创建新的签名服务
func NewSignatureService(keyManager *key.KeyManager) *SignatureService {
	return &SignatureService{
		keyManager: keyManager,
	}
}

// Sign 对32字节哈希进行ECDSA签名
//
// 签名后执行规范化：若s大于曲线阶的一半，替换为n-s。
func (ss *SignatureService) Sign(hash []byte, privateKey []byte) ([]byte, error) {
	if len(hash) != HashLength {
		return nil, ErrInvalidHashLength
	}

	priv, err := ss.keyManager.PrivateKeyToECDSA(privateKey)
	if err != nil {
		return nil, err
	}
	defer priv.D.SetInt64(0)

	r, s, err := ecdsa.Sign(rand.Reader, priv, hash)
	if err != nil {
		return nil, fmt.Errorf("签名失败: %w", err)
	}

	// 规范化为低S值
	order := priv.Curve.Params().N
	halfOrder := new(big.Int).Rsh(order, 1)
	if s.Cmp(halfOrder) > 0 {
		s.Sub(order, s)
	}

	sig := make([]byte, 2*ComponentLength)
	r.FillBytes(sig[:ComponentLength])
	s.FillBytes(sig[ComponentLength:])
	return sig, nil
}

// Verify 验证64字节 (r||s) 签名
func (ss *SignatureService) Verify(hash []byte, signature []byte, publicKey []byte) bool {
	if len(hash) != HashLength || len(signature) != 2*ComponentLength {
		return false
	}

	pub, err := ss.keyManager.PublicKeyToECDSA(publicKey)
	if err != nil {
		return false
	}

	r := new(big.Int).SetBytes(signature[:ComponentLength])
	s := new(big.Int).SetBytes(signature[ComponentLength:])
	return ecdsa.Verify(pub, hash, r, s)
}
