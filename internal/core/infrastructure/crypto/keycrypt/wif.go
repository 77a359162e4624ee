package keycrypt

import (
	"errors"
	"fmt"

	"github.com/r3e-network/NeoC-sub001/internal/core/infrastructure/crypto/base58"
	cryptointf "github.com/r3e-network/NeoC-sub001/pkg/interfaces/infrastructure/crypto"
)

// WIF（Wallet Import Format）私钥明文传输格式
//
// 布局：0x80 + 32字节私钥 + 0x01（压缩公钥标记），整体Base58Check编码。

const (
	wifVersion          = 0x80
	wifCompressedSuffix = 0x01
	wifPayloadLength    = 1 + cryptointf.PrivateKeyLength + 1
)

// ErrInvalidWIF WIF字符串损坏（长度、版本或后缀字节错误）
var ErrInvalidWIF = errors.New("无效的WIF格式")

// ExportWIF 将私钥导出为WIF字符串
func (s *KeyCryptService) ExportWIF(privateKey []byte) (string, error) {
	if err := s.keyManager.ValidatePrivateKey(privateKey); err != nil {
		return "", err
	}

	payload := make([]byte, 0, wifPayloadLength)
	payload = append(payload, wifVersion)
	payload = append(payload, privateKey...)
	payload = append(payload, wifCompressedSuffix)
	return base58.CheckEncode(payload), nil
}

// ImportWIF 从WIF字符串导入私钥
//
// 返回:
//   - [32]byte: 私钥
//   - error: 校验和失败或布局损坏时返回ErrInvalidWIF
func (s *KeyCryptService) ImportWIF(wif string) ([cryptointf.PrivateKeyLength]byte, error) {
	var privateKey [cryptointf.PrivateKeyLength]byte

	payload, err := base58.CheckDecode(wif)
	if err != nil {
		return privateKey, fmt.Errorf("%w: %w", ErrInvalidWIF, err)
	}
	if len(payload) != wifPayloadLength {
		return privateKey, fmt.Errorf("%w: 长度%d, 期望%d字节", ErrInvalidWIF, len(payload), wifPayloadLength)
	}
	if payload[0] != wifVersion {
		return privateKey, fmt.Errorf("%w: 版本字节0x%02x", ErrInvalidWIF, payload[0])
	}
	if payload[wifPayloadLength-1] != wifCompressedSuffix {
		return privateKey, fmt.Errorf("%w: 后缀字节0x%02x", ErrInvalidWIF, payload[wifPayloadLength-1])
	}

	copy(privateKey[:], payload[1:1+cryptointf.PrivateKeyLength])
	if err := s.keyManager.ValidatePrivateKey(privateKey[:]); err != nil {
		return [cryptointf.PrivateKeyLength]byte{}, fmt.Errorf("%w: %w", ErrInvalidWIF, err)
	}
	return privateKey, nil
}
