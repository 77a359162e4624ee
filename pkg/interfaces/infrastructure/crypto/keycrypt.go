// Package crypto 提供NeoC系统的密钥加密接口定义
//
// 🔒 **密码保护密钥编解码器 (Password-Protected Key Codec)**
//
// 本文件定义了NEP2风格的私钥加密接口，专注于：
// - 加密：私钥 + 密码 → 可传输的Base58编码字符串
// - 解密：编码字符串 + 密码 → 原始私钥
// - 成本参数：可调的scrypt工作因子三元组
// - WIF：私钥的明文导入导出格式
//
// 🛡️ **安全特性**
// - scrypt内存困难KDF抵御离线爆破
// - 地址哈希自校验：密码错误与数据损坏统一报告，避免预言机行为
package crypto

// ScryptParams scrypt密钥派生的工作因子三元组
//
// 成本由N（CPU/内存成本）、R（块大小）、P（并行度）共同决定，
// 派生密钥长度固定为64字节。
type ScryptParams struct {
	N int // CPU/内存成本参数，必须为2的幂
	R int // 块大小参数
	P int // 并行度参数
}

// DefaultScryptParams 返回标准的默认成本三元组 (N=16384, r=8, p=8)
//
// 与已发布的NEP2参考参数一致；需要兼容低成本记录的调用方
// 可以传入自定义三元组。
func DefaultScryptParams() ScryptParams {
	return ScryptParams{N: 16384, R: 8, P: 8}
}

// KeyCryptProfile 加密密钥记录的外层编码模式
type KeyCryptProfile uint8

const (
	// ProfileChecked 外层使用Base58Check编码（标准NEP2布局，默认）
	ProfileChecked KeyCryptProfile = iota
	// ProfilePlain 外层使用裸Base58编码（仅依赖记录内部的地址哈希自校验）
	ProfilePlain
)

// KeyCryptManager 定义密码保护私钥编解码相关接口
type KeyCryptManager interface {
	// EncryptKey 使用默认成本参数加密私钥
	EncryptKey(password string, privateKey []byte) (string, error)

	// EncryptKeyWithParams 使用指定成本参数加密私钥
	EncryptKeyWithParams(password string, privateKey []byte, params ScryptParams) (string, error)

	// DecryptKey 使用默认成本参数解密私钥
	DecryptKey(password string, encrypted string) ([PrivateKeyLength]byte, error)

	// DecryptKeyWithParams 使用指定成本参数解密私钥
	DecryptKeyWithParams(password string, encrypted string, params ScryptParams) ([PrivateKeyLength]byte, error)

	// ExportWIF 将私钥导出为WIF字符串
	ExportWIF(privateKey []byte) (string, error)

	// ImportWIF 从WIF字符串导入私钥
	ImportWIF(wif string) ([PrivateKeyLength]byte, error)
}
