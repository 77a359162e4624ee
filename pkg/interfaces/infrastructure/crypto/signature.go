// Package crypto 提供NeoC系统的数字签名接口定义
//
// ✍️ **数字签名服务 (Digital Signature Service)**
//
// 本文件定义了NeoC系统的数字签名接口，专注于：
// - ECDSA签名：NIST P-256曲线上的确定性验证
// - 规范形式：低S值签名（防延展性）
// - 传输编码：ASN.1 DER格式的编解码
//
// 🛡️ **安全特性**
// - 签名规范化（s ≤ 曲线阶的一半）
// - DER最小正整数编码（高位置位时补0x00前导字节）
package crypto

// 签名长度常量
const (
	// SignatureComponentLength 签名分量r/s的长度（32字节大端整数）
	SignatureComponentLength = 32
)

// SignatureManager 定义签名生成与验证相关接口
//
// 签名值对象本身（含DER编解码与规范性判定）由实现包提供，
// 本接口只覆盖需要密钥参与的操作。
type SignatureManager interface {
	// Sign 对32字节哈希进行ECDSA签名
	//
	// 返回的签名保证为规范形式（低S值）。
	//
	// 参数：
	//   - hash: 32字节消息哈希
	//   - privateKey: 32字节私钥
	//
	// 返回：
	//   - []byte: 64字节签名 (r||s)
	//   - error: 签名失败时的错误
	Sign(hash []byte, privateKey []byte) ([]byte, error)

	// Verify 验证64字节 (r||s) 签名
	//
	// 参数：
	//   - hash: 32字节消息哈希
	//   - signature: 64字节签名
	//   - publicKey: 33字节压缩或65字节未压缩公钥
	//
	// 返回：
	//   - bool: 签名是否有效
	Verify(hash []byte, signature []byte, publicKey []byte) bool
}
