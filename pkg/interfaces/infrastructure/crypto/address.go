// Package crypto 提供NeoC系统的地址管理接口定义
//
// 🏠 **地址服务 (Address Service)**
//
// 本文件定义了NeoC系统的地址管理接口，专注于：
// - 地址推导：私钥/公钥 → 验证脚本 → Hash160 → Base58Check地址
// - 地址校验：字符集、长度、版本字节与校验和验证
// - 脚本哈希互转：地址与20字节脚本哈希的双向转换
package crypto

// AddressManager 定义区块链地址管理相关接口
//
// 地址格式：版本字节(0x35) + 20字节脚本哈希，Base58Check编码。
type AddressManager interface {
	// PrivateKeyToAddress 从私钥直接推导标准地址
	//
	// 推导流程：私钥 → 压缩公钥 → 验证脚本 → Hash160 → Base58Check
	PrivateKeyToAddress(privateKey []byte) (string, error)

	// PublicKeyToAddress 从33字节压缩公钥推导标准地址
	PublicKeyToAddress(publicKey []byte) (string, error)

	// ValidateAddress 验证地址格式和校验和
	ValidateAddress(address string) error

	// AddressToScriptHash 将地址解码为20字节脚本哈希
	AddressToScriptHash(address string) ([Digest160Length]byte, error)

	// ScriptHashToAddress 将20字节脚本哈希编码为标准地址
	ScriptHashToAddress(scriptHash [Digest160Length]byte) string
}
