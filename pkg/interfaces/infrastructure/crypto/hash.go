// Package crypto 提供NeoC系统的哈希服务接口定义
//
// 🔐 **哈希服务 (Hash Service)**
//
// 本文件定义了NeoC钱包密码学工具箱的哈希接口，专注于：
// - RIPEMD-160：地址推导使用的160位摘要算法
// - SHA-256/双SHA-256：校验和与完整性验证
// - Hash160：RIPEMD160(SHA256(x))组合哈希
// - 校验和：Base58Check与加密密钥记录共用的4字节校验前缀
//
// 🏗️ **设计原则**
// - 纯函数：所有哈希操作均为整块输入的纯函数，不做流式处理
// - 值语义：以定长数组返回结果，调用方无需管理缓冲区
// - 并发安全：无共享可变状态，可被任意数量的goroutine并发调用
package crypto

// 哈希长度常量
const (
	// Digest160Length RIPEMD-160摘要长度（20字节）
	Digest160Length = 20
	// Digest256Length SHA-256摘要长度（32字节）
	Digest256Length = 32
	// ChecksumLength 校验和长度（双SHA-256前4字节）
	ChecksumLength = 4
)

// HashManager 定义哈希计算相关接口
//
// 所有方法对任意长度输入（包括空输入）均不会失败。
type HashManager interface {
	// RIPEMD160 计算RIPEMD-160哈希
	//
	// 参数:
	//   - data: 要计算哈希的数据
	//
	// 返回:
	//   - [Digest160Length]byte: 20字节的RIPEMD-160哈希结果
	RIPEMD160(data []byte) [Digest160Length]byte

	// SHA256 计算SHA-256哈希
	SHA256(data []byte) [Digest256Length]byte

	// DoubleSHA256 计算双重SHA-256哈希
	DoubleSHA256(data []byte) [Digest256Length]byte

	// Hash160 计算组合哈希：RIPEMD160(SHA256(data))
	//
	// 地址推导的标准哈希管线。
	Hash160(data []byte) [Digest160Length]byte

	// Checksum 计算4字节校验和：DoubleSHA256(data)的前4字节
	Checksum(data []byte) [ChecksumLength]byte
}
