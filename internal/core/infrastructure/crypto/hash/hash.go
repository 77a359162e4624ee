// Package hash 提供NeoC系统的摘要引擎实现
package hash

import (
	"crypto/sha256"
	"crypto/subtle"

	cryptointf "github.com/r3e-network/NeoC-sub001/pkg/interfaces/infrastructure/crypto"
)

// 确保HashService实现了cryptointf.HashManager接口
var _ cryptointf.HashManager = (*HashService)(nil)

// HashService 提供哈希计算功能
//
// 所有方法均为无共享状态的纯函数，可安全并发调用。
// RIPEMD-160由本包自带的压缩核实现，SHA-256使用标准库原语。
type HashService struct{}

// NewHashService 创建新的哈希服务
func NewHashService() *HashService {
	return &HashService{}
}

// RIPEMD160 计算RIPEMD-160哈希
//
// 参数:
//   - data: 要计算哈希的数据
//
// 返回:
//   - [20]byte: 20字节的RIPEMD-160哈希结果
func (s *HashService) RIPEMD160(data []byte) [cryptointf.Digest160Length]byte {
	return ripemd160Sum(data)
}

// SHA256 计算SHA-256哈希
func (s *HashService) SHA256(data []byte) [cryptointf.Digest256Length]byte {
	return sha256.Sum256(data)
}

// DoubleSHA256 计算双重SHA-256哈希
//
// 参数:
//   - data: 要计算哈希的数据
//
// 返回:
//   - [32]byte: 32字节的双重SHA-256哈希结果
func (s *HashService) DoubleSHA256(data []byte) [cryptointf.Digest256Length]byte {
	first := sha256.Sum256(data)
	return sha256.Sum256(first[:])
}

// Hash160 计算组合哈希：RIPEMD160(SHA256(data))
//
// 地址推导的标准哈希管线。
func (s *HashService) Hash160(data []byte) [cryptointf.Digest160Length]byte {
	first := sha256.Sum256(data)
	return ripemd160Sum(first[:])
}

// Checksum 计算4字节校验和：DoubleSHA256(data)的前4字节
//
// Base58Check编码与加密密钥记录的地址哈希共用此原语。
func (s *HashService) Checksum(data []byte) [cryptointf.ChecksumLength]byte {
	double := s.DoubleSHA256(data)
	var sum [cryptointf.ChecksumLength]byte
	copy(sum[:], double[:cryptointf.ChecksumLength])
	return sum
}

// ConstantTimeCompare 在常量时间内比较两个字节序列是否相等
// 用于校验和与地址哈希的比对，防止时序攻击
func ConstantTimeCompare(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
