// Package base58 提供NeoC系统的校验和文本编解码实现
//
// Base58编码将字节序列视为大端无符号整数，反复除以58收集余数；
// 字母表排除了易混淆字符 0、O、I、l。前导零字节与前导'1'字符
// 一一对应。Check模式在载荷后附加双SHA-256的前4字节作为校验和。
package base58

import (
	"errors"
	"fmt"

	"github.com/r3e-network/NeoC-sub001/internal/core/infrastructure/crypto/hash"
)

// 错误定义
var (
	// ErrInvalidCharacter 文本包含字母表之外的字符
	ErrInvalidCharacter = errors.New("invalid base58 character")
	// ErrTooShort Check解码的数据长度不足以容纳校验和
	ErrTooShort = errors.New("base58check data too short")
	// ErrChecksumMismatch 校验和验证失败
	ErrChecksumMismatch = errors.New("base58check checksum mismatch")
)

// Alphabet Base58字符表（58个字符，排除0、O、I、l）
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// checksumLength 校验和长度（4字节）
const checksumLength = 4

// decodeTable 字符码到数值的逆查找表，非法字符映射为0xFF
//
// 预计算为包级常量表，解码时O(1)校验字符合法性，替代线性扫描。
var decodeTable = buildDecodeTable()

func buildDecodeTable() [256]byte {
	var table [256]byte
	for i := range table {
		table[i] = 0xFF
	}
	for i := 0; i < len(Alphabet); i++ {
		table[Alphabet[i]] = byte(i)
	}
	return table
}

// Encode 将字节序列编码为Base58文本
//
// 空输入编码为空字符串；N个前导零字节编码为N个前导'1'字符。
//
// 参数:
//   - data: 要编码的字节序列
//
// 返回:
//   - string: Base58编码文本
func Encode(data []byte) string {
	// 统计前导零字节
	zeros := 0
	for zeros < len(data) && data[zeros] == 0 {
		zeros++
	}

	// 大端数字数组长除法：每轮整体除以58，余数即为最低位数字
	// 输入规模≤百字节量级，O(n²)教科书算法完全够用
	input := make([]byte, len(data)-zeros)
	copy(input, data[zeros:])

	// 输出最多 len*138/100+1 个数字（log256/log58 ≈ 1.37）
	digits := make([]byte, 0, len(input)*138/100+1)
	for len(input) > 0 {
		var remainder uint32
		quotient := input[:0]
		leading := true
		for _, b := range input {
			acc := remainder<<8 | uint32(b)
			q := byte(acc / 58)
			remainder = acc % 58
			if q != 0 || !leading {
				quotient = append(quotient, q)
				leading = false
			}
		}
		digits = append(digits, byte(remainder))
		input = quotient
	}

	// 余数为低位在前，反转后映射字母表，并补前导'1'
	out := make([]byte, zeros+len(digits))
	for i := 0; i < zeros; i++ {
		out[i] = '1'
	}
	for i, d := range digits {
		out[zeros+len(digits)-1-i] = Alphabet[d]
	}
	return string(out)
}

// Decode 将Base58文本解码为字节序列
//
// Encode的精确逆运算：校验每个字符的合法性，乘58累加，
// 再按前导'1'补回前导零字节。
//
// 参数:
//   - text: Base58编码文本
//
// 返回:
//   - []byte: 解码后的字节序列
//   - error: 文本包含非法字符时返回ErrInvalidCharacter
func Decode(text string) ([]byte, error) {
	// 统计前导'1'字符
	zeros := 0
	for zeros < len(text) && text[zeros] == '1' {
		zeros++
	}

	// 乘58累加：value = value*58 + digit
	value := make([]byte, 0, len(text)*733/1000+1) // log58/log256 ≈ 0.733
	for i := zeros; i < len(text); i++ {
		digit := decodeTable[text[i]]
		if digit == 0xFF {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidCharacter, text[i], i)
		}

		carry := uint32(digit)
		for j := len(value) - 1; j >= 0; j-- {
			carry += uint32(value[j]) * 58
			value[j] = byte(carry)
			carry >>= 8
		}
		for carry > 0 {
			value = append([]byte{byte(carry)}, value...)
			carry >>= 8
		}
	}

	out := make([]byte, zeros+len(value))
	copy(out[zeros:], value)
	return out, nil
}

// CheckEncode 附加4字节校验和后编码
//
// 校验和为DoubleSHA256(data)的前4字节。
func CheckEncode(data []byte) string {
	hs := hash.NewHashService()
	sum := hs.Checksum(data)

	payload := make([]byte, len(data)+checksumLength)
	copy(payload, data)
	copy(payload[len(data):], sum[:])
	return Encode(payload)
}

// CheckDecode 解码并验证4字节校验和，返回去除校验和的载荷
//
// 参数:
//   - text: Base58Check编码文本
//
// 返回:
//   - []byte: 校验通过后的载荷
//   - error: ErrInvalidCharacter / ErrTooShort / ErrChecksumMismatch
func CheckDecode(text string) ([]byte, error) {
	decoded, err := Decode(text)
	if err != nil {
		return nil, err
	}
	if len(decoded) < checksumLength {
		return nil, ErrTooShort
	}

	payload := decoded[:len(decoded)-checksumLength]
	sum := decoded[len(decoded)-checksumLength:]

	hs := hash.NewHashService()
	expected := hs.Checksum(payload)
	if !hash.ConstantTimeCompare(sum, expected[:]) {
		return nil, ErrChecksumMismatch
	}
	return payload, nil
}
