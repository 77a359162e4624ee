// Package signature 提供NeoC系统的ECDSA签名值对象与DER编解码实现
package signature

import (
	"bytes"
	"errors"
	"fmt"

	cryptointf "github.com/r3e-network/NeoC-sub001/pkg/interfaces/infrastructure/crypto"
)

// 错误定义
var (
	ErrInvalidDER       = errors.New("无效的DER签名格式")
	ErrOversizedInteger = errors.New("DER整数分量超过32字节")
)

// 签名系统常量
const (
	// ComponentLength 签名分量r/s的长度（32字节大端整数）
	ComponentLength = cryptointf.SignatureComponentLength

	// DER编码标签
	tagSequence = 0x30
	tagInteger  = 0x02
)

// halfCurveOrder P-256曲线阶的一半（大端32字节）
//
// 同一消息与密钥存在 (r,s) 与 (r,n-s) 两个数学上均有效的签名，
// 协议固定取s较小的一个以消除签名延展性。
var halfCurveOrder = [ComponentLength]byte{
	0x7F, 0xFF, 0xFF, 0xFF, 0x80, 0x00, 0x00, 0x00,
	0x7F, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xDE, 0x73, 0x7D, 0x56, 0xD3, 0x8B, 0xCF, 0x42,
	0x79, 0xDC, 0xE5, 0x61, 0x7E, 0x31, 0x92, 0xA8,
}

// Signature ECDSA签名值对象
//
// r、s为32字节大端无符号整数，构造后不可变。
type Signature struct {
	r [ComponentLength]byte
	s [ComponentLength]byte
}

// FromParts 由r、s分量直接构造签名
//
// 输入缓冲区被拷贝进值对象，构造总是成功。
func FromParts(r, s [ComponentLength]byte) Signature {
	return Signature{r: r, s: s}
}

// FromRS 由64字节 (r||s) 序列构造签名
func FromRS(raw []byte) (Signature, error) {
	if len(raw) != 2*ComponentLength {
		return Signature{}, fmt.Errorf("%w: 长度%d, 期望%d字节", ErrInvalidDER, len(raw), 2*ComponentLength)
	}
	var sig Signature
	copy(sig.r[:], raw[:ComponentLength])
	copy(sig.s[:], raw[ComponentLength:])
	return sig, nil
}

// R 返回r分量的副本
func (sig Signature) R() [ComponentLength]byte { return sig.r }

// S 返回s分量的副本
func (sig Signature) S() [ComponentLength]byte { return sig.s }

// Bytes 返回64字节 (r||s) 序列
func (sig Signature) Bytes() []byte {
	out := make([]byte, 2*ComponentLength)
	copy(out, sig.r[:])
	copy(out[ComponentLength:], sig.s[:])
	return out
}

// IsCanonical 判断签名是否为规范形式
//
// 当且仅当s的大端整数值不超过曲线阶的一半时返回true；
// 非规范签名在结构上仍然有效，但会被严格验证方拒绝。
func (sig Signature) IsCanonical() bool {
	return bytes.Compare(sig.s[:], halfCurveOrder[:]) <= 0
}

// FromDER 解析DER编码的签名
//
// 期望结构为 SEQUENCE { INTEGER r, INTEGER s }。
// 整数分量为最小长度的二进制补码正整数：当幅值最高位置位时
// 携带一个0x00前导填充字节，解析时剥除；剥除后幅值超过
// 32字节的输入被拒绝。
//
// 参数:
//   - der: DER编码字节序列
//
// 返回:
//   - Signature: 解析出的签名
//   - error: 结构损坏或分量超长时返回ErrInvalidDER/ErrOversizedInteger
func FromDER(der []byte) (Signature, error) {
	var sig Signature

	if len(der) < 2 {
		return sig, fmt.Errorf("%w: 数据过短", ErrInvalidDER)
	}
	if der[0] != tagSequence {
		return sig, fmt.Errorf("%w: 期望SEQUENCE标签, 得到0x%02x", ErrInvalidDER, der[0])
	}
	seqLen := int(der[1])
	if seqLen >= 0x80 {
		// 签名序列远小于128字节，长格式长度在此必然非法
		return sig, fmt.Errorf("%w: 非法的长格式长度", ErrInvalidDER)
	}
	if seqLen != len(der)-2 {
		return sig, fmt.Errorf("%w: SEQUENCE长度%d与数据长度不符", ErrInvalidDER, seqLen)
	}

	body := der[2:]
	r, rest, err := parseDERInteger(body)
	if err != nil {
		return sig, err
	}
	s, rest, err := parseDERInteger(rest)
	if err != nil {
		return sig, err
	}
	if len(rest) != 0 {
		return sig, fmt.Errorf("%w: SEQUENCE尾部有%d字节多余数据", ErrInvalidDER, len(rest))
	}

	sig.r = r
	sig.s = s
	return sig, nil
}

// parseDERInteger 解析一个最小正整数编码的INTEGER，返回32字节右对齐幅值
func parseDERInteger(buf []byte) ([ComponentLength]byte, []byte, error) {
	var out [ComponentLength]byte

	if len(buf) < 3 {
		return out, nil, fmt.Errorf("%w: INTEGER数据过短", ErrInvalidDER)
	}
	if buf[0] != tagInteger {
		return out, nil, fmt.Errorf("%w: 期望INTEGER标签, 得到0x%02x", ErrInvalidDER, buf[0])
	}
	length := int(buf[1])
	if length == 0 || length >= 0x80 {
		return out, nil, fmt.Errorf("%w: 非法的INTEGER长度%d", ErrInvalidDER, length)
	}
	if length > len(buf)-2 {
		return out, nil, fmt.Errorf("%w: INTEGER被截断", ErrInvalidDER)
	}

	content := buf[2 : 2+length]
	rest := buf[2+length:]

	// 最高位置位的无填充整数是负数，签名分量必须为正
	if content[0]&0x80 != 0 {
		return out, nil, fmt.Errorf("%w: INTEGER为负数", ErrInvalidDER)
	}
	// 0x00填充字节仅在随后的幅值最高位置位时合法（最小编码不变量）
	if content[0] == 0x00 && len(content) > 1 {
		if content[1]&0x80 == 0 {
			return out, nil, fmt.Errorf("%w: 非最小的INTEGER编码", ErrInvalidDER)
		}
		content = content[1:]
	}
	if len(content) > ComponentLength {
		return out, nil, fmt.Errorf("%w: 幅值%d字节", ErrOversizedInteger, len(content))
	}

	copy(out[ComponentLength-len(content):], content)
	return out, rest, nil
}

// ToDER 将签名编码为DER字节序列
//
// r、s重新编码为最小长度的有符号INTEGER：剥除前导零字节后，
// 若幅值首字节最高位置位则补回一个0x00填充字节，再包入SEQUENCE。
// 对所有规范输入是FromDER的精确逆运算。
func (sig Signature) ToDER() []byte {
	r := encodeDERInteger(sig.r)
	s := encodeDERInteger(sig.s)

	der := make([]byte, 0, 2+len(r)+len(s))
	der = append(der, tagSequence, byte(len(r)+len(s)))
	der = append(der, r...)
	der = append(der, s...)
	return der
}

// encodeDERInteger 编码单个最小正整数INTEGER（含标签与长度）
func encodeDERInteger(value [ComponentLength]byte) []byte {
	// 剥除前导零字节，零值保留单个0x00
	magnitude := value[:]
	for len(magnitude) > 1 && magnitude[0] == 0x00 {
		magnitude = magnitude[1:]
	}

	pad := 0
	if magnitude[0]&0x80 != 0 {
		pad = 1
	}

	out := make([]byte, 0, 2+pad+len(magnitude))
	out = append(out, tagInteger, byte(pad+len(magnitude)))
	if pad == 1 {
		out = append(out, 0x00)
	}
	out = append(out, magnitude...)
	return out
}
