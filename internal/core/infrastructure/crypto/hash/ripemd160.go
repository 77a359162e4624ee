package hash

import (
	"encoding/binary"
	"math/bits"
)

// RIPEMD-160摘要引擎
//
// 实现160位Merkle–Damgård哈希：消息填充（0x80 + 零填充 + 64位小端比特长度），
// 每个64字节块经过左右两条独立的80步运算线（5轮×16步），
// 两条线的末寄存器与前一状态按固定的交叉顺序相加得到新状态。
// 轮函数、轮常量、消息词序和循环移位表必须与参考算法完全一致，
// 任何一个常量的错位都会改变全网所有派生地址。

const (
	// ripemd160BlockSize 压缩函数的分组大小（64字节）
	ripemd160BlockSize = 64
)

// 初始链接值
const (
	rmdInit0 = 0x67452301
	rmdInit1 = 0xEFCDAB89
	rmdInit2 = 0x98BADCFE
	rmdInit3 = 0x10325476
	rmdInit4 = 0xC3D2E1F0
)

// 左线消息词选择表（5轮×16步）
var rmdWordLeft = [80]uint8{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	7, 4, 13, 1, 10, 6, 15, 3, 12, 0, 9, 5, 2, 14, 11, 8,
	3, 10, 14, 4, 9, 15, 8, 1, 2, 7, 0, 6, 13, 11, 5, 12,
	1, 9, 11, 10, 0, 8, 12, 4, 13, 3, 7, 15, 14, 5, 6, 2,
	4, 0, 5, 9, 7, 12, 2, 10, 14, 1, 3, 8, 11, 6, 15, 13,
}

// 左线循环移位表
var rmdRotLeft = [80]uint8{
	11, 14, 15, 12, 5, 8, 7, 9, 11, 13, 14, 15, 6, 7, 9, 8,
	7, 6, 8, 13, 11, 9, 7, 15, 7, 12, 15, 9, 11, 7, 13, 12,
	11, 13, 6, 7, 14, 9, 13, 15, 14, 8, 13, 6, 5, 12, 7, 5,
	11, 12, 14, 15, 14, 15, 9, 8, 9, 14, 5, 6, 8, 6, 5, 12,
	9, 15, 5, 11, 6, 8, 13, 12, 5, 12, 13, 14, 11, 8, 5, 6,
}

// 右线消息词选择表
var rmdWordRight = [80]uint8{
	5, 14, 7, 0, 9, 2, 11, 4, 13, 6, 15, 8, 1, 10, 3, 12,
	6, 11, 3, 7, 0, 13, 5, 10, 14, 15, 8, 12, 4, 9, 1, 2,
	15, 5, 1, 3, 7, 14, 6, 9, 11, 8, 12, 2, 10, 0, 4, 13,
	8, 6, 4, 1, 3, 11, 15, 0, 5, 12, 2, 13, 9, 7, 10, 14,
	12, 15, 10, 4, 1, 5, 8, 7, 6, 2, 13, 14, 0, 3, 9, 11,
}

// 右线循环移位表
var rmdRotRight = [80]uint8{
	8, 9, 9, 11, 13, 15, 15, 5, 7, 7, 8, 11, 14, 14, 12, 6,
	9, 13, 15, 7, 12, 8, 9, 11, 7, 7, 12, 7, 6, 15, 13, 11,
	9, 7, 15, 11, 8, 6, 6, 14, 12, 13, 5, 14, 13, 13, 7, 5,
	15, 5, 8, 11, 14, 14, 6, 14, 6, 9, 12, 9, 12, 5, 15, 8,
	8, 5, 12, 9, 12, 5, 14, 6, 8, 13, 6, 5, 15, 13, 11, 11,
}

// ripemd160Sum 对整块输入计算20字节RIPEMD-160摘要
//
// 纯函数，对任意长度输入（包括空输入）都不会失败。
func ripemd160Sum(data []byte) [20]byte {
	state := [5]uint32{rmdInit0, rmdInit1, rmdInit2, rmdInit3, rmdInit4}

	// 处理完整分组
	n := len(data) &^ (ripemd160BlockSize - 1)
	if n > 0 {
		ripemd160Blocks(&state, data[:n])
	}

	// Merkle–Damgård填充：0x80、零字节、64位小端比特长度，
	// 补齐到64字节的整数倍
	var tail [ripemd160BlockSize * 2]byte
	rest := copy(tail[:], data[n:])
	tail[rest] = 0x80
	padded := ripemd160BlockSize
	if rest+1+8 > ripemd160BlockSize {
		padded = 2 * ripemd160BlockSize
	}
	binary.LittleEndian.PutUint64(tail[padded-8:], uint64(len(data))*8)
	ripemd160Blocks(&state, tail[:padded])

	// 5个状态字按小端序列化
	var digest [20]byte
	for i, w := range state {
		binary.LittleEndian.PutUint32(digest[i*4:], w)
	}
	return digest
}

// ripemd160Blocks 压缩函数：按64字节分组更新链接状态
func ripemd160Blocks(state *[5]uint32, p []byte) {
	var x [16]uint32

	for len(p) >= ripemd160BlockSize {
		for i := 0; i < 16; i++ {
			x[i] = binary.LittleEndian.Uint32(p[i*4:])
		}

		a, b, c, d, e := state[0], state[1], state[2], state[3], state[4]
		aa, bb, cc, dd, ee := a, b, c, d, e

		var alpha uint32
		j := 0

		// 第1轮：左线 f=x⊕y⊕z K=0；右线 f=x⊕(y∨¬z) K=0x50A28BE6
		for ; j < 16; j++ {
			alpha = a + (b ^ c ^ d) + x[rmdWordLeft[j]]
			alpha = bits.RotateLeft32(alpha, int(rmdRotLeft[j])) + e
			a, b, c, d, e = e, alpha, b, bits.RotateLeft32(c, 10), d

			alpha = aa + (bb ^ (cc | ^dd)) + x[rmdWordRight[j]] + 0x50A28BE6
			alpha = bits.RotateLeft32(alpha, int(rmdRotRight[j])) + ee
			aa, bb, cc, dd, ee = ee, alpha, bb, bits.RotateLeft32(cc, 10), dd
		}

		// 第2轮：左线 f=(x∧y)∨(¬x∧z) K=0x5A827999；右线 f=(x∧z)∨(y∧¬z) K=0x5C4DD124
		for ; j < 32; j++ {
			alpha = a + (b&c | ^b&d) + x[rmdWordLeft[j]] + 0x5A827999
			alpha = bits.RotateLeft32(alpha, int(rmdRotLeft[j])) + e
			a, b, c, d, e = e, alpha, b, bits.RotateLeft32(c, 10), d

			alpha = aa + (bb&dd | cc&^dd) + x[rmdWordRight[j]] + 0x5C4DD124
			alpha = bits.RotateLeft32(alpha, int(rmdRotRight[j])) + ee
			aa, bb, cc, dd, ee = ee, alpha, bb, bits.RotateLeft32(cc, 10), dd
		}

		// 第3轮：左线 f=(x∨¬y)⊕z K=0x6ED9EBA1；右线同函数 K=0x6D703EF3
		for ; j < 48; j++ {
			alpha = a + ((b | ^c) ^ d) + x[rmdWordLeft[j]] + 0x6ED9EBA1
			alpha = bits.RotateLeft32(alpha, int(rmdRotLeft[j])) + e
			a, b, c, d, e = e, alpha, b, bits.RotateLeft32(c, 10), d

			alpha = aa + ((bb | ^cc) ^ dd) + x[rmdWordRight[j]] + 0x6D703EF3
			alpha = bits.RotateLeft32(alpha, int(rmdRotRight[j])) + ee
			aa, bb, cc, dd, ee = ee, alpha, bb, bits.RotateLeft32(cc, 10), dd
		}

		// 第4轮：左线 f=(x∧z)∨(y∧¬z) K=0x8F1BBCDC；右线 f=(x∧y)∨(¬x∧z) K=0x7A6D76E9
		for ; j < 64; j++ {
			alpha = a + (b&d | c&^d) + x[rmdWordLeft[j]] + 0x8F1BBCDC
			alpha = bits.RotateLeft32(alpha, int(rmdRotLeft[j])) + e
			a, b, c, d, e = e, alpha, b, bits.RotateLeft32(c, 10), d

			alpha = aa + (bb&cc | ^bb&dd) + x[rmdWordRight[j]] + 0x7A6D76E9
			alpha = bits.RotateLeft32(alpha, int(rmdRotRight[j])) + ee
			aa, bb, cc, dd, ee = ee, alpha, bb, bits.RotateLeft32(cc, 10), dd
		}

		// 第5轮：左线 f=x⊕(y∨¬z) K=0xA953FD4E；右线 f=x⊕y⊕z K=0
		for ; j < 80; j++ {
			alpha = a + (b ^ (c | ^d)) + x[rmdWordLeft[j]] + 0xA953FD4E
			alpha = bits.RotateLeft32(alpha, int(rmdRotLeft[j])) + e
			a, b, c, d, e = e, alpha, b, bits.RotateLeft32(c, 10), d

			alpha = aa + (bb ^ cc ^ dd) + x[rmdWordRight[j]]
			alpha = bits.RotateLeft32(alpha, int(rmdRotRight[j])) + ee
			aa, bb, cc, dd, ee = ee, alpha, bb, bits.RotateLeft32(cc, 10), dd
		}

		// 两条线与前一状态的交叉组合，顺序不可更改
		combined := state[1] + c + dd
		state[1] = state[2] + d + ee
		state[2] = state[3] + e + aa
		state[3] = state[4] + a + bb
		state[4] = state[0] + b + cc
		state[0] = combined

		p = p[ripemd160BlockSize:]
	}
}
