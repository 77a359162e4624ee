package hash

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"strings"
	"testing"

	"golang.org/x/crypto/ripemd160"
)

func TestRIPEMD160(t *testing.T) {
	hashService := NewHashService()

	// 标准测试向量
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"空数据", "", "9c1185a5c5e9fc54612808977ee8f548b2258d31"},
		{"单字符", "a", "0bdc9d2d256b3ee9daae347be6f4dc835a467ffe"},
		{"abc", "abc", "8eb208f7e05d987a9b044a8e98c6b087f15a0bfc"},
		{"message digest", "message digest", "5d0689ef49d2fae572b881b123a85ffa21595f36"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := hashService.RIPEMD160([]byte(tc.input))

			if hex.EncodeToString(result[:]) != tc.expected {
				t.Errorf("RIPEMD160(%q) = %x, 期望 %s", tc.input, result, tc.expected)
			}

			// 确保相同输入产生相同哈希（幂等性）
			result2 := hashService.RIPEMD160([]byte(tc.input))
			if result != result2 {
				t.Errorf("RIPEMD160 不具有幂等性")
			}
		})
	}
}

// TestRIPEMD160_MillionA 百万字符输入，覆盖多块压缩路径
func TestRIPEMD160_MillionA(t *testing.T) {
	hashService := NewHashService()

	input := strings.Repeat("a", 1000000)
	result := hashService.RIPEMD160([]byte(input))

	expected := "52783243c1697bdbe16d37f97f68f08325dc1528"
	if hex.EncodeToString(result[:]) != expected {
		t.Errorf("RIPEMD160(10^6 * 'a') = %x, 期望 %s", result, expected)
	}
}

// TestRIPEMD160_CrossCheck 与x/crypto参考实现交叉验证随机输入
func TestRIPEMD160_CrossCheck(t *testing.T) {
	hashService := NewHashService()

	// 覆盖块边界附近的各种长度
	lengths := []int{0, 1, 55, 56, 57, 63, 64, 65, 127, 128, 129, 1000}
	for _, n := range lengths {
		data := make([]byte, n)
		if _, err := rand.Read(data); err != nil {
			t.Fatalf("生成随机数据失败: %v", err)
		}

		result := hashService.RIPEMD160(data)

		reference := ripemd160.New()
		reference.Write(data)
		expected := reference.Sum(nil)

		if !bytes.Equal(result[:], expected) {
			t.Errorf("长度%d: RIPEMD160 = %x, 参考实现 = %x", n, result, expected)
		}
	}
}

func TestSHA256(t *testing.T) {
	hashService := NewHashService()

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"空数据", "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := hashService.SHA256([]byte(tc.input))

			if hex.EncodeToString(result[:]) != tc.expected {
				t.Errorf("SHA256(%q) = %x, 期望 %s", tc.input, result, tc.expected)
			}
		})
	}
}

func TestDoubleSHA256(t *testing.T) {
	hashService := NewHashService()

	data := []byte("hello")

	// 双重哈希等价于两次单哈希
	first := hashService.SHA256(data)
	expected := hashService.SHA256(first[:])
	result := hashService.DoubleSHA256(data)

	if result != expected {
		t.Errorf("DoubleSHA256 = %x, 期望 %x", result, expected)
	}
}

func TestHash160(t *testing.T) {
	hashService := NewHashService()

	data := []byte("hello")

	// Hash160等价于RIPEMD160(SHA256(data))
	sha := hashService.SHA256(data)
	expected := hashService.RIPEMD160(sha[:])
	result := hashService.Hash160(data)

	if result != expected {
		t.Errorf("Hash160 = %x, 期望 %x", result, expected)
	}
}

func TestChecksum(t *testing.T) {
	hashService := NewHashService()

	data := []byte{0x35, 0x01, 0x02, 0x03}

	double := hashService.DoubleSHA256(data)
	result := hashService.Checksum(data)

	if !bytes.Equal(result[:], double[:4]) {
		t.Errorf("Checksum = %x, 期望 %x", result, double[:4])
	}
}

func TestConstantTimeCompare(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     []byte
		expected bool
	}{
		{"相等", []byte{1, 2, 3}, []byte{1, 2, 3}, true},
		{"不相等", []byte{1, 2, 3}, []byte{1, 2, 4}, false},
		{"长度不同", []byte{1, 2}, []byte{1, 2, 3}, false},
		{"均为空", []byte{}, []byte{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ConstantTimeCompare(tc.a, tc.b); got != tc.expected {
				t.Errorf("ConstantTimeCompare(%x, %x) = %v, 期望 %v", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}
