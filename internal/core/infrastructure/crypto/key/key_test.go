package key

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// 已知密钥对：私钥与其压缩公钥
const (
	fixturePrivateKeyHex = "1dd37fba80fec4e6a6f13fd708d8dcb3b29def768017052f6c930fa1c5d90bbb"
	fixturePublicKeyHex  = "031a6c6fbbdf02ca351745fa86b9ba5a9452d785ac4f7fc2b7548ca2a46c4fcf4a"
)

// P-256曲线阶
const curveOrderHex = "ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551"

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestGenerateKeyPair(t *testing.T) {
	km := NewKeyManager()

	privateKey, publicKey, err := km.GenerateKeyPair()
	require.NoError(t, err)
	require.Len(t, publicKey, 33)
	require.Contains(t, []byte{0x02, 0x03}, publicKey[0])

	// 生成的私钥必须通过校验
	require.NoError(t, km.ValidatePrivateKey(privateKey[:]))
	require.NoError(t, km.ValidatePublicKey(publicKey))

	// 公钥必须与私钥重新推导的一致
	derived, err := km.DerivePublicKey(privateKey[:])
	require.NoError(t, err)
	require.Equal(t, publicKey, derived)
}

func TestGenerateKeyPair_Unique(t *testing.T) {
	km := NewKeyManager()

	first, _, err := km.GenerateKeyPair()
	require.NoError(t, err)
	second, _, err := km.GenerateKeyPair()
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestDerivePublicKey(t *testing.T) {
	km := NewKeyManager()

	publicKey, err := km.DerivePublicKey(mustHex(t, fixturePrivateKeyHex))
	require.NoError(t, err)
	require.Equal(t, fixturePublicKeyHex, hex.EncodeToString(publicKey))
}

func TestValidatePrivateKey(t *testing.T) {
	km := NewKeyManager()

	orderBytes := mustHex(t, curveOrderHex)
	orderMinusOne := make([]byte, 32)
	copy(orderMinusOne, orderBytes)
	orderMinusOne[31]--

	testCases := []struct {
		name    string
		key     []byte
		wantErr bool
	}{
		{"有效私钥", mustHex(t, fixturePrivateKeyHex), false},
		{"阶减一", orderMinusOne, false},
		{"全零", make([]byte, 32), true},
		{"等于曲线阶", orderBytes, true},
		{"长度过短", make([]byte, 31), true},
		{"长度过长", make([]byte, 33), true},
		{"空输入", nil, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := km.ValidatePrivateKey(tc.key)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidPrivateKey)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidatePublicKey(t *testing.T) {
	km := NewKeyManager()

	valid := mustHex(t, fixturePublicKeyHex)

	badPrefix := make([]byte, 33)
	copy(badPrefix, valid)
	badPrefix[0] = 0x05

	testCases := []struct {
		name    string
		key     []byte
		wantErr bool
	}{
		{"压缩公钥", valid, false},
		{"非法前缀", badPrefix, true},
		{"长度错误", valid[:32], true},
		{"空输入", nil, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := km.ValidatePublicKey(tc.key)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidPublicKey)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCompressDecompressPublicKey(t *testing.T) {
	km := NewKeyManager()

	compressed := mustHex(t, fixturePublicKeyHex)

	// 解压后必须为65字节未压缩格式
	uncompressed, err := km.DecompressPublicKey(compressed)
	require.NoError(t, err)
	require.Len(t, uncompressed, 65)
	require.Equal(t, byte(0x04), uncompressed[0])
	require.NoError(t, km.ValidatePublicKey(uncompressed))

	// 再压缩必须还原
	recompressed, err := km.CompressPublicKey(uncompressed)
	require.NoError(t, err)
	require.Equal(t, compressed, recompressed)
}

func TestCompressDecompress_Random(t *testing.T) {
	km := NewKeyManager()

	for i := 0; i < 8; i++ {
		_, compressed, err := km.GenerateKeyPair()
		require.NoError(t, err)

		uncompressed, err := km.DecompressPublicKey(compressed)
		require.NoError(t, err)

		recompressed, err := km.CompressPublicKey(uncompressed)
		require.NoError(t, err)
		require.Equal(t, compressed, recompressed)
	}
}

func TestDecompressPublicKey_Invalid(t *testing.T) {
	km := NewKeyManager()

	// x坐标无对应曲线点
	notOnCurve := make([]byte, 33)
	notOnCurve[0] = 0x02
	for i := 1; i < 33; i++ {
		notOnCurve[i] = 0xFF
	}

	_, err := km.DecompressPublicKey(notOnCurve)
	require.Error(t, err)
}

func TestPrivateKeyToECDSA(t *testing.T) {
	km := NewKeyManager()

	priv, err := km.PrivateKeyToECDSA(mustHex(t, fixturePrivateKeyHex))
	require.NoError(t, err)

	// 转换后的公钥与压缩推导一致
	compressed := mustHex(t, fixturePublicKeyHex)
	pub, err := km.PublicKeyToECDSA(compressed)
	require.NoError(t, err)
	require.Equal(t, 0, priv.PublicKey.X.Cmp(pub.X))
	require.Equal(t, 0, priv.PublicKey.Y.Cmp(pub.Y))
}

func TestPublicKeyToECDSA_BothForms(t *testing.T) {
	km := NewKeyManager()

	compressed := mustHex(t, fixturePublicKeyHex)
	uncompressed, err := km.DecompressPublicKey(compressed)
	require.NoError(t, err)

	fromCompressed, err := km.PublicKeyToECDSA(compressed)
	require.NoError(t, err)
	fromUncompressed, err := km.PublicKeyToECDSA(uncompressed)
	require.NoError(t, err)

	require.Equal(t, 0, fromCompressed.X.Cmp(fromUncompressed.X))
	require.Equal(t, 0, fromCompressed.Y.Cmp(fromUncompressed.Y))
}
