package address

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/r3e-network/NeoC-sub001/internal/core/infrastructure/crypto/base58"
	"github.com/r3e-network/NeoC-sub001/internal/core/infrastructure/crypto/key"
)

// 已知推导链：私钥 → 压缩公钥 → 标准地址
const (
	fixturePrivateKeyHex = "1dd37fba80fec4e6a6f13fd708d8dcb3b29def768017052f6c930fa1c5d90bbb"
	fixturePublicKeyHex  = "031a6c6fbbdf02ca351745fa86b9ba5a9452d785ac4f7fc2b7548ca2a46c4fcf4a"
	fixtureAddress       = "NbUgTSFvPmsRxmGeWpuuGeJUoRoi6PErcM"

	secondPublicKeyHex = "027a593180860c4037c83c12749845c8ee1424dd297fadcb895e358255d2c7d2b2"
	secondAddress      = "NYuWnGCRUWaMLDCf5rYngLtVivEeRQ1j7u"
)

func newService(t *testing.T) *AddressService {
	t.Helper()
	return NewAddressService(key.NewKeyManager())
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestVerificationScript(t *testing.T) {
	publicKey := mustHex(t, fixturePublicKeyHex)
	script := VerificationScript(publicKey)

	// 布局：PUSHDATA1 33 <公钥> SYSCALL <CheckSig哈希>
	require.Len(t, script, 40)
	require.Equal(t, byte(0x0C), script[0])
	require.Equal(t, byte(33), script[1])
	require.Equal(t, publicKey, script[2:35])
	require.Equal(t, byte(0x41), script[35])
	require.Equal(t, []byte{0x56, 0xE7, 0xB3, 0x27}, script[36:40])
}

func TestPublicKeyToAddress(t *testing.T) {
	s := newService(t)

	testCases := []struct {
		name      string
		publicKey string
		expected  string
	}{
		{"密钥一", fixturePublicKeyHex, fixtureAddress},
		{"密钥二", secondPublicKeyHex, secondAddress},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			addr, err := s.PublicKeyToAddress(mustHex(t, tc.publicKey))
			require.NoError(t, err)
			require.Equal(t, tc.expected, addr)
		})
	}
}

func TestPrivateKeyToAddress(t *testing.T) {
	s := newService(t)

	addr, err := s.PrivateKeyToAddress(mustHex(t, fixturePrivateKeyHex))
	require.NoError(t, err)
	require.Equal(t, fixtureAddress, addr)
}

func TestPrivateKeyToAddress_InvalidKey(t *testing.T) {
	s := newService(t)

	_, err := s.PrivateKeyToAddress(make([]byte, 32))
	require.Error(t, err)
}

func TestAddressScriptHashRoundTrip(t *testing.T) {
	s := newService(t)

	scriptHash, err := s.AddressToScriptHash(fixtureAddress)
	require.NoError(t, err)

	require.Equal(t, fixtureAddress, s.ScriptHashToAddress(scriptHash))
}

func TestValidateAddress(t *testing.T) {
	s := newService(t)

	testCases := []struct {
		name    string
		address string
		wantErr bool
	}{
		{"有效地址一", fixtureAddress, false},
		{"有效地址二", secondAddress, false},
		{"空地址", "", true},
		{"非法字符", "NbUgTSFvPmsRxmGeWpuuGeJUoRoi6PErc0", true},
		{"校验和错误", "NbUgTSFvPmsRxmGeWpuuGeJUoRoi6PErcN", true},
		{"长度不足", "NbUg", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := s.ValidateAddress(tc.address)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// TestAddressToScriptHash_WrongVersion 版本字节不匹配的地址必须被拒绝
func TestAddressToScriptHash_WrongVersion(t *testing.T) {
	s := newService(t)

	// 用比特币P2PKH版本(0x00)构造校验和正确但版本错误的地址
	scriptHash, err := s.AddressToScriptHash(fixtureAddress)
	require.NoError(t, err)

	payload := append([]byte{0x00}, scriptHash[:]...)
	wrongVersion := base58.CheckEncode(payload)

	err = s.ValidateAddress(wrongVersion)
	require.ErrorIs(t, err, ErrInvalidVersion)
}

// TestGeneratedKeyAddress 生成密钥的地址必须通过校验并可往返
func TestGeneratedKeyAddress(t *testing.T) {
	km := key.NewKeyManager()
	s := NewAddressService(km)

	for i := 0; i < 4; i++ {
		_, publicKey, err := km.GenerateKeyPair()
		require.NoError(t, err)

		addr, err := s.PublicKeyToAddress(publicKey)
		require.NoError(t, err)
		require.NoError(t, s.ValidateAddress(addr))
		require.Equal(t, byte('N'), addr[0])

		scriptHash, err := s.AddressToScriptHash(addr)
		require.NoError(t, err)
		require.Equal(t, addr, s.ScriptHashToAddress(scriptHash))
	}
}
