package crypto

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	cryptointf "github.com/r3e-network/NeoC-sub001/pkg/interfaces/infrastructure/crypto"
)

func TestCreateCryptoServices(t *testing.T) {
	output, err := CreateCryptoServices(ServiceInput{})
	require.NoError(t, err)
	require.NotNil(t, output.HashManager)
	require.NotNil(t, output.KeyManager)
	require.NotNil(t, output.AddressManager)
	require.NotNil(t, output.SignatureManager)
	require.NotNil(t, output.KeyCryptManager)
}

// TestCreateCryptoServices_EndToEnd 通过接口完成一次完整的钱包密钥流程
func TestCreateCryptoServices_EndToEnd(t *testing.T) {
	output, err := CreateCryptoServices(ServiceInput{})
	require.NoError(t, err)

	// 生成 → 推导地址 → 签名验签 → 加解密
	privateKey, publicKey, err := output.KeyManager.GenerateKeyPair()
	require.NoError(t, err)

	addr, err := output.AddressManager.PublicKeyToAddress(publicKey)
	require.NoError(t, err)
	require.NoError(t, output.AddressManager.ValidateAddress(addr))

	digest := output.HashManager.SHA256([]byte("hello neoc"))
	require.Equal(t, sha256.Sum256([]byte("hello neoc")), digest)

	sig, err := output.SignatureManager.Sign(digest[:], privateKey[:])
	require.NoError(t, err)
	require.True(t, output.SignatureManager.Verify(digest[:], sig, publicKey))

	params := cryptointf.ScryptParams{N: 256, R: 1, P: 1}
	encrypted, err := output.KeyCryptManager.EncryptKeyWithParams("pass", privateKey[:], params)
	require.NoError(t, err)

	decrypted, err := output.KeyCryptManager.DecryptKeyWithParams("pass", encrypted, params)
	require.NoError(t, err)
	require.Equal(t, privateKey, decrypted)
}

// TestModule fx模块装配后能提供全部五个管理器
func TestModule(t *testing.T) {
	var (
		hashManager     cryptointf.HashManager
		keyManager      cryptointf.KeyManager
		keyCryptManager cryptointf.KeyCryptManager
	)

	app := fx.New(
		Module(),
		fx.Populate(&hashManager, &keyManager, &keyCryptManager),
		fx.NopLogger,
	)
	require.NoError(t, app.Err())
	require.NotNil(t, hashManager)
	require.NotNil(t, keyManager)
	require.NotNil(t, keyCryptManager)
}
