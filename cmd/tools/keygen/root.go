package main

import (
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/r3e-network/NeoC-sub001/internal/core/infrastructure/crypto/address"
	"github.com/r3e-network/NeoC-sub001/internal/core/infrastructure/crypto/key"
	"github.com/r3e-network/NeoC-sub001/internal/core/infrastructure/crypto/keycrypt"
	cryptointf "github.com/r3e-network/NeoC-sub001/pkg/interfaces/infrastructure/crypto"
)

// GlobalFlags 全局标志
type GlobalFlags struct {
	Plain   bool // 外层使用裸Base58编码（不带Check校验和）
	ScryptN int  // scrypt CPU/内存成本参数
	ScryptR int  // scrypt块大小参数
	ScryptP int  // scrypt并行度参数
}

var globalFlags GlobalFlags

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "neoc-keygen",
	Short: "NeoC 密钥工具",
	Long: `NeoC 密钥工具 - 钱包密钥的生成与保护

提供完整的钱包密钥操作:
- 生成新的P-256密钥对及其标准地址
- 使用密码加密私钥（NEP2布局，scrypt + AES-256-ECB）
- 解密受保护的密钥记录
- WIF格式的明文导入导出
- 检查地址与密钥记录

加密成本参数可通过 -n/-r/-p 调整，默认为标准的 16384/8/8。`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&globalFlags.Plain, "plain", false, "外层使用裸Base58编码（默认Base58Check）")
	rootCmd.PersistentFlags().IntVarP(&globalFlags.ScryptN, "scrypt-n", "n", 16384, "scrypt CPU/内存成本参数（2的幂）")
	rootCmd.PersistentFlags().IntVarP(&globalFlags.ScryptR, "scrypt-r", "r", 8, "scrypt块大小参数")
	rootCmd.PersistentFlags().IntVarP(&globalFlags.ScryptP, "scrypt-p", "p", 8, "scrypt并行度参数")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(decryptCmd)
	rootCmd.AddCommand(inspectCmd)
}

// newServices 构建命令所需的密钥服务集合
func newServices() (*key.KeyManager, *address.AddressService, *keycrypt.KeyCryptService) {
	keyManager := key.NewKeyManager()
	addressService := address.NewAddressService(keyManager)

	profile := cryptointf.ProfileChecked
	if globalFlags.Plain {
		profile = cryptointf.ProfilePlain
	}
	keyCrypt := keycrypt.NewKeyCryptServiceWithProfile(keyManager, addressService, profile)

	return keyManager, addressService, keyCrypt
}

// scryptParams 从全局标志得到成本三元组
func scryptParams() cryptointf.ScryptParams {
	return cryptointf.ScryptParams{
		N: globalFlags.ScryptN,
		R: globalFlags.ScryptR,
		P: globalFlags.ScryptP,
	}
}

// promptPassword 安全地提示用户输入密码（不回显）
func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt + ": ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", fmt.Errorf("读取密码失败: %w", err)
	}
	fmt.Println()
	return string(bytePassword), nil
}

// promptNewPassword 提示输入并确认新密码
func promptNewPassword() (string, error) {
	password, err := promptPassword("请输入密码")
	if err != nil {
		return "", err
	}

	confirm, err := promptPassword("请确认密码")
	if err != nil {
		return "", err
	}

	if password != confirm {
		return "", fmt.Errorf("密码不匹配")
	}
	return password, nil
}
