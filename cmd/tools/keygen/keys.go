package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	generateEncrypt bool
	generateShowHex bool
	encryptPassword string
	decryptPassword string
	decryptShowHex  bool
)

// generateCmd 生成新密钥对
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "生成新的密钥对",
	Long: `生成新的P-256密钥对并展示其压缩公钥、标准地址和WIF。

示例：
  neoc-keygen generate                 # 生成并以WIF展示私钥
  neoc-keygen generate --encrypt       # 生成并用密码加密私钥
  neoc-keygen generate --hex           # 同时以十六进制展示私钥`,
	RunE: func(cmd *cobra.Command, args []string) error {
		keyManager, addressService, keyCrypt := newServices()

		privateKey, publicKey, err := keyManager.GenerateKeyPair()
		if err != nil {
			return fmt.Errorf("生成密钥对失败: %w", err)
		}
		defer zero(privateKey[:])

		addr, err := addressService.PublicKeyToAddress(publicKey)
		if err != nil {
			return fmt.Errorf("推导地址失败: %w", err)
		}

		fmt.Printf("公钥:   %s\n", hex.EncodeToString(publicKey))
		fmt.Printf("地址:   %s\n", addr)

		if generateShowHex {
			fmt.Printf("私钥:   %s\n", hex.EncodeToString(privateKey[:]))
		}

		if generateEncrypt {
			password, err := promptNewPassword()
			if err != nil {
				return err
			}

			encrypted, err := keyCrypt.EncryptKeyWithParams(password, privateKey[:], scryptParams())
			if err != nil {
				return fmt.Errorf("加密私钥失败: %w", err)
			}
			fmt.Printf("加密密钥: %s\n", encrypted)
			return nil
		}

		wif, err := keyCrypt.ExportWIF(privateKey[:])
		if err != nil {
			return fmt.Errorf("导出WIF失败: %w", err)
		}
		fmt.Printf("WIF:    %s\n", wif)
		fmt.Println()
		fmt.Println("⚠️  请安全保存私钥，建议使用 encrypt 命令进行密码保护")
		return nil
	},
}

// encryptCmd 加密私钥
var encryptCmd = &cobra.Command{
	Use:   "encrypt <wif>",
	Short: "使用密码加密私钥",
	Long: `使用密码加密WIF格式的私钥，输出可安全存放的编码记录。

记录布局遵循NEP2：scrypt派生密钥，私钥与派生值异或后
经AES-256-ECB加密，并嵌入4字节地址哈希用于解密自校验。

示例：
  neoc-keygen encrypt KxDgvEK...              # 标准成本参数
  neoc-keygen encrypt -n 256 -r 1 -p 1 Kx...  # 低成本参数（仅测试用）`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, keyCrypt := newServices()

		privateKey, err := keyCrypt.ImportWIF(strings.TrimSpace(args[0]))
		if err != nil {
			return fmt.Errorf("解析WIF失败: %w", err)
		}
		defer zero(privateKey[:])

		password := encryptPassword
		if password == "" {
			password, err = promptNewPassword()
			if err != nil {
				return err
			}
		}

		encrypted, err := keyCrypt.EncryptKeyWithParams(password, privateKey[:], scryptParams())
		if err != nil {
			return fmt.Errorf("加密私钥失败: %w", err)
		}

		fmt.Printf("加密密钥: %s\n", encrypted)
		return nil
	},
}

// decryptCmd 解密受保护的密钥记录
var decryptCmd = &cobra.Command{
	Use:   "decrypt <encrypted-key>",
	Short: "解密受密码保护的密钥记录",
	Long: `使用密码解密编码的密钥记录，还原WIF格式的私钥。

解密使用记录内嵌的地址哈希自校验：密码错误与记录损坏
统一报告为认证失败。成本参数必须与加密时一致。`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, addressService, keyCrypt := newServices()

		password := decryptPassword
		if password == "" {
			var err error
			password, err = promptPassword("请输入密码")
			if err != nil {
				return err
			}
		}

		privateKey, err := keyCrypt.DecryptKeyWithParams(password, strings.TrimSpace(args[0]), scryptParams())
		if err != nil {
			return fmt.Errorf("解密失败: %w", err)
		}
		defer zero(privateKey[:])

		addr, err := addressService.PrivateKeyToAddress(privateKey[:])
		if err != nil {
			return fmt.Errorf("推导地址失败: %w", err)
		}

		wif, err := keyCrypt.ExportWIF(privateKey[:])
		if err != nil {
			return fmt.Errorf("导出WIF失败: %w", err)
		}

		fmt.Printf("地址:   %s\n", addr)
		fmt.Printf("WIF:    %s\n", wif)
		if decryptShowHex {
			fmt.Printf("私钥:   %s\n", hex.EncodeToString(privateKey[:]))
		}
		return nil
	},
}

// inspectCmd 检查地址或WIF
var inspectCmd = &cobra.Command{
	Use:   "inspect <address|wif>",
	Short: "检查地址或WIF私钥",
	Long: `检查地址的有效性并展示其脚本哈希；
或解析WIF私钥并展示对应的公钥与地址。`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keyManager, addressService, keyCrypt := newServices()
		input := strings.TrimSpace(args[0])

		// 优先按地址解析
		if err := addressService.ValidateAddress(input); err == nil {
			scriptHash, err := addressService.AddressToScriptHash(input)
			if err != nil {
				return fmt.Errorf("解码地址失败: %w", err)
			}
			fmt.Printf("类型:     地址\n")
			fmt.Printf("地址:     %s\n", input)
			fmt.Printf("脚本哈希: %s\n", hex.EncodeToString(scriptHash[:]))
			return nil
		}

		// 回退到WIF解析
		privateKey, err := keyCrypt.ImportWIF(input)
		if err != nil {
			return fmt.Errorf("输入既不是有效地址也不是有效WIF: %w", err)
		}
		defer zero(privateKey[:])

		publicKey, err := keyManager.DerivePublicKey(privateKey[:])
		if err != nil {
			return fmt.Errorf("导出公钥失败: %w", err)
		}

		addr, err := addressService.PublicKeyToAddress(publicKey)
		if err != nil {
			return fmt.Errorf("推导地址失败: %w", err)
		}

		fmt.Printf("类型:   WIF私钥\n")
		fmt.Printf("公钥:   %s\n", hex.EncodeToString(publicKey))
		fmt.Printf("地址:   %s\n", addr)
		return nil
	},
}

func init() {
	generateCmd.Flags().BoolVar(&generateEncrypt, "encrypt", false, "生成后立即用密码加密私钥")
	generateCmd.Flags().BoolVar(&generateShowHex, "hex", false, "以十六进制展示私钥")
	encryptCmd.Flags().StringVar(&encryptPassword, "password", "", "密码（不建议；默认交互式输入）")
	decryptCmd.Flags().StringVar(&decryptPassword, "password", "", "密码（不建议；默认交互式输入）")
	decryptCmd.Flags().BoolVar(&decryptShowHex, "hex", false, "以十六进制展示私钥")
}

// zero 清除内存中的敏感字节
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
