// neoc-keygen 是NeoC的密钥工具
//
// 提供密钥对生成、NEP2风格的密码保护加解密、WIF导入导出
// 以及地址检查等钱包密钥操作。
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
