package model

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
)

// Secret codes are bearer tokens, so they come from crypto/rand. The charset
// and length are shared by the generator, the route pattern and the storage
// column width; changing either invalidates every stored secret.
const (
	SecretCharset = "abcdefghijklmnopqrstuvwxyz0123456789"
	SecretLength  = 24
)

var SecretPattern = regexp.MustCompile(fmt.Sprintf("^[%s]{%d}$", SecretCharset, SecretLength))

// GenerateSecret returns a new random campaign secret.
func GenerateSecret() string {
	max := big.NewInt(int64(len(SecretCharset)))
	buf := make([]byte, SecretLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err)
		}
		buf[i] = SecretCharset[n.Int64()]
	}
	return string(buf)
}
