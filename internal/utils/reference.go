package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const refAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewMerchantRef builds a merchant reference "<prefix>-<unixms>-<suffix>".
// The suffix is 6 chars of crypto/rand over a 32-char alphabet, so two
// references generated in the same millisecond still collide with
// probability ~1/32^6. Uniqueness is ultimately enforced by the unique
// index on payments.merchant_ref.
func NewMerchantRef(prefix string) string {
	suffix := make([]byte, 6)
	max := big.NewInt(int64(len(refAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// fall back to a time-derived index; rand.Reader failing is
			// effectively a broken host
			n = big.NewInt(time.Now().UnixNano() % int64(len(refAlphabet)))
		}
		suffix[i] = refAlphabet[n.Int64()]
	}
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), suffix)
}
