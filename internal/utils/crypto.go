// internal/utils/crypto.go
package utils

import (
	"crypto/sha256"
	"errors"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/mr-tron/base58"
)

// multihash prefix for sha2-256 with a 32 byte digest
var sha256Multihash = []byte{0x12, 0x20}

// IsEVMAddress reports whether s is a 0x-prefixed 20-byte hex address.
// Checksum casing is not enforced.
func IsEVMAddress(s string) bool {
	return strings.HasPrefix(s, "0x") && common.IsHexAddress(s)
}

var (
	ErrInvalidTokenID = errors.New("tokenId must be a non-negative integer below 2^256")

	tokenIDPattern = regexp.MustCompile(`^([0-9]+)(?:\.([0-9]+))?(?:[eE]([+-]?[0-9]{1,3}))?$`)
	maxTokenID     = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
)

// CanonicalTokenID returns the plain decimal form of an ERC-721 token id, so
// that "1000", "01000", "1e3" and "1000.0" all name the same token. Fractions,
// negatives and values outside uint256 are rejected.
func CanonicalTokenID(raw string) (string, error) {
	m := tokenIDPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return "", ErrInvalidTokenID
	}
	digits, frac := m[1], strings.TrimRight(m[2], "0")
	exp := 0
	if m[3] != "" {
		var err error
		if exp, err = strconv.Atoi(m[3]); err != nil {
			return "", ErrInvalidTokenID
		}
	}

	// value = digits.frac × 10^exp = (digits‖frac) × 10^(exp-len(frac))
	mantissa, ok := new(big.Int).SetString(digits+frac, 10)
	if !ok {
		return "", ErrInvalidTokenID
	}
	scale := exp - len(frac)
	ten := big.NewInt(10)
	if scale >= 0 {
		if scale > 78 && mantissa.Sign() != 0 {
			return "", ErrInvalidTokenID
		}
		mantissa.Mul(mantissa, new(big.Int).Exp(ten, big.NewInt(int64(scale)), nil))
	} else {
		q, r := new(big.Int).QuoRem(mantissa, new(big.Int).Exp(ten, big.NewInt(int64(-scale)), nil), new(big.Int))
		if r.Sign() != 0 {
			return "", ErrInvalidTokenID
		}
		mantissa = q
	}

	if mantissa.Cmp(maxTokenID) > 0 {
		return "", ErrInvalidTokenID
	}
	return mantissa.String(), nil
}

// IsCanonicalTokenID reports whether s is already in CanonicalTokenID form.
func IsCanonicalTokenID(s string) bool {
	canonical, err := CanonicalTokenID(s)
	return err == nil && canonical == s
}

// DeriveChainAssetID maps a source NFT to its 8-byte chain asset id: the
// leading bytes of keccak256(address || tokenId).
func DeriveChainAssetID(sourceContract, tokenID string) string {
	addr := common.HexToAddress(sourceContract)
	digest := crypto.Keccak256(addr.Bytes(), []byte(strings.TrimSpace(tokenID)))
	return hexutil.Encode(digest[:8])
}

// DeriveTxHash builds a deterministic 32-byte transaction reference from its
// parts.
func DeriveTxHash(parts ...string) string {
	data := make([][]byte, 0, len(parts))
	for _, p := range parts {
		data = append(data, []byte(p))
	}
	return crypto.Keccak256Hash(data...).Hex()
}

// ContentDigestCID returns the CIDv0 (base58 sha2-256 multihash) of content.
func ContentDigestCID(content []byte) string {
	sum := sha256.Sum256(content)
	return base58.Encode(append(append([]byte{}, sha256Multihash...), sum[:]...))
}
