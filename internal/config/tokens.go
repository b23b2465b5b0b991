package config

import (
	"strings"

	"github.com/cyphera/onramp-engine/internal/constants"
	"github.com/cyphera/onramp-engine/internal/types/business"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mr-tron/base58"
)

// IsValidAddress checks the address format for the chain family.
func IsValidAddress(chain *Chain, address string) bool {
	if chain.IsEVM() {
		return common.IsHexAddress(address)
	}
	decoded, err := base58.Decode(address)
	return err == nil && len(decoded) == 32
}

// SameAddress compares two addresses using the chain's rules. EVM addresses
// are case-insensitive, Solana mints are not.
func SameAddress(chain *Chain, a, b string) bool {
	if chain.IsEVM() {
		return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
	}
	return strings.TrimSpace(a) == strings.TrimSpace(b)
}

// IsNativeAsset is true for the chain's native coin symbol (any case), its
// wrapped representation and any legacy placeholder address.
func IsNativeAsset(chain *Chain, symbolOrAddress string) bool {
	s := strings.TrimSpace(symbolOrAddress)
	if s == "" {
		return false
	}
	if strings.EqualFold(s, chain.NativeSymbol) || strings.EqualFold(s, chain.WrappedNative.Symbol) {
		return true
	}
	if SameAddress(chain, s, chain.WrappedNative.Address) {
		return true
	}
	for _, legacy := range chain.LegacyNativeAddresses {
		if SameAddress(chain, s, legacy) {
			return true
		}
	}
	return false
}

// IsReferenceToken reports whether the token is the chain's USDC.
func IsReferenceToken(chain *Chain, symbolOrAddress string) bool {
	s := strings.TrimSpace(symbolOrAddress)
	return strings.EqualFold(s, chain.USDC.Symbol) || SameAddress(chain, s, chain.USDC.Address)
}

// EffectivePricingAddress maps the native coin onto its wrapped token, since
// AMMs and aggregators only quote token-shaped assets.
func EffectivePricingAddress(chain *Chain, token business.TokenInfo) string {
	if token.IsNative || IsNativeAsset(chain, token.Address) {
		return chain.WrappedNative.Address
	}
	return token.Address
}

// NormalizeAddress rewrites native symbols and legacy placeholders to the
// canonical wrapped address and checksums EVM addresses.
func NormalizeAddress(chain *Chain, symbolOrAddress string) string {
	s := strings.TrimSpace(symbolOrAddress)
	if IsNativeAsset(chain, s) {
		return chain.WrappedNative.Address
	}
	if chain.IsEVM() && common.IsHexAddress(s) {
		return common.HexToAddress(s).Hex()
	}
	return s
}

// LookupToken searches only the known-token tables.
func LookupToken(chain *Chain, symbolOrAddress string) (*business.TokenInfo, bool) {
	s := strings.TrimSpace(symbolOrAddress)
	if s == "" {
		return nil, false
	}

	if strings.EqualFold(s, chain.NativeSymbol) {
		native := chain.WrappedNative
		native.Symbol = chain.NativeSymbol
		native.Name = chain.NativeSymbol
		native.IsNative = true
		return &native, true
	}
	for _, legacy := range chain.LegacyNativeAddresses {
		if SameAddress(chain, s, legacy) {
			wrapped := chain.WrappedNative
			wrapped.IsNative = true
			return &wrapped, true
		}
	}

	candidates := make([]business.TokenInfo, 0, len(chain.Tokens)+2)
	candidates = append(candidates, chain.USDC, chain.WrappedNative)
	candidates = append(candidates, chain.Tokens...)
	for _, token := range candidates {
		if SameAddress(chain, s, token.Address) || strings.EqualFold(s, token.Symbol) {
			found := token
			found.IsNative = SameAddress(chain, token.Address, chain.WrappedNative.Address)
			return &found, true
		}
	}
	return nil, false
}

// ResolveToken looks up the known-token table first and falls back to an
// UNKNOWN placeholder for well-formed addresses. Returns false for input that
// is neither a known symbol nor a valid address.
func ResolveToken(chain *Chain, symbolOrAddress string) (*business.TokenInfo, bool) {
	if token, ok := LookupToken(chain, symbolOrAddress); ok {
		return token, true
	}
	s := strings.TrimSpace(symbolOrAddress)
	if !IsValidAddress(chain, s) {
		return nil, false
	}
	decimals := int32(constants.DefaultEVMDecimals)
	if !chain.IsEVM() {
		decimals = constants.DefaultSolanaDecimals
	}
	return &business.TokenInfo{
		Symbol:   constants.UnknownTokenSymbol,
		Name:     constants.UnknownTokenName,
		Decimals: decimals,
		Address:  NormalizeAddress(chain, s),
		Network:  chain.Network,
	}, true
}

// IsUnknown reports whether a token was resolved through the placeholder path.
func IsUnknown(token business.TokenInfo) bool {
	return token.Symbol == constants.UnknownTokenSymbol
}
