package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cyphera/onramp-engine/internal/types/business"
)

// betterRoute reports whether a beats b: more USDC first, then venue
// priority, then the lower fee tier.
func betterRoute(a, b business.RouteQuote) bool {
	if a.USDCAmount != b.USDCAmount {
		return a.USDCAmount > b.USDCAmount
	}
	if pa, pb := a.VenueType.Priority(), b.VenueType.Priority(); pa != pb {
		return pa < pb
	}
	return feeOf(a.FeeTierBps) < feeOf(b.FeeTierBps)
}

func feeOf(fee *uint32) uint32 {
	if fee == nil {
		return 0
	}
	return *fee
}

// splitAttempts separates successful quotes from skipped branches.
func splitAttempts(attempts []business.RouteAttempt) ([]business.RouteQuote, []business.SkippedRoute) {
	quotes := make([]business.RouteQuote, 0, len(attempts))
	var skipped []business.SkippedRoute
	for _, attempt := range attempts {
		switch {
		case attempt.Quote != nil:
			quotes = append(quotes, *attempt.Quote)
		case attempt.Skip != nil:
			skipped = append(skipped, *attempt.Skip)
		}
	}
	return quotes, skipped
}

// rankRoutes orders quotes best first. The input slice is sorted in place.
func rankRoutes(quotes []business.RouteQuote) []business.RouteQuote {
	sort.SliceStable(quotes, func(i, j int) bool {
		return betterRoute(quotes[i], quotes[j])
	})
	return quotes
}

// SelectBestRoute returns the best quote, or false when there are none.
func SelectBestRoute(quotes []business.RouteQuote) (business.RouteQuote, bool) {
	if len(quotes) == 0 {
		return business.RouteQuote{}, false
	}
	best := quotes[0]
	for _, q := range quotes[1:] {
		if betterRoute(q, best) {
			best = q
		}
	}
	return best, true
}

// FormatRoute renders hops as a display label, e.g.
// "Uniswap V3 0.30% > Uniswap V3 0.05%".
func FormatRoute(hops []business.RouteHop) string {
	parts := make([]string, 0, len(hops))
	for _, hop := range hops {
		label := hop.Venue
		if hop.FeeTierBps != nil {
			label = fmt.Sprintf("%s %s", label, FormatFeeTier(*hop.FeeTierBps))
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " > ")
}

// FormatFeeTier renders a V3 fee tier (hundredths of a bip) as a percentage.
func FormatFeeTier(fee uint32) string {
	return fmt.Sprintf("%.2f%%", float64(fee)/10000)
}
