// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/spec-engine/pkg/types"
)

// Budget map keys. The validators read these; only this package writes them.
const (
	BudgetTotalCurrentA  = "total_current_a"
	BudgetEstimatedPower = "estimated_power_w"
)

// ratedValue captures the number and unit of a current token.
var ratedValue = regexp.MustCompile(`(?i)^(\d+\.?\d*)\s*(mA|A)$`)

// EstimateBudget sums component current ratings into a total draw in amps
// and, when a supply voltage is known, an estimated power figure. Components
// with no parseable current rating contribute nothing: the estimate is a
// floor, not a guarantee. Batteries are skipped: a pack's C-rated output
// is supply, not draw.
func EstimateBudget(p *types.Project) map[string]float64 {
	totalAmps := 0.0
	for _, c := range p.Components {
		if c.Type == types.TypeBattery {
			continue
		}
		if amps, ok := currentAmps(c.Power.CurrentRating); ok {
			totalAmps += amps
		}
	}

	if totalAmps == 0 {
		return nil
	}

	budget := map[string]float64{
		BudgetTotalCurrentA: totalAmps,
	}
	if v, ok := supplyVoltage(p); ok {
		budget[BudgetEstimatedPower] = totalAmps * v
	}
	return budget
}

// currentAmps converts a raw current token to amps.
func currentAmps(token string) (float64, bool) {
	m := ratedValue.FindStringSubmatch(strings.TrimSpace(token))
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	if strings.EqualFold(m[2], "mA") {
		v /= 1000
	}
	return v, true
}

// supplyVoltage picks the system supply voltage for the power estimate: the
// first battery's input voltage when one exists, otherwise the highest
// input voltage seen across components.
func supplyVoltage(p *types.Project) (float64, bool) {
	for _, c := range p.Components {
		if c.Type != types.TypeBattery || c.Power.VoltageInput == "" {
			continue
		}
		if v, ok := leadingFloat(c.Power.VoltageInput); ok {
			return v, true
		}
	}

	best := 0.0
	found := false
	for _, c := range p.Components {
		if c.Power.VoltageInput == "" {
			continue
		}
		if v, ok := leadingFloat(c.Power.VoltageInput); ok && v > best {
			best = v
			found = true
		}
	}
	return best, found
}

// leadingFloat parses the leading numeric portion of a spec token.
var leadingFloatRe = regexp.MustCompile(`^(\d+\.?\d*)`)

func leadingFloat(token string) (float64, bool) {
	m := leadingFloatRe.FindStringSubmatch(strings.TrimSpace(token))
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	return v, err == nil
}
