package suggest

import (
	"fmt"
	"strings"

	"github.com/thelineup/draft-engine/internal/analysis"
	"github.com/thelineup/draft-engine/internal/models"
)

// signalContext carries everything a signal may inspect about a candidate.
// Signals are pure over the context; the engine sums their contributions.
type signalContext struct {
	candidate *models.PlayerRecord
	index     int // position in the ranked candidate list
	ranked    []models.PlayerRecord
	available []models.PlayerRecord
	roster    []*models.PlayerRecord

	weakCategories []models.Category // non-punted weak categories
	punt           analysis.PuntReport

	round          int
	draftSlot      int
	numTeams       int
	picksUntilNext int
}

// signal evaluates one independent scoring heuristic. A signal that does
// not fire returns zero points and no reasons.
type signal func(w Weights, ctx *signalContext) (points float64, reasons []string)

// signals run in evaluation order; reason ordering follows it.
var signals = []signal{
	puntFitSignal,
	positionScarcitySignal,
	categoryNeedSignal,
	adpValueSignal,
	positionNeedSignal,
	advancedStatsSignal,
	tierSignal,
	roundStageSignal,
	pickDistanceSignal,
}

// puntFitSignal rewards candidates whose strengths line up with the
// categories the roster is keeping, once a punt strategy is active.
func puntFitSignal(w Weights, ctx *signalContext) (float64, []string) {
	if !ctx.punt.Active() {
		return 0, nil
	}
	punted := ctx.punt.PuntedCategories()

	contribution := 0.0
	for _, c := range models.Categories {
		if punted[c] {
			continue
		}
		if z := ctx.candidate.ZScore(c); z > 0 {
			contribution += z
		}
	}

	shorts := make([]string, 0, len(punted))
	for _, c := range models.Categories {
		if punted[c] {
			shorts = append(shorts, c.Short())
		}
	}
	label := strings.Join(shorts, "/")

	switch {
	case contribution >= w.PuntFitStrongAt:
		return w.PuntFitStrong, []string{fmt.Sprintf("Elite fit for your punt-%s build", label)}
	case contribution >= w.PuntFitGoodAt:
		return w.PuntFitGood, []string{fmt.Sprintf("Good fit for your punt-%s build", label)}
	case contribution >= w.PuntFitDecentAt:
		return w.PuntFitDecent, []string{fmt.Sprintf("Fits your punt-%s build", label)}
	default:
		return 0, nil
	}
}

// positionScarcitySignal fires when few elite players remain at the
// candidate's primary position.
func positionScarcitySignal(w Weights, ctx *signalContext) (float64, []string) {
	primary := ctx.candidate.PrimaryPosition()
	if primary == "" {
		return 0, nil
	}

	elite := 0
	for i := range ctx.available {
		p := &ctx.available[i]
		if p.TotalZScore > w.ScarcityEliteScore && p.PrimaryPosition() == primary {
			elite++
		}
	}

	switch {
	case elite <= w.ScarcityTightCount:
		return w.ScarcityTight, []string{fmt.Sprintf("Only %d elite %ss left", elite, primary)}
	case elite <= w.ScarcityLimitedCount:
		return w.ScarcityLimited, []string{fmt.Sprintf("Limited elite %s options remaining", primary)}
	default:
		return 0, nil
	}
}

// categoryNeedSignal rewards candidates who shore up weak non-punted
// categories.
func categoryNeedSignal(w Weights, ctx *signalContext) (float64, []string) {
	points := 0.0
	var strengths []string
	for _, c := range ctx.weakCategories {
		if ctx.candidate.ZScore(c) > w.CategoryNeedZScore {
			points += w.CategoryNeed
			strengths = append(strengths, c.Short())
		}
	}
	if len(strengths) == 0 {
		return 0, nil
	}
	return points, []string{fmt.Sprintf("Addresses team weaknesses: %s", strings.Join(strengths, ", "))}
}

// adpValueSignal compares the candidate's ADP against the current overall
// pick. It does not fire for players without an ADP: unranked players have
// no market price to beat.
func adpValueSignal(w Weights, ctx *signalContext) (float64, []string) {
	if ctx.candidate.ADP == nil {
		return 0, nil
	}
	currentPick := (ctx.round-1)*ctx.numTeams + ctx.draftSlot
	adpValue := *ctx.candidate.ADP - float64(currentPick)

	switch {
	case adpValue > w.ADPExcellentAt:
		return w.ADPExcellent, []string{fmt.Sprintf("Excellent value - typically drafted %d picks later", int(adpValue))}
	case adpValue > w.ADPGoodAt:
		return w.ADPGood, []string{fmt.Sprintf("Good value - ADP suggests pick %d", int(*ctx.candidate.ADP))}
	case adpValue < w.ADPReachAt:
		return w.ADPReach, []string{fmt.Sprintf("Reaching early - ADP is pick %d", int(*ctx.candidate.ADP))}
	default:
		return 0, nil
	}
}

// positionNeedSignal fills roster gaps; center and point guard depth gets
// a smaller bonus because those slots are scarce and foundational.
func positionNeedSignal(w Weights, ctx *signalContext) (float64, []string) {
	primary := ctx.candidate.PrimaryPosition()
	if primary == "" || len(ctx.roster) == 0 {
		return 0, nil
	}

	count := 0
	for _, p := range ctx.roster {
		for _, token := range models.SplitPosition(p.Position) {
			if token == primary {
				count++
				break
			}
		}
	}

	switch {
	case count == 0:
		return w.PositionFill, []string{fmt.Sprintf("Fills %s need", primary)}
	case count == 1 && (primary == "C" || primary == "PG"):
		return w.PositionDepth, []string{fmt.Sprintf("Adds %s depth", primary)}
	default:
		return 0, nil
	}
}

// advancedStatsSignal folds usage, efficiency, PER, age, and durability
// into small bonuses. All contributions count toward the score; only the
// first two insights surface as reasons to keep suggestions readable.
func advancedStatsSignal(w Weights, ctx *signalContext) (float64, []string) {
	p := ctx.candidate
	points := 0.0
	var insights []string

	if p.UsageRate != nil {
		switch {
		case *p.UsageRate > 0.28:
			points += w.UsageHigh
			insights = append(insights, "High usage player")
		case *p.UsageRate > 0.25:
			points += w.UsageAbove
			insights = append(insights, "Above average usage")
		}
	}

	if p.TrueShootingPct != nil {
		switch {
		case *p.TrueShootingPct > 0.60:
			points += w.TSElite
			insights = append(insights, "Elite shooting efficiency")
		case *p.TrueShootingPct > 0.55:
			points += w.TSGood
			insights = append(insights, "Good shooting efficiency")
		case *p.TrueShootingPct < 0.50:
			points += w.TSPoor
			insights = append(insights, "Below average efficiency")
		}
	}

	if p.EfficiencyRating != nil {
		switch {
		case *p.EfficiencyRating > 25:
			points += w.PERElite
			insights = append(insights, "Elite PER")
		case *p.EfficiencyRating > 20:
			points += w.PERStrong
			insights = append(insights, "Strong PER")
		case *p.EfficiencyRating > 15:
			points += w.PERAbove
		}
	}

	if p.Age != nil {
		switch {
		case *p.Age <= 25:
			points += w.AgeYoung
			insights = append(insights, "Young with upside")
		case *p.Age <= 27:
			points += w.AgePrime
			insights = append(insights, "Prime age")
		case *p.Age >= 32:
			points += w.AgeVeteran
			insights = append(insights, "Veteran (age risk)")
		}
	}

	if p.GamesPlayed != nil {
		switch {
		case *p.GamesPlayed >= 70:
			points += w.GamesDurable
			insights = append(insights, "Durable (70+ games)")
		case *p.GamesPlayed < 50:
			points += w.GamesInjury
			insights = append(insights, "Injury concerns")
		}
	}

	if points == 0 && len(insights) == 0 {
		return 0, nil
	}
	if len(insights) > 2 {
		insights = insights[:2]
	}
	return points, insights
}

// tierSignal rewards absolute composite-rating tiers and a steep drop to
// the next-ranked candidate.
func tierSignal(w Weights, ctx *signalContext) (float64, []string) {
	points := 0.0
	var reasons []string
	z := ctx.candidate.TotalZScore

	switch {
	case z > 10:
		points += w.TierElite
		reasons = append(reasons, "Elite tier player")
	case z > 7:
		points += w.TierHigh
		reasons = append(reasons, "High-tier option")
	case z > 4:
		points += w.TierSolid
		reasons = append(reasons, "Solid contributor")
	}

	if ctx.index < len(ctx.ranked)-1 {
		drop := z - ctx.ranked[ctx.index+1].TotalZScore
		if drop > w.TierCliffDrop {
			points += w.TierCliff
			reasons = append(reasons, "Significant tier drop after this pick")
		}
	}

	if points == 0 {
		return 0, nil
	}
	return points, reasons
}

// roundStageSignal calibrates the rating bar to the stage of the draft.
func roundStageSignal(w Weights, ctx *signalContext) (float64, []string) {
	z := ctx.candidate.TotalZScore
	switch {
	case ctx.round <= 3:
		if z > 8 {
			return w.EarlyRoundBonus, []string{"Top-tier talent for early rounds"}
		}
	case ctx.round <= 6:
		if z > 5 {
			return w.MidRoundBonus, []string{"Strong mid-round value"}
		}
	default:
		if z > 2 {
			return w.LateRoundBonus, []string{"Good late-round upside"}
		}
	}
	return 0, nil
}

// pickDistanceSignal flags urgency when the snake puts the user's next
// turn far away.
func pickDistanceSignal(w Weights, ctx *signalContext) (float64, []string) {
	if ctx.picksUntilNext > w.LongWaitPicks {
		return w.LongWaitBonus, []string{fmt.Sprintf("Long wait until next pick (%d picks)", ctx.picksUntilNext)}
	}
	return 0, nil
}
