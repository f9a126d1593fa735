package draft

import "github.com/thelineup/draft-engine/internal/models"

// OpponentPolicy decides picks for non-user teams. Policies are pure over
// the available list so automated drafting stays deterministic.
type OpponentPolicy interface {
	MakePick(available []models.PlayerRecord) *models.PlayerRecord
}

// BestAvailable picks the highest-rated remaining player. Available lists
// are ordered by composite rating descending, so the head of the list wins.
type BestAvailable struct{}

func (BestAvailable) MakePick(available []models.PlayerRecord) *models.PlayerRecord {
	if len(available) == 0 {
		return nil
	}
	best := &available[0]
	for i := 1; i < len(available); i++ {
		if available[i].TotalZScore > best.TotalZScore {
			best = &available[i]
		}
	}
	return best
}
