package tweetvec

import "fmt"

// Scores below NegativeThreshold count as negative, scores above
// PositiveThreshold as positive and everything in between as neutral.
const (
	NegativeThreshold = 0.45
	PositiveThreshold = 0.55
)

// SentimentResult accumulates the lexicon scores of one sentence for one
// sentiment lexicon.
type SentimentResult struct {
	PosCount     int
	NeutralCount int
	NegCount     int
	Sum          float64
	Count        int

	maxPos, maxNeg       float64
	hasMaxPos, hasMaxNeg bool
}

// Add records one word score.
func (r *SentimentResult) Add(score float64) {
	r.Sum += score
	r.Count++
	switch {
	case score < NegativeThreshold:
		r.NegCount++
		if !r.hasMaxNeg || score < r.maxNeg {
			r.maxNeg, r.hasMaxNeg = score, true
		}
	case score > PositiveThreshold:
		r.PosCount++
		if !r.hasMaxPos || score > r.maxPos {
			r.maxPos, r.hasMaxPos = score, true
		}
	default:
		r.NeutralCount++
	}
}

// Merge folds other into r. Counts and sums add up; the extremes keep the
// strongest value of either side.
func (r *SentimentResult) Merge(other SentimentResult) {
	r.PosCount += other.PosCount
	r.NeutralCount += other.NeutralCount
	r.NegCount += other.NegCount
	r.Sum += other.Sum
	r.Count += other.Count
	if other.hasMaxPos && (!r.hasMaxPos || other.maxPos > r.maxPos) {
		r.maxPos, r.hasMaxPos = other.maxPos, true
	}
	if other.hasMaxNeg && (!r.hasMaxNeg || other.maxNeg < r.maxNeg) {
		r.maxNeg, r.hasMaxNeg = other.maxNeg, true
	}
}

// MaxPos returns the highest positive score seen, if any.
func (r SentimentResult) MaxPos() (float64, bool) { return r.maxPos, r.hasMaxPos }

// MaxNeg returns the lowest negative score seen, if any.
func (r SentimentResult) MaxNeg() (float64, bool) { return r.maxNeg, r.hasMaxNeg }

func (r SentimentResult) avg(v float64) float64 {
	if r.Count == 0 {
		return 0
	}
	return v / float64(r.Count)
}

func (r SentimentResult) AvgPositive() float64 { return r.avg(float64(r.PosCount)) }
func (r SentimentResult) AvgNeutral() float64  { return r.avg(float64(r.NeutralCount)) }
func (r SentimentResult) AvgNegative() float64 { return r.avg(float64(r.NegCount)) }
func (r SentimentResult) Mean() float64        { return r.avg(r.Sum) }

func (r SentimentResult) String() string {
	return fmt.Sprintf("SentimentResult{pos=%d neutral=%d neg=%d sum=%g count=%d maxPos=%g maxNeg=%g}",
		r.PosCount, r.NeutralCount, r.NegCount, r.Sum, r.Count, r.maxPos, r.maxNeg)
}
