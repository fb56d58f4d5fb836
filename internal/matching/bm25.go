package matching

import (
	"strings"

	"jobboard/internal/domain/job"
	"jobboard/internal/domain/profile"
)

// BM25 term-weighting constants. The scorer intentionally omits the IDF term
// and assumes a fixed average document length instead of a corpus-wide one,
// so scores stay comparable per (job, profile) pair without an index. Known
// deviation from textbook Okapi BM25; do not "fix" without re-validating
// ranking behavior.
const (
	bm25K1     = 1.5
	bm25B      = 0.75
	bm25AvgDoc = 200.0
)

// JobTokens builds the job-side document from title, description and company.
func JobTokens(j job.Job) []string {
	return Tokenize(j.Title + " " + j.Description + " " + j.Company)
}

// ProfileTokens builds the query-side document from the candidate's skills,
// work history, education and headline.
func ProfileTokens(p profile.Profile) []string {
	var b strings.Builder
	for _, s := range p.Skills {
		b.WriteString(s)
		b.WriteByte(' ')
	}
	for _, e := range p.Experience {
		b.WriteString(e.Position)
		b.WriteByte(' ')
		b.WriteString(e.Company)
		b.WriteByte(' ')
	}
	for _, e := range p.Education {
		b.WriteString(e.Degree)
		b.WriteByte(' ')
		b.WriteString(e.School)
		b.WriteByte(' ')
	}
	if p.Headline != nil {
		b.WriteString(*p.Headline)
	}
	return Tokenize(b.String())
}

// BM25 scores the lexical overlap between a job and a profile in [0,1].
// Either side tokenizing to nothing yields exactly 0.
func BM25(j job.Job, p profile.Profile) float64 {
	docTokens := JobTokens(j)
	queryTokens := ProfileTokens(p)
	if len(docTokens) == 0 || len(queryTokens) == 0 {
		return 0.0
	}

	termFreq := make(map[string]int, len(docTokens))
	for _, t := range docTokens {
		termFreq[t]++
	}

	queryFreq := make(map[string]int, len(queryTokens))
	for _, t := range queryTokens {
		queryFreq[t]++
	}

	docLen := float64(len(docTokens))
	lengthNorm := bm25K1 * (1 - bm25B + bm25B*(docLen/bm25AvgDoc))

	score := 0.0
	for term, qf := range queryFreq {
		tf := float64(termFreq[term])
		if tf == 0 {
			continue
		}
		score += float64(qf) * (tf * (bm25K1 + 1)) / (tf + lengthNorm)
	}

	// Normalize by the theoretical per-token maximum so the result lands
	// in [0,1] regardless of query length.
	score /= float64(len(queryTokens)) * (bm25K1 + 1)
	if score > 1.0 {
		score = 1.0
	}
	return score
}
