package matching

import (
	"strings"

	"jobboard/internal/domain/job"
	"jobboard/internal/domain/profile"
)

// Rule-bonus caps. Skill, location and experience bonuses are independent
// and additive, maxing out at 0.2 combined.
const (
	skillBonusMax      = 0.1
	locationBonusFlat  = 0.05
	experienceBonusMax = 0.05
)

// Bonus carries the rule-based additive components of a match score.
type Bonus struct {
	Skill      float64
	Location   float64
	Experience float64

	SkillMatched    bool
	LocationMatched bool
}

// Total returns the summed bonus contribution.
func (b Bonus) Total() float64 {
	return b.Skill + b.Location + b.Experience
}

// RuleBonus computes deterministic bonuses for exact skill, location and
// experience-keyword overlaps. Missing or empty profile fields contribute 0,
// never an error.
func RuleBonus(j job.Job, p profile.Profile) Bonus {
	var b Bonus

	desc := strings.ToLower(j.Description)

	if len(p.Skills) > 0 && desc != "" {
		matches := 0
		for _, s := range p.Skills {
			s = strings.ToLower(strings.TrimSpace(s))
			if s == "" {
				continue
			}
			if strings.Contains(desc, s) {
				matches++
			}
		}
		if matches > 0 {
			b.Skill = float64(matches) / float64(len(p.Skills)) * skillBonusMax
			b.SkillMatched = true
		}
	}

	if p.Location != nil && j.Location != "" {
		loc := strings.ToLower(strings.TrimSpace(*p.Location))
		if loc != "" && strings.Contains(strings.ToLower(j.Location), loc) {
			b.Location = locationBonusFlat
			b.LocationMatched = true
		}
	}

	if len(p.Experience) > 0 && desc != "" {
		matches := 0
		for _, e := range p.Experience {
			pos := strings.ToLower(strings.TrimSpace(e.Position))
			if pos == "" {
				continue
			}
			if strings.Contains(desc, pos) {
				matches++
			}
		}
		if matches > 0 {
			b.Experience = float64(matches) / float64(len(p.Experience)) * experienceBonusMax
		}
	}

	return b
}
