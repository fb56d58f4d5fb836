package matching

import (
	"math"
	"testing"

	"jobboard/internal/domain/job"
	"jobboard/internal/domain/profile"
)

func TestRuleBonus_ConcreteScenario(t *testing.T) {
	b := RuleBonus(sampleJob(), sampleProfile())

	if b.Skill != 0.1 {
		t.Fatalf("both skills appear in the description, want 0.1, got %v", b.Skill)
	}
	if !b.SkillMatched {
		t.Fatalf("expected SkillMatched")
	}
	if b.Location != 0.05 || !b.LocationMatched {
		t.Fatalf("expected flat location bonus 0.05, got %v", b.Location)
	}
	if b.Experience != 0.05 {
		t.Fatalf("single matching experience entry, want 0.05, got %v", b.Experience)
	}
	if total := b.Total(); math.Abs(total-0.2) > 1e-12 {
		t.Fatalf("total should be 0.2, got %v", total)
	}
}

func TestRuleBonus_SkillOverlapMonotonic(t *testing.T) {
	j := job.Job{Description: "python fastapi backend service"}

	progressions := [][]string{
		{},
		{"python"},
		{"python", "fastapi"},
	}

	prev := -1.0
	for _, skills := range progressions {
		b := RuleBonus(j, profile.Profile{Skills: skills})
		if b.Skill < prev {
			t.Fatalf("skill bonus decreased: skills=%v bonus=%v prev=%v", skills, b.Skill, prev)
		}
		prev = b.Skill
	}
}

func TestRuleBonus_EmptyInputs(t *testing.T) {
	b := RuleBonus(job.Job{}, profile.Profile{})
	if b.Total() != 0 {
		t.Fatalf("empty inputs must contribute nothing, got %v", b.Total())
	}
}

func TestRuleBonus_PartialSkillOverlap(t *testing.T) {
	j := job.Job{Description: "looking for a python developer"}
	p := profile.Profile{Skills: []string{"Python", "Django", "Kubernetes", "Terraform"}}

	b := RuleBonus(j, p)
	want := 1.0 / 4.0 * 0.1
	if b.Skill != want {
		t.Fatalf("want %v, got %v", want, b.Skill)
	}
}

func TestRuleBonus_LocationCaseInsensitive(t *testing.T) {
	j := job.Job{Location: "Greater SAN FRANCISCO Area"}
	p := profile.Profile{Location: strptr("san francisco")}

	b := RuleBonus(j, p)
	if b.Location != 0.05 {
		t.Fatalf("substring location match should give 0.05, got %v", b.Location)
	}
}

func TestRuleBonus_NilLocation(t *testing.T) {
	j := job.Job{Location: "Berlin"}
	b := RuleBonus(j, profile.Profile{})
	if b.Location != 0 || b.LocationMatched {
		t.Fatalf("missing profile location must not match")
	}
}
