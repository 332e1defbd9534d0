package engine

import "strings"

// SkillType is one of the five fixed life skills. The set never changes:
// exactly five skills exist per user, created with the user.
type SkillType string

const (
	SkillStrength     SkillType = "strength"
	SkillIntelligence SkillType = "intelligence"
	SkillDiscipline   SkillType = "discipline"
	SkillSocial       SkillType = "social"
	SkillFinance      SkillType = "finance"
)

// AllSkills lists every skill in creation order.
var AllSkills = []SkillType{
	SkillStrength,
	SkillIntelligence,
	SkillDiscipline,
	SkillSocial,
	SkillFinance,
}

func (s SkillType) IsValid() bool {
	switch s {
	case SkillStrength, SkillIntelligence, SkillDiscipline, SkillSocial, SkillFinance:
		return true
	default:
		return false
	}
}

// ParseSkill parses user input to a SkillType. Returns false for anything
// outside the fixed set.
func ParseSkill(input string) (SkillType, bool) {
	s := SkillType(strings.TrimSpace(strings.ToLower(input)))
	return s, s.IsValid()
}

// QuestSize buckets a quest by effort. Each size maps to a fixed XP reward.
type QuestSize string

const (
	SizeS  QuestSize = "S"
	SizeM  QuestSize = "M"
	SizeL  QuestSize = "L"
	SizeXL QuestSize = "XL"
)

func (q QuestSize) IsValid() bool {
	switch q {
	case SizeS, SizeM, SizeL, SizeXL:
		return true
	default:
		return false
	}
}

func ParseSize(input string) (QuestSize, bool) {
	q := QuestSize(strings.TrimSpace(strings.ToUpper(input)))
	return q, q.IsValid()
}

// SizeXP is the fixed size → XP reward table. The reward is copied onto the
// quest at creation/edit time, not looked up at completion time.
var SizeXP = map[QuestSize]int{
	SizeS:  10,
	SizeM:  25,
	SizeL:  50,
	SizeXL: 100,
}
