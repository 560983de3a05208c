package domain

import "fmt"

type Skill struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Proficiency Proficiency `json:"proficiency"`
	Notes       string      `json:"notes,omitempty"`
}

// predefinedSkills seeds an empty skill matrix.
var predefinedSkills = []struct {
	name     string
	category string
}{
	{"Network Security", "Infrastructure"},
	{"Web Application Security", "Application"},
	{"Penetration Testing", "Offensive"},
	{"Incident Response", "Defensive"},
	{"Malware Analysis", "Analysis"},
	{"Digital Forensics", "Analysis"},
	{"Security Architecture", "Design"},
	{"Risk Assessment", "Governance"},
	{"Security Operations", "Defensive"},
	{"Threat Intelligence", "Intelligence"},
	{"Cryptography", "Technical"},
	{"Cloud Security", "Infrastructure"},
	{"Mobile Security", "Application"},
	{"IoT Security", "Infrastructure"},
	{"Social Engineering", "Human"},
	{"Security Awareness", "Human"},
	{"Compliance & Regulations", "Governance"},
	{"Security Tools", "Technical"},
	{"Programming for Security", "Technical"},
	{"Security Metrics", "Governance"},
}

// PredefinedSkills returns the starter skill set at Beginner level with
// stable IDs (skill-0, skill-1, ...).
func PredefinedSkills() []Skill {
	skills := make([]Skill, 0, len(predefinedSkills))
	for i, s := range predefinedSkills {
		skills = append(skills, Skill{
			ID:          fmt.Sprintf("skill-%d", i),
			Name:        s.name,
			Category:    s.category,
			Proficiency: ProficiencyBeginner,
		})
	}
	return skills
}
