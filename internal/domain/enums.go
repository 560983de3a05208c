package domain

type Language string

const (
	LangEnglish Language = "en"
	LangArabic  Language = "ar"
)

// IsRTL reports whether the language is written right to left.
func (l Language) IsRTL() bool {
	return l == LangArabic
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

type TaskType string

const (
	TaskBlueTeam   TaskType = "Blue Team"
	TaskRedTeam    TaskType = "Red Team"
	TaskPurpleTeam TaskType = "Purple Team"
	TaskSoftSkills TaskType = "Soft Skills"
	TaskPractical  TaskType = "Practical"
	TaskCareer     TaskType = "Career"
)

// TaskTypes lists every task type in display order.
var TaskTypes = []TaskType{
	TaskBlueTeam, TaskRedTeam, TaskPurpleTeam, TaskSoftSkills, TaskPractical, TaskCareer,
}

// ValidTaskTypes is the canonical set of accepted task type strings.
var ValidTaskTypes = map[string]bool{
	"Blue Team": true, "Red Team": true, "Purple Team": true,
	"Soft Skills": true, "Practical": true, "Career": true,
}

type ResourceType string

const (
	ResourceVideo   ResourceType = "video"
	ResourceArticle ResourceType = "article"
	ResourceGuide   ResourceType = "guide"
	ResourceNews    ResourceType = "news"
)

// ValidResourceTypes is the canonical set of accepted resource type strings.
var ValidResourceTypes = map[string]bool{
	"video": true, "article": true, "guide": true, "news": true,
}

type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "Beginner"
	ProficiencyIntermediate Proficiency = "Intermediate"
	ProficiencyAdvanced     Proficiency = "Advanced"
	ProficiencyExpert       Proficiency = "Expert"
)

// ProficiencyLevels lists proficiencies from lowest to highest.
var ProficiencyLevels = []Proficiency{
	ProficiencyBeginner, ProficiencyIntermediate, ProficiencyAdvanced, ProficiencyExpert,
}

// Rank returns the ordinal of the proficiency (Beginner = 1), or 0 when unknown.
func (p Proficiency) Rank() int {
	for i, lvl := range ProficiencyLevels {
		if lvl == p {
			return i + 1
		}
	}
	return 0
}

// Valid reports whether p is one of the known levels.
func (p Proficiency) Valid() bool {
	return p.Rank() > 0
}

type ToastSeverity string

const (
	ToastSuccess ToastSeverity = "success"
	ToastError   ToastSeverity = "error"
	ToastInfo    ToastSeverity = "info"
	ToastWarning ToastSeverity = "warning"
)

// SkillCategories is the fixed set of categories offered when adding a skill.
var SkillCategories = []string{
	"Infrastructure", "Application", "Offensive", "Defensive", "Analysis",
	"Design", "Governance", "Intelligence", "Technical", "Human",
}
