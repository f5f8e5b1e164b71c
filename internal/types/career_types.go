package types

// CategoryStatus grades a resume scoring category.
type CategoryStatus string

const (
	// StatusGood indicates the category needs no attention.
	StatusGood CategoryStatus = "good"
	// StatusWarning indicates the category could be improved.
	StatusWarning CategoryStatus = "warning"
	// StatusCritical indicates the category needs immediate work.
	StatusCritical CategoryStatus = "critical"
)

// SkillTrend describes the direction of a skill relative to market demand.
type SkillTrend string

const (
	// TrendUp marks a skill that is growing.
	TrendUp SkillTrend = "up"
	// TrendStable marks a skill holding steady.
	TrendStable SkillTrend = "stable"
	// TrendGap marks a skill gap worth closing.
	TrendGap SkillTrend = "gap"
)

// SkillCategory groups assessed skills.
type SkillCategory string

const (
	// CategoryTechnical covers languages, frameworks and tooling.
	CategoryTechnical SkillCategory = "Technical"
	// CategorySoftSkills covers communication, leadership and similar.
	CategorySoftSkills SkillCategory = "Soft Skills"
	// CategoryDomain covers domain and architecture knowledge.
	CategoryDomain SkillCategory = "Domain"
)

// CourseStatus tracks a learner's position inside a learning path.
type CourseStatus string

const (
	// CourseCompleted means the course is finished.
	CourseCompleted CourseStatus = "completed"
	// CourseInProgress means the course is underway.
	CourseInProgress CourseStatus = "in-progress"
	// CourseLocked means prerequisites are still missing.
	CourseLocked CourseStatus = "locked"
)

// Chat roles accepted on the chat endpoint.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// ResumeCategoryNames are the five fixed scoring categories, in report order.
var ResumeCategoryNames = []string{
	"ATS Compatibility",
	"Keyword Optimization",
	"Impact Statements",
	"Formatting & Structure",
	"Skills Alignment",
}

// RadarAxes are the six fixed axes of the skill radar chart, in order.
var RadarAxes = []string{
	"Frontend",
	"Backend",
	"Data Science",
	"DevOps",
	"Design",
	"Leadership",
}

// CategoryScore is one scored resume category with free-text feedback.
type CategoryScore struct {
	Name     string         `json:"name"`
	Score    int            `json:"score"`
	Status   CategoryStatus `json:"status"`
	Feedback string         `json:"feedback"`
}

// ResumeAnalysis is the structured result of scoring one resume.
// UsedFallback marks whether the content came from the static fallback
// instead of the completion endpoint.
type ResumeAnalysis struct {
	OverallScore int             `json:"overallScore"`
	Categories   []CategoryScore `json:"categories"`
	Keywords     []string        `json:"keywords"`
	Suggestions  []string        `json:"suggestions"`
	UsedFallback bool            `json:"usedFallback"`
}

// Skill is one assessed skill with a 0-100 proficiency level.
type Skill struct {
	Name     string        `json:"name"`
	Level    int           `json:"level"`
	Category SkillCategory `json:"category"`
	Trend    SkillTrend    `json:"trend"`
}

// RadarSkill is one axis value of the radar chart.
type RadarSkill struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// SkillsAssessment bundles the skill list and the radar chart values.
type SkillsAssessment struct {
	Skills      []Skill      `json:"skills"`
	RadarSkills []RadarSkill `json:"radarSkills"`
}

// TimelinePhase is one phase of a career path plan.
type TimelinePhase struct {
	Phase    string   `json:"phase"`
	Duration string   `json:"duration"`
	Tasks    []string `json:"tasks"`
}

// CareerPath is one suggested career direction with a three-phase plan.
type CareerPath struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Match          int             `json:"match"`
	Salary         string          `json:"salary"`
	Growth         string          `json:"growth"`
	Locations      string          `json:"locations"`
	Description    string          `json:"description"`
	RequiredSkills []string        `json:"requiredSkills"`
	Timeline       []TimelinePhase `json:"timeline"`
}

// CareerPathSet is the wire envelope for suggested career paths.
type CareerPathSet struct {
	Paths []CareerPath `json:"paths"`
}

// Course is one course inside a learning path.
type Course struct {
	Title    string       `json:"title"`
	Provider string       `json:"provider"`
	Duration string       `json:"duration"`
	Rating   float64      `json:"rating"`
	Status   CourseStatus `json:"status"`
	Progress int          `json:"progress"`
}

// LearningPath is one curated course sequence toward a goal.
type LearningPath struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	TotalCourses     int      `json:"totalCourses"`
	CompletedCourses int      `json:"completedCourses"`
	EstimatedTime    string   `json:"estimatedTime"`
	Skills           []string `json:"skills"`
	Courses          []Course `json:"courses"`
}

// LearningPathSet is the wire envelope for curated learning paths.
type LearningPathSet struct {
	Paths []LearningPath `json:"paths"`
}

// ChatMessage is one turn of the advisor conversation. The caller resends
// the full history on every request; nothing is stored server side.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
