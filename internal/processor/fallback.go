package processor

import "career-ai-go/internal/types"

// Static example data returned whenever the completion endpoint is
// unavailable, errors, or produces a reply that fails shape validation.
// Each constructor returns a fresh value so callers can never mutate
// shared state; the content is fixed, so repeated calls encode to
// byte-identical JSON.

// FallbackResumeAnalysis returns the static resume analysis, already
// tagged as fallback content.
func FallbackResumeAnalysis() *types.ResumeAnalysis {
	return &types.ResumeAnalysis{
		OverallScore: 72,
		Categories: []types.CategoryScore{
			{Name: "ATS Compatibility", Score: 85, Status: types.StatusGood, Feedback: "Good formatting for applicant tracking systems."},
			{Name: "Keyword Optimization", Score: 62, Status: types.StatusWarning, Feedback: "Missing key industry terms. Add more domain-specific keywords."},
			{Name: "Impact Statements", Score: 45, Status: types.StatusCritical, Feedback: "Quantify achievements with metrics and numbers."},
			{Name: "Formatting & Structure", Score: 90, Status: types.StatusGood, Feedback: "Clean layout with clear section hierarchy."},
			{Name: "Skills Alignment", Score: 68, Status: types.StatusWarning, Feedback: "Some skills listed lack supporting evidence in experience section."},
		},
		Keywords: []string{"React", "TypeScript", "Node.js", "Python", "Agile"},
		Suggestions: []string{
			"Add quantifiable metrics to your project descriptions",
			"Include a professional summary at the top",
			"Add more action verbs to bullet points",
		},
		UsedFallback: true,
	}
}

// FallbackSkillsAssessment returns the static skill assessment: 12 skills
// across the three categories plus the six radar axes.
func FallbackSkillsAssessment() *types.SkillsAssessment {
	return &types.SkillsAssessment{
		Skills: []types.Skill{
			{Name: "JavaScript", Level: 88, Category: types.CategoryTechnical, Trend: types.TrendUp},
			{Name: "React", Level: 82, Category: types.CategoryTechnical, Trend: types.TrendUp},
			{Name: "Python", Level: 65, Category: types.CategoryTechnical, Trend: types.TrendStable},
			{Name: "Machine Learning", Level: 40, Category: types.CategoryTechnical, Trend: types.TrendGap},
			{Name: "Communication", Level: 78, Category: types.CategorySoftSkills, Trend: types.TrendUp},
			{Name: "Leadership", Level: 55, Category: types.CategorySoftSkills, Trend: types.TrendStable},
			{Name: "Problem Solving", Level: 85, Category: types.CategorySoftSkills, Trend: types.TrendUp},
			{Name: "Time Management", Level: 70, Category: types.CategorySoftSkills, Trend: types.TrendStable},
			{Name: "Cloud (AWS)", Level: 48, Category: types.CategoryDomain, Trend: types.TrendGap},
			{Name: "System Design", Level: 58, Category: types.CategoryDomain, Trend: types.TrendStable},
			{Name: "DevOps/CI-CD", Level: 42, Category: types.CategoryDomain, Trend: types.TrendGap},
			{Name: "Data Structures", Level: 76, Category: types.CategoryDomain, Trend: types.TrendUp},
		},
		RadarSkills: []types.RadarSkill{
			{Label: "Frontend", Value: 85},
			{Label: "Backend", Value: 62},
			{Label: "Data Science", Value: 40},
			{Label: "DevOps", Value: 45},
			{Label: "Design", Value: 55},
			{Label: "Leadership", Value: 60},
		},
	}
}

// FallbackCareerPaths returns the three static career paths, each with a
// three-phase timeline.
func FallbackCareerPaths() *types.CareerPathSet {
	return &types.CareerPathSet{
		Paths: []types.CareerPath{
			{
				ID:             "fullstack",
				Title:          "Full-Stack Developer",
				Match:          92,
				Salary:         "$95K - $145K",
				Growth:         "+25% demand",
				Locations:      "Remote / SF / NYC",
				Description:    "Build end-to-end web applications combining your strong frontend skills with growing backend knowledge.",
				RequiredSkills: []string{"React", "Node.js", "PostgreSQL", "TypeScript", "AWS"},
				Timeline: []types.TimelinePhase{
					{Phase: "Foundation", Duration: "0-3 months", Tasks: []string{"Master Node.js & Express", "Learn PostgreSQL", "Build 2 full-stack projects"}},
					{Phase: "Growth", Duration: "3-6 months", Tasks: []string{"Learn Docker & CI/CD", "Study system design", "Contribute to open source"}},
					{Phase: "Ready", Duration: "6-9 months", Tasks: []string{"Build portfolio project", "Prep for interviews", "Apply to target companies"}},
				},
			},
			{
				ID:             "frontend-lead",
				Title:          "Frontend Tech Lead",
				Match:          85,
				Salary:         "$120K - $175K",
				Growth:         "+18% demand",
				Locations:      "Remote / Austin / Seattle",
				Description:    "Leverage your strong React and JavaScript skills to lead frontend architecture decisions and mentor teams.",
				RequiredSkills: []string{"React", "TypeScript", "Architecture", "Mentoring", "Performance"},
				Timeline: []types.TimelinePhase{
					{Phase: "Foundation", Duration: "0-4 months", Tasks: []string{"Deep-dive into architecture patterns", "Learn advanced performance optimization", "Start mentoring juniors"}},
					{Phase: "Growth", Duration: "4-8 months", Tasks: []string{"Lead a medium-scale project", "Study management frameworks", "Build tech talks"}},
					{Phase: "Ready", Duration: "8-12 months", Tasks: []string{"Demonstrate team leadership", "Build case studies", "Target senior/lead roles"}},
				},
			},
			{
				ID:             "ml-engineer",
				Title:          "ML Engineer",
				Match:          58,
				Salary:         "$110K - $180K",
				Growth:         "+35% demand",
				Locations:      "Remote / SF / Boston",
				Description:    "Transition into machine learning by building on your Python foundation and problem-solving skills.",
				RequiredSkills: []string{"Python", "TensorFlow", "Statistics", "MLOps", "Data Pipelines"},
				Timeline: []types.TimelinePhase{
					{Phase: "Foundation", Duration: "0-6 months", Tasks: []string{"Complete ML specialization course", "Learn statistics deeply", "Build 5 ML projects"}},
					{Phase: "Growth", Duration: "6-12 months", Tasks: []string{"Study MLOps & deployment", "Kaggle competitions", "Research paper reading"}},
					{Phase: "Ready", Duration: "12-18 months", Tasks: []string{"Build production ML system", "Contribute to ML open source", "Target ML engineer roles"}},
				},
			},
		},
	}
}

// FallbackLearningPaths returns the three static learning paths with
// their course lists.
func FallbackLearningPaths() *types.LearningPathSet {
	return &types.LearningPathSet{
		Paths: []types.LearningPath{
			{
				ID:               "cloud",
				Title:            "Cloud Computing Fundamentals",
				Description:      "Master cloud infrastructure with AWS, covering core services, security, and deployment strategies.",
				TotalCourses:     5,
				CompletedCourses: 2,
				EstimatedTime:    "12 weeks",
				Skills:           []string{"AWS", "Cloud Architecture", "Security", "Networking"},
				Courses: []types.Course{
					{Title: "Cloud Computing Concepts", Provider: "Coursera", Duration: "4 weeks", Rating: 4.8, Status: types.CourseCompleted, Progress: 100},
					{Title: "AWS Cloud Practitioner Essentials", Provider: "AWS Training", Duration: "3 weeks", Rating: 4.7, Status: types.CourseCompleted, Progress: 100},
					{Title: "AWS Solutions Architect Associate", Provider: "Udemy", Duration: "6 weeks", Rating: 4.9, Status: types.CourseInProgress, Progress: 45},
					{Title: "Serverless Architecture Deep Dive", Provider: "Pluralsight", Duration: "2 weeks", Rating: 4.6, Status: types.CourseLocked, Progress: 0},
					{Title: "AWS Security Best Practices", Provider: "A Cloud Guru", Duration: "3 weeks", Rating: 4.5, Status: types.CourseLocked, Progress: 0},
				},
			},
			{
				ID:               "devops",
				Title:            "DevOps & CI/CD Pipeline",
				Description:      "Learn modern DevOps practices including containerization, orchestration, and continuous deployment.",
				TotalCourses:     4,
				CompletedCourses: 0,
				EstimatedTime:    "10 weeks",
				Skills:           []string{"Docker", "Kubernetes", "CI/CD", "GitHub Actions"},
				Courses: []types.Course{
					{Title: "Docker Fundamentals", Provider: "Docker Inc.", Duration: "2 weeks", Rating: 4.7, Status: types.CourseInProgress, Progress: 20},
					{Title: "Kubernetes for Developers", Provider: "Udemy", Duration: "4 weeks", Rating: 4.8, Status: types.CourseLocked, Progress: 0},
					{Title: "GitHub Actions Mastery", Provider: "GitHub", Duration: "2 weeks", Rating: 4.6, Status: types.CourseLocked, Progress: 0},
					{Title: "Production Deployment Strategies", Provider: "Coursera", Duration: "3 weeks", Rating: 4.5, Status: types.CourseLocked, Progress: 0},
				},
			},
			{
				ID:               "leadership",
				Title:            "Tech Leadership Essentials",
				Description:      "Develop leadership and management skills to transition from individual contributor to tech lead.",
				TotalCourses:     4,
				CompletedCourses: 0,
				EstimatedTime:    "8 weeks",
				Skills:           []string{"Team Management", "Mentoring", "Architecture Decisions", "Communication"},
				Courses: []types.Course{
					{Title: "Engineering Management 101", Provider: "Pluralsight", Duration: "3 weeks", Rating: 4.6, Status: types.CourseInProgress, Progress: 10},
					{Title: "Technical Decision Making", Provider: "Coursera", Duration: "2 weeks", Rating: 4.7, Status: types.CourseLocked, Progress: 0},
					{Title: "Effective Code Reviews", Provider: "Frontend Masters", Duration: "1 week", Rating: 4.8, Status: types.CourseLocked, Progress: 0},
					{Title: "Leading Distributed Teams", Provider: "LinkedIn Learning", Duration: "2 weeks", Rating: 4.5, Status: types.CourseLocked, Progress: 0},
				},
			},
		},
	}
}
