package path

// LearningPath is an ordered curriculum for one category, loaded from YAML.
type LearningPath struct {
	Category          string  `yaml:"category"`
	Title             string  `yaml:"title"`
	Description       string  `yaml:"description"`
	EstimatedDuration string  `yaml:"estimated_duration"`
	Difficulty        string  `yaml:"difficulty"`
	Stages            []Stage `yaml:"stages"`
}

// Stage is one ordered step of a learning path. Stage and course order is
// significant: it drives gating.
type Stage struct {
	Title       string       `yaml:"title"`
	Description string       `yaml:"description"`
	Courses     []PathCourse `yaml:"courses"`
}

// PathCourse references a course within a stage.
type PathCourse struct {
	ID          int64    `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Skills      []string `yaml:"skills"`
}

// Courses returns every course of the path in stage order.
func (p LearningPath) Courses() []PathCourse {
	var out []PathCourse
	for _, s := range p.Stages {
		out = append(out, s.Courses...)
	}
	return out
}
