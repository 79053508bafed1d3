package interview

// Stage identifies where a screening session is in the pipeline. Stages only
// move forward; no stage is ever revisited.
type Stage string

const (
	StageCollectInfo   Stage = "collect_info"
	StageHRQuestions   Stage = "hr_questions"
	StageTechQuestions Stage = "tech_questions"
	StageEvaluation    Stage = "evaluation"
	StageComplete      Stage = "complete"
)

// Stages lists every stage in pipeline order.
var Stages = []Stage{
	StageCollectInfo,
	StageHRQuestions,
	StageTechQuestions,
	StageEvaluation,
	StageComplete,
}

// String returns the wire representation of the stage.
func (s Stage) String() string {
	return string(s)
}

// Label returns the human-readable name shown in the progress sidebar.
func (s Stage) Label() string {
	switch s {
	case StageCollectInfo:
		return "Information Gathering"
	case StageHRQuestions:
		return "HR Questions"
	case StageTechQuestions:
		return "Technical Assessment"
	case StageEvaluation:
		return "Evaluation"
	case StageComplete:
		return "Complete"
	default:
		return string(s)
	}
}

// Index returns the position of the stage in the pipeline, or 0 for an
// unknown stage.
func (s Stage) Index() int {
	for i, stage := range Stages {
		if stage == s {
			return i
		}
	}
	return 0
}
