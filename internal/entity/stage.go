package entity

// Stage is the closed set of pipeline stages a lead can be in.
type Stage string

const (
	StageNewLead     Stage = "New-Lead"
	StageNegotiation Stage = "Negotiation"
	StageWon         Stage = "Lead-Won"
	StageLost        Stage = "Lead-Lost"

	// StageConverted is terminal and only reachable through lead conversion.
	StageConverted Stage = "Converted"
)

var stageTransitions = map[Stage][]Stage{
	StageNewLead:     {StageNegotiation, StageWon, StageLost},
	StageNegotiation: {StageNewLead, StageWon, StageLost},
	StageWon:         {StageNegotiation},
	StageLost:        {StageNegotiation},
	StageConverted:   {},
}

func ParseStage(s string) (Stage, error) {
	stage := Stage(s)
	if _, ok := stageTransitions[stage]; !ok {
		return "", ErrInvalidStage
	}
	return stage, nil
}

func (s Stage) Terminal() bool {
	return s == StageConverted
}

// CanTransitionTo validates a user-requested stage change. Converted is not
// a valid target here; conversion goes through its own path.
func (s Stage) CanTransitionTo(next Stage) error {
	if _, ok := stageTransitions[next]; !ok {
		return ErrInvalidStage
	}
	for _, allowed := range stageTransitions[s] {
		if next == allowed {
			return nil
		}
	}
	return ErrStageTransition
}
