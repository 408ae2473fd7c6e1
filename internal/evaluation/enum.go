package evaluation

type Phase string

const (
	PhaseSetup     Phase = "SETUP"
	PhaseActive    Phase = "ACTIVE"
	PhaseFinished  Phase = "FINISHED"
	PhaseCancelled Phase = "CANCELLED"
)

var AllPhases = []Phase{
	PhaseSetup,
	PhaseActive,
	PhaseFinished,
	PhaseCancelled,
}

func (p Phase) IsValid() bool {
	for _, v := range AllPhases {
		if p == v {
			return true
		}
	}
	return false
}
