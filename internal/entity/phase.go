package entity

// Phase is the campaign phase of a lead.
type Phase string

const (
	PhaseInitial    Phase = "Initial"
	PhaseReminder   Phase = "Reminder"
	PhaseEscalation Phase = "Escalation"
	PhasePitch      Phase = "Pitch"
	PhaseTrigger    Phase = "Trigger Follow-Up"
)

// CampaignPhases are the phases a template can target and the ones the
// analytics breakdown reports on. Trigger Follow-Up is assigned only when a
// discovered signal is converted into a lead.
var CampaignPhases = []Phase{PhaseInitial, PhaseReminder, PhaseEscalation, PhasePitch}

// AllPhases includes Trigger Follow-Up.
var AllPhases = []Phase{PhaseInitial, PhaseReminder, PhaseEscalation, PhasePitch, PhaseTrigger}

func (p Phase) Valid() bool {
	for _, v := range AllPhases {
		if p == v {
			return true
		}
	}
	return false
}

// Tone selects the rewrite style applied to a generated draft.
type Tone string

const (
	ToneProfessional Tone = "Professional"
	ToneFriendly     Tone = "Friendly"
	ToneAssertive    Tone = "Assertive"
	ToneSubtle       Tone = "Subtle"
)

var Tones = []Tone{ToneProfessional, ToneFriendly, ToneAssertive, ToneSubtle}

func (t Tone) Valid() bool {
	for _, v := range Tones {
		if t == v {
			return true
		}
	}
	return false
}
