package modes

import "loopescape/pkg/engine/input"

// VictoryMode is shown after the loop has been escaped.
type VictoryMode struct {
	result Result
}

func newVictoryMode() *VictoryMode {
	return &VictoryMode{}
}

func (v *VictoryMode) ID() ModeID { return ModeVictory }

func (v *VictoryMode) Enter() {}

func (v *VictoryMode) Tick(in input.Snapshot) Next {
	if in.JustPressed(input.ActionConfirm) || in.Clicked {
		return GoTo(ModeMenu)
	}
	return Stay()
}

// Result is the summary of the playthrough that was just won.
func (v *VictoryMode) Result() Result {
	return v.result
}
