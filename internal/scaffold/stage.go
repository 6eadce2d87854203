package scaffold

// Stage is a state of the creation pipeline. Stages only move forward; any
// error moves the pipeline to StageFailed, which is terminal.
type Stage int

const (
	StageStart Stage = iota
	StageVersionChecked
	StageUpdateChecked
	StageNameChosen
	StageTemplateChosen
	StageCloned
	StageManifestPatched
	StageCleaned
	StageInstalled
	StageDone
	StageFailed
)

var stageNames = [...]string{
	StageStart:           "start",
	StageVersionChecked:  "version-checked",
	StageUpdateChecked:   "update-checked",
	StageNameChosen:      "name-chosen",
	StageTemplateChosen:  "template-chosen",
	StageCloned:          "cloned",
	StageManifestPatched: "manifest-patched",
	StageCleaned:         "cleaned",
	StageInstalled:       "installed",
	StageDone:            "done",
	StageFailed:          "failed",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

// Terminal reports whether no further transition is possible.
func (s Stage) Terminal() bool {
	return s == StageDone || s == StageFailed
}
