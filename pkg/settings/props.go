package settings

// Props is the complete input of the settings view. The view renders
// from Props alone.
type Props struct {
	Blocked bool
	Loading bool
	Saving  bool

	HasSaveSucceeded   bool
	HasSaveFailed      bool
	HasErrors          bool
	HasLocalChanges    bool
	HasExternalChanges bool

	HasConfig         bool
	Config            string
	RemountToken      string
	LanguageModalOpen bool
}

// StatusKind selects the message shown in the status region.
type StatusKind int

const (
	StatusDescription StatusKind = iota
	StatusBlocked
	StatusLoading
	StatusUnavailable
	StatusExternalChanges
	StatusSaveFailed
	StatusSaveSucceeded
)

func (k StatusKind) String() string {
	switch k {
	case StatusBlocked:
		return "blocked"
	case StatusLoading:
		return "loading"
	case StatusUnavailable:
		return "unavailable"
	case StatusExternalChanges:
		return "external-changes"
	case StatusSaveFailed:
		return "save-failed"
	case StatusSaveSucceeded:
		return "save-succeeded"
	default:
		return "description"
	}
}

// Status picks the status message, highest priority first.
func (p Props) Status() StatusKind {
	switch {
	case p.Blocked:
		return StatusBlocked
	case !p.HasConfig && p.Loading:
		return StatusLoading
	case !p.HasConfig:
		return StatusUnavailable
	case p.HasExternalChanges:
		return StatusExternalChanges
	case p.HasSaveFailed:
		return StatusSaveFailed
	case p.HasSaveSucceeded:
		return StatusSaveSucceeded
	default:
		return StatusDescription
	}
}

// SaveLabel is what the save button shows.
type SaveLabel int

const (
	SaveLabelSave SaveLabel = iota
	SaveLabelSaving
	SaveLabelCheck
)

// SaveDisabled: nothing to save, or the draft is not valid JSON.
func (p Props) SaveDisabled() bool {
	return !p.HasLocalChanges || p.HasErrors
}

// SaveDanger flags the save button after a failure or when the stored
// configuration moved underneath the draft.
func (p Props) SaveDanger() bool {
	return p.HasSaveFailed || p.HasExternalChanges
}

func (p Props) SaveLabel() SaveLabel {
	switch {
	case p.HasSaveSucceeded && !p.HasSaveFailed:
		return SaveLabelCheck
	case p.Saving:
		return SaveLabelSaving
	default:
		return SaveLabelSave
	}
}

func (p Props) ResetDisabled() bool {
	return p.Saving || (!p.HasLocalChanges && !p.HasExternalChanges)
}

func (p Props) EditorReadOnly() bool {
	return p.Saving
}

// ShowControls reports whether buttons and editor are rendered at all.
func (p Props) ShowControls() bool {
	return p.HasConfig
}

// Phase names the lifecycle state of a settings session.
type Phase int

const (
	PhaseEmpty Phase = iota
	PhaseClean
	PhaseDirty
	PhaseSaving
	PhaseSavedOK
	PhaseSavedFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseClean:
		return "clean"
	case PhaseDirty:
		return "dirty"
	case PhaseSaving:
		return "saving"
	case PhaseSavedOK:
		return "saved"
	case PhaseSavedFailed:
		return "save-failed"
	default:
		return "empty"
	}
}

func (p Props) Phase() Phase {
	switch {
	case !p.HasConfig:
		return PhaseEmpty
	case p.Saving:
		return PhaseSaving
	case p.HasSaveFailed:
		return PhaseSavedFailed
	case p.HasSaveSucceeded:
		return PhaseSavedOK
	case p.HasLocalChanges:
		return PhaseDirty
	default:
		return PhaseClean
	}
}
