package appstate

import "floordecor-be/internal/user"

// SignUpStep is one step of the account creation flow.
type SignUpStep int

const (
	StepAccount SignUpStep = iota
	StepPersona
	StepPreferences
	StepTerms

	signUpStepCount = 4
)

func (s SignUpStep) DisplayName() string {
	switch s {
	case StepAccount:
		return "Basic Info"
	case StepPersona:
		return "How will you use the app?"
	case StepPreferences:
		return "Preferences"
	case StepTerms:
		return "Terms & Conditions"
	default:
		return "Unknown"
	}
}

// SignUpFlow is the multi-step account creation form. Navigation is
// by Next/Back events and Next refuses to leave an incomplete step.
type SignUpFlow struct {
	Step            SignUpStep   `json:"step"`
	Email           string       `json:"email"`
	Password        string       `json:"password"`
	ConfirmPassword string       `json:"confirm_password"`
	FirstName       string       `json:"first_name"`
	LastName        string       `json:"last_name"`
	PhoneNumber     string       `json:"phone_number"`
	Persona         user.Persona `json:"persona"`
	AgreedToTerms   bool         `json:"agreed_to_terms"`
	Completed       bool         `json:"completed"`
}

func NewSignUpFlow() *SignUpFlow {
	return &SignUpFlow{Persona: user.PersonaDIY}
}

// CanProceed reports whether the current step is complete. Phone
// number is optional on the account step, as are all preferences.
func (f *SignUpFlow) CanProceed() bool {
	switch f.Step {
	case StepAccount:
		return f.Email != "" && f.Password != "" && f.ConfirmPassword != "" &&
			f.FirstName != "" && f.LastName != "" && f.Password == f.ConfirmPassword
	case StepPersona, StepPreferences:
		return true
	case StepTerms:
		return f.AgreedToTerms
	default:
		return false
	}
}

// Next advances to the following step. On the final step it marks the
// flow completed instead.
func (f *SignUpFlow) Next() error {
	if f.Completed {
		return ErrFlowComplete
	}
	if !f.CanProceed() {
		return ErrStepIncomplete
	}
	if f.Step == StepTerms {
		f.Completed = true
		return nil
	}
	f.Step++
	return nil
}

// Back returns to the previous step. It is a no-op on the first step
// or after completion.
func (f *SignUpFlow) Back() {
	if f.Completed || f.Step == StepAccount {
		return
	}
	f.Step--
}

// Progress reports flow completion in [0, 1] for the progress bar.
func (f *SignUpFlow) Progress() float64 {
	if f.Completed {
		return 1
	}
	return float64(f.Step) / float64(signUpStepCount)
}
