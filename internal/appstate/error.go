package appstate

import "errors"

// appstate errors
var (
	ErrInvalidTab     = errors.New("invalid tab")
	ErrInvalidSlide   = errors.New("invalid slide index")
	ErrStepIncomplete = errors.New("current step is incomplete")
	ErrFlowComplete   = errors.New("sign-up flow already complete")
)
