package specialist

import "errors"

// ErrNoLLM is returned internally when no language model is configured.
var ErrNoLLM = errors.New("specialist: no LLM configured")
