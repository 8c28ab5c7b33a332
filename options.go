package patcher

// Option configures a single Patch call.
type Option interface {
	applyPatch(c *patchConfig)
}

type patchConfig struct {
	ignoreCase    bool
	ignoreUnknown bool
	validateAll   bool
}

func newPatchConfig(opts []Option) patchConfig {
	c := patchConfig{
		ignoreCase: true,
	}
	for _, opt := range opts {
		opt.applyPatch(&c)
	}
	return c
}

type matchCaseOption struct{}

func (matchCaseOption) applyPatch(c *patchConfig) {
	c.ignoreCase = false
}

// MatchCase returns an option that makes field-name matching case
// sensitive. By default a source field matches a destination field
// whose name differs only in letter case.
func MatchCase() Option {
	return matchCaseOption{}
}

type ignoreUnknownFieldsOption struct{}

func (ignoreUnknownFieldsOption) applyPatch(c *patchConfig) {
	c.ignoreUnknown = true
}

// IgnoreUnknownFields returns an option that makes Patch silently skip
// source fields with no matching destination field. By default any
// unmatched source field fails the whole call before anything is
// written.
func IgnoreUnknownFields() Option {
	return ignoreUnknownFieldsOption{}
}

type validateAllOption struct{}

func (validateAllOption) applyPatch(c *patchConfig) {
	c.validateAll = true
}

// ValidateAll returns an option that runs every per-field check over
// the whole document before the first write. With it, a failing field
// leaves the destination completely unmodified instead of keeping the
// writes that preceded the failure.
func ValidateAll() Option {
	return validateAllOption{}
}
