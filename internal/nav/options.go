package nav

// DefaultMaxNavItems is the size above which a top navigation bar is reported.
const DefaultMaxNavItems = 10

// Options tune validation strictness. Use DefaultOptions as the starting point;
// the zero value rejects literal spaces in paths.
type Options struct {
	// AllowSpacesInPath permits literal U+0020 in paths, for generators whose
	// router percent-decodes request paths before matching.
	AllowSpacesInPath bool
	// StrictLabels turns duplicate sibling labels from warnings into errors.
	StrictLabels bool
	// MaxNavItems bounds the top navigation; values <= 0 disable the check.
	MaxNavItems int
	// ExtraIcons extends the built-in social icon set.
	ExtraIcons []string
}

// DefaultOptions returns the options matching the observed generator contract.
func DefaultOptions() Options {
	return Options{
		AllowSpacesInPath: true,
		MaxNavItems:       DefaultMaxNavItems,
	}
}

func (o Options) labelSeverity() Severity {
	if o.StrictLabels {
		return SeverityError
	}
	return SeverityWarning
}
