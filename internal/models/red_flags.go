package models

// RedFlags is the fixed set of tags a submitter can attach to a report.
var RedFlags = []string{
	"No interview process",
	"Unrealistic salary",
	"Upfront payment required",
	"Poor communication",
	"Fake job posting",
	"Identity theft attempts",
	"Spelling/grammar errors",
	"Unknown company",
}

var redFlagSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(RedFlags))
	for _, f := range RedFlags {
		set[f] = struct{}{}
	}
	return set
}()

// ValidRedFlag reports whether tag is part of the fixed enumeration.
func ValidRedFlag(tag string) bool {
	_, ok := redFlagSet[tag]
	return ok
}
