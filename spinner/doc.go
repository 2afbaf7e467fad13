// Package spinner shows an animated wait indicator between prompts.
//
// # Usage
//
//	s := spinner.New(nil)
//	s.Start("Checking availability")
//	err := doSlowThing()
//	s.Stop(err == nil, "")
//
// Or wrap the work directly:
//
//	err := spinner.While("Checking availability", doSlowThing)
//
// The spinner renders to stderr by default so stdout stays clean for
// answers and automation.
package spinner
