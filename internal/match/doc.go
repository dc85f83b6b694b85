// Package match suggests known identifiers for misspelled ones.
//
// Names selected by configuration or flags are compared against the type
// declarations actually found, so a warning about an unknown model can point
// at the declaration the user most likely meant.
package match
