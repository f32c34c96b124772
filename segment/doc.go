// Package segment splits the children of a part into measures.
//
// A measure holds one or more voices, a voice one or more partial
// measures, and a partial measure one or more partial voices, each a run of
// musical content. Barlines end measures. Inaccord markers open a new
// voice (full), partial measure (part) or partial voice (division). Layout
// elements (space, newline, music_hyphen, separator, generic_text and
// part_name) do not take part in the structure and are dropped.
package segment
