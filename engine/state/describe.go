package state

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Describe produces the standard room description output: header,
// description, visible items, exits, and a hint when a riddle is pending.
func Describe(r *Room) []string {
	output := []string{
		"== " + cases.Upper(language.English).String(r.ID) + " ==",
		r.Description,
	}

	if items := r.ItemList(); len(items) > 0 {
		output = append(output, "Notable items:")
		for _, it := range items {
			output = append(output, " - "+it)
		}
	}

	if dirs := r.ExitDirections(); len(dirs) > 0 {
		output = append(output, "Exits: "+strings.Join(dirs, ", "))
	}

	if r.Puzzle != nil {
		output = append(output, "There seems to be a riddle here (use the solve command).")
	}

	return output
}
