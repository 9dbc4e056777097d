package importer

// The five flat hierarchy columns accepted in CSV rows, shallowest first
var levelColumns = []string{
	"locationLevelOne",
	"locationLevelTwo",
	"locationLevelThree",
	"locationLevelFour",
	"locationLevelFive",
}

// levelValues extracts the five level columns of a row in order, trimmed,
// blanks kept in place so gaps stay visible
func levelValues(r row) []string {
	values := make([]string, len(levelColumns))
	for i, column := range levelColumns {
		values[i] = r.field(column)
	}
	return values
}

// firstGap returns the 1-based level number of the first level that is
// provided while the level above it is blank, or 0 when the hierarchy has
// no gaps. A deeper level without its shallower levels can never resolve
// to a tree node.
func firstGap(levels []string) int {
	for i := 1; i < len(levels); i++ {
		if levels[i] != "" && levels[i-1] == "" {
			return i + 1
		}
	}
	return 0
}

// providedLevels filters out the blank levels, keeping order
func providedLevels(levels []string) []string {
	var provided []string
	for _, level := range levels {
		if level != "" {
			provided = append(provided, level)
		}
	}
	return provided
}
