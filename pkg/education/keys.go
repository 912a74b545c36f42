package education

import (
	"fmt"
	"strings"

	"github.com/jantorestrimer2011-eng/JARIVSedu/pkg/kv"
)

// KV key layout. Ids are zero-padded so lexicographic listing equals
// numeric order.
//
//	edu/assignment/{id:08d} → msgpack Assignment
//	edu/plan/{id:08d}       → msgpack StudyPlan
//	edu/course/{name}       → course name (registry of known courses)
const (
	assignmentPrefix = "edu" + kv.Sep + "assignment" + kv.Sep
	planPrefix       = "edu" + kv.Sep + "plan" + kv.Sep
	coursePrefix     = "edu" + kv.Sep + "course" + kv.Sep
)

func assignmentKey(id int) string {
	return fmt.Sprintf("%s%08d", assignmentPrefix, id)
}

func planKey(id int) string {
	return fmt.Sprintf("%s%08d", planPrefix, id)
}

// courseKey escapes the separator; course names are user text.
func courseKey(name string) string {
	return coursePrefix + strings.ReplaceAll(name, kv.Sep, "-")
}
