package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	Segment bool
	Match   bool
	Query   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("BMML_DEBUG_PARSE")
	d.Segment = boolEnv("BMML_DEBUG_SEGMENT")
	d.Match = boolEnv("BMML_DEBUG_MATCH")
	d.Query = boolEnv("BMML_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Segment() bool {
	return d.Segment
}
func Match() bool {
	return d.Match
}
func Query() bool {
	return d.Query
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(append(d, '\n'))
}
