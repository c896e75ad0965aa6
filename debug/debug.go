package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Decode bool
	Budget bool
	Merge  bool
	Diff   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decode = boolEnv("NBT_DEBUG_DECODE")
	d.Budget = boolEnv("NBT_DEBUG_BUDGET")
	d.Merge = boolEnv("NBT_DEBUG_MERGE")
	d.Diff = boolEnv("NBT_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decode() bool {
	return d.Decode
}
func Budget() bool {
	return d.Budget
}
func Merge() bool {
	return d.Merge
}
func Diff() bool {
	return d.Diff
}
