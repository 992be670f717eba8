package templates

import (
	"strconv"
	"strings"
)

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// cellParams renders "s0 *Cell[T0], s1 *Cell[T1]".
func cellParams(count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		n := strconv.Itoa(i)
		sb.WriteString("s" + n + " *Cell[T" + n + "]")
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// cellTypes renders "*Cell[T0], *Cell[T1]".
func cellTypes(count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString("*Cell[T" + strconv.Itoa(i) + "]")
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// getCalls renders "s0.Get(), s1.Get()".
func getCalls(count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString("s" + strconv.Itoa(i) + ".Get()")
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}
