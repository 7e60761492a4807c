package table

import "fmt"

func sprint(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// setLen grows or shrinks list to length, building new entries with build.
func setLen[E any](list []E, length int, build func() E) []E {
	if len(list) > length {
		clear(list[length:])
		return list[:length]
	}
	for len(list) < length {
		list = append(list, build())
	}
	return list
}
