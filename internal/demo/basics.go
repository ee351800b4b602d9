// SPDX-License-Identifier: MIT

package demo

import (
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

func itoa(n int) string { return strconv.Itoa(n) }

func runCollections(w io.Writer, _ Input) error {
	p := newPrinter(w)

	p.section("Slice")
	list := []string{"java", "go", "rust"}
	list = append(list, "python")
	p.printf("list=%v len=%d cap>=len:%t\n", list, len(list), cap(list) >= len(list))
	p.printf("index of go: %d, contains kotlin: %t\n", slices.Index(list, "go"), slices.Contains(list, "kotlin"))
	list = slices.Delete(list, 0, 1)
	p.printf("after removing first: %v\n", list)
	sub := list[:2]
	sub[0] = "GO"
	p.printf("a reslice shares its backing array: list=%v\n", list)

	p.section("Set")
	set := make(map[int]struct{})
	for _, v := range []int{3, 1, 3, 2, 1} {
		set[v] = struct{}{}
	}
	p.printf("distinct values: %v (size %d)\n", slices.Sorted(maps.Keys(set)), len(set))
	_, has := set[2]
	p.printf("contains 2: %t\n", has)

	p.section("Map")
	ages := map[string]int{"sam": 31, "alex": 27, "kim": 40}
	ages["lee"] = 22
	delete(ages, "kim")
	for _, name := range slices.Sorted(maps.Keys(ages)) {
		p.printf("%s -> %d\n", name, ages[name])
	}
	if _, ok := ages["kim"]; !ok {
		p.println("kim is not present (comma-ok lookup)")
	}
	p.printf("zero value for a missing key: %d\n", ages["nobody"])

	return p.err
}

func runStrings(w io.Writer, _ Input) error {
	p := newPrinter(w)

	p.section("String Operations")
	s := "Hello World Go"
	p.printf("s=%q\n", s)
	p.printf("len (bytes)=%d runes=%d\n", len(s), utf8.RuneCountInString(s))
	p.printf("byte at 4=%q\n", s[4])
	p.printf("index of World=%d\n", strings.Index(s, "World"))
	p.printf("upper=%q lower=%q\n", strings.ToUpper(s), strings.ToLower(s))
	p.printf("contains \"Go\"=%t has prefix \"Hell\"=%t\n", strings.Contains(s, "Go"), strings.HasPrefix(s, "Hell"))
	p.printf("replace=%q\n", strings.ReplaceAll(s, "o", "0"))
	p.printf("fields=%q\n", strings.Fields(s))
	p.printf("trim=%q\n", strings.TrimSpace("  padded  "))
	p.printf("equal fold=%t\n", strings.EqualFold("GoLang", "golang"))
	p.printf("reversed=%q\n", reverse(s))

	p.section("Immutability")
	a := "immutable"
	b := a
	a += " strings"
	p.printf("a=%q b=%q (b keeps the original)\n", a, b)
	raw := []byte(b)
	raw[0] = 'I'
	p.printf("[]byte copy changed=%q original=%q\n", string(raw), b)
	var sb strings.Builder
	for i := 0; i < 3; i++ {
		sb.WriteString(itoa(i))
	}
	p.printf("built with strings.Builder=%q\n", sb.String())

	return p.err
}

func reverse(s string) string {
	r := []rune(s)
	slices.Reverse(r)

	return string(r)
}

func runPipeline(w io.Writer, in Input) error {
	p := newPrinter(w)

	p.printf("Names: %v\n", in.Names)
	p.printf("Starting with A (loop): %d\n", countPrefixLoop(in.Names, "A"))

	withA := filter(in.Names, func(s string) bool { return strings.HasPrefix(s, "A") })
	p.printf("Starting with A (filter): %d %v\n", len(withA), withA)

	long := filter(in.Names, func(s string) bool { return len(s) > 4 })
	upper := mapSlice(long, strings.ToUpper)
	slices.Sort(upper)
	p.printf("Longer than 4, upper-cased, sorted: %v\n", upper)

	endsM := filter(in.Names, func(s string) bool { return strings.HasSuffix(s, "m") })
	p.printf("First name ending in m: %v\n", first(endsM))

	return p.err
}

func countPrefixLoop(names []string, prefix string) int {
	count := 0
	for i := 0; i < len(names); i++ {
		if strings.HasPrefix(names[i], prefix) {
			count++
		}
	}

	return count
}

func filter[T any](s []T, keep func(T) bool) []T {
	out := make([]T, 0, len(s))
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}

	return out
}

func mapSlice[T, U any](s []T, fn func(T) U) []U {
	out := make([]U, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}

	return out
}

func first(s []string) string {
	if len(s) == 0 {
		return "<none>"
	}

	return s[0]
}
