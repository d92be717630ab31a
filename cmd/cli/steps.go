package main

import (
	"fmt"
	"strings"

	"gocsvlab/internal/transform"
)

// parseStep reads "operator" or "operator:key=value,key=value"
func parseStep(s string) (transform.Operator, error) {
	name, rest, _ := strings.Cut(strings.TrimSpace(s), ":")
	params := transform.Params{}
	if rest != "" {
		for _, pair := range strings.Split(rest, ",") {
			key, value, ok := strings.Cut(pair, "=")
			if !ok || strings.TrimSpace(key) == "" {
				return nil, fmt.Errorf("step %q: parameter %q must be key=value", s, pair)
			}
			params[strings.TrimSpace(key)] = value
		}
	}
	return transform.Parse(name, params)
}
