// Package utils carries small shared helpers: lenient JSON parsing
// for LLM output and Markdown cleanup for agent narratives.
package utils

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// RepairJSON fixes the usual LLM output defects: single quotes,
// unquoted keys, trailing commas, unclosed brackets, stray markdown
// fences.
func RepairJSON(malformed string) (string, error) {
	repaired, err := jsonrepair.RepairJSON(malformed)
	if err != nil {
		return "", fmt.Errorf("JSON repair failed: %v", err)
	}
	return repaired, nil
}

// MustRepairJSON is RepairJSON with an empty object on failure, for
// paths that need guaranteed JSON.
func MustRepairJSON(malformed string) string {
	repaired, err := jsonrepair.RepairJSON(malformed)
	if err != nil {
		return "{}"
	}
	return repaired
}

// ParseHJSON parses human-friendly JSON (comments, unquoted keys,
// optional commas) and returns standard JSON.
func ParseHJSON(input string) (string, error) {
	var result interface{}
	if err := hjson.Unmarshal([]byte(input), &result); err != nil {
		return "", fmt.Errorf("hjson parse failed: %v", err)
	}
	out, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("json marshal failed: %v", err)
	}
	return string(out), nil
}

// SmartParse unmarshals model output into schema, escalating through
// three strategies: strict JSON, repaired JSON, then Hjson.
func SmartParse(input string, schema interface{}) (string, error) {
	if err := json.Unmarshal([]byte(input), schema); err == nil {
		return input, nil
	}

	if repaired, err := RepairJSON(input); err == nil {
		if err := json.Unmarshal([]byte(repaired), schema); err == nil {
			return repaired, nil
		}
	}

	if converted, err := ParseHJSON(input); err == nil {
		if err := json.Unmarshal([]byte(converted), schema); err == nil {
			return converted, nil
		}
	}

	return "", fmt.Errorf("all parsing strategies failed for model output")
}
