package llm

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	reCodeFence = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")
	reJSONBlob  = regexp.MustCompile(`(?s)\{.*\}`)
)

// ExtractJSONBlock recovers the JSON object from a model response that may
// be wrapped in markdown fences or prose. Models asked for "strict JSON"
// still decorate their output often enough that this is the normal path,
// not the exception.
func ExtractJSONBlock(raw string) ([]byte, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, fmt.Errorf("empty model response")
	}

	if m := reCodeFence.FindStringSubmatch(s); m != nil {
		s = strings.TrimSpace(m[1])
	}
	if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
		return []byte(s), nil
	}
	if m := reJSONBlob.FindString(s); m != "" {
		return []byte(m), nil
	}
	return nil, fmt.Errorf("no JSON object found in model response")
}
