package document

// MergeStringSlices unions proposed entries into existing ones,
// preserving the relative order of existing entries, appending new
// entries in their own order, and dropping duplicates by value equality.
func MergeStringSlices(existing, proposed []string) []string {
	merged := make([]string, 0, len(existing)+len(proposed))
	seen := make(map[string]bool, len(existing)+len(proposed))
	for _, s := range existing {
		if !seen[s] {
			merged = append(merged, s)
			seen[s] = true
		}
	}
	for _, s := range proposed {
		if !seen[s] {
			merged = append(merged, s)
			seen[s] = true
		}
	}
	return merged
}

// ToStringSlice converts a document value into a string slice. JSON
// decoding produces []any, in-process updates produce []string; both are
// accepted. Anything else (including nil) yields an empty slice.
func ToStringSlice(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// ToString converts a document value into a string, returning "" for nil
// or non-string values.
func ToString(value any) string {
	s, _ := value.(string)
	return s
}
