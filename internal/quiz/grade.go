package quiz

// Grade reports whether chosen fully answers q.
//
// Single-answer questions accept exactly one chosen answer that is a member
// of CorrectAnswers. Multiple-answer questions require the chosen set to equal
// CorrectAnswers; order and duplicates in chosen are ignored.
func Grade(q Question, chosen []string) bool {
	if !q.Multiple {
		if len(chosen) != 1 {
			return false
		}
		return q.IsCorrect(chosen[0])
	}

	got := toSet(chosen)
	want := toSet(q.CorrectAnswers)
	if len(got) != len(want) {
		return false
	}
	for a := range got {
		if !want[a] {
			return false
		}
	}
	return true
}

func toSet(items []string) map[string]bool {
	s := make(map[string]bool, len(items))
	for _, it := range items {
		s[it] = true
	}
	return s
}
