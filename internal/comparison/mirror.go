package comparison

// mirror builds the reverse-direction view of a stored record. Every
// directional field pair is swapped in lockstep; orientation-agnostic
// prose (topics, titles, descriptions, correct approaches, migration
// tips) is carried unchanged. The result shares no memory with the
// original: slices, example pointers, and nested framework fields are
// all cloned, so later writes to either record cannot leak into the
// other.
func mirror(c *LanguageComparison) *LanguageComparison {
	m := &LanguageComparison{
		SourceLanguage: c.TargetLanguage,
		TargetLanguage: c.SourceLanguage,
	}

	if c.SyntaxExamples != nil {
		m.SyntaxExamples = make([]SyntaxExample, len(c.SyntaxExamples))
		for i, ex := range c.SyntaxExamples {
			m.SyntaxExamples[i] = SyntaxExample{
				Topic:       ex.Topic,
				Description: ex.Description,
				SourceCode:  ex.TargetCode,
				TargetCode:  ex.SourceCode,
			}
		}
	}

	if c.CommonPitfalls != nil {
		m.CommonPitfalls = make([]CommonPitfall, len(c.CommonPitfalls))
		for i, p := range c.CommonPitfalls {
			m.CommonPitfalls[i] = CommonPitfall{
				Title:           p.Title,
				Description:     p.Description,
				SourceExample:   cloneString(p.TargetExample),
				TargetExample:   cloneString(p.SourceExample),
				CorrectApproach: p.CorrectApproach,
			}
		}
	}

	if c.KeyDifferences != nil {
		m.KeyDifferences = make([]KeyDifference, len(c.KeyDifferences))
		for i, d := range c.KeyDifferences {
			m.KeyDifferences[i] = KeyDifference{
				Topic:          d.Topic,
				Description:    d.Description,
				SourceApproach: d.TargetApproach,
				TargetApproach: d.SourceApproach,
			}
		}
	}

	// Optional section: absent stays absent.
	if c.FrameworkComparisons != nil {
		m.FrameworkComparisons = make([]FrameworkComparison, len(c.FrameworkComparisons))
		for i, fc := range c.FrameworkComparisons {
			m.FrameworkComparisons[i] = FrameworkComparison{
				Category:        fc.Category,
				SourceFramework: cloneFramework(fc.TargetFramework),
				TargetFramework: cloneFramework(fc.SourceFramework),
				// Authored for the canonical direction only; no
				// reversed text exists to swap in.
				MigrationTips:  cloneStrings(fc.MigrationTips),
				CommonPitfalls: cloneStrings(fc.CommonPitfalls),
			}
		}
	}

	return m
}

func cloneFramework(f Framework) Framework {
	return Framework{
		Name:         f.Name,
		SetupCode:    f.SetupCode,
		BasicExample: f.BasicExample,
		Strengths:    cloneStrings(f.Strengths),
		Ecosystem:    cloneStrings(f.Ecosystem),
	}
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
