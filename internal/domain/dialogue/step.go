package dialogue

import "regexp"

var emojiMarkup = regexp.MustCompile(`\{([^{}]*)\}`)

// Step is one displayable unit of dialogue. H is the image handle type.
type Step[H comparable] struct {
	Speaker string
	Side    Side
	Avatar  H
	Emoji   H
	// HasEmoji is false when the line has no markup or the emoji
	// image did not load.
	HasEmoji bool
	Text     string
}

// ParseText strips every {name} token from text and returns the first
// token's name, if any.
func ParseText(text string) (clean, emoji string, ok bool) {
	if m := emojiMarkup.FindStringSubmatch(text); m != nil {
		emoji, ok = m[1], true
	}
	clean = emojiMarkup.ReplaceAllString(text, "")
	return clean, emoji, ok
}

// BuildSteps turns the script lines into steps. Avatars missing from
// avatars resolve to placeholder; emojis missing from emojis are omitted.
func BuildSteps[H comparable](s *Script, avatars, emojis map[string]H, placeholder H) []Step[H] {
	steps := make([]Step[H], 0, len(s.Dialogue))
	for _, line := range s.Dialogue {
		text, emojiName, hasMarkup := ParseText(line.Text)

		step := Step[H]{
			Speaker: line.Name,
			Side:    s.SideOf(line.Name),
			Avatar:  placeholder,
			Text:    text,
		}
		if img, ok := avatars[line.Name]; ok {
			step.Avatar = img
		}
		if hasMarkup {
			if img, ok := emojis[emojiName]; ok {
				step.Emoji = img
				step.HasEmoji = true
			}
		}
		steps = append(steps, step)
	}
	return steps
}
