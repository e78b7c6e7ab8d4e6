package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
	"github.com/younwookim/taskshow/internal/application/anim"
	"github.com/younwookim/taskshow/internal/domain/dialogue"
	"github.com/younwookim/taskshow/internal/infrastructure/assets"
	"github.com/younwookim/taskshow/internal/render"
)

// Dialogue panel geometry.
const (
	AvatarSize     = 100
	BubbleY        = 120
	BubblePadding  = 15
	BubbleRadius   = 10
	WrapWidth      = 250
	EmojiSize      = 32
	EmojiGap       = 10
	dialogueFont   = 18
	emojiPopSec    = 0.25
	emojiSettleSec = 0.9
	emojiRestScale = 1.3
)

// DialoguePanel shows one speaker: avatar on top, speech bubble below it
// and an optional emoji beside the bubble. The left panel grows rightwards
// from its origin, the right panel leftwards.
type DialoguePanel struct {
	Node *render.Node

	cache  *assets.Cache
	runner *anim.Runner
	side   dialogue.Side

	avatar *render.Node
	bubble *render.Node
	bg     *render.Node
	text   *render.Node
	emoji  *render.Node

	avatarImage *ebiten.Image
	lines       []rune
	revealed    float64
	emojiScale  float64
	perRune     float64

	reveal *anim.Handle
	pop    *anim.Handle
}

// NewDialoguePanel creates a hidden panel. Animations run on runner;
// perRune is the reveal time of one character in seconds.
func NewDialoguePanel(cache *assets.Cache, runner *anim.Runner, side dialogue.Side, perRune float64) *DialoguePanel {
	p := &DialoguePanel{
		Node:    render.NewContainer("dialogue-" + string(side)),
		cache:   cache,
		runner:  runner,
		side:    side,
		perRune: perRune,
	}
	p.Node.Visible = false

	p.avatar = render.NewSprite("avatar", nil)
	p.avatar.Visible = false

	p.bubble = render.NewContainer("bubble")
	p.bubble.Y = BubbleY
	p.bg = render.NewSprite("bubble-bg", nil)
	p.text = render.NewText("speech", "", cache.Fonts().Face(dialogueFont), color.Black)
	p.text.X, p.text.Y = BubblePadding, BubblePadding
	p.emoji = render.NewSprite("emoji", nil)
	p.emoji.Visible = false

	p.bubble.AddChild(p.bg)
	p.bubble.AddChild(p.text)
	p.bubble.AddChild(p.emoji)
	p.Node.AddChild(p.avatar)
	p.Node.AddChild(p.bubble)
	return p
}

// Side returns the side the panel is anchored to.
func (p *DialoguePanel) Side() dialogue.Side {
	return p.side
}

// Visible reports whether the panel is shown.
func (p *DialoguePanel) Visible() bool {
	return p.Node.Visible
}

// Show displays step, cancelling any reveal or emoji pulse still running.
func (p *DialoguePanel) Show(step *dialogue.Step[*ebiten.Image]) {
	p.reveal.Cancel()
	p.pop.Cancel()

	if step.Avatar != nil && step.Avatar != p.avatarImage {
		p.setAvatar(step.Avatar)
	}

	wrapped := Wrap(step.Text, p.text.Face, WrapWidth)
	p.lines = []rune(wrapped)

	// Size the bubble for the full text so it does not grow while revealing.
	p.text.Text = wrapped
	tw, th := p.text.Size()
	bw := math.Ceil(tw + 2*BubblePadding)
	bh := math.Ceil(th + 2*BubblePadding)
	p.bg.Image = p.cache.Rect(int(bw), int(bh), BubbleRadius, 0xffffff)
	if p.side == dialogue.SideRight {
		p.bubble.X = -bw
	} else {
		p.bubble.X = 0
	}

	p.revealed = 0
	p.text.Text = ""
	p.reveal = p.runner.Play(anim.To(&p.revealed, float64(len(p.lines)), float64(len(p.lines))*p.perRune, ease.Linear))

	if step.HasEmoji && step.Emoji != nil {
		p.emoji.Image = step.Emoji
		p.emoji.CenterPivot()
		p.emoji.X = bw + EmojiGap + EmojiSize/2
		p.emoji.Y = bh / 2
		p.emoji.Visible = true
		p.emojiScale = 0
		p.pop = p.runner.Play(anim.Seq(
			anim.To(&p.emojiScale, 1, emojiPopSec, ease.OutBack),
			anim.To(&p.emojiScale, emojiRestScale, emojiSettleSec, ease.OutElastic),
		))
	} else {
		p.emoji.Visible = false
		p.emoji.Image = nil
	}

	p.Node.Visible = true
	p.Update()
}

// Hide hides the panel and drops its emoji.
func (p *DialoguePanel) Hide() {
	p.reveal.Cancel()
	p.pop.Cancel()
	p.Node.Visible = false
	p.emoji.Visible = false
	p.emoji.Image = nil
}

// Update copies the animated values onto the visuals. Call it after the
// runner has advanced.
func (p *DialoguePanel) Update() {
	n := min(max(int(p.revealed), 0), len(p.lines))
	p.text.Text = string(p.lines[:n])

	if p.emoji.Image != nil {
		w, _ := p.emoji.Size()
		if w > 0 {
			p.emoji.SetScale(p.emojiScale * EmojiSize / w)
		}
	}
}

// Text returns the currently revealed text.
func (p *DialoguePanel) Text() string {
	return p.text.Text
}

// FullText returns the wrapped text of the step being shown.
func (p *DialoguePanel) FullText() string {
	return string(p.lines)
}

// Revealing reports whether the text reveal is still running.
func (p *DialoguePanel) Revealing() bool {
	return p.reveal.Active()
}

// Avatar returns the image currently shown as the avatar.
func (p *DialoguePanel) Avatar() *ebiten.Image {
	return p.avatarImage
}

// EmojiVisible reports whether an emoji is shown.
func (p *DialoguePanel) EmojiVisible() bool {
	return p.emoji.Visible
}

// EmojiScale returns the current emoji pulse factor (1 = 32px).
func (p *DialoguePanel) EmojiScale() float64 {
	return p.emojiScale
}

func (p *DialoguePanel) setAvatar(img *ebiten.Image) {
	p.avatarImage = img
	p.avatar.Image = img
	b := img.Bounds()
	if b.Dx() > 0 && b.Dy() > 0 {
		p.avatar.ScaleX = AvatarSize / float64(b.Dx())
		p.avatar.ScaleY = AvatarSize / float64(b.Dy())
	}
	if p.side == dialogue.SideRight {
		p.avatar.X = -AvatarSize
	} else {
		p.avatar.X = 0
	}
	p.avatar.Visible = true
}
