package ui

import (
	"bytes"
	"strconv"

	cfg "github.com/automoto/pong/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/gofont/goregular"
)

// Scoreboard is the match HUD: a score, winner banner and play-again prompt
// per player plus a centred countdown. It implements display.Sink.
type Scoreboard struct {
	UI *ebitenui.UI

	scoreLabels  [2]*widget.Label
	winnerLabels [2]*widget.Label
	promptLabels [2]*widget.Label

	scoreFace     text.Face
	promptFace    text.Face
	countdownFace text.Face

	countdown int
	pulse     *gween.Tween
	scale     float32
}

// NewScoreboard builds the HUD with both scores at zero and every prompt
// hidden.
func NewScoreboard() (*Scoreboard, error) {
	sb := &Scoreboard{scale: 1}
	if err := sb.loadFonts(); err != nil {
		return nil, err
	}
	sb.buildUI()
	return sb, nil
}

func (sb *Scoreboard) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}

	sb.scoreFace = &text.GoTextFace{Source: fontSource, Size: cfg.UI.ScoreFontSize}
	sb.promptFace = &text.GoTextFace{Source: fontSource, Size: cfg.UI.PromptFontSize}
	sb.countdownFace = &text.GoTextFace{Source: fontSource, Size: cfg.UI.CountdownFontSize}
	return nil
}

func (sb *Scoreboard) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	anchors := [2]widget.AnchorLayoutPosition{widget.AnchorLayoutPositionStart, widget.AnchorLayoutPositionEnd}
	for player := range anchors {
		column := widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(48)),
				widget.RowLayoutOpts.Spacing(4),
			)),
			widget.ContainerOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
					HorizontalPosition: anchors[player],
					VerticalPosition:   widget.AnchorLayoutPositionStart,
				}),
			),
		)

		sb.scoreLabels[player] = widget.NewLabel(
			widget.LabelOpts.Text("0", &sb.scoreFace, &widget.LabelColor{
				Idle: cfg.UI.PaddleColors[player],
			}),
		)
		sb.winnerLabels[player] = widget.NewLabel(
			widget.LabelOpts.Text("", &sb.promptFace, &widget.LabelColor{
				Idle: cfg.UI.AcceptedColor,
			}),
		)
		sb.promptLabels[player] = widget.NewLabel(
			widget.LabelOpts.Text("", &sb.promptFace, &widget.LabelColor{
				Idle: cfg.White,
			}),
		)

		column.AddChild(sb.scoreLabels[player])
		column.AddChild(sb.winnerLabels[player])
		column.AddChild(sb.promptLabels[player])
		rootContainer.AddChild(column)
	}

	sb.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// UpdateScore shows both scores.
func (sb *Scoreboard) UpdateScore(left, right int) {
	sb.scoreLabels[cfg.PlayerLeft].Label = strconv.Itoa(left)
	sb.scoreLabels[cfg.PlayerRight].Label = strconv.Itoa(right)
}

// ShowCountdown shows whole seconds, pulsing on each change. Zero or less
// hides it.
func (sb *Scoreboard) ShowCountdown(seconds int) {
	if seconds <= 0 {
		sb.countdown = 0
		sb.pulse = nil
		return
	}
	if seconds != sb.countdown {
		sb.pulse = gween.New(1.5, 1, cfg.UI.CountdownPulse, ease.OutQuad)
		sb.scale = 1.5
	}
	sb.countdown = seconds
}

// ShowWinner marks player as the match winner.
func (sb *Scoreboard) ShowWinner(player int) {
	if !validPlayer(player) {
		return
	}
	sb.winnerLabels[player].Label = cfg.UI.WinnerText
}

// ShowPlayAgainPrompts asks both players for a rematch.
func (sb *Scoreboard) ShowPlayAgainPrompts() {
	for player := range sb.promptLabels {
		sb.promptLabels[player].Label = cfg.UI.PlayAgainText[player]
	}
}

// SetPlayAccepted switches a player's prompt to its accepted state.
func (sb *Scoreboard) SetPlayAccepted(player int, accepted bool) {
	if !validPlayer(player) {
		return
	}
	if accepted {
		sb.promptLabels[player].Label = cfg.UI.AcceptedText
		return
	}
	sb.promptLabels[player].Label = cfg.UI.PlayAgainText[player]
}

// HideAllPrompts clears the winner banners, prompts and countdown.
func (sb *Scoreboard) HideAllPrompts() {
	for player := range sb.promptLabels {
		sb.winnerLabels[player].Label = ""
		sb.promptLabels[player].Label = ""
	}
	sb.ShowCountdown(0)
}

// Countdown returns the seconds currently shown, 0 when hidden.
func (sb *Scoreboard) Countdown() int {
	return sb.countdown
}

// Update advances the widgets and the countdown pulse by one tick.
func (sb *Scoreboard) Update() {
	sb.UI.Update()

	if sb.pulse == nil {
		return
	}
	scale, done := sb.pulse.Update(1 / float32(cfg.C.TPS))
	sb.scale = scale
	if done {
		sb.pulse = nil
		sb.scale = 1
	}
}

// Draw renders the HUD over the playfield.
func (sb *Scoreboard) Draw(screen *ebiten.Image) {
	sb.UI.Draw(screen)

	if sb.countdown <= 0 {
		return
	}
	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())

	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(float64(sb.scale), float64(sb.scale))
	op.GeoM.Translate(w/2, h/2)
	op.ColorScale.ScaleWithColor(cfg.White)
	text.Draw(screen, strconv.Itoa(sb.countdown), sb.countdownFace, op)
}

func validPlayer(player int) bool {
	return player == cfg.PlayerLeft || player == cfg.PlayerRight
}
