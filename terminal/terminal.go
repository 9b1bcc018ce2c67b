// This file is part of CoalOS.
//
// CoalOS is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// CoalOS is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with CoalOS.  If not, see <https://www.gnu.org/licenses/>.

package terminal

// DefaultCharsPerSecond is the typewriter speed of a new Terminal.
const DefaultCharsPerSecond = 50.0

// Colour of the terminal text. Each channel is in the range 0.0 to 1.0.
type Colour struct {
	R, G, B float32
}

// Green is the default text colour.
var Green = Colour{R: 0, G: 1, B: 0}

func clampChannel(v float32) float32 {
	return min(max(v, 0), 1)
}

// Clamp returns the colour with every channel limited to the range 0.0 to 1.0.
func (c Colour) Clamp() Colour {
	return Colour{R: clampChannel(c.R), G: clampChannel(c.G), B: clampChannel(c.B)}
}

// DrawInstruction is a single line of text to draw at the x/y coordinates. The
// y coordinate is the baseline of the text, measured down from the top of the
// viewport.
type DrawInstruction struct {
	Text   string
	X, Y   float32
	Colour Colour
}

// RenderPlan is the list of instructions needed to draw the terminal. The
// visible history lines come first, in order, and the input line is always
// the last instruction.
type RenderPlan []DrawInstruction

// Input returns the instruction for the input line.
func (p RenderPlan) Input() DrawInstruction {
	if len(p) == 0 {
		return DrawInstruction{}
	}
	return p[len(p)-1]
}

// Terminal composes the line buffer, typewriter, input editor and cursor.
type Terminal struct {
	lines  *LineBuffer
	tw     Typewriter
	input  InputEditor
	cursor CursorBlinker

	prompt   string
	colour   Colour
	speed    float64
	viewport Viewport
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type.
func NewTerminal(viewport Viewport) *Terminal {
	return &Terminal{
		lines:    NewLineBuffer(Capacity),
		cursor:   NewCursorBlinker(),
		colour:   Green,
		speed:    DefaultCharsPerSecond,
		viewport: viewport,
	}
}

// Update advances the cursor blink and the typewriter by dt seconds. Returns
// the number of characters revealed by the typewriter.
func (trm *Terminal) Update(dt float64) int {
	trm.cursor.Update(dt)
	return trm.tw.Update(trm.lines, dt)
}

// Render returns the plan for drawing the current state of the terminal.
func (trm *Terminal) Render() RenderPlan {
	start, end := VisibleSlice(trm.lines.Len(), trm.viewport)

	plan := make(RenderPlan, 0, end-start+1)
	y := trm.viewport.PaddingTop

	for _, l := range trm.lines.Slice(start, end) {
		y += trm.viewport.LineHeight
		plan = append(plan, DrawInstruction{Text: l, X: trm.viewport.PaddingLeft, Y: y, Colour: trm.colour})
	}

	input := trm.prompt + trm.input.String()
	if trm.cursor.Visible() && trm.prompt != "" {
		input += CursorGlyph
	}
	y += trm.viewport.LineHeight
	plan = append(plan, DrawInstruction{Text: input, X: trm.viewport.PaddingLeft, Y: y, Colour: trm.colour})

	return plan
}

// AppendLine adds a line to the terminal immediately, without animation.
func (trm *Terminal) AppendLine(line string) {
	trm.lines.Append(line)
}

// StartReveal adds a line to the terminal that is revealed with the
// typewriter effect. If another line is being revealed then the line is
// added immediately. Returns true if the reveal was started.
func (trm *Terminal) StartReveal(text string, cps float64) bool {
	return trm.tw.StartReveal(trm.lines, text, cps)
}

// StartRevealDefault is the same as StartReveal() using the terminal's
// typewriter speed.
func (trm *Terminal) StartRevealDefault(text string) bool {
	return trm.tw.StartReveal(trm.lines, text, trm.speed)
}

// IsTyping returns true if a line is being revealed.
func (trm *Terminal) IsTyping() bool {
	return trm.tw.IsTyping()
}

// AppendChar adds a character to the input line.
func (trm *Terminal) AppendChar(r rune) {
	trm.input.AppendChar(r)
}

// DeleteLast removes the last character of the input line.
func (trm *Terminal) DeleteLast() {
	trm.input.DeleteLast()
}

// SetInput replaces the input line.
func (trm *Terminal) SetInput(s string) {
	trm.input.Set(s)
}

// GetCurrentInput returns the input line without the prompt.
func (trm *Terminal) GetCurrentInput() string {
	return trm.input.String()
}

// Submit adds the prompt and input line to the scrollback and empties the
// input line. Returns the input line as it was before the submission.
func (trm *Terminal) Submit() string {
	return trm.input.Submit(trm.lines, trm.prompt)
}

// Clear removes every line from the scrollback. The input line is kept.
func (trm *Terminal) Clear() {
	trm.lines.Clear()
}

// Lines returns a copy of the lines in the scrollback.
func (trm *Terminal) Lines() []string {
	return trm.lines.Slice(0, trm.lines.Len())
}

// SetTextColor sets the colour of the text. Channel values are clamped to the
// range 0.0 to 1.0.
func (trm *Terminal) SetTextColor(r, g, b float32) {
	trm.colour = Colour{R: r, G: g, B: b}.Clamp()
}

// GetTextColor returns the colour of the text.
func (trm *Terminal) GetTextColor() Colour {
	return trm.colour
}

// SetPrompt sets the string drawn before the input line. The cursor is not
// drawn while the prompt is empty.
func (trm *Terminal) SetPrompt(prompt string) {
	trm.prompt = prompt
}

// Prompt returns the current prompt.
func (trm *Terminal) Prompt() string {
	return trm.prompt
}

// SetTypewriterSpeed sets the speed used by StartRevealDefault(). Speeds
// slower than MinCharsPerSecond are raised.
func (trm *Terminal) SetTypewriterSpeed(cps float64) {
	trm.speed = max(cps, MinCharsPerSecond)
}

// TypewriterSpeed returns the speed used by StartRevealDefault().
func (trm *Terminal) TypewriterSpeed() float64 {
	return trm.speed
}

// SetViewport changes the drawing area. Usually called when the window is
// resized.
func (trm *Terminal) SetViewport(v Viewport) {
	trm.viewport = v
}

// Viewport returns the current drawing area.
func (trm *Terminal) Viewport() Viewport {
	return trm.viewport
}

// CursorVisible returns the current state of the cursor blink.
func (trm *Terminal) CursorVisible() bool {
	return trm.cursor.Visible()
}
